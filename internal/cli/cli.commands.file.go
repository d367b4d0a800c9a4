package cli

import (
	"fmt"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
	"github.com/spf13/cobra"
	nuts "github.com/vaudience/go-nuts"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

const validateWorkers = 8

type validateResult struct {
	rec models.Inspection
	err error
}

func newValidateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE...",
		Short: "Check inspection files against the record constraints",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]validateResult, len(args))
			g := new(errgroup.Group)
			g.SetLimit(validateWorkers)
			for i, path := range args {
				g.Go(func() error {
					rec, err := readInspectionFile(path)
					results[i] = validateResult{rec: rec, err: err}
					return nil
				})
			}
			g.Wait()

			out := cmd.OutOrStdout()
			failed := 0
			for i, res := range results {
				if res.err != nil {
					failed++
					fmt.Fprintf(out, "%s %s: %v\n", a.fail("FAIL"), args[i], res.err)
					continue
				}
				inv := res.rec.Inventory()
				fmt.Fprintf(out, "%s   %s (%s, %s)\n", a.ok("ok"), args[i], inv.Name, inv.InspectionDate)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d file(s) invalid", failed, len(args))
			}
			return nil
		},
	}
}

func newShowCommand(a *app) *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Print an inspection file as a text card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := language.Parse(lang)
			if err != nil {
				return fmt.Errorf("invalid language %q: %w", lang, err)
			}
			rec, err := readInspectionFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec.Display(tag))
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "en", "Display language (en, de)")
	return cmd
}

func newExportCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Print an inspection file in its versioned JSON form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := readInspectionFile(args[0])
			if err != nil {
				return err
			}
			data, err := rec.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show stockkarte version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "stockkarte version %s\n", a.bold(nuts.GetVersion()))
			return nil
		},
	}
}
