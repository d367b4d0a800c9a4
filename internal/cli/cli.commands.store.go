package cli

import (
	"fmt"

	tm "github.com/buger/goterm"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/hubservice"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/models"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/server"
	"github.com/spf13/cobra"
)

func newRecordCommand(a *app) *cobra.Command {
	var hiveID string

	cmd := &cobra.Command{
		Use:   "record --hive ID FILE...",
		Short: "Store inspection files for a hive",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := make([]models.Inspection, 0, len(args))
			for _, path := range args {
				rec, err := readInspectionFile(path)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				records = append(records, rec)
			}

			return a.withServer(cmd.Context(), func(srv *server.Server) error {
				out := cmd.OutOrStdout()
				for i, rec := range records {
					entry, err := srv.Hub().RecordInspection(cmd.Context(), hiveID, rec)
					if err != nil {
						return fmt.Errorf("%s: %w", args[i], err)
					}
					fmt.Fprintf(out, "%s %s %s\n", a.ok("recorded"), entry.ID, args[i])
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&hiveID, "hive", "", "Hive ID")
	cmd.MarkFlagRequired("hive")
	return cmd
}

func newListCommand(a *app) *cobra.Command {
	var (
		hiveID        string
		from, to      string
		offset, limit int
	)

	cmd := &cobra.Command{
		Use:   "list --hive ID",
		Short: "List stored inspections of a hive, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			filters := models.InspectionFilters{HiveID: hiveID}
			var err error
			if filters.From, err = models.ParseDate(from); err != nil {
				return fmt.Errorf("invalid --from: %w", err)
			}
			if filters.To, err = models.ParseDate(to); err != nil {
				return fmt.Errorf("invalid --to: %w", err)
			}

			return a.withServer(cmd.Context(), func(srv *server.Server) error {
				page, err := srv.Hub().ListInspections(cmd.Context(), filters, offset, limit)
				if err != nil {
					return err
				}

				table := newTable()
				fmt.Fprintf(table, "ID\tDATE\tVARROA\tMITES\tSTRENGTH\tRECORDED\n")
				for _, e := range page.Items {
					h := e.Record.Health()
					fmt.Fprintf(table, "%s\t%s\t%s\t%d\t%s\t%s\n",
						e.ID,
						e.Record.Inventory().InspectionDate,
						h.VarroaMites.Label(),
						e.Record.VarroaDiaperCount(),
						e.Record.State().Strength.Label(),
						e.RecordedAt.Format("2006-01-02 15:04"),
					)
				}
				out := cmd.OutOrStdout()
				fmt.Fprint(out, table.String())
				fmt.Fprintf(out, "%d of %d inspection(s)\n", len(page.Items), page.Total)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&hiveID, "hive", "", "Hive ID")
	cmd.Flags().StringVar(&from, "from", "", "Earliest inspection date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Latest inspection date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&offset, "offset", 0, "Skip this many inspections")
	cmd.Flags().IntVar(&limit, "limit", hubservice.DefaultPageLimit, "Max inspections to show")
	cmd.MarkFlagRequired("hive")
	return cmd
}

func newStatusCommand(a *app) *cobra.Command {
	var hiveID string

	cmd := &cobra.Command{
		Use:   "status --hive ID",
		Short: "Summarize a hive from its recent inspections",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withServer(cmd.Context(), func(srv *server.Server) error {
				status, err := srv.Hub().GetHiveStatus(cmd.Context(), hiveID)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %s\n", a.bold("Hive"), status.HiveID)
				fmt.Fprintf(out, "Inspections:      %d\n", status.Inspections)
				fmt.Fprintf(out, "Last inspection:  %s (%d day(s) ago)\n",
					status.Latest.Record.Inventory().InspectionDate, status.DaysSinceInspection)
				fmt.Fprintf(out, "Varroa trend:     %s %v\n", status.VarroaTrend, status.VarroaCounts)
				if len(status.Alerts) == 0 {
					fmt.Fprintln(out, a.ok("No alerts"))
					return nil
				}
				for _, alert := range status.Alerts {
					fmt.Fprintf(out, "%s %s\n", a.severity(alert.Severity), alert.Message)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&hiveID, "hive", "", "Hive ID")
	cmd.MarkFlagRequired("hive")
	return cmd
}

func newPurgeCommand(a *app) *cobra.Command {
	var before string

	cmd := &cobra.Command{
		Use:   "purge --before DATE",
		Short: "Delete inspections carried out before a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			cutoff, err := models.ParseDate(before)
			if err != nil {
				return fmt.Errorf("invalid --before: %w", err)
			}

			return a.withServer(cmd.Context(), func(srv *server.Server) error {
				n, err := srv.Hub().Cleanup.PurgeBefore(cmd.Context(), cutoff)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %d inspection(s) before %s\n", a.warn("purged"), n, cutoff)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&before, "before", "", "Cutoff date (YYYY-MM-DD), exclusive")
	cmd.MarkFlagRequired("before")
	return cmd
}

func (a *app) severity(s string) string {
	label := fmt.Sprintf("[%s]", s)
	switch s {
	case hubservice.SeverityCritical:
		return a.color(label, tm.RED)
	case hubservice.SeverityWarning:
		return a.color(label, tm.YELLOW)
	default:
		return a.color(label, tm.CYAN)
	}
}
