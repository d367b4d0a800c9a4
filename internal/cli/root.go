// Package cli implements the stockkarte command line tool. File commands
// work offline; storage commands open the configured database.
package cli

import (
	"context"
	"fmt"

	"github.com/itsatony/w4b_v3/server/stockkarte/internal/config"
	"github.com/itsatony/w4b_v3/server/stockkarte/internal/server"
	"github.com/spf13/cobra"
)

// Options holds CLI-level configuration.
type Options struct {
	// LoadConfig replaces config.Load, mainly for tests.
	LoadConfig func(paths ...string) (*config.Config, error)
}

type app struct {
	opts      Options
	configDir string
	noColor   bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.LoadConfig == nil {
		opts.LoadConfig = config.Load
	}
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:   "stockkarte",
		Short: "Stockkarte - hive inspection cards",
		Long:  "Validate, display and store hive inspection cards (Stockkarten).",
		RunE: func(cmd *cobra.Command, args []string) error {
			drawLogo(cmd.OutOrStdout())
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.configDir, "config-dir", "", "Directory holding config.yaml (default ./config)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	root.AddCommand(
		newValidateCommand(a),
		newShowCommand(a),
		newExportCommand(a),
		newRecordCommand(a),
		newListCommand(a),
		newStatusCommand(a),
		newPurgeCommand(a),
		newVersionCommand(a),
	)
	return root
}

// withServer opens storage for the duration of fn.
func (a *app) withServer(ctx context.Context, fn func(*server.Server) error) error {
	var paths []string
	if a.configDir != "" {
		paths = append(paths, a.configDir)
	}
	cfg, err := a.opts.LoadConfig(paths...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	srv, err := server.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer srv.Close()
	return fn(srv)
}
