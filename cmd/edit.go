package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kastheco/codecolor/app"
	"github.com/kastheco/codecolor/config/themestore"
	"github.com/kastheco/codecolor/internal/logging"
	"github.com/kastheco/codecolor/theme"
)

func newEditCmd(opts *rootOptions) *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "open the interactive theme editor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// the alt-screen owns the terminal; log to a file instead
			level, err := logging.ParseLevel(opts.cfg.LogLevel)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				if level, err = logging.ParseLevel(opts.logLevel); err != nil {
					return err
				}
			}
			closer, err := logging.InitForFile(level, filepath.Join(opts.cfg.StateDir, "codecolor.log"))
			if err != nil {
				return err
			}
			defer closer.Close()

			st, err := theme.Load(opts.cfg.StateDir)
			if err != nil {
				return err
			}

			var store themestore.Store
			if remote != "" {
				store = themestore.NewHTTPStore(remote)
			} else {
				bolt, err := themestore.NewBoltStore(opts.cfg.LibraryPath)
				if err != nil {
					// the editor still works without a library
					logging.Warn("CLI", "theme library unavailable: %v", err)
				} else {
					store = bolt
				}
			}
			if store != nil {
				defer store.Close()
			}

			return app.Run(cmd.Context(), opts.cfg, st, store)
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "theme library server URL (default is the local library file)")
	return cmd
}
