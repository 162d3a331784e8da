package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kastheco/codecolor/config/themestore"
	"github.com/kastheco/codecolor/internal/colorapi"
	"github.com/kastheco/codecolor/internal/logging"
)

// newServeMux mounts the color API and the theme library API on one mux.
func newServeMux(d colorapi.Defaults, store themestore.Store) *http.ServeMux {
	colors := colorapi.NewHandler(d)
	library := themestore.NewHandler(store)
	mux := http.NewServeMux()
	mux.Handle("/v1/colors/", colors)
	mux.Handle("/v1/contrast", colors)
	mux.Handle("/v1/contrast/", colors)
	mux.Handle("/v1/harmonies", colors)
	mux.Handle("/v1/ramps", colors)
	mux.Handle("/v1/themes", library)
	mux.Handle("/v1/themes/", library)
	mux.Handle("/v1/ping", library)
	return mux
}

// NewServeCmd returns the `codecolor serve` cobra command.
// It starts an HTTP server exposing the color API and the theme library.
func NewServeCmd(opts *rootOptions) *cobra.Command {
	var (
		port int
		db   string
		bind string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "start the color API and theme library HTTP server",
		Long:  "Start an HTTP server that exposes the color computations and the saved theme library over a REST API backed by bbolt.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = opts.cfg.Server.Port
			}
			if !cmd.Flags().Changed("bind") {
				bind = opts.cfg.Server.Bind
			}
			if db == "" {
				db = opts.cfg.LibraryPath
			}

			store, err := themestore.NewBoltStore(db)
			if err != nil {
				return fmt.Errorf("open theme library: %w", err)
			}
			defer store.Close()

			addr := fmt.Sprintf("%s:%d", bind, port)
			srv := &http.Server{
				Addr:              addr,
				Handler:           newServeMux(opts.defaults(), store),
				ReadHeaderTimeout: 5 * time.Second,
			}

			fmt.Fprintf(cmd.OutOrStdout(), "codecolor listening on http://%s (library: %s)\n", addr, db)
			logging.Info("Serve", "listening on %s", addr)

			// Graceful shutdown on SIGINT/SIGTERM.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				fmt.Fprintln(cmd.OutOrStdout(), "\nshutting down...")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}

	cmd.Flags().IntVar(&port, "port", 7433, "port to listen on (default from config)")
	cmd.Flags().StringVar(&db, "db", "", "path to the theme library file (default from config)")
	cmd.Flags().StringVar(&bind, "bind", "127.0.0.1", "address to bind to (default from config)")

	return cmd
}
