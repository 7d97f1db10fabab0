package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/findexlab/fipulse/internal/webui"
	"github.com/spf13/cobra"
)

// serveCmd starts the local dashboard.
var serveCmd = &cobra.Command{
	Use:   "serve [dataset.csv]",
	Short: "Start the local dashboard for interactive exploration.",
	Long: `Serve a local web dashboard over the loaded dataset.

The dashboard exposes a small JSON API plus a single page that renders
indicator histories, scenario forecasts, and the dataset overview. The
forecast CSV for any indicator can be downloaded directly.

Examples:
  # Serve on the default address
  fipulse serve data.csv --events impacts.csv --schedule schedule.csv

  # Custom listen address
  fipulse serve data.csv --listen :9000`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		srv, err := webui.NewServer(cfg)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-quit:
		}

		ctx, cancel := context.WithTimeout(rootCtx, 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}
