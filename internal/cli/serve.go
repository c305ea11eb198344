package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/laser-pdf/laser-pdf/internal/api"
)

// serveCommand creates the serve command for running the HTTP render API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render API",
		Long: `Serve exposes the render pipeline over HTTP.

Endpoints:
  POST /render   render the posted TOML description (format=pdf|json)
  GET  /healthz  liveness check
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			server := &http.Server{
				Addr:              addr,
				Handler:           api.New(runner, c.Logger),
				ReadHeaderTimeout: 10 * time.Second,
			}

			// Shut down when the command context is canceled (SIGINT).
			go func() {
				<-cmd.Context().Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = server.Shutdown(shutdownCtx)
			}()

			c.Logger.Info("serving render API", "addr", addr)
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}
