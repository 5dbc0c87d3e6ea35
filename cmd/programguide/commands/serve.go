package commands

import (
	"os/signal"
	"syscall"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/listenupapp/programguide/internal/di"
	"github.com/listenupapp/programguide/internal/logger"
)

func (c *cli) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP gateway",
		Long: "Serve the program guide over HTTP with the API key kept server-side.\n" +
			"OpenAPI documentation is at /docs.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := di.Bootstrap(c.injector); err != nil {
				return err
			}

			log := do.MustInvoke[*logger.Logger](c.injector)
			<-ctx.Done()
			log.Info("Shutting down gateway gracefully...")

			// The container shuts the server down when the command returns.
			return nil
		},
	}
	cmd.Flags().StringVar(&c.overrides.Port, "port", "", "gateway port (default 8080)")
	return cmd
}
