// ABOUTME: Serve command runs the HTTP API until interrupted
// ABOUTME: Shuts down gracefully on SIGINT or SIGTERM
package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harper/recommend/internal/server"
)

var servePort string

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the HTTP API server.

Serves /api/products, /api/query, /api/query/followup, /api/search,
/api/model-info, /api/technical-info, and /healthz.`,
		Args: cobra.NoArgs,
		RunE: runServe,
		Example: `  # Listen on the PORT env var (default 8080)
  recommender serve

  # Override the port
  recommender serve --port 9090`,
	}

	cmd.Flags().StringVar(&servePort, "port", "", "Listen port (overrides PORT)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	if servePort != "" {
		a.Config.Port = servePort
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.NewRouter(a.Core, a.Logger), a.Config, a.Logger)
	return srv.Run(ctx)
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
