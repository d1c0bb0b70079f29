package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/transfer/internal/config"
	"github.com/leapstack-labs/transfer/internal/dataset"
	"github.com/leapstack-labs/transfer/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the equivalency lookup HTTP API",
		Long: `Start the HTTP API over the configured dataset.

Endpoints:
  POST /equivalent-courses           Equivalency lookup
  GET  /institutions                 Institution names (?type=, ?q=)
  GET  /institutions/{name}/location Institution address and coordinates
  GET  /courses                      Course identifiers (?q=)
  GET  /healthz                      Dataset reachability

Unless --watch=false is given, a file-based dataset is reopened whenever the file changes.
The server stops gracefully on SIGINT or SIGTERM.`,
		Example: `  # Serve a SQLite dataset on :8080
  transfer serve --dataset assist.db

  # Serve without reloading on file changes
  transfer serve --dataset assist.db --watch=false`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}

	cmd.Flags().Int("port", config.DefaultServerPort, "Port to listen on")
	cmd.Flags().String("host", "", "Host to bind to (default all interfaces)")
	cmd.Flags().Bool("watch", true, "Reload the dataset when its file changes")

	return cmd
}

func runServe(cmd *cobra.Command) error {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	cfg := cc.Cfg

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ds, err := dataset.NewReloadable(ctx, func(ctx context.Context) (*dataset.Store, error) {
		return cc.OpenDataset(ctx)
	}, cc.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = ds.Close() }()

	if err := ds.Ping(ctx); err != nil {
		return err
	}

	watch := cfg.Server.Watch
	if watch && !cfg.Dataset.IsFile() {
		cc.Logger.Warn("--watch ignored: dataset is not a local file", "type", cfg.Dataset.Type)
		watch = false
	}

	srv := server.NewServer(server.Config{
		Dataset:           ds,
		Logger:            cc.Logger,
		Host:              cfg.Server.Host,
		Port:              cfg.Server.Port,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.Server.ShutdownTimeout,
		MaxConnections:    cfg.Server.MaxConnections,
		Watch:             watch,
		WatchPath:         cfg.Dataset.Path,
		Reloader:          ds,
	})
	return srv.Serve(ctx)
}
