package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/leapstack-labs/transfer/internal/cli/output"
	"github.com/leapstack-labs/transfer/internal/config"
	"github.com/leapstack-labs/transfer/internal/dataset"
	"github.com/spf13/cobra"
)

// configKey is used to store the loaded config in a command context.
type configKey struct{}

// WithConfig returns a copy of ctx carrying cfg.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext collects the config, logger and renderer set up by the
// root command.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	if !ok {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(ctx),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.Output)),
	}, nil
}

// OpenDataset opens the configured dataset read-only.
// The caller closes the returned store.
func (c *CommandContext) OpenDataset(ctx context.Context) (*dataset.Store, error) {
	return dataset.Open(ctx, c.Cfg.Dataset.AdapterConfig(false), c.Logger)
}
