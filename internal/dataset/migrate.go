package dataset

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"sync"

	"github.com/leapstack-labs/transfer/pkg/core"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// goose keeps its base FS, dialect and logger in package globals.
var gooseMu sync.Mutex

// Migrate runs all pending dataset migrations against adp.
func Migrate(ctx context.Context, adp core.Adapter, logger *slog.Logger) error {
	if adp.DB() == nil {
		return fmt.Errorf("database not opened")
	}
	dialect := adp.MigrationDialect()
	if dialect == "" {
		return fmt.Errorf("building a dataset is not supported for %s; use sqlite or postgres", adp.DialectName())
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{logger: orDiscard(logger)})

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, adp.DB(), "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// MigrationVersion returns the current migration version of the dataset.
func MigrationVersion(ctx context.Context, adp core.Adapter) (int64, error) {
	if adp.DB() == nil {
		return 0, fmt.Errorf("database not opened")
	}
	dialect := adp.MigrationDialect()
	if dialect == "" {
		return 0, fmt.Errorf("migrations are not tracked for %s", adp.DialectName())
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return 0, fmt.Errorf("failed to set dialect: %w", err)
	}

	return goose.GetDBVersionContext(ctx, adp.DB())
}

// gooseLogger routes goose progress output to slog.
type gooseLogger struct {
	logger *slog.Logger
}

func (l gooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...), slog.String("component", "goose"))
}

func (l gooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...), slog.String("component", "goose"))
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
