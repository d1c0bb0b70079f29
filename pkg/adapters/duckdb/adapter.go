// Package duckdb provides a DuckDB dataset backend.
package duckdb

import (
	"context"
	"log/slog"

	"github.com/leapstack-labs/transfer/pkg/adapter"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

// Adapter implements the adapter.Adapter interface for DuckDB.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new DuckDB adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	return &Adapter{BaseSQLAdapter: adapter.NewBase(logger)}
}

// DialectName returns the SQL dialect for this adapter.
func (a *Adapter) DialectName() string {
	return "duckdb"
}

// MigrationDialect returns "": goose has no DuckDB dialect, so DuckDB
// datasets are built outside this tool and only read here.
func (a *Adapter) MigrationDialect() string {
	return ""
}

// Connect establishes a connection to DuckDB.
// Use ":memory:" as the path for an in-memory database.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	a.Logger.Debug("connecting to duckdb", slog.String("path", cfg.Path))
	return a.Open(ctx, "duckdb", buildDSN(cfg))
}

// buildDSN opens file databases in READ_ONLY access mode unless cfg.ReadWrite.
// In-memory databases cannot be read-only.
func buildDSN(cfg adapter.Config) string {
	path := cfg.Path
	if path == "" || path == ":memory:" {
		return ""
	}
	if cfg.ReadWrite {
		return path
	}
	return path + "?access_mode=READ_ONLY"
}
