// Package sqlite provides the default SQLite dataset backend, built on the
// pure-Go modernc.org/sqlite driver.
package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/leapstack-labs/transfer/pkg/adapter"

	_ "modernc.org/sqlite" // SQLite driver (pure Go)
)

// MemoryPath selects a private in-memory database.
const MemoryPath = ":memory:"

// Adapter implements the adapter.Adapter interface for SQLite.
type Adapter struct {
	adapter.BaseSQLAdapter
}

// New creates a new SQLite adapter instance.
// If logger is nil, a discard logger is used.
func New(logger *slog.Logger) *Adapter {
	return &Adapter{BaseSQLAdapter: adapter.NewBase(logger)}
}

// DialectName returns the SQL dialect for this adapter.
func (a *Adapter) DialectName() string {
	return "sqlite"
}

// MigrationDialect returns the goose dialect name.
func (a *Adapter) MigrationDialect() string {
	return "sqlite3"
}

// Connect opens the dataset file. Unless cfg.ReadWrite is set the file must
// already exist and is opened read-only.
func (a *Adapter) Connect(ctx context.Context, cfg adapter.Config) error {
	path := cfg.Path
	if path == "" {
		path = MemoryPath
	}

	if path != MemoryPath && !cfg.ReadWrite {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("dataset file %s: %w", path, err)
		}
	}

	a.Logger.Debug("connecting to sqlite", slog.String("path", path), slog.Bool("read_write", cfg.ReadWrite))

	if err := a.Open(ctx, "sqlite", buildDSN(path, cfg.ReadWrite)); err != nil {
		return err
	}

	// Each connection to :memory: is its own database, so the pool is held
	// to one connection and all reads are serialized through it.
	if path == MemoryPath {
		a.Conn.SetMaxOpenConns(1)
	}
	return nil
}

// buildDSN constructs a modernc.org/sqlite connection string.
func buildDSN(path string, readWrite bool) string {
	if path == MemoryPath {
		return MemoryPath + "?_pragma=foreign_keys(1)"
	}
	if readWrite {
		return fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)
	}
	return fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", path)
}
