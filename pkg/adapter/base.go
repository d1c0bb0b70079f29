package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"
)

// BaseSQLAdapter holds the database/sql plumbing shared by every backend.
// Backends embed it and implement Connect, DialectName and MigrationDialect.
type BaseSQLAdapter struct {
	Conn   *sql.DB
	Logger *slog.Logger
}

// NewBase returns a BaseSQLAdapter with a non-nil logger.
func NewBase(logger *slog.Logger) BaseSQLAdapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return BaseSQLAdapter{Logger: logger}
}

// DB returns the underlying connection pool.
func (b *BaseSQLAdapter) DB() *sql.DB {
	return b.Conn
}

// Close closes the database connection.
func (b *BaseSQLAdapter) Close() error {
	if b.Conn != nil {
		if b.Logger != nil {
			b.Logger.Debug("closing database connection")
		}
		err := b.Conn.Close()
		b.Conn = nil
		return err
	}
	return nil
}

// Placeholder returns "?", the marker used by SQLite and DuckDB.
func (b *BaseSQLAdapter) Placeholder(_ int) string {
	return "?"
}

// Open opens driverName with dsn, pings it and stores the pool.
// On ping failure the pool is closed and the error returned.
func (b *BaseSQLAdapter) Open(ctx context.Context, driverName, dsn string) error {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return fmt.Errorf("failed to open %s connection: %w", driverName, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping %s: %w", driverName, err)
	}

	b.Conn = db
	return nil
}

// DollarPlaceholder returns "$n", the marker used by PostgreSQL.
func DollarPlaceholder(n int) string {
	return "$" + strconv.Itoa(n)
}
