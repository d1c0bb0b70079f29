package core

import (
	"context"
	"database/sql"
)

// Adapter defines the interface that all dataset backends must implement.
type Adapter interface {
	// Connect establishes a connection to the database.
	Connect(ctx context.Context, cfg AdapterConfig) error

	// Close closes the database connection.
	Close() error

	// DB returns the underlying connection pool, or nil before Connect.
	DB() *sql.DB

	// DialectName returns the backend name ("sqlite", "postgres", "duckdb").
	DialectName() string

	// Placeholder returns the bind parameter marker for the n-th (1-based) argument.
	Placeholder(n int) string

	// MigrationDialect returns the goose dialect used to build a dataset on
	// this backend, or "" when the backend is read-only for this tool.
	MigrationDialect() string
}

// AdapterConfig holds configuration for connecting to a dataset.
type AdapterConfig struct {
	Type     string
	Path     string
	Host     string
	Port     int
	Database string
	Username string
	Password string
	Options  map[string]string

	// ReadWrite opens the dataset writable. The serving process never sets it;
	// only dataset builds (seed) do.
	ReadWrite bool
}
