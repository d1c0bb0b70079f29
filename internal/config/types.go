// Package config loads transfer configuration from defaults, transfer.yaml,
// TRANSFER_* environment variables and command-line flags.
package config

import (
	"time"

	"github.com/leapstack-labs/transfer/pkg/core"
)

// Config holds all configuration options.
type Config struct {
	Dataset DatasetConfig `koanf:"dataset"`
	Server  ServerConfig  `koanf:"server"`
	Log     LogConfig     `koanf:"log"`

	// Output selects the CLI renderer: auto, text, markdown or json.
	Output string `koanf:"output"`

	// ConfigFile is the config file that was loaded, if any.
	ConfigFile string `koanf:"-"`
}

// DatasetConfig selects and locates the dataset backend.
type DatasetConfig struct {
	Type string `koanf:"type"` // sqlite, postgres, duckdb

	// File-based backends (SQLite, DuckDB)
	Path string `koanf:"path"`

	// Network backends
	Host     string            `koanf:"host"`
	Port     int               `koanf:"port"`
	Database string            `koanf:"database"`
	User     string            `koanf:"user"`
	Password string            `koanf:"password"`
	Options  map[string]string `koanf:"options"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              int           `koanf:"port"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
	MaxConnections    int           `koanf:"max_connections"`
	Watch             bool          `koanf:"watch"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `koanf:"level"`  // debug, info, warn, error
	Format string `koanf:"format"` // text, json
}

// AdapterConfig converts the dataset section to an adapter configuration.
// Serving opens the dataset read-only; seeding passes readWrite.
func (d DatasetConfig) AdapterConfig(readWrite bool) core.AdapterConfig {
	return core.AdapterConfig{
		Type:      d.Type,
		Path:      d.Path,
		Host:      d.Host,
		Port:      d.Port,
		Database:  d.Database,
		Username:  d.User,
		Password:  d.Password,
		Options:   d.Options,
		ReadWrite: readWrite,
	}
}

// IsFile reports whether the dataset lives in a local file that can be watched.
func (d DatasetConfig) IsFile() bool {
	return (d.Type == "sqlite" || d.Type == "duckdb") && d.Path != "" && d.Path != ":memory:"
}
