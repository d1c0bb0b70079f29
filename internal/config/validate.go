package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/leapstack-labs/transfer/pkg/adapter"
)

// Accepted values for enumerated settings.
var (
	LogLevels   = []string{"debug", "info", "warn", "error"}
	LogFormats  = []string{"text", "json"}
	OutputModes = []string{"auto", "text", "markdown", "json"}
)

// Validate checks the configuration. Every problem is reported.
func (c *Config) Validate() error {
	var errs []error

	if c.Dataset.Type == "" {
		errs = append(errs, fmt.Errorf("dataset.type is required"))
	} else if !adapter.IsRegistered(c.Dataset.Type) {
		errs = append(errs, &adapter.UnknownAdapterError{
			Type:      c.Dataset.Type,
			Available: adapter.ListAdapters(),
		})
	}
	switch c.Dataset.Type {
	case "sqlite", "duckdb":
		if c.Dataset.Path == "" {
			errs = append(errs, fmt.Errorf("dataset.path is required for %s", c.Dataset.Type))
		}
	case "postgres":
		if c.Dataset.Host == "" {
			errs = append(errs, fmt.Errorf("dataset.host is required for postgres"))
		}
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}
	if c.Server.ReadHeaderTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.read_header_timeout must be positive"))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("server.shutdown_timeout must be positive"))
	}

	if c.Server.MaxConnections < 0 {
		errs = append(errs, fmt.Errorf("server.max_connections must not be negative"))
	}

	if !slices.Contains(LogLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of %v, got %q", LogLevels, c.Log.Level))
	}
	if !slices.Contains(LogFormats, c.Log.Format) {
		errs = append(errs, fmt.Errorf("log.format must be one of %v, got %q", LogFormats, c.Log.Format))
	}
	if !slices.Contains(OutputModes, c.Output) {
		errs = append(errs, fmt.Errorf("output must be one of %v, got %q", OutputModes, c.Output))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
