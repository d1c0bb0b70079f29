package config

import "time"

// Default configuration values.
const (
	DefaultDatasetType       = "sqlite"
	DefaultDatasetPath       = "assist.db"
	DefaultServerPort        = 8080
	DefaultReadHeaderTimeout = 10 * time.Second
	DefaultShutdownTimeout   = 5 * time.Second
	DefaultMaxConnections    = 512
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultOutput            = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultPostgresPort      = 5432
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "transfer.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "transfer.yml"

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "TRANSFER_"

func defaults() map[string]any {
	return map[string]any{
		"dataset.type":               DefaultDatasetType,
		"dataset.path":               DefaultDatasetPath,
		"server.host":                "",
		"server.port":                DefaultServerPort,
		"server.read_header_timeout": DefaultReadHeaderTimeout.String(),
		"server.shutdown_timeout":    DefaultShutdownTimeout.String(),
		"server.max_connections":     DefaultMaxConnections,
		"server.watch":               true,
		"log.level":                  DefaultLogLevel,
		"log.format":                 DefaultLogFormat,
		"output":                     DefaultOutput,
	}
}

// applyDatasetDefaults fills backend-specific defaults.
func applyDatasetDefaults(d *DatasetConfig) {
	if d.Type == "postgres" && d.Port == 0 {
		d.Port = DefaultPostgresPort
	}
}
