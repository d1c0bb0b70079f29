package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/leapstack-labs/transfer/pkg/adapter"
	"github.com/spf13/pflag"
)

// sections are the top-level config keys that hold nested keys.
var sections = map[string]bool{"dataset": true, "server": true, "log": true}

// flagKeys maps CLI flag names to config keys where they differ from the
// kebab-to-dotted default.
var flagKeys = map[string]string{
	"dataset": "dataset.path",
	"port":    "server.port",
	"host":    "server.host",
	"watch":   "server.watch",
}

// findConfigFile finds the config file to use.
// Priority: explicit path > transfer.yaml > transfer.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// EnvKey maps an environment variable name to a config key:
// TRANSFER_SERVER_PORT -> server.port, TRANSFER_SERVER_SHUTDOWN_TIMEOUT ->
// server.shutdown_timeout, TRANSFER_OUTPUT -> output.
func EnvKey(name string) string {
	s := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	if section, rest, ok := strings.Cut(s, "_"); ok && sections[section] {
		return section + "." + rest
	}
	return s
}

// FlagKey maps a CLI flag name to a config key: --log-level -> log.level,
// --dataset -> dataset.path.
func FlagKey(name string) string {
	if key, ok := flagKeys[name]; ok {
		return key
	}
	if section, rest, ok := strings.Cut(name, "-"); ok && sections[section] {
		return section + "." + strings.ReplaceAll(rest, "-", "_")
	}
	return strings.ReplaceAll(name, "-", "_")
}

// Load loads configuration from file, environment variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only flags that were explicitly set override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFile := findConfigFile(cfgFile)
	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	// 3. Environment variables
	if err := k.Load(env.Provider(EnvPrefix, ".", EnvKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return FlagKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Decode. Durations arrive as strings from YAML, env and defaults.
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.ConfigFile = configFile

	cfg.Dataset.Type = adapter.CanonicalName(cfg.Dataset.Type)
	applyDatasetDefaults(&cfg.Dataset)
	expandDatasetEnvVars(&cfg.Dataset)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars expands ${VAR} patterns. Unset variables are left as written.
func expandEnvVars(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		if val, ok := os.LookupEnv(match[2 : len(match)-1]); ok {
			return val
		}
		return match
	})
}

// expandDatasetEnvVars expands environment references in connection fields.
func expandDatasetEnvVars(d *DatasetConfig) {
	d.Path = expandEnvVars(d.Path)
	d.Host = expandEnvVars(d.Host)
	d.Database = expandEnvVars(d.Database)
	d.User = expandEnvVars(d.User)
	d.Password = expandEnvVars(d.Password)
	for key, v := range d.Options {
		d.Options[key] = expandEnvVars(v)
	}
}
