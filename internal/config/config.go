// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/vmunix/moviems/internal/cache"
	"github.com/vmunix/moviems/internal/tmdb"
)

// APIKeyEnv is consulted when the config leaves tmdb.api_key empty.
const APIKeyEnv = "TMDB_API_KEY"

// Config is the root configuration structure.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Log      LogConfig      `toml:"log"`
	TMDB     TMDBConfig     `toml:"tmdb"`
	Fallback FallbackConfig `toml:"fallback"`
	Cache    CacheConfig    `toml:"cache"`
}

type ServerConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	LogLevel string `toml:"log_level"`
}

// LogConfig enables an optional rotated log file next to stdout.
type LogConfig struct {
	File       string `toml:"file"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
	MaxAgeDays int    `toml:"max_age_days"`
	Compress   bool   `toml:"compress"`
}

type TMDBConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

type FallbackConfig struct {
	URL string `toml:"url"`
}

type CacheConfig struct {
	TTL time.Duration `toml:"ttl"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and parses the configuration file. An empty path skips the file
// and yields defaults. In both cases the TMDB key falls back to $TMDB_API_KEY
// and the result is validated; problems are reported as a *ConfigError.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}

		// Substitute environment variables
		content, missing := substituteEnvVars(string(data))
		if len(missing) > 0 {
			return nil, &ConfigError{Path: path, Missing: missing}
		}

		if _, err := toml.Decode(content, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyDefaults()

	if cfg.TMDB.APIKey == "" {
		cfg.TMDB.APIKey = strings.TrimSpace(os.Getenv(APIKeyEnv))
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, &ConfigError{Path: path, Errors: errs}
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 5000
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.Log.File != "" {
		if c.Log.MaxSizeMB == 0 {
			c.Log.MaxSizeMB = 50
		}
		if c.Log.MaxBackups == 0 {
			c.Log.MaxBackups = 3
		}
		if c.Log.MaxAgeDays == 0 {
			c.Log.MaxAgeDays = 28
		}
	}
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = tmdb.DefaultBaseURL
	}
	c.TMDB.BaseURL = strings.TrimRight(c.TMDB.BaseURL, "/")
	if c.Fallback.URL == "" {
		c.Fallback.URL = tmdb.DefaultFallbackURL
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = cache.DefaultTTL
	}
}

// Mode reports which upstream serves searches: "primary" or "fallback".
func (c *Config) Mode() string {
	if c.TMDB.APIKey != "" {
		return "primary"
	}
	return "fallback"
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces ${VAR} references with environment values.
// Unset (or, for the :- and :? forms, empty) variables without a default are
// left unchanged and reported in missing.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	result := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		name, op, arg := parts[1], parts[2], parts[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, name+": "+arg)
				return match
			}
			return value
		default:
			if !ok {
				missing = append(missing, name)
				return match
			}
			return value
		}
	})
	return result, missing
}
