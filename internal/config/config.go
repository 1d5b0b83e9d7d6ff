package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SONGQUEUE_"

// Load reads configuration from path, or only defaults and environment
// when path is empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, err
		}
	}

	// Environment wins over the file, defaults fill whatever is left.
	applyEnvOverrides(cfg)
	cfg.ApplyDefaults()

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	// Server
	if v := os.Getenv(EnvPrefix + "PORT"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = i
		}
	}
	if v := os.Getenv(EnvPrefix + "ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = SplitList(v)
	}

	// Catalog
	if v := os.Getenv(EnvPrefix + "SONGS"); v != "" {
		cfg.Catalog.Songs = v
	}
	if v := os.Getenv(EnvPrefix + "ALIASES"); v != "" {
		cfg.Catalog.Aliases = v
	}

	// Queue
	if v := os.Getenv(EnvPrefix + "QUEUE_BACKEND"); v != "" {
		cfg.Queue.Backend = v
	}
	if v := os.Getenv(EnvPrefix + "QUEUE_PATH"); v != "" {
		cfg.Queue.Path = v
	}

	// Search
	if v := os.Getenv(EnvPrefix + "PAGE_SIZE"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Search.DefaultPageSize = i
		}
	}

	// Log
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_COLOR"); v != "" {
		cfg.Log.Color = v
	}
}

// SplitList splits a comma separated list and trims every element.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
