package config

import "path/filepath"

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           1145,
			AllowedOrigins: []string{"*"},
		},
		Catalog: CatalogConfig{
			Songs:   "songs.json",
			Aliases: "alias.json",
		},
		Queue: QueueConfig{
			Backend: "json",
		},
		Search: SearchConfig{
			DefaultPageSize: 30,
		},
		Log: LogConfig{
			Level: "", // empty keeps the logger's LOG_LEVEL default
			Color: "auto",
		},
	}
}

// ApplyDefaults fills in zero values with sensible defaults.
func (c *Config) ApplyDefaults() {
	d := Default()

	if c.Server.Port == 0 {
		c.Server.Port = d.Server.Port
	}
	if len(c.Server.AllowedOrigins) == 0 {
		c.Server.AllowedOrigins = d.Server.AllowedOrigins
	}

	if c.Catalog.Songs == "" {
		c.Catalog.Songs = d.Catalog.Songs
	}
	if c.Catalog.Aliases == "" {
		c.Catalog.Aliases = d.Catalog.Aliases
	}

	if c.Queue.Backend == "" {
		c.Queue.Backend = d.Queue.Backend
	}
	if c.Queue.Path == "" {
		c.Queue.Path = DefaultQueuePath(c.Queue.Backend)
	}

	if c.Search.DefaultPageSize == 0 {
		c.Search.DefaultPageSize = d.Search.DefaultPageSize
	}

	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Color == "" {
		c.Log.Color = d.Log.Color
	}
}

// DefaultQueuePath is the queue file used when none is configured.
func DefaultQueuePath(backend string) string {
	if backend == "sqlite" {
		return filepath.Join(".", "songqueue.sqlite3")
	}
	return filepath.Join(".", "queue.json")
}
