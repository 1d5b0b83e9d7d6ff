package config

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Catalog CatalogConfig `toml:"catalog"`
	Queue   QueueConfig   `toml:"queue"`
	Search  SearchConfig  `toml:"search"`
	Log     LogConfig     `toml:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port           int      `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// CatalogConfig points at the read-only catalog inputs.
type CatalogConfig struct {
	Songs   string `toml:"songs"`
	Aliases string `toml:"aliases"`
}

// QueueConfig selects where the live queue is persisted.
type QueueConfig struct {
	Backend string `toml:"backend"`
	Path    string `toml:"path"`
}

type SearchConfig struct {
	DefaultPageSize int `toml:"default_page_size"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"` // empty defers to LOG_LEVEL
	Color string `toml:"color"` // auto, always or never
}
