package songqueue

import (
	"github.com/himanishpuri/SongQueue/internal/catalog"
	"github.com/himanishpuri/SongQueue/internal/search"
	"github.com/himanishpuri/SongQueue/internal/storage"
)

type Config struct {
	SongsPath       string
	AliasPath       string
	QueuePath       string
	QueueBackend    string
	DefaultPageSize int
	Logger          Logger
	Storage         storage.QueueStore
	Catalog         *catalog.Store
}

type Option func(*Config)

func WithSongsPath(path string) Option {
	return func(c *Config) {
		c.SongsPath = path
	}
}

func WithAliasPath(path string) Option {
	return func(c *Config) {
		c.AliasPath = path
	}
}

func WithQueuePath(path string) Option {
	return func(c *Config) {
		c.QueuePath = path
	}
}

// WithQueueBackend selects "json" or "sqlite" persistence.
func WithQueueBackend(backend string) Option {
	return func(c *Config) {
		c.QueueBackend = backend
	}
}

func WithDefaultPageSize(size int) Option {
	return func(c *Config) {
		c.DefaultPageSize = size
	}
}

func WithLogger(log Logger) Option {
	return func(c *Config) {
		c.Logger = log
	}
}

// WithStorage overrides the queue store; QueuePath and QueueBackend are
// then ignored.
func WithStorage(store storage.QueueStore) Option {
	return func(c *Config) {
		c.Storage = store
	}
}

// WithCatalog uses an already built catalog instead of loading files.
func WithCatalog(store *catalog.Store) Option {
	return func(c *Config) {
		c.Catalog = store
	}
}

func defaultConfig() *Config {
	return &Config{
		SongsPath:       "songs.json",
		AliasPath:       "alias.json",
		QueuePath:       storage.DefaultQueueFile,
		QueueBackend:    storage.BackendJSON,
		DefaultPageSize: search.DefaultPageSize,
	}
}
