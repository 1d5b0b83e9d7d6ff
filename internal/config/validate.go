package config

import (
	"errors"
	"fmt"

	"github.com/himanishpuri/SongQueue/pkg/logger"
)

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("server: %w", err))
	}
	if err := c.Catalog.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("catalog: %w", err))
	}
	if err := c.Queue.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("queue: %w", err))
	}
	if err := c.Search.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("search: %w", err))
	}
	if err := c.Log.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks ServerConfig for errors.
func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	return nil
}

// Validate checks CatalogConfig for errors.
func (c *CatalogConfig) Validate() error {
	if c.Songs == "" || c.Aliases == "" {
		return errors.New("songs and aliases paths are required")
	}
	return nil
}

// Validate checks QueueConfig for errors.
func (c *QueueConfig) Validate() error {
	switch c.Backend {
	case "json", "sqlite":
		// valid
	default:
		return fmt.Errorf("invalid backend: %s (must be json or sqlite)", c.Backend)
	}
	return nil
}

// Validate checks SearchConfig for errors.
func (c *SearchConfig) Validate() error {
	if c.DefaultPageSize < 1 {
		return errors.New("default_page_size must be positive")
	}
	return nil
}

// Validate checks LogConfig for errors.
func (c *LogConfig) Validate() error {
	if _, err := logger.ParseLevel(c.Level); err != nil {
		return err
	}
	switch c.Color {
	case "", "auto", "always", "never":
		// valid
	default:
		return fmt.Errorf("invalid color mode: %s (must be auto, always, or never)", c.Color)
	}
	return nil
}
