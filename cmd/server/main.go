package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/himanishpuri/SongQueue/internal/config"
	"github.com/himanishpuri/SongQueue/pkg/logger"
	"github.com/himanishpuri/SongQueue/pkg/songqueue"
)

var (
	configPath     string
	port           int
	songsPath      string
	aliasPath      string
	queuePath      string
	queueBackend   string
	allowedOrigins string
)

func init() {
	flag.StringVar(&configPath, "config", getEnvOrDefault("SONGQUEUE_CONFIG", ""), "Path to TOML config file")
	flag.IntVar(&port, "port", 0, "HTTP server port (default 1145)")
	flag.StringVar(&songsPath, "songs", "", "Path to songs.json")
	flag.StringVar(&aliasPath, "aliases", "", "Path to alias.json")
	flag.StringVar(&queuePath, "queue", "", "Path to the persisted queue")
	flag.StringVar(&queueBackend, "backend", "", "Queue backend: json or sqlite")
	flag.StringVar(&allowedOrigins, "origins", "", "Comma-separated list of allowed CORS origins (use * for all)")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// loadConfig reads the config file and environment, then lets explicitly
// set flags win.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Server.Port = port
		case "songs":
			cfg.Catalog.Songs = songsPath
		case "aliases":
			cfg.Catalog.Aliases = aliasPath
		case "queue":
			cfg.Queue.Path = queuePath
		case "backend":
			cfg.Queue.Backend = queueBackend
			if !isFlagSet("queue") {
				cfg.Queue.Path = config.DefaultQueuePath(queueBackend)
			}
		case "origins":
			cfg.Server.AllowedOrigins = config.SplitList(allowedOrigins)
		}
	})

	return cfg, cfg.Validate()
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// configureLogger applies the [log] section to the process-wide logger.
// An empty level leaves whatever LOG_LEVEL selected.
func configureLogger(cfg config.LogConfig) {
	if cfg.Level != "" {
		if level, err := logger.ParseLevel(cfg.Level); err == nil {
			logger.SetLevel(level)
		}
	}
	switch cfg.Color {
	case "always":
		logger.SetColorize(true)
	case "never":
		logger.SetColorize(false)
	}
}

func main() {
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	configureLogger(cfg.Log)
	logger.Infof("Log level %s", logger.GetLogger().Level())

	service, err := songqueue.NewService(
		songqueue.WithSongsPath(cfg.Catalog.Songs),
		songqueue.WithAliasPath(cfg.Catalog.Aliases),
		songqueue.WithQueueBackend(cfg.Queue.Backend),
		songqueue.WithQueuePath(cfg.Queue.Path),
		songqueue.WithDefaultPageSize(cfg.Search.DefaultPageSize),
		songqueue.WithLogger(logger.GetLogger().WithPrefix("songqueue")),
	)
	if err != nil {
		log.Fatalf("Failed to create service: %v", err)
	}
	defer service.Close()

	serverConfig := &ServerConfig{
		Port:           cfg.Server.Port,
		SongsPath:      cfg.Catalog.Songs,
		AliasPath:      cfg.Catalog.Aliases,
		QueuePath:      cfg.Queue.Path,
		QueueBackend:   cfg.Queue.Backend,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := NewServer(service, serverConfig, logger.GetLogger().WithPrefix("http"))
	if err := server.Start(ctx); err != nil {
		log.Printf("Server failed: %v", err)
		service.Close()
		os.Exit(1)
	}
}
