package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/himanishpuri/SongQueue/internal/config"
	"github.com/himanishpuri/SongQueue/pkg/logger"
	"github.com/himanishpuri/SongQueue/pkg/songqueue"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath string
	songs      string
	aliases    string
	queue      string
	backend    string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "songqueue-cli",
		Short:         "Search the song catalog and manage the request queue",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", os.Getenv("SONGQUEUE_CONFIG"), "path to TOML config file")
	pf.StringVar(&flags.songs, "songs", "", "path to songs.json")
	pf.StringVar(&flags.aliases, "aliases", "", "path to alias.json")
	pf.StringVar(&flags.queue, "queue", "", "path to the persisted queue")
	pf.StringVar(&flags.backend, "backend", "", "queue backend: json or sqlite")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newSearchCmd(flags),
		newQueueCmd(flags),
		newCurrentCmd(flags),
		newCatalogCmd(flags),
	)
	return root
}

// openService resolves configuration from file, environment and flags and
// opens the service the commands operate on.
func openService(cmd *cobra.Command, flags *globalFlags) (songqueue.Service, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if flags.songs != "" {
		cfg.Catalog.Songs = flags.songs
	}
	if flags.aliases != "" {
		cfg.Catalog.Aliases = flags.aliases
	}
	if flags.backend != "" {
		cfg.Queue.Backend = flags.backend
		if flags.queue == "" {
			cfg.Queue.Path = config.DefaultQueuePath(flags.backend)
		}
	}
	if flags.queue != "" {
		cfg.Queue.Path = flags.queue
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Logs go to stderr so table output stays clean.
	logCfg := logger.DefaultConfig()
	logCfg.Output = cmd.ErrOrStderr()
	logCfg.Level = logger.WARN
	if flags.verbose {
		logCfg.Level = logger.DEBUG
	}
	log := logger.New(logCfg)

	return songqueue.NewService(
		songqueue.WithSongsPath(cfg.Catalog.Songs),
		songqueue.WithAliasPath(cfg.Catalog.Aliases),
		songqueue.WithQueueBackend(cfg.Queue.Backend),
		songqueue.WithQueuePath(cfg.Queue.Path),
		songqueue.WithDefaultPageSize(cfg.Search.DefaultPageSize),
		songqueue.WithLogger(log),
	)
}

// withService opens the service, runs fn and closes the service again.
func withService(flags *globalFlags, fn func(cmd *cobra.Command, args []string, svc songqueue.Service) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		svc, err := openService(cmd, flags)
		if err != nil {
			return err
		}
		defer svc.Close()
		return fn(cmd, args, svc)
	}
}
