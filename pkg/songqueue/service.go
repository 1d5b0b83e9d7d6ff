package songqueue

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/himanishpuri/SongQueue/internal/catalog"
	"github.com/himanishpuri/SongQueue/internal/queue"
	"github.com/himanishpuri/SongQueue/internal/search"
	"github.com/himanishpuri/SongQueue/internal/storage"
	"github.com/himanishpuri/SongQueue/pkg/logger"
	"github.com/himanishpuri/SongQueue/pkg/models"
	"github.com/himanishpuri/SongQueue/pkg/utils"
)

// songQueueService is the default implementation of the Service interface.
type songQueueService struct {
	catalog    *catalog.Store
	catalogErr error
	engine     *search.Engine
	queue      *queue.Manager
	storage    storage.QueueStore
	log        Logger
	config     *Config
}

// NewService loads the catalog, opens the queue store and restores the
// persisted queue. A catalog that fails to load is logged and replaced by
// an empty one; only a store that cannot be opened is fatal.
func NewService(opts ...Option) (Service, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	// Set default logger if none provided
	if cfg.Logger == nil {
		cfg.Logger = logger.GetLogger()
	}

	cat := cfg.Catalog
	var catErr error
	if cat == nil {
		cat, catErr = catalog.LoadFiles(cfg.SongsPath, cfg.AliasPath)
		if catErr != nil {
			cfg.Logger.Errorf("Catalog unavailable, serving an empty catalog: %v", catErr)
		} else {
			cfg.Logger.Infof("Loaded %d songs and %d aliases", cat.Len(), cat.AliasCount())
		}
	}

	// Create or use provided storage
	stor := cfg.Storage
	if stor == nil {
		if cfg.QueuePath != "" && !utils.FileExists(cfg.QueuePath) {
			cfg.Logger.Infof("No queue at %s, starting a new %s queue", cfg.QueuePath, cfg.QueueBackend)
		}
		var err error
		stor, err = storage.Open(cfg.QueueBackend, cfg.QueuePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create queue storage: %w", err)
		}
	}
	if js, ok := stor.(*storage.JSONStore); ok {
		cfg.Logger.Debugf("Queue file %s (%s)", js.Path(), humanize.Bytes(uint64(js.Size())))
	}

	return &songQueueService{
		catalog:    cat,
		catalogErr: catErr,
		engine:     search.NewEngine(cat, cfg.DefaultPageSize),
		queue:      queue.NewManager(cat, stor, cfg.Logger),
		storage:    stor,
		log:        cfg.Logger,
		config:     cfg,
	}, nil
}

func (s *songQueueService) Enqueue(songID string) error {
	return s.queue.Enqueue(songID)
}

func (s *songQueueService) Dequeue(index int) error {
	return s.queue.Dequeue(index)
}

func (s *songQueueService) Move(index int, dir Direction) error {
	return s.queue.Move(index, dir)
}

func (s *songQueueService) Current() (models.QueueEntry, error) {
	return s.queue.Current()
}

func (s *songQueueService) Snapshot() []models.QueueEntry {
	return s.queue.Snapshot()
}

func (s *songQueueService) Search(query string, page, pageSize int) SearchResult {
	res := s.engine.Search(search.Query{Text: query, Page: page, PageSize: pageSize})
	s.log.Debugf("Search %q page %d: %d of %d songs", query, res.Page, len(res.Songs), res.TotalCount)
	return SearchResult{
		Songs:      res.Songs,
		TotalCount: res.TotalCount,
		TotalPages: res.TotalPages,
		Page:       res.Page,
	}
}

func (s *songQueueService) Stats() Stats {
	st := Stats{
		SongCount:    s.catalog.Len(),
		AliasCount:   s.catalog.AliasCount(),
		QueueLength:  s.queue.Len(),
		QueueBackend: s.backendName(),
	}
	if s.catalogErr != nil {
		st.CatalogError = s.catalogErr.Error()
	}
	return st
}

func (s *songQueueService) Dump() Dump {
	return Dump{
		Songs:   s.catalog.AllSongs(),
		Aliases: s.catalog.Aliases(),
		Queue:   s.queue.Snapshot(),
	}
}

func (s *songQueueService) backendName() string {
	switch s.storage.(type) {
	case *storage.JSONStore:
		return storage.BackendJSON
	case *storage.SQLiteStore:
		return storage.BackendSQLite
	default:
		return fmt.Sprintf("%T", s.storage)
	}
}

func (s *songQueueService) Close() error {
	return s.storage.Close()
}
