package storage

import (
	"errors"
	"fmt"

	"github.com/himanishpuri/SongQueue/pkg/models"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// ErrCorrupt is returned by Load when persisted queue data exists but
// cannot be decoded.
var ErrCorrupt = errors.New("persisted queue is corrupt")

// QueueStore persists the whole queue. Save overwrites the previous
// version; Load returns an empty queue and no error when nothing has been
// saved yet.
type QueueStore interface {
	Load() ([]models.QueueEntry, error)
	Save(entries []models.QueueEntry) error
	Close() error
}

// Open returns the store for backend at path.
func Open(backend, path string) (QueueStore, error) {
	switch backend {
	case BackendJSON, "":
		return NewJSONStore(path), nil
	case BackendSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown queue backend %q", backend)
	}
}
