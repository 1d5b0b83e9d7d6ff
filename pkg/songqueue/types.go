package songqueue

import (
	"github.com/himanishpuri/SongQueue/internal/queue"
	"github.com/himanishpuri/SongQueue/pkg/models"
)

// Direction is the way Move shifts a queue entry.
type Direction = queue.Direction

const (
	Up   = queue.Up
	Down = queue.Down
)

// Errors returned by Service; compare with errors.Is.
var (
	ErrAlreadyQueued = queue.ErrAlreadyQueued
	ErrSongNotFound  = queue.ErrSongNotFound
	ErrOutOfRange    = queue.ErrOutOfRange
	ErrNoMove        = queue.ErrNoMove
	ErrQueueEmpty    = queue.ErrQueueEmpty
	ErrPersist       = queue.ErrPersist
)

// ParseDirection accepts "up" or "down".
func ParseDirection(s string) (Direction, error) {
	return queue.ParseDirection(s)
}

// SearchResult is one page of catalog songs matching a query.
type SearchResult struct {
	Songs      []models.Song
	TotalCount int
	TotalPages int
	Page       int
}

// Stats summarises the loaded catalog and the live queue.
type Stats struct {
	SongCount    int
	AliasCount   int
	QueueLength  int
	QueueBackend string
	CatalogError string // Non-empty when the catalog failed to load
}

// Dump is the full internal state, for debugging.
type Dump struct {
	Songs   []models.Song                `json:"songs"`
	Aliases map[string]models.AliasEntry `json:"aliases"`
	Queue   []models.QueueEntry          `json:"queue"`
}
