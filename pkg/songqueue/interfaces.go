package songqueue

import (
	"github.com/himanishpuri/SongQueue/pkg/models"
)

// Service is the contract the HTTP server and the CLI program against.
type Service interface {
	Enqueue(songID string) error
	Dequeue(index int) error
	Move(index int, dir Direction) error
	Current() (models.QueueEntry, error)
	Snapshot() []models.QueueEntry
	Search(query string, page, pageSize int) SearchResult
	Stats() Stats
	Dump() Dump
	Close() error
}

type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Debugf(format string, args ...any)
}
