package queue

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/himanishpuri/SongQueue/pkg/models"
)

var (
	ErrAlreadyQueued = errors.New("song already in queue")
	ErrSongNotFound  = errors.New("song not found in catalog")
	ErrOutOfRange    = errors.New("queue index out of range")
	ErrNoMove        = errors.New("song is already at the edge of the queue")
	ErrQueueEmpty    = errors.New("no song in queue")
	ErrPersist       = errors.New("queue changed but could not be saved")
)

// Direction is the way Move shifts an entry.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection accepts "up" or "down" in any case.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case Up, Down:
		return d, nil
	}
	return "", fmt.Errorf("%w: unknown direction %q", ErrOutOfRange, s)
}

// Catalog resolves song ids for Enqueue.
type Catalog interface {
	Lookup(id string) (models.Song, bool)
}

// Store persists the full queue.
type Store interface {
	Load() ([]models.QueueEntry, error)
	Save(entries []models.QueueEntry) error
}

type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
	Debugf(format string, args ...any)
}

// Manager owns the play queue. Every mutation, including its write to the
// store, runs under the write lock; reads take the read lock and return
// copies.
type Manager struct {
	mu      sync.RWMutex
	entries []models.QueueEntry
	catalog Catalog
	store   Store
	log     Logger
}

// NewManager loads the persisted queue from store. A missing or unreadable
// queue is logged and replaced with an empty one.
func NewManager(catalog Catalog, store Store, log Logger) *Manager {
	m := &Manager{
		entries: []models.QueueEntry{},
		catalog: catalog,
		store:   store,
		log:     log,
	}

	loaded, err := store.Load()
	if err != nil {
		log.Errorf("Failed to load persisted queue, starting empty: %v", err)
		return m
	}

	seen := make(map[string]bool, len(loaded))
	for _, e := range loaded {
		if seen[e.ID] {
			log.Warnf("Dropping duplicate queue entry for song %s", e.ID)
			continue
		}
		seen[e.ID] = true
		m.entries = append(m.entries, e.WithFallbacks())
	}
	log.Infof("Loaded queue with %d songs", len(m.entries))
	return m
}

// Enqueue appends a snapshot of the catalog song to the end of the queue.
func (m *Manager) Enqueue(songID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if lo.ContainsBy(m.entries, func(e models.QueueEntry) bool { return e.ID == songID }) {
		return fmt.Errorf("%w: %s", ErrAlreadyQueued, songID)
	}

	song, ok := m.catalog.Lookup(songID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrSongNotFound, songID)
	}

	m.entries = append(m.entries, models.EntryFromSong(song))
	m.log.Infof("Queued song %s (%s), queue length %d", song.ID, song.Name, len(m.entries))
	return m.persist()
}

// Dequeue removes the entry at index; later entries shift down by one.
func (m *Manager) Dequeue(index int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.entries) {
		return fmt.Errorf("%w: %d (length %d)", ErrOutOfRange, index, len(m.entries))
	}

	removed := m.entries[index]
	m.entries = append(m.entries[:index], m.entries[index+1:]...)
	m.log.Infof("Removed song %s from position %d", removed.ID, index)
	return m.persist()
}

// Move swaps the entry at index with its neighbour in direction dir.
// Moving the head up or the tail down returns ErrNoMove and writes nothing.
func (m *Manager) Move(index int, dir Direction) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if index < 0 || index >= len(m.entries) {
		return fmt.Errorf("%w: %d (length %d)", ErrOutOfRange, index, len(m.entries))
	}

	var other int
	switch dir {
	case Up:
		other = index - 1
	case Down:
		other = index + 1
	default:
		return fmt.Errorf("%w: unknown direction %q", ErrOutOfRange, dir)
	}
	if other < 0 || other >= len(m.entries) {
		return fmt.Errorf("%w: cannot move position %d %s", ErrNoMove, index, dir)
	}

	m.entries[index], m.entries[other] = m.entries[other], m.entries[index]
	m.log.Debugf("Moved song %s %s to position %d", m.entries[other].ID, dir, other)
	return m.persist()
}

// Current returns the head of the queue.
func (m *Manager) Current() (models.QueueEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.entries) == 0 {
		return models.QueueEntry{}, ErrQueueEmpty
	}
	return cloneEntry(m.entries[0]), nil
}

// Snapshot returns a copy of the whole queue in play order.
func (m *Manager) Snapshot() []models.QueueEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return lo.Map(m.entries, func(e models.QueueEntry, _ int) models.QueueEntry {
		return cloneEntry(e)
	})
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// persist must be called with the write lock held. On failure the in-memory
// change is kept and the error wraps ErrPersist.
func (m *Manager) persist() error {
	if err := m.store.Save(m.entries); err != nil {
		m.log.Errorf("Failed to persist queue: %v", err)
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

func cloneEntry(e models.QueueEntry) models.QueueEntry {
	e.DS = append([]models.Difficulty{}, e.DS...)
	return e
}
