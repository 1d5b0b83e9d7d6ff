package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/himanishpuri/SongQueue/pkg/models"
	"github.com/himanishpuri/SongQueue/pkg/utils"
)

const DefaultQueueFile = "queue.json"

// JSONStore keeps the queue in a human readable JSON file.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	if path == "" {
		path = DefaultQueueFile
	}
	return &JSONStore{path: path}
}

func (s *JSONStore) Path() string {
	return s.path
}

func (s *JSONStore) Load() ([]models.QueueEntry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []models.QueueEntry{}, nil
		}
		return nil, fmt.Errorf("reading queue file: %w", err)
	}

	var entries []models.QueueEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	if entries == nil {
		entries = []models.QueueEntry{}
	}
	return entries, nil
}

// Save writes the queue with four space indentation and non-ASCII text
// kept as is. The file is replaced atomically.
func (s *JSONStore) Save(entries []models.QueueEntry) error {
	if entries == nil {
		entries = []models.QueueEntry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("encoding queue: %w", err)
	}

	if err := utils.WriteFileAtomic(s.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing queue file: %w", err)
	}
	return nil
}

// Size returns the size in bytes of the persisted file, or 0 if absent.
func (s *JSONStore) Size() int64 {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0
	}
	return info.Size()
}

func (s *JSONStore) Close() error {
	return nil
}
