package storage

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/himanishpuri/SongQueue/pkg/models"
)

func sampleEntries() []models.QueueEntry {
	return []models.QueueEntry{
		{ID: "1", Name: "Chronostasis", Artist: "Camellia", Type: "SD", DS: []models.Difficulty{models.DifficultyOf("5.0"), models.DifficultyOf("12.3")}},
		{ID: "2", Name: "夜に駆ける", Artist: "YOASOBI", Type: "DX", DS: []models.Difficulty{}},
		{ID: "3", Name: "Bad Apple!!", Artist: "unknown composer", Type: "unknown type", DS: []models.Difficulty{models.DifficultyOf("12+")}},
	}
}

// setupStores returns every backend, each rooted in its own temp dir.
func setupStores(t *testing.T) map[string]QueueStore {
	t.Helper()

	dir := t.TempDir()
	sqliteStore, err := NewSQLiteStore(filepath.Join(dir, "db", "queue.sqlite3"))
	if err != nil {
		t.Fatalf("Failed to create SQLite store: %v", err)
	}
	t.Cleanup(func() {
		sqliteStore.Close()
	})

	return map[string]QueueStore{
		BackendJSON:   NewJSONStore(filepath.Join(dir, "queue.json")),
		BackendSQLite: sqliteStore,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, store := range setupStores(t) {
		t.Run(name, func(t *testing.T) {
			empty, err := store.Load()
			if err != nil {
				t.Fatalf("Load on fresh store failed: %v", err)
			}
			if len(empty) != 0 {
				t.Fatalf("Expected empty queue, got %d entries", len(empty))
			}

			want := sampleEntries()
			if err := store.Save(want); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			got, err := store.Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Round trip mismatch:\n got: %+v\nwant: %+v", got, want)
			}

			// Overwrite with a shorter, reordered queue.
			shorter := []models.QueueEntry{want[2], want[0]}
			if err := store.Save(shorter); err != nil {
				t.Fatalf("Second save failed: %v", err)
			}
			got, _ = store.Load()
			if !reflect.DeepEqual(got, shorter) {
				t.Errorf("Expected overwrite, got %+v", got)
			}

			if err := store.Save(nil); err != nil {
				t.Fatalf("Saving empty queue failed: %v", err)
			}
			got, _ = store.Load()
			if len(got) != 0 {
				t.Errorf("Expected empty queue after clearing, got %+v", got)
			}
		})
	}
}

func TestJSONStoreFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.json")
	store := NewJSONStore(path)

	if err := store.Save(sampleEntries()[1:2]); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read queue file: %v", err)
	}

	text := string(data)
	if !strings.Contains(text, "夜に駆ける") {
		t.Errorf("Expected non-ASCII name kept literally, got:\n%s", text)
	}
	if !strings.Contains(text, "\n        \"id\": \"2\"") {
		t.Errorf("Expected four space indentation, got:\n%s", text)
	}
	if store.Size() != int64(len(data)) {
		t.Errorf("Size() = %d, want %d", store.Size(), len(data))
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.json")
	if err := os.WriteFile(path, []byte(`[{"id": "1", "name": `), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	_, err := NewJSONStore(path).Load()
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("Expected ErrCorrupt, got %v", err)
	}
}

func TestJSONStoreNullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queue.json")
	os.WriteFile(path, []byte("null"), 0o644)

	entries, err := NewJSONStore(path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("Expected empty non-nil queue, got %#v", entries)
	}
}

func TestSQLiteStoreCorruptDS(t *testing.T) {
	store := setupStores(t)[BackendSQLite].(*SQLiteStore)

	if err := store.DB.Create(&QueueRow{Position: 0, SongID: "1", DS: "{broken"}).Error; err != nil {
		t.Fatalf("Failed to insert row: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("Expected ErrCorrupt, got %v", err)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(BackendJSON, filepath.Join(dir, "q.json"))
	if err != nil {
		t.Fatalf("Open json failed: %v", err)
	}
	if _, ok := s.(*JSONStore); !ok {
		t.Errorf("Expected *JSONStore, got %T", s)
	}

	s, err = Open(BackendSQLite, filepath.Join(dir, "q.sqlite3"))
	if err != nil {
		t.Fatalf("Open sqlite failed: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*SQLiteStore); !ok {
		t.Errorf("Expected *SQLiteStore, got %T", s)
	}

	if _, err := Open("redis", "x"); err == nil {
		t.Error("Expected error for unknown backend")
	}
}
