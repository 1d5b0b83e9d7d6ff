package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/himanishpuri/SongQueue/pkg/models"
)

func TestBuildMergesAliasName(t *testing.T) {
	store := Build(
		[]models.Song{{ID: "1", Name: "Chrono"}, {ID: "2", Name: "Plain"}},
		[]models.AliasEntry{{ID: "1", Name: "Chronostasis", Alias: "chrono,time"}},
	)

	song, ok := store.Lookup("1")
	if !ok {
		t.Fatal("Expected song 1 to be found")
	}
	if song.Name != "Chronostasis" {
		t.Errorf("Expected merged name 'Chronostasis', got %q", song.Name)
	}

	plain, _ := store.Lookup("2")
	if plain.Name != "Plain" {
		t.Errorf("Expected song without alias to keep its name, got %q", plain.Name)
	}

	alias, ok := store.AliasOf("1")
	if !ok || alias.Alias != "chrono,time" {
		t.Errorf("Expected alias entry for song 1, got %+v (found=%v)", alias, ok)
	}
}

func TestBuildNameFallbacks(t *testing.T) {
	store := Build(
		[]models.Song{{ID: "1", Name: "Own"}, {ID: "2"}},
		[]models.AliasEntry{{ID: "1"}, {ID: "2"}},
	)

	if s, _ := store.Lookup("1"); s.Name != "Own" {
		t.Errorf("Expected fallback to song name, got %q", s.Name)
	}
	if s, _ := store.Lookup("2"); s.Name != models.UnknownSong {
		t.Errorf("Expected fallback to %q, got %q", models.UnknownSong, s.Name)
	}
}

func TestBuildKeepsOrderAndIdlessSongs(t *testing.T) {
	store := Build([]models.Song{{ID: "b"}, {Name: "no id"}, {ID: "a"}}, nil)

	all := store.AllSongs()
	if len(all) != 3 {
		t.Fatalf("Expected 3 songs, got %d", len(all))
	}
	if all[0].ID != "b" || all[1].Name != "no id" || all[2].ID != "a" {
		t.Errorf("Catalog order not preserved: %+v", all)
	}
	if _, ok := store.Lookup(""); ok {
		t.Error("Expected empty id lookup to fail")
	}
	if store.Len() != 3 {
		t.Errorf("Expected Len 3, got %d", store.Len())
	}
}

func TestBuildDoesNotAliasInput(t *testing.T) {
	songs := []models.Song{{ID: "1", Name: "Chrono", DS: []models.Difficulty{models.DifficultyOf("7.0")}}}
	store := Build(songs, []models.AliasEntry{{ID: "1", Name: "Chronostasis"}})

	songs[0].Name = "mutated"
	songs[0].DS[0] = models.DifficultyOf("1.0")

	s, _ := store.Lookup("1")
	if s.Name != "Chronostasis" || s.DS[0].String() != "7.0" {
		t.Errorf("Store shares memory with its input: %+v", s)
	}
}

func TestBuildLastAliasWins(t *testing.T) {
	store := Build(
		[]models.Song{{ID: "1", Name: "x"}},
		[]models.AliasEntry{{ID: "1", Name: "first"}, {ID: "1", Name: "second"}},
	)
	if s, _ := store.Lookup("1"); s.Name != "second" {
		t.Errorf("Expected last alias to win, got %q", s.Name)
	}
	if store.AliasCount() != 1 {
		t.Errorf("Expected 1 alias, got %d", store.AliasCount())
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	songs := writeFile(t, dir, "songs.json", `[
		{"id": "1", "name": "Chrono", "artist": "Someone", "type": "SD", "ds": [5.0, 7.5, 12.3]},
		{"id": "2", "name": "Other", "artist": "Else", "type": "DX", "ds": []}
	]`)
	aliases := writeFile(t, dir, "alias.json", `[{"id": "1", "name": "Chronostasis", "alias": "chrono, time"}]`)

	store, err := LoadFiles(songs, aliases)
	if err != nil {
		t.Fatalf("LoadFiles failed: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("Expected 2 songs, got %d", store.Len())
	}
	s, _ := store.Lookup("1")
	if s.Name != "Chronostasis" {
		t.Errorf("Expected merged name, got %q", s.Name)
	}
	if len(s.DS) != 3 || s.DS[1].String() != "7.5" {
		t.Errorf("Unexpected ds: %v", s.DS)
	}
}

func TestLoadFilesMissingOrMalformed(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "songs.json", `[{"id": "1"}]`)
	bad := writeFile(t, dir, "alias.json", `{not json`)
	missing := filepath.Join(dir, "absent.json")

	tests := []struct {
		name   string
		songs  string
		alias  string
		notExi bool
	}{
		{"missing songs", missing, good, true},
		{"missing aliases", good, missing, true},
		{"malformed aliases", good, bad, false},
		{"malformed songs", bad, good, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := LoadFiles(tt.songs, tt.alias)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if store == nil || store.Len() != 0 || store.AliasCount() != 0 {
				t.Errorf("Expected an empty store, got %d songs", store.Len())
			}
			if tt.notExi != errors.Is(err, os.ErrNotExist) {
				t.Errorf("errors.Is(err, os.ErrNotExist) = %v for %v", !tt.notExi, err)
			}
		})
	}
}
