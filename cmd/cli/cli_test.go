package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/himanishpuri/SongQueue/pkg/songqueue"
)

const testSongs = `[
	{"id": "1", "name": "Chrono", "artist": "Camellia", "type": "SD", "ds": [5.0, 12.3]},
	{"id": "2", "name": "Oshama Scramble!", "artist": "t+pazolite", "type": "DX", "ds": [13.7]}
]`

const testAliases = `[{"id": "1", "name": "Chronostasis", "alias": "time"}]`

// setupTestFiles writes a small catalog and returns the global flags that
// point at it plus a fresh queue file.
func setupTestFiles(t *testing.T) []string {
	t.Helper()
	dir := t.TempDir()
	songs := filepath.Join(dir, "songs.json")
	aliases := filepath.Join(dir, "alias.json")
	if err := os.WriteFile(songs, []byte(testSongs), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(aliases, []byte(testAliases), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return []string{"--songs", songs, "--aliases", aliases, "--queue", filepath.Join(dir, "queue.json")}
}

func runCLI(t *testing.T, base []string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(append([]string{}, args...), base...))
	err := root.Execute()
	return out.String(), err
}

func TestCLISearch(t *testing.T) {
	base := setupTestFiles(t)

	out, err := runCLI(t, base, "search", "time")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out, "Chronostasis") || !strings.Contains(out, "5.0 / 12.3") {
		t.Errorf("Expected alias match with verbatim difficulties, got:\n%s", out)
	}
	if strings.Contains(out, "Oshama") {
		t.Errorf("Unexpected match:\n%s", out)
	}

	out, _ = runCLI(t, base, "search", "--per-page", "1", "--page", "2")
	if !strings.Contains(out, "Page 2 of 2") {
		t.Errorf("Expected second of two pages, got:\n%s", out)
	}
}

func TestCLIQueueFlow(t *testing.T) {
	base := setupTestFiles(t)

	for _, id := range []string{"1", "2"} {
		if _, err := runCLI(t, base, "queue", "add", id); err != nil {
			t.Fatalf("queue add %s failed: %v", id, err)
		}
	}
	if _, err := runCLI(t, base, "queue", "add", "1"); !errors.Is(err, songqueue.ErrAlreadyQueued) {
		t.Errorf("Expected ErrAlreadyQueued, got %v", err)
	}

	if _, err := runCLI(t, base, "queue", "move", "1", "up"); err != nil {
		t.Fatalf("queue move failed: %v", err)
	}
	out, _ := runCLI(t, base, "current")
	if !strings.Contains(out, "Oshama Scramble!") {
		t.Errorf("Expected song 2 at head after move, got:\n%s", out)
	}

	if _, err := runCLI(t, base, "queue", "move", "0", "up"); !errors.Is(err, songqueue.ErrNoMove) {
		t.Errorf("Expected ErrNoMove, got %v", err)
	}
	if _, err := runCLI(t, base, "queue", "remove", "x"); err == nil {
		t.Error("Expected error for non-integer index")
	}

	if _, err := runCLI(t, base, "queue", "remove", "0"); err != nil {
		t.Fatalf("queue remove failed: %v", err)
	}
	out, _ = runCLI(t, base, "queue", "list")
	if !strings.Contains(out, "Chronostasis") || strings.Contains(out, "Oshama") {
		t.Errorf("Unexpected queue listing:\n%s", out)
	}
}

func TestCLICatalogStats(t *testing.T) {
	base := setupTestFiles(t)

	out, err := runCLI(t, base, "catalog", "stats")
	if err != nil {
		t.Fatalf("catalog stats failed: %v", err)
	}
	for _, want := range []string{"Songs", "2", "Aliases", "json"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in:\n%s", want, out)
		}
	}
}

func TestCLIEmptyQueue(t *testing.T) {
	base := setupTestFiles(t)

	out, _ := runCLI(t, base, "current")
	if !strings.Contains(out, "No song in queue.") {
		t.Errorf("Unexpected output:\n%s", out)
	}
	out, _ = runCLI(t, base, "queue", "list")
	if !strings.Contains(out, "Queue is empty") {
		t.Errorf("Unexpected output:\n%s", out)
	}
}
