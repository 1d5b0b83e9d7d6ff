package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "queue.json")

	if err := WriteFileAtomic(path, []byte("first"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic failed: %v", err)
	}
	if err := WriteFileAtomic(path, []byte("second"), 0o644); err != nil {
		t.Fatalf("WriteFileAtomic overwrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back file: %v", err)
	}
	if string(data) != "second" {
		t.Errorf("Expected 'second', got %q", data)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected only the target file to remain, found %d entries", len(entries))
	}
}

func TestWriteFileAtomicIntoMissingParentFails(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	if err := WriteFileAtomic(filepath.Join(blocker, "queue.json"), []byte("x"), 0o644); err == nil {
		t.Error("Expected error when parent path is a file")
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.json")

	if FileExists(path) {
		t.Error("Expected missing file to report false")
	}
	os.WriteFile(path, []byte("{}"), 0o644)
	if !FileExists(path) {
		t.Error("Expected existing file to report true")
	}
	if FileExists(dir) {
		t.Error("Expected directory to report false")
	}
}

func TestNewRequestID(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()
	if a == b {
		t.Error("Expected distinct request IDs")
	}
	if len(a) != 36 {
		t.Errorf("Expected 36 char UUID, got %q", a)
	}
	if ShortID(a) != a[:8] {
		t.Errorf("ShortID mismatch: %q", ShortID(a))
	}
	if ShortID("abc") != "abc" {
		t.Errorf("ShortID should keep short ids intact")
	}
}
