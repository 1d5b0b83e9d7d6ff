package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/himanishpuri/SongQueue/pkg/models"
)

// LoadFiles reads the song list and the alias list from disk and builds a
// Store. If either file is missing or malformed, an empty store is returned
// together with the error so the caller can report it and keep serving.
func LoadFiles(songsPath, aliasPath string) (*Store, error) {
	var songs []models.Song
	if err := readJSON(songsPath, &songs); err != nil {
		return Empty(), fmt.Errorf("loading songs: %w", err)
	}

	var aliases []models.AliasEntry
	if err := readJSON(aliasPath, &aliases); err != nil {
		return Empty(), fmt.Errorf("loading aliases: %w", err)
	}

	return Build(songs, aliases), nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}
