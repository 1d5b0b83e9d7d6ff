package catalog

import (
	"github.com/himanishpuri/SongQueue/pkg/models"
)

// Store is the merged, read-only song catalog. It is built once at startup
// and never mutated afterwards, so concurrent reads need no locking.
type Store struct {
	songs   []models.Song
	byID    map[string]int
	aliases map[string]models.AliasEntry
}

// Build merges the alias table into the song list. A song with an alias
// entry takes the alias name as its display name, falling back to its own
// name and then to models.UnknownSong.
func Build(songs []models.Song, aliases []models.AliasEntry) *Store {
	s := &Store{
		songs:   make([]models.Song, len(songs)),
		byID:    make(map[string]int, len(songs)),
		aliases: make(map[string]models.AliasEntry, len(aliases)),
	}

	for _, a := range aliases {
		s.aliases[a.ID] = a
	}

	for i, song := range songs {
		song.DS = append([]models.Difficulty(nil), song.DS...)
		if song.ID != "" {
			if alias, ok := s.aliases[song.ID]; ok {
				song.Name = firstNonEmpty(alias.Name, song.Name, models.UnknownSong)
			}
			if _, dup := s.byID[song.ID]; !dup {
				s.byID[song.ID] = i
			}
		}
		s.songs[i] = song
	}

	return s
}

// Empty returns a store with no songs and no aliases.
func Empty() *Store {
	return Build(nil, nil)
}

// Lookup returns the song with the given id. Songs without an id are never
// found.
func (s *Store) Lookup(id string) (models.Song, bool) {
	if id == "" {
		return models.Song{}, false
	}
	i, ok := s.byID[id]
	if !ok {
		return models.Song{}, false
	}
	return s.songs[i], true
}

// AllSongs returns every song in catalog order. The slice is shared and
// must not be modified.
func (s *Store) AllSongs() []models.Song {
	return s.songs
}

func (s *Store) AliasOf(id string) (models.AliasEntry, bool) {
	a, ok := s.aliases[id]
	return a, ok
}

// Aliases returns the alias table keyed by song id.
func (s *Store) Aliases() map[string]models.AliasEntry {
	out := make(map[string]models.AliasEntry, len(s.aliases))
	for k, v := range s.aliases {
		out[k] = v
	}
	return out
}

func (s *Store) Len() int        { return len(s.songs) }
func (s *Store) AliasCount() int { return len(s.aliases) }

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
