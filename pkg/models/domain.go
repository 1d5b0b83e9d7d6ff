package models

// Fallback literals used when a catalog record is missing a display field.
const (
	UnknownSong     = "unknown song"
	UnknownComposer = "unknown composer"
	UnknownType     = "unknown type"
)

// Song represents a catalog entry as read from songs.json.
type Song struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Artist string       `json:"artist"`
	Type   string       `json:"type"`
	DS     []Difficulty `json:"ds"`
}

// AliasEntry is an operator supplied display name and list of search
// synonyms for a catalog song, keyed by song ID.
type AliasEntry struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Alias string `json:"alias"` // Comma separated alternate search terms
}

// QueueEntry is a snapshot of a Song taken when it was requested.
type QueueEntry struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Artist string       `json:"artist"`
	Type   string       `json:"type"`
	DS     []Difficulty `json:"ds"`
}

// EntryFromSong copies the song into a queue entry, filling empty fields
// with the fallback literals.
func EntryFromSong(song Song) QueueEntry {
	return QueueEntry{
		ID:     song.ID,
		Name:   song.Name,
		Artist: song.Artist,
		Type:   song.Type,
		DS:     append([]Difficulty(nil), song.DS...),
	}.WithFallbacks()
}

// WithFallbacks returns a copy of e where every empty display field is
// replaced by its fallback literal and DS is never nil.
func (e QueueEntry) WithFallbacks() QueueEntry {
	if e.Name == "" {
		e.Name = UnknownSong
	}
	if e.Artist == "" {
		e.Artist = UnknownComposer
	}
	if e.Type == "" {
		e.Type = UnknownType
	}
	if e.DS == nil {
		e.DS = []Difficulty{}
	}
	return e
}
