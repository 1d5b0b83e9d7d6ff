package search

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"

	"github.com/himanishpuri/SongQueue/pkg/models"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 30
)

// Catalog is the read-only view of the song catalog the engine needs.
type Catalog interface {
	AllSongs() []models.Song
	AliasOf(id string) (models.AliasEntry, bool)
}

// Field identifies which part of a song satisfied a query.
type Field int

const (
	FieldNone Field = iota
	FieldAll        // empty query
	FieldName
	FieldAlias
	FieldArtist
	FieldDifficulty
)

func (f Field) String() string {
	switch f {
	case FieldAll:
		return "all"
	case FieldName:
		return "name"
	case FieldAlias:
		return "alias"
	case FieldArtist:
		return "artist"
	case FieldDifficulty:
		return "difficulty"
	default:
		return "none"
	}
}

// Query is a single search request. Zero Page and PageSize take the
// defaults.
type Query struct {
	Text     string
	Page     int
	PageSize int
}

// Result is one page of matching songs.
type Result struct {
	Songs      []models.Song
	TotalCount int
	TotalPages int
	Page       int
}

type Engine struct {
	catalog         Catalog
	defaultPageSize int
}

// NewEngine creates a search engine over catalog. A defaultPageSize of zero
// or less means DefaultPageSize.
func NewEngine(catalog Catalog, defaultPageSize int) *Engine {
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}
	return &Engine{catalog: catalog, defaultPageSize: defaultPageSize}
}

// Search filters the catalog by q.Text, keeping catalog order, and returns
// the requested page. Out of range pages and non-positive page sizes yield
// an empty page, never an error.
func (e *Engine) Search(q Query) Result {
	page := q.Page
	if page == 0 {
		page = DefaultPage
	}
	pageSize := q.PageSize
	if pageSize == 0 {
		pageSize = e.defaultPageSize
	}

	m := NewMatcher(q.Text)
	matched := lo.Filter(e.catalog.AllSongs(), func(song models.Song, _ int) bool {
		alias, _ := e.catalog.AliasOf(song.ID)
		return m.Match(song, alias) != FieldNone
	})

	return paginate(matched, page, pageSize)
}

func paginate(songs []models.Song, page, pageSize int) Result {
	res := Result{
		Songs:      []models.Song{},
		TotalCount: len(songs),
		Page:       page,
	}
	if pageSize <= 0 {
		return res
	}

	// Division only: page and pageSize come from query strings and their
	// product or sum may not fit in an int.
	res.TotalPages = res.TotalCount / pageSize
	if res.TotalCount%pageSize != 0 {
		res.TotalPages++
	}
	if page < 1 || page > res.TotalPages {
		return res
	}

	start := (page - 1) * pageSize
	end := start + min(pageSize, len(songs)-start)
	res.Songs = songs[start:end]
	return res
}

// Matcher tests songs against one query string.
type Matcher struct {
	needle string
	fold   cases.Caser
}

// NewMatcher prepares a case-insensitive matcher for query. A Matcher is
// not safe for concurrent use.
func NewMatcher(query string) *Matcher {
	fold := cases.Fold()
	return &Matcher{needle: fold.String(query), fold: fold}
}

// Match reports the first field of song that contains the query, checking
// name, alias tokens, artist and difficulties in that order. With an empty
// query every song matches; otherwise songs without an id never match.
func (m *Matcher) Match(song models.Song, alias models.AliasEntry) Field {
	if m.needle == "" {
		return FieldAll
	}
	if song.ID == "" {
		return FieldNone
	}

	if m.contains(song.Name) {
		return FieldName
	}
	if alias.Alias != "" {
		for _, token := range strings.Split(alias.Alias, ",") {
			if m.contains(strings.TrimSpace(token)) {
				return FieldAlias
			}
		}
	}
	if m.contains(song.Artist) {
		return FieldArtist
	}
	for _, d := range song.DS {
		if m.contains(d.String()) {
			return FieldDifficulty
		}
	}
	return FieldNone
}

func (m *Matcher) contains(field string) bool {
	return strings.Contains(m.fold.String(field), m.needle)
}
