package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/samber/lo"

	"github.com/himanishpuri/SongQueue/pkg/logger"
	"github.com/himanishpuri/SongQueue/pkg/models"
	"github.com/himanishpuri/SongQueue/pkg/songqueue"
)

// Server encapsulates the HTTP server and its dependencies
type Server struct {
	service   songqueue.Service
	config    *ServerConfig
	log       songqueue.Logger
	startedAt time.Time
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	SongsPath      string
	AliasPath      string
	QueuePath      string
	QueueBackend   string
	AllowedOrigins []string
}

// NewServer creates a new server instance
func NewServer(service songqueue.Service, config *ServerConfig, log songqueue.Logger) *Server {
	if log == nil {
		log = logger.GetLogger()
	}
	return &Server{
		service:   service,
		config:    config,
		log:       log,
		startedAt: time.Now(),
	}
}

// respondJSON writes a JSON response
func (s *Server) respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Errorf("Failed to encode JSON response: %v", err)
	}
}

// respondError writes an error response
func (s *Server) respondError(w http.ResponseWriter, statusCode int, message string) {
	s.respondJSON(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	})
}

// respondMutation writes the {"success","message"} body used by queue
// mutations.
func (s *Server) respondMutation(w http.ResponseWriter, statusCode int, message string) {
	s.respondJSON(w, statusCode, MutationResponse{
		Success: statusCode == http.StatusOK,
		Message: message,
	})
}

// mutationStatus maps a queue error to its HTTP status. Only persistence
// failures are server errors; everything else is the caller's fault.
func mutationStatus(err error) int {
	if errors.Is(err, songqueue.ErrPersist) {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}

// handleRoot handles GET /
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.respondJSON(w, http.StatusOK, map[string]any{
		"service": "SongQueue API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":          "GET /health",
			"metrics":         "GET /api/health/metrics",
			"debug":           "GET /debug",
			"search":          "GET /search?query=&page=&per_page=",
			"getQueue":        "GET /get_queue",
			"getCurrentSong":  "GET /get_current_song",
			"addToQueue":      "POST /add_to_queue",
			"removeFromQueue": "POST /remove_from_queue",
			"moveQueueItem":   "POST /move_queue_item",
		},
	})
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleMetrics handles GET /api/health/metrics
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	stats := s.service.Stats()

	status := "healthy"
	if stats.CatalogError != "" {
		status = "degraded"
	}

	s.respondJSON(w, http.StatusOK, MetricsResponse{
		Status:        status,
		SongCount:     stats.SongCount,
		AliasCount:    stats.AliasCount,
		QueueLength:   stats.QueueLength,
		QueueBackend:  stats.QueueBackend,
		CatalogError:  stats.CatalogError,
		StartedAt:     s.startedAt.Format(time.RFC3339),
		Uptime:        strings.TrimSpace(humanize.RelTime(s.startedAt, time.Now(), "", "")),
		UptimeSeconds: int64(time.Since(s.startedAt).Seconds()),
	})
}

// handleDebug handles GET /debug
func (s *Server) handleDebug(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.service.Dump())
}

// handleAddToQueue handles POST /add_to_queue
func (s *Server) handleAddToQueue(w http.ResponseWriter, r *http.Request) {
	var req AddToQueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.log.Warnf("Failed to decode add request: %v", err)
		s.respondMutation(w, http.StatusBadRequest, "Failed to add song to queue.")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondMutation(w, http.StatusBadRequest, "Failed to add song to queue.")
		return
	}

	if err := s.service.Enqueue(req.SongID); err != nil {
		switch {
		case errors.Is(err, songqueue.ErrAlreadyQueued):
			s.respondMutation(w, http.StatusBadRequest, "Song already in queue.")
		case errors.Is(err, songqueue.ErrPersist):
			s.respondMutation(w, http.StatusInternalServerError, "Song added but the queue could not be saved.")
		default:
			s.log.Warnf("Failed to add song %q: %v", req.SongID, err)
			s.respondMutation(w, http.StatusBadRequest, "Failed to add song to queue.")
		}
		return
	}

	s.respondMutation(w, http.StatusOK, "Song added to queue.")
}

// handleRemoveFromQueue handles POST /remove_from_queue
func (s *Server) handleRemoveFromQueue(w http.ResponseWriter, r *http.Request) {
	var req RemoveFromQueueRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Validate() != nil {
		s.respondMutation(w, http.StatusBadRequest, "Failed to remove song from queue.")
		return
	}

	if err := s.service.Dequeue(*req.Index); err != nil {
		s.log.Warnf("Failed to remove index %d: %v", *req.Index, err)
		s.respondMutation(w, mutationStatus(err), "Failed to remove song from queue.")
		return
	}

	s.respondMutation(w, http.StatusOK, "Song removed from queue.")
}

// handleMoveQueueItem handles POST /move_queue_item
func (s *Server) handleMoveQueueItem(w http.ResponseWriter, r *http.Request) {
	var req MoveQueueItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondMutation(w, http.StatusBadRequest, "Failed to move song.")
		return
	}
	dir, err := req.Validate()
	if err != nil {
		s.respondMutation(w, http.StatusBadRequest, "Failed to move song.")
		return
	}

	if err := s.service.Move(*req.Index, dir); err != nil {
		s.log.Debugf("Move of index %d %s rejected: %v", *req.Index, dir, err)
		s.respondMutation(w, mutationStatus(err), "Failed to move song.")
		return
	}

	s.respondMutation(w, http.StatusOK, "Song moved "+string(dir)+".")
}

// handleGetQueue handles GET /get_queue
func (s *Server) handleGetQueue(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, s.service.Snapshot())
}

// handleGetCurrentSong handles GET /get_current_song
func (s *Server) handleGetCurrentSong(w http.ResponseWriter, r *http.Request) {
	current, err := s.service.Current()
	if err != nil {
		s.respondJSON(w, http.StatusNotFound, MessageResponse{Message: "No song in queue."})
		return
	}
	s.respondJSON(w, http.StatusOK, current.WithFallbacks())
}

// handleSearch handles GET /search
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := intParam(q.Get("page"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "page must be an integer")
		return
	}
	perPage, err := intParam(q.Get("per_page"))
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "per_page must be an integer")
		return
	}

	res := s.service.Search(q.Get("query"), page, perPage)
	s.respondJSON(w, http.StatusOK, SearchResponse{
		Songs:       lo.Map(res.Songs, func(song models.Song, _ int) models.Song { return withEmptyDS(song) }),
		TotalSongs:  res.TotalCount,
		TotalPages:  res.TotalPages,
		CurrentPage: res.Page,
	})
}

// intParam parses an optional integer query parameter; absent means 0,
// which the search engine treats as "use the default".
func intParam(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

// withEmptyDS keeps "ds" a JSON array even for songs that had none.
func withEmptyDS(song models.Song) models.Song {
	if song.DS == nil {
		song.DS = []models.Difficulty{}
	}
	return song
}

// methodHandler routes a path to h only for the given method.
func (s *Server) methodHandler(method string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		h(w, r)
	}
}
