package main

import (
	"errors"
	"strings"

	"github.com/himanishpuri/SongQueue/pkg/models"
	"github.com/himanishpuri/SongQueue/pkg/songqueue"
)

// AddToQueueRequest is the request body for POST /add_to_queue
type AddToQueueRequest struct {
	SongID string `json:"song_id"`
}

// Validate checks if the request is valid
func (r *AddToQueueRequest) Validate() error {
	if strings.TrimSpace(r.SongID) == "" {
		return errors.New("song_id is required")
	}
	return nil
}

// RemoveFromQueueRequest is the request body for POST /remove_from_queue
type RemoveFromQueueRequest struct {
	Index *int `json:"index"`
}

func (r *RemoveFromQueueRequest) Validate() error {
	if r.Index == nil {
		return errors.New("index is required")
	}
	return nil
}

// MoveQueueItemRequest is the request body for POST /move_queue_item
type MoveQueueItemRequest struct {
	Index     *int   `json:"index"`
	Direction string `json:"direction"` // "up" or "down"
}

// Validate checks the index is present and the direction is known, and
// returns the parsed direction.
func (r *MoveQueueItemRequest) Validate() (songqueue.Direction, error) {
	if r.Index == nil {
		return "", errors.New("index is required")
	}
	return songqueue.ParseDirection(r.Direction)
}

// MutationResponse is returned by every route that changes the queue.
type MutationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse carries a bare message, e.g. when the queue is empty.
type MessageResponse struct {
	Message string `json:"message"`
}

// SearchResponse is the response for GET /search
type SearchResponse struct {
	Songs       []models.Song `json:"songs"`
	TotalSongs  int           `json:"total_songs"`
	TotalPages  int           `json:"total_pages"`
	CurrentPage int           `json:"current_page"`
}

// MetricsResponse provides server health and catalog metrics
type MetricsResponse struct {
	Status        string `json:"status"`
	SongCount     int    `json:"song_count"`
	AliasCount    int    `json:"alias_count"`
	QueueLength   int    `json:"queue_length"`
	QueueBackend  string `json:"queue_backend"`
	CatalogError  string `json:"catalog_error,omitempty"`
	StartedAt     string `json:"started_at"`
	Uptime        string `json:"uptime"`
	UptimeSeconds int64  `json:"uptime_seconds"`
}

// ErrorResponse is the standard error response format
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}
