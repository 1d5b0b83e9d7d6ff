package utils

import "github.com/google/uuid"

// NewRequestID returns a random UUID used to correlate log lines of a
// single HTTP request.
func NewRequestID() string {
	return uuid.NewString()
}

// ShortID returns the first block of a UUID string, enough to tell
// concurrent requests apart in a log.
func ShortID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}
