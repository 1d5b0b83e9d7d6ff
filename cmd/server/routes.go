package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/himanishpuri/SongQueue/pkg/utils"
)

const requestIDHeader = "X-Request-ID"

// setupRoutes registers all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	mux := http.NewServeMux()

	// Root endpoint
	mux.HandleFunc("/", s.handleRoot)

	// Health endpoints
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/health/metrics", s.handleMetrics)
	mux.HandleFunc("/debug", s.methodHandler(http.MethodGet, s.handleDebug))

	// Queue endpoints
	mux.HandleFunc("/add_to_queue", s.methodHandler(http.MethodPost, s.handleAddToQueue))
	mux.HandleFunc("/remove_from_queue", s.methodHandler(http.MethodPost, s.handleRemoveFromQueue))
	mux.HandleFunc("/move_queue_item", s.methodHandler(http.MethodPost, s.handleMoveQueueItem))
	mux.HandleFunc("/get_queue", s.methodHandler(http.MethodGet, s.handleGetQueue))
	mux.HandleFunc("/get_current_song", s.methodHandler(http.MethodGet, s.handleGetCurrentSong))

	// Catalog search
	mux.HandleFunc("/search", s.methodHandler(http.MethodGet, s.handleSearch))

	// CORS runs outermost so preflights skip request logging.
	return corsMiddleware(s.config.AllowedOrigins)(s.loggingMiddleware(mux))
}

// corsMiddleware adds CORS headers to responses
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			// Check if origin is allowed
			allowed := false
			if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
				w.Header().Set("Access-Control-Allow-Origin", "*")
				allowed = true
			} else {
				for _, allowedOrigin := range allowedOrigins {
					if allowedOrigin == origin {
						w.Header().Set("Access-Control-Allow-Origin", origin)
						w.Header().Add("Vary", "Origin")
						allowed = true
						break
					}
				}
			}

			if allowed {
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Requested-With, "+requestIDHeader)
				w.Header().Set("Access-Control-Expose-Headers", requestIDHeader)
				w.Header().Set("Access-Control-Max-Age", "3600")
			}

			// Handle preflight requests
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// loggingMiddleware tags each request with an id and logs it together
// with the final status code.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = utils.NewRequestID()
		}
		w.Header().Set(requestIDHeader, id)

		// Create a response writer wrapper to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		start := time.Now()

		s.log.Debugf("[%s] %s %s from %s", utils.ShortID(id), r.Method, r.URL.Path, getClientIP(r))
		next.ServeHTTP(wrapped, r)
		s.log.Infof("[%s] %s %s -> %d (%s)", utils.ShortID(id), r.Method, r.URL.Path, wrapped.statusCode, time.Since(start).Round(time.Microsecond))
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// getClientIP extracts the client IP from the request
func getClientIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// Fall back to RemoteAddr without the port
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.config.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.setupRoutes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Infof("SongQueue server starting on %s", addr)
	s.log.Infof("   Songs: %s", s.config.SongsPath)
	s.log.Infof("   Aliases: %s", s.config.AliasPath)
	s.log.Infof("   Queue: %s (%s)", s.config.QueuePath, s.config.QueueBackend)
	s.log.Infof("   CORS Origins: %v", s.config.AllowedOrigins)
	s.log.Infof("Endpoints:")
	s.log.Infof("   GET    /health               - Health check")
	s.log.Infof("   GET    /api/health/metrics   - Server metrics")
	s.log.Infof("   GET    /debug                - Dump catalog, aliases and queue")
	s.log.Infof("   GET    /search               - Search the catalog")
	s.log.Infof("   GET    /get_queue            - List the queue")
	s.log.Infof("   GET    /get_current_song     - Song at the head of the queue")
	s.log.Infof("   POST   /add_to_queue         - Request a song")
	s.log.Infof("   POST   /remove_from_queue    - Remove a queued song")
	s.log.Infof("   POST   /move_queue_item      - Move a queued song up or down")

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Infof("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
