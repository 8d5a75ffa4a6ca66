// Package httpapi serves Monday's health and status over HTTP.
package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/keshon/monday-bot/internal/mood"
)

// JobLister reports the names of running background jobs. *jobmgr.Manager
// satisfies it.
type JobLister interface {
	List() []string
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	mood.Snapshot
	UptimeText string   `json:"uptime_text"`
	Jobs       []string `json:"jobs"`
}

// NewRouter wires the status routes.
func NewRouter(tracker *mood.Tracker, jobs JobLister, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		snap := tracker.Snapshot()
		resp := StatusResponse{
			Snapshot:   snap,
			UptimeText: snap.Uptime.Truncate(time.Second).String(),
			Jobs:       []string{},
		}
		if jobs != nil {
			if names := jobs.List(); names != nil {
				resp.Jobs = names
			}
		}
		respondJSON(w, http.StatusOK, resp)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})

	return r
}

func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug().
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("latency", time.Since(start)).
				Msg("http request")
		})
	}
}
