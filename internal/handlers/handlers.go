package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"codeleap/internal/database"
	"codeleap/internal/localstore"
	"codeleap/internal/store"
	"codeleap/internal/utils"
)

// Server holds all handler dependencies
type Server struct {
	DB      *database.MongoDB
	Stores  *store.Backends
	History *localstore.RunHistory
	Metrics *utils.MetricsCollector
}

// NewServer creates a new Server instance with the given components
func NewServer(db *database.MongoDB, local *localstore.Store, metrics *utils.MetricsCollector) *Server {
	return &Server{
		DB:      db,
		Stores:  store.NewBackends(db, local),
		History: localstore.NewRunHistory(local),
		Metrics: metrics,
	}
}

// track records a request against an operation and returns the latency
// recorder to defer.
func (s *Server) track(operation string) func() {
	s.Metrics.IncrementRequests()
	start := time.Now()
	return func() {
		s.Metrics.AddOperationLatency(operation, time.Since(start))
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeError maps AppError codes to HTTP statuses; anything else is a 500
// with a generic body so internals never leak to the browser.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.Metrics.IncrementErrors()

	if appErr, ok := err.(*utils.AppError); ok {
		http.Error(w, appErr.Message, utils.AppErrorToHTTPStatus(appErr.Code))
		return
	}

	log.Printf("Unclassified handler error: %v", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// HandleHealth reports the request counters and store latencies.
func (s *Server) HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"metrics": s.Metrics.Snapshot(),
		})
	}
}
