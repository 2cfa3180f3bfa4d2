package status

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/repository"
)

// Server exposes liveness and database statistics over HTTP, next to the
// interactive shell. It is read-only and unauthenticated.
type Server struct {
	db    *sql.DB
	stats repository.StatsRepository
}

func NewServer(db *sql.DB, stats repository.StatsRepository) *Server {
	return &Server{db: db, stats: stats}
}

// Router builds the HTTP routes.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	return router
}

// ListenAndServe blocks serving the status routes on addr.
func (s *Server) ListenAndServe(addr string) error {
	logger.Info("Status server listening", "address", addr)
	return http.ListenAndServe(addr, s.Router())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		logger.Error("Health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.stats.Collect(r.Context())
	if err != nil {
		logger.Error("Stats collection failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "stats unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode status response", "error", err)
	}
}
