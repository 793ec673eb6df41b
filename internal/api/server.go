package api

import (
	"encoding/json"
	"net/http"
	"sync"

	"wealth-projector/internal/config"
	"wealth-projector/internal/db"
	"wealth-projector/internal/engine"
)

// Server is the HTTP API that connects the projection engine and the database.
// All rendering and formatting is client-side; the API speaks raw numbers.
type Server struct {
	db          *db.DB
	projections *engine.ProjectionCache
	version     string

	mu  sync.RWMutex
	cfg *config.Config
}

// NewServer creates a Server with the given plan settings and database.
func NewServer(cfg *config.Config, database *db.DB, version string) *Server {
	return &Server{
		cfg:         cfg,
		db:          database,
		projections: engine.NewProjectionCache(),
		version:     version,
	}
}

// Handler returns the HTTP handler with all API routes and CORS middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/config", s.handleGetConfig)
	mux.HandleFunc("POST /api/config", s.handleSetConfig)
	mux.HandleFunc("GET /api/positions", s.handleGetPositions)
	mux.HandleFunc("POST /api/positions", s.handleAddPosition)
	mux.HandleFunc("PUT /api/positions/{id}", s.handleUpdatePosition)
	mux.HandleFunc("DELETE /api/positions/{id}", s.handleDeletePosition)
	mux.HandleFunc("POST /api/project", s.handleProject)
	return corsMiddleware(mux)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(204)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{
		"version":            s.version,
		"cached_projections": s.projections.Len(),
	})
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	cfg := *s.cfg
	s.mu.RUnlock()
	writeJSON(w, cfg)
}

func (s *Server) handleSetConfig(w http.ResponseWriter, r *http.Request) {
	var cfg config.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid config payload")
		return
	}
	if msg := validateSettings(&cfg); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	s.mu.Lock()
	*s.cfg = cfg
	s.mu.Unlock()

	if s.db != nil {
		if err := s.db.SaveConfig(&cfg); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	writeJSON(w, cfg)
}

// validateSettings guards the engine's preconditions at the API boundary; the
// engine itself assumes pre-validated inputs.
func validateSettings(cfg *config.Config) string {
	switch {
	case cfg.HorizonYears < 1 || cfg.HorizonYears > 100:
		return "horizon_years must be between 1 and 100"
	case cfg.AnnualInvestment < 0 || cfg.LumpSumInvestment < 0:
		return "investment amounts must be non-negative"
	case cfg.VolatilityPercent < 0:
		return "volatility_percent must be non-negative"
	case cfg.TailPercentile < 1 || cfg.TailPercentile > 49:
		return "tail_percentile must be between 1 and 49"
	case cfg.CurrentAge < 0:
		return "current_age must be non-negative"
	}
	return ""
}
