// Package http exposes the read-only query API plus health and metrics
// endpoints. Serving concurrent readers is safe because the database is
// immutable once constructed.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orbitwatch/neoquery/internal/domain"
	"github.com/orbitwatch/neoquery/internal/export"
	"github.com/orbitwatch/neoquery/internal/neodb"
	"github.com/orbitwatch/neoquery/internal/observability"
	"github.com/orbitwatch/neoquery/internal/query"
)

// Server exposes query, health, readiness, and metrics HTTP endpoints.
type Server struct {
	httpServer *http.Server
	db         *neodb.Database
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer creates an HTTP server with GET /approaches, /neo/{designation},
// /healthz, /readyz, and /metrics routes.
func NewServer(addr string, db *neodb.Database, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		db:      db,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("GET /approaches", s.handleApproaches)
	mux.HandleFunc("GET /neo/{designation}", s.handleNEO)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handleApproaches answers a filter query. Filter parameters follow
// query.FromValues; "limit" truncates the result set (0 = unlimited).
func (s *Server) handleApproaches(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	values := r.URL.Query()
	criteria, err := query.FromValues(values)
	if err != nil {
		s.metrics.QueryErrors.Inc()
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	limit := 0
	if raw := values.Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 0 {
			s.metrics.QueryErrors.Inc()
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": "parameter \"limit\": expected a non-negative integer",
			})
			return
		}
	}

	results := query.Limit(s.db.Query(criteria.Filters()...), limit)

	count := 0
	counted := func(yield func(*domain.CloseApproach) bool) {
		for ca := range results {
			if !yield(ca) {
				return
			}
			count++
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := export.WriteJSON(w, counted); err != nil {
		s.logger.Error("write query response", "error", err)
		return
	}

	s.metrics.QueriesServed.Inc()
	s.metrics.QueryDuration.Observe(time.Since(start).Seconds())
	s.metrics.ResultsReturned.Observe(float64(count))
}

// handleNEO looks up one NEO by designation and returns it with its approach
// count.
func (s *Server) handleNEO(w http.ResponseWriter, r *http.Request) {
	designation := domain.NormalizeDesignation(r.PathValue("designation"))

	neo, ok := s.db.NEOByDesignation(designation)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no NEO with designation " + designation})
		return
	}

	body := neo.Serialize()
	if math.IsNaN(neo.Diameter) {
		// JSON has no NaN; unknown diameter is null on the wire.
		body["diameter_km"] = nil
	}
	body["fullname"] = neo.Fullname()
	body["approach_count"] = len(neo.Approaches)
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleReady reports ready once the database is linked; the database is
// immutable after construction, so readiness never regresses.
func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	if s.db == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":     "ready",
		"neos":       s.db.NEOCount(),
		"approaches": s.db.ApproachCount(),
		"built_at":   s.db.BuiltAt().UTC().Format(time.RFC3339),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}
