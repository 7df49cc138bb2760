// Package http exposes the plant dataset over a JSON API alongside health,
// readiness, and metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Leonidas-cyber/energia-Mexico/internal/domain"
	"github.com/Leonidas-cyber/energia-Mexico/internal/observability"
	"github.com/Leonidas-cyber/energia-Mexico/internal/stats"
)

// maxIngestBody caps uploaded CSV payloads.
const maxIngestBody = 64 << 20

// Ingestor runs an ingestion pass over a CSV source.
type Ingestor interface {
	IngestSource(ctx context.Context, source string, origin domain.SourceOrigin) ([]domain.PlantRecord, error)
}

// RecordStore is the record collection behind the API.
type RecordStore interface {
	Replace(records []domain.PlantRecord)
	Append(records []domain.PlantRecord)
	All() []domain.PlantRecord
	Len() int
	CheckReadiness(ctx context.Context) error
}

// PatternStore manages the ownership classification pattern list.
type PatternStore interface {
	Patterns() []domain.ClassificationPattern
	Replace(patterns []domain.ClassificationPattern) error
}

// Server exposes the dataset API plus health, readiness, and metrics routes.
type Server struct {
	httpServer *http.Server
	store      RecordStore
	ingestor   Ingestor
	patterns   PatternStore
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer wires all routes onto a fresh mux.
func NewServer(addr string, store RecordStore, ingestor Ingestor, patterns PatternStore, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		store:    store,
		ingestor: ingestor,
		patterns: patterns,
		metrics:  metrics,
		logger:   logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/v1/plants/ingest", s.handleIngest)
	mux.HandleFunc("GET /api/v1/plants", s.handleListPlants)
	mux.HandleFunc("GET /api/v1/kpis", s.handleKPIs)
	mux.HandleFunc("GET /api/v1/quality", s.handleQuality)
	mux.HandleFunc("GET /api/v1/patterns", s.handleGetPatterns)
	mux.HandleFunc("PUT /api/v1/patterns", s.handlePutPatterns)

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

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// ingestRequest is the JSON form of an ingest call, pointing at a remote or
// local CSV. A text/csv body carries the CSV inline instead.
type ingestRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleIngest(w http.ResponseWriter, r *http.Request) {
	mode := r.URL.Query().Get("mode")
	if mode == "" {
		mode = "replace"
	}
	if mode != "replace" && mode != "append" {
		writeError(w, http.StatusBadRequest, "mode must be replace or append")
		return
	}

	source, ok := s.readIngestSource(w, r)
	if !ok {
		return
	}

	records, err := s.ingestor.IngestSource(r.Context(), source, domain.OriginUserCSV)
	if err != nil {
		s.logger.Error("ingestion failed", "error", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if mode == "replace" {
		s.store.Replace(records)
	} else {
		s.store.Append(records)
	}
	s.metrics.PlantsLoaded.Set(float64(s.store.Len()))

	writeJSON(w, http.StatusOK, map[string]any{
		"mode":     mode,
		"ingested": len(records),
		"total":    s.store.Len(),
	})
}

// readIngestSource extracts the CSV source from the request body: a JSON
// envelope with a URL, or inline CSV text.
func (s *Server) readIngestSource(w http.ResponseWriter, r *http.Request) (string, bool) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxIngestBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading request body failed")
		return "", false
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, "request body is empty")
		return "", false
	}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req ingestRequest
		if err := json.Unmarshal(body, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return "", false
		}
		if req.URL == "" {
			writeError(w, http.StatusBadRequest, "url is required")
			return "", false
		}
		return req.URL, true
	}
	return string(body), true
}

func (s *Server) handleListPlants(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records := filter.Apply(s.store.All())
	writeJSON(w, http.StatusOK, map[string]any{
		"count":  len(records),
		"plants": records,
	})
}

func (s *Server) handleKPIs(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records := filter.Apply(s.store.All())
	writeJSON(w, http.StatusOK, map[string]any{
		"kpis":                stats.KPIs(records),
		"top_owners_by_power": stats.TopOwnersByPower(records, 10),
		"top_owners_by_count": stats.TopOwnersByCount(records, 10),
		"power_by_state":      stats.PowerByState(records),
	})
}

func (s *Server) handleQuality(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, stats.Quality(s.store.All()))
}

func (s *Server) handleGetPatterns(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.patterns.Patterns())
}

func (s *Server) handlePutPatterns(w http.ResponseWriter, r *http.Request) {
	var patterns []domain.ClassificationPattern
	if err := json.NewDecoder(r.Body).Decode(&patterns); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.patterns.Replace(patterns); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.metrics.PatternsActive.Set(float64(len(s.patterns.Patterns())))

	writeJSON(w, http.StatusOK, s.patterns.Patterns())
}

// filterFromQuery maps repeated query parameters onto a stats filter.
func filterFromQuery(r *http.Request) (stats.Filter, error) {
	q := r.URL.Query()
	f := stats.Filter{
		Subcategories: q["subcategory"],
		States:        q["state"],
		Owners:        q["owner"],
	}
	for _, c := range q["category"] {
		f.Categories = append(f.Categories, domain.EnergyCategory(c))
	}
	for _, sec := range q["sector"] {
		f.Sectors = append(f.Sectors, domain.Sector(sec))
	}

	if v := q.Get("min_power"); v != "" {
		mw, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return stats.Filter{}, &queryError{param: "min_power"}
		}
		f.MinPowerMW = &mw
	}
	if v := q.Get("max_power"); v != "" {
		mw, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return stats.Filter{}, &queryError{param: "max_power"}
		}
		f.MaxPowerMW = &mw
	}
	return f, nil
}

type queryError struct {
	param string
}

func (e *queryError) Error() string { return "invalid numeric value for " + e.param }

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
