// Package chi exposes the retrieval engine over HTTP.
package chi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/retail-insight/genie/internal/metrics"
	"github.com/retail-insight/genie/internal/usecase/health"
	"github.com/retail-insight/genie/internal/usecase/retrieval"
)

// Server handles the query API. The engine behind it is built once at
// startup and never mutated, so handlers need no locking.
type Server struct {
	engine      *retrieval.Service
	health      *health.Service
	logger      *zap.Logger
	defaultTopK int
	maxTopK     int
}

// NewServer creates an HTTP API server.
func NewServer(
	engine *retrieval.Service,
	healthSvc *health.Service,
	logger *zap.Logger,
	defaultTopK, maxTopK int,
) *Server {
	return &Server{
		engine:      engine,
		health:      healthSvc,
		logger:      logger,
		defaultTopK: defaultTopK,
		maxTopK:     maxTopK,
	}
}

// Routes registers the API endpoints on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/search", s.handleSearch)
	r.Post("/answer", s.handleAnswer)
	r.Get("/health", s.handleHealth)
}

// handleSearch handles POST /search.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	k := s.defaultTopK
	if req.K != nil {
		if *req.K < 0 {
			writeError(w, http.StatusBadRequest, codeValidationFailed, "k must be non-negative")
			return
		}
		k = *req.K
	}
	if k > s.maxTopK {
		k = s.maxTopK
	}

	start := time.Now()
	ranked := s.engine.Retrieve(req.Query, k)
	observeRetrieval("search", start, len(ranked))

	results := make([]SearchResult, len(ranked))
	for i, m := range ranked {
		doc := s.engine.Document(m.Index)
		results[i] = SearchResult{
			Index:       m.Index,
			Score:       m.Score,
			Title:       doc.Title,
			Description: doc.Description,
		}
	}

	writeJSON(w, http.StatusOK, SearchResponse{Results: results})
}

// handleAnswer handles POST /answer.
func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	start := time.Now()
	answer := s.engine.Answer(req.Query)
	hits := 1
	if answer == retrieval.NoAnswerFallback {
		hits = 0
	}
	observeRetrieval("answer", start, hits)

	writeJSON(w, http.StatusOK, AnswerResponse{Answer: answer})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	report := s.health.Check()

	checks := make(map[string]string, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = string(result)
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// observeRetrieval records per-query metrics for an operation.
func observeRetrieval(operation string, start time.Time, results int) {
	outcome := "hit"
	if results == 0 {
		outcome = "miss"
	}
	metrics.RetrievalQueriesTotal.WithLabelValues(operation, outcome).Inc()
	metrics.RetrievalDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	metrics.RetrievalResults.WithLabelValues(operation).Observe(float64(results))
}
