package genie

import (
	"errors"
	"fmt"
	"time"

	"github.com/retail-insight/genie/internal/domain"
	"github.com/retail-insight/genie/internal/repository/catalog"
	evaluc "github.com/retail-insight/genie/internal/usecase/eval"
	healthuc "github.com/retail-insight/genie/internal/usecase/health"
	"github.com/retail-insight/genie/internal/usecase/retrieval"
)

// Document is a catalog record. Retrieval identifies documents by their
// ordinal position in the catalog.
type Document = domain.Document

// Match is one ranked retrieval hit.
type Match = domain.Match

// Query pairs a query text with the catalog position of its relevant
// document, for evaluation.
type Query = evaluc.Query

// SampleQueries labels the bundled five-product sample catalog.
var SampleQueries = evaluc.SampleQueries

// NoAnswerFallback is the answer returned when no document matches.
const NoAnswerFallback = retrieval.NoAnswerFallback

// Client is the genie SDK entry point. It is frozen after New and safe
// for concurrent use.
type Client struct {
	engine *retrieval.Service
	health *healthuc.Service
	obs    *observer
}

// New creates a Client: loads the catalog, builds the term-weight model
// and wires health checks. A catalog source is required.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	docs := cfg.documents
	if docs == nil {
		if cfg.catalogPath == "" {
			return nil, errors.New("genie: catalog source required (use WithCatalogFile or WithDocuments)")
		}
		loaded, err := catalog.Load(cfg.catalogPath)
		if err != nil {
			return nil, fmt.Errorf("genie: load catalog: %w", err)
		}
		docs = loaded
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	engine := retrieval.New(docs)
	return &Client{
		engine: engine,
		health: healthuc.New(engine),
		obs:    obs,
	}, nil
}

// Search returns up to k documents ranked by similarity to the query,
// best first. Empty query, k <= 0 or no overlap all yield an empty slice.
func (c *Client) Search(query string, k int) []Match {
	start := time.Now()
	matches := c.engine.Retrieve(query, k)
	c.obs.observe("search", start, nil)
	return matches
}

// Answer composes a one-line answer from the best-matching document, or
// returns NoAnswerFallback when nothing matches.
func (c *Client) Answer(query string) string {
	start := time.Now()
	answer := c.engine.Answer(query)
	c.obs.observe("answer", start, nil)
	return answer
}

// Document returns the catalog record behind a match index.
func (c *Client) Document(index int) Document {
	return c.engine.Document(index)
}

// DocumentCount returns the number of indexed documents.
func (c *Client) DocumentCount() int {
	return c.engine.DocumentCount()
}

// Evaluate returns the mean precision@k of the engine over labeled queries.
func (c *Client) Evaluate(queries []Query, k int) float64 {
	start := time.Now()
	score := evaluc.Evaluate(c.engine, queries, k)
	c.obs.observe("evaluate", start, nil)
	return score
}

// HealthStatus represents the aggregated engine health.
type HealthStatus struct {
	Status string            // "ok", "degraded"
	Checks map[string]string // component -> "ok"/"error"
}

// Health reports catalog and index readiness.
func (c *Client) Health() HealthStatus {
	report := c.health.Check()
	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}
	return HealthStatus{
		Status: string(report.Status),
		Checks: checks,
	}
}
