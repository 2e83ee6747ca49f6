package metrics

import "github.com/prometheus/client_golang/prometheus"

// Retrieval Prometheus metrics.
var (
	RetrievalQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "genie",
			Name:      "retrieval_queries_total",
			Help:      "Total number of retrieval queries",
		},
		[]string{"operation", "outcome"}, // operation: search/answer, outcome: hit/miss
	)

	RetrievalDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "genie",
			Name:      "retrieval_duration_seconds",
			Help:      "Retrieval query duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"operation"},
	)

	RetrievalResults = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "genie",
			Name:      "retrieval_results",
			Help:      "Number of documents returned per query",
			Buckets:   []float64{0, 1, 2, 3, 5, 10, 20},
		},
		[]string{"operation"},
	)
)

var retrievalMetricsRegistered bool

// RegisterRetrievalMetrics registers Prometheus retrieval metrics. Must be called once from main.
func RegisterRetrievalMetrics() {
	if retrievalMetricsRegistered {
		return
	}
	prometheus.MustRegister(RetrievalQueriesTotal)
	prometheus.MustRegister(RetrievalDuration)
	prometheus.MustRegister(RetrievalResults)
	retrievalMetricsRegistered = true
}
