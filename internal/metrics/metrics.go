// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/newslens-io/newslens/internal/recommend"
)

var (
	// HTTP Metrics
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// Recommendation Metrics
	RankingDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ranking_duration_seconds",
			Help:    "Duration of recommendation ranking runs in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"strategy"},
	)

	RankingCandidates = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ranking_candidates",
			Help:    "Number of candidates emitted per ranking run",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
		},
		[]string{"strategy"},
	)

	RankingRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ranking_runs_total",
			Help: "Total number of ranking runs",
		},
		[]string{"strategy"},
	)

	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "text_analysis_duration_seconds",
			Help:    "Duration of article text analysis in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Ingest Metrics
	IngestFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ingest_fetch_duration_seconds",
			Help:    "Duration of news provider fetches in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
	)

	IngestArticlesFetched = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_articles_fetched_total",
			Help: "Total number of articles returned by the news provider",
		},
	)

	IngestArticlesStored = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_articles_stored_total",
			Help: "Total number of newly stored articles",
		},
	)

	IngestArticlesDeduplicated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "ingest_articles_deduplicated_total",
			Help: "Total number of fetched articles skipped as already stored",
		},
	)

	IngestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_errors_total",
			Help: "Total number of ingest errors",
		},
		[]string{"error_type"}, // "provider_api", "extraction", "database"
	)

	IngestLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "ingest_last_success_timestamp",
			Help: "Unix timestamp of last successful ingest run",
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)
)

// RecordAPIRequest records latency and outcome for a completed HTTP
// request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequests.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request
// gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDBQuery records the duration and outcome of a database query.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordIngestRun records the outcome of one ingest cycle.
func RecordIngestRun(fetched, stored, deduplicated int, err error) {
	IngestArticlesFetched.Add(float64(fetched))
	IngestArticlesStored.Add(float64(stored))
	IngestArticlesDeduplicated.Add(float64(deduplicated))
	if err != nil {
		IngestErrors.WithLabelValues("provider_api").Inc()
		return
	}
	IngestLastSuccess.SetToCurrentTime()
}

// RecordCircuitBreakerState updates the state gauge for a named breaker.
// State values follow gobreaker: 0=closed, 1=half-open, 2=open.
func RecordCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RankingObserver reports ranking runs to Prometheus. It satisfies the
// recommendation engine's observer hook.
type RankingObserver struct{}

// ObserveRanking records one completed ranking run.
func (RankingObserver) ObserveRanking(strategy recommend.Strategy, duration time.Duration, candidates int) {
	label := string(strategy)
	RankingRuns.WithLabelValues(label).Inc()
	RankingDuration.WithLabelValues(label).Observe(duration.Seconds())
	RankingCandidates.WithLabelValues(label).Observe(float64(candidates))
}
