// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package instruments the application using the Prometheus client
library, exposing metrics for monitoring performance, errors, and system
health.

# Overview

The package provides metrics for:
  - HTTP request latency and throughput
  - Database query performance
  - Recommendation ranking latency and candidate counts
  - News ingest statistics
  - Circuit breaker state transitions

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Active requests (gauge)

Database Metrics:
  - duckdb_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - duckdb_query_errors_total: Failed queries (counter)
    Labels: operation, table

Recommendation Metrics:
  - ranking_runs_total: Ranking runs (counter)
    Labels: strategy (content_based, collaborative, hybrid)
  - ranking_duration_seconds: Ranking latency (histogram)
    Labels: strategy
  - ranking_candidates: Candidates emitted per run (histogram)
    Labels: strategy
  - text_analysis_duration_seconds: Article analysis latency (histogram)

Ingest Metrics:
  - ingest_fetch_duration_seconds: Provider fetch latency (histogram)
    Labels: endpoint
  - ingest_articles_fetched_total / _stored_total / _deduplicated_total
  - ingest_errors_total: Failed ingest steps (counter)
    Labels: error_type (provider_api, extraction, database)
  - ingest_last_success_timestamp: Unix timestamp of last successful run (gauge)

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests through breaker (counter)
    Labels: name, result

# Usage Example

	import (
	    "github.com/newslens-io/newslens/internal/metrics"
	    "github.com/prometheus/client_golang/prometheus/promhttp"
	)

	mux.Handle("/metrics", promhttp.Handler())
	metrics.RecordAPIRequest("GET", "/api/news", "200", elapsed)
*/
package metrics
