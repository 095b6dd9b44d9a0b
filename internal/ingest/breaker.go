// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package ingest

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/newslens-io/newslens/internal/logging"
	"github.com/newslens-io/newslens/internal/metrics"
)

// BreakerClient wraps a Provider with a circuit breaker so a failing
// news provider cannot cascade into the rest of the application.
//
// The breaker uses real time for its interval and timeout
// calculations. Tests should exercise the underlying client directly.
type BreakerClient struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker[*Response]
	name     string
}

// NewBreakerClient wraps provider with circuit breaker protection.
// The breaker opens at a 60% failure rate over at least 5 requests and
// probes recovery after 2 minutes.
func NewBreakerClient(provider Provider) *BreakerClient {
	const cbName = "newsapi"

	metrics.RecordCircuitBreakerState(cbName, 0)

	cb := gobreaker.NewCircuitBreaker[*Response](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 2,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logging.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Info().
				Str("from", stateToString(from)).
				Str("to", stateToString(to)).
				Msg("[CIRCUIT BREAKER] State transition")
			metrics.RecordCircuitBreakerState(name, stateToInt(to))
		},
	})

	return &BreakerClient{provider: provider, cb: cb, name: cbName}
}

// TopHeadlines fetches headlines with circuit breaker protection.
func (b *BreakerClient) TopHeadlines(ctx context.Context, country, category string, pageSize int) (*Response, error) {
	return b.execute(func() (*Response, error) {
		return b.provider.TopHeadlines(ctx, country, category, pageSize)
	})
}

// Everything searches articles with circuit breaker protection.
func (b *BreakerClient) Everything(ctx context.Context, query string, pageSize int) (*Response, error) {
	return b.execute(func() (*Response, error) {
		return b.provider.Everything(ctx, query, pageSize)
	})
}

func (b *BreakerClient) execute(fn func() (*Response, error)) (*Response, error) {
	result, err := b.cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			logging.Warn().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		}
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	return result, nil
}

// stateToInt maps breaker states onto the metric encoding
// 0=closed, 1=half-open, 2=open.
func stateToInt(state gobreaker.State) int {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
