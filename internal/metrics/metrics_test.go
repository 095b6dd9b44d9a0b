// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/newslens-io/newslens/internal/recommend"
)

// TestRecordAPIRequest tests HTTP metric recording
func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		endpoint string
		status   string
		duration time.Duration
	}{
		{
			name:     "successful GET",
			method:   "GET",
			endpoint: "/api/news",
			status:   "200",
			duration: 15 * time.Millisecond,
		},
		{
			name:     "client error",
			method:   "PUT",
			endpoint: "/api/preferences/{userID}",
			status:   "400",
			duration: 2 * time.Millisecond,
		},
		{
			name:     "server error on slow request",
			method:   "POST",
			endpoint: "/api/ai/recommendations",
			status:   "500",
			duration: 3 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(APIRequests.WithLabelValues(tt.method, tt.endpoint, tt.status))
			RecordAPIRequest(tt.method, tt.endpoint, tt.status, tt.duration)
			after := testutil.ToFloat64(APIRequests.WithLabelValues(tt.method, tt.endpoint, tt.status))
			if after != before+1 {
				t.Errorf("request counter = %v, want %v", after, before+1)
			}
		})
	}
}

// TestTrackActiveRequest tests the in-flight gauge
func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+2 {
		t.Errorf("active requests after two increments = %v, want %v", got, before+2)
	}

	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests after balanced decrements = %v, want %v", got, before)
	}
}

// TestRecordDBQuery tests database query metric recording
func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		table     string
		duration  time.Duration
		err       error
		wantError bool
	}{
		{
			name:      "successful select",
			operation: "select",
			table:     "articles",
			duration:  3 * time.Millisecond,
			err:       nil,
		},
		{
			name:      "failed insert",
			operation: "insert",
			table:     "reading_history",
			duration:  20 * time.Millisecond,
			err:       errors.New("constraint violation"),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table))
			RecordDBQuery(tt.operation, tt.table, tt.duration, tt.err)
			after := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table))

			wantDelta := 0.0
			if tt.wantError {
				wantDelta = 1
			}
			if after != before+wantDelta {
				t.Errorf("error counter delta = %v, want %v", after-before, wantDelta)
			}
		})
	}
}

// TestRecordIngestRun tests ingest cycle accounting
func TestRecordIngestRun(t *testing.T) {
	fetchedBefore := testutil.ToFloat64(IngestArticlesFetched)
	storedBefore := testutil.ToFloat64(IngestArticlesStored)
	dedupBefore := testutil.ToFloat64(IngestArticlesDeduplicated)

	RecordIngestRun(10, 7, 3, nil)

	if got := testutil.ToFloat64(IngestArticlesFetched); got != fetchedBefore+10 {
		t.Errorf("fetched counter delta = %v, want 10", got-fetchedBefore)
	}
	if got := testutil.ToFloat64(IngestArticlesStored); got != storedBefore+7 {
		t.Errorf("stored counter delta = %v, want 7", got-storedBefore)
	}
	if got := testutil.ToFloat64(IngestArticlesDeduplicated); got != dedupBefore+3 {
		t.Errorf("deduplicated counter delta = %v, want 3", got-dedupBefore)
	}
	if got := testutil.ToFloat64(IngestLastSuccess); got == 0 {
		t.Error("last success timestamp not set after successful run")
	}

	errBefore := testutil.ToFloat64(IngestErrors.WithLabelValues("provider_api"))
	RecordIngestRun(0, 0, 0, errors.New("provider unavailable"))
	if got := testutil.ToFloat64(IngestErrors.WithLabelValues("provider_api")); got != errBefore+1 {
		t.Error("failed run did not increment provider_api error counter")
	}
}

// TestRankingObserver tests the recommendation observer hook
func TestRankingObserver(t *testing.T) {
	strategies := []recommend.Strategy{
		recommend.StrategyContentBased,
		recommend.StrategyCollaborative,
		recommend.StrategyHybrid,
	}

	var obs RankingObserver
	for _, strategy := range strategies {
		before := testutil.ToFloat64(RankingRuns.WithLabelValues(string(strategy)))
		obs.ObserveRanking(strategy, 25*time.Millisecond, 20)
		after := testutil.ToFloat64(RankingRuns.WithLabelValues(string(strategy)))
		if after != before+1 {
			t.Errorf("ranking runs for %s = %v, want %v", strategy, after, before+1)
		}
	}
}

// TestRecordCircuitBreakerState tests breaker state gauge updates
func TestRecordCircuitBreakerState(t *testing.T) {
	for state := 0; state <= 2; state++ {
		RecordCircuitBreakerState("newsapi", state)
		if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("newsapi")); got != float64(state) {
			t.Errorf("breaker state gauge = %v, want %d", got, state)
		}
	}
}

// TestConcurrentRecording verifies metric helpers are safe under
// concurrent use.
func TestConcurrentRecording(t *testing.T) {
	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				RecordAPIRequest("GET", "/api/news/trending", "200", time.Millisecond)
				RecordDBQuery("select", "articles", time.Millisecond, nil)
				TrackActiveRequest(true)
				TrackActiveRequest(false)
			}
		}()
	}
	wg.Wait()
}
