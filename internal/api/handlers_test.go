// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/newslens-io/newslens/internal/ingest"
	"github.com/newslens-io/newslens/internal/models"
	"github.com/newslens-io/newslens/internal/recommend"
	"github.com/newslens-io/newslens/internal/store"
	"github.com/newslens-io/newslens/internal/textanalysis"
)

type envelope struct {
	Status string                 `json:"status"`
	Data   map[string]interface{} `json:"data"`
	Error  *models.APIError       `json:"error"`
}

type stubRefresher struct {
	result ingest.Result
	err    error
	calls  int
}

func (s *stubRefresher) Refresh(_ context.Context) (ingest.Result, error) {
	s.calls++
	return s.result, s.err
}

func newTestRouter(t *testing.T, refresher Refreshing) (http.Handler, *store.Store) {
	t.Helper()

	st, err := store.Open(store.Config{Path: ":memory:"})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	analyzer := textanalysis.NewAnalyzer(textanalysis.Config{})
	engine, err := recommend.NewEngine(recommend.DefaultConfig(), st, analyzer, zerolog.Nop())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	h := NewHandler(st, engine, analyzer, refresher)
	return NewRouter(h, nil), st
}

func seedArticles(t *testing.T, st *store.Store) []int64 {
	t.Helper()

	articles := []models.Article{
		{
			Title:          "Quantum computing breakthrough announced",
			Description:    "Researchers demonstrate error-corrected qubits",
			Content:        "A research team announced a major advance in quantum error correction.",
			URL:            "https://example.com/quantum",
			Source:         "TechDaily",
			Category:       "technology",
			Tags:           []string{"quantum", "computing"},
			SentimentScore: 0.4,
			ReadingTime:    3,
			PublishedAt:    time.Now().Add(-2 * time.Hour),
		},
		{
			Title:          "Markets rally on earnings reports",
			Description:    "Stocks climb after strong quarterly results",
			Content:        "Major indices rose on better than expected earnings.",
			URL:            "https://example.com/markets",
			Source:         "FinanceWire",
			Category:       "business",
			Tags:           []string{"stocks", "earnings"},
			SentimentScore: 0.3,
			ReadingTime:    2,
			PublishedAt:    time.Now().Add(-1 * time.Hour),
		},
		{
			Title:          "Championship game ends in overtime",
			Description:    "A dramatic finish to the playoff season",
			Content:        "The final game went to overtime before the home team prevailed.",
			URL:            "https://example.com/sports",
			Source:         "SportsNet",
			Category:       "sports",
			Tags:           []string{"playoffs"},
			SentimentScore: 0.2,
			ReadingTime:    2,
			PublishedAt:    time.Now().Add(-30 * time.Minute),
		},
	}

	ids := make([]int64, len(articles))
	for i := range articles {
		id, err := st.InsertArticle(context.Background(), &articles[i])
		if err != nil {
			t.Fatalf("seed article %d: %v", i, err)
		}
		ids[i] = id
	}
	return ids
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

func TestHealth(t *testing.T) {
	router, st := newTestRouter(t, nil)
	seedArticles(t, st)

	rec, env := doJSON(t, router, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if env.Data["status"] != "healthy" {
		t.Errorf("health status = %v, want healthy", env.Data["status"])
	}
	if env.Data["articles"] != float64(3) {
		t.Errorf("articles = %v, want 3", env.Data["articles"])
	}
}

func TestNewsListing(t *testing.T) {
	router, st := newTestRouter(t, nil)
	seedArticles(t, st)

	tests := []struct {
		name      string
		path      string
		wantCount int
	}{
		{name: "latest", path: "/api/news", wantCount: 3},
		{name: "limit", path: "/api/news?limit=2", wantCount: 2},
		{name: "category filter", path: "/api/news?category=business", wantCount: 1},
		{name: "search", path: "/api/news?search=quantum", wantCount: 1},
		{name: "search no match", path: "/api/news?search=nonexistent", wantCount: 0},
		{name: "absurd limit clamped", path: "/api/news?limit=100000", wantCount: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doJSON(t, router, http.MethodGet, tt.path, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if got := env.Data["count"]; got != float64(tt.wantCount) {
				t.Errorf("count = %v, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestNewsPersonalized(t *testing.T) {
	router, st := newTestRouter(t, nil)
	ids := seedArticles(t, st)

	// Reading history biased toward technology.
	_, err := st.InsertInteraction(context.Background(), &models.Interaction{
		UserID: 1, ArticleID: ids[0], ReadDuration: 180, Completed: true,
	})
	if err != nil {
		t.Fatalf("seed interaction: %v", err)
	}

	rec, env := doJSON(t, router, http.MethodGet, "/api/news?user_id=1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if env.Data["personalized"] != true {
		t.Errorf("personalized = %v, want true", env.Data["personalized"])
	}
	if got := env.Data["count"]; got != float64(3) {
		t.Errorf("count = %v, want 3", got)
	}
	articles, ok := env.Data["articles"].([]interface{})
	if !ok || len(articles) == 0 {
		t.Fatalf("articles missing: %v", env.Data)
	}
	top, _ := articles[0].(map[string]interface{})
	if top["category"] != "technology" {
		t.Errorf("top category = %v, want technology", top["category"])
	}
}

func TestNewsPersonalizedFallsBackForUnknownUser(t *testing.T) {
	router, st := newTestRouter(t, nil)
	seedArticles(t, st)

	rec, env := doJSON(t, router, http.MethodGet, "/api/news?user_id=999", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if env.Data["personalized"] != false {
		t.Errorf("personalized = %v, want false", env.Data["personalized"])
	}
	if got := env.Data["count"]; got != float64(3) {
		t.Errorf("count = %v, want 3", got)
	}
}

func TestCategories(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec, env := doJSON(t, router, http.MethodGet, "/api/news/categories", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	categories, ok := env.Data["categories"].([]interface{})
	if !ok {
		t.Fatalf("categories missing: %v", env.Data)
	}
	if len(categories) != 8 {
		t.Errorf("len(categories) = %d, want 8", len(categories))
	}
	if categories[len(categories)-1] != "general" {
		t.Errorf("last category = %v, want general", categories[len(categories)-1])
	}
}

func TestTrending(t *testing.T) {
	router, st := newTestRouter(t, nil)

	fresh := models.Article{
		Title: "Fresh story", URL: "https://example.com/fresh",
		Category: "general", PublishedAt: time.Now(),
	}
	stale := models.Article{
		Title: "Two-day-old story", URL: "https://example.com/stale",
		Category: "general", PublishedAt: time.Now().Add(-48 * time.Hour),
	}
	for _, a := range []models.Article{fresh, stale} {
		if _, err := st.InsertArticle(context.Background(), &a); err != nil {
			t.Fatalf("seed article: %v", err)
		}
	}

	rec, env := doJSON(t, router, http.MethodGet, "/api/news/trending", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	// Only the article published today counts as trending.
	if got := env.Data["count"]; got != float64(1) {
		t.Errorf("count = %v, want 1", got)
	}
}

func TestGetArticle(t *testing.T) {
	router, st := newTestRouter(t, nil)
	ids := seedArticles(t, st)

	rec, env := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/news/%d", ids[0]), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if env.Data["title"] != "Quantum computing breakthrough announced" {
		t.Errorf("title = %v", env.Data["title"])
	}

	rec, env = doJSON(t, router, http.MethodGet, "/api/news/9999", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v, want NOT_FOUND", env.Error)
	}

	rec, _ = doJSON(t, router, http.MethodGet, "/api/news/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRecordRead(t *testing.T) {
	router, st := newTestRouter(t, nil)
	seedArticles(t, st)

	rec, env := doJSON(t, router, http.MethodPost, "/api/news/1/read", map[string]interface{}{
		"user_id": 1, "read_duration": 120, "completed": true,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %+v", rec.Code, http.StatusCreated, env.Error)
	}

	history, err := st.InteractionsByUser(context.Background(), 1)
	if err != nil {
		t.Fatalf("interactions: %v", err)
	}
	if len(history) != 1 || history[0].ReadDuration != 120 || !history[0].Completed {
		t.Errorf("history = %+v", history)
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/api/news/9999/read", map[string]interface{}{
		"user_id": 1,
	})
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown article status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	rec, env = doJSON(t, router, http.MethodPost, "/api/news/1/read", map[string]interface{}{
		"read_duration": 60,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing user status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error = %+v, want VALIDATION_ERROR", env.Error)
	}
}

func TestFeedback(t *testing.T) {
	router, st := newTestRouter(t, nil)
	seedArticles(t, st)

	rec, env := doJSON(t, router, http.MethodPost, "/api/news/2/feedback", map[string]interface{}{
		"user_id": 7, "rating": 5, "liked": true, "feedback_text": "great piece",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %+v", rec.Code, http.StatusCreated, env.Error)
	}

	liked, err := st.LikedFeedbackByUser(context.Background(), 7)
	if err != nil {
		t.Fatalf("liked feedback: %v", err)
	}
	if len(liked) != 1 || liked[0].ArticleID != 2 {
		t.Errorf("liked = %+v", liked)
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/api/news/2/feedback", map[string]interface{}{
		"user_id": 7, "rating": 11,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad rating status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRefresh(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		router, _ := newTestRouter(t, nil)

		rec, env := doJSON(t, router, http.MethodPost, "/api/news/refresh", nil)
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
		}
		if env.Error == nil || env.Error.Code != "INGEST_DISABLED" {
			t.Errorf("error = %+v, want INGEST_DISABLED", env.Error)
		}
	})

	t.Run("success", func(t *testing.T) {
		refresher := &stubRefresher{result: ingest.Result{Fetched: 10, Stored: 7, Deduplicated: 3}}
		router, _ := newTestRouter(t, refresher)

		rec, env := doJSON(t, router, http.MethodPost, "/api/news/refresh", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d: %+v", rec.Code, http.StatusOK, env.Error)
		}
		if refresher.calls != 1 {
			t.Errorf("calls = %d, want 1", refresher.calls)
		}
		if env.Data["stored"] != float64(7) {
			t.Errorf("stored = %v, want 7", env.Data["stored"])
		}
	})

	t.Run("provider failure", func(t *testing.T) {
		refresher := &stubRefresher{err: errors.New("provider down")}
		router, _ := newTestRouter(t, refresher)

		rec, env := doJSON(t, router, http.MethodPost, "/api/news/refresh", nil)
		if rec.Code != http.StatusBadGateway {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
		}
		if env.Error == nil || env.Error.Code != "INGEST_ERROR" {
			t.Errorf("error = %+v, want INGEST_ERROR", env.Error)
		}
	})
}

func TestBySource(t *testing.T) {
	router, st := newTestRouter(t, nil)
	seedArticles(t, st)

	rec, env := doJSON(t, router, http.MethodGet, "/api/news/sources/FinanceWire", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := env.Data["count"]; got != float64(1) {
		t.Errorf("count = %v, want 1", got)
	}
	if env.Data["source"] != "FinanceWire" {
		t.Errorf("source = %v", env.Data["source"])
	}
}

func TestRecommendations(t *testing.T) {
	router, st := newTestRouter(t, nil)
	ids := seedArticles(t, st)

	if _, err := st.InsertInteraction(context.Background(), &models.Interaction{
		UserID: 1, ArticleID: ids[0], Completed: true,
	}); err != nil {
		t.Fatalf("seed interaction: %v", err)
	}

	rec, env := doJSON(t, router, http.MethodPost, "/api/ai/recommendations", map[string]interface{}{
		"user_id": 1,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %+v", rec.Code, http.StatusOK, env.Error)
	}
	if env.Data["algorithm"] != "hybrid" {
		t.Errorf("algorithm = %v, want hybrid (default)", env.Data["algorithm"])
	}
	recs, ok := env.Data["recommendations"].([]interface{})
	if !ok || len(recs) == 0 {
		t.Fatalf("recommendations missing: %v", env.Data)
	}
	first, ok := recs[0].(map[string]interface{})
	if !ok {
		t.Fatalf("recommendation shape: %v", recs[0])
	}
	conf, ok := first["confidence"].(float64)
	if !ok || conf < 0 || conf > 100 {
		t.Errorf("confidence = %v, want [0, 100]", first["confidence"])
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/api/ai/recommendations", map[string]interface{}{
		"user_id": 1, "algorithm": "magic",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad algorithm status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/api/ai/recommendations", map[string]interface{}{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing user status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestAnalyzeArticle(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	tests := []struct {
		name         string
		body         map[string]interface{}
		wantCode     int
		wantLabel    string
		wantCategory string
	}{
		{
			name: "positive technology",
			body: map[string]interface{}{
				"title":       "Breakthrough software success celebrated",
				"description": "An excellent win for the best software team",
			},
			wantCode:     http.StatusOK,
			wantLabel:    "positive",
			wantCategory: "technology",
		},
		{
			name: "negative",
			body: map[string]interface{}{
				"title": "Terrible crisis deepens after awful failure",
			},
			wantCode:  http.StatusOK,
			wantLabel: "negative",
		},
		{
			name: "neutral general",
			body: map[string]interface{}{
				"title": "Committee schedules quarterly meeting",
			},
			wantCode:     http.StatusOK,
			wantLabel:    "neutral",
			wantCategory: "general",
		},
		{
			name:     "missing title",
			body:     map[string]interface{}{"description": "no title here"},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := doJSON(t, router, http.MethodPost, "/api/ai/analyze-article", tt.body)
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d: %+v", rec.Code, tt.wantCode, env.Error)
			}
			if tt.wantCode != http.StatusOK {
				return
			}
			if env.Data["sentiment_label"] != tt.wantLabel {
				t.Errorf("sentiment_label = %v, want %s", env.Data["sentiment_label"], tt.wantLabel)
			}
			if tt.wantCategory != "" && env.Data["category"] != tt.wantCategory {
				t.Errorf("category = %v, want %s", env.Data["category"], tt.wantCategory)
			}
		})
	}
}

func TestUserProfile(t *testing.T) {
	router, st := newTestRouter(t, nil)
	ids := seedArticles(t, st)

	for _, id := range ids[:2] {
		if _, err := st.InsertInteraction(context.Background(), &models.Interaction{
			UserID: 3, ArticleID: id, Completed: true,
		}); err != nil {
			t.Fatalf("seed interaction: %v", err)
		}
	}

	rec, env := doJSON(t, router, http.MethodGet, "/api/ai/user-profile/3", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	// Two distinct categories read gives strength 20.
	if env.Data["profile_strength"] != float64(20) {
		t.Errorf("profile_strength = %v, want 20", env.Data["profile_strength"])
	}
	profile, ok := env.Data["profile"].(map[string]interface{})
	if !ok {
		t.Fatalf("profile missing: %v", env.Data)
	}
	if profile["total_articles_read"] != float64(2) {
		t.Errorf("total_articles_read = %v, want 2", profile["total_articles_read"])
	}
}

func TestAlgorithms(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec, env := doJSON(t, router, http.MethodGet, "/api/ai/algorithms", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	algos, ok := env.Data["algorithms"].([]interface{})
	if !ok || len(algos) != 3 {
		t.Fatalf("algorithms = %v, want 3 entries", env.Data["algorithms"])
	}
	if env.Data["default"] != "hybrid" {
		t.Errorf("default = %v, want hybrid", env.Data["default"])
	}
}

func TestPreferencesLifecycle(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rec, env := doJSON(t, router, http.MethodPut, "/api/preferences/5/technology", map[string]interface{}{
		"weight": 0.8,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d, want %d: %+v", rec.Code, http.StatusOK, env.Error)
	}

	rec, _ = doJSON(t, router, http.MethodPut, "/api/preferences/5/sports", map[string]interface{}{
		"weight": 1.5,
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("out-of-range weight status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	rec, env = doJSON(t, router, http.MethodGet, "/api/preferences/5", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want %d", rec.Code, http.StatusOK)
	}
	prefs, ok := env.Data["preferences"].([]interface{})
	if !ok || len(prefs) != 1 {
		t.Fatalf("preferences = %v, want 1 entry", env.Data["preferences"])
	}

	rec, _ = doJSON(t, router, http.MethodDelete, "/api/preferences/5/technology", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec, env = doJSON(t, router, http.MethodGet, "/api/preferences/5", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want %d", rec.Code, http.StatusOK)
	}
	prefs, _ = env.Data["preferences"].([]interface{})
	if len(prefs) != 0 {
		t.Errorf("preferences after delete = %v, want empty", prefs)
	}
}

func TestReadingAnalytics(t *testing.T) {
	router, st := newTestRouter(t, nil)
	ids := seedArticles(t, st)

	events := []models.Interaction{
		{UserID: 9, ArticleID: ids[0], ReadDuration: 100, Completed: true},
		{UserID: 9, ArticleID: ids[1], ReadDuration: 200, Completed: false},
	}
	for i := range events {
		if _, err := st.InsertInteraction(context.Background(), &events[i]); err != nil {
			t.Fatalf("seed interaction %d: %v", i, err)
		}
	}

	rec, env := doJSON(t, router, http.MethodGet, "/api/analytics/9/reading", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if env.Data["total_articles_read"] != float64(2) {
		t.Errorf("total_articles_read = %v, want 2", env.Data["total_articles_read"])
	}
	if env.Data["total_reading_time"] != float64(300) {
		t.Errorf("total_reading_time = %v, want 300", env.Data["total_reading_time"])
	}
	if env.Data["avg_read_duration"] != float64(150) {
		t.Errorf("avg_read_duration = %v, want 150", env.Data["avg_read_duration"])
	}
	if env.Data["completion_rate"] != float64(50) {
		t.Errorf("completion_rate = %v, want 50", env.Data["completion_rate"])
	}
	trend, ok := env.Data["daily_reading_trend"].([]interface{})
	if !ok || len(trend) != 7 {
		t.Fatalf("daily_reading_trend = %v, want 7 entries", env.Data["daily_reading_trend"])
	}
}

func TestRequestIDHeader(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
}
