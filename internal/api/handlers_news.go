// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/newslens-io/newslens/internal/models"
	"github.com/newslens-io/newslens/internal/store"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	trendingLimit    = 10
)

// clampListLimit bounds a client-supplied limit to [1, maxListLimit],
// substituting the default for absent or nonsensical values.
func clampListLimit(limit int) int {
	if limit < 1 {
		return defaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}

// News lists articles. With ?user_id= the listing is personalized via
// the hybrid ranking; ?search= and ?category= filter the corpus;
// otherwise the latest articles are returned.
func (h *Handler) News(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	limit := clampListLimit(getIntParam(r, "limit", defaultListLimit))

	if userID := getIntParam(r, "user_id", 0); userID > 0 {
		h.personalizedNews(w, r, int64(userID), limit, started)
		return
	}

	var (
		articles []models.Article
		err      error
	)
	switch {
	case r.URL.Query().Get("search") != "":
		articles, err = h.store.SearchArticles(r.Context(), r.URL.Query().Get("search"), limit)
	case r.URL.Query().Get("category") != "":
		articles, err = h.store.ArticlesByCategory(r.Context(), r.URL.Query().Get("category"), limit)
	default:
		articles, err = h.store.LatestArticles(r.Context(), limit)
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load articles", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"articles": emptyIfNil(articles),
		"count":    len(articles),
	}, started)
}

// personalizedNews serves the news listing ranked by the hybrid
// strategy, falling back to the latest articles when the user has no
// usable signal.
func (h *Handler) personalizedNews(w http.ResponseWriter, r *http.Request, userID int64, limit int, started time.Time) {
	candidates, err := h.engine.Hybrid(r.Context(), userID, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "RECOMMENDATION_ERROR", "Failed to rank articles", err)
		return
	}
	if len(candidates) == 0 {
		articles, err := h.store.LatestArticles(r.Context(), limit)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load articles", err)
			return
		}
		respondSuccess(w, http.StatusOK, map[string]interface{}{
			"articles":     emptyIfNil(articles),
			"count":        len(articles),
			"personalized": false,
		}, started)
		return
	}

	articles := make([]models.Article, len(candidates))
	for i, c := range candidates {
		articles[i] = c.Article
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"articles":     articles,
		"count":        len(articles),
		"personalized": true,
	}, started)
}

// Categories returns the fixed category list.
func (h *Handler) Categories(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"categories": h.analyzer.Categories(),
	}, time.Now())
}

// Trending returns today's most recent articles, capped at ten.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	articles, err := h.store.TrendingArticles(r.Context(), trendingLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load trending articles", err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"articles": emptyIfNil(articles),
		"count":    len(articles),
	}, started)
}

// Article returns one article by id.
func (h *Handler) Article(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	id, err := urlParamInt64(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Article id must be a positive integer", nil)
		return
	}

	article, err := h.store.GetArticle(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Article not found", nil)
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load article", err)
		return
	}
	respondSuccess(w, http.StatusOK, article, started)
}

// RecordRead appends a reading-history event for an article.
func (h *Handler) RecordRead(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	articleID, err := urlParamInt64(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Article id must be a positive integer", nil)
		return
	}

	var req ReadRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if _, found, err := h.store.ArticleByID(r.Context(), articleID); err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to verify article", err)
		return
	} else if !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Article not found", nil)
		return
	}

	id, err := h.store.InsertInteraction(r.Context(), &models.Interaction{
		UserID:       req.UserID,
		ArticleID:    articleID,
		ReadDuration: req.ReadDuration,
		Completed:    req.Completed,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to record read", err)
		return
	}
	respondSuccess(w, http.StatusCreated, map[string]interface{}{"id": id}, started)
}

// Feedback records explicit article feedback.
func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	articleID, err := urlParamInt64(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Article id must be a positive integer", nil)
		return
	}

	var req FeedbackRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if _, found, err := h.store.ArticleByID(r.Context(), articleID); err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to verify article", err)
		return
	} else if !found {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Article not found", nil)
		return
	}

	id, err := h.store.InsertFeedback(r.Context(), &models.Feedback{
		UserID:    req.UserID,
		ArticleID: articleID,
		Rating:    req.Rating,
		Liked:     req.Liked,
		Comment:   req.Comment,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to record feedback", err)
		return
	}
	respondSuccess(w, http.StatusCreated, map[string]interface{}{"id": id}, started)
}

// BySource lists articles from one source.
func (h *Handler) BySource(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	limit := clampListLimit(getIntParam(r, "limit", defaultListLimit))

	source := chi.URLParam(r, "source")
	articles, err := h.store.ArticlesBySource(r.Context(), source, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load articles", err)
		return
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"source":   source,
		"articles": emptyIfNil(articles),
		"count":    len(articles),
	}, started)
}

// Refresh triggers one ingest cycle.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	if h.refresher == nil {
		respondError(w, http.StatusServiceUnavailable, "INGEST_DISABLED", "Article ingestion is not configured", nil)
		return
	}

	result, err := h.refresher.Refresh(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "INGEST_ERROR", "News provider fetch failed", err)
		return
	}
	respondSuccess(w, http.StatusOK, result, started)
}

// emptyIfNil keeps JSON listings as [] instead of null.
func emptyIfNil(articles []models.Article) []models.Article {
	if articles == nil {
		return []models.Article{}
	}
	return articles
}
