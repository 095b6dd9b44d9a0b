// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package api

import (
	"net/http"
	"time"
)

const (
	favoritesLimit = 5
	trendDays      = 7
)

// ReadingAnalytics summarizes a user's reading behavior: totals,
// favorite categories and sources, completion rate and a daily trend.
func (h *Handler) ReadingAnalytics(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	userID, err := urlParamInt64(r, "userID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "User id must be a positive integer", nil)
		return
	}
	ctx := r.Context()

	stats, err := h.store.UserReadingStats(ctx, userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load reading stats", err)
		return
	}

	categories, err := h.store.FavoriteCategories(ctx, userID, favoritesLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load favorite categories", err)
		return
	}

	sources, err := h.store.FavoriteSources(ctx, userID, favoritesLimit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load favorite sources", err)
		return
	}

	trend, err := h.store.ReadingTrend(ctx, userID, trendDays)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load reading trend", err)
		return
	}

	avgDuration := 0.0
	if stats.TotalRead > 0 {
		avgDuration = float64(stats.TotalReadSeconds) / float64(stats.TotalRead)
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"user_id":             userID,
		"total_articles_read": stats.TotalRead,
		"total_reading_time":  stats.TotalReadSeconds,
		"avg_read_duration":   avgDuration,
		"completion_rate":     stats.CompletionRate,
		"favorite_categories": categories,
		"favorite_sources":    sources,
		"daily_reading_trend": trend,
	}, started)
}
