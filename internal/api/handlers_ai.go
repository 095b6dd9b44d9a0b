// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package api

import (
	"net/http"
	"time"

	"github.com/newslens-io/newslens/internal/recommend"
)

// recommendation is one scored article in a recommendations response.
type recommendation struct {
	recommend.Candidate

	// Confidence is the score mapped to a 0-100 scale for display.
	Confidence float64 `json:"confidence"`
}

// Recommendations returns ranked article recommendations for a user.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req RecommendationsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	strategy := recommend.Strategy(req.Algorithm)
	if req.Algorithm == "" {
		strategy = recommend.StrategyHybrid
	}

	candidates, err := h.engine.Recommend(r.Context(), strategy, req.UserID, req.Limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "RECOMMENDATION_ERROR", "Failed to compute recommendations", err)
		return
	}

	recs := make([]recommendation, len(candidates))
	for i, c := range candidates {
		recs[i] = recommendation{Candidate: c, Confidence: confidence(c.Score)}
	}
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"user_id":         req.UserID,
		"algorithm":       strategy,
		"recommendations": recs,
		"count":           len(recs),
	}, started)
}

// confidence maps a raw ranking score to a capped 0-100 display scale.
func confidence(score float64) float64 {
	c := score * 100
	if c > 100 {
		return 100
	}
	if c < 0 {
		return 0
	}
	return c
}

// AnalyzeArticle runs text analysis over submitted article text.
func (h *Handler) AnalyzeArticle(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var req AnalyzeArticleRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	analysis := h.analyzer.Analyze(req.Title, req.Description, req.Content)
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"sentiment_score": analysis.SentimentScore,
		"sentiment_label": sentimentLabel(analysis.SentimentScore),
		"keywords":        analysis.Keywords,
		"reading_time":    analysis.ReadingTime,
		"category":        analysis.Category,
	}, started)
}

// sentimentLabel buckets a polarity score for display.
func sentimentLabel(score float64) string {
	switch {
	case score > 0.1:
		return "positive"
	case score < -0.1:
		return "negative"
	default:
		return "neutral"
	}
}

// UserProfile returns the behavioral profile built from a user's history.
func (h *Handler) UserProfile(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	userID, err := urlParamInt64(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "User id must be a positive integer", nil)
		return
	}

	profile, err := h.engine.Profile(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "RECOMMENDATION_ERROR", "Failed to build user profile", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"profile":          profile,
		"profile_strength": profileStrength(profile),
	}, started)
}

// profileStrength estimates how well-established a profile is: ten
// points per distinct category read, capped at 100.
func profileStrength(p *recommend.Profile) int {
	strength := len(p.CategoriesRead) * 10
	if strength > 100 {
		return 100
	}
	return strength
}

// Algorithms describes the available ranking strategies.
func (h *Handler) Algorithms(w http.ResponseWriter, _ *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"algorithms": []map[string]string{
			{
				"name":        string(recommend.StrategyContentBased),
				"description": "Ranks articles by similarity between article features and the user's reading profile.",
			},
			{
				"name":        string(recommend.StrategyCollaborative),
				"description": "Ranks articles read by users with overlapping reading history.",
			},
			{
				"name":        string(recommend.StrategyHybrid),
				"description": "Blends content-based and collaborative scores into a single ranking.",
			},
		},
		"default": string(recommend.StrategyHybrid),
	}, time.Now())
}
