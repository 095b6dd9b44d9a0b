// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package api

// RecommendationsRequest asks for a personalized ranking.
type RecommendationsRequest struct {
	UserID    int64  `json:"user_id" validate:"required,min=1"`
	Algorithm string `json:"algorithm" validate:"omitempty,oneof=content_based collaborative hybrid"`
	Limit     int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

// AnalyzeArticleRequest submits raw article text for analysis.
type AnalyzeArticleRequest struct {
	Title       string `json:"title" validate:"required,min=1"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// ReadRequest records one reading-history event for an article.
type ReadRequest struct {
	UserID       int64 `json:"user_id" validate:"required,min=1"`
	ReadDuration int   `json:"read_duration" validate:"min=0"`
	Completed    bool  `json:"completed"`
}

// FeedbackRequest records explicit feedback on an article. At least
// one of rating, liked, or feedback_text should be present; an empty
// submission is accepted but carries no signal.
type FeedbackRequest struct {
	UserID  int64  `json:"user_id" validate:"required,min=1"`
	Rating  *int   `json:"rating" validate:"omitempty,min=1,max=5"`
	Liked   *bool  `json:"liked"`
	Comment string `json:"feedback_text" validate:"max=2000"`
}

// PreferenceRequest sets a category weight for a user.
type PreferenceRequest struct {
	Weight float64 `json:"weight" validate:"gte=0,lte=1"`
}
