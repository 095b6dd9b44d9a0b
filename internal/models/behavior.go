// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package models

import "time"

// Preference is an explicit per-category preference weight.
// At most one row exists per (user, category); writes upsert.
type Preference struct {
	// UserID is the owning user.
	UserID int64 `json:"user_id"`

	// Category is a category table entry or "general".
	Category string `json:"category"`

	// Weight is the preference strength in [0, 1].
	Weight float64 `json:"weight"`

	// UpdatedAt is when the weight was last written.
	UpdatedAt time.Time `json:"updated_at"`
}

// Interaction is one read event from the reading history.
// Rows are append-only and never updated.
type Interaction struct {
	// ID is the unique row identifier.
	ID int64 `json:"id"`

	// UserID is the reading user.
	UserID int64 `json:"user_id"`

	// ArticleID is the article that was read.
	ArticleID int64 `json:"article_id"`

	// ReadDuration is the time spent reading, in seconds.
	ReadDuration int `json:"read_duration"`

	// Completed reports whether the user finished the article.
	Completed bool `json:"completed"`

	// CreatedAt is when the read event was recorded.
	CreatedAt time.Time `json:"created_at"`
}

// Feedback is explicit user feedback on an article. Append-only.
type Feedback struct {
	// ID is the unique row identifier.
	ID int64 `json:"id"`

	// UserID is the user giving feedback.
	UserID int64 `json:"user_id"`

	// ArticleID is the article the feedback refers to.
	ArticleID int64 `json:"article_id"`

	// Rating is an optional 1-5 star rating.
	Rating *int `json:"rating,omitempty"`

	// Liked is an optional thumbs up/down.
	Liked *bool `json:"liked,omitempty"`

	// Comment is optional free-text feedback.
	Comment string `json:"feedback_text,omitempty"`

	// CreatedAt is when the feedback was recorded.
	CreatedAt time.Time `json:"created_at"`
}
