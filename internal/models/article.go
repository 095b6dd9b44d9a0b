// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package models

import "time"

// CategoryGeneral is the fallback category for articles that match no
// entry in the category table.
const CategoryGeneral = "general"

// Article is a single news item in the corpus.
//
// Category, Tags, SentimentScore, and ReadingTime are computed once by the
// text analyzer when the article is ingested; recommendation calls read
// them but never recompute or modify them.
type Article struct {
	// ID is the unique article identifier.
	ID int64 `json:"id"`

	// Title is the headline.
	Title string `json:"title"`

	// Description is the short summary or lede.
	Description string `json:"description"`

	// Content is the full article text. May be empty when the article
	// body could not be extracted.
	Content string `json:"content,omitempty"`

	// URL is the canonical article URL. Unique across the corpus.
	URL string `json:"url"`

	// ImageURL is an optional header image.
	ImageURL string `json:"image_url,omitempty"`

	// Source is the publishing outlet (e.g. "TechDaily").
	Source string `json:"source_name"`

	// Author is the byline, when known.
	Author string `json:"author,omitempty"`

	// PublishedAt is the publication timestamp.
	PublishedAt time.Time `json:"published_at"`

	// Category is one of the fixed category table entries, or "general".
	Category string `json:"category"`

	// Tags holds the keywords extracted at ingestion time.
	Tags []string `json:"tags"`

	// SentimentScore is the lexical polarity of the article in [-1, 1].
	// Zero is treated as "no sentiment signal" by the scorers.
	SentimentScore float64 `json:"sentiment_score"`

	// ReadingTime is the estimated reading time in whole minutes (>= 1).
	ReadingTime int `json:"reading_time"`

	// CreatedAt is when the article was stored.
	CreatedAt time.Time `json:"created_at"`
}

// User is a registered reader.
type User struct {
	// ID is the unique user identifier.
	ID int64 `json:"id"`

	// Email is the unique account email.
	Email string `json:"email"`

	// Username is the unique display name.
	Username string `json:"username"`

	// Active reports whether the account is enabled.
	Active bool `json:"is_active"`

	// CreatedAt is when the account was created.
	CreatedAt time.Time `json:"created_at"`
}
