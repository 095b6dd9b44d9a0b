// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package recommend

import "fmt"

// Config contains the scoring constants for the recommendation engine.
// The values are deliberate, order-sensitive configuration: changing any
// of them silently changes ranking output, so they are injected here once
// rather than re-derived anywhere in the engine.
type Config struct {
	// CategoryPreferenceWeight scales the user's explicit category
	// weight contribution.
	CategoryPreferenceWeight float64 `json:"category_preference_weight"`

	// CategoryAffinityWeight scales the per-category read-count
	// contribution.
	CategoryAffinityWeight float64 `json:"category_affinity_weight"`

	// SourceAffinityWeight scales the per-source read-count contribution.
	SourceAffinityWeight float64 `json:"source_affinity_weight"`

	// SentimentAffinityWeight scales the sentiment-proximity
	// contribution.
	SentimentAffinityWeight float64 `json:"sentiment_affinity_weight"`

	// ReadingTimeAffinityWeight scales the reading-time-proximity
	// contribution.
	ReadingTimeAffinityWeight float64 `json:"reading_time_affinity_weight"`

	// ReadingTimeSpread is the reading-time difference in minutes at
	// which the proximity contribution reaches zero.
	ReadingTimeSpread float64 `json:"reading_time_spread"`

	// KeywordOverlapWeight scales the liked-keyword overlap count.
	KeywordOverlapWeight float64 `json:"keyword_overlap_weight"`

	// ArticleKeywordCount is how many keywords to extract from a
	// candidate article's description for overlap scoring.
	ArticleKeywordCount int `json:"article_keyword_count"`

	// LikedKeywordCount is how many keywords to extract from each liked
	// article's description during profile synthesis.
	LikedKeywordCount int `json:"liked_keyword_count"`

	// NeighborCount is how many most-similar users collaborative
	// filtering draws candidates from.
	NeighborCount int `json:"neighbor_count"`

	// HybridContentWeight scales the content-based score in the hybrid
	// blend.
	HybridContentWeight float64 `json:"hybrid_content_weight"`

	// HybridCollaborativeWeight scales the collaborative score in the
	// hybrid blend.
	HybridCollaborativeWeight float64 `json:"hybrid_collaborative_weight"`

	// DefaultLimit is the result size used when a caller passes a
	// non-positive limit.
	DefaultLimit int `json:"default_limit"`
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() *Config {
	return &Config{
		CategoryPreferenceWeight:  2.0,
		CategoryAffinityWeight:    0.5,
		SourceAffinityWeight:      0.3,
		SentimentAffinityWeight:   0.5,
		ReadingTimeAffinityWeight: 0.3,
		ReadingTimeSpread:         10,
		KeywordOverlapWeight:      0.2,
		ArticleKeywordCount:       10,
		LikedKeywordCount:         5,
		NeighborCount:             10,
		HybridContentWeight:       0.7,
		HybridCollaborativeWeight: 0.3,
		DefaultLimit:              20,
	}
}

// Validate checks the configuration for values that would produce
// degenerate rankings.
func (c *Config) Validate() error {
	if c.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be positive, got %d", c.DefaultLimit)
	}
	if c.NeighborCount <= 0 {
		return fmt.Errorf("neighbor_count must be positive, got %d", c.NeighborCount)
	}
	if c.ArticleKeywordCount <= 0 {
		return fmt.Errorf("article_keyword_count must be positive, got %d", c.ArticleKeywordCount)
	}
	if c.LikedKeywordCount <= 0 {
		return fmt.Errorf("liked_keyword_count must be positive, got %d", c.LikedKeywordCount)
	}
	if c.ReadingTimeSpread <= 0 {
		return fmt.Errorf("reading_time_spread must be positive, got %f", c.ReadingTimeSpread)
	}
	for name, w := range map[string]float64{
		"category_preference_weight":   c.CategoryPreferenceWeight,
		"category_affinity_weight":     c.CategoryAffinityWeight,
		"source_affinity_weight":       c.SourceAffinityWeight,
		"sentiment_affinity_weight":    c.SentimentAffinityWeight,
		"reading_time_affinity_weight": c.ReadingTimeAffinityWeight,
		"keyword_overlap_weight":       c.KeywordOverlapWeight,
		"hybrid_content_weight":        c.HybridContentWeight,
		"hybrid_collaborative_weight":  c.HybridCollaborativeWeight,
	} {
		if w < 0 {
			return fmt.Errorf("%s must be non-negative, got %f", name, w)
		}
	}
	return nil
}
