// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package recommend

import (
	"context"

	"github.com/newslens-io/newslens/internal/models"
)

// Strategy identifies the ranking strategy that produced a candidate.
type Strategy string

const (
	// StrategyContentBased ranks by similarity between the user's
	// profile and article features.
	StrategyContentBased Strategy = "content_based"

	// StrategyCollaborative ranks by behavior overlap with similar users.
	StrategyCollaborative Strategy = "collaborative"

	// StrategyHybrid blends content-based and collaborative scores.
	StrategyHybrid Strategy = "hybrid"
)

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyContentBased, StrategyCollaborative, StrategyHybrid:
		return true
	default:
		return false
	}
}

// Candidate is a scored article in a ranking result. Candidates are
// read-only snapshots; the engine never mutates one after emitting it.
type Candidate struct {
	// Article is the recommended article.
	Article models.Article `json:"article"`

	// Score is the strategy's score for this article. Higher is better.
	Score float64 `json:"score"`

	// Strategy tags which ranking strategy produced the score.
	Strategy Strategy `json:"type"`

	// Breakdown holds the per-signal sub-scores that sum to Score.
	Breakdown map[string]float64 `json:"breakdown,omitempty"`
}

// Profile is a user's synthesized preference profile. It is rebuilt from
// the stored records on every request and never persisted or mutated; a
// user with no history yields a profile with all empty and zero fields.
type Profile struct {
	// UserID is the profiled user.
	UserID int64 `json:"user_id"`

	// Preferences maps category to the user's explicit weight in [0, 1].
	Preferences map[string]float64 `json:"preferences"`

	// CategoriesRead counts read interactions per article category.
	CategoriesRead map[string]int `json:"categories_read"`

	// SourcesRead counts read interactions per article source.
	SourcesRead map[string]int `json:"sources_read"`

	// MeanSentiment is the mean sentiment score of read articles, or 0
	// when the user has no interactions.
	MeanSentiment float64 `json:"sentiment_preference"`

	// MeanReadingTime is the mean reading time of read articles in
	// minutes, or 0 when the user has no interactions.
	MeanReadingTime float64 `json:"avg_reading_time"`

	// LikedKeywords is the keyword multiset drawn from the descriptions
	// of liked articles. Duplicates are retained: frequency across liked
	// articles is the signal.
	LikedKeywords []string `json:"liked_keywords"`

	// TotalRead is the user's interaction record count.
	TotalRead int `json:"total_articles_read"`
}

// DataStore is the data-access interface the engine reads from. It is
// implemented by the store package. Implementations must support
// concurrent readers; the engine never writes through this interface.
//
// Errors from the underlying storage propagate to the engine's caller
// unmodified; the engine performs no retries.
type DataStore interface {
	// PreferencesByUser returns the user's explicit preference weights,
	// at most one per category.
	PreferencesByUser(ctx context.Context, userID int64) ([]models.Preference, error)

	// InteractionsByUser returns all of the user's reading-history rows.
	InteractionsByUser(ctx context.Context, userID int64) ([]models.Interaction, error)

	// LikedFeedbackByUser returns the user's feedback rows with
	// liked = true.
	LikedFeedbackByUser(ctx context.Context, userID int64) ([]models.Feedback, error)

	// AllArticles returns the full corpus in ascending id order.
	AllArticles(ctx context.Context) ([]models.Article, error)

	// UserInteractionSets returns, for every user with at least one
	// interaction, the set of article ids they have interacted with.
	UserInteractionSets(ctx context.Context) (map[int64]map[int64]struct{}, error)

	// ArticleByID resolves an article. The boolean is false when the id
	// does not exist; that is not an error.
	ArticleByID(ctx context.Context, id int64) (models.Article, bool, error)
}
