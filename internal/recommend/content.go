// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package recommend

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/newslens-io/newslens/internal/models"
)

// Sub-score keys used in Candidate.Breakdown.
const (
	signalCategoryPreference = "category_preference"
	signalCategoryAffinity   = "category_affinity"
	signalSourceAffinity     = "source_affinity"
	signalSentiment          = "sentiment_affinity"
	signalReadingTime        = "reading_time_affinity"
	signalKeywordOverlap     = "keyword_overlap"
)

// contentBased builds the user's profile and scores the full corpus
// against it. Only articles with a positive score are returned, sorted
// descending with ties kept in corpus order.
func (e *Engine) contentBased(ctx context.Context, userID int64, limit int) ([]Candidate, error) {
	profile, err := e.Profile(ctx, userID)
	if err != nil {
		return nil, err
	}

	articles, err := e.store.AllArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}

	// The distinct liked-keyword set is shared across all candidates.
	likedSet := make(map[string]struct{}, len(profile.LikedKeywords))
	for _, kw := range profile.LikedKeywords {
		likedSet[kw] = struct{}{}
	}

	candidates := make([]Candidate, 0, len(articles))
	for i := range articles {
		score, breakdown := e.scoreArticle(profile, likedSet, &articles[i])
		if score <= 0 {
			continue
		}
		candidates = append(candidates, Candidate{
			Article:   articles[i],
			Score:     score,
			Strategy:  StrategyContentBased,
			Breakdown: breakdown,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// scoreArticle computes the additive content-affinity score of one
// article against a profile. A zero score means "no basis to recommend".
func (e *Engine) scoreArticle(profile *Profile, likedSet map[string]struct{}, article *models.Article) (float64, map[string]float64) {
	breakdown := make(map[string]float64)
	var score float64

	// Explicit category preference.
	if w, ok := profile.Preferences[article.Category]; ok {
		contrib := w * e.cfg.CategoryPreferenceWeight
		breakdown[signalCategoryPreference] = contrib
		score += contrib
	}

	// Implicit category affinity from reading history.
	if n, ok := profile.CategoriesRead[article.Category]; ok {
		contrib := float64(n) * e.cfg.CategoryAffinityWeight
		breakdown[signalCategoryAffinity] = contrib
		score += contrib
	}

	// Source affinity from reading history.
	if n, ok := profile.SourcesRead[article.Source]; ok {
		contrib := float64(n) * e.cfg.SourceAffinityWeight
		breakdown[signalSourceAffinity] = contrib
		score += contrib
	}

	// Sentiment proximity. A zero article sentiment or zero profile mean
	// is treated as "no signal".
	if article.SentimentScore != 0 && profile.MeanSentiment != 0 {
		diff := math.Abs(article.SentimentScore - profile.MeanSentiment)
		contrib := (1 - diff) * e.cfg.SentimentAffinityWeight
		breakdown[signalSentiment] = contrib
		score += contrib
	}

	// Reading-time proximity, saturating at the configured spread.
	if article.ReadingTime != 0 && profile.MeanReadingTime != 0 {
		diff := math.Abs(float64(article.ReadingTime) - profile.MeanReadingTime)
		contrib := (1 - math.Min(diff/e.cfg.ReadingTimeSpread, 1)) * e.cfg.ReadingTimeAffinityWeight
		breakdown[signalReadingTime] = contrib
		score += contrib
	}

	// Overlap between the article's keywords and the distinct set of
	// liked keywords.
	if article.Description != "" && len(likedSet) > 0 {
		var overlap int
		seen := make(map[string]struct{})
		for _, kw := range e.analyzer.ExtractKeywords(article.Description, e.cfg.ArticleKeywordCount) {
			if _, dup := seen[kw]; dup {
				continue
			}
			seen[kw] = struct{}{}
			if _, ok := likedSet[kw]; ok {
				overlap++
			}
		}
		if overlap > 0 {
			contrib := float64(overlap) * e.cfg.KeywordOverlapWeight
			breakdown[signalKeywordOverlap] = contrib
			score += contrib
		}
	}

	if score <= 0 {
		return 0, nil
	}
	return score, breakdown
}
