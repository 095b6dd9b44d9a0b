// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package recommend

import (
	"context"
	"fmt"
)

// Profile synthesizes the user's preference profile from their stored
// preference weights, reading history, and liked feedback. The profile is
// rebuilt from scratch on every call; a user with no records yields a
// profile with all empty and zero fields, never an error.
func (e *Engine) Profile(ctx context.Context, userID int64) (*Profile, error) {
	prefs, err := e.store.PreferencesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	profile := &Profile{
		UserID:         userID,
		Preferences:    make(map[string]float64, len(prefs)),
		CategoriesRead: make(map[string]int),
		SourcesRead:    make(map[string]int),
	}
	for _, p := range prefs {
		profile.Preferences[p.Category] = p.Weight
	}

	interactions, err := e.store.InteractionsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load interactions: %w", err)
	}

	var sentimentSum, readingTimeSum float64
	for _, inter := range interactions {
		article, ok, err := e.store.ArticleByID(ctx, inter.ArticleID)
		if err != nil {
			return nil, fmt.Errorf("resolve article %d: %w", inter.ArticleID, err)
		}
		if !ok {
			// Dangling interaction rows are treated as if they did
			// not exist.
			continue
		}

		if article.Category != "" {
			profile.CategoriesRead[article.Category]++
		}
		if article.Source != "" {
			profile.SourcesRead[article.Source]++
		}
		sentimentSum += article.SentimentScore
		readingTimeSum += float64(article.ReadingTime)
	}

	profile.TotalRead = len(interactions)
	if profile.TotalRead > 0 {
		profile.MeanSentiment = sentimentSum / float64(profile.TotalRead)
		profile.MeanReadingTime = readingTimeSum / float64(profile.TotalRead)
	}

	liked, err := e.store.LikedFeedbackByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load liked feedback: %w", err)
	}
	for _, fb := range liked {
		article, ok, err := e.store.ArticleByID(ctx, fb.ArticleID)
		if err != nil {
			return nil, fmt.Errorf("resolve article %d: %w", fb.ArticleID, err)
		}
		if !ok || article.Description == "" {
			continue
		}
		// Duplicates across liked articles are retained: keyword
		// frequency is the signal, not distinct keyword count.
		keywords := e.analyzer.ExtractKeywords(article.Description, e.cfg.LikedKeywordCount)
		profile.LikedKeywords = append(profile.LikedKeywords, keywords...)
	}

	return profile, nil
}
