// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package recommend

import (
	"context"
	"sort"
)

// hybrid runs the content-based and collaborative scorers independently,
// each with limit as its candidate-pool size, and merges the pools by
// article id. An article in both pools blends both scores; an article in
// one pool contributes only that pool's weighted score. Merge order is
// first-seen across the pools, content pool first, which also fixes the
// tie-break order of the final stable sort.
func (e *Engine) hybrid(ctx context.Context, userID int64, limit int) ([]Candidate, error) {
	content, err := e.contentBased(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	collaborative, err := e.collaborative(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	merged := make([]Candidate, 0, len(content)+len(collaborative))
	index := make(map[int64]int, len(content))

	for _, c := range content {
		index[c.Article.ID] = len(merged)
		merged = append(merged, Candidate{
			Article:  c.Article,
			Score:    c.Score * e.cfg.HybridContentWeight,
			Strategy: StrategyHybrid,
			Breakdown: map[string]float64{
				"content_score":       c.Score,
				"collaborative_score": 0,
			},
		})
	}

	for _, c := range collaborative {
		if i, ok := index[c.Article.ID]; ok {
			merged[i].Score += c.Score * e.cfg.HybridCollaborativeWeight
			merged[i].Breakdown["collaborative_score"] = c.Score
			continue
		}
		merged = append(merged, Candidate{
			Article:  c.Article,
			Score:    c.Score * e.cfg.HybridCollaborativeWeight,
			Strategy: StrategyHybrid,
			Breakdown: map[string]float64{
				"content_score":       0,
				"collaborative_score": c.Score,
			},
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, nil
}
