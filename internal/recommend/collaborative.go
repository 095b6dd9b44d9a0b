// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package recommend

import (
	"context"
	"fmt"
	"sort"
)

// neighbor is a similar user with their Jaccard similarity to the target.
type neighbor struct {
	userID     int64
	similarity float64
}

// collaborative scores articles read by the target user's most similar
// neighbors. Each unseen article is scored with the similarity of the
// first (most similar) neighbor that read it; less similar neighbors
// never re-score it.
func (e *Engine) collaborative(ctx context.Context, userID int64, limit int) ([]Candidate, error) {
	sets, err := e.store.UserInteractionSets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load interaction sets: %w", err)
	}

	target := sets[userID]

	neighbors := make([]neighbor, 0, len(sets))
	for otherID, otherSet := range sets {
		if otherID == userID {
			continue
		}
		sim, defined := jaccard(target, otherSet)
		if defined && sim > 0 {
			neighbors = append(neighbors, neighbor{userID: otherID, similarity: sim})
		}
	}

	// Similarity descending; equal similarities order by user id so the
	// ranking is reproducible regardless of map iteration order.
	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].similarity != neighbors[j].similarity {
			return neighbors[i].similarity > neighbors[j].similarity
		}
		return neighbors[i].userID < neighbors[j].userID
	})
	if len(neighbors) > e.cfg.NeighborCount {
		neighbors = neighbors[:e.cfg.NeighborCount]
	}

	seen := make(map[int64]struct{}, len(target))
	for id := range target {
		seen[id] = struct{}{}
	}

	var candidates []Candidate
	for _, n := range neighbors {
		// Ascending article-id order keeps the walk deterministic.
		articleIDs := make([]int64, 0, len(sets[n.userID]))
		for id := range sets[n.userID] {
			articleIDs = append(articleIDs, id)
		}
		sort.Slice(articleIDs, func(i, j int) bool { return articleIDs[i] < articleIDs[j] })

		for _, id := range articleIDs {
			if _, emitted := seen[id]; emitted {
				continue
			}
			article, ok, err := e.store.ArticleByID(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("resolve article %d: %w", id, err)
			}
			if !ok {
				// Treated as if the interaction did not exist.
				continue
			}
			candidates = append(candidates, Candidate{
				Article:  article,
				Score:    n.similarity,
				Strategy: StrategyCollaborative,
			})
			seen[id] = struct{}{}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}

// jaccard computes |a ∩ b| / |a ∪ b|. The second return value is false
// when the union is empty, where similarity is undefined: two users with
// no interactions at all are not "similar", they are incomparable.
func jaccard(a, b map[int64]struct{}) (float64, bool) {
	var intersection int
	for id := range a {
		if _, ok := b[id]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0, false
	}
	return float64(intersection) / float64(union), true
}
