// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package store

import (
	"context"
	"fmt"

	"github.com/newslens-io/newslens/internal/models"
)

// InsertFeedback records a rating, like/dislike, or comment for an
// article and returns the feedback id.
func (s *Store) InsertFeedback(ctx context.Context, fb *models.Feedback) (int64, error) {
	var id int64
	err := s.conn.QueryRowContext(ctx, `
		INSERT INTO article_feedback (user_id, article_id, rating, liked, feedback_text)
		VALUES (?, ?, ?, ?, ?) RETURNING id`,
		fb.UserID, fb.ArticleID, fb.Rating, fb.Liked, fb.Comment).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert feedback: %w", err)
	}
	return id, nil
}

// LikedFeedbackByUser returns the user's positive feedback entries in
// insertion order, implementing recommend.DataStore.
func (s *Store) LikedFeedbackByUser(ctx context.Context, userID int64) ([]models.Feedback, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, user_id, article_id, rating, liked, feedback_text, created_at
		FROM article_feedback
		WHERE user_id = ? AND liked = TRUE ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query liked feedback: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Feedback
	for rows.Next() {
		var fb models.Feedback
		if err := rows.Scan(&fb.ID, &fb.UserID, &fb.ArticleID,
			&fb.Rating, &fb.Liked, &fb.Comment, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		out = append(out, fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}
	return out, nil
}
