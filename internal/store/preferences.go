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

// UpsertPreference writes a user's category weight, replacing any
// existing row for the same (user, category).
func (s *Store) UpsertPreference(ctx context.Context, p *models.Preference) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO user_preferences (user_id, category, weight, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, category)
		DO UPDATE SET weight = EXCLUDED.weight, updated_at = now()`,
		p.UserID, p.Category, p.Weight)
	if err != nil {
		return fmt.Errorf("upsert preference: %w", err)
	}
	return nil
}

// PreferencesByUser returns the user's preference weights in category
// order, implementing recommend.DataStore.
func (s *Store) PreferencesByUser(ctx context.Context, userID int64) ([]models.Preference, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT user_id, category, weight, updated_at
		FROM user_preferences WHERE user_id = ? ORDER BY category`, userID)
	if err != nil {
		return nil, fmt.Errorf("query preferences: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var prefs []models.Preference
	for rows.Next() {
		var p models.Preference
		if err := rows.Scan(&p.UserID, &p.Category, &p.Weight, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan preference: %w", err)
		}
		prefs = append(prefs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate preferences: %w", err)
	}
	return prefs, nil
}

// DeletePreference removes a user's weight for one category. Deleting a
// nonexistent row is not an error.
func (s *Store) DeletePreference(ctx context.Context, userID int64, category string) error {
	_, err := s.conn.ExecContext(ctx,
		`DELETE FROM user_preferences WHERE user_id = ? AND category = ?`,
		userID, category)
	if err != nil {
		return fmt.Errorf("delete preference: %w", err)
	}
	return nil
}
