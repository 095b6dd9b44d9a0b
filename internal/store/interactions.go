// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/newslens-io/newslens/internal/models"
)

// InsertInteraction appends one read event to the reading history and
// returns its id.
func (s *Store) InsertInteraction(ctx context.Context, in *models.Interaction) (int64, error) {
	var id int64
	err := s.conn.QueryRowContext(ctx, `
		INSERT INTO reading_history (user_id, article_id, read_duration, completed)
		VALUES (?, ?, ?, ?) RETURNING id`,
		in.UserID, in.ArticleID, in.ReadDuration, in.Completed).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert interaction: %w", err)
	}
	return id, nil
}

// InteractionsByUser returns the user's reading history in insertion
// order, implementing recommend.DataStore.
func (s *Store) InteractionsByUser(ctx context.Context, userID int64) ([]models.Interaction, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, user_id, article_id, read_duration, completed, created_at
		FROM reading_history WHERE user_id = ? ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var interactions []models.Interaction
	for rows.Next() {
		var in models.Interaction
		if err := rows.Scan(&in.ID, &in.UserID, &in.ArticleID,
			&in.ReadDuration, &in.Completed, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		interactions = append(interactions, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interactions: %w", err)
	}
	return interactions, nil
}

// UserInteractionSets returns every user's set of interacted article ids,
// implementing recommend.DataStore.
func (s *Store) UserInteractionSets(ctx context.Context) (map[int64]map[int64]struct{}, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT DISTINCT user_id, article_id FROM reading_history`)
	if err != nil {
		return nil, fmt.Errorf("query interaction sets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	sets := make(map[int64]map[int64]struct{})
	for rows.Next() {
		var userID, articleID int64
		if err := rows.Scan(&userID, &articleID); err != nil {
			return nil, fmt.Errorf("scan interaction set row: %w", err)
		}
		if sets[userID] == nil {
			sets[userID] = make(map[int64]struct{})
		}
		sets[userID][articleID] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate interaction sets: %w", err)
	}
	return sets, nil
}

// CategoryCount is a per-category read count for analytics.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// SourceCount is a per-source read count for analytics.
type SourceCount struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

// DayCount is a per-day reading total for analytics trends.
type DayCount struct {
	Date        string `json:"date"`
	Articles    int64  `json:"articles_read"`
	ReadSeconds int64  `json:"reading_time"`
}

// ReadingStats summarizes a user's reading behavior.
type ReadingStats struct {
	TotalRead        int64   `json:"total_articles_read"`
	TotalReadSeconds int64   `json:"total_reading_time"`
	CompletedCount   int64   `json:"completed_count"`
	CompletionRate   float64 `json:"completion_rate"`
}

// UserReadingStats returns aggregate reading metrics for a user. A user
// with no history yields all-zero stats.
func (s *Store) UserReadingStats(ctx context.Context, userID int64) (ReadingStats, error) {
	var stats ReadingStats
	err := s.conn.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(read_duration), 0),
		       COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0)
		FROM reading_history WHERE user_id = ?`, userID).
		Scan(&stats.TotalRead, &stats.TotalReadSeconds, &stats.CompletedCount)
	if err != nil {
		return ReadingStats{}, fmt.Errorf("query reading stats: %w", err)
	}
	if stats.TotalRead > 0 {
		stats.CompletionRate = float64(stats.CompletedCount) / float64(stats.TotalRead) * 100
	}
	return stats, nil
}

// FavoriteCategories returns the user's most-read categories.
func (s *Store) FavoriteCategories(ctx context.Context, userID int64, limit int) ([]CategoryCount, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT a.category, COUNT(*) AS n
		FROM reading_history h JOIN articles a ON a.id = h.article_id
		WHERE h.user_id = ?
		GROUP BY a.category ORDER BY n DESC, a.category LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query favorite categories: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []CategoryCount
	for rows.Next() {
		var c CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("scan favorite category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// FavoriteSources returns the user's most-read sources.
func (s *Store) FavoriteSources(ctx context.Context, userID int64, limit int) ([]SourceCount, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT a.source_name, COUNT(*) AS n
		FROM reading_history h JOIN articles a ON a.id = h.article_id
		WHERE h.user_id = ? AND a.source_name <> ''
		GROUP BY a.source_name ORDER BY n DESC, a.source_name LIMIT ?`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query favorite sources: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []SourceCount
	for rows.Next() {
		var c SourceCount
		if err := rows.Scan(&c.Source, &c.Count); err != nil {
			return nil, fmt.Errorf("scan favorite source: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ReadingTrend returns per-day reading totals for the last `days` days,
// oldest first. Days without activity appear with zero counts.
func (s *Store) ReadingTrend(ctx context.Context, userID int64, days int) ([]DayCount, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT strftime(date_trunc('day', created_at), '%Y-%m-%d') AS day,
		       COUNT(*),
		       COALESCE(SUM(read_duration), 0)
		FROM reading_history
		WHERE user_id = ? AND created_at >= date_trunc('day', CURRENT_TIMESTAMP) - INTERVAL (?) DAY
		GROUP BY day`, userID, days-1)
	if err != nil {
		return nil, fmt.Errorf("query reading trend: %w", err)
	}
	defer func() { _ = rows.Close() }()

	byDay := make(map[string]DayCount)
	for rows.Next() {
		var d DayCount
		if err := rows.Scan(&d.Date, &d.Articles, &d.ReadSeconds); err != nil {
			return nil, fmt.Errorf("scan trend row: %w", err)
		}
		byDay[d.Date] = d
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trend rows: %w", err)
	}

	// Fill the full window so the caller always gets `days` entries.
	out := make([]DayCount, 0, days)
	today := time.Now()
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i).Format("2006-01-02")
		if d, ok := byDay[date]; ok {
			out = append(out, d)
			continue
		}
		out = append(out, DayCount{Date: date})
	}
	return out, nil
}
