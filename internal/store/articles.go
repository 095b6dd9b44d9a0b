// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/newslens-io/newslens/internal/models"
)

const articleColumns = `id, title, description, content, url, image_url,
	source_name, author, published_at, category, tags, sentiment_score,
	reading_time, created_at`

// InsertArticle stores a new article and returns its assigned id.
// Articles are deduplicated by URL: inserting an already-stored URL
// returns the existing article's id without modifying it.
func (s *Store) InsertArticle(ctx context.Context, a *models.Article) (int64, error) {
	if existing, err := s.articleIDByURL(ctx, a.URL); err == nil {
		return existing, nil
	} else if !errors.Is(err, ErrNotFound) {
		return 0, err
	}

	tags, err := json.Marshal(a.Tags)
	if err != nil {
		return 0, fmt.Errorf("marshal tags: %w", err)
	}

	var id int64
	err = s.conn.QueryRowContext(ctx, `
		INSERT INTO articles (title, description, content, url, image_url,
			source_name, author, published_at, category, tags,
			sentiment_score, reading_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`,
		a.Title, a.Description, a.Content, a.URL, a.ImageURL,
		a.Source, a.Author, nullableTime(a.PublishedAt), a.Category, string(tags),
		a.SentimentScore, a.ReadingTime,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert article: %w", err)
	}
	return id, nil
}

// articleIDByURL resolves an article id by its unique URL.
func (s *Store) articleIDByURL(ctx context.Context, url string) (int64, error) {
	var id int64
	err := s.conn.QueryRowContext(ctx,
		`SELECT id FROM articles WHERE url = ?`, url).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("query article by url: %w", err)
	}
	return id, nil
}

// HasArticleURL reports whether an article with the given URL is
// already stored.
func (s *Store) HasArticleURL(ctx context.Context, url string) (bool, error) {
	_, err := s.articleIDByURL(ctx, url)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetArticle returns the article with the given id, or ErrNotFound.
func (s *Store) GetArticle(ctx context.Context, id int64) (models.Article, error) {
	row := s.conn.QueryRowContext(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = ?`, id)
	a, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Article{}, ErrNotFound
	}
	if err != nil {
		return models.Article{}, fmt.Errorf("query article %d: %w", id, err)
	}
	return a, nil
}

// ArticleByID implements recommend.DataStore. A missing id is reported
// through the boolean, not as an error.
func (s *Store) ArticleByID(ctx context.Context, id int64) (models.Article, bool, error) {
	a, err := s.GetArticle(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return models.Article{}, false, nil
	}
	if err != nil {
		return models.Article{}, false, err
	}
	return a, true, nil
}

// AllArticles returns the full corpus in ascending id order, implementing
// recommend.DataStore.
func (s *Store) AllArticles(ctx context.Context) ([]models.Article, error) {
	return s.queryArticles(ctx,
		`SELECT `+articleColumns+` FROM articles ORDER BY id`)
}

// LatestArticles returns the most recently published articles.
func (s *Store) LatestArticles(ctx context.Context, limit int) ([]models.Article, error) {
	return s.queryArticles(ctx,
		`SELECT `+articleColumns+` FROM articles
		 ORDER BY published_at DESC NULLS LAST, id DESC LIMIT ?`, limit)
}

// ArticlesByCategory returns the latest articles in a category.
func (s *Store) ArticlesByCategory(ctx context.Context, category string, limit int) ([]models.Article, error) {
	return s.queryArticles(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE category = ?
		 ORDER BY published_at DESC NULLS LAST, id DESC LIMIT ?`, category, limit)
}

// ArticlesBySource returns the latest articles from a source.
func (s *Store) ArticlesBySource(ctx context.Context, source string, limit int) ([]models.Article, error) {
	return s.queryArticles(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE source_name = ?
		 ORDER BY published_at DESC NULLS LAST, id DESC LIMIT ?`, source, limit)
}

// SearchArticles returns articles whose title or description contains the
// query, case-insensitively, newest first.
func (s *Store) SearchArticles(ctx context.Context, query string, limit int) ([]models.Article, error) {
	pattern := "%" + query + "%"
	return s.queryArticles(ctx,
		`SELECT `+articleColumns+` FROM articles
		 WHERE title ILIKE ? OR description ILIKE ?
		 ORDER BY published_at DESC NULLS LAST, id DESC LIMIT ?`,
		pattern, pattern, limit)
}

// TrendingArticles returns articles published since local midnight,
// newest first, capped at limit.
func (s *Store) TrendingArticles(ctx context.Context, limit int) ([]models.Article, error) {
	return s.queryArticles(ctx,
		`SELECT `+articleColumns+` FROM articles
		 WHERE published_at >= date_trunc('day', CURRENT_TIMESTAMP)
		 ORDER BY published_at DESC, id DESC LIMIT ?`, limit)
}

// CountArticles returns the corpus size.
func (s *Store) CountArticles(ctx context.Context) (int64, error) {
	var n int64
	if err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}
	return n, nil
}

// queryArticles runs a query returning articleColumns rows.
func (s *Store) queryArticles(ctx context.Context, query string, args ...any) ([]models.Article, error) {
	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var articles []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanArticle reads one articleColumns row.
func scanArticle(row rowScanner) (models.Article, error) {
	var (
		a           models.Article
		tags        string
		publishedAt sql.NullTime
	)
	err := row.Scan(&a.ID, &a.Title, &a.Description, &a.Content, &a.URL,
		&a.ImageURL, &a.Source, &a.Author, &publishedAt, &a.Category,
		&tags, &a.SentimentScore, &a.ReadingTime, &a.CreatedAt)
	if err != nil {
		return models.Article{}, err
	}
	if publishedAt.Valid {
		a.PublishedAt = publishedAt.Time
	}
	if err := json.Unmarshal([]byte(tags), &a.Tags); err != nil {
		// A corrupt tags payload degrades to no tags rather than
		// failing the whole query.
		a.Tags = nil
	}
	return a, nil
}

// nullableTime maps the zero time to SQL NULL.
func nullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}
