// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/newslens-io/newslens/internal/config"
	"github.com/newslens-io/newslens/internal/logging"
	"github.com/newslens-io/newslens/internal/metrics"
	"github.com/newslens-io/newslens/internal/models"
	"github.com/newslens-io/newslens/internal/textanalysis"
)

// Storage is the store surface the Refresher writes through.
type Storage interface {
	HasArticleURL(ctx context.Context, url string) (bool, error)
	InsertArticle(ctx context.Context, a *models.Article) (int64, error)
}

// Result summarizes one ingest cycle.
type Result struct {
	Fetched      int `json:"fetched"`
	Stored       int `json:"stored"`
	Deduplicated int `json:"deduplicated"`
	Failed       int `json:"failed"`
}

// Refresher drives one ingest cycle: fetch, analyze, store.
type Refresher struct {
	cfg       config.IngestConfig
	provider  Provider
	store     Storage
	analyzer  *textanalysis.Analyzer
	extractor *Extractor
	logger    zerolog.Logger
}

// NewRefresher assembles a Refresher. The extractor may be nil, in
// which case provider-supplied content is stored as-is.
func NewRefresher(cfg config.IngestConfig, provider Provider, store Storage, analyzer *textanalysis.Analyzer, extractor *Extractor) *Refresher {
	if analyzer == nil {
		analyzer = textanalysis.NewAnalyzer(textanalysis.Config{})
	}
	return &Refresher{
		cfg:       cfg,
		provider:  provider,
		store:     store,
		analyzer:  analyzer,
		extractor: extractor,
		logger:    logging.With().Str("component", "ingest").Logger(),
	}
}

// Refresh runs one full ingest cycle across all configured categories.
// Individual bad articles are skipped; a category fetch failure is
// logged and the remaining categories still run. The returned error is
// the first provider failure, nil when every fetch succeeded.
func (r *Refresher) Refresh(ctx context.Context) (Result, error) {
	start := time.Now()
	categories := r.cfg.Categories
	if len(categories) == 0 {
		categories = []string{""}
	}

	var res Result
	var firstErr error
	for _, category := range categories {
		resp, err := r.provider.TopHeadlines(ctx, r.cfg.Country, category, r.cfg.PageSize)
		if err != nil {
			r.logger.Error().Err(err).Str("category", category).Msg("headline fetch failed")
			if firstErr == nil {
				firstErr = fmt.Errorf("fetch %q headlines: %w", category, err)
			}
			continue
		}
		r.ingestBatch(ctx, category, resp.Articles, &res)
	}

	metrics.RecordIngestRun(res.Fetched, res.Stored, res.Deduplicated, firstErr)
	r.logger.Info().
		Int("fetched", res.Fetched).
		Int("stored", res.Stored).
		Int("deduplicated", res.Deduplicated).
		Int("failed", res.Failed).
		Dur("elapsed", time.Since(start)).
		Msg("ingest cycle complete")
	return res, firstErr
}

// ingestBatch analyzes and stores one category's worth of articles.
func (r *Refresher) ingestBatch(ctx context.Context, category string, raws []RawArticle, res *Result) {
	for i := range raws {
		raw := &raws[i]
		if raw.Title == "" || raw.Title == "[Removed]" || raw.URL == "" {
			continue
		}
		res.Fetched++

		exists, err := r.store.HasArticleURL(ctx, raw.URL)
		if err != nil {
			r.logger.Error().Err(err).Str("url", raw.URL).Msg("dedupe lookup failed")
			metrics.IngestErrors.WithLabelValues("database").Inc()
			res.Failed++
			continue
		}
		if exists {
			res.Deduplicated++
			continue
		}

		article := r.buildArticle(ctx, category, raw)
		if _, err := r.store.InsertArticle(ctx, article); err != nil {
			r.logger.Error().Err(err).Str("url", raw.URL).Msg("article insert failed")
			metrics.IngestErrors.WithLabelValues("database").Inc()
			res.Failed++
			continue
		}
		res.Stored++
	}
}

// buildArticle converts a provider article into a stored one, running
// content extraction and text analysis.
func (r *Refresher) buildArticle(ctx context.Context, category string, raw *RawArticle) *models.Article {
	content := raw.Content
	if r.cfg.ExtractContent && r.extractor != nil {
		extracted, err := r.extractor.Extract(ctx, raw.URL)
		switch {
		case err != nil:
			// Provider snippet still gives the analyzer something.
			r.logger.Debug().Err(err).Str("url", raw.URL).Msg("content extraction failed")
			metrics.IngestErrors.WithLabelValues("extraction").Inc()
		case extracted != "":
			content = extracted
		}
	}

	analysisStart := time.Now()
	analysis := r.analyzer.Analyze(raw.Title, raw.Description, content)
	metrics.AnalysisDuration.Observe(time.Since(analysisStart).Seconds())

	// The provider's category wins when the fetch was scoped to one;
	// otherwise fall back to keyword-based classification.
	if category == "" {
		category = analysis.Category
	}

	tags := analysis.Keywords
	if len(tags) > 5 {
		tags = tags[:5]
	}

	return &models.Article{
		Title:          raw.Title,
		Description:    raw.Description,
		Content:        content,
		URL:            raw.URL,
		ImageURL:       raw.URLToImage,
		Source:         raw.Source.Name,
		Author:         raw.Author,
		PublishedAt:    raw.PublishedAt,
		Category:       category,
		Tags:           tags,
		SentimentScore: analysis.SentimentScore,
		ReadingTime:    analysis.ReadingTime,
	}
}
