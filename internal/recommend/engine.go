// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package recommend

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/newslens-io/newslens/internal/textanalysis"
)

// Observer receives timing callbacks for completed rankings. The metrics
// package implements it; a nil observer is ignored.
type Observer interface {
	// ObserveRanking records one completed ranking call.
	ObserveRanking(strategy Strategy, duration time.Duration, results int)
}

// Engine is the recommendation engine facade. It composes profile
// synthesis, the content-based and collaborative scorers, and the hybrid
// ranker over a DataStore. All methods are safe for concurrent use; the
// engine holds no mutable state beyond its injected configuration.
type Engine struct {
	cfg      *Config
	store    DataStore
	analyzer *textanalysis.Analyzer
	logger   zerolog.Logger
	observer Observer
}

// NewEngine creates an engine. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, store DataStore, analyzer *textanalysis.Analyzer, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if store == nil {
		return nil, fmt.Errorf("data store is required")
	}
	if analyzer == nil {
		analyzer = textanalysis.NewAnalyzer(textanalysis.Config{})
	}

	return &Engine{
		cfg:      cfg,
		store:    store,
		analyzer: analyzer,
		logger:   logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// SetObserver attaches a metrics observer. Call before serving requests.
func (e *Engine) SetObserver(o Observer) {
	e.observer = o
}

// ContentBased returns up to limit articles ranked by content affinity
// with the user's profile. Articles with zero affinity are excluded. A
// non-positive limit is clamped to the configured default.
func (e *Engine) ContentBased(ctx context.Context, userID int64, limit int) ([]Candidate, error) {
	start := time.Now()
	limit = e.clampLimit(limit)

	candidates, err := e.contentBased(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	e.observe(StrategyContentBased, start, len(candidates))
	return candidates, nil
}

// Collaborative returns up to limit articles read by the user's most
// similar neighbors, scored by neighbor similarity. A brand-new user with
// no interactions always yields an empty result.
func (e *Engine) Collaborative(ctx context.Context, userID int64, limit int) ([]Candidate, error) {
	start := time.Now()
	limit = e.clampLimit(limit)

	candidates, err := e.collaborative(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	e.observe(StrategyCollaborative, start, len(candidates))
	return candidates, nil
}

// Hybrid returns up to limit articles ranked by the weighted blend of the
// content-based and collaborative scores. This is the default
// personalized strategy.
func (e *Engine) Hybrid(ctx context.Context, userID int64, limit int) ([]Candidate, error) {
	start := time.Now()
	limit = e.clampLimit(limit)

	candidates, err := e.hybrid(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	e.observe(StrategyHybrid, start, len(candidates))
	return candidates, nil
}

// Recommend dispatches to the strategy's ranking method. An invalid
// strategy falls back to hybrid.
func (e *Engine) Recommend(ctx context.Context, strategy Strategy, userID int64, limit int) ([]Candidate, error) {
	switch strategy {
	case StrategyContentBased:
		return e.ContentBased(ctx, userID, limit)
	case StrategyCollaborative:
		return e.Collaborative(ctx, userID, limit)
	default:
		return e.Hybrid(ctx, userID, limit)
	}
}

// AnalyzeText runs the text analyzer over ad hoc article fields. Used by
// the ingest pipeline and the analyze API endpoint.
func (e *Engine) AnalyzeText(title, description, content string) textanalysis.Analysis {
	return e.analyzer.Analyze(title, description, content)
}

// clampLimit replaces non-positive limits with the configured default.
func (e *Engine) clampLimit(limit int) int {
	if limit <= 0 {
		return e.cfg.DefaultLimit
	}
	return limit
}

// observe reports a completed ranking to the observer, if any.
func (e *Engine) observe(strategy Strategy, start time.Time, results int) {
	if e.observer != nil {
		e.observer.ObserveRanking(strategy, time.Since(start), results)
	}
	e.logger.Debug().
		Str("strategy", string(strategy)).
		Int("results", results).
		Dur("elapsed", time.Since(start)).
		Msg("ranking complete")
}
