// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/newslens-io/newslens/internal/ingest"
	"github.com/newslens-io/newslens/internal/logging"
	"github.com/newslens-io/newslens/internal/recommend"
	"github.com/newslens-io/newslens/internal/store"
	"github.com/newslens-io/newslens/internal/textanalysis"
)

// Refreshing triggers an ingest cycle. Implemented by
// ingest.Refresher; nil when ingestion is disabled.
type Refreshing interface {
	Refresh(ctx context.Context) (ingest.Result, error)
}

// Handler bundles the dependencies behind every endpoint.
type Handler struct {
	store     *store.Store
	engine    *recommend.Engine
	analyzer  *textanalysis.Analyzer
	refresher Refreshing
	startedAt time.Time
	logger    zerolog.Logger
}

// NewHandler creates a Handler. The refresher may be nil; the refresh
// endpoint then reports the feature as disabled.
func NewHandler(st *store.Store, engine *recommend.Engine, analyzer *textanalysis.Analyzer, refresher Refreshing) *Handler {
	if analyzer == nil {
		analyzer = textanalysis.NewAnalyzer(textanalysis.Config{})
	}
	return &Handler{
		store:     st,
		engine:    engine,
		analyzer:  analyzer,
		refresher: refresher,
		startedAt: time.Now(),
		logger:    logging.With().Str("component", "api").Logger(),
	}
}

// Health reports liveness, database reachability, and corpus size.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	status := "healthy"
	dbStatus := "up"
	var articleCount int64

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		status = "degraded"
		dbStatus = "down"
		h.logger.Error().Err(err).Msg("health check database ping failed")
	} else if n, err := h.store.CountArticles(ctx); err == nil {
		articleCount = n
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	respondSuccess(w, code, map[string]interface{}{
		"status":         status,
		"database":       dbStatus,
		"articles":       articleCount,
		"uptime_seconds": int64(time.Since(h.startedAt).Seconds()),
	}, started)
}
