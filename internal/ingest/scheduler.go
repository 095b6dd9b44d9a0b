// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/newslens-io/newslens/internal/logging"
)

// refreshTimeout bounds a single scheduled ingest cycle.
const refreshTimeout = 5 * time.Minute

// Scheduler runs the Refresher on a cron schedule.
type Scheduler struct {
	cron      *cron.Cron
	refresher *Refresher
	logger    zerolog.Logger
}

// NewScheduler registers refresher under the given cron expression.
// Standard five-field expressions and descriptors like "@every 30m"
// are accepted.
func NewScheduler(schedule string, refresher *Refresher) (*Scheduler, error) {
	s := &Scheduler{
		cron:      cron.New(),
		refresher: refresher,
		logger:    logging.With().Str("component", "scheduler").Logger(),
	}

	_, err := s.cron.AddFunc(schedule, s.run)
	if err != nil {
		return nil, fmt.Errorf("invalid ingest schedule %q: %w", schedule, err)
	}
	return s, nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if _, err := s.refresher.Refresh(ctx); err != nil {
		s.logger.Error().Err(err).Msg("scheduled refresh failed")
	}
}

// Start begins scheduled execution in the cron goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().Msg("ingest scheduler started")
}

// Stop halts scheduling and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("ingest scheduler stopped")
}
