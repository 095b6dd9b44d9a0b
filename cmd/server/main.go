// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/newslens-io/newslens/internal/api"
	"github.com/newslens-io/newslens/internal/config"
	"github.com/newslens-io/newslens/internal/ingest"
	"github.com/newslens-io/newslens/internal/logging"
	"github.com/newslens-io/newslens/internal/metrics"
	"github.com/newslens-io/newslens/internal/recommend"
	"github.com/newslens-io/newslens/internal/store"
	"github.com/newslens-io/newslens/internal/textanalysis"
)

func main() {
	if err := run(); err != nil {
		logger := logging.With().Logger()
		logger.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logger := logging.With().Str("component", "server").Logger()
	logger.Info().Str("addr", cfg.Server.Addr()).Msg("starting newslens")

	st, err := store.Open(store.Config{
		Path:      cfg.Database.Path,
		MaxMemory: cfg.Database.MaxMemory,
		Threads:   cfg.Database.Threads,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			logger.Error().Err(err).Msg("closing store")
		}
	}()

	analyzer := textanalysis.NewAnalyzer(textanalysis.Config{
		WordsPerMinute: cfg.Analyzer.WordsPerMinute,
		KeywordCount:   cfg.Analyzer.KeywordCount,
	})

	engineCfg := recommend.DefaultConfig()
	engineCfg.HybridContentWeight = cfg.Engine.ContentWeight
	engineCfg.HybridCollaborativeWeight = cfg.Engine.CollaborativeWeight
	engineCfg.NeighborCount = cfg.Engine.NeighborCount
	engineCfg.DefaultLimit = cfg.Engine.DefaultLimit
	engine, err := recommend.NewEngine(engineCfg, st, analyzer, logging.With().Str("component", "recommend").Logger())
	if err != nil {
		return err
	}
	engine.SetObserver(metrics.RankingObserver{})

	var (
		refresher api.Refreshing
		scheduler *ingest.Scheduler
	)
	if cfg.Ingest.Enabled {
		provider := ingest.NewBreakerClient(ingest.NewClient(cfg.Ingest))
		var extractor *ingest.Extractor
		if cfg.Ingest.ExtractContent {
			extractor = ingest.NewExtractor(cfg.Ingest.RequestTimeout)
		}
		r := ingest.NewRefresher(cfg.Ingest, provider, st, analyzer, extractor)
		refresher = r

		scheduler, err = ingest.NewScheduler(cfg.Ingest.Schedule, r)
		if err != nil {
			return err
		}
		scheduler.Start()
		defer scheduler.Stop()
		logger.Info().Str("schedule", cfg.Ingest.Schedule).Msg("article ingestion scheduled")
	} else {
		logger.Info().Msg("article ingestion disabled")
	}

	handler := api.NewHandler(st, engine, analyzer, refresher)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.NewRouter(handler, cfg.Server.CORSOrigins),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return err
	}
	logger.Info().Msg("shutdown complete")
	return nil
}
