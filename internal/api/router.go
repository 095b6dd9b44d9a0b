// NewsLens - Personalized News Aggregation and Recommendation
// Copyright 2026 NewsLens Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/newslens-io/newslens

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/newslens-io/newslens/internal/middleware"
)

// NewRouter wires all HTTP routes onto a chi router.
func NewRouter(h *Handler, corsOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	if len(corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.PrometheusMetrics)

		r.Route("/news", func(r chi.Router) {
			r.Get("/", h.News)
			r.Get("/categories", h.Categories)
			r.Get("/trending", h.Trending)
			r.Post("/refresh", h.Refresh)
			r.Get("/sources/{source}", h.BySource)
			r.Get("/{id}", h.Article)
			r.Post("/{id}/read", h.RecordRead)
			r.Post("/{id}/feedback", h.Feedback)
		})

		r.Route("/ai", func(r chi.Router) {
			r.Post("/recommendations", h.Recommendations)
			r.Post("/analyze-article", h.AnalyzeArticle)
			r.Get("/user-profile/{id}", h.UserProfile)
			r.Get("/algorithms", h.Algorithms)
		})

		r.Route("/preferences/{userID}", func(r chi.Router) {
			r.Get("/", h.Preferences)
			r.Put("/{category}", h.SetPreference)
			r.Delete("/{category}", h.DeletePreference)
		})

		r.Get("/analytics/{userID}/reading", h.ReadingAnalytics)
	})

	return r
}
