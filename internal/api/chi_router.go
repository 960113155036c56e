// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/config"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so it can be used with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// NewRouter wires all HTTP routes.
//
// Infrastructure endpoints (banner, health, metrics) live at the root;
// resource endpoints live under /api/v1 with rate limiting and Prometheus
// instrumentation. POST /api/v1/ratings additionally requires the API key.
func NewRouter(h *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chiMiddleware(middleware.RequestLogger))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/", h.Banner)
	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		if !cfg.RateLimit.Disabled {
			r.Use(httprate.LimitByIP(cfg.RateLimit.Requests, cfg.RateLimit.Window))
		}
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))

		r.Get("/books", h.ListBooks)
		r.Get("/books/{book_id}", h.GetBook)
		r.Get("/books/{book_id}/ratings/summary", h.RatingsSummary)
		r.Get("/tags", h.ListTags)
		r.Get("/users/{user_id}/to-read", h.UserToRead)

		r.With(RequireAPIKey(cfg.Security.APIKey)).Post("/ratings", h.CreateRating)
	})

	return r
}
