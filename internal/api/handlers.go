// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

// Package api provides the HTTP handlers and routing for the GoodBooks API.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, Store interface, constructor
//   - handlers_helpers.go: shared response/param helpers
//   - handlers_health.go: banner and health endpoints
//   - handlers_books.go: book listing and lookup
//   - handlers_ratings.go: rating upsert and summary
//   - handlers_tags.go: tag popularity listing
//   - handlers_users.go: per-user reading list
package api

import (
	"context"
	"time"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/config"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/database"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/models"
)

// Version is reported by the service banner.
const Version = "1.0.0"

// Store is the narrow persistence interface the handlers depend on.
// *database.DB satisfies it; tests substitute a mock.
type Store interface {
	Ping(ctx context.Context) error
	ListBooks(ctx context.Context, f database.BookFilter, sort, order string, page, pageSize int) ([]models.Book, int64, error)
	GetBook(ctx context.Context, bookID int64) (*models.Book, error)
	UpsertRating(ctx context.Context, r models.Rating) (bool, error)
	RatingsSummary(ctx context.Context, bookID int64) (*models.RatingsSummary, error)
	ListTags(ctx context.Context, page, pageSize int) ([]models.TagPopularity, int64, error)
	UserToRead(ctx context.Context, userID int64, page, pageSize int) ([]models.ToReadItem, int64, error)
}

// Handler carries the dependencies for all API endpoints. Each handler
// receives its store at construction; there is no process-wide registration
// step.
type Handler struct {
	store     Store
	config    *config.Config
	startTime time.Time
}

// NewHandler creates an API handler backed by the given store.
func NewHandler(store Store, cfg *config.Config) *Handler {
	return &Handler{
		store:     store,
		config:    cfg,
		startTime: time.Now(),
	}
}
