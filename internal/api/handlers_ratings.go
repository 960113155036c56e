// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package api

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/database"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/models"
)

// ratingRequest is the POST /ratings body. UserID and BookID are pointers
// so that a missing field is distinguishable from a zero value.
type ratingRequest struct {
	UserID *int64 `json:"user_id" validate:"required"`
	BookID *int64 `json:"book_id" validate:"required"`
	Rating int    `json:"rating" validate:"min=1,max=5"`
}

// CreateRating handles POST /api/v1/ratings: upsert the caller's rating for
// a book. Requires a valid x-api-key header (enforced by middleware).
//
// The (user_id, book_id) pair is unique; a repeat submission overwrites the
// stored value rather than creating a duplicate. Responds 201 when a new
// rating document was created, 200 when an existing one was updated.
func (h *Handler) CreateRating(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"request body must be valid JSON", nil)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusUnprocessableEntity, apiErr.Code, apiErr.Message, nil)
		return
	}

	created, err := h.store.UpsertRating(r.Context(), models.Rating{
		UserID: *req.UserID,
		BookID: *req.BookID,
		Rating: req.Rating,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR",
			"failed to store rating", err)
		return
	}

	status := http.StatusOK
	message := "Rating updated"
	if created {
		status = http.StatusCreated
		message = "Rating created"
	}

	respondJSON(w, status, &models.UpsertResult{
		Created: created,
		Message: message,
	})
}

// RatingsSummary handles GET /api/v1/books/{book_id}/ratings/summary.
//
// The summary reads only the ratings collection: a book that has ratings
// but no catalog entry still summarizes, and a cataloged book with zero
// ratings is a 404.
func (h *Handler) RatingsSummary(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathInt64(r, "book_id")
	if !ok {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"book_id must be an integer", nil)
		return
	}

	summary, err := h.store.RatingsSummary(r.Context(), bookID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND",
				"No ratings found for this book", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR",
			"failed to summarize ratings", err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
