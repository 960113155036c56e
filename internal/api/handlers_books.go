// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/database"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/models"
)

// listBooksRequest holds the parsed query parameters for GET /books.
// Sort and order are closed enums; anything else is rejected before the
// store is touched.
type listBooksRequest struct {
	Sort     string   `validate:"oneof=avg ratings_count year title"`
	Order    string   `validate:"oneof=asc desc"`
	Page     int      `validate:"min=1"`
	PageSize int      `validate:"min=1"`
	MinAvg   *float64 `validate:"omitempty,gte=0,lte=5"`
}

// ListBooks handles GET /api/v1/books: filter, sort, and paginate the book
// catalog.
//
// Query parameters:
//   - q: case-insensitive substring match on title or authors
//   - min_avg: minimum average rating (0-5)
//   - year_from, year_to: publication year bounds (closed range)
//   - sort: avg | ratings_count | year | title (default avg)
//   - order: asc | desc (default desc)
//   - page (default 1), page_size (default 20, max 100)
func (h *Handler) ListBooks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, err := queryInt(r, "page", 1)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	pageSize, err := queryInt(r, "page_size", h.config.API.DefaultPageSize)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
		return
	}

	req := listBooksRequest{
		Sort:     query.Get("sort"),
		Order:    query.Get("order"),
		Page:     page,
		PageSize: pageSize,
	}
	if req.Sort == "" {
		req.Sort = "avg"
	}
	if req.Order == "" {
		req.Order = "desc"
	}

	filter := database.BookFilter{Query: query.Get("q")}

	if raw := query.Get("min_avg"); raw != "" {
		minAvg, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
				"min_avg must be a number", nil)
			return
		}
		req.MinAvg = &minAvg
		filter.MinAvg = &minAvg
	}

	if raw := query.Get("year_from"); raw != "" {
		year, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
				"year_from must be an integer", nil)
			return
		}
		filter.YearFrom = &year
	}

	if raw := query.Get("year_to"); raw != "" {
		year, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
				"year_to must be an integer", nil)
			return
		}
		filter.YearTo = &year
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusUnprocessableEntity, apiErr.Code, apiErr.Message, nil)
		return
	}
	if req.PageSize > h.config.API.MaxPageSize {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
			fmt.Sprintf("page_size must be at most %d", h.config.API.MaxPageSize), nil)
		return
	}

	items, total, err := h.store.ListBooks(r.Context(), filter, req.Sort, req.Order, req.Page, req.PageSize)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR",
			"failed to list books", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.BookListResponse{
		Items:    items,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
	})
}

// GetBook handles GET /api/v1/books/{book_id}.
func (h *Handler) GetBook(w http.ResponseWriter, r *http.Request) {
	bookID, ok := pathInt64(r, "book_id")
	if !ok {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"book_id must be an integer", nil)
		return
	}

	book, err := h.store.GetBook(r.Context(), bookID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR",
			"failed to fetch book", err)
		return
	}

	respondJSON(w, http.StatusOK, book)
}
