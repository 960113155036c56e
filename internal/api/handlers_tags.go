// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package api

import (
	"fmt"
	"net/http"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/models"
)

// pageRequest holds bare pagination parameters for listings without filters.
type pageRequest struct {
	Page     int `validate:"min=1"`
	PageSize int `validate:"min=1"`
}

// parsePageRequest extracts and validates page/page_size. Returns false if a
// validation error response was already written.
func (h *Handler) parsePageRequest(w http.ResponseWriter, r *http.Request) (pageRequest, bool) {
	var req pageRequest
	var err error

	if req.Page, err = queryInt(r, "page", 1); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
		return req, false
	}
	if req.PageSize, err = queryInt(r, "page_size", h.config.API.DefaultPageSize); err != nil {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error(), nil)
		return req, false
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusUnprocessableEntity, apiErr.Code, apiErr.Message, nil)
		return req, false
	}
	if req.PageSize > h.config.API.MaxPageSize {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR",
			fmt.Sprintf("page_size must be at most %d", h.config.API.MaxPageSize), nil)
		return req, false
	}

	return req, true
}

// ListTags handles GET /api/v1/tags: every tag with its usage count, most
// used first. There is no text filter on this listing; total is the
// unfiltered tag count.
func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parsePageRequest(w, r)
	if !ok {
		return
	}

	items, total, err := h.store.ListTags(r.Context(), req.Page, req.PageSize)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR",
			"failed to list tags", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.TagListResponse{
		Items:    items,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
	})
}
