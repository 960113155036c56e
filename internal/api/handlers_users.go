// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package api

import (
	"net/http"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/models"
)

// UserToRead handles GET /api/v1/users/{user_id}/to-read: the user's reading
// list joined with book details.
//
// Total counts the user's to_read rows regardless of join success, so it can
// exceed the number of items returned across all pages when a listed book is
// missing from the catalog. This mirrors the historical behavior.
func (h *Handler) UserToRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathInt64(r, "user_id")
	if !ok {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			"user_id must be an integer", nil)
		return
	}

	req, ok := h.parsePageRequest(w, r)
	if !ok {
		return
	}

	items, total, err := h.store.UserToRead(r.Context(), userID, req.Page, req.PageSize)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR",
			"failed to fetch reading list", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.ToReadListResponse{
		UserID:   userID,
		Items:    items,
		Page:     req.Page,
		PageSize: req.PageSize,
		Total:    total,
	})
}
