// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package api

import (
	"net/http"
	"time"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/models"
)

// Banner handles GET /: a minimal service identification payload.
func (h *Handler) Banner(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.Banner{
		Message: "GoodBooks API",
		Version: Version,
	})
}

// Health handles GET /healthz: a store connectivity probe. Returns 200 when
// the store answers a ping, 503 otherwise.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE",
			"Database connection failed", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.HealthStatus{
		Status:   "healthy",
		Database: "connected",
		Uptime:   time.Since(h.startTime).Seconds(),
	})
}
