// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package models

// ErrorResponse is the envelope returned by all failing endpoints.
//
// Example:
//
//	{
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "sort must be one of avg, ratings_count, year, title"
//	  }
//	}
//
// Successful responses return their documented payloads directly, without an
// envelope.
type ErrorResponse struct {
	Error *APIError `json:"error"`
}

// APIError carries a machine-readable code and a human-readable message.
//
// Codes used by this service:
//   - VALIDATION_ERROR: bad query/body parameter shape, range, or enum
//   - AUTH_ERROR: missing or incorrect x-api-key on a protected endpoint
//   - NOT_FOUND: no matching document
//   - DATABASE_ERROR: unexpected store failure during request handling
//   - STORE_UNAVAILABLE: store unreachable (health check)
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Banner is the GET / service banner payload.
type Banner struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthStatus is the GET /healthz payload.
type HealthStatus struct {
	Status   string  `json:"status"`
	Database string  `json:"database"`
	Uptime   float64 `json:"uptime_seconds"`
}
