// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package middleware

import (
	"net/http"
	"time"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/logging"
)

// RequestLogger emits one structured access-log line per request with route,
// method, status code, latency, and client address.
func RequestLogger(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &statusResponseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next(wrapper, r)

		logging.Info().
			Str("route", r.URL.Path).
			Str("method", r.Method).
			Int("status_code", wrapper.statusCode).
			Float64("latency_ms", float64(time.Since(start).Microseconds())/1000.0).
			Str("client_ip", r.RemoteAddr).
			Str("request_id", GetRequestID(r.Context())).
			Msg("request")
	}
}
