// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package api

import (
	"crypto/subtle"
	"net/http"
)

// RequireAPIKey guards mutating endpoints with a static shared secret. The
// x-api-key header must equal the configured key; anything else is a 401
// with a deliberately generic message.
func RequireAPIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("x-api-key")
			if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				respondError(w, http.StatusUnauthorized, "AUTH_ERROR", "Invalid API key", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
