// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/config"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/models"
)

const testAPIKey = "test-key"

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080},
		API: config.APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Security: config.SecurityConfig{APIKey: testAPIKey},
		RateLimit: config.RateLimitConfig{
			Requests: 1000,
			Window:   time.Minute,
			Disabled: true,
		},
	}
}

// newTestRouter builds the full router over a fake store so tests exercise
// routing, middleware, and handlers together.
func newTestRouter(store Store) http.Handler {
	return NewRouter(NewHandler(store, testConfig()), testConfig())
}

func doRequest(t *testing.T, router http.Handler, method, target string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *models.APIError {
	t.Helper()

	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	if resp.Error == nil {
		t.Fatalf("expected error envelope, got %q", rec.Body.String())
	}
	return resp.Error
}

func TestBanner(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec := doRequest(t, router, http.MethodGet, "/", nil, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var banner models.Banner
	decodeBody(t, rec, &banner)
	if banner.Message != "GoodBooks API" {
		t.Errorf("unexpected banner message %q", banner.Message)
	}
	if banner.Version != Version {
		t.Errorf("expected version %q, got %q", Version, banner.Version)
	}
}

func TestHealthHealthy(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec := doRequest(t, router, http.MethodGet, "/healthz", nil, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var status models.HealthStatus
	decodeBody(t, rec, &status)
	if status.Status != "healthy" || status.Database != "connected" {
		t.Errorf("unexpected health payload %+v", status)
	}
}

func TestHealthStoreDown(t *testing.T) {
	store := newFakeStore()
	store.pingErr = errBoom
	router := newTestRouter(store)

	rec := doRequest(t, router, http.MethodGet, "/healthz", nil, nil)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	apiErr := decodeError(t, rec)
	if apiErr.Code != "STORE_UNAVAILABLE" {
		t.Errorf("expected STORE_UNAVAILABLE, got %q", apiErr.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec := doRequest(t, router, http.MethodGet, "/metrics", nil, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "go_") {
		t.Error("expected Prometheus exposition output")
	}
}

func TestRequestIDHeaderSet(t *testing.T) {
	router := newTestRouter(newFakeStore())

	rec := doRequest(t, router, http.MethodGet, "/", nil, nil)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID response header")
	}
}
