// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIngestDatasetDownloadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	ing := New(nil, WithBaseURL(server.URL+"/"), WithHTTPClient(server.Client()))

	_, err := ing.ingestDataset(context.Background(), Dataset{Name: "books", KeyField: "book_id"})
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestIngestDatasetHeaderOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/books.csv" {
			t.Errorf("unexpected request path %s", r.URL.Path)
		}
		w.Write([]byte("book_id,title\n"))
	}))
	defer server.Close()

	ing := New(nil, WithBaseURL(server.URL+"/"), WithHTTPClient(server.Client()))

	// A dataset with no rows is complete before any store write happens.
	records, err := ing.ingestDataset(context.Background(), Dataset{Name: "books", KeyField: "book_id"})
	if err != nil {
		t.Fatalf("ingestDataset() error: %v", err)
	}
	if records != 0 {
		t.Errorf("expected 0 records, got %d", records)
	}
}

func TestIngestDatasetBadCSV(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("book_id,title\n1,\"unterminated\n"))
	}))
	defer server.Close()

	ing := New(nil, WithBaseURL(server.URL+"/"), WithHTTPClient(server.Client()))

	if _, err := ing.ingestDataset(context.Background(), Dataset{Name: "books"}); err == nil {
		t.Fatal("expected error for malformed CSV")
	}
}

func TestIngestDatasetSampleURL(t *testing.T) {
	var requested string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.URL.Path
		w.Write([]byte("user_id,book_id\n"))
	}))
	defer server.Close()

	ing := New(nil,
		WithBaseURL(server.URL+"/"),
		WithHTTPClient(server.Client()),
		WithSamples(true))

	if _, err := ing.ingestDataset(context.Background(), Dataset{Name: "to_read"}); err != nil {
		t.Fatalf("ingestDataset() error: %v", err)
	}
	if requested != "/samples/to_read.csv" {
		t.Errorf("expected samples path, got %q", requested)
	}
}
