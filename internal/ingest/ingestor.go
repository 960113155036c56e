// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

// Package ingest downloads the goodbooks-10k CSV files and loads them into
// MongoDB. It backs the cmd/ingest binary and is a one-shot operation:
// keyed datasets (books, tags) are upserted so reruns converge, the rest
// are appended.
package ingest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/logging"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/metrics"
)

// writeBatchSize bounds the number of documents per bulk write.
const writeBatchSize = 1000

// Result is the outcome of loading one dataset. A failed dataset carries
// its error here; it never aborts the run.
type Result struct {
	Dataset string
	Records int
	Err     error
}

// Ingestor downloads and loads the goodbooks-10k datasets.
type Ingestor struct {
	db         *mongo.Database
	client     *http.Client
	baseURL    string
	useSamples bool
}

// Option customizes an Ingestor.
type Option func(*Ingestor)

// WithBaseURL overrides the download root. Mainly for tests.
func WithBaseURL(url string) Option {
	return func(ing *Ingestor) { ing.baseURL = url }
}

// WithHTTPClient overrides the HTTP client used for downloads.
func WithHTTPClient(client *http.Client) Option {
	return func(ing *Ingestor) { ing.client = client }
}

// WithSamples switches downloads to the reduced samples/ files.
func WithSamples(useSamples bool) Option {
	return func(ing *Ingestor) { ing.useSamples = useSamples }
}

// New creates an Ingestor writing to the given database.
func New(db *mongo.Database, opts ...Option) *Ingestor {
	ing := &Ingestor{
		db:      db,
		client:  &http.Client{Timeout: 5 * time.Minute},
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(ing)
	}
	return ing
}

// IngestAll loads every dataset in order. A dataset that fails is logged
// and skipped; the remaining datasets still load. The returned slice has
// one Result per dataset, in load order.
func (ing *Ingestor) IngestAll(ctx context.Context) []Result {
	results := make([]Result, 0, len(Datasets))
	for _, ds := range Datasets {
		start := time.Now()
		records, err := ing.ingestDataset(ctx, ds)
		metrics.RecordIngest(ds.Name, records, time.Since(start), err)

		if err != nil {
			logging.Error().Str("dataset", ds.Name).Err(err).Msg("dataset ingestion failed, continuing")
		} else {
			logging.Info().
				Str("dataset", ds.Name).
				Int("records", records).
				Dur("elapsed", time.Since(start)).
				Msg("dataset ingested")
		}
		results = append(results, Result{Dataset: ds.Name, Records: records, Err: err})
	}
	return results
}

// ingestDataset downloads, parses, and writes a single dataset.
func (ing *Ingestor) ingestDataset(ctx context.Context, ds Dataset) (int, error) {
	url := ds.URL(ing.baseURL, ing.useSamples)
	logging.Info().Str("dataset", ds.Name).Str("url", url).Msg("downloading dataset")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build request for %s: %w", url, err)
	}
	resp, err := ing.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d downloading %s", resp.StatusCode, url)
	}

	docs, err := parseCSV(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", ds.Name, err)
	}
	if len(docs) == 0 {
		return 0, nil
	}

	if ds.KeyField != "" {
		return ing.upsertDocs(ctx, ds, docs)
	}
	return ing.insertDocs(ctx, ds, docs)
}

// upsertDocs writes documents with replace-upserts keyed on the dataset's
// KeyField, batched through BulkWrite. Rerunning the loader refreshes the
// existing documents instead of duplicating them.
func (ing *Ingestor) upsertDocs(ctx context.Context, ds Dataset, docs []bson.M) (int, error) {
	coll := ing.db.Collection(ds.Name)

	written := 0
	for start := 0; start < len(docs); start += writeBatchSize {
		end := start + writeBatchSize
		if end > len(docs) {
			end = len(docs)
		}

		writes := make([]mongo.WriteModel, 0, end-start)
		for _, doc := range docs[start:end] {
			writes = append(writes, mongo.NewReplaceOneModel().
				SetFilter(bson.M{ds.KeyField: doc[ds.KeyField]}).
				SetReplacement(doc).
				SetUpsert(true))
		}

		if _, err := coll.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false)); err != nil {
			return written, fmt.Errorf("bulk upsert into %s failed: %w", ds.Name, err)
		}
		written += end - start
	}

	return written, nil
}

// insertDocs appends documents with unordered InsertMany. Duplicate-key
// errors from a partial rerun surface as a write error for the dataset.
func (ing *Ingestor) insertDocs(ctx context.Context, ds Dataset, docs []bson.M) (int, error) {
	coll := ing.db.Collection(ds.Name)

	written := 0
	for start := 0; start < len(docs); start += writeBatchSize {
		end := start + writeBatchSize
		if end > len(docs) {
			end = len(docs)
		}

		batch := make([]interface{}, 0, end-start)
		for _, doc := range docs[start:end] {
			batch = append(batch, doc)
		}

		if _, err := coll.InsertMany(ctx, batch, options.InsertMany().SetOrdered(false)); err != nil {
			return written, fmt.Errorf("insert into %s failed: %w", ds.Name, err)
		}
		written += end - start
	}

	return written, nil
}
