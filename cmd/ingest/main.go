// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

// Package main is the one-shot data loader for the GoodBooks API.
//
// It downloads the five goodbooks-10k CSV files (books, tags, ratings,
// book_tags, to_read), ensures the MongoDB indexes, and loads the data.
// By default the reduced samples/ files are used; pass --full-data for the
// complete dataset.
//
// A dataset that fails to download or parse is logged and skipped so one
// bad file does not abort the whole load. The process exits non-zero if
// any dataset failed.
//
// # Example Usage
//
//	export MONGO_URI=mongodb://localhost:27017
//	export DB_NAME=goodbooks
//	./goodbooks-ingest --full-data
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/config"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/database"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/ingest"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/logging"
)

func main() {
	fullData := flag.Bool("full-data", false, "download the full dataset instead of the reduced samples")
	baseURL := flag.String("base-url", ingest.DefaultBaseURL, "root URL of the goodbooks-10k raw files")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	logging.Info().
		Str("database", cfg.Mongo.Database).
		Bool("full_data", *fullData).
		Msg("Starting goodbooks data load")

	ctx := context.Background()

	db, err := database.New(ctx, cfg.Mongo)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logging.Error().Err(err).Msg("Error closing MongoDB client")
		}
	}()

	if err := db.EnsureIndexes(ctx); err != nil {
		logging.Fatal().Err(err).Msg("Failed to create indexes")
	}
	logging.Info().Msg("Indexes ensured")

	ingestor := ingest.New(db.Database(),
		ingest.WithBaseURL(*baseURL),
		ingest.WithSamples(!*fullData))

	start := time.Now()
	results := ingestor.IngestAll(ctx)

	failed := 0
	total := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			continue
		}
		total += res.Records
	}

	logging.Info().
		Int("datasets", len(results)).
		Int("failed", failed).
		Int("records", total).
		Dur("elapsed", time.Since(start)).
		Msg("Data load finished")

	if failed > 0 {
		os.Exit(1)
	}
}
