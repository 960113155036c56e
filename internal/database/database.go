// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

// Package database provides the MongoDB access layer: connection lifecycle,
// index management, and typed query/aggregation operations over the five
// catalog collections (books, ratings, tags, book_tags, to_read).
//
// A single *DB is created at startup and shared by all request handlers; the
// driver provides its own connection pooling and is safe for concurrent use.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/config"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/logging"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/metrics"
)

// Collection names.
const (
	CollBooks    = "books"
	CollRatings  = "ratings"
	CollTags     = "tags"
	CollBookTags = "book_tags"
	CollToRead   = "to_read"
)

// DB wraps a MongoDB client and the application database handle.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// New connects to MongoDB and verifies connectivity with a ping. The
// returned DB is ready for concurrent use. Callers must Close it on
// shutdown.
func New(ctx context.Context, cfg config.MongoConfig) (*DB, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		// Best-effort disconnect; the ping failure is the error that matters.
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logging.Info().Str("database", cfg.Database).Msg("connected to MongoDB")

	return &DB{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Ping verifies store connectivity. Used by the health check.
func (db *DB) Ping(ctx context.Context) error {
	return db.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	return db.client.Disconnect(ctx)
}

// Database exposes the raw database handle for the data loader.
func (db *DB) Database() *mongo.Database {
	return db.db
}

func (db *DB) books() *mongo.Collection    { return db.db.Collection(CollBooks) }
func (db *DB) ratings() *mongo.Collection  { return db.db.Collection(CollRatings) }
func (db *DB) tags() *mongo.Collection     { return db.db.Collection(CollTags) }
func (db *DB) bookTags() *mongo.Collection { return db.db.Collection(CollBookTags) }
func (db *DB) toRead() *mongo.Collection   { return db.db.Collection(CollToRead) }

// observe records one store operation metric.
func observe(operation, collection string, start time.Time, err error) {
	metrics.RecordMongoQuery(operation, collection, time.Since(start), err)
}
