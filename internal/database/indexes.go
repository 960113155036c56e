// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the full index set for all five collections. Index
// creation is idempotent; existing identical indexes are left untouched.
// Called by the data loader before ingestion.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	specs := map[string][]mongo.IndexModel{
		CollBooks: {
			{Keys: bson.D{{Key: "title", Value: "text"}, {Key: "authors", Value: "text"}}},
			{Keys: bson.D{{Key: "average_rating", Value: -1}}},
			{
				Keys:    bson.D{{Key: "book_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		CollRatings: {
			{Keys: bson.D{{Key: "book_id", Value: 1}}},
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "book_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		CollTags: {
			{
				Keys:    bson.D{{Key: "tag_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "tag_name", Value: 1}}},
		},
		CollBookTags: {
			{Keys: bson.D{{Key: "tag_id", Value: 1}}},
			{Keys: bson.D{{Key: "goodreads_book_id", Value: 1}}},
		},
		CollToRead: {
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "book_id", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
	}

	for coll, models := range specs {
		if _, err := db.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", coll, err)
		}
	}
	return nil
}
