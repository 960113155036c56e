// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/models"
)

// tagPopularityPipeline joins every tag against its book_tags usage rows and
// projects the association count, sorted most-used first. book_count is the
// size of the joined array: duplicate associations count twice, matching the
// historical semantics.
func tagPopularityPipeline(page, pageSize int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollBookTags},
			{Key: "localField", Value: "tag_id"},
			{Key: "foreignField", Value: "tag_id"},
			{Key: "as", Value: "book_usage"},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "tag_id", Value: 1},
			{Key: "tag_name", Value: 1},
			{Key: "book_count", Value: bson.D{{Key: "$size", Value: "$book_usage"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "book_count", Value: -1}}}},
		{{Key: "$skip", Value: int64(page-1) * int64(pageSize)}},
		{{Key: "$limit", Value: int64(pageSize)}},
	}
}

// ListTags returns one page of tags sorted by usage count descending, plus
// the total tag count (unfiltered; there is no text filter on this listing).
// Tie ordering between equal counts is unspecified.
func (db *DB) ListTags(ctx context.Context, page, pageSize int) ([]models.TagPopularity, int64, error) {
	start := time.Now()
	var err error
	defer func() { observe("aggregate", CollTags, start, err) }()

	cursor, err := db.tags().Aggregate(ctx, tagPopularityPipeline(page, pageSize))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to aggregate tags: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.TagPopularity, 0, pageSize)
	if err = cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("failed to decode tags: %w", err)
	}

	total, err := db.tags().CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count tags: %w", err)
	}

	return items, total, nil
}
