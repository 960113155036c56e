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

// toReadPipeline joins a user's to_read rows against the books collection.
// The $unwind stage drops entries whose book_id has no matching book
// document (inner-join semantics).
func toReadPipeline(userID int64, page, pageSize int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "user_id", Value: userID}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: CollBooks},
			{Key: "localField", Value: "book_id"},
			{Key: "foreignField", Value: "book_id"},
			{Key: "as", Value: "book_details"},
		}}},
		{{Key: "$unwind", Value: "$book_details"}},
		{{Key: "$project", Value: bson.D{
			{Key: "book_id", Value: 1},
			{Key: "title", Value: "$book_details.title"},
			{Key: "authors", Value: "$book_details.authors"},
			{Key: "average_rating", Value: "$book_details.average_rating"},
			{Key: "image_url", Value: "$book_details.image_url"},
		}}},
		{{Key: "$skip", Value: int64(page-1) * int64(pageSize)}},
		{{Key: "$limit", Value: int64(pageSize)}},
	}
}

// UserToRead returns one page of a user's reading list joined with book
// details, plus the raw to_read row count for the user.
//
// Total deliberately counts membership rows regardless of join success, so
// it can exceed the number of items visible across all pages when books are
// missing. Consumers should not assume the two agree.
func (db *DB) UserToRead(ctx context.Context, userID int64, page, pageSize int) ([]models.ToReadItem, int64, error) {
	start := time.Now()
	var err error
	defer func() { observe("aggregate", CollToRead, start, err) }()

	cursor, err := db.toRead().Aggregate(ctx, toReadPipeline(userID, page, pageSize))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to aggregate to-read list: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.ToReadItem, 0, pageSize)
	if err = cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("failed to decode to-read list: %w", err)
	}

	total, err := db.toRead().CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count to-read rows: %w", err)
	}

	return items, total, nil
}
