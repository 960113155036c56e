// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/models"
)

// UpsertRating writes or overwrites the rating for a (user, book) pair.
// The unique index on (user_id, book_id) plus the driver's atomic upsert
// guarantee at most one document per pair even under concurrent submissions.
// Returns true when a new document was inserted.
func (db *DB) UpsertRating(ctx context.Context, r models.Rating) (bool, error) {
	start := time.Now()
	var err error
	defer func() { observe("upsert", CollRatings, start, err) }()

	filter := bson.M{"user_id": r.UserID, "book_id": r.BookID}
	update := bson.M{"$set": bson.M{
		"user_id": r.UserID,
		"book_id": r.BookID,
		"rating":  r.Rating,
	}}

	res, err := db.ratings().UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, fmt.Errorf("failed to upsert rating: %w", err)
	}

	return res.UpsertedCount > 0, nil
}

// ratingsSummaryPipeline groups all ratings for a book, averaging the score,
// counting documents, and collecting the raw scores for the histogram.
func ratingsSummaryPipeline(bookID int64) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "book_id", Value: bookID}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$book_id"},
			{Key: "average_rating", Value: bson.D{{Key: "$avg", Value: "$rating"}}},
			{Key: "ratings_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "scores", Value: bson.D{{Key: "$push", Value: "$rating"}}},
		}}},
	}
}

// summaryRow is the decoded shape of the ratings summary aggregation.
type summaryRow struct {
	AverageRating float64 `bson:"average_rating"`
	RatingsCount  int64   `bson:"ratings_count"`
	Scores        []int   `bson:"scores"`
}

// RatingsSummary computes the aggregate rating summary for a book: average
// (rounded to 2 decimals, half away from zero), count, and a 1-5 histogram.
// Returns ErrNotFound when the book has no ratings at all. The books
// collection is never consulted, so ratings for an unknown book still
// summarize.
func (db *DB) RatingsSummary(ctx context.Context, bookID int64) (*models.RatingsSummary, error) {
	start := time.Now()
	var err error
	defer func() { observe("aggregate", CollRatings, start, err) }()

	cursor, err := db.ratings().Aggregate(ctx, ratingsSummaryPipeline(bookID))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []summaryRow
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode ratings summary: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNotFound
	}

	row := rows[0]
	histogram := map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	for _, score := range row.Scores {
		if score >= 1 && score <= 5 {
			histogram[score]++
		}
	}

	return &models.RatingsSummary{
		BookID:        bookID,
		AverageRating: math.Round(row.AverageRating*100) / 100,
		RatingsCount:  row.RatingsCount,
		Histogram:     histogram,
	}, nil
}
