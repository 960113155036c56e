// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Rating is a document in the ratings collection. The (user_id, book_id)
// pair is unique; repeat submissions overwrite the stored value.
type Rating struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID int64              `bson:"user_id" json:"user_id"`
	BookID int64              `bson:"book_id" json:"book_id"`
	Rating int                `bson:"rating" json:"rating"`
}

// RatingsSummary is the aggregate payload for
// GET /api/v1/books/{book_id}/ratings/summary. Histogram keys are the
// integer scores 1-5; counts always sum to RatingsCount.
type RatingsSummary struct {
	BookID        int64         `json:"book_id"`
	AverageRating float64       `json:"average_rating"`
	RatingsCount  int64         `json:"ratings_count"`
	Histogram     map[int]int64 `json:"histogram"`
}

// UpsertResult reports whether an upsert created a new rating document or
// updated an existing one.
type UpsertResult struct {
	Created bool   `json:"created"`
	Message string `json:"message"`
}
