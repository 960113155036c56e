// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ToRead is a document in the to_read collection: membership of a book in a
// user's reading list. The (user_id, book_id) pair is unique.
type ToRead struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID int64              `bson:"user_id" json:"user_id"`
	BookID int64              `bson:"book_id" json:"book_id"`
}

// ToReadItem is a reading-list entry joined with its book details.
type ToReadItem struct {
	BookID        int64   `bson:"book_id" json:"book_id"`
	Title         string  `bson:"title" json:"title"`
	Authors       string  `bson:"authors" json:"authors"`
	AverageRating float64 `bson:"average_rating" json:"average_rating"`
	ImageURL      string  `bson:"image_url" json:"image_url"`
}

// ToReadListResponse is the paginated payload for
// GET /api/v1/users/{user_id}/to-read.
//
// Total counts raw to_read membership rows for the user. Entries whose book
// is missing from the books collection are dropped by the inner join, so the
// number of items returned across all pages can be lower than Total. This
// mirrors the historical behavior and is intentional.
type ToReadListResponse struct {
	UserID   int64        `json:"user_id"`
	Items    []ToReadItem `json:"items"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Total    int64        `json:"total"`
}
