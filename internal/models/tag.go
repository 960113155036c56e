// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Tag is a document in the tags collection.
type Tag struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	TagID   int64              `bson:"tag_id" json:"tag_id"`
	TagName string             `bson:"tag_name" json:"tag_name"`
}

// BookTag is a document in the book_tags collection: a weighted
// many-to-many association between a Goodreads book and a tag. It is never
// exposed directly, only aggregated into tag popularity counts.
type BookTag struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	GoodreadsBookID int64              `bson:"goodreads_book_id" json:"goodreads_book_id"`
	TagID           int64              `bson:"tag_id" json:"tag_id"`
	Count           int64              `bson:"count" json:"count"`
}

// TagPopularity is a tag joined with its association count. BookCount is
// the number of book_tags rows referencing the tag, i.e. the size of the
// joined array, not a distinct-book count.
type TagPopularity struct {
	TagID     int64  `bson:"tag_id" json:"tag_id"`
	TagName   string `bson:"tag_name" json:"tag_name"`
	BookCount int64  `bson:"book_count" json:"book_count"`
}

// TagListResponse is the paginated payload for GET /api/v1/tags.
type TagListResponse struct {
	Items    []TagPopularity `json:"items"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Total    int64           `json:"total"`
}
