// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

// Package models defines the persisted document types and the HTTP
// request/response shapes shared between the API handlers and the store.
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Book is a document in the books collection. Field names mirror the
// goodbooks-10k CSV columns so the ingested documents round-trip unchanged.
// Books are immutable at runtime; only the data loader writes them.
type Book struct {
	ID                       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	BookID                   int64              `bson:"book_id" json:"book_id"`
	GoodreadsBookID          int64              `bson:"goodreads_book_id,omitempty" json:"goodreads_book_id,omitempty"`
	BestBookID               int64              `bson:"best_book_id,omitempty" json:"best_book_id,omitempty"`
	WorkID                   int64              `bson:"work_id,omitempty" json:"work_id,omitempty"`
	BooksCount               int64              `bson:"books_count,omitempty" json:"books_count,omitempty"`
	ISBN                     string             `bson:"isbn,omitempty" json:"isbn,omitempty"`
	ISBN13                   string             `bson:"isbn13,omitempty" json:"isbn13,omitempty"`
	Authors                  string             `bson:"authors" json:"authors"`
	OriginalPublicationYear  int64              `bson:"original_publication_year" json:"original_publication_year"`
	OriginalTitle            string             `bson:"original_title,omitempty" json:"original_title,omitempty"`
	Title                    string             `bson:"title" json:"title"`
	LanguageCode             string             `bson:"language_code,omitempty" json:"language_code,omitempty"`
	AverageRating            float64            `bson:"average_rating" json:"average_rating"`
	RatingsCount             int64              `bson:"ratings_count" json:"ratings_count"`
	WorkRatingsCount         int64              `bson:"work_ratings_count,omitempty" json:"work_ratings_count,omitempty"`
	WorkTextReviewsCount     int64              `bson:"work_text_reviews_count,omitempty" json:"work_text_reviews_count,omitempty"`
	ImageURL                 string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	SmallImageURL            string             `bson:"small_image_url,omitempty" json:"small_image_url,omitempty"`
}

// BookListResponse is the paginated payload for GET /api/v1/books.
type BookListResponse struct {
	Items    []Book `json:"items"`
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Total    int64  `json:"total"`
}
