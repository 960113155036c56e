// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package database

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/models"
)

// BookFilter holds the optional filters for listing books. Nil pointer
// fields are omitted from the query.
type BookFilter struct {
	// Query matches title OR authors as a case-insensitive literal
	// substring. Not tokenized search.
	Query string

	// MinAvg keeps books with average_rating >= MinAvg.
	MinAvg *float64

	// YearFrom/YearTo bound original_publication_year (closed range,
	// either side may be nil).
	YearFrom *int64
	YearTo   *int64
}

// bookSortFields maps API sort keys to document fields. Keys outside this
// map are rejected at the API boundary before any query is built.
var bookSortFields = map[string]string{
	"avg":           "average_rating",
	"ratings_count": "ratings_count",
	"year":          "original_publication_year",
	"title":         "title",
}

// BookSortField resolves an API sort key to its document field. The second
// return is false for unknown keys.
func BookSortField(sort string) (string, bool) {
	field, ok := bookSortFields[sort]
	return field, ok
}

// buildBookFilter translates a BookFilter into a MongoDB filter document.
// The query string is quoted so regex metacharacters match literally.
func buildBookFilter(f BookFilter) bson.M {
	filter := bson.M{}

	if f.Query != "" {
		pattern := regexp.QuoteMeta(f.Query)
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": pattern, "$options": "i"}},
			bson.M{"authors": bson.M{"$regex": pattern, "$options": "i"}},
		}
	}

	if f.MinAvg != nil {
		filter["average_rating"] = bson.M{"$gte": *f.MinAvg}
	}

	yearFilter := bson.M{}
	if f.YearFrom != nil {
		yearFilter["$gte"] = *f.YearFrom
	}
	if f.YearTo != nil {
		yearFilter["$lte"] = *f.YearTo
	}
	if len(yearFilter) > 0 {
		filter["original_publication_year"] = yearFilter
	}

	return filter
}

// ListBooks returns one page of books matching the filter, plus the total
// count of matching documents regardless of the page window.
//
// sort must be a key of bookSortFields and order must be "asc" or "desc";
// both are validated upstream. Tie ordering within equal sort values is the
// store's natural order and is not guaranteed to be stable across calls.
func (db *DB) ListBooks(ctx context.Context, f BookFilter, sort, order string, page, pageSize int) ([]models.Book, int64, error) {
	start := time.Now()
	var err error
	defer func() { observe("find", CollBooks, start, err) }()

	field, ok := BookSortField(sort)
	if !ok {
		err = fmt.Errorf("unknown sort key %q", sort)
		return nil, 0, err
	}
	direction := -1
	if order == "asc" {
		direction = 1
	}

	filter := buildBookFilter(f)

	total, err := db.books().CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	skip := int64(page-1) * int64(pageSize)
	opts := options.Find().
		SetSort(bson.D{{Key: field, Value: direction}}).
		SetSkip(skip).
		SetLimit(int64(pageSize))

	cursor, err := db.books().Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query books: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.Book, 0, pageSize)
	if err = cursor.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("failed to decode books: %w", err)
	}

	return items, total, nil
}

// GetBook fetches a single book by its book_id. Returns ErrNotFound if no
// document matches.
func (db *DB) GetBook(ctx context.Context, bookID int64) (*models.Book, error) {
	start := time.Now()
	var err error
	defer func() { observe("find_one", CollBooks, start, err) }()

	var book models.Book
	err = db.books().FindOne(ctx, bson.M{"book_id": bookID}).Decode(&book)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			err = nil // not an operational failure
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch book %d: %w", bookID, err)
	}

	return &book, nil
}
