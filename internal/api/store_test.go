// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package api

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/database"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/models"
)

// errBoom stands in for any unexpected store failure.
var errBoom = errors.New("boom")

// ratingKey identifies one (user, book) rating.
type ratingKey struct {
	userID int64
	bookID int64
}

// fakeStore is an in-memory Store implementation that mirrors the query
// semantics of the MongoDB layer closely enough for handler tests:
// case-insensitive substring filters, closed year ranges, sorted
// pagination, upsert-by-key, and inner-join reading lists.
type fakeStore struct {
	books    []models.Book
	ratings  map[ratingKey]int
	tags     []models.Tag
	bookTags []models.BookTag
	toRead   []models.ToRead

	pingErr  error
	storeErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{ratings: make(map[ratingKey]int)}
}

func (s *fakeStore) Ping(ctx context.Context) error { return s.pingErr }

func paginate[T any](items []T, page, pageSize int) []T {
	offset := (page - 1) * pageSize
	if offset >= len(items) {
		return []T{}
	}
	end := offset + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

func (s *fakeStore) ListBooks(ctx context.Context, f database.BookFilter, sortKey, order string, page, pageSize int) ([]models.Book, int64, error) {
	if s.storeErr != nil {
		return nil, 0, s.storeErr
	}

	var matched []models.Book
	for _, b := range s.books {
		if f.Query != "" {
			q := strings.ToLower(f.Query)
			if !strings.Contains(strings.ToLower(b.Title), q) &&
				!strings.Contains(strings.ToLower(b.Authors), q) {
				continue
			}
		}
		if f.MinAvg != nil && b.AverageRating < *f.MinAvg {
			continue
		}
		if f.YearFrom != nil && b.OriginalPublicationYear < *f.YearFrom {
			continue
		}
		if f.YearTo != nil && b.OriginalPublicationYear > *f.YearTo {
			continue
		}
		matched = append(matched, b)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		var less bool
		switch sortKey {
		case "ratings_count":
			less = matched[i].RatingsCount < matched[j].RatingsCount
		case "year":
			less = matched[i].OriginalPublicationYear < matched[j].OriginalPublicationYear
		case "title":
			less = matched[i].Title < matched[j].Title
		default: // avg
			less = matched[i].AverageRating < matched[j].AverageRating
		}
		if order == "desc" {
			return !less
		}
		return less
	})

	return paginate(matched, page, pageSize), int64(len(matched)), nil
}

func (s *fakeStore) GetBook(ctx context.Context, bookID int64) (*models.Book, error) {
	if s.storeErr != nil {
		return nil, s.storeErr
	}
	for _, b := range s.books {
		if b.BookID == bookID {
			book := b
			return &book, nil
		}
	}
	return nil, database.ErrNotFound
}

func (s *fakeStore) UpsertRating(ctx context.Context, r models.Rating) (bool, error) {
	if s.storeErr != nil {
		return false, s.storeErr
	}
	key := ratingKey{userID: r.UserID, bookID: r.BookID}
	_, exists := s.ratings[key]
	s.ratings[key] = r.Rating
	return !exists, nil
}

func (s *fakeStore) RatingsSummary(ctx context.Context, bookID int64) (*models.RatingsSummary, error) {
	if s.storeErr != nil {
		return nil, s.storeErr
	}

	histogram := map[int]int64{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	var count int64
	var sum int
	for key, rating := range s.ratings {
		if key.bookID != bookID {
			continue
		}
		histogram[rating]++
		count++
		sum += rating
	}
	if count == 0 {
		return nil, database.ErrNotFound
	}

	avg := float64(sum) / float64(count)
	return &models.RatingsSummary{
		BookID:        bookID,
		AverageRating: math.Round(avg*100) / 100,
		RatingsCount:  count,
		Histogram:     histogram,
	}, nil
}

func (s *fakeStore) ListTags(ctx context.Context, page, pageSize int) ([]models.TagPopularity, int64, error) {
	if s.storeErr != nil {
		return nil, 0, s.storeErr
	}

	items := make([]models.TagPopularity, 0, len(s.tags))
	for _, tag := range s.tags {
		var count int64
		for _, bt := range s.bookTags {
			if bt.TagID == tag.TagID {
				count++
			}
		}
		items = append(items, models.TagPopularity{
			TagID:     tag.TagID,
			TagName:   tag.TagName,
			BookCount: count,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].BookCount > items[j].BookCount
	})

	return paginate(items, page, pageSize), int64(len(s.tags)), nil
}

func (s *fakeStore) UserToRead(ctx context.Context, userID int64, page, pageSize int) ([]models.ToReadItem, int64, error) {
	if s.storeErr != nil {
		return nil, 0, s.storeErr
	}

	var total int64
	var items []models.ToReadItem
	for _, tr := range s.toRead {
		if tr.UserID != userID {
			continue
		}
		total++
		// Inner join: entries without a matching book are dropped.
		book, err := s.GetBook(ctx, tr.BookID)
		if errors.Is(err, database.ErrNotFound) {
			continue
		}
		items = append(items, models.ToReadItem{
			BookID:        book.BookID,
			Title:         book.Title,
			Authors:       book.Authors,
			AverageRating: book.AverageRating,
			ImageURL:      book.ImageURL,
		})
	}

	return paginate(items, page, pageSize), total, nil
}
