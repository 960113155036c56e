// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package ingest

// DefaultBaseURL is the raw-content root of the goodbooks-10k repository.
const DefaultBaseURL = "https://raw.githubusercontent.com/zygmuntz/goodbooks-10k/master/"

// Dataset describes one goodbooks-10k CSV file and how its rows are written.
// Datasets with a KeyField are upserted on that field so reruns converge;
// the rest are bulk-inserted.
type Dataset struct {
	// Name is both the CSV base name and the target collection name.
	Name string

	// KeyField is the unique document field used for upserts, or empty
	// for insert-only datasets.
	KeyField string
}

// Datasets lists the five goodbooks-10k files in load order. Books and tags
// load first so the join targets exist before the association rows.
var Datasets = []Dataset{
	{Name: "books", KeyField: "book_id"},
	{Name: "tags", KeyField: "tag_id"},
	{Name: "ratings"},
	{Name: "book_tags"},
	{Name: "to_read"},
}

// URL returns the dataset's download URL. When useSamples is set the
// samples/ path segment is applied to every dataset; a file the repository
// does not publish there fails its download and is absorbed by the
// per-dataset error isolation.
func (d Dataset) URL(baseURL string, useSamples bool) string {
	if useSamples {
		return baseURL + "samples/" + d.Name + ".csv"
	}
	return baseURL + d.Name + ".csv"
}

// intColumns lists every CSV column coerced to int64. Missing or
// malformed cells become 0 so that documents always carry the field with a
// numeric type.
var intColumns = map[string]bool{
	"book_id":                   true,
	"goodreads_book_id":         true,
	"best_book_id":              true,
	"work_id":                   true,
	"books_count":               true,
	"original_publication_year": true,
	"ratings_count":             true,
	"work_ratings_count":        true,
	"work_text_reviews_count":   true,
	"user_id":                   true,
	"tag_id":                    true,
	"count":                     true,
	"rating":                    true,
}

// floatColumns lists every CSV column coerced to float64.
var floatColumns = map[string]bool{
	"average_rating": true,
}
