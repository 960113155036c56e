// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package database

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

// stage returns the value of the named stage in a pipeline, or nil.
func stage(t *testing.T, pipeline []bson.D, name string) interface{} {
	t.Helper()
	for _, s := range pipeline {
		if len(s) == 1 && s[0].Key == name {
			return s[0].Value
		}
	}
	return nil
}

func TestRatingsSummaryPipeline(t *testing.T) {
	p := ratingsSummaryPipeline(42)

	if len(p) != 2 {
		t.Fatalf("expected 2 stages, got %d", len(p))
	}

	match, ok := stage(t, p, "$match").(bson.D)
	if !ok || match[0].Key != "book_id" || match[0].Value != int64(42) {
		t.Errorf("$match = %v", match)
	}

	group, ok := stage(t, p, "$group").(bson.D)
	if !ok {
		t.Fatal("missing $group stage")
	}
	fields := map[string]bool{}
	for _, e := range group {
		fields[e.Key] = true
	}
	for _, want := range []string{"_id", "average_rating", "ratings_count", "scores"} {
		if !fields[want] {
			t.Errorf("$group missing field %q", want)
		}
	}
}

func TestTagPopularityPipeline(t *testing.T) {
	p := tagPopularityPipeline(3, 25)

	lookup, ok := stage(t, p, "$lookup").(bson.D)
	if !ok {
		t.Fatal("missing $lookup stage")
	}
	lm := lookup.Map()
	if lm["from"] != CollBookTags || lm["localField"] != "tag_id" || lm["foreignField"] != "tag_id" {
		t.Errorf("$lookup = %v", lm)
	}

	project, ok := stage(t, p, "$project").(bson.D)
	if !ok {
		t.Fatal("missing $project stage")
	}
	size, ok := project.Map()["book_count"].(bson.D)
	if !ok || size[0].Key != "$size" {
		t.Errorf("book_count projection = %v", project.Map()["book_count"])
	}

	sort, ok := stage(t, p, "$sort").(bson.D)
	if !ok || sort[0].Key != "book_count" || sort[0].Value != -1 {
		t.Errorf("$sort = %v", sort)
	}

	if got := stage(t, p, "$skip"); got != int64(50) {
		t.Errorf("$skip = %v, want 50", got)
	}
	if got := stage(t, p, "$limit"); got != int64(25) {
		t.Errorf("$limit = %v, want 25", got)
	}
}

func TestToReadPipeline(t *testing.T) {
	p := toReadPipeline(7, 2, 10)

	match, ok := stage(t, p, "$match").(bson.D)
	if !ok || match[0].Key != "user_id" || match[0].Value != int64(7) {
		t.Errorf("$match = %v", match)
	}

	lookup, ok := stage(t, p, "$lookup").(bson.D)
	if !ok {
		t.Fatal("missing $lookup stage")
	}
	lm := lookup.Map()
	if lm["from"] != CollBooks || lm["localField"] != "book_id" || lm["foreignField"] != "book_id" {
		t.Errorf("$lookup = %v", lm)
	}

	// $unwind drops to_read rows with no matching book (inner join).
	if got := stage(t, p, "$unwind"); got != "$book_details" {
		t.Errorf("$unwind = %v", got)
	}

	project, ok := stage(t, p, "$project").(bson.D)
	if !ok {
		t.Fatal("missing $project stage")
	}
	pm := project.Map()
	if pm["title"] != "$book_details.title" || pm["image_url"] != "$book_details.image_url" {
		t.Errorf("$project = %v", pm)
	}

	if got := stage(t, p, "$skip"); got != int64(10) {
		t.Errorf("$skip = %v, want 10", got)
	}
	if got := stage(t, p, "$limit"); got != int64(10) {
		t.Errorf("$limit = %v, want 10", got)
	}
}
