// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// parseCSV decodes a headered CSV stream into documents ready for Mongo.
// Each row becomes one document keyed by the header names, with typed cells
// per coerceCell. Short rows are rejected by the csv reader; a file with
// only a header yields zero documents and no error.
func parseCSV(r io.Reader) ([]bson.M, error) {
	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV stream")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	columns := make([]string, len(header))
	copy(columns, header)

	var docs []bson.M
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", len(docs)+2, err)
		}

		doc := make(bson.M, len(columns))
		for i, column := range columns {
			doc[column] = coerceCell(column, record[i])
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

// coerceCell converts a raw CSV cell into its document representation.
// Numeric columns that fail to parse (empty cells, "NaN", stray text)
// become zero rather than being dropped, so every document carries the full
// schema with consistent types.
func coerceCell(column, raw string) interface{} {
	value := strings.TrimSpace(raw)

	switch {
	case intColumns[column]:
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
		// Year columns arrive as floats ("1949.0") in the source data.
		if f, err := strconv.ParseFloat(value, 64); err == nil && !math.IsNaN(f) {
			return int64(f)
		}
		return int64(0)
	case floatColumns[column]:
		if f, err := strconv.ParseFloat(value, 64); err == nil && !math.IsNaN(f) {
			return f
		}
		return float64(0)
	default:
		return value
	}
}
