// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

// Package metrics provides Prometheus instrumentation for the API server and
// the data loader: request throughput and latency, MongoDB query performance,
// and ingestion progress.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// MongoDB query metrics
	MongoQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mongo_query_duration_seconds",
			Help:    "Duration of MongoDB operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "collection"},
	)

	MongoQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mongo_query_errors_total",
			Help: "Total number of MongoDB operation errors",
		},
		[]string{"operation", "collection"},
	)

	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Ingestion metrics
	IngestRecordsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_records_total",
			Help: "Total number of records loaded per dataset",
		},
		[]string{"dataset"},
	)

	IngestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ingest_errors_total",
			Help: "Total number of failed dataset ingestions",
		},
		[]string{"dataset"},
	)

	IngestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ingest_duration_seconds",
			Help:    "Duration of per-dataset ingestion in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		},
		[]string{"dataset"},
	)
)

// RecordMongoQuery records a MongoDB operation metric.
func RecordMongoQuery(operation, collection string, duration time.Duration, err error) {
	MongoQueryDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
	if err != nil {
		MongoQueryErrors.WithLabelValues(operation, collection).Inc()
	}
}

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks in-flight API requests.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordIngest records the outcome of one dataset ingestion.
func RecordIngest(dataset string, records int, duration time.Duration, err error) {
	IngestDuration.WithLabelValues(dataset).Observe(duration.Seconds())
	if err != nil {
		IngestErrors.WithLabelValues(dataset).Inc()
		return
	}
	IngestRecordsTotal.WithLabelValues(dataset).Add(float64(records))
}
