// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

// Package main is the entry point for the GoodBooks API server.
//
// GoodBooks serves a read-mostly REST API over the goodbooks-10k dataset
// stored in MongoDB: catalog search, per-book rating summaries, tag
// popularity, and per-user reading lists, plus a single authenticated
// write endpoint for submitting ratings.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Logging: Configure the global zerolog logger
//  3. Database: Connect to MongoDB and verify connectivity with a ping
//  4. HTTP Server: chi router with rate limiting and Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables (MONGO_URI, DB_NAME, API_KEY, SERVER_PORT, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Closes the MongoDB client
//
// # Example Usage
//
// Local development against a local MongoDB:
//
//	export MONGO_URI=mongodb://localhost:27017
//	export DB_NAME=goodbooks
//	export API_KEY=dev-key
//	./goodbooks-server
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ZeeshanTariq1/goodbooks-api/internal/api"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/config"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/database"
	"github.com/ZeeshanTariq1/goodbooks-api/internal/logging"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// shutdown signal.
const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	logging.Info().
		Str("version", api.Version).
		Str("database", cfg.Mongo.Database).
		Str("addr", cfg.Server.Addr()).
		Msg("Starting GoodBooks API")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.New(ctx, cfg.Mongo)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			logging.Error().Err(err).Msg("Error closing MongoDB client")
		}
	}()
	logging.Info().Msg("Connected to MongoDB")

	handler := api.NewHandler(db, cfg)
	router := api.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logging.Fatal().Err(err).Msg("HTTP server failed")
	case sig := <-quit:
		logging.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}

	logging.Info().Msg("GoodBooks API stopped")
}
