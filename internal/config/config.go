// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

// Package config provides centralized application configuration.
//
// Configuration is loaded in three layers (koanf v2), later layers winning:
//
//  1. Built-in defaults
//  2. Optional YAML config file (config.yaml, or CONFIG_PATH)
//  3. Environment variables
//
// Config is immutable after Load() and safe for concurrent reads.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Mongo     MongoConfig     `koanf:"mongo"`
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Security  SecurityConfig  `koanf:"security"`
	RateLimit RateLimitConfig `koanf:"rate_limit"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// MongoConfig holds MongoDB connection settings.
//
// Environment Variables:
//   - MONGO_URI: connection URI (default: mongodb://localhost:27017)
//   - DB_NAME: database name (default: goodbooks)
//   - MONGO_CONNECT_TIMEOUT: dial/ping timeout (default: 10s)
type MongoConfig struct {
	URI            string        `koanf:"uri"`
	Database       string        `koanf:"database"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

// ServerConfig holds HTTP server settings.
//
// Environment Variables:
//   - SERVER_HOST (default: 0.0.0.0)
//   - SERVER_PORT (default: 8080)
//   - SERVER_READ_TIMEOUT / SERVER_WRITE_TIMEOUT / SERVER_IDLE_TIMEOUT
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// Addr returns the host:port listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// APIConfig holds pagination limits for list endpoints.
//
// Environment Variables:
//   - API_DEFAULT_PAGE_SIZE (default: 20)
//   - API_MAX_PAGE_SIZE (default: 100)
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// SecurityConfig holds the shared API key protecting mutating endpoints.
//
// Environment Variables:
//   - API_KEY: shared secret for POST /api/v1/ratings (default: dev-key)
//
// The default exists for local development only; production deployments must
// override it.
type SecurityConfig struct {
	APIKey string `koanf:"api_key"`
}

// RateLimitConfig holds per-IP request rate limiting settings.
//
// Environment Variables:
//   - RATE_LIMIT_REQUESTS (default: 100)
//   - RATE_LIMIT_WINDOW (default: 1m)
//   - RATE_LIMIT_DISABLED (default: false)
type RateLimitConfig struct {
	Requests int           `koanf:"requests"`
	Window   time.Duration `koanf:"window"`
	Disabled bool          `koanf:"disabled"`
}

// LoggingConfig holds log output settings.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Validate checks the configuration for malformed values.
func (c *Config) Validate() error {
	if c.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri must not be empty")
	}
	if c.Mongo.Database == "" {
		return fmt.Errorf("mongo.database must not be empty")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in range 1-65535, got %d", c.Server.Port)
	}
	if c.API.DefaultPageSize < 1 {
		return fmt.Errorf("api.default_page_size must be >= 1, got %d", c.API.DefaultPageSize)
	}
	if c.API.MaxPageSize < c.API.DefaultPageSize {
		return fmt.Errorf("api.max_page_size (%d) must be >= api.default_page_size (%d)",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.RateLimit.Requests < 1 {
		return fmt.Errorf("rate_limit.requests must be >= 1, got %d", c.RateLimit.Requests)
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive, got %s", c.RateLimit.Window)
	}
	return nil
}
