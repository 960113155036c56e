// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("default mongo URI = %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "goodbooks" {
		t.Errorf("default database = %q", cfg.Mongo.Database)
	}
	if cfg.Security.APIKey != "dev-key" {
		t.Errorf("default API key = %q", cfg.Security.APIKey)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("default port = %d", cfg.Server.Port)
	}
	if cfg.API.DefaultPageSize != 20 || cfg.API.MaxPageSize != 100 {
		t.Errorf("default page sizes = %d/%d", cfg.API.DefaultPageSize, cfg.API.MaxPageSize)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("DB_NAME", "catalog")
	t.Setenv("API_KEY", "super-secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_WINDOW", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Mongo.URI != "mongodb://db.internal:27017" {
		t.Errorf("mongo URI = %q", cfg.Mongo.URI)
	}
	if cfg.Mongo.Database != "catalog" {
		t.Errorf("database = %q", cfg.Mongo.Database)
	}
	if cfg.Security.APIKey != "super-secret" {
		t.Errorf("API key = %q", cfg.Security.APIKey)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("port = %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
	if cfg.RateLimit.Window != 30*time.Second {
		t.Errorf("rate limit window = %s", cfg.RateLimit.Window)
	}
}

func TestLoadIgnoresUnknownEnvVars(t *testing.T) {
	t.Setenv("MONGO_PASSWORD_FILE", "/run/secrets/mongo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("unknown env var changed config: %q", cfg.Mongo.URI)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"empty URI", func(c *Config) { c.Mongo.URI = "" }, true},
		{"empty database", func(c *Config) { c.Mongo.Database = "" }, true},
		{"zero port", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero default page size", func(c *Config) { c.API.DefaultPageSize = 0 }, true},
		{"max below default", func(c *Config) { c.API.MaxPageSize = 5 }, true},
		{"zero rate limit", func(c *Config) { c.RateLimit.Requests = 0 }, true},
		{"negative window", func(c *Config) { c.RateLimit.Window = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestServerAddr(t *testing.T) {
	c := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := c.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q", got)
	}
}
