// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/goodbooks/config.yaml",
	"/etc/goodbooks/config.yml",
}

// ConfigPathEnvVar overrides the config file search path.
const ConfigPathEnvVar = "CONFIG_PATH"

// envKeyMap maps recognized environment variables to koanf config paths.
// Variables not listed here are ignored, so unrelated environment noise
// cannot leak into the configuration.
var envKeyMap = map[string]string{
	"MONGO_URI":               "mongo.uri",
	"DB_NAME":                 "mongo.database",
	"MONGO_CONNECT_TIMEOUT":   "mongo.connect_timeout",
	"SERVER_HOST":             "server.host",
	"SERVER_PORT":             "server.port",
	"SERVER_READ_TIMEOUT":     "server.read_timeout",
	"SERVER_WRITE_TIMEOUT":    "server.write_timeout",
	"SERVER_IDLE_TIMEOUT":     "server.idle_timeout",
	"API_DEFAULT_PAGE_SIZE":   "api.default_page_size",
	"API_MAX_PAGE_SIZE":       "api.max_page_size",
	"API_KEY":                 "security.api_key",
	"RATE_LIMIT_REQUESTS":     "rate_limit.requests",
	"RATE_LIMIT_WINDOW":       "rate_limit.window",
	"RATE_LIMIT_DISABLED":     "rate_limit.disabled",
	"LOG_LEVEL":               "logging.level",
	"LOG_FORMAT":              "logging.format",
}

// defaultConfig returns a Config with all default values. These match the
// defaults documented on each sub-config for local development.
func defaultConfig() *Config {
	return &Config{
		Mongo: MongoConfig{
			URI:            "mongodb://localhost:27017",
			Database:       "goodbooks",
			ConnectTimeout: 10 * time.Second,
		},
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		API: APIConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
		},
		Security: SecurityConfig{
			APIKey: "dev-key",
		},
		RateLimit: RateLimitConfig{
			Requests: 100,
			Window:   time.Minute,
			Disabled: false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: struct defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: optional config file
	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	envProvider := env.Provider("", ".", func(s string) string {
		return envKeyMap[s]
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file, honoring CONFIG_PATH first.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
