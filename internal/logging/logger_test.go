// GoodBooks API - MongoDB-backed REST API for the goodbooks-10k dataset
// Copyright 2026 Zeeshan Tariq (ZeeshanTariq1)
// SPDX-License-Identifier: MIT
// https://github.com/ZeeshanTariq1/goodbooks-api

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"disabled", zerolog.Disabled},
		{"INFO", zerolog.InfoLevel},
		{"garbage", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInitJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Info().Str("component", "test").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"component":"test"`) {
		t.Errorf("expected structured field in output, got %q", out)
	}
	if !strings.Contains(out, `"message":"hello"`) {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, `"level":"info"`) {
		t.Errorf("expected level in output, got %q", out)
	}
}

func TestInitLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Debug().Msg("should not appear")
	Info().Msg("should not appear either")
	Warn().Msg("should appear")

	out := buf.String()
	if strings.Contains(out, "not appear") {
		t.Errorf("level filtering failed, got %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("warn event missing, got %q", out)
	}
}

func TestInitDefaults(t *testing.T) {
	var buf bytes.Buffer
	// Empty level and format fall back to info/json.
	Init(Config{Output: &buf})
	defer Init(DefaultConfig())

	Info().Msg("defaults")
	if !strings.Contains(buf.String(), `"defaults"`) {
		t.Errorf("expected output with defaults, got %q", buf.String())
	}
}
