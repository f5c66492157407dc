// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	line := strings.TrimSpace(buf.String())
	if i := strings.LastIndexByte(line, '\n'); i >= 0 {
		line = line[i+1:]
	}
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(line), &out); err != nil {
		t.Fatalf("decode %q: %v", line, err)
	}
	return out
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Level != "info" || cfg.Format != "json" || !cfg.Timestamp || cfg.Caller {
		t.Errorf("DefaultConfig() = %+v", cfg)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	for _, lvl := range []string{"debug", "info", "warning", "error"} {
		if !ValidLevel(lvl) {
			t.Errorf("ValidLevel(%q) = false", lvl)
		}
	}
	for _, lvl := range []string{"", "loud"} {
		if ValidLevel(lvl) {
			t.Errorf("ValidLevel(%q) = true", lvl)
		}
	}
}

// Tests below touch the global logger and run serially.

func TestInitWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Timestamp: true, Output: &buf})
	defer Init(DefaultConfig())

	Info().Str("backend", "file").Msg("store opened")

	entry := decodeLine(t, &buf)
	if entry["message"] != "store opened" || entry["level"] != "info" || entry["backend"] != "file" {
		t.Errorf("entry = %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("expected time field")
	}
}

func TestCtxAddsRequestAndCorrelationIDs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithNewCorrelationID(ctx)

	Ctx(ctx).Info().Msg("hello")

	entry := decodeLine(t, &buf)
	if entry["request_id"] != "req-1" {
		t.Errorf("request_id = %v", entry["request_id"])
	}
	if id, _ := entry["correlation_id"].(string); len(id) != 8 {
		t.Errorf("correlation_id = %v, want 8 chars", entry["correlation_id"])
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	defer Init(DefaultConfig())

	l := WithComponent("store")
	l.Info().Msg("x")

	if entry := decodeLine(t, &buf); entry["component"] != "store" {
		t.Errorf("component = %v", entry["component"])
	}
}

func TestSlogHandler(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(NewSlogHandler(NewTestLogger(&buf)))

	logger.With("service", "http").WithGroup("evt").Warn("service restarted",
		"attempt", 3, "err", errors.New("boom"))

	entry := decodeLine(t, &buf)
	if entry["level"] != "warn" {
		t.Errorf("level = %v", entry["level"])
	}
	if entry["service"] != "http" {
		t.Errorf("service = %v", entry["service"])
	}
	if entry["evt.attempt"] != float64(3) {
		t.Errorf("evt.attempt = %v", entry["evt.attempt"])
	}
	if entry["evt.err"] != "boom" {
		t.Errorf("evt.err = %v", entry["evt.err"])
	}
}

func TestSlogHandlerEnabled(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled for a warn-level logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled for a warn-level logger")
	}
}

func TestWatermillLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	wl := NewWatermillLogger(NewTestLogger(&buf)).With(watermill.LogFields{"topic": "catalog.updated"})

	wl.Error("handler failed", errors.New("nope"), watermill.LogFields{"uuid": "m1"})

	entry := decodeLine(t, &buf)
	if entry["level"] != "error" || entry["error"] != "nope" {
		t.Errorf("entry = %v", entry)
	}
	if entry["topic"] != "catalog.updated" || entry["uuid"] != "m1" {
		t.Errorf("fields missing: %v", entry)
	}
}
