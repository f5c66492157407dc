// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/storefront/internal/logging"
)

// Not parallel: swaps the global logger.
func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.Logger()
	logging.SetLogger(logging.NewTestLogger(&buf).Level(zerolog.DebugLevel))
	prevLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		logging.SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})

	tests := []struct {
		name      string
		status    int
		delay     time.Duration
		threshold time.Duration
		level     string
	}{
		{"fast ok", http.StatusOK, 0, time.Hour, `"level":"debug"`},
		{"server error", http.StatusInternalServerError, 0, time.Hour, `"level":"error"`},
		{"slow", http.StatusOK, 5 * time.Millisecond, time.Millisecond, `"level":"warn"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			handler := RequestLogger(tt.threshold)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(tt.delay)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

			out := buf.String()
			if !strings.Contains(out, tt.level) {
				t.Errorf("log %q missing %s", out, tt.level)
			}
			if !strings.Contains(out, `"path":"/api/v1/products"`) || !strings.Contains(out, `"bytes":4`) {
				t.Errorf("log %q missing request fields", out)
			}
		})
	}
}
