// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package api

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/storefront/internal/validation"
)

// sanitizeLogValue escapes control characters so query strings cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	if strings.IndexFunc(s, isControl) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for _, r := range s {
		if isControl(r) {
			fmt.Fprintf(&b, `\x%02x`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isControl(r rune) bool { return r < 0x20 || r == 0x7F }

// validateRequest runs the struct tags of v and returns nil when they pass.
func validateRequest(v interface{}) *APIError {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return nil
	}
	e := verr.ToAPIError()
	return &APIError{Code: e.Code, Message: e.Message, Details: e.Details}
}

// parseIntParam reads the leading integer of value ("3.7" is 3, "12abc" is
// 12). Anything without leading digits yields def.
func parseIntParam(value string, def int) int {
	value = strings.TrimSpace(value)
	end := 0
	if end < len(value) && (value[end] == '-' || value[end] == '+') {
		end++
	}
	digits := end
	for end < len(value) && value[end] >= '0' && value[end] <= '9' {
		end++
	}
	if end == digits {
		return def
	}
	n, err := strconv.Atoi(value[:end])
	if err != nil {
		return def
	}
	return n
}

// parseFloatParam parses a finite float, falling back to def.
func parseFloatParam(value string, def float64) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}

// parseCommaSeparated splits a list parameter, trimming parts and dropping
// empty ones.
func parseCommaSeparated(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
