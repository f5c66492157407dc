// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/storefront/internal/logging"
)

// APIResponse is the envelope every endpoint answers with. Exactly one of
// Data and Error is set.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *APIMeta    `json:"meta,omitempty"`
}

// APIError carries a machine-readable Code next to the client message.
type APIError struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// APIMeta is attached to every response.
type APIMeta struct {
	RequestID  string    `json:"request_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMs int64     `json:"duration_ms,omitempty"`
}

const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeValidationFailed   = "VALIDATION_FAILED"
)

// ResponseWriter writes envelopes for one request. DurationMs in the meta
// block is measured from NewResponseWriter.
type ResponseWriter struct {
	w       http.ResponseWriter
	r       *http.Request
	started time.Time
}

func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{w: w, r: r, started: time.Now()}
}

// Success writes data with status 200.
func (rw *ResponseWriter) Success(data interface{}) {
	rw.write(http.StatusOK, APIResponse{Success: true, Data: data, Meta: rw.meta()})
}

// ErrorWithDetails writes an error envelope. details may be nil.
func (rw *ResponseWriter) ErrorWithDetails(status int, code, message string, details interface{}) {
	meta := rw.meta()
	rw.write(status, APIResponse{
		Error: &APIError{Code: code, Message: message, Details: details, RequestID: meta.RequestID},
		Meta:  meta,
	})
}

func (rw *ResponseWriter) BadRequest(message string) {
	rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeBadRequest, message, nil)
}

// ValidationError is a 400 whose details list the offending fields.
func (rw *ResponseWriter) ValidationError(message string, details interface{}) {
	rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, message, details)
}

func (rw *ResponseWriter) NotFound(message string) {
	rw.ErrorWithDetails(http.StatusNotFound, ErrCodeNotFound, message, nil)
}

func (rw *ResponseWriter) MethodNotAllowed(message string) {
	rw.ErrorWithDetails(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, message, nil)
}

func (rw *ResponseWriter) TooManyRequests(message string) {
	rw.ErrorWithDetails(http.StatusTooManyRequests, ErrCodeTooManyRequests, message, nil)
}

func (rw *ResponseWriter) InternalError(message string) {
	rw.ErrorWithDetails(http.StatusInternalServerError, ErrCodeInternalError, message, nil)
}

func (rw *ResponseWriter) ServiceUnavailable(message string) {
	rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message, nil)
}

func (rw *ResponseWriter) meta() *APIMeta {
	return &APIMeta{
		RequestID:  logging.RequestIDFromContext(rw.r.Context()),
		Timestamp:  time.Now().UTC(),
		DurationMs: time.Since(rw.started).Milliseconds(),
	}
}

func (rw *ResponseWriter) write(status int, body APIResponse) {
	rw.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.w.WriteHeader(status)

	// Headers are already sent, so an encode failure can only be logged.
	if err := json.NewEncoder(rw.w).Encode(body); err != nil {
		logging.Ctx(rw.r.Context()).Error().Err(err).Int("status", status).Msg("Failed to encode response")
	}
}
