// Storefront - Catalog Browsing and Co-Purchase Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/storefront

// Package validation wraps go-playground/validator with a shared instance,
// a custom "sortkey" rule and error messages keyed by JSON field name.
//
//	type productsRequest struct {
//	    SortBy string `json:"sortBy" validate:"sortkey"`
//	}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    ...
//	}
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/storefront/internal/models"
)

// CodeValidationFailed is the API error code for rejected input.
const CodeValidationFailed = "VALIDATION_FAILED"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError describes one failed rule.
type FieldError struct {
	Field   string      `json:"field"`
	Tag     string      `json:"tag"`
	Param   string      `json:"param,omitempty"`
	Value   interface{} `json:"value,omitempty"`
	Message string      `json:"message"`
}

// RequestValidationError collects every failed rule for a struct.
type RequestValidationError struct {
	Fields []FieldError
}

func (e *RequestValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return strings.Join(msgs, "; ")
}

// APIError is the envelope-ready form of a validation failure.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError converts e for the HTTP error envelope. The message of the first
// failure becomes the top-level message.
func (e *RequestValidationError) ToAPIError() *APIError {
	apiErr := &APIError{Code: CodeValidationFailed, Message: "Validation failed"}
	if len(e.Fields) == 0 {
		return apiErr
	}
	apiErr.Message = e.Fields[0].Message
	apiErr.Details = map[string]interface{}{"fields": e.Fields}
	return apiErr
}

// GetValidator returns the shared validator instance.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		// Registration only fails for empty tags or nil funcs.
		_ = validate.RegisterValidation("sortkey", func(fl validator.FieldLevel) bool {
			return models.SortKey(fl.Field().String()).Valid()
		})
	})
	return validate
}

// ValidateStruct validates s and returns nil or a *RequestValidationError.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &RequestValidationError{Fields: []FieldError{{
			Field: "unknown", Tag: "unknown", Message: err.Error(),
		}}}
	}

	fields := make([]FieldError, len(verrs))
	for i, fe := range verrs {
		fields[i] = FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Value:   fe.Value(),
			Message: translate(fe),
		}
	}
	return &RequestValidationError{Fields: fields}
}

// ValidateSlice validates every element and reports the index of the first
// failure, e.g. for imported catalog records.
func ValidateSlice[T any](items []T) error {
	for i := range items {
		if verr := ValidateStruct(&items[i]); verr != nil {
			return fmt.Errorf("item %d: %w", i, verr)
		}
	}
	return nil
}

var messages = map[string]string{
	"required": "%s is required",
	"sortkey":  "Invalid sort option",
}

var messagesWithParam = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"min":   "%s must be at least %s",
	"max":   "%s must be at most %s",
}

func translate(fe validator.FieldError) string {
	if tmpl, ok := messages[fe.Tag()]; ok {
		if strings.Contains(tmpl, "%s") {
			return fmt.Sprintf(tmpl, fe.Field())
		}
		return tmpl
	}
	if tmpl, ok := messagesWithParam[fe.Tag()]; ok {
		return fmt.Sprintf(tmpl, fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s failed %s validation", fe.Field(), fe.Tag())
}
