// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for mhinfo.

It provides a rich error type that separates low-level failures (I/O, JSON
decoding) from the conditions the browser core cares about.

Architecture:

  - AppError: A struct containing a machine-readable code and a readable message.
  - Cause: The underlying error, kept for diagnostics and [errors.Is] chains.
  - Classification: Callers branch on [HasCode] rather than on message text.

Every error that leaves a loader or store should be an [AppError] so that the
front-end can decide between "log and skip" and "surface to the user".
*/
package apperr

import (
	"errors"
	"fmt"
)

// # Error Codes

const (
	// CodeInvalidFormat marks a dataset or asset whose shape is not the expected one.
	CodeInvalidFormat = "INVALID_FORMAT"

	// CodeNotReady marks a lookup performed before its backing data finished loading.
	CodeNotReady = "NOT_READY"

	// CodeNotFound marks an unknown game, language or asset.
	CodeNotFound = "NOT_FOUND"

	// CodeFetchFailed marks an asset that could not be retrieved from its source.
	CodeFetchFailed = "FETCH_FAILED"

	// CodeInvalidCatalog marks a game/language catalog that cannot seed a selection.
	CodeInvalidCatalog = "INVALID_CATALOG"

	// CodeValidation marks field-level validation failures.
	CodeValidation = "VALIDATION_ERROR"

	// CodeInternal marks unexpected failures.
	CodeInternal = "INTERNAL_ERROR"
)

// AppError is the canonical error type for mhinfo.
//
// It carries a machine-readable code, a readable message, the underlying
// cause and an optional slice of field-level validation errors.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "INVALID_FORMAT").
	Code string `json:"code"`
	// Message is a human-readable description.
	Message string `json:"error"`
	// Cause is the underlying error, if any.
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR values.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the name of the field that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Data Errors

// InvalidFormat creates an INVALID_FORMAT [AppError].
//
// Example:
//
//	apperr.InvalidFormat("element 3 does not contain a 'names' property", nil)
func InvalidFormat(msg string, cause error) *AppError {
	return &AppError{
		Code:    CodeInvalidFormat,
		Message: msg,
		Cause:   cause,
	}
}

// NotReady creates a NOT_READY [AppError] for a resource that is still loading.
func NotReady(resource string) *AppError {
	return &AppError{
		Code:    CodeNotReady,
		Message: resource + " is not ready",
	}
}

// NotFound creates a NOT_FOUND [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Game") // Returns "Game not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " not found",
	}
}

// FetchFailed creates a FETCH_FAILED [AppError] wrapping a source failure.
func FetchFailed(name string, cause error) *AppError {
	return &AppError{
		Code:    CodeFetchFailed,
		Message: fmt.Sprintf("failed to fetch %q", name),
		Cause:   cause,
	}
}

// InvalidCatalog creates an INVALID_CATALOG [AppError].
func InvalidCatalog(msg string) *AppError {
	return &AppError{
		Code:    CodeInvalidCatalog,
		Message: msg,
	}
}

// ValidationError creates a VALIDATION_ERROR [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Details: details,
	}
}

// Internal creates an INTERNAL_ERROR [AppError] wrapping an unexpected error.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "an unexpected error occurred",
		Cause:   cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// HasCode reports whether err carries an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
