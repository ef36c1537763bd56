// Copyright (c) 2026 GlassStream. All rights reserved.
// Author: prashant.sde2204@gmail.com

/*
Package apperr defines the centralized error handling framework for the
GlassStream client.

It provides a rich error type that bridges the gap between low-level transport
errors and the user-visible notices rendered by the view layer.

Architecture:

  - AppError: A struct carrying a machine-readable Code, an error Kind, and a
    user-friendly message.
  - Taxonomy: Every remote failure is classified as Transport (unreachable),
    Remote (non-success status), Decode (malformed body), Validation
    (rejected before any network call), or NotFound.
  - Telemetry: Read paths render any failure as an empty result, but the Kind
    keeps "unavailable" distinguishable from "empty" for instrumentation.

Every error that leaves a client component should be wrapped as an [AppError]
to ensure consistent handling in the view layer.
*/
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an [AppError] for telemetry and rendering decisions.
type Kind int

const (
	// KindUnknown is an unclassified failure.
	KindUnknown Kind = iota
	// KindTransport means the remote service could not be reached at all.
	KindTransport
	// KindRemote means the remote service answered with a non-success status.
	KindRemote
	// KindDecode means the response body could not be parsed. Treated
	// identically to KindRemote by the view layer.
	KindDecode
	// KindValidation means the input was rejected before any network call.
	KindValidation
	// KindNotFound means the remote service reported the resource missing.
	KindNotFound
)

// String returns the snake_case label used in log attributes.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindRemote:
		return "remote"
	case KindDecode:
		return "decode"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// AppError is the canonical error type for the GlassStream client.
//
// It carries a machine-readable code, a classification Kind, a user-safe
// message, and an optional slice of field-level validation errors.
//
// The Cause field is for logging only and is never surfaced to the user.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "UNREACHABLE").
	Code string
	// Kind classifies the failure for telemetry.
	Kind Kind
	// Message is a human-readable description safe to show to the user.
	Message string
	// StatusCode is the remote HTTP status for KindRemote errors, zero otherwise.
	StatusCode int
	// Cause is the underlying error, used for logging only.
	Cause error
	// Details holds per-field validation errors for VALIDATION_ERROR results.
	Details []FieldError
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the input field name that failed validation.
	Field string
	// Message is the human-readable description of the failure.
	Message string
}

// Error implements the error interface. It returns the user-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Constructors

// Unreachable creates a Transport [AppError] for a service that could not be
// contacted. The service name appears in the user-visible notice.
func Unreachable(service string, cause error) *AppError {
	return &AppError{
		Code:    "UNREACHABLE",
		Kind:    KindTransport,
		Message: "Cannot connect to the " + service + " service",
		Cause:   cause,
	}
}

// RemoteStatus creates a Remote [AppError] for a non-success HTTP response.
func RemoteStatus(operation string, statusCode int) *AppError {
	return &AppError{
		Code:       "REMOTE_STATUS",
		Kind:       KindRemote,
		Message:    fmt.Sprintf("%s failed with status %d", operation, statusCode),
		StatusCode: statusCode,
	}
}

// MalformedBody creates a Decode [AppError] for a response body that could
// not be parsed. Treated identically to RemoteStatus by callers.
func MalformedBody(operation string, cause error) *AppError {
	return &AppError{
		Code:    "MALFORMED_BODY",
		Kind:    KindDecode,
		Message: operation + " returned a malformed response",
		Cause:   cause,
	}
}

// ValidationError creates a Validation [AppError] with optional per-field
// details. No network call may be attempted after one is produced.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Kind:    KindValidation,
		Message: msg,
		Details: details,
	}
}

// NotFound creates a not-found [AppError] for a named resource.
func NotFound(resource string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Kind:    KindNotFound,
		Message: resource + " not found",
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

// KindOf reports the [Kind] of err, or [KindUnknown] when err is not an
// [*AppError]. Used by telemetry to bucket failures without unwrapping.
func KindOf(err error) Kind {
	if ae := As(err); ae != nil {
		return ae.Kind
	}
	return KindUnknown
}
