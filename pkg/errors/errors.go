// Package errors provides structured error types for cellkit.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the layout engine, document loader and CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The layout engine raises three local, non-recoverable conditions:
//   - WRAP_OVERFLOW: a logical line needs more hard-wrap chunks than the iteration bound
//   - INVALID_GEOMETRY: negative extents or spacing, non-positive flex factors
//   - ALIGNMENT_RANGE: an alignment component outside [-1, 1]
//
// The remaining codes belong to the outer surfaces (documents, CLI, rendering).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidGeometry, "spacing must be >= 0, got %d", spacing)
//	if errors.Is(err, errors.ErrCodeInvalidGeometry) {
//	    // Handle precondition violation
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidDocument, origErr, "decode %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Layout engine errors
	ErrCodeWrapOverflow    Code = "WRAP_OVERFLOW"
	ErrCodeInvalidGeometry Code = "INVALID_GEOMETRY"
	ErrCodeAlignmentRange  Code = "ALIGNMENT_RANGE"

	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// WrapOverflowError provides additional information for wrap overflows.
// It is returned (wrapped in an *Error) when a single logical line would
// need more chunks than the shaper's iteration bound.
type WrapOverflowError struct {
	Width int // Target width in cells
	Limit int // Iteration bound that was exceeded
}

// Error implements the error interface.
func (e *WrapOverflowError) Error() string {
	return fmt.Sprintf("line needs more than %d chunks at width %d; disable soft wrap", e.Limit, e.Width)
}

// Code returns the error code for this error type.
func (e *WrapOverflowError) Code() Code {
	return ErrCodeWrapOverflow
}
