// Package errors provides structured error types for artsign.
//
// Every failure the CLI reports carries a machine-readable [Code] so callers
// can branch on the category without string matching:
//   - INVALID_*: input validation failures
//   - MISSING_SELECTION / UNMEASURABLE_BOUNDS: the host could not produce a
//     bounding box for the requested element
//   - HOST_UNAVAILABLE: an external tool (inkscape, rsvg-convert) is missing
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMissingSelection, "no element with id %q", id)
//	if errors.Is(err, errors.ErrCodeMissingSelection) {
//	    // ask the user to select something
//	}
//
//	err := errors.Wrap(errors.ErrCodeInvalidDocument, origErr, "parse %s", path)
//
// The signature placement core never returns errors; these codes describe
// preconditions checked before it runs.
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidPath     Code = "INVALID_PATH"
	ErrCodeInvalidDocument Code = "INVALID_DOCUMENT"
	ErrCodeInvalidColor    Code = "INVALID_COLOR"
	ErrCodeInvalidConfig   Code = "INVALID_CONFIG"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Host precondition errors
	ErrCodeMissingSelection   Code = "MISSING_SELECTION"
	ErrCodeUnmeasurableBounds Code = "UNMEASURABLE_BOUNDS"
	ErrCodeHostUnavailable    Code = "HOST_UNAVAILABLE"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
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

// MissingSelection reports that no element matched the requested selection.
func MissingSelection(id string) *Error {
	if id == "" {
		return New(ErrCodeMissingSelection, "no object selected")
	}
	return New(ErrCodeMissingSelection, "no element with id %q", id)
}

// UnmeasurableBounds reports that an element exists but has no bounding box
// the host can compute.
func UnmeasurableBounds(what string, cause error) *Error {
	if cause != nil {
		return Wrap(ErrCodeUnmeasurableBounds, cause, "cannot measure bounds of %s", what)
	}
	return New(ErrCodeUnmeasurableBounds, "cannot measure bounds of %s", what)
}
