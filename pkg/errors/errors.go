// Package errors provides structured error types for resizegrid.
//
// Every failure the library reports carries a machine-readable [Code] so that
// hosts can tell caller-contract violations (a mismatched child count, an
// invalid layout) apart from runtime invariant failures (an unparseable
// rendered dimension).
//
// # Error Codes
//
// Codes follow a hierarchical naming convention:
//   - INVALID_*: input or invariant validation failures
//   - NOT_FOUND: a referenced item or file does not exist
//   - INTERNAL_ERROR: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidLayout, "duplicate key %q", key)
//	if errors.Is(err, errors.ErrCodeInvalidLayout) {
//	    // caller bug
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "decode %s", path)
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
	ErrCodeInvalidInput       Code = "INVALID_INPUT"
	ErrCodeInvalidLayout      Code = "INVALID_LAYOUT"
	ErrCodeInvalidKey         Code = "INVALID_KEY"
	ErrCodeInvalidStyle       Code = "INVALID_STYLE"
	ErrCodeInvalidTemplate    Code = "INVALID_TEMPLATE"
	ErrCodeInvalidConfig      Code = "INVALID_CONFIG"
	ErrCodeInvalidPath        Code = "INVALID_PATH"
	ErrCodeChildCountMismatch Code = "CHILD_COUNT_MISMATCH"
	ErrCodeInvalidDimension   Code = "INVALID_DIMENSION"
	ErrCodeInvalidOperation   Code = "INVALID_OPERATION"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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
// Only the outermost *Error in the chain is consulted, so a wrapped error
// reports the code it was wrapped with.
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
