// Package errors provides structured error types for the wordladder application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures
//   - *NOT_FOUND: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// Graph-shape results (unreachable pairs, isolated words) are never errors;
// they are values returned by package ladder. This package only covers
// boundary validation and I/O failures.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidDepth, "depth must be >= 0, got %d", d)
//	if errors.Is(err, errors.ErrCodeInvalidDepth) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeFileNotFound, origErr, "open dictionary %s", path)
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code represents a machine-readable error code.
type Code string

const (
	ErrCodeInvalidInput      Code = "INVALID_INPUT"
	ErrCodeInvalidWord       Code = "INVALID_WORD"
	ErrCodeInvalidDepth      Code = "INVALID_DEPTH"
	ErrCodeInvalidDictionary Code = "INVALID_DICTIONARY"
	ErrCodeInvalidFormat     Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig     Code = "INVALID_CONFIG"
	ErrCodeInvalidPath       Code = "INVALID_PATH"

	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

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

// HTTPStatus maps err to a response status and the code reported to the
// client. Uncoded errors are internal. Dictionary, config and file errors
// come from the server's own setup, never from a request, so they are 500s.
func HTTPStatus(err error) (int, Code) {
	code := GetCode(err)
	switch code {
	case ErrCodeInvalidInput, ErrCodeInvalidWord, ErrCodeInvalidDepth,
		ErrCodeInvalidFormat, ErrCodeInvalidPath:
		return http.StatusBadRequest, code
	case ErrCodeNotFound:
		return http.StatusNotFound, code
	case ErrCodeUnsupported:
		return http.StatusNotImplemented, code
	case "":
		return http.StatusInternalServerError, ErrCodeInternal
	default:
		return http.StatusInternalServerError, code
	}
}
