// Package errors provides structured error types for the boxforge application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and the preview server
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: configuration failures, raised before any geometry is built
//   - GEOMETRY_*: infeasible geometry discovered during panel generation
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidTab, "tab width (%g) exceeds half the shortest edge", tab)
//	if errors.Is(err, errors.ErrCodeInvalidTab) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidPath, origErr, "cannot write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration errors, raised by spec validation before any panel exists
	ErrCodeInvalidDimension Code = "INVALID_DIMENSION"
	ErrCodeInvalidMaterial  Code = "INVALID_MATERIAL"
	ErrCodeInvalidTab       Code = "INVALID_TAB"
	ErrCodeInvalidDivider   Code = "INVALID_DIVIDER"
	ErrCodeInvalidSpec      Code = "INVALID_SPEC"

	// Geometry errors, raised when a valid-looking spec yields an unbuildable part
	ErrCodeGeometryEdge    Code = "GEOMETRY_EDGE"
	ErrCodeGeometryDivider Code = "GEOMETRY_DIVIDER"

	// I/O boundary errors
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidPreset Code = "INVALID_PRESET"

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

// IsConfiguration reports whether err is a configuration error, i.e. the
// supplied parameters were outside their valid domain.
func IsConfiguration(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidDimension, ErrCodeInvalidMaterial, ErrCodeInvalidTab,
		ErrCodeInvalidDivider, ErrCodeInvalidSpec:
		return true
	}
	return false
}

// IsGeometry reports whether err is a geometry error, i.e. a valid-looking
// configuration still produced an unbuildable panel or divider.
func IsGeometry(err error) bool {
	switch GetCode(err) {
	case ErrCodeGeometryEdge, ErrCodeGeometryDivider:
		return true
	}
	return false
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
