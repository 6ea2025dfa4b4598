package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Rendering errors
	ErrRendererUnavailable ErrorCode = "RENDERER_UNAVAILABLE"

	// Document errors
	ErrDocumentParse ErrorCode = "DOCUMENT_PARSE"
)

// OwlError represents a structured error with code and details
type OwlError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *OwlError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *OwlError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an OwlError carrying the same code
func (e *OwlError) Is(target error) bool {
	var targetErr *OwlError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new OwlError with the given code and message
func New(code ErrorCode, message string) *OwlError {
	return &OwlError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new OwlError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *OwlError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with an OwlError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *OwlError {
	if err == nil {
		return nil
	}
	wrapped := New(code, message)
	wrapped.Wrapped = err
	return wrapped
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *OwlError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *OwlError) WithDetail(key string, value interface{}) *OwlError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *OwlError) WithDetails(details map[string]interface{}) *OwlError {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var owlErr *OwlError
	if errors.As(err, &owlErr) {
		return owlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an OwlError
func GetErrorCode(err error) ErrorCode {
	var owlErr *OwlError
	if errors.As(err, &owlErr) {
		return owlErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not an OwlError
func GetErrorDetails(err error) map[string]interface{} {
	var owlErr *OwlError
	if errors.As(err, &owlErr) {
		return owlErr.Details
	}
	return nil
}
