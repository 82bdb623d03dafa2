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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Output handler errors
	ErrHandler ErrorCode = "HANDLER"
)

// ColordollError represents a structured error with code and details
type ColordollError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ColordollError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ColordollError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ColordollError) Is(target error) bool {
	var targetErr *ColordollError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ColordollError with the given code and message
func New(code ErrorCode, message string) *ColordollError {
	return &ColordollError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ColordollError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ColordollError {
	return &ColordollError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ColordollError
func Wrap(err error, code ErrorCode, message string) *ColordollError {
	if err == nil {
		return nil
	}
	return &ColordollError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ColordollError {
	if err == nil {
		return nil
	}
	return &ColordollError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ColordollError) WithDetail(key string, value interface{}) *ColordollError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cdErr *ColordollError
	if errors.As(err, &cdErr) {
		return cdErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ColordollError
func GetErrorCode(err error) ErrorCode {
	var cdErr *ColordollError
	if errors.As(err, &cdErr) {
		return cdErr.Code
	}
	return ErrUnknown
}
