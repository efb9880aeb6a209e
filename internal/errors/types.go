package errors

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// ShelfError is a structured error type with context.
type ShelfError struct {
	Type    ErrorType
	Code    string
	Message string
	Cause   error
	Context map[string]interface{}
	// Source is the file or selector the error refers to, if any.
	Source string
}

// Error implements the error interface.
func (e *ShelfError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Source != "" {
		parts = append(parts, e.Source)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if details := e.details(); details != "" {
		result += " (" + details + ")"
	}

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// details renders string-valued context entries in key order.
func (e *ShelfError) details() string {
	if len(e.Context) == 0 {
		return ""
	}

	keys := make([]string, 0, len(e.Context))
	for k, v := range e.Context {
		if _, ok := v.(string); ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s %s", k, e.Context[k]))
	}

	return strings.Join(pairs, "; ")
}

// Unwrap returns the underlying cause error.
func (e *ShelfError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *ShelfError) Is(target error) bool {
	var t *ShelfError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *ShelfError) WithContext(key string, value interface{}) *ShelfError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithSource records the file or selector the error refers to.
func (e *ShelfError) WithSource(source string) *ShelfError {
	e.Source = source

	return e
}

// Error creation functions

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *ShelfError {
	return &ShelfError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *ShelfError {
	return &ShelfError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *ShelfError {
	return &ShelfError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *ShelfError {
	return &ShelfError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsConfig checks if an error is a configuration error.
func IsConfig(err error) bool {
	return hasType(err, ErrorTypeConfig)
}

// IsIO checks if an error is an I/O error.
func IsIO(err error) bool {
	return hasType(err, ErrorTypeIO)
}

func hasType(err error, t ErrorType) bool {
	var se *ShelfError
	if errors.As(err, &se) {
		return se.Type == t
	}

	return false
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// Report logs err with its type and code. Validation errors are logged as
// warnings, everything else as errors.
func Report(ctx context.Context, logger Logger, err error) {
	if err == nil || logger == nil {
		return
	}

	var se *ShelfError
	if !errors.As(err, &se) {
		logger.Error(ctx, err, "Unhandled error occurred")
		return
	}

	switch se.Type {
	case ErrorTypeValidation:
		logger.Warn(ctx, err, "Validation error occurred",
			"type", se.Type,
			"code", se.Code)
	default:
		logger.Error(ctx, err, "Error occurred",
			"type", se.Type,
			"code", se.Code,
			"source", se.Source)
	}
}

// Common error codes.
const (
	ErrCodeCatalogInvalid = "ERR_CATALOG_INVALID"
	ErrCodeConfigInvalid  = "ERR_CONFIG_INVALID"
	ErrCodeFileNotFound   = "ERR_FILE_NOT_FOUND"
	ErrCodeParseFailed    = "ERR_PARSE_FAILED"
	ErrCodeRenderFailed   = "ERR_RENDER_FAILED"
	ErrCodeWriteFailed    = "ERR_WRITE_FAILED"
	ErrCodeWatchFailed    = "ERR_WATCH_FAILED"
	ErrCodeServerFailed   = "ERR_SERVER_FAILED"
	ErrCodeAuditFailed    = "ERR_AUDIT_FAILED"
)
