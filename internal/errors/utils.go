package errors

import (
	"errors"
)

// Wrap wraps an error with additional context, creating a ShelfError if the input is not already one
func Wrap(err error, errType ErrorType, code, message string) *ShelfError {
	if err == nil {
		return nil
	}

	// Keep the inner error's context and source so it survives another layer
	var se *ShelfError
	if errors.As(err, &se) {
		return &ShelfError{
			Type:    errType,
			Code:    code,
			Message: message,
			Cause:   se,
			Context: se.Context,
			Source:  se.Source,
		}
	}

	return &ShelfError{
		Type:    errType,
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// WrapIO wraps an error as an I/O error for the given path.
func WrapIO(err error, code, message, path string) *ShelfError {
	se := Wrap(err, ErrorTypeIO, code, message)
	if se != nil {
		se.Source = path
	}
	return se
}

// WrapConfig wraps an error as a configuration error.
func WrapConfig(err error, code, message string) *ShelfError {
	return Wrap(err, ErrorTypeConfig, code, message)
}
