package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShelfErrorMessage(t *testing.T) {
	testCases := []struct {
		name     string
		err      *ShelfError
		expected string
	}{
		{
			name:     "code and message",
			err:      NewValidationError(ErrCodeCatalogInvalid, "catalog is invalid"),
			expected: "[ERR_CATALOG_INVALID] catalog is invalid",
		},
		{
			name:     "with source",
			err:      NewConfigError(ErrCodeConfigInvalid, "bad port").WithSource(".shelfpage.yml"),
			expected: "[ERR_CONFIG_INVALID] .shelfpage.yml bad port",
		},
		{
			name:     "with cause",
			err:      NewIOError(ErrCodeFileNotFound, "cannot open host page", errors.New("no such file")),
			expected: "[ERR_FILE_NOT_FOUND] cannot open host page: no such file",
		},
		{
			name: "with string context in key order",
			err: NewValidationError(ErrCodeCatalogInvalid, "catalog is invalid").
				WithContext("b", "second").
				WithContext("a", "first").
				WithContext("n", 3),
			expected: "[ERR_CATALOG_INVALID] catalog is invalid (a first; b second)",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.err.Error())
		})
	}
}

func TestShelfErrorIsAndUnwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := NewIOError(ErrCodeWriteFailed, "write failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, errors.Is(err, &ShelfError{Type: ErrorTypeIO, Code: ErrCodeWriteFailed}))
	assert.False(t, errors.Is(err, &ShelfError{Type: ErrorTypeIO, Code: ErrCodeParseFailed}))

	wrapped := fmt.Errorf("render: %w", err)
	assert.True(t, IsIO(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.False(t, IsConfig(wrapped))
}

func TestWrap(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrorTypeIO, ErrCodeWriteFailed, "ignored"))
	})

	t.Run("plain error", func(t *testing.T) {
		se := WrapIO(errors.New("denied"), ErrCodeWriteFailed, "cannot write output", "out.html")
		require.NotNil(t, se)
		assert.Equal(t, ErrorTypeIO, se.Type)
		assert.Equal(t, "out.html", se.Source)
	})

	t.Run("keeps inner context", func(t *testing.T) {
		inner := NewValidationError(ErrCodeCatalogInvalid, "catalog is invalid").
			WithContext("Books[0].Rating", "must be less than or equal to 5").
			WithSource("catalog")
		se := WrapConfig(inner, ErrCodeConfigInvalid, "startup failed")
		require.NotNil(t, se)
		assert.Equal(t, ErrorTypeConfig, se.Type)
		assert.Equal(t, "catalog", se.Source)
		assert.Equal(t, inner.Context, se.Context)
		assert.True(t, IsValidation(se.Cause))
	})
}

type recordingLogger struct {
	level string
	msg   string
}

func (r *recordingLogger) Error(ctx context.Context, err error, msg string, fields ...interface{}) {
	r.level, r.msg = "error", msg
}

func (r *recordingLogger) Warn(ctx context.Context, err error, msg string, fields ...interface{}) {
	r.level, r.msg = "warn", msg
}

func TestReport(t *testing.T) {
	ctx := context.Background()

	t.Run("validation is a warning", func(t *testing.T) {
		logger := &recordingLogger{}
		Report(ctx, logger, NewValidationError(ErrCodeCatalogInvalid, "bad"))
		assert.Equal(t, "warn", logger.level)
	})

	t.Run("io is an error", func(t *testing.T) {
		logger := &recordingLogger{}
		Report(ctx, logger, NewIOError(ErrCodeWriteFailed, "bad", nil))
		assert.Equal(t, "error", logger.level)
		assert.Equal(t, "Error occurred", logger.msg)
	})

	t.Run("generic error", func(t *testing.T) {
		logger := &recordingLogger{}
		Report(ctx, logger, errors.New("boom"))
		assert.Equal(t, "Unhandled error occurred", logger.msg)
	})

	t.Run("nil is ignored", func(t *testing.T) {
		logger := &recordingLogger{}
		Report(ctx, logger, nil)
		assert.Empty(t, logger.level)
	})
}
