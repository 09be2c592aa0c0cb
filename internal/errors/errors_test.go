package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error with wrapped error",
			appError: &AppError{
				Type:    ErrorTypeInput,
				Message: "failed to read input",
				Err:     errors.New("file not found"),
			},
			expected: "input: failed to read input: file not found",
		},
		{
			name: "error without wrapped error",
			appError: &AppError{
				Type:    ErrorTypeParsing,
				Message: "invalid JSON syntax",
				Err:     nil,
			},
			expected: "parsing: invalid JSON syntax",
		},
		{
			name: "path error with sentinel",
			appError: &AppError{
				Type:    ErrorTypePath,
				Message: "path \"a.b\" not found",
				Err:     ErrPathNotFound,
			},
			expected: "path: path \"a.b\" not found: path not found in payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	err := NewPathError("missing", ErrPathNotFound)
	assert.Equal(t, ErrPathNotFound, err.Unwrap())
	assert.True(t, errors.Is(err, ErrPathNotFound))
	assert.False(t, errors.Is(err, ErrMalformedPath))
}

func TestAppError_IsComparesTypes(t *testing.T) {
	pathErr := NewPathError("a", nil)
	assert.True(t, errors.Is(pathErr, NewPathError("b", nil)))
	assert.False(t, errors.Is(pathErr, NewInputError("b", nil)))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected ErrorType
	}{
		{"input", NewInputError("m", nil), ErrorTypeInput},
		{"path", NewPathError("m", nil), ErrorTypePath},
		{"parse", NewParseError("m", nil), ErrorTypeParsing},
		{"config", NewConfigError("m", nil), ErrorTypeConfig},
		{"output", NewOutputError("m", nil), ErrorTypeOutput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Type)
			assert.Equal(t, "m", tt.err.Message)
		})
	}
}

func TestUserFriendlyError(t *testing.T) {
	assert.Equal(t, "Input error: no payload", UserFriendlyError(NewInputError("no payload", nil)))
	assert.Equal(t, "Path error: bad path", UserFriendlyError(NewPathError("bad path", nil)))
	assert.Equal(t, "JSON parsing error: broken", UserFriendlyError(NewParseError("broken", nil)))
	assert.Equal(t, "Configuration error: bad filter", UserFriendlyError(NewConfigError("bad filter", nil)))
	assert.Equal(t,
		"Error: The input contains invalid JSON. Please check your JSON syntax.",
		UserFriendlyError(ErrInvalidJSON))
	assert.Equal(t, "Error: boom", UserFriendlyError(errors.New("boom")))
}
