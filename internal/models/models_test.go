package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewResponse(t *testing.T) {
	response := NewResponse(200, "one two\nthree four five")

	assert.Equal(t, 200, response.Code)
	assert.Equal(t, int64(2), response.Lines)
	assert.Equal(t, int64(5), response.Words)
	assert.Equal(t, int64(len("one two\nthree four five")), response.Size)
}

func TestNewResponse_SingleLine(t *testing.T) {
	response := NewResponse(404, `{"error":"not found"}`)

	assert.Equal(t, int64(1), response.Lines)
	assert.Equal(t, int64(2), response.Words)
	assert.Equal(t, int64(21), response.Size)
}

func TestNewResponse_EmptyBody(t *testing.T) {
	response := NewResponse(204, "")

	assert.Equal(t, int64(0), response.Lines)
	assert.Equal(t, int64(0), response.Words)
	assert.Equal(t, int64(0), response.Size)
}
