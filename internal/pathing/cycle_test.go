package pathing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsCyclicReference(t *testing.T) {
	tests := []struct {
		name     string
		property string
		depth    int
		want     bool
	}{
		{"repeated name", "a#b#a", 2, true},
		{"distinct names", "a#b#c", 3, false},
		{"case insensitive repeat", "a#A#c", 2, true},
		{"chain shorter than depth", "a#b", 3, false},
		{"single segment", "a", 2, false},
		{"adjacent repeat", "prop#prop", 2, true},
		{"deep repeat", "x#y#z#y", 2, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsCyclicReference(tc.property, tc.depth))
		})
	}
}

func TestIsCyclicReference_EmptySegmentsCount(t *testing.T) {
	// Trailing separators produce empty segments which still count toward
	// the history length and compare equal to each other.
	assert.True(t, IsCyclicReference("a#b##", 2))
}
