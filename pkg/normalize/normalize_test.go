package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase passthrough", "robert martin", "robert martin"},
		{"mixed case", "Robert Martin", "robert martin"},
		{"surrounding whitespace", "  Robert Martin \t", "robert martin"},
		{"inner whitespace preserved", "Robert  Martin", "robert  martin"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Canonicalize(tc.input))
		})
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("Robert Martin", " robert martin "))
	assert.True(t, Equal("", "  "))
	assert.False(t, Equal("Robert Martin", "Martin Fowler"))
}

func TestCanonicalizeAll(t *testing.T) {
	t.Run("canonicalizes every element", func(t *testing.T) {
		assert.Equal(t, []string{"refactoring", "design"}, CanonicalizeAll([]string{" Refactoring", "DESIGN "}))
	})

	t.Run("drops empties and duplicates, keeps first-occurrence order", func(t *testing.T) {
		got := CanonicalizeAll([]string{"Classic", "", "  ", "crime", "CLASSIC"})
		assert.Equal(t, []string{"classic", "crime"}, got)
	})
}
