package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedupeAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: nil,
		},
		{
			name:     "empty slice",
			input:    []string{},
			expected: []string{},
		},
		{
			name:     "trims whitespace",
			input:    []string{"  foo  ", "bar  ", "  baz"},
			expected: []string{"foo", "bar", "baz"},
		},
		{
			name:     "removes duplicates preserving order",
			input:    []string{"foo", "bar", "foo", "baz", "bar"},
			expected: []string{"foo", "bar", "baz"},
		},
		{
			name:     "drops blanks",
			input:    []string{"", "  ", "foo"},
			expected: []string{"foo"},
		},
		{
			name:     "case sensitive",
			input:    []string{"Erbil", "erbil"},
			expected: []string{"Erbil", "erbil"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeAndTrim(tt.input))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList("   "))
	assert.Equal(t, []string{"Erbil", "Duhok"}, SplitList(" Erbil, Duhok ,,Erbil"))
	assert.Equal(t, []string{"هەولێر"}, SplitList("هەولێر"))
}

func TestSplitTrim(t *testing.T) {
	assert.Equal(t, []string{"red", "blue"}, SplitTrim("red, blue"))
	assert.Equal(t, []string{"red", "", "blue"}, SplitTrim("red,,blue"))
	assert.Equal(t, []string{""}, SplitTrim(""))
}
