package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTags(t *testing.T) {
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
			name:     "collapses whitespace",
			input:    []string{"  Web   Dev ", "UI/UX"},
			expected: []string{"Web Dev", "UI/UX"},
		},
		{
			name:     "case-insensitive duplicates keep first spelling",
			input:    []string{"SaaS", "saas", "Cloud", "SAAS"},
			expected: []string{"SaaS", "Cloud"},
		},
		{
			name:     "drops blanks",
			input:    []string{"", "   ", "\t"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTags(tt.input))
		})
	}
}
