package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"Network", "Network", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single edits
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},

		// Multiple edits
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-sensitive
		{"Error", "error", 1},

		// Misspelled error names
		{"Netwrk", "Network", 1},
		{"networkerr", "networkerror", 2},
		{"timeout", "timeouterror", 5},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 1e-9)
	assert.InDelta(t, 1.0, Similarity("abc", "abc"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("abc", ""), 1e-9)
	assert.InDelta(t, 6.0/7.0, Similarity("netwrk", "network"), 1e-9)
}

func TestScore(t *testing.T) {
	assert.InDelta(t, 1.0, Score("NetworkErr", "NetworkError"), 1e-9)
	assert.InDelta(t, 1.0, Score("network_error", "NetworkError"), 1e-9)
	assert.InDelta(t, 6.0/7.0, Score("Netwrk", "Network"), 1e-9)
	assert.Less(t, Score("Database", "Network"), DefaultMinScore)
}
