package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"NetworkError", "networkerror"},
		{"network_error", "networkerror"},
		{"network-error", "networkerror"},
		{"networkError", "networkerror"},
		{"NETWORKERROR", "networkerror"},
		{"HTTPError", "httperror"},
		{"strconv.NumError", "strconvnumerror"},
		{"", ""},
		{"A", "a"},
		{"ID", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestStripKindSuffix(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"NetworkError", "network"},
		{"NetworkErr", "network"},
		{"Timeout", "timeout"},
		{"Error", "error"},
		{"Err", "err"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, StripKindSuffix(tt.input))
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"NumError", []string{"num", "error"}},
		{"numError", []string{"num", "error"}},
		{"HTTPError", []string{"http", "error"}},
		{"XMLHTTPRequest", []string{"xmlhttp", "request"}},
		{"unknown_variant", []string{"unknown", "variant"}},
		{"strconv.NumError", []string{"strconv", "num", "error"}},
		{"__x__", []string{"x"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenizeIdent(tt.input))
		})
	}
}
