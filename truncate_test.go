package searchkey

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTruncateEnd(t *testing.T) {
	tests := []struct {
		input    string
		n        int
		expected string
	}{
		{"", 5, ""},
		{"abc", 0, ""},
		{"abc", -1, ""},
		{"abc", 5, "abc"},
		{"abc", 3, "abc"},
		{"abcdef", 3, "abc"},
		{"F13D1B0F57244688BCF294B36BC32F5A", 10, "F13D1B0F57"},
		{"محمود شاهين", 5, "محمود"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, TruncateEnd(tt.input, tt.n))
		})
	}
}

func TestTruncateEndWithSuffix(t *testing.T) {
	tests := []struct {
		input    string
		n        int
		suffix   string
		expected string
	}{
		{"searchkey", 6, "...", "sea..."},
		{"searchkey", 9, "...", "searchkey"},
		{"searchkey", 3, "...", "..."},
		{"searchkey", 2, "...", ".."},
		{"crème brûlée", 7, "…", "crème …"},
		{"", 3, "...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, TruncateEndWithSuffix(tt.input, tt.n, tt.suffix))
		})
	}
}

func TestTruncateStart(t *testing.T) {
	tests := []struct {
		input    string
		n        int
		expected string
	}{
		{"", 3, ""},
		{"abc", 0, ""},
		{"abc", 5, "abc"},
		{"abcdef", 3, "def"},
		{"brûlée", 4, "ûlée"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.Equal(t, tt.expected, TruncateStart(tt.input, tt.n))
		})
	}
}
