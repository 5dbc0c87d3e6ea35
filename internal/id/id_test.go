package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		got, err := NewRequest()
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(got, "req-"))
		assert.Len(t, got, len("req-")+16)
		assert.True(t, ValidRequest(got))
		assert.False(t, seen[got], "duplicate %s", got)
		seen[got] = true
	}
}

func TestValidRequest(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"abc-123", true},
		{"trace.ID_9", true},
		{"", false},
		{strings.Repeat("a", 64), true},
		{strings.Repeat("a", 65), false},
		{"has space", false},
		{"new\nline", false},
		{"ünïcode", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidRequest(tt.in), "%q", tt.in)
	}
}
