package shared_test

import (
	"testing"

	"posada/shared"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "reservation:gets",
			parts:    nil,
			expected: "reservation:gets",
		},
		{
			name:     "prefix with one part",
			prefix:   "reservation:get",
			parts:    []string{"abc-123"},
			expected: "reservation:get:abc-123",
		},
		{
			name:     "prefix with several parts",
			prefix:   "limiter",
			parts:    []string{"10.0.0.1", "curl"},
			expected: "limiter:10.0.0.1:curl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.prefix, tt.parts...); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
