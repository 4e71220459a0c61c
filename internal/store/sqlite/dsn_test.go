package sqlite

import (
	"testing"
)

func TestParseDSN(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{
			name:     "memory",
			input:    "sqlite://:memory:",
			expected: ":memory:",
		},
		{
			name:     "empty path defaults to memory",
			input:    "sqlite://",
			expected: ":memory:",
		},
		{
			name:     "escaped path",
			input:    "sqlite://my%20project.db",
			expected: "./my project.db",
		},
		{
			name:     "absolute path",
			input:    "sqlite:///var/db/bindcheck.db",
			expected: "/var/db/bindcheck.db",
		},
		{
			name:     "relative path",
			input:    "sqlite://bindcheck.db",
			expected: "./bindcheck.db",
		},
		{
			name:     "explicit relative path",
			input:    "sqlite://./bindcheck.db",
			expected: "./bindcheck.db",
		},
		{
			name:     "relative path with query",
			input:    "sqlite://bindcheck.db?mode=ro",
			expected: "./bindcheck.db?mode=ro",
		},
		{
			name:    "wrong scheme",
			input:   "postgres://localhost/bindcheck",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseDSN(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDSN(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDSN(%q) = %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("parseDSN(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
