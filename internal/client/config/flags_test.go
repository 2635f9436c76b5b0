package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd", "-a", "https://api.jobpilot.dev", "-t", "20", "-r", "60", "-d", "/tmp/jp.db"},
			expected: &Config{
				ServerBaseURL:     "https://api.jobpilot.dev",
				RequestTimeout:    20 * time.Second,
				OTPResendInterval: 60 * time.Second,
				DatabasePath:      "/tmp/jp.db",
			},
		},
		{
			name: "unknown flags are ignored",
			args: []string{"cmd", "-a", "https://api.jobpilot.dev", "-x", "whatever"},
			expected: &Config{
				ServerBaseURL: "https://api.jobpilot.dev",
			},
		},
		{
			name:        "incorrect timeout",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config) })
			assert.Equal(t, tt.expected, config)
		})
	}
}
