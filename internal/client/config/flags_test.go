package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://api:8080", "-t", "30", "-d", "/tmp/c.db", "-p", "2", "-r", "5", "-l", "debug"},
			expected: &Config{
				APIBaseURL:         "http://api:8080",
				RequestTimeout:     30 * time.Second,
				DatabasePath:       "/tmp/c.db",
				MaxParallelFetches: 2,
				RequestsPerSecond:  5,
				LogLevel:           "debug",
			},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"-c", "cfg.json", "-x", "-a", "http://api"},
			expected: &Config{APIBaseURL: "http://api"},
		},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, expectPanic: true},
		{name: "incorrect rate", args: []string{"-r", "fast"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
