package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	base := Config{
		APIBaseURL:     "http://localhost:5000/api",
		StoragePath:    "folio.db",
		RequestTimeout: 1500 * time.Millisecond,
		RetryAttempts:  3,
		LogLevel:       "info",
	}

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "http://127.0.0.1:9090/api", "-s", "x.db", "-t", "5", "-r", "1", "-l", "debug"},
			expected: &Config{APIBaseURL: "http://127.0.0.1:9090/api", StoragePath: "x.db",
				RequestTimeout: 5 * time.Second, RetryAttempts: 1, LogLevel: "debug"},
		},
		{
			name:     "unset timeout keeps sub-second value",
			args:     []string{"-a", "http://other/api"},
			expected: &Config{APIBaseURL: "http://other/api", StoragePath: "folio.db", RequestTimeout: 1500 * time.Millisecond, RetryAttempts: 3, LogLevel: "info"},
		},
		{
			name:     "foreign flags ignored",
			args:     []string{"-c", "conf.json", "-x", "1"},
			expected: &base,
		},
		{name: "incorrect timeout", args: []string{"-t", "abc"}, expectPanic: true},
		{name: "incorrect retry count", args: []string{"-r", "many"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(&cfg, tt.args) })
				return
			}
			require.NotPanics(t, func() { parseFlags(&cfg, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, &cfg))
		})
	}
}
