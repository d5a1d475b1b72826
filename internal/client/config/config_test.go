package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:3000", c.APIBaseURL)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, "paytrack.db", c.DatabaseDSN)
}

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Setenv(envAPIURL, "http://api.internal:4000")
	t.Setenv(envTimeout, "3s")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://api.internal:4000", c.APIBaseURL)
	assert.Equal(t, 3*time.Second, c.RequestTimeout)
	assert.Equal(t, "paytrack.db", c.DatabaseDSN)
}

func TestParseEnv_InvalidDurationKeepsDefault(t *testing.T) {
	t.Setenv(envTimeout, "abc")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "Test1 OK", args: []string{"cmd", "-a", "http://10.0.0.5:3000", "-t", "5", "-d", "x.db"},
			expectPanic: false,
			expected:    &Config{APIBaseURL: "http://10.0.0.5:3000", RequestTimeout: 5 * time.Second, DatabaseDSN: "x.db"},
		},
		{
			name: "Test2 incorrect timeout", args: []string{"cmd", "-a", "http://10.0.0.5:3000", "-t", "abc"},
			expectPanic: true, expected: &Config{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			origArgs := os.Args
			t.Cleanup(func() { os.Args = origArgs })
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
