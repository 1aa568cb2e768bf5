package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err, "an explicit missing path is an error")
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"locale: de\nformat: \"%.3f\"\nminimum_unit: milliseconds\nsuppress: [days, months]\n",
	), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "de", cfg.Locale)
	assert.Equal(t, "%.3f", cfg.Format)
	assert.Equal(t, "milliseconds", cfg.MinimumUnit)
	assert.Equal(t, []string{"days", "months"}, cfg.Suppress)
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("locale: fr\n"), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, "%0.2f", cfg.Format, "unset fields keep their defaults")
	assert.Equal(t, "seconds", cfg.MinimumUnit)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestEvalRepl(t *testing.T) {
	cfg = defaultConfig()

	tests := []struct {
		line string
		want string
	}{
		{"delta 176433", "2 days"},
		{"precise 176433.123", "2 days, 1 hour and 33.12 seconds"},
		{"size 3141592", "3.1 MB"},
		{"ordinal 3", "3rd"},
		{"comma 1141000", "1,141,000"},
		{"intword 1200000000", "1.2 billion"},
	}
	for _, tt := range tests {
		got := evalRepl(strings.Fields(tt.line))
		assert.Equal(t, tt.want, got, tt.line)
	}

	assert.Contains(t, evalRepl([]string{"bogus", "1"}), "unknown command")
	assert.Contains(t, evalRepl([]string{"delta"}), "missing value")
	assert.Contains(t, evalRepl([]string{"delta", "abc"}), "invalid seconds")
}
