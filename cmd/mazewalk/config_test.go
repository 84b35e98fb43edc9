package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the test and restores them afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func allKeys() []string { return []string{envSelector, envSeed, envLogLevel, envRuns} }

func TestLoadConfig_Defaults(t *testing.T) {
	unsetEnv(t, allKeys()...)

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{Selector: "first", Seed: 0, LogLevel: "info", Runs: 1}, cfg)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv(envSelector, "greedy")
	t.Setenv(envSeed, "42")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envRuns, "3")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Config{Selector: "greedy", Seed: 42, LogLevel: "debug", Runs: 3}, cfg)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	unsetEnv(t, allKeys()...)
	t.Setenv(envSelector, "random") // process env wins over the file

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MAZEWALK_SELECTOR=greedy\nMAZEWALK_RUNS=4\n"), 0o600))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "random", cfg.Selector)
	assert.Equal(t, 4, cfg.Runs)
}

func TestLoadConfig_BadInteger(t *testing.T) {
	unsetEnv(t, allKeys()...)
	t.Setenv(envSeed, "abc")

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), envSeed)
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseLevel("loud")
	assert.Error(t, err)
}
