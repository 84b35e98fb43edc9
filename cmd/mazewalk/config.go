package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment keys. Flags override them.
const (
	envSelector = "MAZEWALK_SELECTOR"
	envSeed     = "MAZEWALK_SEED"
	envLogLevel = "MAZEWALK_LOG_LEVEL"
	envRuns     = "MAZEWALK_RUNS"
)

// Config holds the defaults resolved from the environment.
type Config struct {
	Selector string // selector name: first, random or greedy
	Seed     int64  // 0 picks a time-based seed, which is logged
	LogLevel string // debug, info, warn or error
	Runs     int    // routes walked per report
}

// loadConfig loads envFile if present, then reads the MAZEWALK_* variables.
// Variables already set in the process win over the file.
func loadConfig(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
		slog.Debug("env file not found", "path", envFile)
	}

	seed, err := getEnvAsInt64(envSeed, 0)
	if err != nil {
		return Config{}, err
	}
	runs, err := getEnvAsInt64(envRuns, 1)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Selector: getEnvWithDefault(envSelector, "first"),
		Seed:     seed,
		LogLevel: getEnvWithDefault(envLogLevel, "info"),
		Runs:     int(runs),
	}, nil
}

// getEnvWithDefault returns the variable's value, or def when unset or empty.
func getEnvWithDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return def
}

// getEnvAsInt64 parses the variable as an integer, or returns def when unset.
func getEnvAsInt64(key string, def int64) (int64, error) {
	v := getEnvWithDefault(key, "")
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}

	return n, nil
}

// parseLevel maps debug|info|warn|error (any case) to a slog level.
func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}

	return l, nil
}
