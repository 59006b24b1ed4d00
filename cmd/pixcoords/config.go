package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/pbnjay/pixcoords"
)

const defaultEnvFile = ".env"

// config holds the flag defaults. Values come from the environment, which
// may be seeded from a .env file (PIXCOORDS_ENV names another one).
type config struct {
	fontPath string
	gap      int
	scale    int
	format   string
}

func loadConfig() config {
	envFile := os.Getenv("PIXCOORDS_ENV")
	if envFile == "" {
		envFile = defaultEnvFile
	}
	// godotenv never overrides variables that are already set.
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not load env file", "path", envFile, "error", err)
	}

	return config{
		fontPath: os.Getenv("PIXCOORDS_FONT"),
		gap:      envInt("PIXCOORDS_GAP", pixcoords.DefaultGap),
		scale:    envInt("PIXCOORDS_SCALE", 4),
		format:   envString("PIXCOORDS_FORMAT", "json"),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring invalid integer", "var", key, "value", v)
		return def
	}
	return n
}
