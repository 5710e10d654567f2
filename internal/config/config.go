// Package config reads server settings from the environment and an optional
// .env file.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ironsheep/region-locator-mcp/internal/detection"
	"github.com/ironsheep/region-locator-mcp/internal/imaging"
)

// Environment variable names.
const (
	EnvLogLevel     = "REGION_LOCATOR_LOG_LEVEL"
	EnvThreshold    = "REGION_LOCATOR_THRESHOLD"
	EnvOutlineColor = "REGION_LOCATOR_OUTLINE_COLOR"
)

type Config struct {
	// LogLevel is passed to logger.ParseLevel.
	LogLevel string

	// Threshold is the binarization level used when a request gives none.
	Threshold float64

	// OutlineColor is the "#RRGGBB" colour of drawn region outlines.
	OutlineColor string
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		LogLevel:     "info",
		Threshold:    detection.DefaultThreshold,
		OutlineColor: imaging.DefaultOutlineColor,
	}
}

// Load reads the given .env files (".env" when none are named) and then the
// environment. Missing files are ignored and variables already present in
// the environment win over file values.
func Load(files ...string) (*Config, error) {
	// A missing .env is not an error.
	_ = godotenv.Load(files...)

	cfg := Default()

	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if v := strings.TrimSpace(os.Getenv(EnvThreshold)); v != "" {
		t, err := strconv.ParseFloat(v, 64)
		if err != nil || math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, fmt.Errorf("%s: invalid threshold %q", EnvThreshold, v)
		}
		cfg.Threshold = t
	}

	if v := strings.TrimSpace(os.Getenv(EnvOutlineColor)); v != "" {
		if _, err := imaging.ParseColor(v); err != nil {
			return nil, fmt.Errorf("%s: %w", EnvOutlineColor, err)
		}
		cfg.OutlineColor = v
	}

	return cfg, nil
}
