// Package config loads lintwire's project configuration: the rule sets to
// annotate with, per-dialect target versions, and the analysis engine
// endpoint. Configuration is always handed to callers as a value; nothing in
// the pipeline reads it ambiently.
package config

import (
	"log/slog"
	"strings"
	"time"
)

// EngineConfig holds the connection settings for the external analysis
// engine daemon.
type EngineConfig struct {
	// Endpoint is the base URL of the analysis daemon.
	Endpoint string `koanf:"endpoint"`

	// Timeout bounds one rule-set run. Zero means no client-side timeout.
	Timeout time.Duration `koanf:"timeout"`
}

// Config is the project configuration for annotation passes.
type Config struct {
	// RuleSets lists the configured rule-set identifiers, in the order
	// their contributions appear in results. Identifiers are paths or
	// logical names; which ones apply to a file is decided per pass by
	// dialect matching.
	RuleSets []string `koanf:"rulesets"`

	// Versions maps a dialect's version key to its target-version tag,
	// e.g. java: "17". Tags are opaque here; the engine validates them.
	Versions map[string]string `koanf:"versions"`

	// Engine configures the analysis daemon connection.
	Engine EngineConfig `koanf:"engine"`

	// SuppressMarker is the comment marker quick-fix suppressions insert.
	SuppressMarker string `koanf:"suppress_marker"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
}

// SlogLevel converts the configured log level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
