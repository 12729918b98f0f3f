// Package config holds the runtime configuration for okc-gpg.
//
// There is no config file and no flag parsing on the initiator:
// okc-gpg forwards its entire argv to the app (a caller like git may
// pass "--status-fd=2 -bsau KEY", none of which is ours to intercept),
// so its own knobs are OKGPG_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// Config holds every tuneable for a single okc-gpg invocation.
type Config struct {
	// Args is everything after the program name, forwarded to the
	// app untouched.
	Args []string

	// ── Logging ──────────────────────────────────────────────────────
	LogLevel   zerolog.Level
	LogNoColor bool

	// ── Launcher ─────────────────────────────────────────────────────
	Component   string // broadcast receiver component
	PortExtra   string // int extra carrying the proxy port
	ArgsExtra   string // string-array extra carrying the encoded args
	LauncherCmd string // non-empty: shell command replacing the broadcast
}

// FromEnv builds the configuration from defaults, the OKGPG_*
// environment, and the passthrough argument list.
func FromEnv(args []string) (*Config, error) {
	cfg := &Config{
		Args:      args,
		LogLevel:  DefaultLogLevel,
		Component: DefaultComponent,
		PortExtra: DefaultPortExtra,
		ArgsExtra: DefaultArgsExtra,
	}

	if raw := os.Getenv(EnvLogLevel); raw != "" {
		lvl, ok := parseLevel(raw)
		if !ok {
			return nil, fmt.Errorf("config: %s=%q: unknown log level", EnvLogLevel, raw)
		}
		cfg.LogLevel = lvl
	}
	if envBool(EnvLogNoColor) {
		cfg.LogNoColor = true
	}
	if v := os.Getenv(EnvComponent); v != "" {
		cfg.Component = v
	}
	if v := os.Getenv(EnvLauncher); v != "" {
		cfg.LauncherCmd = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.LauncherCmd != "" {
		return nil // custom launcher; the broadcast fields are unused
	}
	if !strings.Contains(c.Component, "/") {
		return fmt.Errorf("config: %s=%q: expected package/.Receiver form", EnvComponent, c.Component)
	}
	return nil
}

// ── helpers ──────────────────────────────────────────────────────────

// parseLevel maps the documented level names onto zerolog levels.
func parseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "off", "disabled", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.NoLevel, false
	}
}

// envBool accepts "1", "true", "yes" (case-insensitive).
func envBool(key string) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "1", "true", "yes":
		return true
	}
	if v, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return v
	}
	return false
}
