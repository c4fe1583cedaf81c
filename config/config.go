// Package config resolves analyzer options from the environment. The
// convention level is the only knob that changes engine output; log
// verbosity only affects tracing.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/Jaholl/hanab-analytics/analysis"
)

// Env var names read by Load.
const (
	EnvConventionLevel = "HANAB_CONVENTION_LEVEL"
	EnvLogLevel        = "HANAB_LOG_LEVEL"
)

// Config holds the resolved runtime settings.
type Config struct {
	Level    analysis.Level
	LogLevel logrus.Level
}

// Default returns the standard settings: beginner conventions, warn-level
// logging.
func Default() Config {
	return Config{
		Level:    analysis.LevelBeginner,
		LogLevel: logrus.WarnLevel,
	}
}

// Load reads a .env file if present, then the process environment, and
// applies the resulting log level to logrus. Unset variables keep their
// defaults; malformed values fail loudly rather than silently coercing.
func Load() (Config, error) {
	_ = godotenv.Load() // missing .env is fine

	cfg := Default()
	if raw, ok := os.LookupEnv(EnvConventionLevel); ok {
		level, err := ParseLevel(raw)
		if err != nil {
			return cfg, err
		}
		cfg.Level = level
	}
	if raw, ok := os.LookupEnv(EnvLogLevel); ok {
		level, err := logrus.ParseLevel(raw)
		if err != nil {
			return cfg, err
		}
		cfg.LogLevel = level
	}
	logrus.SetLevel(cfg.LogLevel)
	return cfg, nil
}

// ParseLevel accepts either the ordinal ("2") or the name
// ("intermediate") of a convention level.
func ParseLevel(raw string) (analysis.Level, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		if n < int(analysis.LevelBasic) || n > int(analysis.LevelAdvanced) {
			return 0, &LevelError{Raw: raw}
		}
		return analysis.Level(n), nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "basic":
		return analysis.LevelBasic, nil
	case "beginner":
		return analysis.LevelBeginner, nil
	case "intermediate":
		return analysis.LevelIntermediate, nil
	case "advanced":
		return analysis.LevelAdvanced, nil
	}
	return 0, &LevelError{Raw: raw}
}

// LevelError reports an unparseable convention level value.
type LevelError struct {
	Raw string
}

func (e *LevelError) Error() string {
	return "unknown convention level " + strconv.Quote(e.Raw) + " (want 0-3 or basic/beginner/intermediate/advanced)"
}
