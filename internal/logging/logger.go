// Package logging builds zerolog loggers and carries them through contexts.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration.
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// FileConfig controls file output for NewWithFile.
type FileConfig struct {
	Enabled       bool
	Dir           string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg Config, out io.Writer) zerolog.Logger {
	output := out
	if cfg.Format != "json" {
		output = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: cfg.TimeFormat,
			NoColor:    out != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile creates a logger writing to a rotated file in cfg.Dir, and to
// stderr when requested. Interactive terminal sessions must not write to
// stderr, so a disabled file config yields a no-op logger unless
// WriteToStderr is set. The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}

	var writers []io.Writer
	if fileCfg.WriteToStderr {
		writers = append(writers, os.Stderr)
	}

	var rotator *Rotator
	if fileCfg.Enabled {
		if err := os.MkdirAll(fileCfg.Dir, 0o755); err != nil {
			return zerolog.Nop(), noop, fmt.Errorf("create log dir: %w", err)
		}
		r, err := NewRotator(RotatorConfig{
			Dir:        fileCfg.Dir,
			FileName:   "sidepanel.log",
			MaxSizeMB:  fileCfg.MaxSizeMB,
			MaxBackups: fileCfg.MaxBackups,
			MaxAgeDays: fileCfg.MaxAgeDays,
			Compress:   fileCfg.Compress,
		})
		if err != nil {
			return zerolog.Nop(), noop, err
		}
		rotator = r
		writers = append(writers, r)
	}

	if len(writers) == 0 {
		return zerolog.Nop(), noop, nil
	}

	cleanup := func() {
		if rotator != nil {
			_ = rotator.Close()
		}
	}
	return newLogger(cfg, io.MultiWriter(writers...)), cleanup, nil
}

// ParseLevel maps a config level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromEnv creates a logger based on environment variables
// SIDEPANEL_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// SIDEPANEL_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("SIDEPANEL_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("SIDEPANEL_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}
