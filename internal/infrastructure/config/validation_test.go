package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Defaults(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantKey string
	}{
		{name: "shell mode", mutate: func(c *Config) { c.Shell.Mode = "slide" }, wantKey: "shell.mode"},
		{name: "framed without width", mutate: func(c *Config) { c.Shell.Width = "" }, wantKey: "shell.width"},
		{name: "panel mode", mutate: func(c *Config) { c.Panels[1].Mode = "float" }, wantKey: "panels[1].mode"},
		{name: "panel width", mutate: func(c *Config) { c.Panels[0].Width = "" }, wantKey: "panels[0].width"},
		{name: "fixed at", mutate: func(c *Config) { c.Panels[0].FixedAt = "-3" }, wantKey: "panels[0].fixed_at"},
		{name: "duplicate names", mutate: func(c *Config) { c.Panels[1].Name = "menu" }, wantKey: "panels[1].name"},
		{name: "tap timeout", mutate: func(c *Config) { c.Gesture.TapTimeoutMs = 0 }, wantKey: "gesture.tap_timeout_ms"},
		{name: "swipe velocity", mutate: func(c *Config) { c.Gesture.SwipeVelocity = -1 }, wantKey: "gesture.swipe_velocity"},
		{name: "duration", mutate: func(c *Config) { c.Transition.DurationMs = -1 }, wantKey: "transition.duration_ms"},
		{name: "fps", mutate: func(c *Config) { c.Transition.FPS = 1000 }, wantKey: "transition.fps"},
		{name: "log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantKey: "logging.level"},
		{name: "palette", mutate: func(c *Config) { c.Appearance.Palette.Accent = "blue" }, wantKey: "appearance.palette.accent"},
		{name: "em size", mutate: func(c *Config) { c.EmSize = 0.5 }, wantKey: "em_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestValidateConfig_UnframedShellNeedsNoSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shell.Framed = false
	cfg.Shell.Width = ""
	cfg.Shell.Height = ""

	assert.NoError(t, validateConfig(cfg))
}

func TestValidateConfig_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shell.Mode = "slide"
	cfg.Gesture.TapTimeoutMs = -1

	err := validateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shell.mode")
	assert.Contains(t, err.Error(), "gesture.tap_timeout_ms")
}
