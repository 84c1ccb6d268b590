// Package config loads, validates and watches the sidepanel configuration.
package config

// Config represents the complete configuration for sidepanel.
type Config struct {
	// Shell controls the root surface and the default panel mode.
	Shell ShellConfig `mapstructure:"shell" yaml:"shell" toml:"shell" json:"shell"`
	// Panels are attached in order; the first panel on an edge receives its gestures.
	Panels []PanelConfig `mapstructure:"panels" yaml:"panels" toml:"panels" json:"panels"`
	// Gesture holds pointer recognition thresholds.
	Gesture GestureConfig `mapstructure:"gesture" yaml:"gesture" toml:"gesture" json:"gesture"`
	// Transition controls show and hide animations.
	Transition TransitionConfig `mapstructure:"transition" yaml:"transition" toml:"transition" json:"transition"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	// EmSize is the number of cells per em used to resolve em lengths.
	EmSize float64 `mapstructure:"em_size" yaml:"em_size" toml:"em_size" json:"em_size" jsonschema:"minimum=1"`
}

// ShellConfig controls the shell root.
type ShellConfig struct {
	// Mode is push, over or under.
	Mode string `mapstructure:"mode" yaml:"mode" toml:"mode" json:"mode" jsonschema:"enum=push,enum=over,enum=under"`
	// Width and Height are the design size of the root. Below it the root fills the terminal.
	Width  string `mapstructure:"width" yaml:"width" toml:"width" json:"width"`
	Height string `mapstructure:"height" yaml:"height" toml:"height" json:"height"`
	// Framed enables the design size: the root is centred and framed once
	// the terminal is larger than both Width and Height.
	Framed bool `mapstructure:"framed" yaml:"framed" toml:"framed" json:"framed"`
}

// PanelConfig describes one side panel.
type PanelConfig struct {
	// Name identifies the panel in logs and key bindings. Generated when empty.
	Name     string `mapstructure:"name" yaml:"name" toml:"name" json:"name,omitempty"`
	Position string `mapstructure:"position" yaml:"position" toml:"position" json:"position" jsonschema:"enum=left,enum=right"`
	// Mode overrides the shell mode for this panel.
	Mode string `mapstructure:"mode" yaml:"mode" toml:"mode,omitempty" json:"mode,omitempty"`
	// Width is the panel width at or above the design width, e.g. "30%", "21em", "24".
	Width string `mapstructure:"width" yaml:"width" toml:"width" json:"width"`
	// NarrowWidth applies below Width. Defaults to 85%.
	NarrowWidth string `mapstructure:"narrow_width" yaml:"narrow_width" toml:"narrow_width,omitempty" json:"narrow_width,omitempty"`
	// FixedAt pins the panel open at or above this terminal width. Empty never pins.
	FixedAt string   `mapstructure:"fixed_at" yaml:"fixed_at" toml:"fixed_at,omitempty" json:"fixed_at,omitempty"`
	Title   string   `mapstructure:"title" yaml:"title" toml:"title" json:"title,omitempty"`
	Items   []string `mapstructure:"items" yaml:"items" toml:"items" json:"items,omitempty"`
	// Key toggles the panel in the terminal app.
	Key string `mapstructure:"key" yaml:"key" toml:"key,omitempty" json:"key,omitempty"`
}

// GestureConfig holds recognition thresholds in cells and milliseconds.
type GestureConfig struct {
	TapSlop          float64 `mapstructure:"tap_slop" yaml:"tap_slop" toml:"tap_slop" json:"tap_slop"`
	TapTimeoutMs     int     `mapstructure:"tap_timeout_ms" yaml:"tap_timeout_ms" toml:"tap_timeout_ms" json:"tap_timeout_ms"`
	PanThreshold     float64 `mapstructure:"pan_threshold" yaml:"pan_threshold" toml:"pan_threshold" json:"pan_threshold"`
	SwipeVelocity    float64 `mapstructure:"swipe_velocity" yaml:"swipe_velocity" toml:"swipe_velocity" json:"swipe_velocity"`
	SwipeMinDistance float64 `mapstructure:"swipe_min_distance" yaml:"swipe_min_distance" toml:"swipe_min_distance" json:"swipe_min_distance"`
}

// TransitionConfig controls animations.
type TransitionConfig struct {
	// DurationMs of 0 disables animations.
	DurationMs int `mapstructure:"duration_ms" yaml:"duration_ms" toml:"duration_ms" json:"duration_ms"`
	FPS        int `mapstructure:"fps" yaml:"fps" toml:"fps" json:"fps"`
}

// LoggingConfig holds logging configuration.
// The terminal app owns stderr, so logs go to a rotated file.
type LoggingConfig struct {
	Level         string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	// LogDir defaults to $XDG_STATE_HOME/sidepanel/logs.
	LogDir     string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age" toml:"max_age" json:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress" toml:"compress" json:"compress"`
}

// AppearanceConfig holds the terminal palette.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" yaml:"palette" toml:"palette" json:"palette"`
}

// ColorPalette lists the theme colors as #RRGGBB.
type ColorPalette struct {
	Background string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface    string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	Text       string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted      string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent     string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border     string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}
