package config

const (
	defaultEmSize = 2

	defaultTransitionMs  = 200
	defaultTransitionFPS = 60

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7

	defaultNarrowWidth = "85%"
)

// DefaultConfig returns the default configuration: a menu on the left and an
// inspector on the right, framed on large terminals.
func DefaultConfig() *Config {
	return &Config{
		Shell: ShellConfig{
			Mode:   "push",
			Width:  "120",
			Height: "40",
			Framed: true,
		},
		Panels: []PanelConfig{
			{
				Name:        "menu",
				Position:    "left",
				Width:       "12em",
				NarrowWidth: defaultNarrowWidth,
				FixedAt:     "140",
				Title:       "Menu",
				Items:       []string{"Inbox", "Drafts", "Sent", "Archive"},
				Key:         "m",
			},
			{
				Name:        "details",
				Position:    "right",
				Width:       "30%",
				NarrowWidth: defaultNarrowWidth,
				Title:       "Details",
				Items:       []string{"No selection"},
				Key:         "d",
			},
		},
		Gesture: GestureConfig{
			TapSlop:          1,
			TapTimeoutMs:     300,
			PanThreshold:     2,
			SwipeVelocity:    40,
			SwipeMinDistance: 6,
		},
		Transition: TransitionConfig{
			DurationMs: defaultTransitionMs,
			FPS:        defaultTransitionFPS,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "console",
			EnableFileLog: true,
			MaxSizeMB:     defaultLogMaxSizeMB,
			MaxBackups:    defaultLogMaxBackups,
			MaxAge:        defaultLogMaxAgeDays,
			Compress:      true,
		},
		Appearance: AppearanceConfig{
			Palette: ColorPalette{
				Background: "#1e1e2e",
				Surface:    "#313244",
				Text:       "#cdd6f4",
				Muted:      "#7f849c",
				Accent:     "#89b4fa",
				Border:     "#45475a",
			},
		},
		EmSize: defaultEmSize,
	}
}
