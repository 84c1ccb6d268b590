package config

import (
	"fmt"
	"strings"

	domainvalidation "github.com/bnema/sidepanel/internal/domain/validation"
)

const maxFPS = 240

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateShell(config)...)
	validationErrors = append(validationErrors, validatePanels(config)...)
	validationErrors = append(validationErrors, validateGesture(config)...)
	validationErrors = append(validationErrors, validateTransition(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	if config.EmSize < 1 {
		validationErrors = append(validationErrors, "em_size must be at least 1")
	}

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateShell(config *Config) []string {
	var validationErrors []string
	validationErrors = append(validationErrors, domainvalidation.ValidateMode("shell.mode", config.Shell.Mode, false)...)
	validationErrors = append(validationErrors, domainvalidation.ValidateLength("shell.width", config.Shell.Width, !config.Shell.Framed)...)
	validationErrors = append(validationErrors, domainvalidation.ValidateLength("shell.height", config.Shell.Height, !config.Shell.Framed)...)
	return validationErrors
}

func validatePanels(config *Config) []string {
	var validationErrors []string
	names := make(map[string]int, len(config.Panels))
	for i, p := range config.Panels {
		key := fmt.Sprintf("panels[%d]", i)
		validationErrors = append(validationErrors, domainvalidation.ValidatePosition(key+".position", p.Position)...)
		validationErrors = append(validationErrors, domainvalidation.ValidateMode(key+".mode", p.Mode, true)...)
		validationErrors = append(validationErrors, domainvalidation.ValidateLength(key+".width", p.Width, false)...)
		validationErrors = append(validationErrors, domainvalidation.ValidateLength(key+".narrow_width", p.NarrowWidth, true)...)
		validationErrors = append(validationErrors, domainvalidation.ValidateLength(key+".fixed_at", p.FixedAt, true)...)

		if p.Name == "" {
			continue
		}
		if prev, ok := names[p.Name]; ok {
			validationErrors = append(validationErrors,
				fmt.Sprintf("%s.name %q already used by panels[%d]", key, p.Name, prev))
			continue
		}
		names[p.Name] = i
	}
	return validationErrors
}

func validateGesture(config *Config) []string {
	var validationErrors []string
	g := config.Gesture
	if g.TapSlop < 0 {
		validationErrors = append(validationErrors, "gesture.tap_slop must be non-negative")
	}
	if g.TapTimeoutMs <= 0 {
		validationErrors = append(validationErrors, "gesture.tap_timeout_ms must be positive")
	}
	if g.PanThreshold < 0 {
		validationErrors = append(validationErrors, "gesture.pan_threshold must be non-negative")
	}
	if g.SwipeVelocity <= 0 {
		validationErrors = append(validationErrors, "gesture.swipe_velocity must be positive")
	}
	if g.SwipeMinDistance < 0 {
		validationErrors = append(validationErrors, "gesture.swipe_min_distance must be non-negative")
	}
	return validationErrors
}

func validateTransition(config *Config) []string {
	var validationErrors []string
	if config.Transition.DurationMs < 0 {
		validationErrors = append(validationErrors, "transition.duration_ms must be non-negative")
	}
	if config.Transition.FPS < 1 || config.Transition.FPS > maxFPS {
		validationErrors = append(validationErrors, fmt.Sprintf("transition.fps must be between 1 and %d", maxFPS))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	return domainvalidation.ValidatePaletteHex("appearance.palette",
		domainvalidation.NamedValue{Name: "background", Value: p.Background},
		domainvalidation.NamedValue{Name: "surface", Value: p.Surface},
		domainvalidation.NamedValue{Name: "text", Value: p.Text},
		domainvalidation.NamedValue{Name: "muted", Value: p.Muted},
		domainvalidation.NamedValue{Name: "accent", Value: p.Accent},
		domainvalidation.NamedValue{Name: "border", Value: p.Border},
	)
}
