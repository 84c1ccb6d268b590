package entity

import "fmt"

// Mode describes how a panel relates to the main content while it moves.
type Mode string

const (
	// ModePush slides the panel in and pushes the content by the same distance.
	ModePush Mode = "push"
	// ModeOver slides the panel above the content; the content never moves.
	ModeOver Mode = "over"
	// ModeUnder keeps the panel behind the content; the content moves to expose it.
	ModeUnder Mode = "under"
)

// DefaultMode is used when no mode was configured.
const DefaultMode = ModePush

// AppliesContentOffset reports whether showing or hiding a panel in this mode
// moves the main content.
func (m Mode) AppliesContentOffset() bool {
	return m.normalized() != ModeOver
}

// HasOwnTransition reports whether the panel animates its own edge offset.
// Under panels stay in place and are uncovered by the content.
func (m Mode) HasOwnTransition() bool {
	return m.normalized() != ModeUnder
}

// Layer returns the stacking order of the panel relative to the content (0).
func (m Mode) Layer() int {
	if m.normalized() == ModeUnder {
		return -1
	}
	return 1
}

// IsValid reports whether m is one of the known modes.
func (m Mode) IsValid() bool {
	switch m {
	case ModePush, ModeOver, ModeUnder:
		return true
	default:
		return false
	}
}

// String returns the mode name, empty modes report the default.
func (m Mode) String() string {
	return string(m.normalized())
}

func (m Mode) normalized() Mode {
	if m == "" {
		return DefaultMode
	}
	return m
}

// ParseMode converts a config value into a Mode. Empty strings map to DefaultMode.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return DefaultMode, nil
	}
	m := Mode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("invalid mode %q (must be push, over or under)", s)
	}
	return m, nil
}
