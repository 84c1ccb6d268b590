package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is the unit of a Length.
type Unit string

const (
	// UnitCell is one terminal cell. "px" is accepted as an alias.
	UnitCell Unit = "px"
	// UnitEm is a multiple of the configured em size.
	UnitEm Unit = "em"
	// UnitPercent is a fraction of the containing width or height.
	UnitPercent Unit = "%"
)

// Length is a CSS-like length.
type Length struct {
	Value float64
	Unit  Unit
}

// Cells returns a length in cells.
func Cells(v float64) Length {
	return Length{Value: v, Unit: UnitCell}
}

// Percent returns a percentage length.
func Percent(v float64) Length {
	return Length{Value: v, Unit: UnitPercent}
}

// Em returns an em length.
func Em(v float64) Length {
	return Length{Value: v, Unit: UnitEm}
}

// IsZero reports whether the length is unset.
func (l Length) IsZero() bool {
	return l.Value == 0 && l.Unit == ""
}

// Resolve converts the length into cells.
// base is the containing size used for percentages.
func (l Length) Resolve(base, emSize float64) float64 {
	switch l.Unit {
	case UnitPercent:
		return base * l.Value / 100
	case UnitEm:
		return l.Value * emSize
	default:
		return l.Value
	}
}

// String formats the length the way ParseLength reads it.
func (l Length) String() string {
	unit := l.Unit
	if unit == "" {
		unit = UnitCell
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + string(unit)
}

// ParseLength reads "21em", "300px", "85%", "40" (cells) or "40c".
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Length{}, fmt.Errorf("empty length")
	}

	unit := UnitCell
	num := s
	switch {
	case strings.HasSuffix(s, "%"):
		unit, num = UnitPercent, strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "em"):
		unit, num = UnitEm, strings.TrimSuffix(s, "em")
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "c"):
		num = strings.TrimSuffix(s, "c")
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Length{}, fmt.Errorf("invalid length %q: %w", s, err)
	}
	if v < 0 {
		return Length{}, fmt.Errorf("invalid length %q: must be non-negative", s)
	}
	return Length{Value: v, Unit: unit}, nil
}
