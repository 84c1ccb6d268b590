// Package entity defines domain entities for the panel shell.
package entity

import "fmt"

// Position is the edge a panel slides from.
type Position string

const (
	PositionLeft  Position = "left"
	PositionRight Position = "right"
)

// Opposite returns the edge across the content area.
// The border of a panel is drawn on this edge.
func (p Position) Opposite() Position {
	if p == PositionLeft {
		return PositionRight
	}
	return PositionLeft
}

// IsValid reports whether p is one of the known positions.
func (p Position) IsValid() bool {
	return p == PositionLeft || p == PositionRight
}

// String returns the position name.
func (p Position) String() string {
	return string(p)
}

// ParsePosition converts a config value into a Position.
func ParsePosition(s string) (Position, error) {
	p := Position(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid position %q (must be left or right)", s)
	}
	return p, nil
}
