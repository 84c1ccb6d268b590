// Package validation holds value checks shared by configuration and scripts.
package validation

import "regexp"

var hexColorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsHexColor reports whether value is a #RRGGBB color.
func IsHexColor(value string) bool {
	return hexColorRE.MatchString(value)
}

// ValidatePaletteHex checks every named color and returns one message per
// invalid entry, in the order given.
func ValidatePaletteHex(prefix string, colors ...NamedValue) []string {
	var errs []string
	for _, c := range colors {
		if !IsHexColor(c.Value) {
			errs = append(errs, prefix+"."+c.Name+" must be a hex color like #RRGGBB")
		}
	}
	return errs
}

// NamedValue pairs a config key with its raw value.
type NamedValue struct {
	Name  string
	Value string
}
