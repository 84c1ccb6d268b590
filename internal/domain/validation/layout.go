package validation

import (
	"fmt"

	"github.com/bnema/sidepanel/internal/domain/entity"
)

// ValidateLength checks a length such as "30%", "20em" or "24".
// Empty values are accepted when optional is set.
func ValidateLength(key, value string, optional bool) []string {
	if value == "" {
		if optional {
			return nil
		}
		return []string{key + " is required"}
	}
	l, err := entity.ParseLength(value)
	if err != nil {
		return []string{fmt.Sprintf("%s: %v", key, err)}
	}
	if l.Value <= 0 {
		return []string{key + " must be positive"}
	}
	return nil
}

// ValidatePosition checks a panel edge name.
func ValidatePosition(key, value string) []string {
	if _, err := entity.ParsePosition(value); err != nil {
		return []string{fmt.Sprintf("%s: %v", key, err)}
	}
	return nil
}

// ValidateMode checks a shell mode name. Empty values are accepted when
// optional is set.
func ValidateMode(key, value string, optional bool) []string {
	if value == "" && optional {
		return nil
	}
	if _, err := entity.ParseMode(value); err != nil {
		return []string{fmt.Sprintf("%s: %v", key, err)}
	}
	return nil
}
