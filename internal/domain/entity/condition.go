package entity

import (
	"fmt"
	"regexp"
	"strings"
)

// Viewport is the size of the terminal (or window) breakpoints are evaluated against.
type Viewport struct {
	Width  float64
	Height float64
	EmSize float64 // cells per em, 1 when unset
}

func (v Viewport) em() float64 {
	if v.EmSize <= 0 {
		return 1
	}
	return v.EmSize
}

// Feature is a single media feature test.
type Feature string

const (
	FeatureMinWidth  Feature = "min-width"
	FeatureMaxWidth  Feature = "max-width"
	FeatureMinHeight Feature = "min-height"
	FeatureMaxHeight Feature = "max-height"
)

// Clause is one "(feature: length)" test of a Condition.
type Clause struct {
	Feature Feature
	Length  Length
}

func (c Clause) matches(v Viewport) bool {
	switch c.Feature {
	case FeatureMinWidth:
		return v.Width >= c.Length.Resolve(v.Width, v.em())
	case FeatureMaxWidth:
		return v.Width <= c.Length.Resolve(v.Width, v.em())
	case FeatureMinHeight:
		return v.Height >= c.Length.Resolve(v.Height, v.em())
	case FeatureMaxHeight:
		return v.Height <= c.Length.Resolve(v.Height, v.em())
	default:
		return false
	}
}

// Condition is a conjunction of clauses, optionally negated as a whole.
// It covers the media query subset the shell needs:
//
//	(min-width: 64em)
//	(min-height: 48em) and (min-width: 64em)
//	not all and (min-width: 64em)
type Condition struct {
	Clauses []Clause
	Negated bool
}

// MinWidth builds "(min-width: l)".
func MinWidth(l Length) Condition {
	return Condition{Clauses: []Clause{{Feature: FeatureMinWidth, Length: l}}}
}

// MinHeight builds "(min-height: l)".
func MinHeight(l Length) Condition {
	return Condition{Clauses: []Clause{{Feature: FeatureMinHeight, Length: l}}}
}

// Not returns the negated condition.
func (c Condition) Not() Condition {
	clauses := make([]Clause, len(c.Clauses))
	copy(clauses, c.Clauses)
	return Condition{Clauses: clauses, Negated: !c.Negated}
}

// And returns the conjunction of both conditions. Negated operands are not supported
// by the query syntax, so And panics when either side is negated.
func (c Condition) And(other Condition) Condition {
	if c.Negated || other.Negated {
		panic("entity: And on a negated condition")
	}
	clauses := make([]Clause, 0, len(c.Clauses)+len(other.Clauses))
	clauses = append(clauses, c.Clauses...)
	clauses = append(clauses, other.Clauses...)
	return Condition{Clauses: clauses}
}

// Matches evaluates the condition against a viewport.
func (c Condition) Matches(v Viewport) bool {
	all := true
	for _, clause := range c.Clauses {
		if !clause.matches(v) {
			all = false
			break
		}
	}
	return all != c.Negated
}

// String formats the condition in media query syntax.
func (c Condition) String() string {
	parts := make([]string, 0, len(c.Clauses))
	for _, clause := range c.Clauses {
		parts = append(parts, fmt.Sprintf("(%s: %s)", clause.Feature, clause.Length))
	}
	s := strings.Join(parts, " and ")
	if c.Negated {
		return "not all and " + s
	}
	return s
}

var clausePattern = regexp.MustCompile(`^\(\s*(min-width|max-width|min-height|max-height)\s*:\s*([^)]+?)\s*\)$`)

// ParseCondition reads the media query subset described on Condition.
func ParseCondition(s string) (Condition, error) {
	query := strings.TrimSpace(strings.ToLower(s))
	var cond Condition

	if rest, ok := strings.CutPrefix(query, "not all and "); ok {
		cond.Negated = true
		query = strings.TrimSpace(rest)
	}
	if query == "" {
		return Condition{}, fmt.Errorf("empty media condition %q", s)
	}

	for _, part := range strings.Split(query, " and ") {
		m := clausePattern.FindStringSubmatch(strings.TrimSpace(part))
		if m == nil {
			return Condition{}, fmt.Errorf("unsupported media clause %q in %q", part, s)
		}
		l, err := ParseLength(m[2])
		if err != nil {
			return Condition{}, fmt.Errorf("media clause %q: %w", part, err)
		}
		cond.Clauses = append(cond.Clauses, Clause{Feature: Feature(m[1]), Length: l})
	}
	return cond, nil
}
