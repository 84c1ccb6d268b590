package entity

import "fmt"

// ScriptAction is one kind of simulation step.
type ScriptAction string

const (
	ActionResize  ScriptAction = "resize"
	ActionPress   ScriptAction = "press"
	ActionMotion  ScriptAction = "motion"
	ActionRelease ScriptAction = "release"
	// ActionDrag presses at (X, Y), moves to (ToX, ToY) in Samples motions
	// spread over DurationMs, then releases.
	ActionDrag    ScriptAction = "drag"
	ActionGesture ScriptAction = "gesture"
	ActionWait    ScriptAction = "wait"
	ActionSettle  ScriptAction = "settle"
	ActionShow    ScriptAction = "show"
	ActionHide    ScriptAction = "hide"
	ActionToggle  ScriptAction = "toggle"
	ActionFix     ScriptAction = "fix"
	ActionUnfix   ScriptAction = "unfix"
	ActionMode    ScriptAction = "mode"
)

// Script is a replayable sequence of input and API calls.
type Script struct {
	Name string `yaml:"name"`
	// Viewport is applied before the first step when set.
	Width  float64      `yaml:"width"`
	Height float64      `yaml:"height"`
	Steps  []ScriptStep `yaml:"steps"`
}

// ScriptStep is a single step. Only the fields of its action are read.
type ScriptStep struct {
	Action ScriptAction `yaml:"action"`
	Label  string       `yaml:"label,omitempty"`

	X   float64 `yaml:"x,omitempty"`
	Y   float64 `yaml:"y,omitempty"`
	ToX float64 `yaml:"to_x,omitempty"`
	ToY float64 `yaml:"to_y,omitempty"`

	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	Panel   string      `yaml:"panel,omitempty"`
	Mode    Mode        `yaml:"mode,omitempty"`
	Gesture GestureKind `yaml:"gesture,omitempty"`
	Delta   float64     `yaml:"delta,omitempty"`

	DurationMs int `yaml:"duration_ms,omitempty"`
	Samples    int `yaml:"samples,omitempty"`
}

// Validate checks that the step carries what its action needs.
func (s ScriptStep) Validate() error {
	switch s.Action {
	case ActionResize:
		if s.Width <= 0 || s.Height <= 0 {
			return fmt.Errorf("resize needs a positive width and height")
		}
	case ActionPress, ActionMotion, ActionRelease, ActionSettle:
	case ActionDrag:
		if s.Samples < 0 || s.DurationMs < 0 {
			return fmt.Errorf("drag samples and duration_ms must be non-negative")
		}
	case ActionGesture:
		if !s.Gesture.IsPan() && !s.Gesture.IsDiscrete() {
			return fmt.Errorf("unknown gesture %q", s.Gesture)
		}
	case ActionWait:
		if s.DurationMs <= 0 {
			return fmt.Errorf("wait needs a positive duration_ms")
		}
	case ActionShow, ActionHide, ActionToggle, ActionFix, ActionUnfix:
		if s.Panel == "" {
			return fmt.Errorf("%s needs a panel", s.Action)
		}
	case ActionMode:
		if !s.Mode.IsValid() {
			return fmt.Errorf("invalid mode %q", s.Mode)
		}
	default:
		return fmt.Errorf("unknown action %q", s.Action)
	}
	return nil
}

// Validate checks every step and reports the first invalid one.
func (s *Script) Validate() error {
	if (s.Width > 0) != (s.Height > 0) {
		return fmt.Errorf("script viewport needs both width and height")
	}
	for i, step := range s.Steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}
