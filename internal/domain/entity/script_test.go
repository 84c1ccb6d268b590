package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptStep_Validate(t *testing.T) {
	tests := []struct {
		name    string
		step    ScriptStep
		wantErr string
	}{
		{name: "resize", step: ScriptStep{Action: ActionResize, Width: 80, Height: 24}},
		{name: "resize without height", step: ScriptStep{Action: ActionResize, Width: 80}, wantErr: "positive width"},
		{name: "press", step: ScriptStep{Action: ActionPress, X: 3, Y: 4}},
		{name: "drag", step: ScriptStep{Action: ActionDrag, ToX: 20, Samples: 4}},
		{name: "drag negative samples", step: ScriptStep{Action: ActionDrag, Samples: -1}, wantErr: "non-negative"},
		{name: "gesture", step: ScriptStep{Action: ActionGesture, Gesture: GestureSwipeRight}},
		{name: "unknown gesture", step: ScriptStep{Action: ActionGesture, Gesture: "pinch"}, wantErr: "pinch"},
		{name: "wait", step: ScriptStep{Action: ActionWait, DurationMs: 100}},
		{name: "wait without duration", step: ScriptStep{Action: ActionWait}, wantErr: "duration_ms"},
		{name: "show", step: ScriptStep{Action: ActionShow, Panel: "menu"}},
		{name: "fix without panel", step: ScriptStep{Action: ActionFix}, wantErr: "fix needs a panel"},
		{name: "mode", step: ScriptStep{Action: ActionMode, Mode: ModeUnder}},
		{name: "bad mode", step: ScriptStep{Action: ActionMode, Mode: "slide"}, wantErr: "slide"},
		{name: "unknown", step: ScriptStep{Action: "jump"}, wantErr: "unknown action"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.step.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestScript_Validate(t *testing.T) {
	s := &Script{Width: 100, Height: 30, Steps: []ScriptStep{
		{Action: ActionShow, Panel: "menu"},
		{Action: ActionWait},
	}}
	err := s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 2")

	s = &Script{Width: 100}
	assert.Error(t, s.Validate())

	s = &Script{Steps: []ScriptStep{{Action: ActionSettle}}}
	assert.NoError(t, s.Validate())
}
