package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/sidepanel/internal/application/port"
	"github.com/bnema/sidepanel/internal/domain/entity"
	"github.com/bnema/sidepanel/internal/logging"
)

const defaultDragSamples = 8

// SimulateUseCase replays a script against a built shell, feeding pointer
// samples and viewport changes through the same ports the terminal uses.
type SimulateUseCase struct {
	pointer  port.PointerInput
	viewport port.Viewport
	clock    port.Clock
}

// NewSimulateUseCase creates a new SimulateUseCase.
func NewSimulateUseCase(pointer port.PointerInput, viewport port.Viewport, clock port.Clock) *SimulateUseCase {
	return &SimulateUseCase{
		pointer:  pointer,
		viewport: viewport,
		clock:    clock,
	}
}

// SimulateInput contains the script and the shell it drives.
type SimulateInput struct {
	Script *entity.Script
	Shell  *BuildShellOutput
	// Settle completes transitions after every step.
	Settle bool
}

// PanelSnapshot is the observable state of a panel after a step.
type PanelSnapshot struct {
	Name   string
	State  entity.PanelState
	Offset float64
	Width  float64
}

// SimulationRow is the state after one step. Row 0 is the initial state.
type SimulationRow struct {
	Step    int
	Action  string
	Content entity.Offsets
	Panels  []PanelSnapshot
}

// SimulateOutput lists one row per step.
type SimulateOutput struct {
	Rows []SimulationRow
}

// Execute runs every step in order and stops at the first failing one.
func (uc *SimulateUseCase) Execute(ctx context.Context, input SimulateInput) (*SimulateOutput, error) {
	if input.Script == nil || input.Shell == nil {
		return nil, fmt.Errorf("simulate: script and shell are required")
	}
	if err := input.Script.Validate(); err != nil {
		return nil, fmt.Errorf("simulate %q: %w", input.Script.Name, err)
	}
	log := logging.FromContext(ctx)

	if input.Script.Width > 0 {
		uc.viewport.Resize(input.Script.Width, input.Script.Height)
	}
	uc.clock.Settle()

	out := &SimulateOutput{}
	out.Rows = append(out.Rows, uc.snapshot(input.Shell, 0, "initial"))

	for i, step := range input.Script.Steps {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		if err := uc.apply(input.Shell, step); err != nil {
			return out, fmt.Errorf("step %d (%s): %w", i+1, step.Action, err)
		}
		if input.Settle {
			uc.clock.Settle()
		}

		label := step.Label
		if label == "" {
			label = describe(step)
		}
		row := uc.snapshot(input.Shell, i+1, label)
		log.Debug().
			Int("step", row.Step).
			Str("action", label).
			Float64("left", row.Content.Left).
			Float64("right", row.Content.Right).
			Msg("simulation step")
		out.Rows = append(out.Rows, row)
	}
	return out, nil
}

func (uc *SimulateUseCase) apply(built *BuildShellOutput, step entity.ScriptStep) error {
	shell := built.Shell
	switch step.Action {
	case entity.ActionResize:
		uc.viewport.Resize(step.Width, step.Height)
	case entity.ActionPress:
		uc.pointer.Press(step.X, step.Y)
	case entity.ActionMotion:
		uc.pointer.Motion(step.X, step.Y)
	case entity.ActionRelease:
		uc.pointer.Release(step.X, step.Y)
	case entity.ActionDrag:
		uc.drag(step)
	case entity.ActionGesture:
		shell.HandleGesture(&entity.GestureEvent{Kind: step.Gesture, DeltaX: step.Delta, X: step.X, Y: step.Y})
	case entity.ActionWait:
		uc.clock.Advance(time.Duration(step.DurationMs) * time.Millisecond)
	case entity.ActionSettle:
		uc.clock.Settle()
	case entity.ActionMode:
		shell.SetMode(step.Mode)
	default:
		panel, ok := built.Panel(step.Panel)
		if !ok {
			return fmt.Errorf("unknown panel %q", step.Panel)
		}
		switch step.Action {
		case entity.ActionShow:
			panel.Show()
		case entity.ActionHide:
			panel.Hide()
		case entity.ActionToggle:
			panel.Toggle()
		case entity.ActionFix:
			panel.Fix()
		case entity.ActionUnfix:
			panel.Unfix()
		}
	}
	return nil
}

func (uc *SimulateUseCase) drag(step entity.ScriptStep) {
	samples := step.Samples
	if samples == 0 {
		samples = defaultDragSamples
	}
	interval := time.Duration(step.DurationMs) * time.Millisecond / time.Duration(samples)

	uc.pointer.Press(step.X, step.Y)
	for i := 1; i <= samples; i++ {
		if interval > 0 {
			uc.clock.Advance(interval)
		}
		f := float64(i) / float64(samples)
		uc.pointer.Motion(step.X+(step.ToX-step.X)*f, step.Y+(step.ToY-step.Y)*f)
	}
	uc.pointer.Release(step.ToX, step.ToY)
}

func (uc *SimulateUseCase) snapshot(built *BuildShellOutput, step int, action string) SimulationRow {
	row := SimulationRow{
		Step:    step,
		Action:  action,
		Content: built.Shell.Offsets(),
	}
	for _, p := range built.Panels {
		row.Panels = append(row.Panels, PanelSnapshot{
			Name:   p.Name(),
			State:  p.State(),
			Offset: p.Offset(),
			Width:  p.Width(),
		})
	}
	return row
}

func describe(step entity.ScriptStep) string {
	switch step.Action {
	case entity.ActionResize:
		return fmt.Sprintf("resize %gx%g", step.Width, step.Height)
	case entity.ActionPress, entity.ActionMotion, entity.ActionRelease:
		return fmt.Sprintf("%s %g,%g", step.Action, step.X, step.Y)
	case entity.ActionDrag:
		return fmt.Sprintf("drag %g,%g -> %g,%g", step.X, step.Y, step.ToX, step.ToY)
	case entity.ActionGesture:
		if step.Gesture.IsPan() {
			return fmt.Sprintf("%s %+g", step.Gesture, step.Delta)
		}
		return string(step.Gesture)
	case entity.ActionWait:
		return fmt.Sprintf("wait %dms", step.DurationMs)
	case entity.ActionMode:
		return "mode " + string(step.Mode)
	case entity.ActionShow, entity.ActionHide, entity.ActionToggle, entity.ActionFix, entity.ActionUnfix:
		return string(step.Action) + " " + step.Panel
	default:
		return string(step.Action)
	}
}
