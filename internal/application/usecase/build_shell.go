package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bnema/sidepanel/internal/application/port"
	"github.com/bnema/sidepanel/internal/domain/entity"
	"github.com/bnema/sidepanel/internal/logging"
	"github.com/bnema/sidepanel/internal/ui/layout"
)

// ErrNoSurfaces is returned when the use case has no surface factory.
var ErrNoSurfaces = errors.New("surface factory is required")

// ShellSpec describes a shell and its panels, already parsed.
type ShellSpec struct {
	Mode entity.Mode
	// Media frames the root on large viewports. Nil fills the viewport.
	Media  *layout.ShellMediaSpec
	Panels []PanelSpec
}

// PanelSpec describes one panel.
type PanelSpec struct {
	// Name is generated when empty.
	Name     string
	Position entity.Position
	// Mode overrides the shell mode when set.
	Mode  entity.Mode
	Media layout.MediaSpec
}

// BuildShellUseCase composes a shell from a spec and binds it to breakpoints
// and gestures.
type BuildShellUseCase struct {
	surfaces    port.SurfaceFactory
	breakpoints port.BreakpointSource
	gestures    port.GestureSource
}

// NewBuildShellUseCase creates a new BuildShellUseCase. breakpoints and
// gestures may be nil, leaving the shell static.
func NewBuildShellUseCase(
	surfaces port.SurfaceFactory,
	breakpoints port.BreakpointSource,
	gestures port.GestureSource,
) *BuildShellUseCase {
	return &BuildShellUseCase{
		surfaces:    surfaces,
		breakpoints: breakpoints,
		gestures:    gestures,
	}
}

// BuildShellInput contains the surfaces and the spec to build.
type BuildShellInput struct {
	Root  port.Surface
	Inner port.Surface
	Spec  ShellSpec
}

// BuildShellOutput holds the shell and its panels in spec order.
type BuildShellOutput struct {
	Shell  *layout.Shell
	Panels []*layout.Panel
}

// Panel returns the panel with the given name.
func (o *BuildShellOutput) Panel(name string) (*layout.Panel, bool) {
	for _, p := range o.Panels {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Execute builds the shell. The shell binds gestures before its panels so
// panels see taps first.
func (uc *BuildShellUseCase) Execute(ctx context.Context, input BuildShellInput) (*BuildShellOutput, error) {
	if uc.surfaces == nil {
		return nil, ErrNoSurfaces
	}
	if input.Root == nil || input.Inner == nil {
		return nil, fmt.Errorf("build shell: root and inner surfaces are required")
	}
	log := logging.FromContext(ctx)

	shell := layout.NewShell(ctx, input.Root, input.Inner)
	shell.SetMode(input.Spec.Mode)
	if input.Spec.Media != nil {
		shell.SetMedia(uc.breakpoints, *input.Spec.Media)
	}
	if uc.gestures != nil {
		shell.BindGestures(uc.gestures)
	}

	out := &BuildShellOutput{Shell: shell}
	for i, spec := range input.Spec.Panels {
		if !spec.Position.IsValid() {
			shell.Destroy()
			return nil, fmt.Errorf("panel %d: invalid position %q", i, spec.Position)
		}
		name := spec.Name
		if name == "" {
			name = "panel-" + uuid.NewString()[:8]
		}

		panel := layout.NewPanel(ctx, name, uc.surfaces.NewSurface(name))
		panel.SetPosition(spec.Position)

		var err error
		if spec.Mode != "" {
			err = shell.AppendMode(panel, spec.Mode)
		} else {
			err = shell.Append(panel)
		}
		if err != nil {
			shell.Destroy()
			return nil, fmt.Errorf("panel %q: %w", name, err)
		}

		if !spec.Media.Width.IsZero() || !spec.Media.FixedAt.IsZero() {
			panel.SetMedia(uc.breakpoints, spec.Media)
		}
		if uc.gestures != nil {
			panel.BindGestures(uc.gestures)
		}
		out.Panels = append(out.Panels, panel)
	}

	log.Info().
		Str("mode", shell.Mode().String()).
		Int("panels", len(out.Panels)).
		Msg("shell built")
	return out, nil
}
