// Package bootstrap wires configuration, terminal rendering and the panel shell.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/sidepanel/internal/application/port"
	"github.com/bnema/sidepanel/internal/application/usecase"
	"github.com/bnema/sidepanel/internal/domain/entity"
	"github.com/bnema/sidepanel/internal/infrastructure/config"
	"github.com/bnema/sidepanel/internal/infrastructure/gesture"
	"github.com/bnema/sidepanel/internal/infrastructure/media"
	"github.com/bnema/sidepanel/internal/infrastructure/terminal"
	"github.com/bnema/sidepanel/internal/logging"
	"github.com/bnema/sidepanel/internal/ui/layout"
)

// Runtime is a shell built from configuration, rendered on terminal elements
// and fed by a breakpoint watcher and a gesture recognizer. All methods must
// be called from the UI goroutine.
type Runtime struct {
	ctx    context.Context
	config *config.Config

	Root       *terminal.Element
	Content    *terminal.Element
	Animator   *terminal.Animator
	Watcher    *media.Watcher
	Recognizer *gesture.Recognizer
	Built      *usecase.BuildShellOutput
}

var _ port.Viewport = (*Runtime)(nil)

// NewRuntime builds the shell described by cfg. The viewport is unknown until
// the first Resize.
func NewRuntime(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	spec, err := ShellSpecFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	ctx = logging.WithComponent(ctx, "runtime")

	animator := terminal.NewAnimator(transitionDuration(cfg.Transition))
	root := terminal.NewRoot("root", animator)
	root.SetEmSize(cfg.EmSize)
	content := root.NewChild("content")
	content.SetContent("sidepanel", contentLines(cfg))

	watcher := media.NewWatcher(ctx, cfg.EmSize)
	recognizer := gesture.NewRecognizer(ctx, GestureConfig(cfg.Gesture))

	built, err := usecase.NewBuildShellUseCase(root, watcher, recognizer).Execute(ctx, usecase.BuildShellInput{
		Root:  root,
		Inner: content,
		Spec:  spec,
	})
	if err != nil {
		return nil, fmt.Errorf("build shell: %w", err)
	}

	for i, p := range built.Panels {
		if el, ok := p.Surface().(*terminal.Element); ok {
			el.SetContent(cfg.Panels[i].Title, cfg.Panels[i].Items)
		}
	}

	return &Runtime{
		ctx:        ctx,
		config:     cfg,
		Root:       root,
		Content:    content,
		Animator:   animator,
		Watcher:    watcher,
		Recognizer: recognizer,
		Built:      built,
	}, nil
}

// Shell returns the built shell.
func (r *Runtime) Shell() *layout.Shell {
	return r.Built.Shell
}

// Panels returns the panels in configuration order.
func (r *Runtime) Panels() []*layout.Panel {
	return r.Built.Panels
}

// Config returns the configuration the runtime currently follows.
func (r *Runtime) Config() *config.Config {
	return r.config
}

// Resize applies a terminal size to the root and the breakpoints.
func (r *Runtime) Resize(width, height float64) {
	r.Root.SetViewport(width, height)
	r.Watcher.Resize(width, height)
}

// Apply follows a configuration change: mode, gesture thresholds, transition
// duration and em size change in place. Panel lists need a restart.
func (r *Runtime) Apply(cfg *config.Config) error {
	mode, err := entity.ParseMode(cfg.Shell.Mode)
	if err != nil {
		return err
	}
	log := logging.FromContext(r.ctx)

	if len(cfg.Panels) != len(r.config.Panels) {
		log.Warn().
			Int("configured", len(cfg.Panels)).
			Int("running", len(r.config.Panels)).
			Msg("panel list changed, restart to apply")
	}

	shell := r.Built.Shell
	if mode != shell.Mode() {
		shell.SetMode(mode)
	}
	// SetMode resets every panel; restore the per-panel overrides.
	for i, p := range r.Built.Panels {
		own := mode
		if i < len(cfg.Panels) && cfg.Panels[i].Mode != "" {
			if own, err = entity.ParseMode(cfg.Panels[i].Mode); err != nil {
				return fmt.Errorf("panels[%d].mode: %w", i, err)
			}
		}
		if own != p.Mode() {
			p.SetMode(own)
		}
	}

	r.Recognizer.SetConfig(GestureConfig(cfg.Gesture))
	r.Animator.SetDuration(transitionDuration(cfg.Transition))
	r.Root.SetEmSize(cfg.EmSize)
	r.Watcher.SetEmSize(cfg.EmSize)

	r.config = cfg
	log.Info().Str("mode", mode.String()).Msg("configuration applied")
	return nil
}

// Destroy tears the shell down and stops running transitions.
func (r *Runtime) Destroy() {
	r.Animator.Cancel()
	r.Built.Shell.Destroy()
	r.Watcher.Destroy()
}

// ShellSpecFromConfig parses the configured lengths and modes.
func ShellSpecFromConfig(cfg *config.Config) (usecase.ShellSpec, error) {
	var spec usecase.ShellSpec

	mode, err := entity.ParseMode(cfg.Shell.Mode)
	if err != nil {
		return spec, fmt.Errorf("shell.mode: %w", err)
	}
	spec.Mode = mode

	if cfg.Shell.Framed {
		width, err := entity.ParseLength(cfg.Shell.Width)
		if err != nil {
			return spec, fmt.Errorf("shell.width: %w", err)
		}
		height, err := entity.ParseLength(cfg.Shell.Height)
		if err != nil {
			return spec, fmt.Errorf("shell.height: %w", err)
		}
		spec.Media = &layout.ShellMediaSpec{Width: width, Height: height}
	}

	for i, pc := range cfg.Panels {
		ps, err := panelSpec(pc)
		if err != nil {
			return spec, fmt.Errorf("panels[%d]: %w", i, err)
		}
		spec.Panels = append(spec.Panels, ps)
	}
	return spec, nil
}

func panelSpec(pc config.PanelConfig) (usecase.PanelSpec, error) {
	ps := usecase.PanelSpec{Name: pc.Name}

	position, err := entity.ParsePosition(pc.Position)
	if err != nil {
		return ps, err
	}
	ps.Position = position

	if pc.Mode != "" {
		if ps.Mode, err = entity.ParseMode(pc.Mode); err != nil {
			return ps, err
		}
	}

	if ps.Media.Width, err = entity.ParseLength(pc.Width); err != nil {
		return ps, fmt.Errorf("width: %w", err)
	}
	if pc.NarrowWidth != "" {
		if ps.Media.Narrow, err = entity.ParseLength(pc.NarrowWidth); err != nil {
			return ps, fmt.Errorf("narrow_width: %w", err)
		}
	}
	if pc.FixedAt != "" {
		if ps.Media.FixedAt, err = entity.ParseLength(pc.FixedAt); err != nil {
			return ps, fmt.Errorf("fixed_at: %w", err)
		}
	}
	return ps, nil
}

// GestureConfig converts configured thresholds for the recognizer.
func GestureConfig(gc config.GestureConfig) gesture.Config {
	return gesture.Config{
		TapSlop:          gc.TapSlop,
		TapTimeout:       time.Duration(gc.TapTimeoutMs) * time.Millisecond,
		PanThreshold:     gc.PanThreshold,
		SwipeVelocity:    gc.SwipeVelocity,
		SwipeMinDistance: gc.SwipeMinDistance,
	}
}

func transitionDuration(tc config.TransitionConfig) time.Duration {
	return time.Duration(tc.DurationMs) * time.Millisecond
}

func contentLines(cfg *config.Config) []string {
	lines := []string{"", "Drag or swipe sideways to move the panels."}
	for _, pc := range cfg.Panels {
		if pc.Key == "" {
			continue
		}
		name := pc.Title
		if name == "" {
			name = pc.Name
		}
		lines = append(lines, fmt.Sprintf("  %s  toggle %s (%s)", pc.Key, name, pc.Position))
	}
	return lines
}
