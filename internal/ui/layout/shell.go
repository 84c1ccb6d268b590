package layout

import (
	"context"
	"fmt"

	"github.com/bnema/sidepanel/internal/application/port"
	"github.com/bnema/sidepanel/internal/domain/entity"
	"github.com/bnema/sidepanel/internal/logging"
)

// Shell owns a content area and the side panels around it.
//
// The root surface frames the whole shell, the inner surface carries the
// content and is offset on its left and right edges to make room for panels.
// Fixed panels reserve their width; pushing panels shift the content while
// they are shown.
type Shell struct {
	ctx   context.Context
	root  port.Surface
	inner port.Surface

	panels []*Panel
	mode   entity.Mode

	panning    bool
	drag       *entity.ContentDrag
	transition port.Transition

	gesture port.Subscription
	media   []port.Subscription
	signals emitter
}

var _ Layout = (*Shell)(nil)

// NewShell creates an empty shell in push mode.
func NewShell(ctx context.Context, root, inner port.Surface) *Shell {
	return &Shell{
		ctx:   logging.WithComponent(ctx, "shell"),
		root:  root,
		inner: inner,
		mode:  entity.DefaultMode,
	}
}

// Root returns the outer surface.
func (s *Shell) Root() port.Surface { return s.root }

// Inner returns the content surface.
func (s *Shell) Inner() port.Surface { return s.inner }

// Mode returns the default mode given to appended panels.
func (s *Shell) Mode() entity.Mode { return s.mode }

// Panning reports whether a pan gesture is in progress.
func (s *Shell) Panning() bool { return s.panning }

// Panels returns the attached panels in insertion order.
func (s *Shell) Panels() []*Panel {
	out := make([]*Panel, len(s.panels))
	copy(out, s.panels)
	return out
}

// Offsets returns the current content insets.
func (s *Shell) Offsets() entity.Offsets {
	return entity.Offsets{
		Left:  s.inner.Offset(entity.PositionLeft),
		Right: s.inner.Offset(entity.PositionRight),
	}
}

// On registers a handler for a lifecycle signal. Shells only emit destroy.
func (s *Shell) On(signal entity.Signal, fn SignalHandler) {
	s.signals.on(signal, fn)
}

// SetMode changes the shell mode and applies it to every attached panel.
func (s *Shell) SetMode(mode entity.Mode) {
	if mode == "" {
		mode = entity.DefaultMode
	}
	s.mode = mode
	for _, p := range s.panels {
		p.mode = mode
		p.surface.SetLayer(mode.Layer())
		p.ResetMove()
		p.render()
	}
	s.FixAll()
}

// Append attaches a panel with the shell mode.
func (s *Shell) Append(p *Panel) error {
	return s.AppendMode(p, s.mode)
}

// AppendMode attaches a panel with a mode of its own.
func (s *Shell) AppendMode(p *Panel, mode entity.Mode) error {
	if p == nil {
		return ErrNilPanel
	}
	if p.owner != nil {
		return fmt.Errorf("append %q: %w", p.name, ErrPanelAttached)
	}

	log := logging.FromContext(s.ctx)
	for _, other := range s.panels {
		if other.position == p.position && !other.fixed && !p.fixed {
			log.Warn().
				Str("panel", p.name).
				Str("other", other.name).
				Str("position", string(p.position)).
				Msg("two unfixed panels share an edge, gestures reach the first one")
		}
	}

	p.SetMode(mode)
	s.panels = append(s.panels, p)
	p.owner = s
	log.Debug().Str("panel", p.name).Str("mode", string(mode)).Msg("panel attached")

	s.FixAll()
	return nil
}

// Remove detaches a panel. The remaining unfixed panels are hidden and the
// content margins recomputed.
func (s *Shell) Remove(p *Panel) error {
	for i, other := range s.panels {
		if other != p {
			continue
		}
		s.panels = append(s.panels[:i], s.panels[i+1:]...)
		p.owner = nil
		logging.FromContext(s.ctx).Debug().Str("panel", p.name).Msg("panel detached")
		s.FixAll()
		return nil
	}
	return ErrPanelNotAttached
}

// FixAll reserves room for every fixed panel and hides every other panel.
// Any content transition or drag in progress is abandoned.
func (s *Shell) FixAll() {
	for _, p := range s.panels {
		if !p.fixed {
			p.hide(false)
		}
	}

	s.cancelTransition()
	s.drag = nil

	neutral := s.neutralLayout()
	s.inner.SetOffset(entity.PositionLeft, neutral.Left)
	s.inner.SetOffset(entity.PositionRight, neutral.Right)
	for _, p := range s.panels {
		p.covered()
	}

	logging.FromContext(s.ctx).Debug().
		Float64("left", neutral.Left).
		Float64("right", neutral.Right).
		Msg("content margins fixed")
}

// Show moves the content aside for a panel that became visible. Any other
// unfixed panel still shown is hidden first, so at most one is open.
func (s *Shell) Show(p *Panel, onComplete func()) {
	if p == nil {
		return
	}
	var closed []*Panel
	for _, other := range s.panels {
		if other != p && other.hide(false) {
			closed = append(closed, other)
		}
	}
	done := func() {
		for _, other := range closed {
			other.covered()
		}
		if onComplete != nil {
			onComplete()
		}
	}

	switch {
	case p.mode.AppliesContentOffset():
		s.animate(s.openLayout(p), done)
	case len(closed) > 0:
		s.transit(closed[0], false, done)
	default:
		done()
	}
}

// Hide brings the content back after a panel became hidden.
func (s *Shell) Hide(p *Panel, onComplete func()) {
	s.transit(p, false, onComplete)
}

// Candidate returns the first unfixed panel on an edge, or nil.
func (s *Shell) Candidate(edge entity.Position) *Panel {
	for _, p := range s.panels {
		if p.position == edge && !p.fixed {
			return p
		}
	}
	return nil
}

// active returns the first visible unfixed panel, or nil.
func (s *Shell) active() *Panel {
	for _, p := range s.panels {
		if p.visible && !p.fixed {
			return p
		}
	}
	return nil
}

// reserved returns the width held by a fixed panel on an edge.
// When several are fixed on the same edge the last one wins.
func (s *Shell) reserved(edge entity.Position) (float64, bool) {
	width, ok := 0.0, false
	for _, p := range s.panels {
		if p.fixed && p.position == edge {
			width, ok = p.Width(), true
		}
	}
	return width, ok
}

// neutralLayout is the content layout with no unfixed panel shown.
func (s *Shell) neutralLayout() entity.Offsets {
	left, _ := s.reserved(entity.PositionLeft)
	right, _ := s.reserved(entity.PositionRight)
	return entity.Offsets{Left: left, Right: right}
}

// openLayout is the content layout with p shown: pushed by its width on its
// own edge and pulled on the opposite one, unless that edge is reserved.
func (s *Shell) openLayout(p *Panel) entity.Offsets {
	edge := p.position
	opposite := edge.Opposite()
	out := entity.Offsets{}.Set(edge, p.Width())
	if width, ok := s.reserved(opposite); ok {
		return out.Set(opposite, width)
	}
	return out.Set(opposite, -p.Width())
}

// transit animates the content to the layout of p open or closed. When p
// leaves the content alone onComplete runs straight away.
func (s *Shell) transit(p *Panel, open bool, onComplete func()) {
	if p == nil || !p.mode.AppliesContentOffset() {
		if onComplete != nil {
			onComplete()
		}
		return
	}
	target := s.neutralLayout()
	if open {
		target = s.openLayout(p)
	}
	s.animate(target, onComplete)
}

func (s *Shell) animate(target entity.Offsets, onComplete func()) {
	s.cancelTransition()
	s.drag = nil
	s.transition = s.inner.Transition(target.Targets(), onComplete)
}

func (s *Shell) cancelTransition() {
	if s.transition != nil {
		s.transition.Cancel()
		s.transition = nil
	}
}

// Destroy detaches and destroys every panel, releases subscriptions, emits
// the destroy signal and removes the root surface.
func (s *Shell) Destroy() {
	panels := s.panels
	s.panels = nil
	for _, p := range panels {
		p.owner = nil
		p.Destroy()
	}

	s.UnbindGestures()
	s.ClearMedia()
	s.cancelTransition()
	s.drag = nil
	s.panning = false

	s.signals.emit(entity.SignalDestroy)
	s.root.Remove()

	logging.FromContext(s.ctx).Debug().Int("panels", len(panels)).Msg("shell destroyed")
}
