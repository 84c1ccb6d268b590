package layout

import (
	"context"

	"github.com/bnema/sidepanel/internal/application/port"
	"github.com/bnema/sidepanel/internal/domain/entity"
	"github.com/bnema/sidepanel/internal/logging"
)

// Panel is a slide-out side panel anchored to the left or right edge.
//
// A panel is hidden, visible or fixed. Fixed panels are docked: always
// visible and reserving their width next to the content. The hidden offset
// of a panel is minus its width on its anchor edge, the visible offset is 0.
type Panel struct {
	ctx     context.Context
	name    string
	surface port.Surface

	position entity.Position
	mode     entity.Mode
	fixed    bool
	visible  bool

	drag       *entity.DragSession
	transition port.Transition

	owner   Layout
	signals emitter

	media     []port.Subscription
	mediaSpec *MediaSpec
	gesture   port.Subscription
}

// NewPanel creates a hidden, unfixed panel on the left edge in push mode.
func NewPanel(ctx context.Context, name string, surface port.Surface) *Panel {
	p := &Panel{
		ctx:      logging.WithPanel(ctx, name),
		name:     name,
		surface:  surface,
		position: entity.PositionLeft,
		mode:     entity.DefaultMode,
	}
	surface.SetLayer(p.mode.Layer())
	surface.SetBorderEdge(p.position.Opposite())
	p.render()
	return p
}

// Name returns the panel name.
func (p *Panel) Name() string { return p.name }

// Surface returns the rendering surface of the panel.
func (p *Panel) Surface() port.Surface { return p.surface }

// Position returns the anchor edge.
func (p *Panel) Position() entity.Position { return p.position }

// Mode returns the presentation mode.
func (p *Panel) Mode() entity.Mode { return p.mode }

// Fixed reports whether the panel is docked.
func (p *Panel) Fixed() bool { return p.fixed }

// Visible reports whether the panel is shown. Fixed panels are always visible.
func (p *Panel) Visible() bool { return p.visible }

// Width returns the rendered width of the panel.
func (p *Panel) Width() float64 { return p.surface.Width() }

// Offset returns the current rendered offset on the anchor edge.
func (p *Panel) Offset() float64 { return p.surface.Offset(p.position) }

// Owner returns the layout the panel is attached to, or nil.
func (p *Panel) Owner() Layout { return p.owner }

// State collapses the panel flags into a single state.
func (p *Panel) State() entity.PanelState {
	switch {
	case p.fixed:
		return entity.StateFixed
	case p.drag != nil:
		return entity.StateDragging
	case p.visible:
		return entity.StateVisible
	default:
		return entity.StateHidden
	}
}

// On registers a handler for a lifecycle signal.
func (p *Panel) On(signal entity.Signal, fn SignalHandler) {
	p.signals.on(signal, fn)
}

// SetPosition re-anchors the panel to another edge.
func (p *Panel) SetPosition(position entity.Position) {
	if position == p.position {
		return
	}
	p.surface.ClearOffset(p.position)
	p.position = position
	p.surface.SetBorderEdge(position.Opposite())
	p.ResetMove()
	p.render()

	logging.FromContext(p.ctx).Debug().Str("position", string(position)).Msg("panel re-anchored")
	p.relayoutOwner()
}

// SetMode changes the presentation mode and the stacking layer with it.
func (p *Panel) SetMode(mode entity.Mode) {
	if mode == "" {
		mode = entity.DefaultMode
	}
	p.mode = mode
	p.surface.SetLayer(mode.Layer())
	p.ResetMove()
	p.render()
	p.relayoutOwner()
}

// relayoutOwner refreshes the owner after a change that moved a shown panel.
func (p *Panel) relayoutOwner() {
	if p.owner != nil && (p.fixed || p.visible) {
		p.owner.FixAll()
	}
}

// Fix docks the panel. The owning layout recomputes its margins.
func (p *Panel) Fix() {
	p.setFixed(true)
}

// Unfix undocks the panel, leaving it hidden.
func (p *Panel) Unfix() {
	p.setFixed(false)
}

func (p *Panel) setFixed(fixed bool) {
	changed := p.fixed != fixed
	p.drag = nil
	p.fixed = fixed
	p.visible = fixed
	p.render()

	if changed {
		logging.FromContext(p.ctx).Debug().Bool("fixed", fixed).Msg("panel dock state changed")
	}
	if fixed {
		p.signals.emit(entity.SignalFix)
	} else {
		p.signals.emit(entity.SignalUnfix)
	}
	if p.owner != nil {
		p.owner.FixAll()
	}
}

// Show reveals the panel. It returns false when the panel is fixed or
// already visible.
func (p *Panel) Show() bool {
	return p.show(true)
}

// Hide conceals the panel. It returns false when the panel is fixed or
// already hidden.
func (p *Panel) Hide() bool {
	return p.hide(true)
}

// Toggle shows a hidden panel or hides a visible one.
func (p *Panel) Toggle() bool {
	if p.visible {
		return p.Hide()
	}
	return p.Show()
}

// show and hide with notify=false leave the content to the caller; the shell
// uses them when it moves the content itself and calls covered once the
// content is back in place.
func (p *Panel) show(notify bool) bool {
	if p.fixed || p.visible {
		return false
	}
	p.drag = nil
	p.visible = true
	p.reveal(notify)
	p.signals.emit(entity.SignalShow)
	return true
}

func (p *Panel) hide(notify bool) bool {
	if p.fixed || !p.visible {
		return false
	}
	p.drag = nil
	p.visible = false
	p.conceal(notify)
	p.signals.emit(entity.SignalHide)
	return true
}

func (p *Panel) reveal(notify bool) {
	p.surface.SetDisplayed(true)
	if p.mode.HasOwnTransition() {
		p.animate(0, nil)
	}
	if notify && p.owner != nil {
		p.owner.Show(p, nil)
	}
}

func (p *Panel) conceal(notify bool) {
	if p.mode.HasOwnTransition() {
		p.animate(-p.Width(), func() {
			if !p.visible && !p.fixed && p.drag == nil {
				p.surface.SetDisplayed(false)
			}
		})
	}
	if !notify {
		return
	}
	if p.owner != nil {
		p.owner.Hide(p, p.covered)
		return
	}
	p.covered()
}

// covered undisplays a hidden panel that does not slide. Under panels stay
// drawn until the content is back over them.
func (p *Panel) covered() {
	if p.mode.HasOwnTransition() || p.visible || p.fixed {
		return
	}
	p.surface.SetDisplayed(false)
}

func (p *Panel) animate(target float64, onComplete func()) {
	p.cancelTransition()
	p.transition = p.surface.Transition(
		[]entity.EdgeOffset{{Edge: p.position, Value: target}},
		onComplete,
	)
}

func (p *Panel) cancelTransition() {
	if p.transition != nil {
		p.transition.Cancel()
		p.transition = nil
	}
}

// render applies the offset of the current state immediately.
func (p *Panel) render() {
	p.cancelTransition()
	offset := 0.0
	if p.mode.HasOwnTransition() && !p.fixed && !p.visible {
		offset = -p.Width()
	}
	p.surface.SetOffset(p.position, offset)
	p.surface.SetDisplayed(p.fixed || p.visible)
}

// BindGestures marks taps inside a shown panel as handled so they do not
// reach the shell.
func (p *Panel) BindGestures(source port.GestureSource) {
	p.UnbindGestures()
	if source == nil {
		return
	}
	p.gesture = source.Attach(func(event *entity.GestureEvent) {
		if event.Kind != entity.GestureTap || !(p.visible || p.fixed) {
			return
		}
		if p.surface.Contains(event.X, event.Y) {
			event.StopPropagation()
		}
	})
}

// UnbindGestures releases the gesture subscription, if any.
func (p *Panel) UnbindGestures() {
	if p.gesture != nil {
		p.gesture.Destroy()
		p.gesture = nil
	}
}

// Destroy releases every subscription, emits the destroy signal and removes
// the surface. The panel must not be used afterwards.
func (p *Panel) Destroy() {
	p.UnbindGestures()
	p.ClearMedia()
	p.cancelTransition()
	p.drag = nil
	p.signals.emit(entity.SignalDestroy)
	if shell, ok := p.owner.(*Shell); ok {
		_ = shell.Remove(p)
	}
	p.owner = nil
	p.surface.Remove()

	logging.FromContext(p.ctx).Debug().Msg("panel destroyed")
}
