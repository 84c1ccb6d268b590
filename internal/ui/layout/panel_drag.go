package layout

import (
	"github.com/bnema/sidepanel/internal/domain/entity"
	"github.com/bnema/sidepanel/internal/logging"
)

// Move drags the panel by delta cells (positive is rightward, cumulative
// since the gesture started). The first call snapshots the current offset;
// later calls position the panel relative to that snapshot, clamped between
// hidden and fully visible. With end set the panel snaps open when more than
// half of it is showing and closed otherwise.
//
// Move returns false, doing nothing, for fixed panels and panels whose mode
// does not slide them.
func (p *Panel) Move(delta float64, end bool) bool {
	if p.fixed || !p.mode.HasOwnTransition() {
		return false
	}
	if p.position == entity.PositionRight {
		delta = -delta
	}

	if p.drag == nil {
		p.cancelTransition()
		p.drag = entity.NewDragSession(p.surface.Offset(p.position), p.Width())
		p.surface.SetDisplayed(true)
	}

	offset := p.drag.Clamp(delta)
	p.surface.SetOffset(p.position, offset)
	if !end {
		return true
	}

	open := p.drag.Opens(offset)
	p.drag = nil
	p.commit(open)
	return true
}

// ResetMove drops the drag snapshot. The next Move starts a new drag from
// wherever the panel is.
func (p *Panel) ResetMove() {
	p.drag = nil
}

// commit settles a finished drag. Content is left to the shell.
func (p *Panel) commit(open bool) {
	logging.FromContext(p.ctx).Trace().Bool("open", open).Msg("panel drag committed")

	if open {
		if !p.show(false) {
			p.reveal(false)
		}
		return
	}
	if !p.hide(false) {
		p.conceal(false)
	}
}
