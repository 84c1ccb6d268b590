package layout

import (
	"github.com/bnema/sidepanel/internal/application/port"
	"github.com/bnema/sidepanel/internal/domain/entity"
	"github.com/bnema/sidepanel/internal/logging"
)

// DefaultNarrowWidth is the panel width used below its design width.
var DefaultNarrowWidth = entity.Percent(85)

// MediaSpec configures the responsive behaviour of a panel.
type MediaSpec struct {
	// Width is the design width, used while the viewport is at least this wide.
	Width entity.Length
	// Narrow replaces Width on smaller viewports. Defaults to 85%.
	Narrow entity.Length
	// FixedAt docks the panel while the viewport is at least this wide.
	// Zero never docks.
	FixedAt entity.Length
}

// SetMedia binds the panel width and dock state to viewport breakpoints.
// Earlier bindings are released.
func (p *Panel) SetMedia(source port.BreakpointSource, spec MediaSpec) {
	p.ClearMedia()
	if spec.Narrow.IsZero() {
		spec.Narrow = DefaultNarrowWidth
	}
	p.mediaSpec = &spec
	p.applyWidth(spec.Width)
	if source == nil {
		return
	}

	if !spec.Width.IsZero() {
		p.media = append(p.media, source.Watch(entity.MinWidth(spec.Width), func(matched bool) {
			if matched {
				p.applyWidth(spec.Width)
			} else {
				p.applyWidth(spec.Narrow)
			}
		}))
	}
	if !spec.FixedAt.IsZero() {
		p.media = append(p.media, source.Watch(entity.MinWidth(spec.FixedAt), func(matched bool) {
			logging.FromContext(p.ctx).Debug().
				Str("fixed_at", spec.FixedAt.String()).
				Bool("matched", matched).
				Msg("dock breakpoint crossed")
			if matched {
				p.Fix()
			} else {
				p.Unfix()
			}
		}))
	}
}

// Media returns the bound media spec, if any.
func (p *Panel) Media() (MediaSpec, bool) {
	if p.mediaSpec == nil {
		return MediaSpec{}, false
	}
	return *p.mediaSpec, true
}

// ClearMedia releases every breakpoint subscription.
func (p *Panel) ClearMedia() {
	for _, sub := range p.media {
		sub.Destroy()
	}
	p.media = nil
	p.mediaSpec = nil
}

func (p *Panel) applyWidth(width entity.Length) {
	if width.IsZero() {
		return
	}
	p.surface.SetWidth(width)
	switch {
	case p.fixed:
		if p.owner != nil {
			p.owner.FixAll()
		}
	case !p.visible && p.drag == nil:
		p.render()
	}
}
