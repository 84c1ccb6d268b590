package layout

import (
	"github.com/bnema/sidepanel/internal/application/port"
	"github.com/bnema/sidepanel/internal/domain/entity"
)

// ShellMediaSpec bounds the root surface to a maximum frame size.
type ShellMediaSpec struct {
	Width  entity.Length
	Height entity.Length
}

// SetMedia caps the root surface at the frame size and toggles the framed
// class when the viewport is larger in both directions. Below a dimension
// the root fills the viewport in that direction.
func (s *Shell) SetMedia(source port.BreakpointSource, spec ShellMediaSpec) {
	s.ClearMedia()
	if source == nil {
		return
	}
	full := entity.Percent(100)

	if !spec.Width.IsZero() && !spec.Height.IsZero() {
		framed := entity.MinHeight(spec.Height).And(entity.MinWidth(spec.Width))
		s.media = append(s.media, source.Watch(framed, func(matched bool) {
			if matched {
				s.root.AddClass(entity.ClassFramed)
			} else {
				s.root.RemoveClass(entity.ClassFramed)
			}
		}))
	}
	if !spec.Height.IsZero() {
		s.media = append(s.media, source.Watch(entity.MinHeight(spec.Height), func(matched bool) {
			if matched {
				s.root.SetHeight(spec.Height)
			} else {
				s.root.SetHeight(full)
			}
		}))
	}
	if !spec.Width.IsZero() {
		s.media = append(s.media, source.Watch(entity.MinWidth(spec.Width), func(matched bool) {
			if matched {
				s.root.SetWidth(spec.Width)
			} else {
				s.root.SetWidth(full)
			}
			s.refreshReserved()
		}))
	}
}

// ClearMedia releases every breakpoint subscription.
func (s *Shell) ClearMedia() {
	for _, sub := range s.media {
		sub.Destroy()
	}
	s.media = nil
}

// refreshReserved re-applies the fixed margins after the root was resized,
// unless the content is away from its neutral layout.
func (s *Shell) refreshReserved() {
	if s.drag != nil || s.active() != nil {
		return
	}
	if _, ok := s.reserved(entity.PositionLeft); !ok {
		if _, ok := s.reserved(entity.PositionRight); !ok {
			return
		}
	}
	s.cancelTransition()
	neutral := s.neutralLayout()
	s.inner.SetOffset(entity.PositionLeft, neutral.Left)
	s.inner.SetOffset(entity.PositionRight, neutral.Right)
}
