package layout

import (
	"github.com/bnema/sidepanel/internal/application/port"
	"github.com/bnema/sidepanel/internal/domain/entity"
	"github.com/bnema/sidepanel/internal/logging"
)

// BindGestures routes gestures from source to the shell. Panels bound to the
// same source after the shell see taps first.
func (s *Shell) BindGestures(source port.GestureSource) {
	s.UnbindGestures()
	if source == nil {
		return
	}
	s.gesture = source.Attach(s.HandleGesture)
}

// UnbindGestures releases the gesture subscription, if any.
func (s *Shell) UnbindGestures() {
	if s.gesture != nil {
		s.gesture.Destroy()
		s.gesture = nil
	}
}

// HandleGesture dispatches one classified gesture.
func (s *Shell) HandleGesture(event *entity.GestureEvent) {
	if event == nil || event.Stopped() {
		return
	}
	logging.FromContext(s.ctx).Trace().
		Str("kind", string(event.Kind)).
		Float64("delta_x", event.DeltaX).
		Msg("gesture")

	switch {
	case event.Kind.IsPan():
		s.pan(event)
	case event.Kind.IsDiscrete():
		s.swipe(event)
	}
}

// pan drags the shown panel, or every unfixed panel when none is shown, and
// the content along with them.
func (s *Shell) pan(event *entity.GestureEvent) {
	if event.Kind == entity.GesturePanStart {
		s.panning = true
		s.ResetMove()
	}
	end := event.Kind == entity.GesturePanEnd

	if p := s.active(); p != nil {
		p.Move(event.DeltaX, end)
	} else {
		for _, p := range s.panels {
			if !p.fixed {
				p.Move(event.DeltaX, end)
			}
		}
	}
	s.Move(event.DeltaX, end)

	if end {
		s.panning = false
	}
}

// swipe handles taps and swipes. A swipe towards an edge first closes the
// panel shown on the other edge; only a second swipe opens its own panel.
func (s *Shell) swipe(event *entity.GestureEvent) {
	s.panning = false
	left := s.Candidate(entity.PositionLeft)
	right := s.Candidate(entity.PositionRight)

	switch event.Kind {
	case entity.GestureTap:
		// Tapping the content dismisses an overlay; pushed content stays usable.
		for _, p := range []*Panel{left, right} {
			if p != nil && p.visible && !p.mode.AppliesContentOffset() {
				p.hide(false)
				s.transit(p, false, p.covered)
				return
			}
		}
	case entity.GestureSwipeRight:
		s.swipeToward(left, right)
	case entity.GestureSwipeLeft:
		s.swipeToward(right, left)
	}
}

func (s *Shell) swipeToward(opening, closing *Panel) {
	if closing != nil && closing.visible {
		closing.hide(false)
		s.transit(closing, false, closing.covered)
		return
	}
	if opening != nil {
		opening.show(false)
		s.transit(opening, true, nil)
	}
}
