package layout

import (
	"github.com/bnema/sidepanel/internal/domain/entity"
	"github.com/bnema/sidepanel/internal/logging"
)

// Move drags the content by delta cells, cumulative since the gesture
// started. The content travels between the layouts of the left and right
// candidate panels shown; while a panel is shown only its own side is
// reachable. With end set the content settles on the side uncovered by more
// than half of its panel, or back to neutral.
//
// Move returns false when no panel can push the content.
func (s *Shell) Move(delta float64, end bool) bool {
	left, right := s.dragCandidates()
	if left == nil && right == nil {
		return false
	}

	if s.drag == nil {
		s.cancelTransition()
		minShift, maxShift := 0.0, 0.0
		if left != nil {
			maxShift = left.Width()
		}
		if right != nil {
			minShift = -right.Width()
		}
		s.drag = entity.NewContentDrag(s.shift(), minShift, maxShift)
		for _, p := range []*Panel{left, right} {
			if p != nil && !p.mode.HasOwnTransition() {
				p.surface.SetDisplayed(true)
			}
		}
	}

	shift := s.drag.Clamp(delta)
	s.applyShift(shift)
	if !end {
		return true
	}

	side := s.drag.Commit(shift)
	s.drag = nil
	logging.FromContext(s.ctx).Trace().
		Float64("shift", shift).
		Str("side", string(side)).
		Msg("content drag committed")

	switch side {
	case entity.PositionLeft:
		s.settleOpen(left, right)
	case entity.PositionRight:
		s.settleOpen(right, left)
	default:
		s.settleClosed(left, right)
	}
	return true
}

// settleOpen finishes a drag that uncovered open. Panels that do not slide
// follow the content: open is shown, other is undisplayed.
func (s *Shell) settleOpen(open, other *Panel) {
	if !open.mode.HasOwnTransition() {
		open.show(false)
	}
	if other != nil {
		other.covered()
	}
	s.transit(open, true, nil)
}

// settleClosed finishes a drag back to the neutral layout. Panels that do not
// slide are hidden now and undisplayed once the content covers them.
func (s *Shell) settleClosed(left, right *Panel) {
	var closing []*Panel
	for _, p := range []*Panel{left, right} {
		if p == nil {
			continue
		}
		if !p.mode.HasOwnTransition() {
			p.hide(false)
		}
		closing = append(closing, p)
	}
	s.transit(closing[0], false, func() {
		for _, p := range closing {
			p.covered()
		}
	})
}

// ResetMove drops the content drag snapshot and those of every panel.
func (s *Shell) ResetMove() {
	s.drag = nil
	for _, p := range s.panels {
		p.ResetMove()
	}
}

// dragCandidates returns the panels whose layouts bound a content drag.
func (s *Shell) dragCandidates() (left, right *Panel) {
	if p := s.active(); p != nil {
		if !p.mode.AppliesContentOffset() {
			return nil, nil
		}
		if p.position == entity.PositionLeft {
			return p, nil
		}
		return nil, p
	}

	left = s.Candidate(entity.PositionLeft)
	right = s.Candidate(entity.PositionRight)
	if left != nil && !left.mode.AppliesContentOffset() {
		left = nil
	}
	if right != nil && !right.mode.AppliesContentOffset() {
		right = nil
	}
	return left, right
}

// shift is the current content displacement from the neutral layout,
// positive towards the right.
func (s *Shell) shift() float64 {
	if _, ok := s.reserved(entity.PositionLeft); !ok {
		return s.inner.Offset(entity.PositionLeft)
	}
	if _, ok := s.reserved(entity.PositionRight); !ok {
		return -s.inner.Offset(entity.PositionRight)
	}
	return 0
}

// applyShift offsets the content from the neutral layout. Edges held by a
// fixed panel keep their reservation.
func (s *Shell) applyShift(shift float64) {
	neutral := s.neutralLayout()
	if _, ok := s.reserved(entity.PositionLeft); !ok {
		s.inner.SetOffset(entity.PositionLeft, neutral.Left+shift)
	}
	if _, ok := s.reserved(entity.PositionRight); !ok {
		s.inner.SetOffset(entity.PositionRight, neutral.Right-shift)
	}
}
