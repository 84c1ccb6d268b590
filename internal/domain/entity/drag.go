package entity

// DragSession is the snapshot taken on the first move of a panel drag.
// It lives only for one drag and is never shared between panels.
type DragSession struct {
	Start float64 // edge offset when the drag started
	Width float64 // panel width when the drag started
}

// NewDragSession snapshots the current offset and width.
func NewDragSession(start, width float64) *DragSession {
	return &DragSession{Start: start, Width: width}
}

// Clamp returns the offset reached after delta, bounded to [-Width, 0].
func (d *DragSession) Clamp(delta float64) float64 {
	value := d.Start + delta
	if value < -d.Width {
		return -d.Width
	}
	if value > 0 {
		return 0
	}
	return value
}

// Opens reports whether a drag ending at offset should snap open.
// The exact midpoint closes.
func (d *DragSession) Opens(offset float64) bool {
	return offset > -d.Width/2
}

// ContentDrag is the snapshot taken on the first move of a content drag.
// Displacement is measured from the neutral layout: positive values uncover
// the left side, negative values uncover the right side.
type ContentDrag struct {
	Start    float64 // displacement when the drag started
	MinShift float64 // lowest displacement (-width of the right candidate, or 0)
	MaxShift float64 // highest displacement (width of the left candidate, or 0)
}

// NewContentDrag snapshots the content displacement and its bounds.
func NewContentDrag(start, minShift, maxShift float64) *ContentDrag {
	return &ContentDrag{Start: start, MinShift: minShift, MaxShift: maxShift}
}

// Clamp returns the displacement reached after delta, bounded to [MinShift, MaxShift].
func (d *ContentDrag) Clamp(delta float64) float64 {
	value := d.Start + delta
	if value < d.MinShift {
		return d.MinShift
	}
	if value > d.MaxShift {
		return d.MaxShift
	}
	return value
}

// Commit returns which side ends open for a drag ending at shift.
// An empty position means neutral. Midpoints close, like panel drags.
func (d *ContentDrag) Commit(shift float64) Position {
	switch {
	case shift > 0 && shift > d.MaxShift/2:
		return PositionLeft
	case shift < 0 && shift < d.MinShift/2:
		return PositionRight
	default:
		return ""
	}
}
