package entity

// GestureKind names a classified pointer gesture.
type GestureKind string

const (
	GestureTap        GestureKind = "tap"
	GesturePanStart   GestureKind = "panstart"
	GesturePanMove    GestureKind = "panmove"
	GesturePanLeft    GestureKind = "panleft"
	GesturePanRight   GestureKind = "panright"
	GesturePanEnd     GestureKind = "panend"
	GestureSwipeLeft  GestureKind = "swipeleft"
	GestureSwipeRight GestureKind = "swiperight"
)

// IsPan reports whether the kind belongs to a continuous pan sequence.
func (k GestureKind) IsPan() bool {
	switch k {
	case GesturePanStart, GesturePanMove, GesturePanLeft, GesturePanRight, GesturePanEnd:
		return true
	default:
		return false
	}
}

// IsDiscrete reports whether the kind is a standalone tap or swipe.
func (k GestureKind) IsDiscrete() bool {
	switch k {
	case GestureTap, GestureSwipeLeft, GestureSwipeRight:
		return true
	default:
		return false
	}
}

// GestureEvent is emitted by a gesture source.
// DeltaX is cumulative since the pointer went down, positive is rightward.
type GestureEvent struct {
	Kind   GestureKind
	DeltaX float64
	X, Y   float64 // pointer position in cells

	stopped bool
}

// StopPropagation prevents handlers attached earlier from seeing the event.
func (e *GestureEvent) StopPropagation() {
	e.stopped = true
}

// Stopped reports whether a handler stopped propagation.
func (e *GestureEvent) Stopped() bool {
	return e.stopped
}
