package port

//go:generate mockgen -source=input.go -destination=mocks/mock_input.go -package=mock_port

import "time"

// PointerInput receives raw pointer samples, in cells.
type PointerInput interface {
	Press(x, y float64)
	Motion(x, y float64)
	Release(x, y float64)
	Cancel()
}

// Viewport receives terminal size changes.
type Viewport interface {
	Resize(width, height float64)
}

// Clock is the time source shared by gestures and transitions.
type Clock interface {
	Now() time.Time
	// Advance moves time forward and runs the transitions that became due.
	Advance(d time.Duration)
	// Settle completes every running transition.
	Settle()
}
