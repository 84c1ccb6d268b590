// Package port defines the interfaces the panel shell depends on.
package port

import "github.com/bnema/sidepanel/internal/domain/entity"

// Surface defines the port interface for a positioned element of the shell.
// The core reads rendered widths from it and writes edge offsets and display
// state to it. It abstracts the rendering layer (terminal cells, GTK, ...).
type Surface interface {
	// Width returns the current rendered width in cells.
	Width() float64

	// Offset returns the current rendered inset of an edge,
	// including the progress of a running transition.
	Offset(edge entity.Position) float64
	// SetOffset applies an edge inset immediately.
	SetOffset(edge entity.Position, value float64)
	// ClearOffset removes an edge inset so the element is no longer anchored to it.
	ClearOffset(edge entity.Position)

	// SetWidth and SetHeight set the requested size; percentages resolve
	// against the parent.
	SetWidth(width entity.Length)
	SetHeight(height entity.Length)

	// SetLayer sets the stacking order relative to the content layer (0).
	SetLayer(layer int)
	// SetBorderEdge draws the element border on one edge only.
	SetBorderEdge(edge entity.Position)
	// SetDisplayed toggles whether the element is drawn at all.
	SetDisplayed(displayed bool)

	// CSS-like classes toggling style variants.
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool

	// Contains reports whether a pointer position falls inside the element.
	Contains(x, y float64) bool

	// Transition starts animating the given edges to their targets.
	// onComplete, when non-nil, runs once after the animation finished.
	Transition(targets []entity.EdgeOffset, onComplete func()) Transition

	// Remove detaches the element from the rendering tree.
	Remove()
}

// Transition is a running, fire-and-forget animation.
type Transition interface {
	// Cancel stops the animation where it is. The completion callback
	// is never invoked after Cancel. Safe to call on finished transitions.
	Cancel()
	// Done reports whether the transition completed or was cancelled.
	Done() bool
}

// SurfaceFactory creates panel surfaces next to the shell content.
type SurfaceFactory interface {
	NewSurface(name string) Surface
}
