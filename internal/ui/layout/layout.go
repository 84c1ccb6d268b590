// Package layout implements the application shell: a main content area with
// slide-out side panels that dock, overlay or push the content, driven by
// gestures and breakpoints. Rendering, gesture recognition and media watching
// are reached through the ports in internal/application/port.
//
// Everything in this package runs on the UI event loop. No method blocks and
// none is safe for concurrent use; adapters must deliver gesture, breakpoint
// and transition callbacks on the same goroutine.
package layout

import (
	"errors"

	"github.com/bnema/sidepanel/internal/domain/entity"
)

var (
	// ErrNilPanel is returned when a nil panel is appended.
	ErrNilPanel = errors.New("panel is nil")
	// ErrPanelAttached is returned when a panel already belongs to a shell.
	ErrPanelAttached = errors.New("panel is already attached to a shell")
	// ErrPanelNotAttached is returned when removing a panel the shell does not own.
	ErrPanelNotAttached = errors.New("panel is not attached to this shell")
)

// Layout is the narrow view a panel has of its owning shell.
type Layout interface {
	// FixAll recomputes content margins from the fixed panels and hides the others.
	FixAll()
	// Show moves the content for a panel that became visible.
	Show(panel *Panel, onComplete func())
	// Hide moves the content back for a panel that became hidden.
	Hide(panel *Panel, onComplete func())
}

// SignalHandler observes lifecycle signals.
type SignalHandler func(signal entity.Signal)

type emitter struct {
	handlers map[entity.Signal][]SignalHandler
}

func (e *emitter) on(signal entity.Signal, fn SignalHandler) {
	if fn == nil {
		return
	}
	if e.handlers == nil {
		e.handlers = make(map[entity.Signal][]SignalHandler)
	}
	e.handlers[signal] = append(e.handlers[signal], fn)
}

func (e *emitter) emit(signal entity.Signal) {
	for _, fn := range e.handlers[signal] {
		fn(signal)
	}
}
