// Package media evaluates viewport breakpoints for the panel shell.
package media

import (
	"context"
	"fmt"

	"github.com/bnema/sidepanel/internal/application/port"
	"github.com/bnema/sidepanel/internal/domain/entity"
	"github.com/bnema/sidepanel/internal/logging"
)

// Watcher implements port.BreakpointSource over a viewport fed by the
// terminal. Callbacks run synchronously from Watch and Resize, on the
// caller's goroutine.
type Watcher struct {
	ctx      context.Context
	emSize   float64
	viewport *entity.Viewport
	watches  []*watch
}

var _ port.BreakpointSource = (*Watcher)(nil)

type watch struct {
	owner     *Watcher
	cond      entity.Condition
	fn        func(matched bool)
	matched   bool
	evaluated bool
	destroyed bool
}

// Destroy stops the watch. The callback is not invoked afterwards.
func (w *watch) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.owner.forget(w)
}

// NewWatcher creates a watcher with no viewport yet. emSize is the number
// of cells per em; values below 1 mean 1.
func NewWatcher(ctx context.Context, emSize float64) *Watcher {
	if emSize < 1 {
		emSize = 1
	}
	return &Watcher{
		ctx:    logging.WithComponent(ctx, "media"),
		emSize: emSize,
	}
}

// Watch registers fn for cond. When the viewport is already known fn runs
// immediately with the current match state.
func (w *Watcher) Watch(cond entity.Condition, fn func(matched bool)) port.Subscription {
	wt := &watch{owner: w, cond: cond, fn: fn}
	w.watches = append(w.watches, wt)
	if w.viewport != nil {
		w.evaluate(wt)
	}
	return wt
}

// WatchQuery parses a media query such as "(min-width: 64em)" and watches it.
func (w *Watcher) WatchQuery(query string, fn func(matched bool)) (port.Subscription, error) {
	cond, err := entity.ParseCondition(query)
	if err != nil {
		return nil, fmt.Errorf("watch query: %w", err)
	}
	return w.Watch(cond, fn), nil
}

// Resize sets the viewport size in cells and fires every watch whose match
// state changed.
func (w *Watcher) Resize(width, height float64) {
	if w.viewport != nil && w.viewport.Width == width && w.viewport.Height == height {
		return
	}
	w.viewport = &entity.Viewport{Width: width, Height: height, EmSize: w.emSize}
	logging.FromContext(w.ctx).Debug().
		Float64("width", width).
		Float64("height", height).
		Msg("viewport resized")
	w.evaluateAll()
}

// SetEmSize changes the em size and re-evaluates every watch.
func (w *Watcher) SetEmSize(emSize float64) {
	if emSize < 1 {
		emSize = 1
	}
	if emSize == w.emSize {
		return
	}
	w.emSize = emSize
	if w.viewport == nil {
		return
	}
	w.viewport.EmSize = emSize
	w.evaluateAll()
}

// Viewport returns the current viewport, if one was set.
func (w *Watcher) Viewport() (entity.Viewport, bool) {
	if w.viewport == nil {
		return entity.Viewport{}, false
	}
	return *w.viewport, true
}

// Len returns the number of live watches.
func (w *Watcher) Len() int {
	return len(w.watches)
}

// Destroy drops every watch.
func (w *Watcher) Destroy() {
	for _, wt := range w.watches {
		wt.destroyed = true
	}
	w.watches = nil
}

// evaluateAll walks a snapshot: callbacks may add or destroy watches.
func (w *Watcher) evaluateAll() {
	snapshot := make([]*watch, len(w.watches))
	copy(snapshot, w.watches)
	for _, wt := range snapshot {
		w.evaluate(wt)
	}
}

func (w *Watcher) evaluate(wt *watch) {
	if wt.destroyed {
		return
	}
	matched := wt.cond.Matches(*w.viewport)
	if wt.evaluated && matched == wt.matched {
		return
	}
	wt.evaluated = true
	wt.matched = matched

	logging.FromContext(w.ctx).Trace().
		Str("query", wt.cond.String()).
		Bool("matched", matched).
		Msg("breakpoint")
	wt.fn(matched)
}

func (w *Watcher) forget(target *watch) {
	for i, wt := range w.watches {
		if wt == target {
			w.watches = append(w.watches[:i:i], w.watches[i+1:]...)
			return
		}
	}
}
