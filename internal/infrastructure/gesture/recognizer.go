// Package gesture classifies raw pointer input into taps, pans and swipes.
package gesture

import (
	"context"
	"math"
	"time"

	"github.com/bnema/sidepanel/internal/application/port"
	"github.com/bnema/sidepanel/internal/domain/entity"
	"github.com/bnema/sidepanel/internal/logging"
)

// Config holds the recognition thresholds, in cells.
type Config struct {
	// TapSlop is the largest pointer travel still recognised as a tap.
	TapSlop float64
	// TapTimeout is the longest press still recognised as a tap.
	TapTimeout time.Duration
	// PanThreshold is the horizontal travel that starts a pan.
	PanThreshold float64
	// SwipeVelocity is the minimum release speed of a swipe, in cells per second.
	SwipeVelocity float64
	// SwipeMinDistance is the minimum horizontal travel of a swipe.
	SwipeMinDistance float64
}

// DefaultConfig returns thresholds tuned for mouse input in a terminal.
func DefaultConfig() Config {
	return Config{
		TapSlop:          1,
		TapTimeout:       300 * time.Millisecond,
		PanThreshold:     2,
		SwipeVelocity:    40,
		SwipeMinDistance: 6,
	}
}

// Recognizer implements port.GestureSource. Feed it pointer samples with
// Press, Motion and Release; it emits either a pan sequence (panstart,
// panleft/panright/panmove, panend), a swipeleft/swiperight or a tap for
// each press to the attached handlers.
type Recognizer struct {
	ctx context.Context
	cfg Config
	now func() time.Time

	handlers []*subscription

	pressed bool
	panning bool
	startX  float64
	startY  float64
	startAt time.Time
	lastX   float64
}

var _ port.GestureSource = (*Recognizer)(nil)

type subscription struct {
	handler   port.GestureHandler
	destroyed bool
}

func (s *subscription) Destroy() {
	s.destroyed = true
}

// NewRecognizer creates a recognizer with the given thresholds.
func NewRecognizer(ctx context.Context, cfg Config) *Recognizer {
	return &Recognizer{
		ctx: logging.WithComponent(ctx, "gesture"),
		cfg: cfg,
		now: time.Now,
	}
}

// SetConfig replaces the thresholds. A gesture in progress keeps going.
func (r *Recognizer) SetConfig(cfg Config) {
	r.cfg = cfg
}

// SetClock replaces the time source used to time taps and swipes.
func (r *Recognizer) SetClock(now func() time.Time) {
	if now != nil {
		r.now = now
	}
}

// Config returns the current thresholds.
func (r *Recognizer) Config() Config {
	return r.cfg
}

// Attach registers a handler. Later handlers run first.
func (r *Recognizer) Attach(handler port.GestureHandler) port.Subscription {
	sub := &subscription{handler: handler}
	r.handlers = append(r.handlers, sub)
	return sub
}

// Panning reports whether a pan is in progress.
func (r *Recognizer) Panning() bool {
	return r.panning
}

// Press starts tracking a pointer at (x, y).
func (r *Recognizer) Press(x, y float64) {
	if r.pressed && r.panning {
		r.emit(entity.GesturePanEnd, r.lastX-r.startX, x, y)
	}
	r.pressed = true
	r.panning = false
	r.startX, r.startY = x, y
	r.lastX = x
	r.startAt = r.now()
}

// Motion moves a pressed pointer.
func (r *Recognizer) Motion(x, y float64) {
	if !r.pressed {
		return
	}
	dx := x - r.startX
	if !r.panning {
		if math.Abs(dx) < r.cfg.PanThreshold {
			return
		}
		r.panning = true
		r.emit(entity.GesturePanStart, dx, x, y)
	}

	kind := entity.GesturePanMove
	switch {
	case x > r.lastX:
		kind = entity.GesturePanRight
	case x < r.lastX:
		kind = entity.GesturePanLeft
	}
	r.lastX = x
	r.emit(kind, dx, x, y)
}

// Release ends the gesture at (x, y).
func (r *Recognizer) Release(x, y float64) {
	if !r.pressed {
		return
	}
	r.pressed = false
	dx := x - r.startX
	dy := y - r.startY
	elapsed := r.now().Sub(r.startAt)

	// A pan settles on its own drag; it never turns into a swipe as well.
	if r.panning {
		r.panning = false
		r.emit(entity.GesturePanEnd, dx, x, y)
		return
	}
	if math.Abs(dx) <= r.cfg.TapSlop && math.Abs(dy) <= r.cfg.TapSlop && elapsed <= r.cfg.TapTimeout {
		r.emit(entity.GestureTap, 0, x, y)
		return
	}

	if r.isSwipe(dx, elapsed) {
		kind := entity.GestureSwipeRight
		if dx < 0 {
			kind = entity.GestureSwipeLeft
		}
		r.emit(kind, dx, x, y)
	}
}

// Cancel abandons the gesture. A pan in progress ends where it is.
func (r *Recognizer) Cancel() {
	if r.panning {
		r.emit(entity.GesturePanEnd, r.lastX-r.startX, r.lastX, r.startY)
	}
	r.pressed = false
	r.panning = false
}

func (r *Recognizer) isSwipe(dx float64, elapsed time.Duration) bool {
	distance := math.Abs(dx)
	if distance < r.cfg.SwipeMinDistance {
		return false
	}
	seconds := elapsed.Seconds()
	if seconds <= 0 {
		return true
	}
	return distance/seconds >= r.cfg.SwipeVelocity
}

func (r *Recognizer) emit(kind entity.GestureKind, dx, x, y float64) {
	logging.FromContext(r.ctx).Trace().
		Str("kind", string(kind)).
		Float64("delta_x", dx).
		Msg("gesture recognized")

	event := &entity.GestureEvent{Kind: kind, DeltaX: dx, X: x, Y: y}
	for i := len(r.handlers) - 1; i >= 0; i-- {
		sub := r.handlers[i]
		if sub.destroyed {
			continue
		}
		sub.handler(event)
		if event.Stopped() {
			break
		}
	}
	r.prune()
}

func (r *Recognizer) prune() {
	live := r.handlers[:0]
	for _, sub := range r.handlers {
		if !sub.destroyed {
			live = append(live, sub)
		}
	}
	clear(r.handlers[len(live):])
	r.handlers = live
}
