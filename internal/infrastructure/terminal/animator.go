package terminal

import (
	"time"

	"github.com/bnema/sidepanel/internal/application/port"
	"github.com/bnema/sidepanel/internal/domain/entity"
)

// DefaultDuration is the length of a slide.
const DefaultDuration = 200 * time.Millisecond

// Animator drives edge-offset transitions frame by frame. It is stepped by
// the UI loop; completion callbacks run inside Step.
type Animator struct {
	duration time.Duration
	now      func() time.Time
	tweens   []*Tween
}

// NewAnimator creates an animator with the given slide duration.
func NewAnimator(duration time.Duration) *Animator {
	if duration < 0 {
		duration = 0
	}
	return &Animator{duration: duration, now: time.Now}
}

// SetDuration changes the duration of transitions started afterwards.
func (a *Animator) SetDuration(duration time.Duration) {
	if duration < 0 {
		duration = 0
	}
	a.duration = duration
}

// SetClock replaces the time source used when transitions start.
func (a *Animator) SetClock(now func() time.Time) {
	if now != nil {
		a.now = now
	}
}

// Duration returns the slide duration.
func (a *Animator) Duration() time.Duration {
	return a.duration
}

// Active reports whether any transition is running.
func (a *Animator) Active() bool {
	for _, tw := range a.tweens {
		if !tw.done {
			return true
		}
	}
	return false
}

// Start begins moving the edges of el to targets. Running transitions of
// the same element on any of those edges are cancelled first.
func (a *Animator) Start(el *Element, targets []entity.EdgeOffset, onComplete func()) *Tween {
	for _, tw := range a.tweens {
		if tw.el == el && !tw.done && tw.overlaps(targets) {
			tw.Cancel()
		}
	}

	tw := &Tween{
		el:         el,
		targets:    targets,
		from:       make([]float64, len(targets)),
		startAt:    a.now(),
		duration:   a.duration,
		onComplete: onComplete,
	}
	for i, target := range targets {
		tw.from[i] = el.Offset(target.Edge)
	}
	a.tweens = append(a.tweens, tw)
	return tw
}

// Step advances every transition to now. It returns whether any transition
// is still running afterwards.
func (a *Animator) Step(now time.Time) bool {
	// Callbacks may start or cancel transitions while we are stepping.
	for _, tw := range a.snapshot() {
		if !tw.done {
			tw.advance(now)
		}
	}
	a.tweens = compact(a.tweens)
	return a.Active()
}

// Finish completes every running transition, including those started by
// completion callbacks.
func (a *Animator) Finish() {
	for a.Active() {
		for _, tw := range a.snapshot() {
			tw.complete()
		}
		a.tweens = compact(a.tweens)
	}
}

func (a *Animator) snapshot() []*Tween {
	out := make([]*Tween, len(a.tweens))
	copy(out, a.tweens)
	return out
}

// Cancel stops every running transition where it is.
func (a *Animator) Cancel() {
	for _, tw := range a.tweens {
		tw.Cancel()
	}
	a.tweens = nil
}

func compact(tweens []*Tween) []*Tween {
	live := tweens[:0]
	for _, tw := range tweens {
		if !tw.done {
			live = append(live, tw)
		}
	}
	return live
}

// Tween is one running transition. It implements port.Transition.
type Tween struct {
	el         *Element
	targets    []entity.EdgeOffset
	from       []float64
	startAt    time.Time
	duration   time.Duration
	onComplete func()
	done       bool
	cancelled  bool
}

var _ port.Transition = (*Tween)(nil)

// Cancel stops the tween where it is. The completion callback never runs.
func (t *Tween) Cancel() {
	if t.done {
		return
	}
	t.done = true
	t.cancelled = true
}

// Done reports whether the tween completed or was cancelled.
func (t *Tween) Done() bool {
	return t.done
}

// Cancelled reports whether the tween was cancelled.
func (t *Tween) Cancelled() bool {
	return t.cancelled
}

func (t *Tween) overlaps(targets []entity.EdgeOffset) bool {
	for _, mine := range t.targets {
		for _, other := range targets {
			if mine.Edge == other.Edge {
				return true
			}
		}
	}
	return false
}

// advance moves the element along the tween, completing it at the end.
func (t *Tween) advance(now time.Time) {
	if t.duration <= 0 || now.Sub(t.startAt) >= t.duration {
		t.complete()
		return
	}
	progress := float64(now.Sub(t.startAt)) / float64(t.duration)
	if progress < 0 {
		progress = 0
	}
	for i, target := range t.targets {
		t.el.setOffset(target.Edge, t.from[i]+(target.Value-t.from[i])*progress)
	}
}

func (t *Tween) complete() {
	if t.done {
		return
	}
	t.done = true
	for _, target := range t.targets {
		t.el.setOffset(target.Edge, target.Value)
	}
	if t.onComplete != nil {
		t.onComplete()
	}
}
