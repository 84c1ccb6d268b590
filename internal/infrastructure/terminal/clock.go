package terminal

import (
	"time"

	"github.com/bnema/sidepanel/internal/application/port"
)

// VirtualClock is a manual time source for headless runs. Advancing it steps
// the animator, so transitions progress exactly as they would on screen.
type VirtualClock struct {
	animator *Animator
	now      time.Time
}

var _ port.Clock = (*VirtualClock)(nil)

// NewVirtualClock creates a clock starting at start and takes over the
// animator time source.
func NewVirtualClock(animator *Animator, start time.Time) *VirtualClock {
	c := &VirtualClock{animator: animator, now: start}
	animator.SetClock(c.Now)
	return c
}

// Now returns the virtual time.
func (c *VirtualClock) Now() time.Time {
	return c.now
}

// Advance moves time forward by d and steps the animator.
func (c *VirtualClock) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	c.now = c.now.Add(d)
	c.animator.Step(c.now)
}

// Settle completes every running transition without moving time.
func (c *VirtualClock) Settle() {
	c.animator.Finish()
}
