// Package mainloop schedules work onto the UI goroutine.
package mainloop

import (
	"errors"
	"sync"
)

// ErrNoPost is returned by NewCoalescer without a post function.
var ErrNoPost = errors.New("mainloop: post function is required")

// Coalescer merges bursts of same-key tasks posted from any goroutine into
// one run on the UI goroutine. The latest task for a key wins.
type Coalescer struct {
	mu        sync.Mutex
	queued    map[string]func()
	post      func(func())
	destroyed bool
}

// NewCoalescer creates a coalescer that hands tasks to post, which must run
// them on the UI goroutine.
func NewCoalescer(post func(func())) (*Coalescer, error) {
	if post == nil {
		return nil, ErrNoPost
	}
	return &Coalescer{
		queued: make(map[string]func()),
		post:   post,
	}, nil
}

// Post queues fn under key. It reports whether a new run was scheduled;
// false means fn replaced a task still waiting for its run.
func (c *Coalescer) Post(key string, fn func()) bool {
	if fn == nil || key == "" {
		return false
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return false
	}
	_, waiting := c.queued[key]
	c.queued[key] = fn
	c.mu.Unlock()
	if waiting {
		return false
	}

	c.post(func() { c.run(key) })
	return true
}

func (c *Coalescer) run(key string) {
	c.mu.Lock()
	fn := c.queued[key]
	delete(c.queued, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if fn != nil && !destroyed {
		fn()
	}
}

// Pending reports whether a task for key waits for its run.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.queued[key]
	return ok
}

// Destroy drops queued tasks and ignores later posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	clear(c.queued)
	c.mu.Unlock()
}
