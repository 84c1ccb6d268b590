package port

//go:generate mockgen -source=breakpoint.go -destination=mocks/mock_breakpoint.go -package=mock_port

import "github.com/bnema/sidepanel/internal/domain/entity"

// BreakpointSource defines the port interface for media condition watching.
type BreakpointSource interface {
	// Watch calls fn with the current match state as soon as the viewport is
	// known, then each time the match state of cond changes (edge-triggered).
	Watch(cond entity.Condition, fn func(matched bool)) Subscription
}

// Subscription is a registration on a gesture or breakpoint source.
type Subscription interface {
	// Destroy releases the registration. Calling it twice is a caller error.
	Destroy()
}
