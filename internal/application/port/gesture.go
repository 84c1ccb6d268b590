package port

//go:generate mockgen -source=gesture.go -destination=mocks/mock_gesture.go -package=mock_port

import "github.com/bnema/sidepanel/internal/domain/entity"

// GestureHandler receives classified gestures.
type GestureHandler func(event *entity.GestureEvent)

// GestureSource defines the port interface for gesture recognition.
// Implementations classify raw pointer input into tap, pan and swipe events
// and guarantee pan sequences are serialized (panstart, pan moves, panend).
type GestureSource interface {
	// Attach registers a handler. Handlers attached later see events first
	// and may stop propagation to earlier ones.
	Attach(handler GestureHandler) Subscription
}
