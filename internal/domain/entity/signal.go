package entity

// Signal names a lifecycle notification emitted by panels and shells.
type Signal string

const (
	SignalFix     Signal = "fix"
	SignalUnfix   Signal = "unfix"
	SignalShow    Signal = "show"
	SignalHide    Signal = "hide"
	SignalDestroy Signal = "destroy"
)

// PanelState is the collapsed view of a panel's state machine.
type PanelState int

const (
	StateHidden PanelState = iota
	StateVisible
	StateFixed
	StateDragging
)

// String returns the state name.
func (s PanelState) String() string {
	switch s {
	case StateHidden:
		return "HIDDEN"
	case StateVisible:
		return "VISIBLE"
	case StateFixed:
		return "FIXED"
	case StateDragging:
		return "DRAGGING"
	default:
		return "UNKNOWN"
	}
}

// ClassFramed is set on the shell root while the viewport exceeds both
// frame dimensions.
const ClassFramed = "framed"
