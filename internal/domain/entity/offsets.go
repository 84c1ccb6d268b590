package entity

// Offsets holds the inset of an element from its left and right edges, in cells.
// A positive inset reserves room on that side, a negative inset pushes the
// element past the edge.
type Offsets struct {
	Left  float64
	Right float64
}

// Get returns the inset for one edge.
func (o Offsets) Get(edge Position) float64 {
	if edge == PositionRight {
		return o.Right
	}
	return o.Left
}

// Set returns a copy with the inset of one edge replaced.
func (o Offsets) Set(edge Position, value float64) Offsets {
	if edge == PositionRight {
		o.Right = value
	} else {
		o.Left = value
	}
	return o
}

// Targets converts the offsets into transition targets for both edges.
func (o Offsets) Targets() []EdgeOffset {
	return []EdgeOffset{
		{Edge: PositionLeft, Value: o.Left},
		{Edge: PositionRight, Value: o.Right},
	}
}

// EdgeOffset is a single edge target of a transition.
type EdgeOffset struct {
	Edge  Position
	Value float64
}
