// Package terminal renders the panel shell on a terminal cell grid.
package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/sidepanel/internal/application/port"
	"github.com/bnema/sidepanel/internal/domain/entity"
)

// Element is a box on the cell grid. It implements port.Surface.
//
// Offsets are insets from the parent's edges: an element anchored left at
// offset -w with width w sits just outside its parent. An element with both
// horizontal offsets and no width stretches between them.
type Element struct {
	name     string
	parent   *Element
	children []*Element
	animator *Animator

	viewportW float64
	viewportH float64
	emSize    float64

	width   entity.Length
	height  entity.Length
	offsets map[entity.Position]float64

	layer     int
	border    entity.Position
	displayed bool
	removed   bool
	classes   map[string]struct{}

	style *lipgloss.Style
	title string
	lines []string
}

var (
	_ port.Surface        = (*Element)(nil)
	_ port.SurfaceFactory = (*Element)(nil)
)

// NewRoot creates the top element, sized against the viewport.
func NewRoot(name string, animator *Animator) *Element {
	if animator == nil {
		animator = NewAnimator(0)
	}
	return &Element{
		name:      name,
		animator:  animator,
		emSize:    1,
		offsets:   make(map[entity.Position]float64),
		displayed: true,
		classes:   make(map[string]struct{}),
	}
}

// NewChild creates a displayed child element sharing the root animator.
func (e *Element) NewChild(name string) *Element {
	child := &Element{
		name:      name,
		parent:    e,
		animator:  e.animator,
		offsets:   make(map[entity.Position]float64),
		displayed: true,
		classes:   make(map[string]struct{}),
	}
	e.children = append(e.children, child)
	return child
}

// Name returns the element name.
func (e *Element) Name() string { return e.name }

// Parent returns the parent element, nil for the root.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the attached children in creation order.
func (e *Element) Children() []*Element {
	out := make([]*Element, 0, len(e.children))
	for _, c := range e.children {
		if !c.removed {
			out = append(out, c)
		}
	}
	return out
}

// Animator returns the animator driving the element transitions.
func (e *Element) Animator() *Animator { return e.animator }

func (e *Element) root() *Element {
	r := e
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// SetViewport sets the terminal size. Only meaningful on the root.
func (e *Element) SetViewport(width, height float64) {
	r := e.root()
	r.viewportW, r.viewportH = width, height
}

// Viewport returns the terminal size.
func (e *Element) Viewport() (width, height float64) {
	r := e.root()
	return r.viewportW, r.viewportH
}

// SetEmSize sets the number of cells per em used to resolve em lengths.
func (e *Element) SetEmSize(emSize float64) {
	if emSize < 1 {
		emSize = 1
	}
	e.root().emSize = emSize
}

func (e *Element) em() float64 { return e.root().emSize }

func (e *Element) parentSize() (float64, float64) {
	if e.parent == nil {
		return e.viewportW, e.viewportH
	}
	return e.parent.Width(), e.parent.Height()
}

// Width returns the resolved width in cells.
func (e *Element) Width() float64 {
	pw, _ := e.parentSize()
	if !e.width.IsZero() {
		return e.width.Resolve(pw, e.em())
	}
	left, hasLeft := e.offsets[entity.PositionLeft]
	right, hasRight := e.offsets[entity.PositionRight]
	if e.parent != nil && hasLeft && hasRight {
		return max(pw-left-right, 0)
	}
	return pw
}

// Height returns the resolved height in cells.
func (e *Element) Height() float64 {
	_, ph := e.parentSize()
	if !e.height.IsZero() {
		return e.height.Resolve(ph, e.em())
	}
	return ph
}

// Offset returns the current inset of an edge.
func (e *Element) Offset(edge entity.Position) float64 { return e.offsets[edge] }

// SetOffset applies an edge inset immediately.
func (e *Element) SetOffset(edge entity.Position, value float64) { e.setOffset(edge, value) }

func (e *Element) setOffset(edge entity.Position, value float64) { e.offsets[edge] = value }

// ClearOffset unanchors the element from an edge.
func (e *Element) ClearOffset(edge entity.Position) { delete(e.offsets, edge) }

// SetWidth sets the requested width.
func (e *Element) SetWidth(width entity.Length) { e.width = width }

// SetHeight sets the requested height.
func (e *Element) SetHeight(height entity.Length) { e.height = height }

// SetLayer sets the stacking order; the content sits at 0.
func (e *Element) SetLayer(layer int) { e.layer = layer }

// Layer returns the stacking order.
func (e *Element) Layer() int { return e.layer }

// SetBorderEdge draws the border on one edge.
func (e *Element) SetBorderEdge(edge entity.Position) { e.border = edge }

// BorderEdge returns the bordered edge, empty for none.
func (e *Element) BorderEdge() entity.Position { return e.border }

// SetDisplayed toggles drawing.
func (e *Element) SetDisplayed(displayed bool) { e.displayed = displayed }

// Displayed reports whether the element is drawn.
func (e *Element) Displayed() bool { return e.displayed && !e.removed }

// AddClass sets a style class.
func (e *Element) AddClass(name string) { e.classes[name] = struct{}{} }

// RemoveClass clears a style class.
func (e *Element) RemoveClass(name string) { delete(e.classes, name) }

// HasClass reports whether a style class is set.
func (e *Element) HasClass(name string) bool {
	_, ok := e.classes[name]
	return ok
}

// SetStyle overrides the canvas style of the element body.
func (e *Element) SetStyle(style lipgloss.Style) { e.style = &style }

// SetContent sets the title and body lines drawn inside the element.
func (e *Element) SetContent(title string, lines []string) {
	e.title = title
	e.lines = lines
}

// Title returns the element title.
func (e *Element) Title() string { return e.title }

// Lines returns the body lines.
func (e *Element) Lines() []string { return e.lines }

// Rect returns the absolute bounds in cells: [x0, x1) x [y0, y1).
func (e *Element) Rect() (x0, y0, x1, y1 float64) {
	w, h := e.Width(), e.Height()
	if e.parent == nil {
		x0 = (e.viewportW - w) / 2
		y0 = (e.viewportH - h) / 2
		return x0, y0, x0 + w, y0 + h
	}

	px0, py0, px1, _ := e.parent.Rect()
	left, hasLeft := e.offsets[entity.PositionLeft]
	right, hasRight := e.offsets[entity.PositionRight]
	switch {
	case hasLeft:
		x0 = px0 + left
	case hasRight:
		x0 = px1 - right - w
	default:
		x0 = px0
	}
	return x0, py0, x0 + w, py0 + h
}

// Contains reports whether the cell (x, y) falls inside a drawn element.
func (e *Element) Contains(x, y float64) bool {
	if !e.Displayed() {
		return false
	}
	x0, y0, x1, y1 := e.Rect()
	return x >= x0 && x < x1 && y >= y0 && y < y1
}

// Transition animates edges to their targets through the shared animator.
func (e *Element) Transition(targets []entity.EdgeOffset, onComplete func()) port.Transition {
	return e.animator.Start(e, targets, onComplete)
}

// Remove detaches the element and its children from the tree.
func (e *Element) Remove() {
	e.removed = true
	e.displayed = false
	for _, c := range e.children {
		c.Remove()
	}
}

// Removed reports whether the element was removed.
func (e *Element) Removed() bool { return e.removed }

// NewSurface creates a child for a panel. It implements port.SurfaceFactory.
func (e *Element) NewSurface(name string) port.Surface {
	return e.NewChild(name)
}
