package layout

import (
	"context"

	"github.com/bnema/sidepanel/internal/application/port"
	"github.com/bnema/sidepanel/internal/domain/entity"
)

// fakeSurface records what the layout writes and lets tests finish
// transitions by hand.
type fakeSurface struct {
	parentWidth float64
	width       float64
	height      entity.Length
	widthSpec   entity.Length

	offsets   map[entity.Position]float64
	cleared   []entity.Position
	layer     int
	border    entity.Position
	displayed bool
	classes   map[string]bool
	removed   bool

	bounds      [4]float64 // x0, y0, x1, y1
	transitions []*fakeTransition
}

func newFakeSurface(width float64) *fakeSurface {
	return &fakeSurface{
		parentWidth: 100,
		width:       width,
		offsets:     make(map[entity.Position]float64),
		classes:     make(map[string]bool),
	}
}

func (s *fakeSurface) Width() float64 { return s.width }

func (s *fakeSurface) Offset(edge entity.Position) float64 { return s.offsets[edge] }

func (s *fakeSurface) SetOffset(edge entity.Position, value float64) { s.offsets[edge] = value }

func (s *fakeSurface) ClearOffset(edge entity.Position) {
	delete(s.offsets, edge)
	s.cleared = append(s.cleared, edge)
}

func (s *fakeSurface) SetWidth(width entity.Length) {
	s.widthSpec = width
	s.width = width.Resolve(s.parentWidth, 1)
}

func (s *fakeSurface) SetHeight(height entity.Length) { s.height = height }

func (s *fakeSurface) SetLayer(layer int) { s.layer = layer }

func (s *fakeSurface) SetBorderEdge(edge entity.Position) { s.border = edge }

func (s *fakeSurface) SetDisplayed(displayed bool) { s.displayed = displayed }

func (s *fakeSurface) AddClass(name string) { s.classes[name] = true }

func (s *fakeSurface) RemoveClass(name string) { delete(s.classes, name) }

func (s *fakeSurface) HasClass(name string) bool { return s.classes[name] }

func (s *fakeSurface) Contains(x, y float64) bool {
	return x >= s.bounds[0] && y >= s.bounds[1] && x < s.bounds[2] && y < s.bounds[3]
}

func (s *fakeSurface) Transition(targets []entity.EdgeOffset, onComplete func()) port.Transition {
	t := &fakeTransition{surface: s, targets: targets, onComplete: onComplete}
	s.transitions = append(s.transitions, t)
	return t
}

func (s *fakeSurface) Remove() { s.removed = true }

// last returns the most recent transition, or nil.
func (s *fakeSurface) last() *fakeTransition {
	if len(s.transitions) == 0 {
		return nil
	}
	return s.transitions[len(s.transitions)-1]
}

// settle finishes every pending transition in start order.
func (s *fakeSurface) settle() {
	for _, t := range s.transitions {
		t.finish()
	}
}

// target returns where the surface will rest once pending transitions finish.
func (s *fakeSurface) target(edge entity.Position) float64 {
	value := s.offsets[edge]
	for _, t := range s.transitions {
		if t.done {
			continue
		}
		for _, target := range t.targets {
			if target.Edge == edge {
				value = target.Value
			}
		}
	}
	return value
}

type fakeTransition struct {
	surface    *fakeSurface
	targets    []entity.EdgeOffset
	onComplete func()
	cancelled  bool
	done       bool
}

func (t *fakeTransition) Cancel() {
	if t.done {
		return
	}
	t.cancelled = true
	t.done = true
}

func (t *fakeTransition) Done() bool { return t.done }

func (t *fakeTransition) finish() {
	if t.done {
		return
	}
	t.done = true
	for _, target := range t.targets {
		t.surface.offsets[target.Edge] = target.Value
	}
	if t.onComplete != nil {
		t.onComplete()
	}
}

// fakeBreakpoints evaluates watched conditions against a viewport set by the test.
type fakeBreakpoints struct {
	viewport *entity.Viewport
	watches  []*fakeWatch
}

type fakeWatch struct {
	owner     *fakeBreakpoints
	cond      entity.Condition
	fn        func(bool)
	matched   bool
	evaluated bool
	destroyed bool
}

func (w *fakeWatch) Destroy() { w.destroyed = true }

func (b *fakeBreakpoints) Watch(cond entity.Condition, fn func(bool)) port.Subscription {
	w := &fakeWatch{owner: b, cond: cond, fn: fn}
	b.watches = append(b.watches, w)
	if b.viewport != nil {
		b.evaluate(w)
	}
	return w
}

func (b *fakeBreakpoints) resize(width, height float64) {
	b.viewport = &entity.Viewport{Width: width, Height: height}
	for _, w := range b.watches {
		b.evaluate(w)
	}
}

func (b *fakeBreakpoints) evaluate(w *fakeWatch) {
	if w.destroyed {
		return
	}
	matched := w.cond.Matches(*b.viewport)
	if w.evaluated && matched == w.matched {
		return
	}
	w.evaluated = true
	w.matched = matched
	w.fn(matched)
}

// fakeGestures dispatches to handlers, latest first.
type fakeGestures struct {
	handlers []*fakeGestureSub
}

type fakeGestureSub struct {
	handler   port.GestureHandler
	destroyed bool
}

func (s *fakeGestureSub) Destroy() { s.destroyed = true }

func (g *fakeGestures) Attach(handler port.GestureHandler) port.Subscription {
	sub := &fakeGestureSub{handler: handler}
	g.handlers = append(g.handlers, sub)
	return sub
}

func (g *fakeGestures) emit(kind entity.GestureKind, deltaX, x, y float64) *entity.GestureEvent {
	event := &entity.GestureEvent{Kind: kind, DeltaX: deltaX, X: x, Y: y}
	for i := len(g.handlers) - 1; i >= 0; i-- {
		if g.handlers[i].destroyed {
			continue
		}
		g.handlers[i].handler(event)
		if event.Stopped() {
			break
		}
	}
	return event
}

// pan emits a full pan sequence through the given deltas.
func (g *fakeGestures) pan(deltas ...float64) {
	g.emit(entity.GesturePanStart, 0, 0, 0)
	for _, d := range deltas[:len(deltas)-1] {
		g.emit(entity.GesturePanMove, d, 0, 0)
	}
	g.emit(entity.GesturePanEnd, deltas[len(deltas)-1], 0, 0)
}

type fixture struct {
	shell       *Shell
	root, inner *fakeSurface
	left, right *Panel
	leftSurf    *fakeSurface
	rightSurf   *fakeSurface
	gestures    *fakeGestures
}

// newFixture builds a shell with a 30-cell left and a 20-cell right panel.
func newFixture(mode entity.Mode) *fixture {
	ctx := context.Background()
	f := &fixture{
		root:      newFakeSurface(100),
		inner:     newFakeSurface(100),
		leftSurf:  newFakeSurface(30),
		rightSurf: newFakeSurface(20),
		gestures:  &fakeGestures{},
	}
	f.shell = NewShell(ctx, f.root, f.inner)
	f.shell.SetMode(mode)

	f.left = NewPanel(ctx, "left", f.leftSurf)
	f.right = NewPanel(ctx, "right", f.rightSurf)
	f.right.SetPosition(entity.PositionRight)

	if err := f.shell.Append(f.left); err != nil {
		panic(err)
	}
	if err := f.shell.Append(f.right); err != nil {
		panic(err)
	}
	f.shell.BindGestures(f.gestures)
	return f
}

// settle finishes every pending transition.
func (f *fixture) settle() {
	f.leftSurf.settle()
	f.rightSurf.settle()
	f.inner.settle()
}

func (f *fixture) content() entity.Offsets {
	return entity.Offsets{
		Left:  f.inner.target(entity.PositionLeft),
		Right: f.inner.target(entity.PositionRight),
	}
}
