package usecase

import (
	"time"

	"github.com/bnema/sidepanel/internal/application/port"
	"github.com/bnema/sidepanel/internal/domain/entity"
)

type fakeSurface struct {
	name      string
	width     float64
	offsets   map[entity.Position]float64
	layer     int
	displayed bool
	classes   map[string]bool
	removed   bool
	pending   []*fakeTransition
}

func newFakeSurface(name string) *fakeSurface {
	return &fakeSurface{
		name:    name,
		offsets: make(map[entity.Position]float64),
		classes: make(map[string]bool),
	}
}

func (s *fakeSurface) Width() float64                            { return s.width }
func (s *fakeSurface) Offset(edge entity.Position) float64       { return s.offsets[edge] }
func (s *fakeSurface) SetOffset(edge entity.Position, v float64) { s.offsets[edge] = v }
func (s *fakeSurface) ClearOffset(edge entity.Position)          { delete(s.offsets, edge) }
func (s *fakeSurface) SetWidth(width entity.Length)              { s.width = width.Resolve(100, 1) }
func (s *fakeSurface) SetHeight(entity.Length)                   {}
func (s *fakeSurface) SetLayer(layer int)                        { s.layer = layer }
func (s *fakeSurface) SetBorderEdge(entity.Position)             {}
func (s *fakeSurface) SetDisplayed(displayed bool)               { s.displayed = displayed }
func (s *fakeSurface) AddClass(name string)                      { s.classes[name] = true }
func (s *fakeSurface) RemoveClass(name string)                   { delete(s.classes, name) }
func (s *fakeSurface) HasClass(name string) bool                 { return s.classes[name] }
func (s *fakeSurface) Contains(float64, float64) bool            { return false }
func (s *fakeSurface) Remove()                                   { s.removed = true }

func (s *fakeSurface) Transition(targets []entity.EdgeOffset, onComplete func()) port.Transition {
	t := &fakeTransition{surface: s, targets: targets, onComplete: onComplete}
	s.pending = append(s.pending, t)
	return t
}

type fakeTransition struct {
	surface    *fakeSurface
	targets    []entity.EdgeOffset
	onComplete func()
	done       bool
}

func (t *fakeTransition) Cancel()    { t.done = true }
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

// fakeFactory hands out fake surfaces and doubles as the simulation clock:
// Settle finishes every pending transition, including those started by
// completion callbacks.
type fakeFactory struct {
	surfaces map[string]*fakeSurface
	all      []*fakeSurface
	now      time.Time
}

func newFakeFactory(root, inner *fakeSurface) *fakeFactory {
	f := &fakeFactory{surfaces: make(map[string]*fakeSurface)}
	f.all = append(f.all, root, inner)
	return f
}

func (f *fakeFactory) NewSurface(name string) port.Surface {
	s := newFakeSurface(name)
	f.surfaces[name] = s
	f.all = append(f.all, s)
	return s
}

func (f *fakeFactory) Now() time.Time { return f.now }

func (f *fakeFactory) Advance(d time.Duration) { f.now = f.now.Add(d) }

func (f *fakeFactory) Settle() {
	for {
		var pending []*fakeTransition
		for _, s := range f.all {
			for _, t := range s.pending {
				if !t.done {
					pending = append(pending, t)
				}
			}
			s.pending = nil
		}
		if len(pending) == 0 {
			return
		}
		for _, t := range pending {
			t.finish()
		}
	}
}

var (
	_ port.Surface        = (*fakeSurface)(nil)
	_ port.SurfaceFactory = (*fakeFactory)(nil)
	_ port.Clock          = (*fakeFactory)(nil)
)
