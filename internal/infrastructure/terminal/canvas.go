package terminal

import (
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/sidepanel/internal/domain/entity"
)

// Styles holds the lipgloss styles the canvas paints with.
type Styles struct {
	Frame  lipgloss.Style // border around a framed root
	Body   lipgloss.Style // element background and text
	Title  lipgloss.Style // first line of an element
	Border lipgloss.Style // single-edge panel border
}

// DefaultStyles returns unstyled defaults, useful for tests and dumb terminals.
func DefaultStyles() Styles {
	return Styles{
		Frame:  lipgloss.NewStyle(),
		Body:   lipgloss.NewStyle(),
		Title:  lipgloss.NewStyle().Bold(true),
		Border: lipgloss.NewStyle(),
	}
}

// Canvas composites an element tree into a string, one line per row.
// Children are painted in layer order, later elements on top.
type Canvas struct {
	styles Styles
}

// NewCanvas creates a canvas with the given styles.
func NewCanvas(styles Styles) *Canvas {
	return &Canvas{styles: styles}
}

// SetStyles replaces the styles.
func (c *Canvas) SetStyles(styles Styles) {
	c.styles = styles
}

// Render paints root and its children for the root viewport.
func (c *Canvas) Render(root *Element) string {
	vw, vh := root.Viewport()
	g := newGrid(round(vw), round(vh))
	if g.w == 0 || g.h == 0 {
		return ""
	}

	rx0, ry0, rx1, ry1 := root.Rect()
	clip := rect{round(rx0), round(ry0), round(rx1), round(ry1)}.intersect(rect{0, 0, g.w, g.h})
	if root.HasClass(entity.ClassFramed) {
		c.frame(g, clip)
	}

	children := root.Children()
	slices.SortStableFunc(children, func(a, b *Element) int { return a.Layer() - b.Layer() })
	for _, el := range children {
		if el.Displayed() {
			c.paint(g, el, clip)
		}
	}
	return g.String()
}

func (c *Canvas) paint(g *grid, el *Element, clip rect) {
	x0, y0, x1, y1 := el.Rect()
	box := rect{round(x0), round(y0), round(x1), round(y1)}
	visible := box.intersect(clip)
	if visible.empty() {
		return
	}

	body := c.styles.Body
	if el.style != nil {
		body = *el.style
	}
	bodyIdx := g.style(body)
	g.fill(visible, bodyIdx)

	text := box
	switch el.BorderEdge() {
	case entity.PositionLeft:
		g.vline(box.x0, visible, '│', g.style(c.styles.Border))
		text.x0++
	case entity.PositionRight:
		g.vline(box.x1-1, visible, '│', g.style(c.styles.Border))
		text.x1--
	}

	y := text.y0
	if el.Title() != "" {
		g.text(text, visible, y, el.Title(), g.style(c.styles.Title))
		y++
	}
	for _, line := range el.Lines() {
		if y >= text.y1 {
			break
		}
		g.text(text, visible, y, line, bodyIdx)
		y++
	}
}

// frame draws a rounded border just outside r.
func (c *Canvas) frame(g *grid, r rect) {
	b := lipgloss.RoundedBorder()
	idx := g.style(c.styles.Frame)
	top, bottom := r.y0-1, r.y1
	left, right := r.x0-1, r.x1

	for x := r.x0; x < r.x1; x++ {
		g.set(x, top, first(b.Top), idx)
		g.set(x, bottom, first(b.Bottom), idx)
	}
	for y := r.y0; y < r.y1; y++ {
		g.set(left, y, first(b.Left), idx)
		g.set(right, y, first(b.Right), idx)
	}
	g.set(left, top, first(b.TopLeft), idx)
	g.set(right, top, first(b.TopRight), idx)
	g.set(left, bottom, first(b.BottomLeft), idx)
	g.set(right, bottom, first(b.BottomRight), idx)
}

func first(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

func round(v float64) int {
	return int(math.Round(v))
}

type rect struct {
	x0, y0, x1, y1 int
}

func (r rect) intersect(o rect) rect {
	return rect{max(r.x0, o.x0), max(r.y0, o.y0), min(r.x1, o.x1), min(r.y1, o.y1)}
}

func (r rect) empty() bool {
	return r.x0 >= r.x1 || r.y0 >= r.y1
}

type cell struct {
	r     rune
	style int  // index into grid.styles, -1 for none
	cont  bool // right half of a wide rune
}

type grid struct {
	w, h   int
	cells  []cell
	styles []lipgloss.Style
}

func newGrid(w, h int) *grid {
	g := &grid{w: max(w, 0), h: max(h, 0)}
	g.cells = make([]cell, g.w*g.h)
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', style: -1}
	}
	return g
}

func (g *grid) style(s lipgloss.Style) int {
	g.styles = append(g.styles, s)
	return len(g.styles) - 1
}

func (g *grid) set(x, y int, r rune, style int) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	i := y*g.w + x
	// Overwriting half of a wide rune blanks the other half.
	if g.cells[i].cont && x > 0 {
		g.cells[i-1].r = ' '
	}
	if x+1 < g.w && g.cells[i+1].cont {
		g.cells[i+1] = cell{r: ' ', style: g.cells[i+1].style}
	}
	g.cells[i] = cell{r: r, style: style}
}

func (g *grid) fill(r rect, style int) {
	for y := r.y0; y < r.y1; y++ {
		for x := r.x0; x < r.x1; x++ {
			g.set(x, y, ' ', style)
		}
	}
}

func (g *grid) vline(x int, clip rect, r rune, style int) {
	if x < clip.x0 || x >= clip.x1 {
		return
	}
	for y := clip.y0; y < clip.y1; y++ {
		g.set(x, y, r, style)
	}
}

// text writes s on row y from box.x0, truncated to the box and drawn only
// where it falls inside clip.
func (g *grid) text(box, clip rect, y int, s string, style int) {
	if y < clip.y0 || y >= clip.y1 {
		return
	}
	s = runewidth.Truncate(s, max(box.x1-box.x0, 0), "…")
	x := box.x0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= clip.x0 && x+w <= clip.x1 {
			g.set(x, y, r, style)
			if w == 2 && x+1 < g.w {
				g.cells[y*g.w+x+1] = cell{style: style, cont: true}
			}
		}
		x += w
	}
}

func (g *grid) String() string {
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < g.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		current := -2
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if current >= 0 {
				out.WriteString(g.styles[current].Render(run.String()))
			} else {
				out.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < g.w; x++ {
			c := g.cells[y*g.w+x]
			if c.cont {
				continue
			}
			if c.style != current {
				flush()
				current = c.style
			}
			run.WriteRune(c.r)
		}
		flush()
	}
	return out.String()
}
