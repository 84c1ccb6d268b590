package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/sidepanel/internal/domain/entity"
)

func TestElement_WidthResolution(t *testing.T) {
	_, root := newTestTree(0)
	root.SetEmSize(2)
	panel := root.NewChild("panel")
	content := root.NewChild("content")

	assert.Equal(t, 100.0, root.Width(), "root fills the viewport")

	panel.SetWidth(entity.Em(10))
	assert.Equal(t, 20.0, panel.Width())

	panel.SetWidth(entity.Percent(85))
	assert.Equal(t, 85.0, panel.Width())

	content.SetOffset(entity.PositionLeft, 30)
	content.SetOffset(entity.PositionRight, 10)
	assert.Equal(t, 60.0, content.Width(), "stretches between its offsets")

	root.SetWidth(entity.Cells(80))
	assert.Equal(t, 40.0, content.Width())
}

func TestElement_Rect(t *testing.T) {
	_, root := newTestTree(0)
	root.SetWidth(entity.Cells(80))
	root.SetHeight(entity.Cells(10))

	x0, y0, x1, y1 := root.Rect()
	assert.Equal(t, []float64{10, 5, 90, 15}, []float64{x0, y0, x1, y1}, "root is centred")

	left := root.NewChild("left")
	left.SetWidth(entity.Cells(20))
	left.SetOffset(entity.PositionLeft, -5)
	x0, _, x1, _ = left.Rect()
	assert.Equal(t, []float64{5, 25}, []float64{x0, x1})

	right := root.NewChild("right")
	right.SetWidth(entity.Cells(20))
	right.SetOffset(entity.PositionRight, 0)
	x0, _, x1, _ = right.Rect()
	assert.Equal(t, []float64{70, 90}, []float64{x0, x1})
}

func TestElement_Contains(t *testing.T) {
	_, root := newTestTree(0)
	panel := root.NewChild("panel")
	panel.SetWidth(entity.Cells(30))
	panel.SetOffset(entity.PositionLeft, 0)

	assert.True(t, panel.Contains(0, 0))
	assert.True(t, panel.Contains(29.5, 19))
	assert.False(t, panel.Contains(30, 5))

	panel.SetDisplayed(false)
	assert.False(t, panel.Contains(5, 5))
}

func TestElement_ClassesAndRemove(t *testing.T) {
	_, root := newTestTree(0)
	child := root.NewChild("child")

	root.AddClass(entity.ClassFramed)
	assert.True(t, root.HasClass(entity.ClassFramed))
	root.RemoveClass(entity.ClassFramed)
	assert.False(t, root.HasClass(entity.ClassFramed))

	child.ClearOffset(entity.PositionLeft)
	child.Remove()
	assert.True(t, child.Removed())
	assert.False(t, child.Displayed())
	assert.Empty(t, root.Children())
}
