package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDragSession_Clamp(t *testing.T) {
	d := NewDragSession(-300, 300)

	for _, delta := range []float64{-50, 0, 10, 150, 299, 300, 301, 1000} {
		got := d.Clamp(delta)
		assert.GreaterOrEqual(t, got, -300.0)
		assert.LessOrEqual(t, got, 0.0)
	}
	assert.Equal(t, -150.0, d.Clamp(150))

	open := NewDragSession(0, 300)
	assert.Equal(t, 0.0, open.Clamp(150), "dragging past open saturates")
}

func TestDragSession_Opens(t *testing.T) {
	d := NewDragSession(-300, 300)

	assert.True(t, d.Opens(-149))
	assert.False(t, d.Opens(-150), "midpoint closes")
	assert.False(t, d.Opens(-300))
	assert.True(t, d.Opens(0))
}

func TestContentDrag(t *testing.T) {
	d := NewContentDrag(0, -20, 30)

	assert.Equal(t, 30.0, d.Clamp(45))
	assert.Equal(t, -20.0, d.Clamp(-45))
	assert.Equal(t, 5.0, d.Clamp(5))

	tests := []struct {
		name  string
		shift float64
		want  Position
	}{
		{name: "left past half", shift: 16, want: PositionLeft},
		{name: "left midpoint", shift: 15, want: ""},
		{name: "right past half", shift: -11, want: PositionRight},
		{name: "right midpoint", shift: -10, want: ""},
		{name: "neutral", shift: 0, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Commit(tt.shift))
		})
	}

	leftOnly := NewContentDrag(0, 0, 30)
	assert.Equal(t, Position(""), leftOnly.Commit(-1))
}
