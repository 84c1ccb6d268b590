package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode_Behaviours(t *testing.T) {
	tests := []struct {
		mode          Mode
		contentOffset bool
		ownTransition bool
		layer         int
	}{
		{mode: ModePush, contentOffset: true, ownTransition: true, layer: 1},
		{mode: ModeOver, contentOffset: false, ownTransition: true, layer: 1},
		{mode: ModeUnder, contentOffset: true, ownTransition: false, layer: -1},
		{mode: "", contentOffset: true, ownTransition: true, layer: 1},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			assert.Equal(t, tt.contentOffset, tt.mode.AppliesContentOffset())
			assert.Equal(t, tt.ownTransition, tt.mode.HasOwnTransition())
			assert.Equal(t, tt.layer, tt.mode.Layer())
		})
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, DefaultMode, m)

	m, err = ParseMode("under")
	require.NoError(t, err)
	assert.Equal(t, ModeUnder, m)

	_, err = ParseMode("sideways")
	assert.Error(t, err)
}

func TestPosition(t *testing.T) {
	assert.Equal(t, PositionRight, PositionLeft.Opposite())
	assert.Equal(t, PositionLeft, PositionRight.Opposite())

	p, err := ParsePosition("right")
	require.NoError(t, err)
	assert.Equal(t, PositionRight, p)

	_, err = ParsePosition("top")
	assert.Error(t, err)
	assert.False(t, Position("").IsValid())
}

func TestOffsets(t *testing.T) {
	o := Offsets{}.Set(PositionLeft, 30).Set(PositionRight, -30)

	assert.Equal(t, 30.0, o.Get(PositionLeft))
	assert.Equal(t, -30.0, o.Get(PositionRight))
	assert.Equal(t, []EdgeOffset{
		{Edge: PositionLeft, Value: 30},
		{Edge: PositionRight, Value: -30},
	}, o.Targets())
}
