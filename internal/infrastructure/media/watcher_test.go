package media

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sidepanel/internal/domain/entity"
)

func TestWatcher_EdgeTriggered(t *testing.T) {
	w := NewWatcher(context.Background(), 1)
	var calls []bool
	w.Watch(entity.MinWidth(entity.Cells(80)), func(m bool) { calls = append(calls, m) })

	assert.Empty(t, calls, "no viewport yet")

	w.Resize(100, 40)
	w.Resize(120, 40)
	w.Resize(60, 40)
	w.Resize(70, 30)
	w.Resize(80, 30)

	assert.Equal(t, []bool{true, false, true}, calls)
}

func TestWatcher_InitialEvaluationOnWatch(t *testing.T) {
	w := NewWatcher(context.Background(), 1)
	w.Resize(50, 20)

	var got []bool
	w.Watch(entity.MinWidth(entity.Cells(80)), func(m bool) { got = append(got, m) })

	assert.Equal(t, []bool{false}, got)
}

func TestWatcher_EmSize(t *testing.T) {
	w := NewWatcher(context.Background(), 2)
	var matched bool
	w.Watch(entity.MinWidth(entity.Em(40)), func(m bool) { matched = m })

	w.Resize(79, 20)
	assert.False(t, matched)

	w.SetEmSize(1)
	assert.True(t, matched)

	vp, ok := w.Viewport()
	require.True(t, ok)
	assert.Equal(t, 1.0, vp.EmSize)
}

func TestWatcher_DestroyStopsCallbacks(t *testing.T) {
	w := NewWatcher(context.Background(), 1)
	calls := 0
	sub := w.Watch(entity.MinWidth(entity.Cells(80)), func(bool) { calls++ })
	w.Resize(100, 20)

	sub.Destroy()
	w.Resize(10, 20)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, w.Len())
}

func TestWatcher_CallbackMayDestroyAnotherWatch(t *testing.T) {
	w := NewWatcher(context.Background(), 1)
	secondCalls := 0
	var second interface{ Destroy() }
	w.Watch(entity.MinWidth(entity.Cells(80)), func(bool) { second.Destroy() })
	second = w.Watch(entity.MinWidth(entity.Cells(80)), func(bool) { secondCalls++ })

	w.Resize(100, 20)

	assert.Equal(t, 0, secondCalls)
	assert.Equal(t, 1, w.Len())
}

func TestWatcher_WatchQuery(t *testing.T) {
	w := NewWatcher(context.Background(), 1)
	w.Resize(100, 50)

	var framed bool
	_, err := w.WatchQuery("(min-height: 40px) and (min-width: 90px)", func(m bool) { framed = m })
	require.NoError(t, err)
	assert.True(t, framed)

	_, err = w.WatchQuery("(orientation: portrait)", func(bool) {})
	assert.Error(t, err)
}

func TestWatcher_DestroyAll(t *testing.T) {
	w := NewWatcher(context.Background(), 1)
	calls := 0
	w.Watch(entity.MinWidth(entity.Cells(1)), func(bool) { calls++ })

	w.Destroy()
	w.Resize(10, 10)

	assert.Equal(t, 0, calls)
}
