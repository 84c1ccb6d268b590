package script

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sidepanel/internal/domain/entity"
)

const sample = `
name: open and close
width: 100
height: 30
steps:
  - action: show
    panel: menu
  - action: drag
    x: 40
    y: 10
    to_x: 10
    y2: 0
`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(`
name: open and close
width: 100
height: 30
steps:
  - action: show
    panel: menu
  - action: drag
    x: 40
    y: 10
    to_x: 10
    to_y: 10
    samples: 4
    duration_ms: 80
  - action: gesture
    gesture: swiperight
    label: swipe open
  - action: mode
    mode: under
`))
	require.NoError(t, err)

	assert.Equal(t, "open and close", s.Name)
	assert.InDelta(t, 100, s.Width, 0)
	require.Len(t, s.Steps, 4)
	assert.Equal(t, entity.ScriptStep{Action: entity.ActionShow, Panel: "menu"}, s.Steps[0])
	assert.Equal(t, entity.ScriptStep{
		Action: entity.ActionDrag, X: 40, Y: 10, ToX: 10, ToY: 10, Samples: 4, DurationMs: 80,
	}, s.Steps[1])
	assert.Equal(t, entity.GestureSwipeRight, s.Steps[2].Gesture)
	assert.Equal(t, "swipe open", s.Steps[2].Label)
	assert.Equal(t, entity.ModeUnder, s.Steps[3].Mode)
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader(sample))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "y2")
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyScript)

	_, err = Decode(strings.NewReader("name: nothing\n"))
	assert.ErrorIs(t, err, ErrEmptyScript)

	_, err = Decode(strings.NewReader("steps:\n  - action: wait\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 1")
}

func TestLoadAndEncode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yaml")
	in := &entity.Script{Name: "toggle", Steps: []entity.ScriptStep{
		{Action: entity.ActionToggle, Panel: "menu"},
		{Action: entity.ActionWait, DurationMs: 120},
	}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, in))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_BundledScripts(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "..", "scripts", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			s, err := Load(path)
			require.NoError(t, err)
			assert.NotEmpty(t, s.Steps)
		})
	}
}
