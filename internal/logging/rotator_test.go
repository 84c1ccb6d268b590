package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotator_RotatesWhenFull(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotator(RotatorConfig{Dir: dir, FileName: "test.log", MaxSizeMB: 1})
	require.NoError(t, err)
	defer r.Close()

	tick := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	chunk := []byte(strings.Repeat("x", 600*1024))
	_, err = r.Write(chunk)
	require.NoError(t, err)
	_, err = r.Write(chunk)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	info, err := os.Stat(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Equal(t, int64(len(chunk)), info.Size())
}

func TestRotator_KeepsMaxBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRotator(RotatorConfig{Dir: dir, FileName: "test.log", MaxSizeMB: 1, MaxBackups: 1, Compress: true})
	require.NoError(t, err)
	defer r.Close()

	tick := time.Now()
	r.now = func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	}

	chunk := []byte(strings.Repeat("y", 700*1024))
	for range 4 {
		_, err = r.Write(chunk)
		require.NoError(t, err)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "test.log.") {
			backups++
			assert.True(t, strings.HasSuffix(e.Name(), ".gz"), e.Name())
		}
	}
	assert.Equal(t, 1, backups)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", "debug"},
		{"WARN", "warn"},
		{" error ", "error"},
		{"nonsense", "info"},
		{"", "info"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in).String())
		})
	}
}

func TestNewWithFile_DisabledIsNop(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, "disabled", logger.GetLevel().String())
}
