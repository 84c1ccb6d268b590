package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered_KeepsPanelOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := DefaultConfig()
	cfg.Panels[0].Name = "zeta"
	cfg.Panels[1].Name = "alpha"
	require.NoError(t, WriteConfigOrdered(cfg, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(content)

	assert.True(t, strings.HasPrefix(text, "#"))
	assert.Equal(t, 2, strings.Count(text, "[[panels]]"))
	assert.Less(t, strings.Index(text, "zeta"), strings.Index(text, "alpha"))
	assert.Less(t, strings.Index(text, "[shell]"), strings.Index(text, "[[panels]]"))
	assert.True(t, strings.HasSuffix(text, "\n"))
	assert.False(t, strings.HasSuffix(text, "\n\n"))
}

func TestEncodeConfig_Nil(t *testing.T) {
	_, err := EncodeConfig(nil)
	require.Error(t, err)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	text := string(data)
	assert.Contains(t, text, `"shell"`)
	assert.Contains(t, text, `"panels"`)
	assert.Contains(t, text, `"narrow_width"`)
	assert.Contains(t, text, `"under"`)

	path, err := GenerateSchemaFile(t.TempDir())
	require.NoError(t, err)
	assert.FileExists(t, path)
}
