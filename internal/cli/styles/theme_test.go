package styles_test

import (
	"errors"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sidepanel/internal/application/usecase"
	"github.com/bnema/sidepanel/internal/cli/styles"
	"github.com/bnema/sidepanel/internal/domain/build"
	"github.com/bnema/sidepanel/internal/domain/entity"
	"github.com/bnema/sidepanel/internal/infrastructure/config"
	"github.com/bnema/sidepanel/internal/infrastructure/terminal"
)

func TestNewTheme_UsesConfiguredPalette(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.Palette.Accent = "#ff0000"

	theme := styles.NewTheme(cfg)
	assert.Equal(t, lipgloss.Color("#ff0000"), theme.Accent)
	assert.Equal(t, lipgloss.Color(cfg.Appearance.Palette.Surface), theme.Surface)
}

func TestNewTheme_FallsBackToDefaults(t *testing.T) {
	theme := styles.NewTheme(nil)
	assert.Equal(t, lipgloss.Color(config.DefaultConfig().Appearance.Palette.Background), theme.Background)
}

func TestTheme_StylePanels(t *testing.T) {
	theme := styles.NewTheme(nil)
	root := terminal.NewRoot("root", terminal.NewAnimator(0))
	root.SetViewport(10, 2)
	panel := root.NewChild("panel")
	panel.SetContent("", []string{"x"})

	theme.StylePanels([]*terminal.Element{panel})
	out := terminal.NewCanvas(theme.CanvasStyles()).Render(root)
	assert.Contains(t, out, "x")
}

func sampleOutput() *usecase.SimulateOutput {
	return &usecase.SimulateOutput{Rows: []usecase.SimulationRow{
		{
			Step:   0,
			Action: "initial",
			Panels: []usecase.PanelSnapshot{{Name: "menu", State: entity.StateHidden, Offset: -30, Width: 30}},
		},
		{
			Step:    1,
			Action:  "show menu",
			Content: entity.Offsets{Left: 30, Right: -30},
			Panels:  []usecase.PanelSnapshot{{Name: "menu", State: entity.StateVisible, Offset: 0, Width: 30}},
		},
	}}
}

func TestSimulationRenderer_RenderTable(t *testing.T) {
	r := styles.NewSimulationRenderer(styles.NewTheme(nil))

	out := r.RenderTable(sampleOutput())
	for _, want := range []string{"action", "menu", "initial", "show menu", "HIDDEN", "VISIBLE 0/30", "-30"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, r.RenderTable(nil), "no steps")
}

func TestSimulationRenderer_RenderPlain(t *testing.T) {
	r := styles.NewSimulationRenderer(styles.NewTheme(nil))

	out := r.RenderPlain(sampleOutput())
	require.Equal(t,
		"0\tinitial\tleft=0\tright=0\tmenu=HIDDEN\n"+
			"1\tshow menu\tleft=30\tright=-30\tmenu=VISIBLE 0/30\n",
		out)
}

func TestConfigRenderer_RenderError(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(nil))

	out := r.RenderError(errors.New("config validation failed:\n  - shell.mode: bad"))
	assert.Contains(t, out, "config validation failed:")
	assert.Contains(t, out, "shell.mode: bad")
}

func TestConfigRenderer_RenderPath(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(nil))

	assert.Contains(t, r.RenderPath("/tmp/sidepanel/config.toml", true), "exists")
	assert.Contains(t, r.RenderPath("/tmp/sidepanel/config.toml", false), "not created yet")
}

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme(nil))

	out := r.Render(build.Info{Version: "1.2.3", Commit: "abc123", BuildDate: "today", GoVersion: "go1.25"})
	for _, want := range []string{"sidepanel", "1.2.3", "abc123", "go1.25", build.RepoURL()} {
		assert.Contains(t, out, want)
	}
}
