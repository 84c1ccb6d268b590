package styles

import (
	"fmt"
	"strings"
)

// ConfigRenderer renders config command output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath shows where the configuration lives and whether it exists yet.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	status := r.theme.SuccessStyle.Render("✓ exists")
	if !exists {
		status = r.theme.Subtle.Render("not created yet")
	}
	return fmt.Sprintf("%s %s", r.theme.Normal.Render(path), status)
}

// RenderWritten confirms a written file.
func (r *ConfigRenderer) RenderWritten(what, path string) string {
	return fmt.Sprintf("%s %s %s",
		r.theme.SuccessStyle.Render("✓"),
		r.theme.Normal.Render(what+" written to"),
		r.theme.Highlight.Render(path))
}

// RenderValid summarises a configuration that passed validation.
func (r *ConfigRenderer) RenderValid(path string, panels int) string {
	return fmt.Sprintf("%s %s %s",
		r.theme.SuccessStyle.Render("✓"),
		r.theme.Normal.Render(path),
		r.theme.Subtle.Render(fmt.Sprintf("(%d panels)", panels)))
}

// RenderError formats an error, one line per validation problem.
func (r *ConfigRenderer) RenderError(err error) string {
	lines := strings.Split(err.Error(), "\n")
	out := make([]string, 0, len(lines))
	out = append(out, r.theme.ErrorStyle.Render("✗ "+lines[0]))
	for _, line := range lines[1:] {
		out = append(out, r.theme.Subtle.Render(line))
	}
	return strings.Join(out, "\n")
}
