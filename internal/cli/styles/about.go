package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/sidepanel/internal/domain/build"
)

// AboutRenderer renders build info next to a small panel logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info with the logo on the left.
func (r *AboutRenderer) Render(info build.Info) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
}

func (r *AboutRenderer) renderLogo() string {
	panel := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)
	content := lipgloss.NewStyle().Foreground(r.theme.Border)

	var rows []string
	for i := 0; i < 5; i++ {
		rows = append(rows, panel.Render("███")+content.Render("│░░░░░"))
	}
	return lipgloss.NewStyle().MarginLeft(2).Render(strings.Join(rows, "\n"))
}

func (r *AboutRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight

	line := func(key, value string) string {
		return fmt.Sprintf("%s %s", keyStyle.Render(fmt.Sprintf("%-8s", key)), valStyle.Render(value))
	}
	return strings.Join([]string{
		r.theme.Title.Render("sidepanel"),
		line("Version", info.Version),
		line("Commit", info.Commit),
		line("Built", info.BuildDate),
		line("Go", info.GoVersion),
		keyStyle.Render(build.RepoURL()),
	}, "\n")
}
