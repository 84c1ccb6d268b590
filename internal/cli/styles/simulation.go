package styles

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/bnema/sidepanel/internal/application/usecase"
	"github.com/bnema/sidepanel/internal/domain/entity"
)

// SimulationRenderer prints simulation results.
type SimulationRenderer struct {
	theme *Theme
}

// NewSimulationRenderer creates a renderer with the given theme.
func NewSimulationRenderer(theme *Theme) *SimulationRenderer {
	return &SimulationRenderer{theme: theme}
}

// RenderTable lays out one row per step: the content offsets followed by
// each panel as "STATE offset/width".
func (r *SimulationRenderer) RenderTable(out *usecase.SimulateOutput) string {
	if out == nil || len(out.Rows) == 0 {
		return r.theme.Subtle.Render("no steps")
	}

	headers := []string{"#", "action", "left", "right"}
	for _, p := range out.Rows[0].Panels {
		headers = append(headers, p.Name)
	}

	rows := make([][]string, 0, len(out.Rows))
	for _, row := range out.Rows {
		cells := []string{
			strconv.Itoa(row.Step),
			row.Action,
			formatNumber(row.Content.Left),
			formatNumber(row.Content.Right),
		}
		for _, p := range row.Panels {
			cells = append(cells, formatPanel(p))
		}
		rows = append(rows, cells)
	}

	header := r.theme.Highlight.Padding(0, 1)
	cell := r.theme.Normal.Padding(0, 1)
	state := r.theme.Subtle.Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(r.theme.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col >= 4:
				return state
			default:
				return cell
			}
		}).
		String()
}

// RenderPlain prints tab-separated rows for scripts and diffs.
func (r *SimulationRenderer) RenderPlain(out *usecase.SimulateOutput) string {
	var b strings.Builder
	for _, row := range out.Rows {
		fmt.Fprintf(&b, "%d\t%s\tleft=%s\tright=%s", row.Step, row.Action,
			formatNumber(row.Content.Left), formatNumber(row.Content.Right))
		for _, p := range row.Panels {
			fmt.Fprintf(&b, "\t%s=%s", p.Name, formatPanel(p))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderError formats a failed step.
func (r *SimulationRenderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render("✗ " + err.Error())
}

func formatPanel(p usecase.PanelSnapshot) string {
	if p.State == entity.StateHidden && p.Offset == -p.Width {
		return p.State.String()
	}
	return fmt.Sprintf("%s %s/%s", p.State, formatNumber(p.Offset), formatNumber(p.Width))
}

func formatNumber(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
