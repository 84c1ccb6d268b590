// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/sidepanel/internal/bootstrap"
	"github.com/bnema/sidepanel/internal/cli/styles"
	"github.com/bnema/sidepanel/internal/domain/entity"
	"github.com/bnema/sidepanel/internal/infrastructure/config"
	"github.com/bnema/sidepanel/internal/infrastructure/terminal"
	"github.com/bnema/sidepanel/internal/logging"
	"github.com/bnema/sidepanel/internal/ui/layout"
)

const (
	defaultFPS   = 60
	footerHeight = 1
)

// TaskMsg runs a function on the UI goroutine, e.g. work posted from the
// config watcher.
type TaskMsg func()

type tickMsg time.Time

// ShellModel drives a runtime from terminal input and renders it.
type ShellModel struct {
	// UI components
	help   help.Model
	keys   shellKeyMap
	canvas *terminal.Canvas
	theme  *styles.Theme

	// State
	width    int
	height   int
	pressed  bool
	ticking  bool
	status   string
	showHelp bool

	// Dependencies
	ctx     context.Context
	runtime *bootstrap.Runtime
}

type panelBinding struct {
	toggle key.Binding
	fix    key.Binding
	panel  *layout.Panel
}

// shellKeyMap defines keybindings for the interactive shell.
type shellKeyMap struct {
	Panels   []panelBinding
	Mode     key.Binding
	CloseAll key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k shellKeyMap) ShortHelp() []key.Binding {
	bindings := make([]key.Binding, 0, len(k.Panels)+4)
	for _, pb := range k.Panels {
		bindings = append(bindings, pb.toggle)
	}
	return append(bindings, k.Mode, k.CloseAll, k.Help, k.Quit)
}

// FullHelp returns keybindings for the full help view.
func (k shellKeyMap) FullHelp() [][]key.Binding {
	toggles := make([]key.Binding, 0, len(k.Panels))
	fixes := make([]key.Binding, 0, len(k.Panels))
	for _, pb := range k.Panels {
		toggles = append(toggles, pb.toggle)
		fixes = append(fixes, pb.fix)
	}
	return [][]key.Binding{
		toggles,
		fixes,
		{k.Mode, k.CloseAll},
		{k.Help, k.Quit},
	}
}

func newShellKeyMap(rt *bootstrap.Runtime) shellKeyMap {
	keys := shellKeyMap{
		Mode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "cycle mode"),
		),
		CloseAll: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close panels"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}

	cfg := rt.Config()
	for i, p := range rt.Panels() {
		if i >= len(cfg.Panels) || cfg.Panels[i].Key == "" {
			continue
		}
		k := cfg.Panels[i].Key
		label := cfg.Panels[i].Title
		if label == "" {
			label = p.Name()
		}
		label = strings.ToLower(label)
		keys.Panels = append(keys.Panels, panelBinding{
			toggle: key.NewBinding(key.WithKeys(k), key.WithHelp(k, label)),
			fix: key.NewBinding(
				key.WithKeys(strings.ToUpper(k)),
				key.WithHelp(strings.ToUpper(k), "pin "+label),
			),
			panel: p,
		})
	}
	return keys
}

// NewShellModel creates the interactive model for a built runtime.
func NewShellModel(ctx context.Context, theme *styles.Theme, rt *bootstrap.Runtime) *ShellModel {
	m := &ShellModel{
		help:    styles.NewHelp(theme),
		keys:    newShellKeyMap(rt),
		canvas:  terminal.NewCanvas(theme.CanvasStyles()),
		theme:   theme,
		ctx:     logging.WithComponent(ctx, "tui"),
		runtime: rt,
	}
	m.stylePanels()

	for _, p := range rt.Panels() {
		for _, sig := range []entity.Signal{entity.SignalShow, entity.SignalHide, entity.SignalFix, entity.SignalUnfix} {
			p.On(sig, func(s entity.Signal) {
				m.status = fmt.Sprintf("%s: %s", p.Name(), s)
			})
		}
	}
	return m
}

// Init implements tea.Model. The first WindowSizeMsg lays the shell out.
func (m *ShellModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.runtime.Resize(float64(msg.Width), float64(max(msg.Height-footerHeight, 0)))
		return m, m.animate()

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, m.animate()

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.runtime.Recognizer.Cancel()
			return m, tea.Quit
		}
		m.handleKey(msg)
		return m, m.animate()

	case tickMsg:
		m.ticking = false
		m.runtime.Animator.Step(time.Time(msg))
		return m, m.animate()

	case TaskMsg:
		if msg != nil {
			msg()
		}
		return m, m.animate()
	}
	return m, nil
}

// ApplyConfig follows a reloaded configuration. A rejected configuration
// leaves the shell untouched and shows the error in the status line. Call it
// from the UI goroutine only.
func (m *ShellModel) ApplyConfig(cfg *config.Config) {
	if err := m.runtime.Apply(cfg); err != nil {
		m.status = "config: " + err.Error()
		return
	}
	m.theme = styles.NewTheme(cfg)
	m.help = styles.NewHelp(m.theme)
	m.help.Width = m.width
	m.help.ShowAll = m.showHelp
	m.canvas.SetStyles(m.theme.CanvasStyles())
	m.stylePanels()
	m.status = "configuration reloaded"
}

func (m *ShellModel) handleMouse(msg tea.MouseMsg) {
	r := m.runtime.Recognizer
	x, y := float64(msg.X), float64(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pressed = true
		r.Press(x, y)
	case tea.MouseActionMotion:
		if m.pressed {
			r.Motion(x, y)
		}
	case tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			r.Release(x, y)
		}
	}
}

func (m *ShellModel) handleKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return
	case key.Matches(msg, m.keys.Mode):
		shell := m.runtime.Shell()
		next := nextMode(shell.Mode())
		shell.SetMode(next)
		m.status = "mode: " + next.String()
		logging.FromContext(m.ctx).Debug().Str("mode", next.String()).Msg("mode changed")
		return
	case key.Matches(msg, m.keys.CloseAll):
		for _, p := range m.runtime.Panels() {
			if p.Visible() && !p.Fixed() {
				p.Hide()
			}
		}
		return
	}

	for _, pb := range m.keys.Panels {
		switch {
		case key.Matches(msg, pb.toggle):
			pb.panel.Toggle()
			return
		case key.Matches(msg, pb.fix):
			if pb.panel.Fixed() {
				pb.panel.Unfix()
			} else {
				pb.panel.Fix()
			}
			return
		}
	}
}

// animate schedules the next frame while a transition runs.
func (m *ShellModel) animate() tea.Cmd {
	if m.ticking || !m.runtime.Animator.Active() {
		return nil
	}
	m.ticking = true
	return tea.Tick(frameInterval(m.runtime.Config().Transition.FPS), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *ShellModel) stylePanels() {
	els := make([]*terminal.Element, 0, len(m.runtime.Panels()))
	for _, p := range m.runtime.Panels() {
		if el, ok := p.Surface().(*terminal.Element); ok {
			els = append(els, el)
		}
	}
	m.theme.StylePanels(els)
}

// View implements tea.Model.
func (m *ShellModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.showHelp {
		return m.theme.Box.Render(m.help.View(m.keys))
	}
	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.theme.Subtle.Render(m.status) + "  " + footer
	}
	return m.canvas.Render(m.runtime.Root) + "\n" + footer
}

// Status returns the last lifecycle or configuration message.
func (m *ShellModel) Status() string {
	return m.status
}

func nextMode(mode entity.Mode) entity.Mode {
	switch mode {
	case entity.ModePush:
		return entity.ModeOver
	case entity.ModeOver:
		return entity.ModeUnder
	default:
		return entity.ModePush
	}
}

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = defaultFPS
	}
	return time.Second / time.Duration(fps)
}
