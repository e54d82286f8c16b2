package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sworddrill/internal/progress"
	"github.com/abhisek/sworddrill/internal/router"
	"github.com/abhisek/sworddrill/internal/screen"
	"github.com/abhisek/sworddrill/internal/screens/home"
	"github.com/abhisek/sworddrill/internal/screens/welcome"
	"github.com/abhisek/sworddrill/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Adapter *progress.Adapter
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	adapter *progress.Adapter
	router  *router.Router
	width   int
	height  int

	level  int
	streak int
}

// newAppModel creates the root model starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	splash := welcome.New(func() screen.Screen {
		return home.New(opts.Adapter)
	})
	m := AppModel{
		adapter: opts.Adapter,
		router:  router.New(splash),
	}
	m.refreshStats()
	return m
}

// refreshStats reloads the header's level and streak from storage.
func (m *AppModel) refreshStats() {
	p := m.adapter.LoadProgress(context.Background())
	m.level = p.Level
	m.streak = p.Streak
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		// Navigation is the natural moment to pick up progress written by a
		// finished drill.
		cmd := m.router.Update(msg)
		m.refreshStats()
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()

	// The welcome splash renders frameless.
	if _, isSplash := active.(*welcome.WelcomeScreen); isSplash {
		v.SetContent(active.View(m.width, m.height))
		return v
	}

	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.level, m.streak, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints asks the active screen for custom hints, falling back to
// stack-position defaults.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
