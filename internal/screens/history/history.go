package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sworddrill/internal/progress"
	"github.com/abhisek/sworddrill/internal/router"
	"github.com/abhisek/sworddrill/internal/screen"
	"github.com/abhisek/sworddrill/internal/ui/layout"
	"github.com/abhisek/sworddrill/internal/ui/theme"
)

type historyLoadedMsg struct {
	Entries []progress.DrillResult
}

// HistoryScreen displays past drills, newest first.
type HistoryScreen struct {
	adapter  *progress.Adapter
	entries  []progress.DrillResult
	selected int
	loaded   bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(adapter *progress.Adapter) *HistoryScreen {
	return &HistoryScreen{adapter: adapter}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		return historyLoadedMsg{Entries: s.adapter.LoadHistory(context.Background())}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.entries = msg.Entries
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.entries)-1 {
				s.selected++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.entries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No drills yet. Draw your sword!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, e := range s.entries {
		dateStr := e.Date
		if t, err := time.Parse(time.RFC3339, e.Date); err == nil {
			dateStr = t.Format("Jan 02, 2006")
		}

		accuracy := 0
		if e.TotalAnswers > 0 {
			accuracy = e.CorrectAnswers * 100 / e.TotalAnswers
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-9s %d:%02d  %d/%d correct  %d%%  +%d XP",
			prefix, dateStr, e.Mode,
			e.TimeSeconds/60, e.TimeSeconds%60,
			e.CorrectAnswers, e.TotalAnswers, accuracy, e.XPEarned)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
