package train

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/sworddrill/internal/drill"
	"github.com/abhisek/sworddrill/internal/progress"
	"github.com/abhisek/sworddrill/internal/router"
	"github.com/abhisek/sworddrill/internal/screen"
	drillscreen "github.com/abhisek/sworddrill/internal/screens/drill"
	"github.com/abhisek/sworddrill/internal/ui/layout"
	"github.com/abhisek/sworddrill/internal/ui/theme"
)

// TrainScreen lists the training modes as selectable cards.
type TrainScreen struct {
	adapter  *progress.Adapter
	selected int
}

var _ screen.Screen = (*TrainScreen)(nil)
var _ screen.KeyHintProvider = (*TrainScreen)(nil)

// New creates the training-mode picker.
func New(adapter *progress.Adapter) *TrainScreen {
	return &TrainScreen{adapter: adapter}
}

func (s *TrainScreen) Init() tea.Cmd {
	return nil
}

func (s *TrainScreen) Title() string {
	return "Training Modes"
}

func (s *TrainScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose mode"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *TrainScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(engine.Modes)-1 {
			s.selected++
		}
	case "enter":
		mode := engine.Modes[s.selected]
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: drillscreen.New(s.adapter, mode.ID, mode.Difficulty),
			}
		}
	}

	return s, nil
}

func (s *TrainScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	cardWidth := width - 12
	if cardWidth > 64 {
		cardWidth = 64
	}
	if cardWidth < 30 {
		cardWidth = 30
	}

	for i, mode := range engine.Modes {
		title := mode.Title
		if i == s.selected {
			title = "▸ " + title
		}

		meta := fmt.Sprintf("%s · %s", mode.Difficulty, formatClock(engine.TimeLimit(mode.Difficulty)))

		body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(title) + "\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Width(cardWidth-4).Render(mode.Description) + "\n" +
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(meta)

		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Width(cardWidth).
			Padding(0, 1)
		if i == s.selected {
			card = card.BorderForeground(theme.Primary)
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card.Render(body)))
		b.WriteString("\n")
	}

	return b.String()
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
