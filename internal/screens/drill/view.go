package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/sworddrill/internal/drill"
	"github.com/abhisek/sworddrill/internal/scoring"
	"github.com/abhisek/sworddrill/internal/ui/theme"
)

func (s *DrillScreen) View(width, height int) string {
	if s.showQuitConfirm {
		return renderQuitConfirm(width)
	}

	switch s.session.Phase {
	case engine.PhaseReady:
		return s.renderReady(width)
	case engine.PhaseFinished:
		return s.renderFinished(width)
	default:
		return s.renderPlaying(width)
	}
}

// renderReady renders the pre-drill briefing.
func (s *DrillScreen) renderReady(width int) string {
	limit := engine.TimeLimit(s.session.Difficulty)

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Get ready!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("Find each verse's book as fast as you can.\nYou have %s to answer as many as possible.", formatClock(limit))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s drill · %s", s.session.Mode, s.session.Difficulty)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("press any key to draw"))

	return b.String()
}

// renderPlaying renders the active question with the countdown and score.
// During the feedback pause the grid freezes with the verdict colors.
func (s *DrillScreen) renderPlaying(width int) string {
	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s drill", s.session.Mode))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d/%d  %s %s",
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			s.session.Score.Correct,
			s.session.Score.Total,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("⏱"),
			formatClock(s.session.TimeLeft),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	q := s.session.Question
	if q == nil {
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Find this verse:"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("%s %d:%d", q.TargetBook.Name, q.Chapter, q.Verse)))
	b.WriteString("\n\n")

	b.WriteString(s.grid.View(width))

	if s.session.Phase == engine.PhaseFeedback && s.session.Selection != nil {
		b.WriteString("\n")
		if s.session.Selection.Correct {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Success).
				Bold(true).
				Render("Correct!"))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Bold(true).
				Render(fmt.Sprintf("Not quite — that was %s", q.TargetBook.Name)))
		}
	}

	return b.String()
}

// renderFinished renders the drill summary once progress is saved.
func (s *DrillScreen) renderFinished(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Drill complete!"))
	b.WriteString("\n\n")

	if s.summary == nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Saving..."))
		return b.String()
	}

	entry := s.summary.Entry
	accuracy := 0
	if entry.TotalAnswers > 0 {
		accuracy = entry.CorrectAnswers * 100 / entry.TotalAnswers
	}

	statsLine := fmt.Sprintf("Answered: %d        Correct: %d        Accuracy: %d%%",
		entry.TotalAnswers, entry.CorrectAnswers, accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render(fmt.Sprintf("+%d XP", entry.XPEarned)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Level %d · %d day streak", s.summary.Updated.Level, s.summary.Updated.Streak)))

	if len(s.summary.Unlocked) > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render("Achievement unlocked!"))
		b.WriteString("\n")
		for _, id := range s.summary.Unlocked {
			for _, a := range scoring.Achievements {
				if a.ID == id {
					b.WriteString(lipgloss.NewStyle().
						Width(width).
						Align(lipgloss.Center).
						Foreground(theme.Text).
						Render(fmt.Sprintf("⚔ %s — %s", a.Title, a.Description)))
					b.WriteString("\n")
				}
			}
		}
	}

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End drill early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answered questions still count."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end drill"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// formatClock renders seconds as m:ss.
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
