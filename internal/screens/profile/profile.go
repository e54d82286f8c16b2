package profile

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sworddrill/internal/progress"
	"github.com/abhisek/sworddrill/internal/router"
	"github.com/abhisek/sworddrill/internal/scoring"
	"github.com/abhisek/sworddrill/internal/screen"
	"github.com/abhisek/sworddrill/internal/ui/components"
	"github.com/abhisek/sworddrill/internal/ui/layout"
	"github.com/abhisek/sworddrill/internal/ui/theme"
)

// ProfileScreen shows lifetime stats, achievements, and book accuracy.
type ProfileScreen struct {
	prog progress.UserProgress
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates the profile screen from stored progress.
func New(adapter *progress.Adapter) *ProfileScreen {
	return &ProfileScreen{prog: adapter.LoadProgress(context.Background())}
}

func (s *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (s *ProfileScreen) Title() string {
	return "Profile"
}

func (s *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ProfileScreen) View(width, height int) string {
	p := s.prog
	var b strings.Builder
	b.WriteString("\n")

	// Level + XP bar.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Level %d", p.Level)))
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(scoring.XPInLevel(p.XP))/float64(scoring.XPPerLevel), false, min(width-20, 40))
	xpLine := fmt.Sprintf("%s  %d/%d XP", bar.View(), scoring.XPInLevel(p.XP), scoring.XPPerLevel)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, xpLine))
	b.WriteString("\n\n")

	// Lifetime stats.
	accuracy := 0
	if p.TotalAnswers > 0 {
		accuracy = p.CorrectAnswers * 100 / p.TotalAnswers
	}
	statsLine := fmt.Sprintf("Drills: %d    Accuracy: %d%%    Streak: %d days",
		p.TotalDrills, accuracy, p.Streak)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	if p.FastestTime > 0 {
		timeLine := fmt.Sprintf("Fastest drill: %ds    Average: %ds", p.FastestTime, p.AverageTime)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(timeLine))
		b.WriteString("\n")
	}

	// Achievements.
	b.WriteString("\n")
	b.WriteString(sectionHeading("Achievements", width))
	for _, a := range scoring.Achievements {
		var line string
		if p.HasAchievement(a.ID) {
			line = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("⚔ "+a.Title) +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+a.Description)
		} else {
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render("· " + a.Title + "  " + a.Description)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	// Best-known books.
	if best := bestBooks(p, 5); len(best) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionHeading("Best Books", width))
		for _, bs := range best {
			line := fmt.Sprintf("%-16s %d/%d correct", bs.name, bs.stat.Correct, bs.stat.Total)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func sectionHeading(title string, width int) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(title)) +
		"\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) + "\n"
}

type bookScore struct {
	name string
	stat progress.BookStat
}

// bestBooks returns up to n books ranked by correct answers, ties broken by
// accuracy then name for a stable listing.
func bestBooks(p progress.UserProgress, n int) []bookScore {
	var scores []bookScore
	for name, stat := range p.BookStats {
		if stat.Total == 0 {
			continue
		}
		scores = append(scores, bookScore{name: name, stat: stat})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].stat.Correct != scores[j].stat.Correct {
			return scores[i].stat.Correct > scores[j].stat.Correct
		}
		ai := scores[i].stat.Correct * scores[j].stat.Total
		aj := scores[j].stat.Correct * scores[i].stat.Total
		if ai != aj {
			return ai > aj
		}
		return scores[i].name < scores[j].name
	})
	if len(scores) > n {
		scores = scores[:n]
	}
	return scores
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
