package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sworddrill/internal/bible"
	"github.com/abhisek/sworddrill/internal/scoring"
	"github.com/abhisek/sworddrill/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const titleFull = ` ███████╗██╗    ██╗ ██████╗ ██████╗ ██████╗
 ██╔════╝██║    ██║██╔═══██╗██╔══██╗██╔══██╗
 ███████╗██║ █╗ ██║██║   ██║██████╔╝██║  ██║
 ╚════██║██║███╗██║██║   ██║██╔══██╗██║  ██║
 ███████║╚███╔███╔╝╚██████╔╝██║  ██║██████╔╝
 ╚══════╝ ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═════╝`

const titleCompact = "S · W · O · R · D   D · R · I · L · L"

// contentWidth returns the uniform inner width used for all sections.
// All boxes are rendered at this width so they visually align.
func contentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(titleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(titleFull))
}

// renderVerseCard renders the daily verse in a bordered card.
func renderVerseCard(v bible.Verse, cw int) string {
	ref := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(v.Reference)

	text := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Width(cw - 6).
		Render(v.Text)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(ref + "\n" + text)
}

// renderStatsBar renders the progression stats in a double-bordered box.
func renderStatsBar(level, xpInLevel, streak, drillsToday, dailyGoal, cw int, compact bool) string {
	levelStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	goalStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			levelStyle.Render(fmt.Sprintf("Lv%d", level)),
			streakStyle.Render(fmt.Sprintf("★%d", streak)),
			goalText(drillsToday, dailyGoal, true, goalStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			levelStyle.Render(fmt.Sprintf("LEVEL %d (%d/%d XP)", level, xpInLevel, scoring.XPPerLevel)),
			streakStyle.Render(fmt.Sprintf("★ %d DAY STREAK", streak)),
			goalText(drillsToday, dailyGoal, false, goalStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func goalText(done, goal int, compact bool, active, dim lipgloss.Style) string {
	if compact {
		if done >= goal {
			return active.Render(fmt.Sprintf("⚡%d/%d", done, goal))
		}
		return dim.Render(fmt.Sprintf("⚡%d/%d", done, goal))
	}
	if done >= goal {
		return active.Render(fmt.Sprintf("⚡ GOAL MET %d/%d", done, goal))
	}
	return dim.Render(fmt.Sprintf("⚡ TODAY %d/%d", done, goal))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected int, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render(label))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderCabinetFrame wraps content in a double-border frame, centering it
// vertically and horizontally within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
