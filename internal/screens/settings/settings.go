package settings

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/abhisek/sworddrill/internal/drill"
	"github.com/abhisek/sworddrill/internal/progress"
	"github.com/abhisek/sworddrill/internal/router"
	"github.com/abhisek/sworddrill/internal/screen"
	"github.com/abhisek/sworddrill/internal/ui/components"
	"github.com/abhisek/sworddrill/internal/ui/layout"
	"github.com/abhisek/sworddrill/internal/ui/theme"
)

// Option cycles. Versions mirror the translations offered in the app.
var (
	skillLevels = []string{
		engine.DifficultyNovice,
		engine.DifficultyIntermediate,
		engine.DifficultyAdvanced,
		engine.DifficultyMaster,
	}
	bibleVersions = []string{"NIV", "ESV", "KJV", "NASB"}
)

const (
	rowSkillLevel = iota
	rowBibleVersion
	rowSound
	rowHaptics
	rowDailyGoal
	rowCount
)

// SettingsScreen edits stored user settings, saving on every change.
type SettingsScreen struct {
	adapter  *progress.Adapter
	settings progress.UserSettings
	selected int

	editingGoal bool
	goalInput   components.TextInput
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates the settings screen from stored settings.
func New(adapter *progress.Adapter) *SettingsScreen {
	return &SettingsScreen{
		adapter:  adapter,
		settings: adapter.LoadSettings(context.Background()),
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.editingGoal {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Save"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→/Enter", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if s.editingGoal {
			var cmd tea.Cmd
			s.goalInput, cmd = s.goalInput.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	if s.editingGoal {
		switch kmsg.String() {
		case "enter":
			if v, err := s.goalInput.NumericValue(); err == nil && v > 0 {
				s.settings.DailyGoal = v
				s.save()
			}
			s.editingGoal = false
			return s, nil
		case "esc":
			s.editingGoal = false
			return s, nil
		}
		var cmd tea.Cmd
		s.goalInput, cmd = s.goalInput.Update(msg)
		return s, cmd
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < rowCount-1 {
			s.selected++
		}
	case "left", "h":
		s.change(-1)
	case "right", "l", "enter":
		if s.selected == rowDailyGoal && kmsg.String() == "enter" {
			s.goalInput = components.NewTextInput(fmt.Sprintf("%d", s.settings.DailyGoal), true, 3)
			s.editingGoal = true
			return s, s.goalInput.Init()
		}
		s.change(1)
	}

	return s, nil
}

// change cycles or toggles the selected row by delta and saves.
func (s *SettingsScreen) change(delta int) {
	switch s.selected {
	case rowSkillLevel:
		s.settings.SkillLevel = cycle(skillLevels, s.settings.SkillLevel, delta)
	case rowBibleVersion:
		s.settings.BibleVersion = cycle(bibleVersions, s.settings.BibleVersion, delta)
	case rowSound:
		s.settings.SoundEnabled = !s.settings.SoundEnabled
	case rowHaptics:
		s.settings.HapticEnabled = !s.settings.HapticEnabled
	case rowDailyGoal:
		goal := s.settings.DailyGoal + delta
		if goal < 1 {
			goal = 1
		}
		s.settings.DailyGoal = goal
	}
	s.save()
}

func (s *SettingsScreen) save() {
	s.adapter.SaveSettings(context.Background(), s.settings)
}

// cycle returns the entry delta steps away from current, wrapping around.
func cycle(options []string, current string, delta int) string {
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	return options[idx]
}

func (s *SettingsScreen) View(width, height int) string {
	rows := []struct {
		label string
		value string
	}{
		{"Skill Level", s.settings.SkillLevel},
		{"Bible Version", s.settings.BibleVersion},
		{"Sound", onOff(s.settings.SoundEnabled)},
		{"Haptics", onOff(s.settings.HapticEnabled)},
		{"Daily Goal", fmt.Sprintf("%d drills", s.settings.DailyGoal)},
	}

	var b strings.Builder
	b.WriteString("\n\n")

	for i, row := range rows {
		value := row.value
		if i == rowDailyGoal && s.editingGoal {
			value = s.goalInput.View()
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%-16s %s", prefix, row.label, value)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("Changes are saved immediately"))

	return b.String()
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}
