package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sworddrill/internal/bible"
	"github.com/abhisek/sworddrill/internal/progress"
	"github.com/abhisek/sworddrill/internal/router"
	"github.com/abhisek/sworddrill/internal/scoring"
	"github.com/abhisek/sworddrill/internal/screen"
	drillscreen "github.com/abhisek/sworddrill/internal/screens/drill"
	"github.com/abhisek/sworddrill/internal/screens/history"
	"github.com/abhisek/sworddrill/internal/screens/profile"
	"github.com/abhisek/sworddrill/internal/screens/settings"
	"github.com/abhisek/sworddrill/internal/screens/train"
	"github.com/abhisek/sworddrill/internal/ui/components"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	adapter    *progress.Adapter
	menu       components.Menu
	menuLabels []string

	level      int
	xpInLevel  int
	streak     int
	dailyGoal  int
	drillsToday int
	verse      bible.Verse
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen, loading the stored progress for the stats bar.
func New(adapter *progress.Adapter) *HomeScreen {
	ctx := context.Background()
	p := adapter.LoadProgress(ctx)
	s := adapter.LoadSettings(ctx)
	now := time.Now()

	menuLabels := []string{"START DRILL", "TRAINING MODES", "PROFILE", "HISTORY", "SETTINGS", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				st := adapter.LoadSettings(context.Background())
				return router.PushScreenMsg{
					Screen: drillscreen.New(adapter, "timed", st.SkillLevel),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: train.New(adapter)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: profile.New(adapter)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(adapter)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(adapter)}
			}
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		adapter:     adapter,
		menu:        components.NewMenu(items),
		menuLabels:  menuLabels,
		level:       p.Level,
		xpInLevel:   scoring.XPInLevel(p.XP),
		streak:      p.Streak,
		dailyGoal:   s.DailyGoal,
		drillsToday: drillsToday(adapter, now),
		verse:       bible.DailyVerse(now),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderVerseCard(h.verse, cw))
	}

	sections = append(sections, renderStatsBar(
		h.level, h.xpInLevel, h.streak, h.drillsToday, h.dailyGoal, cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// drillsToday counts history entries recorded on the calendar day of now.
func drillsToday(adapter *progress.Adapter, now time.Time) int {
	today := now.Format("2006-01-02")
	count := 0
	for _, e := range adapter.LoadHistory(context.Background()) {
		if len(e.Date) >= len(today) && e.Date[:len(today)] == today {
			count++
		}
	}
	return count
}
