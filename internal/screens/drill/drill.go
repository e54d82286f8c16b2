package drill

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	engine "github.com/abhisek/sworddrill/internal/drill"
	"github.com/abhisek/sworddrill/internal/progress"
	"github.com/abhisek/sworddrill/internal/router"
	"github.com/abhisek/sworddrill/internal/screen"
	"github.com/abhisek/sworddrill/internal/ui/components"
	"github.com/abhisek/sworddrill/internal/ui/layout"
)

// DrillScreen runs one drill session from ready to finished and folds the
// result into stored progress exactly once.
type DrillScreen struct {
	adapter *progress.Adapter
	session *engine.Session
	grid    components.BookGrid

	// Generation counters invalidate in-flight timer and feedback commands
	// after the session moves on.
	timerGen    int
	feedbackGen int

	showQuitConfirm bool
	persisting      bool
	summary         *persistedMsg
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a drill screen for the given mode and difficulty.
func New(adapter *progress.Adapter, mode, difficulty string) *DrillScreen {
	return &DrillScreen{
		adapter: adapter,
		session: engine.NewSession(mode, difficulty),
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	return nil
}

func (s *DrillScreen) Title() string {
	return "Drill"
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End drill"},
			{Key: "N", Description: "Keep going"},
		}
	}
	switch s.session.Phase {
	case engine.PhaseReady:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Draw"},
			{Key: "Esc", Description: "Back"},
		}
	case engine.PhaseFinished:
		return []layout.KeyHint{
			{Key: "R", Description: "Drill again"},
			{Key: "Esc", Description: "Home"},
		}
	default:
		return []layout.KeyHint{
			{Key: "←↑↓→", Description: "Choose book"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return s.handleTimerTick(msg)

	case feedbackDoneMsg:
		return s.handleFeedbackDone(msg)

	case persistedMsg:
		s.persisting = false
		s.summary = &msg
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *DrillScreen) handleTimerTick(msg timerTickMsg) (screen.Screen, tea.Cmd) {
	if msg.Gen != s.timerGen {
		return s, nil
	}
	if s.session.Tick() {
		// Countdown hit zero. The session is Finished regardless of any
		// feedback pause or quit prompt still showing.
		s.showQuitConfirm = false
		return s, s.persistResult()
	}
	return s, s.tickCmd()
}

func (s *DrillScreen) handleFeedbackDone(msg feedbackDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Gen != s.feedbackGen {
		return s, nil
	}
	s.session.CompleteFeedback()
	if s.session.Phase == engine.PhasePlaying {
		s.grid = newGrid(s.session.Question)
	}
	return s, nil
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			s.showQuitConfirm = false
			s.timerGen++
			if s.session.Quit() {
				return s, s.persistResult()
			}
			return s, popCmd()
		case "n", "N", "esc":
			s.showQuitConfirm = false
		}
		return s, nil
	}

	switch s.session.Phase {
	case engine.PhaseReady:
		switch key {
		case "esc":
			return s, popCmd()
		default:
			s.session.Start()
			s.grid = newGrid(s.session.Question)
			s.timerGen++
			return s, s.tickCmd()
		}

	case engine.PhasePlaying:
		if key == "esc" {
			s.showQuitConfirm = true
			return s, nil
		}
		var cmd tea.Cmd
		s.grid, cmd = s.grid.Update(msg)
		if s.grid.Submitted {
			if chosen, ok := s.grid.Chosen(); ok {
				s.session.SelectAnswer(chosen.Name)
				s.feedbackGen++
				return s, s.feedbackCmd()
			}
		}
		return s, cmd

	case engine.PhaseFeedback:
		if key == "esc" {
			s.showQuitConfirm = true
		}
		// Feedback dismisses on its own timer; other keys are ignored.
		return s, nil

	case engine.PhaseFinished:
		if s.persisting {
			return s, nil
		}
		switch key {
		case "r", "R":
			next := New(s.adapter, s.session.Mode, s.session.Difficulty)
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case "enter", "esc":
			return s, popCmd()
		}
	}

	return s, nil
}

// persistResult hands the one-shot session result to the progress adapter.
// A session that was already consumed (quit-discard racing expiry) just
// leaves the screen.
func (s *DrillScreen) persistResult() tea.Cmd {
	res, ok := s.session.ConsumeResult()
	if !ok {
		return popCmd()
	}

	s.persisting = true
	adapter := s.adapter
	return func() tea.Msg {
		ctx := context.Background()
		prev := adapter.LoadProgress(ctx)
		updated, entry := adapter.ApplyResult(prev, res)
		unlocked := updated.Achievements[len(prev.Achievements):]
		adapter.Persist(ctx, updated, entry)
		return persistedMsg{Updated: updated, Entry: entry, Unlocked: unlocked}
	}
}

func (s *DrillScreen) tickCmd() tea.Cmd {
	gen := s.timerGen
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg{Gen: gen, At: t}
	})
}

func (s *DrillScreen) feedbackCmd() tea.Cmd {
	gen := s.feedbackGen
	return tea.Tick(engine.FeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{Gen: gen}
	})
}

func newGrid(q *engine.Question) components.BookGrid {
	correct := 0
	for i, b := range q.Options {
		if b.Name == q.TargetBook.Name {
			correct = i
			break
		}
	}
	return components.NewBookGrid(q.Options, correct)
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}
