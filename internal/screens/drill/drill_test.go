package drill

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	engine "github.com/abhisek/sworddrill/internal/drill"
	"github.com/abhisek/sworddrill/internal/progress"
	"github.com/abhisek/sworddrill/internal/router"
	"github.com/abhisek/sworddrill/internal/store"
)

func newTestScreen(difficulty string) *DrillScreen {
	adapter := progress.NewAdapter(store.NewMemory(), nil, nil)
	return New(adapter, "timed", difficulty)
}

func pressEnter(s *DrillScreen) tea.Cmd {
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func tick(s *DrillScreen) tea.Cmd {
	_, cmd := s.Update(timerTickMsg{Gen: s.timerGen, At: time.Now()})
	return cmd
}

func TestAnyKeyStartsDrill(t *testing.T) {
	s := newTestScreen(engine.DifficultyMaster)

	if s.session.Phase != engine.PhaseReady {
		t.Fatalf("phase = %v, want Ready", s.session.Phase)
	}

	cmd := pressEnter(s)
	if s.session.Phase != engine.PhasePlaying {
		t.Fatalf("phase = %v, want Playing", s.session.Phase)
	}
	if cmd == nil {
		t.Fatal("starting the drill should arm the timer")
	}
	if len(s.grid.Books) != engine.OptionCount {
		t.Errorf("grid has %d books, want %d", len(s.grid.Books), engine.OptionCount)
	}
}

func TestEscFromReadyLeaves(t *testing.T) {
	s := newTestScreen(engine.DifficultyNovice)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestStaleTickIgnored(t *testing.T) {
	s := newTestScreen(engine.DifficultyMaster)
	pressEnter(s)

	stale := s.timerGen
	s.timerGen++ // simulate the session moving on

	s.Update(timerTickMsg{Gen: stale, At: time.Now()})
	if s.session.Elapsed != 0 {
		t.Errorf("stale tick advanced the clock: elapsed = %d", s.session.Elapsed)
	}
}

func TestAnswerSchedulesFeedback(t *testing.T) {
	s := newTestScreen(engine.DifficultyNovice)
	pressEnter(s)

	gen := s.feedbackGen
	cmd := pressEnter(s) // submit the grid cursor's cell
	if s.session.Phase != engine.PhaseFeedback {
		t.Fatalf("phase = %v, want Feedback", s.session.Phase)
	}
	if cmd == nil {
		t.Fatal("answer should schedule the feedback pause")
	}
	if s.feedbackGen != gen+1 {
		t.Errorf("feedbackGen = %d, want %d", s.feedbackGen, gen+1)
	}
}

func TestFeedbackDoneAdvancesQuestion(t *testing.T) {
	s := newTestScreen(engine.DifficultyNovice)
	pressEnter(s)
	pressEnter(s)

	oldQuestion := s.session.Question
	s.Update(feedbackDoneMsg{Gen: s.feedbackGen})

	if s.session.Phase != engine.PhasePlaying {
		t.Fatalf("phase = %v, want Playing", s.session.Phase)
	}
	if s.session.Question == oldQuestion {
		t.Error("question was not replaced after feedback")
	}
	if s.grid.Submitted {
		t.Error("grid was not reset for the new question")
	}
}

func TestStaleFeedbackIgnored(t *testing.T) {
	s := newTestScreen(engine.DifficultyNovice)
	pressEnter(s)
	pressEnter(s)

	stale := s.feedbackGen
	s.feedbackGen++

	s.Update(feedbackDoneMsg{Gen: stale})
	if s.session.Phase != engine.PhaseFeedback {
		t.Errorf("stale feedback advanced the session: phase = %v", s.session.Phase)
	}
}

func TestTimerExpiryPersistsOnce(t *testing.T) {
	s := newTestScreen(engine.DifficultyMaster)
	pressEnter(s)
	pressEnter(s) // answer one question so there is something to save

	var persistCmd tea.Cmd
	for i := 0; i < engine.TimeLimit(engine.DifficultyMaster); i++ {
		persistCmd = tick(s)
	}

	if s.session.Phase != engine.PhaseFinished {
		t.Fatalf("phase = %v, want Finished", s.session.Phase)
	}
	if persistCmd == nil {
		t.Fatal("expiry did not produce a persist command")
	}

	msg, ok := persistCmd().(persistedMsg)
	if !ok {
		t.Fatalf("expected persistedMsg, got %T", persistCmd())
	}
	if msg.Entry.TotalAnswers != 1 {
		t.Errorf("persisted %d answers, want 1", msg.Entry.TotalAnswers)
	}
	if msg.Updated.TotalDrills != 1 {
		t.Errorf("TotalDrills = %d, want 1", msg.Updated.TotalDrills)
	}

	// The pending feedback pause lost the race; it must not revive the drill.
	s.Update(feedbackDoneMsg{Gen: s.feedbackGen})
	if s.session.Phase != engine.PhaseFinished {
		t.Errorf("stale feedback revived a finished drill: %v", s.session.Phase)
	}
}

func TestQuitWithoutAnswersDiscards(t *testing.T) {
	s := newTestScreen(engine.DifficultyNovice)
	pressEnter(s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !s.showQuitConfirm {
		t.Fatal("esc did not open the quit prompt")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'y'})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Fatalf("quit with nothing answered should pop, got %T", cmd())
	}
}

func TestQuitWithAnswersPersists(t *testing.T) {
	s := newTestScreen(engine.DifficultyNovice)
	pressEnter(s)
	pressEnter(s) // answer one question

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'y'})
	if cmd == nil {
		t.Fatal("expected a persist command")
	}

	msg, ok := cmd().(persistedMsg)
	if !ok {
		t.Fatalf("expected persistedMsg, got %T", cmd())
	}
	if msg.Entry.TotalAnswers != 1 {
		t.Errorf("persisted %d answers, want 1", msg.Entry.TotalAnswers)
	}
}

func TestQuitPromptDismiss(t *testing.T) {
	s := newTestScreen(engine.DifficultyNovice)
	pressEnter(s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s.Update(tea.KeyPressMsg{Code: 'n'})
	if s.showQuitConfirm {
		t.Error("quit prompt not dismissed")
	}
	if s.session.Phase != engine.PhasePlaying {
		t.Errorf("phase = %v, want Playing", s.session.Phase)
	}
}

func TestRestartReplacesScreen(t *testing.T) {
	s := newTestScreen(engine.DifficultyMaster)
	pressEnter(s)
	pressEnter(s)
	for i := 0; i < engine.TimeLimit(engine.DifficultyMaster); i++ {
		tick(s)
	}
	s.Update(persistedMsg{})

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r'})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	next, ok := msg.Screen.(*DrillScreen)
	if !ok {
		t.Fatalf("expected a drill screen, got %T", msg.Screen)
	}
	if next.session.Phase != engine.PhaseReady {
		t.Errorf("restarted drill phase = %v, want Ready", next.session.Phase)
	}
}
