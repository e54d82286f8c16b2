package drill

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the drill session lifecycle state.
type Phase int

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhaseFeedback
	PhaseFinished
)

// FeedbackDelay is how long the answer feedback stays on screen before the
// next question appears.
const FeedbackDelay = 800 * time.Millisecond

// Difficulty levels. Unrecognized values fall back to novice timing.
const (
	DifficultyNovice       = "novice"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
	DifficultyMaster       = "master"
)

// TimeLimit returns the session countdown, in seconds, for a difficulty.
func TimeLimit(difficulty string) int {
	switch difficulty {
	case DifficultyNovice:
		return 300
	case DifficultyIntermediate:
		return 180
	case DifficultyAdvanced:
		return 120
	case DifficultyMaster:
		return 60
	default:
		return 300
	}
}

// Score counts correct answers out of total attempts.
type Score struct {
	Correct int
	Total   int
}

// Selection records the book the user picked for the current question.
type Selection struct {
	BookName string
	Correct  bool
}

// Result is the outcome of a settled session, handed to the progress
// adapter exactly once.
type Result struct {
	SessionID  string
	Mode       string
	Difficulty string
	Correct    int
	Total      int
	Elapsed    int
	BookStats  map[string]Score
}

// Session is the state machine for one drill:
// Ready → Playing ⇄ Feedback → Finished, with an early-exit quit edge.
// It is owned by a single drill screen and never shared.
type Session struct {
	ID         string
	Mode       string
	Difficulty string

	Phase     Phase
	Question  *Question
	Score     Score
	TimeLeft  int
	Elapsed   int
	Selection *Selection

	// BookStats accumulates per-book results across the session.
	BookStats map[string]Score

	// consumed guards the one-shot result handoff; the quit path and the
	// timer-expiry path must not both persist.
	consumed bool
}

// NewSession creates a session in Ready with the difficulty's time limit.
func NewSession(mode, difficulty string) *Session {
	return &Session{
		ID:         uuid.New().String(),
		Mode:       mode,
		Difficulty: difficulty,
		Phase:      PhaseReady,
		TimeLeft:   TimeLimit(difficulty),
		BookStats:  make(map[string]Score),
	}
}

// Start moves Ready → Playing with fresh counters and a first question.
func (s *Session) Start() {
	if s.Phase != PhaseReady {
		return
	}
	s.Score = Score{}
	s.Elapsed = 0
	s.TimeLeft = TimeLimit(s.Difficulty)
	s.Selection = nil
	s.Question = GenerateQuestion()
	s.Phase = PhasePlaying
}

// SelectAnswer evaluates the chosen book against the current question,
// updates the running score, and moves Playing → Feedback. Returns false
// if the session is not accepting answers.
func (s *Session) SelectAnswer(bookName string) bool {
	if s.Phase != PhasePlaying || s.Question == nil {
		return false
	}

	correct := bookName == s.Question.TargetBook.Name
	s.Selection = &Selection{BookName: bookName, Correct: correct}

	s.Score.Total++
	bs := s.BookStats[s.Question.TargetBook.Name]
	bs.Total++
	if correct {
		s.Score.Correct++
		bs.Correct++
	}
	s.BookStats[s.Question.TargetBook.Name] = bs

	s.Phase = PhaseFeedback
	return true
}

// Tick advances the countdown by one second. It applies in Playing and
// Feedback; reaching zero finishes the session immediately: from Playing
// the Feedback phase is bypassed, and from Feedback the pending feedback
// timeout loses to Finished. Returns true when this tick ended the session.
func (s *Session) Tick() bool {
	if s.Phase != PhasePlaying && s.Phase != PhaseFeedback {
		return false
	}

	s.Elapsed++
	s.TimeLeft--
	if s.TimeLeft <= 0 {
		s.TimeLeft = 0
		s.Phase = PhaseFinished
		return true
	}
	return false
}

// CompleteFeedback ends the feedback pause: the selection is cleared and a
// new question starts Playing. No-op unless the session is in Feedback, so
// a stale feedback timer that lost the race against Tick cannot corrupt a
// Finished session.
func (s *Session) CompleteFeedback() {
	if s.Phase != PhaseFeedback {
		return
	}
	s.Selection = nil
	s.Question = GenerateQuestion()
	s.Phase = PhasePlaying
}

// Quit abandons the session from Playing or Feedback. Returns true when the
// session had answered questions and should be persisted; with nothing
// answered the session is discarded. Either way the phase becomes Finished
// and all timers are stale.
func (s *Session) Quit() bool {
	if s.Phase != PhasePlaying && s.Phase != PhaseFeedback {
		return false
	}
	s.Phase = PhaseFinished
	if s.Score.Total > 0 {
		return true
	}
	// Nothing answered: discard without persisting.
	s.consumed = true
	return false
}

// ConsumeResult hands the session result to the caller exactly once. The
// second and later calls return false, which keeps the quit path and the
// timer-expiry path from double-counting a session.
func (s *Session) ConsumeResult() (Result, bool) {
	if s.Phase != PhaseFinished || s.consumed {
		return Result{}, false
	}
	s.consumed = true

	stats := make(map[string]Score, len(s.BookStats))
	for name, sc := range s.BookStats {
		stats[name] = sc
	}
	return Result{
		SessionID:  s.ID,
		Mode:       s.Mode,
		Difficulty: s.Difficulty,
		Correct:    s.Score.Correct,
		Total:      s.Score.Total,
		Elapsed:    s.Elapsed,
		BookStats:  stats,
	}, true
}

// Accuracy returns the running accuracy in percent, 0 when nothing has
// been answered.
func (s *Session) Accuracy() int {
	if s.Score.Total == 0 {
		return 0
	}
	return s.Score.Correct * 100 / s.Score.Total
}
