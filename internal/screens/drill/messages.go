package drill

import (
	"time"

	"github.com/abhisek/sworddrill/internal/progress"
)

// timerTickMsg is sent every second to advance the countdown. Gen pairs the
// tick with the timer loop that scheduled it; ticks from an abandoned loop
// are dropped.
type timerTickMsg struct {
	Gen int
	At  time.Time
}

// feedbackDoneMsg ends the answer feedback pause. Gen pairs it with the
// answer that scheduled it, so a stale pause cannot advance a later question.
type feedbackDoneMsg struct {
	Gen int
}

// persistedMsg reports the settled drill folded into stored progress.
type persistedMsg struct {
	Updated  progress.UserProgress
	Entry    progress.DrillResult
	Unlocked []string
}
