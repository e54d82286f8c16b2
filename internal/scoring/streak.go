package scoring

// StreakOutcome classifies how a finished drill relates to the previous
// play date.
type StreakOutcome int

const (
	// StreakSameDay means the user already played today; the streak is
	// unchanged.
	StreakSameDay StreakOutcome = iota
	// StreakConsecutive means the last play was yesterday; the streak
	// grows by one.
	StreakConsecutive
	// StreakBroken means the chain lapsed (or this is the first play);
	// the streak restarts at 1.
	StreakBroken
)

// EvaluateStreak compares the stored last-played date against today and
// yesterday. All three are device-local calendar-day strings; no timezone
// normalization is applied beyond that.
func EvaluateStreak(lastPlayed, today, yesterday string) StreakOutcome {
	switch lastPlayed {
	case today:
		return StreakSameDay
	case yesterday:
		return StreakConsecutive
	default:
		return StreakBroken
	}
}

// NextStreak applies a streak outcome to the current streak count.
func NextStreak(current int, outcome StreakOutcome) int {
	switch outcome {
	case StreakSameDay:
		return current
	case StreakConsecutive:
		return current + 1
	default:
		return 1
	}
}
