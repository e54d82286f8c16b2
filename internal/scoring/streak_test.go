package scoring

import "testing"

func TestEvaluateStreak(t *testing.T) {
	const (
		today      = "2026-08-31"
		yesterday  = "2026-08-30"
		twoDaysAgo = "2026-08-29"
	)

	tests := []struct {
		name       string
		lastPlayed string
		want       StreakOutcome
	}{
		{"played earlier today", today, StreakSameDay},
		{"played yesterday", yesterday, StreakConsecutive},
		{"lapsed two days", twoDaysAgo, StreakBroken},
		{"never played", "", StreakBroken},
	}

	for _, tt := range tests {
		if got := EvaluateStreak(tt.lastPlayed, today, yesterday); got != tt.want {
			t.Errorf("%s: EvaluateStreak(%q) = %v, want %v", tt.name, tt.lastPlayed, got, tt.want)
		}
	}
}

func TestNextStreak(t *testing.T) {
	tests := []struct {
		current int
		outcome StreakOutcome
		want    int
	}{
		{4, StreakSameDay, 4},
		{4, StreakConsecutive, 5},
		{4, StreakBroken, 1},
		{0, StreakBroken, 1},
		{0, StreakConsecutive, 1},
	}

	for _, tt := range tests {
		if got := NextStreak(tt.current, tt.outcome); got != tt.want {
			t.Errorf("NextStreak(%d, %v) = %d, want %d", tt.current, tt.outcome, got, tt.want)
		}
	}
}
