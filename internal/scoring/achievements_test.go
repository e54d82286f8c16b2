package scoring

import (
	"slices"
	"testing"
)

func TestCheckUnlocks_FirstDrill(t *testing.T) {
	prev := Stats{TotalDrills: 0}
	updated := Stats{TotalDrills: 1, CorrectAnswers: 3, TotalAnswers: 10, Streak: 1, Level: 1}

	got := CheckUnlocks(nil, prev, updated)
	if !slices.Contains(got, AchFirstDrill) {
		t.Errorf("unlocks = %v, want first_drill", got)
	}
}

func TestCheckUnlocks_Streaks(t *testing.T) {
	prev := Stats{TotalDrills: 5}
	updated := Stats{TotalDrills: 6, Streak: 3, Level: 1}

	got := CheckUnlocks(nil, prev, updated)
	if !slices.Contains(got, AchStreak3) {
		t.Errorf("streak 3 not unlocked: %v", got)
	}
	if slices.Contains(got, AchStreak7) {
		t.Errorf("streak 7 unlocked too early: %v", got)
	}

	updated.Streak = 7
	got = CheckUnlocks([]string{AchStreak3}, prev, updated)
	if !slices.Contains(got, AchStreak7) {
		t.Errorf("streak 7 not unlocked: %v", got)
	}
	if slices.Contains(got, AchStreak3) {
		t.Errorf("held streak 3 re-added: %v", got)
	}
}

func TestCheckUnlocks_DerivedMilestones(t *testing.T) {
	prev := Stats{TotalDrills: 49}
	updated := Stats{
		TotalDrills:    50,
		CorrectAnswers: 80,
		TotalAnswers:   100,
		Streak:         1,
		Level:          10,
	}

	got := CheckUnlocks([]string{AchFirstDrill, AchStreak3, AchStreak7}, prev, updated)
	for _, want := range []string{AchAccuracy80, AchLevel10, AchDrills50} {
		if !slices.Contains(got, want) {
			t.Errorf("unlocks = %v, missing %s", got, want)
		}
	}
}

func TestCheckUnlocks_AccuracyNeedsAnswers(t *testing.T) {
	// Zero answered questions never counts as 80% accuracy.
	got := CheckUnlocks(nil, Stats{TotalDrills: 1}, Stats{TotalDrills: 2})
	if slices.Contains(got, AchAccuracy80) {
		t.Errorf("accuracy_80 unlocked with no answers: %v", got)
	}
}

func TestCheckUnlocks_Idempotent(t *testing.T) {
	prev := Stats{TotalDrills: 0}
	updated := Stats{TotalDrills: 1, CorrectAnswers: 8, TotalAnswers: 10, Streak: 3, Level: 2}

	first := CheckUnlocks(nil, prev, updated)
	held := slices.Clone(first)

	second := CheckUnlocks(held, prev, updated)
	if len(second) != 0 {
		t.Errorf("second pass re-unlocked %v", second)
	}
}

func TestCatalogMatchesIDs(t *testing.T) {
	want := []string{AchFirstDrill, AchStreak3, AchStreak7, AchAccuracy80, AchLevel10, AchDrills50}
	if len(Achievements) != len(want) {
		t.Fatalf("catalog has %d entries, want %d", len(Achievements), len(want))
	}
	for i, a := range Achievements {
		if a.ID != want[i] {
			t.Errorf("Achievements[%d].ID = %s, want %s", i, a.ID, want[i])
		}
	}
}
