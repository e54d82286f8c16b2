package scoring

// Achievement ids. Once unlocked an id is never revoked.
const (
	AchFirstDrill = "first_drill"
	AchStreak3    = "streak_3"
	AchStreak7    = "streak_7"
	AchAccuracy80 = "accuracy_80"
	AchLevel10    = "level_10"
	AchDrills50   = "drills_50"
)

// Achievement describes a milestone for display.
type Achievement struct {
	ID          string
	Title       string
	Description string
}

// Achievements is the full catalog, in display order.
var Achievements = []Achievement{
	{ID: AchFirstDrill, Title: "First Steps", Description: "Complete your first drill"},
	{ID: AchStreak3, Title: "On Fire", Description: "3 day streak"},
	{ID: AchStreak7, Title: "Dedicated", Description: "7 day streak"},
	{ID: AchAccuracy80, Title: "Sharp Shooter", Description: "80% accuracy"},
	{ID: AchLevel10, Title: "Rising Star", Description: "Reach level 10"},
	{ID: AchDrills50, Title: "Scholar", Description: "Complete 50 drills"},
}

// Stats is the slice of user progress the unlock checks read. Callers build
// one from the pre-update progress and one from the post-update progress.
type Stats struct {
	TotalDrills    int
	CorrectAnswers int
	TotalAnswers   int
	Streak         int
	Level          int
}

// CheckUnlocks returns the ids newly unlocked by a drill that moved progress
// from prev to updated. Ids already in held are never returned, so applying
// the check twice with the same inputs adds nothing.
func CheckUnlocks(held []string, prev, updated Stats) []string {
	has := make(map[string]bool, len(held))
	for _, id := range held {
		has[id] = true
	}

	var unlocked []string
	add := func(id string, cond bool) {
		if cond && !has[id] {
			unlocked = append(unlocked, id)
			has[id] = true
		}
	}

	add(AchFirstDrill, prev.TotalDrills == 0)
	add(AchStreak3, updated.Streak >= 3)
	add(AchStreak7, updated.Streak >= 7)
	add(AchAccuracy80, updated.TotalAnswers > 0 && updated.CorrectAnswers*100 >= updated.TotalAnswers*80)
	add(AchLevel10, updated.Level >= 10)
	add(AchDrills50, updated.TotalDrills >= 50)

	return unlocked
}
