package progress

import "time"

// Storage keys for the three persisted records.
const (
	KeyProgress = "sworddrill:progress"
	KeySettings = "sworddrill:settings"
	KeyHistory  = "sworddrill:history"
)

// HistoryCap is the maximum number of retained drill results; older entries
// are silently dropped.
const HistoryCap = 100

// BookStat counts correct answers out of total attempts for one book.
type BookStat struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// UserProgress is the persisted progression record, a singleton per user.
// Invariant: Level == XP/100 + 1 after every update.
type UserProgress struct {
	XP             int                 `json:"xp"`
	Level          int                 `json:"level"`
	Streak         int                 `json:"streak"`
	LastPlayedDate string              `json:"lastPlayedDate"`
	TotalDrills    int                 `json:"totalDrills"`
	CorrectAnswers int                 `json:"correctAnswers"`
	TotalAnswers   int                 `json:"totalAnswers"`
	FastestTime    int                 `json:"fastestTime"`
	AverageTime    int                 `json:"averageTime"`
	BookStats      map[string]BookStat `json:"bookStats"`
	Achievements   []string            `json:"achievements"`
}

// DefaultProgress returns a fresh progress record.
func DefaultProgress() UserProgress {
	return UserProgress{
		Level:        1,
		BookStats:    make(map[string]BookStat),
		Achievements: []string{},
	}
}

// HasAchievement reports whether the given id is already unlocked.
func (p UserProgress) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// UserSettings is the persisted settings record, a singleton per user.
type UserSettings struct {
	BibleVersion  string `json:"bibleVersion"`
	SkillLevel    string `json:"skillLevel"`
	SoundEnabled  bool   `json:"soundEnabled"`
	HapticEnabled bool   `json:"hapticEnabled"`
	DailyGoal     int    `json:"dailyGoal"`
}

// DefaultSettings returns the out-of-the-box settings.
func DefaultSettings() UserSettings {
	return UserSettings{
		BibleVersion:  "NIV",
		SkillLevel:    "novice",
		SoundEnabled:  true,
		HapticEnabled: true,
		DailyGoal:     5,
	}
}

// DrillResult is one entry of the append-only drill history, newest first.
// Entries are never mutated after creation.
type DrillResult struct {
	ID             string `json:"id"`
	Date           string `json:"date"`
	Mode           string `json:"mode"`
	Difficulty     string `json:"difficulty"`
	CorrectAnswers int    `json:"correctAnswers"`
	TotalAnswers   int    `json:"totalAnswers"`
	TimeSeconds    int    `json:"timeSeconds"`
	XPEarned       int    `json:"xpEarned"`
}

// Clock supplies the current time; injected so tests control "today".
type Clock interface {
	Now() time.Time
}

// SystemClock is the device-local wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// dayString formats t as a device-local calendar-day string.
func dayString(t time.Time) string {
	return t.Format("2006-01-02")
}
