package drill

// Mode is a training mode offered on the train screen. Modes share the same
// session mechanics; they differ in framing and default difficulty.
type Mode struct {
	ID          string
	Title       string
	Description string
	Difficulty  string
}

// Modes is the training-mode catalog, in display order.
var Modes = []Mode{
	{
		ID:          "timed",
		Title:       "Timed Sword Drill",
		Description: "Race against the clock to find Bible verses quickly",
		Difficulty:  DifficultyNovice,
	},
	{
		ID:          "speed",
		Title:       "Speed Mastery",
		Description: "Progressive difficulty with shrinking time limits",
		Difficulty:  DifficultyMaster,
	},
	{
		ID:          "category",
		Title:       "Category Mastery",
		Description: "Master books by category: Pentateuch, Gospels, and more",
		Difficulty:  DifficultyIntermediate,
	},
	{
		ID:          "marathon",
		Title:       "Marathon Mode",
		Description: "Extended training session for serious Bible warriors",
		Difficulty:  DifficultyAdvanced,
	},
	{
		ID:          "practice",
		Title:       "Practice Mode",
		Description: "No pressure - just learning at your own pace",
		Difficulty:  DifficultyNovice,
	},
}
