package scoring

// XPPerLevel is the experience span of a single level.
const XPPerLevel = 100

// speedBonusWindow is the elapsed-seconds budget under which a session still
// earns a speed bonus.
const speedBonusWindow = 300

// LevelFromXP returns the level for a cumulative XP total. Levels start at 1
// and advance every XPPerLevel points.
func LevelFromXP(xp int) int {
	return xp/XPPerLevel + 1
}

// XPForLevel returns the cumulative XP threshold at which level begins.
func XPForLevel(level int) int {
	return (level - 1) * XPPerLevel
}

// XPInLevel returns how far into the current level an XP total sits.
func XPInLevel(xp int) int {
	return xp % XPPerLevel
}

// Reward computes the XP earned by a finished drill: 10 per correct answer,
// an accuracy bonus of up to 50, and a speed bonus that shrinks by 1 per 10
// elapsed seconds, flooring at 0 past speedBonusWindow. There is no upper
// cap. total must be >= 1; callers with an unanswered session substitute
// max(total, 1).
func Reward(correct, total, elapsedSeconds int) int {
	base := correct * 10
	accuracy := correct * 50 / total
	speed := (speedBonusWindow - elapsedSeconds) / 10
	if speed < 0 {
		speed = 0
	}
	return base + accuracy + speed
}
