package bible

import "time"

// Verse is a daily-verse entry: a reference plus its text.
type Verse struct {
	Reference string
	Text      string
}

// DailyVerses is the rotation of verses shown on the home screen.
var DailyVerses = []Verse{
	{Reference: "Hebrews 4:12", Text: "For the word of God is alive and active. Sharper than any double-edged sword, it penetrates even to dividing soul and spirit, joints and marrow; it judges the thoughts and attitudes of the heart."},
	{Reference: "Psalm 119:105", Text: "Your word is a lamp for my feet, a light on my path."},
	{Reference: "2 Timothy 3:16-17", Text: "All Scripture is God-breathed and is useful for teaching, rebuking, correcting and training in righteousness, so that the servant of God may be thoroughly equipped for every good work."},
	{Reference: "Joshua 1:8", Text: "Keep this Book of the Law always on your lips; meditate on it day and night, so that you may be careful to do everything written in it."},
	{Reference: "Romans 15:4", Text: "For everything that was written in the past was written to teach us, so that through the endurance taught in the Scriptures and the encouragement they provide we might have hope."},
	{Reference: "Isaiah 55:11", Text: "So is my word that goes out from my mouth: It will not return to me empty, but will accomplish what I desire and achieve the purpose for which I sent it."},
	{Reference: "Matthew 4:4", Text: "Jesus answered, It is written: Man shall not live on bread alone, but on every word that comes from the mouth of God."},
}

// DailyVerse returns the verse for the calendar day of t, rotating through
// DailyVerses by day of year.
func DailyVerse(t time.Time) Verse {
	return DailyVerses[(t.YearDay()-1)%len(DailyVerses)]
}
