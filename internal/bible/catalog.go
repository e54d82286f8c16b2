package bible

// Books is the full 66-book canon in canonical order.
var Books = []Book{
	{Name: "Genesis", Abbrev: "Gen", Chapters: 50, Testament: OldTestament, Category: CategoryPentateuch},
	{Name: "Exodus", Abbrev: "Ex", Chapters: 40, Testament: OldTestament, Category: CategoryPentateuch},
	{Name: "Leviticus", Abbrev: "Lev", Chapters: 27, Testament: OldTestament, Category: CategoryPentateuch},
	{Name: "Numbers", Abbrev: "Num", Chapters: 36, Testament: OldTestament, Category: CategoryPentateuch},
	{Name: "Deuteronomy", Abbrev: "Deut", Chapters: 34, Testament: OldTestament, Category: CategoryPentateuch},
	{Name: "Joshua", Abbrev: "Josh", Chapters: 24, Testament: OldTestament, Category: CategoryHistory},
	{Name: "Judges", Abbrev: "Judg", Chapters: 21, Testament: OldTestament, Category: CategoryHistory},
	{Name: "Ruth", Abbrev: "Ruth", Chapters: 4, Testament: OldTestament, Category: CategoryHistory},
	{Name: "1 Samuel", Abbrev: "1 Sam", Chapters: 31, Testament: OldTestament, Category: CategoryHistory},
	{Name: "2 Samuel", Abbrev: "2 Sam", Chapters: 24, Testament: OldTestament, Category: CategoryHistory},
	{Name: "1 Kings", Abbrev: "1 Kgs", Chapters: 22, Testament: OldTestament, Category: CategoryHistory},
	{Name: "2 Kings", Abbrev: "2 Kgs", Chapters: 25, Testament: OldTestament, Category: CategoryHistory},
	{Name: "1 Chronicles", Abbrev: "1 Chr", Chapters: 29, Testament: OldTestament, Category: CategoryHistory},
	{Name: "2 Chronicles", Abbrev: "2 Chr", Chapters: 36, Testament: OldTestament, Category: CategoryHistory},
	{Name: "Ezra", Abbrev: "Ezra", Chapters: 10, Testament: OldTestament, Category: CategoryHistory},
	{Name: "Nehemiah", Abbrev: "Neh", Chapters: 13, Testament: OldTestament, Category: CategoryHistory},
	{Name: "Esther", Abbrev: "Est", Chapters: 10, Testament: OldTestament, Category: CategoryHistory},
	{Name: "Job", Abbrev: "Job", Chapters: 42, Testament: OldTestament, Category: CategoryWisdom},
	{Name: "Psalms", Abbrev: "Ps", Chapters: 150, Testament: OldTestament, Category: CategoryWisdom},
	{Name: "Proverbs", Abbrev: "Prov", Chapters: 31, Testament: OldTestament, Category: CategoryWisdom},
	{Name: "Ecclesiastes", Abbrev: "Eccl", Chapters: 12, Testament: OldTestament, Category: CategoryWisdom},
	{Name: "Song of Solomon", Abbrev: "Song", Chapters: 8, Testament: OldTestament, Category: CategoryWisdom},
	{Name: "Isaiah", Abbrev: "Isa", Chapters: 66, Testament: OldTestament, Category: CategoryMajorProphets},
	{Name: "Jeremiah", Abbrev: "Jer", Chapters: 52, Testament: OldTestament, Category: CategoryMajorProphets},
	{Name: "Lamentations", Abbrev: "Lam", Chapters: 5, Testament: OldTestament, Category: CategoryMajorProphets},
	{Name: "Ezekiel", Abbrev: "Ezek", Chapters: 48, Testament: OldTestament, Category: CategoryMajorProphets},
	{Name: "Daniel", Abbrev: "Dan", Chapters: 12, Testament: OldTestament, Category: CategoryMajorProphets},
	{Name: "Hosea", Abbrev: "Hos", Chapters: 14, Testament: OldTestament, Category: CategoryMinorProphets},
	{Name: "Joel", Abbrev: "Joel", Chapters: 3, Testament: OldTestament, Category: CategoryMinorProphets},
	{Name: "Amos", Abbrev: "Amos", Chapters: 9, Testament: OldTestament, Category: CategoryMinorProphets},
	{Name: "Obadiah", Abbrev: "Obad", Chapters: 1, Testament: OldTestament, Category: CategoryMinorProphets},
	{Name: "Jonah", Abbrev: "Jonah", Chapters: 4, Testament: OldTestament, Category: CategoryMinorProphets},
	{Name: "Micah", Abbrev: "Mic", Chapters: 7, Testament: OldTestament, Category: CategoryMinorProphets},
	{Name: "Nahum", Abbrev: "Nah", Chapters: 3, Testament: OldTestament, Category: CategoryMinorProphets},
	{Name: "Habakkuk", Abbrev: "Hab", Chapters: 3, Testament: OldTestament, Category: CategoryMinorProphets},
	{Name: "Zephaniah", Abbrev: "Zeph", Chapters: 3, Testament: OldTestament, Category: CategoryMinorProphets},
	{Name: "Haggai", Abbrev: "Hag", Chapters: 2, Testament: OldTestament, Category: CategoryMinorProphets},
	{Name: "Zechariah", Abbrev: "Zech", Chapters: 14, Testament: OldTestament, Category: CategoryMinorProphets},
	{Name: "Malachi", Abbrev: "Mal", Chapters: 4, Testament: OldTestament, Category: CategoryMinorProphets},
	{Name: "Matthew", Abbrev: "Matt", Chapters: 28, Testament: NewTestament, Category: CategoryGospels},
	{Name: "Mark", Abbrev: "Mark", Chapters: 16, Testament: NewTestament, Category: CategoryGospels},
	{Name: "Luke", Abbrev: "Luke", Chapters: 24, Testament: NewTestament, Category: CategoryGospels},
	{Name: "John", Abbrev: "John", Chapters: 21, Testament: NewTestament, Category: CategoryGospels},
	{Name: "Acts", Abbrev: "Acts", Chapters: 28, Testament: NewTestament, Category: CategoryActs},
	{Name: "Romans", Abbrev: "Rom", Chapters: 16, Testament: NewTestament, Category: CategoryPauline},
	{Name: "1 Corinthians", Abbrev: "1 Cor", Chapters: 16, Testament: NewTestament, Category: CategoryPauline},
	{Name: "2 Corinthians", Abbrev: "2 Cor", Chapters: 13, Testament: NewTestament, Category: CategoryPauline},
	{Name: "Galatians", Abbrev: "Gal", Chapters: 6, Testament: NewTestament, Category: CategoryPauline},
	{Name: "Ephesians", Abbrev: "Eph", Chapters: 6, Testament: NewTestament, Category: CategoryPauline},
	{Name: "Philippians", Abbrev: "Phil", Chapters: 4, Testament: NewTestament, Category: CategoryPauline},
	{Name: "Colossians", Abbrev: "Col", Chapters: 4, Testament: NewTestament, Category: CategoryPauline},
	{Name: "1 Thessalonians", Abbrev: "1 Thess", Chapters: 5, Testament: NewTestament, Category: CategoryPauline},
	{Name: "2 Thessalonians", Abbrev: "2 Thess", Chapters: 3, Testament: NewTestament, Category: CategoryPauline},
	{Name: "1 Timothy", Abbrev: "1 Tim", Chapters: 6, Testament: NewTestament, Category: CategoryPauline},
	{Name: "2 Timothy", Abbrev: "2 Tim", Chapters: 4, Testament: NewTestament, Category: CategoryPauline},
	{Name: "Titus", Abbrev: "Titus", Chapters: 3, Testament: NewTestament, Category: CategoryPauline},
	{Name: "Philemon", Abbrev: "Phlm", Chapters: 1, Testament: NewTestament, Category: CategoryPauline},
	{Name: "Hebrews", Abbrev: "Heb", Chapters: 13, Testament: NewTestament, Category: CategoryGeneral},
	{Name: "James", Abbrev: "Jas", Chapters: 5, Testament: NewTestament, Category: CategoryGeneral},
	{Name: "1 Peter", Abbrev: "1 Pet", Chapters: 5, Testament: NewTestament, Category: CategoryGeneral},
	{Name: "2 Peter", Abbrev: "2 Pet", Chapters: 3, Testament: NewTestament, Category: CategoryGeneral},
	{Name: "1 John", Abbrev: "1 John", Chapters: 5, Testament: NewTestament, Category: CategoryGeneral},
	{Name: "2 John", Abbrev: "2 John", Chapters: 1, Testament: NewTestament, Category: CategoryGeneral},
	{Name: "3 John", Abbrev: "3 John", Chapters: 1, Testament: NewTestament, Category: CategoryGeneral},
	{Name: "Jude", Abbrev: "Jude", Chapters: 1, Testament: NewTestament, Category: CategoryGeneral},
	{Name: "Revelation", Abbrev: "Rev", Chapters: 22, Testament: NewTestament, Category: CategoryRevelation},
}
