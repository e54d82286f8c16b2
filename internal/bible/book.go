package bible

// Testament identifies which testament a book belongs to.
type Testament string

const (
	OldTestament Testament = "OT"
	NewTestament Testament = "NT"
)

// Category groups books by their traditional division.
type Category string

const (
	CategoryPentateuch    Category = "pentateuch"
	CategoryHistory       Category = "history"
	CategoryWisdom        Category = "wisdom"
	CategoryMajorProphets Category = "majorProphets"
	CategoryMinorProphets Category = "minorProphets"
	CategoryGospels       Category = "gospels"
	CategoryActs          Category = "acts"
	CategoryPauline       Category = "pauline"
	CategoryGeneral       Category = "general"
	CategoryRevelation    Category = "revelation"
)

// CategoryNames maps categories to their display names.
var CategoryNames = map[Category]string{
	CategoryPentateuch:    "Pentateuch",
	CategoryHistory:       "History Books",
	CategoryWisdom:        "Wisdom",
	CategoryMajorProphets: "Major Prophets",
	CategoryMinorProphets: "Minor Prophets",
	CategoryGospels:       "Gospels",
	CategoryActs:          "Acts",
	CategoryPauline:       "Pauline Epistles",
	CategoryGeneral:       "General Epistles",
	CategoryRevelation:    "Revelation",
}

// Book is a single canonical book. The catalog is fixed at compile time;
// books are never created or modified at runtime.
type Book struct {
	Name      string
	Abbrev    string
	Chapters  int
	Testament Testament
	Category  Category
}

// Ref is a verse reference within a book.
type Ref struct {
	Chapter int
	Verse   int
}
