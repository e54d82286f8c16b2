package bible

import "math/rand/v2"

const (
	// MaxSyntheticVerse bounds the verse draw. Chapters come from the
	// catalog, but verse numbers are a flat synthetic range regardless of
	// the book's true verse counts.
	MaxSyntheticVerse = 20
)

// RandomBook returns a uniformly random book from the catalog.
func RandomBook() Book {
	return Books[rand.IntN(len(Books))]
}

// RandomRef returns a uniformly random reference within book: a chapter in
// [1, book.Chapters] and a verse in [1, MaxSyntheticVerse].
func RandomRef(book Book) Ref {
	return Ref{
		Chapter: rand.IntN(book.Chapters) + 1,
		Verse:   rand.IntN(MaxSyntheticVerse) + 1,
	}
}

// BooksByCategory returns the books in the given category, in catalog order.
func BooksByCategory(c Category) []Book {
	var out []Book
	for _, b := range Books {
		if b.Category == c {
			out = append(out, b)
		}
	}
	return out
}

// BookIndex returns the catalog index of the named book, or -1 if absent.
func BookIndex(name string) int {
	for i, b := range Books {
		if b.Name == name {
			return i
		}
	}
	return -1
}
