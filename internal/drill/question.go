package drill

import (
	"math/rand/v2"

	"github.com/abhisek/sworddrill/internal/bible"
)

// OptionCount is the number of books offered per question: the target plus
// eleven distractors.
const OptionCount = 12

// Question is a single verse-location round: find targetBook among the
// shuffled options. Owned by the active session and discarded when the
// round resolves.
type Question struct {
	TargetBook bible.Book
	Chapter    int
	Verse      int
	Options    []bible.Book
}

// GenerateQuestion builds a new question: a uniform target book and verse
// reference, plus a uniformly shuffled option list containing the target
// exactly once and no duplicates.
func GenerateQuestion() *Question {
	target := bible.RandomBook()
	ref := bible.RandomRef(target)

	pool := make([]bible.Book, len(bible.Books))
	copy(pool, bible.Books)
	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	options := make([]bible.Book, 0, OptionCount)
	for _, b := range pool {
		if b.Name == target.Name {
			continue
		}
		options = append(options, b)
		if len(options) == OptionCount-1 {
			break
		}
	}
	options = append(options, target)
	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return &Question{
		TargetBook: target,
		Chapter:    ref.Chapter,
		Verse:      ref.Verse,
		Options:    options,
	}
}
