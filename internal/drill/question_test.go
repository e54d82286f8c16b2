package drill

import "testing"

func TestGenerateQuestionInvariants(t *testing.T) {
	for i := 0; i < 10000; i++ {
		q := GenerateQuestion()

		if len(q.Options) != OptionCount {
			t.Fatalf("iteration %d: %d options, want %d", i, len(q.Options), OptionCount)
		}

		seen := make(map[string]bool, OptionCount)
		targetCount := 0
		for _, b := range q.Options {
			if seen[b.Name] {
				t.Fatalf("iteration %d: duplicate option %q", i, b.Name)
			}
			seen[b.Name] = true
			if b.Name == q.TargetBook.Name {
				targetCount++
			}
		}
		if targetCount != 1 {
			t.Fatalf("iteration %d: target appears %d times, want 1", i, targetCount)
		}

		if q.Chapter < 1 || q.Chapter > q.TargetBook.Chapters {
			t.Fatalf("iteration %d: chapter %d out of [1,%d]", i, q.Chapter, q.TargetBook.Chapters)
		}
		if q.Verse < 1 || q.Verse > 20 {
			t.Fatalf("iteration %d: verse %d out of [1,20]", i, q.Verse)
		}
	}
}

func TestGenerateQuestionShufflesOptions(t *testing.T) {
	// The target should not always land in the same slot. With a uniform
	// shuffle the chance of 200 consecutive last-place targets is
	// (1/12)^200; a fixed position means the display shuffle is missing.
	positions := make(map[int]bool)
	for i := 0; i < 200; i++ {
		q := GenerateQuestion()
		for pos, b := range q.Options {
			if b.Name == q.TargetBook.Name {
				positions[pos] = true
			}
		}
	}
	if len(positions) < 2 {
		t.Errorf("target always appeared at the same option index: %v", positions)
	}
}
