package disfluency

import (
	"testing"
)

func TestClassifyFillers(t *testing.T) {
	c := NewClassifier(DefaultMarkers())
	u := c.Classify("Um, I uh think ummm HMM ah er well")

	want := Vector{UM: 2, UH: 1, AH: 1, ER: 1, HM: 1}
	if u.Counts != want {
		t.Errorf("Expected %v, got %v", want, u.Counts)
	}
	if u.Words != 9 {
		t.Errorf("Expected 9 words, got %d", u.Words)
	}
}

func TestClassifyPausesAndBreaks(t *testing.T) {
	c := NewClassifier(DefaultMarkers())
	u := c.Classify("I went {SL} to the -- <pause> store {BR}")

	if u.Counts[Pause] != 2 {
		t.Errorf("Expected 2 pauses, got %d", u.Counts[Pause])
	}
	if u.Counts[Break] != 2 {
		t.Errorf("Expected 2 breaks, got %d", u.Counts[Break])
	}
	if u.Words != 5 {
		t.Errorf("Markers are not words: expected 5, got %d", u.Words)
	}
}

func TestClassifyMarkersWithPunctuation(t *testing.T) {
	u := NewClassifier(DefaultMarkers()).Classify("well {sl}. ok {SL}, so {br}, done --.")

	if u.Counts[Pause] != 2 {
		t.Errorf("Expected 2 pauses, got %d", u.Counts[Pause])
	}
	if u.Counts[Break] != 2 {
		t.Errorf("Expected 2 breaks, got %d", u.Counts[Break])
	}
	if u.Words != 4 {
		t.Errorf("Markers are not words: expected 4, got %d", u.Words)
	}
}

func TestClassifyRepetitions(t *testing.T) {
	tests := []struct {
		text string
		reps int
	}{
		{"I I think so", 1},
		{"the the the dog", 2},
		{"th- the dog", 1},
		{"I uh I went", 1},
		{"I {SL} I went", 1},
		{"I went I", 0},
		{"The the", 1},
		{"um um um", 0},
		{"", 0},
	}

	c := NewClassifier(DefaultMarkers())
	for _, tt := range tests {
		u := c.Classify(tt.text)
		if u.Counts[Repetition] != tt.reps {
			t.Errorf("%q: expected %d repetitions, got %d", tt.text, tt.reps, u.Counts[Repetition])
		}
	}
}

func TestClassifyFillersBeatRepetition(t *testing.T) {
	u := NewClassifier(DefaultMarkers()).Classify("uh uh")
	if u.Counts[UH] != 2 || u.Counts[Repetition] != 0 {
		t.Errorf("Repeated fillers are fillers, got %v", u.Counts)
	}
}

func TestClassifyEachTokenOnce(t *testing.T) {
	c := NewClassifier(DefaultMarkers())
	texts := []string{
		"um um {SL} {SL} the the -- --",
		"I- I uh {BR} hm hm so so so",
	}
	for _, text := range texts {
		u := c.Classify(text)
		if u.Counts.Sum() > len(splitFields(text)) {
			t.Errorf("%q: %d disfluencies from %d tokens", text, u.Counts.Sum(), len(splitFields(text)))
		}
		for i, n := range u.Counts {
			if n < 0 {
				t.Errorf("%q: negative count in %s", text, Category(i))
			}
		}
	}
}

func TestFillerPriority(t *testing.T) {
	m := Markers{UM: []string{"mm"}, HM: []string{"mm"}, UH: []string{"mm"}}
	u := NewClassifier(m).Classify("mm")
	if u.Counts[UM] != 1 || u.Counts[HM] != 0 || u.Counts[UH] != 0 {
		t.Errorf("Shared spelling should go to the first category, got %v", u.Counts)
	}
}

func TestFillerBeatsPauseMarker(t *testing.T) {
	m := Markers{UH: []string{"uh"}, Pauses: []string{"uh"}}
	u := NewClassifier(m).Classify("uh")
	if u.Counts[UH] != 1 || u.Counts[Pause] != 0 {
		t.Errorf("Fillers take priority over pauses, got %v", u.Counts)
	}
}

func TestClassifyAllPreservesOrder(t *testing.T) {
	units := NewClassifier(DefaultMarkers()).ClassifyAll([]string{"um", "hello", "uh"})
	if len(units) != 3 || units[1].Text != "hello" || units[2].Counts[UH] != 1 {
		t.Errorf("Unexpected units %v", units)
	}
}

func TestCategoryString(t *testing.T) {
	if Repetition.String() != "Repetition" || Category(42).String() != "Unknown" {
		t.Error("Unexpected category names")
	}
}

func splitFields(s string) []string {
	var out []string
	cur := ""
	for _, r := range s + " " {
		if r == ' ' {
			if cur != "" {
				out = append(out, cur)
			}
			cur = ""
			continue
		}
		cur += string(r)
	}
	return out
}
