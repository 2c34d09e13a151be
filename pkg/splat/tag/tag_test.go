package tag

import (
	"testing"
)

func TestCountsSumToTaggedTokens(t *testing.T) {
	pairs := []Pair{
		{"the", "DT"}, {"dog", "NN"}, {"saw", "VBD"}, {"the", "DT"}, {"cat", "NN"}, {".", "."},
	}
	counts := Counts(pairs)

	sum := 0
	for _, c := range counts {
		sum += c
	}
	if sum != len(pairs) {
		t.Errorf("Expected counts to sum to %d, got %d", len(pairs), sum)
	}
	if counts["DT"] != 2 || counts["NN"] != 2 {
		t.Errorf("Duplicate tokens must each be counted, got %v", counts)
	}
}

func TestSortedCounts(t *testing.T) {
	got := SortedCounts(map[string]int{"NN": 3, "DT": 3, "VB": 1})
	if len(got) != 3 {
		t.Fatalf("Expected 3 rows, got %v", got)
	}
	if got[0].Tag != "DT" || got[1].Tag != "NN" || got[2].Tag != "VB" {
		t.Errorf("Expected DT, NN, VB ordering, got %v", got)
	}
}

func TestTaggerFunc(t *testing.T) {
	var tagger Tagger = TaggerFunc(func(text string) ([]Pair, error) {
		return []Pair{{text, "UH"}}, nil
	})
	pairs, err := tagger.Tag("um")
	if err != nil || len(pairs) != 1 || pairs[0].Tag != "UH" {
		t.Errorf("Unexpected result %v (%v)", pairs, err)
	}
}
