package freq

import (
	"errors"
	"testing"

	"github.com/cognicore/splat/pkg/splat/splaterr"
)

func TestBuildSumEqualsTokenCount(t *testing.T) {
	inputs := [][]string{
		{},
		{"a"},
		{"the", "cat", "the", "dog", "the", "cat"},
		{"x", "x", "x", "x"},
	}
	for _, tokens := range inputs {
		d := Build(tokens)
		sum := 0
		for _, c := range d.Counts() {
			sum += c
		}
		if sum != len(tokens) || d.Total() != len(tokens) {
			t.Errorf("tokens %v: sum %d, total %d, want %d", tokens, sum, d.Total(), len(tokens))
		}
	}
}

func TestMostFrequentOrdering(t *testing.T) {
	d := Build([]string{"b", "a", "c", "a", "b", "d", "a"})

	got := d.MostFrequent(0)
	want := []Entry{{"a", 3}, {"b", 2}, {"c", 1}, {"d", 1}}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entries, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	top := d.MostFrequent(2)
	if len(top) != 2 || top[0].Type != "a" || top[1].Type != "b" {
		t.Errorf("Expected [a b], got %v", top)
	}

	if len(d.MostFrequent(-3)) != 4 {
		t.Error("Non-positive k should return every entry")
	}
	if len(d.MostFrequent(99)) != 4 {
		t.Error("k beyond the type count should return every entry")
	}
}

func TestLeastFrequentIsReverse(t *testing.T) {
	d := Build([]string{"one", "two", "two", "three", "three", "three", "four"})
	most := d.MostFrequent(0)
	least := d.LeastFrequent(0)

	if len(most) != len(least) {
		t.Fatalf("Length mismatch: %d vs %d", len(most), len(least))
	}
	for i := range most {
		if most[i] != least[len(least)-1-i] {
			t.Errorf("position %d: %v is not the mirror of %v", i, least[len(least)-1-i], most[i])
		}
	}

	tail := d.LeastFrequent(2)
	if len(tail) != 2 || tail[0].Type != "four" || tail[1].Type != "one" {
		t.Errorf("Expected [four one], got %v", tail)
	}
}

func TestNGrams(t *testing.T) {
	tokens := []string{"i", "like", "green", "eggs"}

	bigrams, err := NGrams(tokens, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(bigrams) != 3 {
		t.Fatalf("Expected 3 bigrams, got %d", len(bigrams))
	}
	if bigrams[1][0] != "like" || bigrams[1][1] != "green" {
		t.Errorf("Unexpected bigram %v", bigrams[1])
	}

	long, err := NGrams(tokens, 9)
	if err != nil || len(long) != 0 {
		t.Errorf("Oversized n should give no n-grams, got %v (%v)", long, err)
	}

	if _, err := NGrams(tokens, 0); !errors.Is(err, splaterr.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestNGramCounts(t *testing.T) {
	d, err := NGramCounts([]string{"uh", "huh", "uh", "huh"}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if d.Count("uh huh") != 2 || d.Count("huh uh") != 1 {
		t.Errorf("Unexpected counts %v", d.Counts())
	}
}
