package tag

import (
	"sort"
)

// Pair is one tagged token.
type Pair struct {
	Token string
	Tag   string
}

// Tagger assigns part-of-speech tags to the tokens of a text.
type Tagger interface {
	Tag(text string) ([]Pair, error)
}

// TaggerFunc adapts a function to the Tagger interface.
type TaggerFunc func(text string) ([]Pair, error)

// Tag calls f(text).
func (f TaggerFunc) Tag(text string) ([]Pair, error) {
	return f(text)
}

// Counts maps each tag to its number of occurrences. The counts sum to
// len(pairs).
func Counts(pairs []Pair) map[string]int {
	counts := make(map[string]int)
	for _, p := range pairs {
		counts[p.Tag]++
	}
	return counts
}

// TagCount is one row of a sorted tag histogram.
type TagCount struct {
	Tag   string
	Count int
}

// SortedCounts returns counts ordered by count descending, then tag.
func SortedCounts(counts map[string]int) []TagCount {
	out := make([]TagCount, 0, len(counts))
	for t, c := range counts {
		out = append(out, TagCount{Tag: t, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}
