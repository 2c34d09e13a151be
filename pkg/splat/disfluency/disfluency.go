package disfluency

import (
	"strings"
	"unicode"
)

// Category indexes a slot of a Vector.
type Category int

// Vector slots, in report order.
const (
	UM Category = iota
	UH
	AH
	ER
	HM
	Pause
	Repetition
	Break

	NumCategories
)

var categoryNames = [NumCategories]string{"UM", "UH", "AH", "ER", "HM", "Pause", "Repetition", "Break"}

func (c Category) String() string {
	if c < 0 || c >= NumCategories {
		return "Unknown"
	}
	return categoryNames[c]
}

// Vector holds one count per category. Every slot is >= 0.
type Vector [NumCategories]int

// Add returns the slot-wise sum of v and o.
func (v Vector) Add(o Vector) Vector {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

// Sum returns the total number of disfluencies in v.
func (v Vector) Sum() int {
	n := 0
	for _, c := range v {
		n += c
	}
	return n
}

// Markers lists the spellings recognized for each category. Filler spellings
// match case-insensitively after squeezing repeated letters, so "Ummm"
// matches "um". Pause and break markers match whole tokens, ignoring case.
type Markers struct {
	UM     []string `yaml:"um"`
	HM     []string `yaml:"hm"`
	UH     []string `yaml:"uh"`
	AH     []string `yaml:"ah"`
	ER     []string `yaml:"er"`
	Pauses []string `yaml:"pauses"`
	Breaks []string `yaml:"breaks"`
}

// DefaultMarkers returns the built-in marker spellings.
func DefaultMarkers() Markers {
	return Markers{
		UM:     []string{"um", "uhm", "erm"},
		HM:     []string{"hm", "mhm"},
		UH:     []string{"uh"},
		AH:     []string{"ah"},
		ER:     []string{"er"},
		Pauses: []string{"{sl}", "<pause>", "<sil>", "[pause]"},
		Breaks: []string{"{br}", "<break>", "[break]", "--"},
	}
}

// Unit is the classification of one utterance or sentence.
type Unit struct {
	Text   string
	Counts Vector
	Words  int
}

// Classifier scans text units for disfluencies. Each token is consumed by at
// most one category, tried in priority order: nasal fillers (UM, HM),
// non-nasal fillers (UH, AH, ER), silent pauses, repetitions, breaks.
type Classifier struct {
	fillers map[string]Category
	pauses  map[string]struct{}
	breaks  map[string]struct{}
}

// NewClassifier creates a classifier for the given markers. A spelling listed
// under several filler categories belongs to the highest-priority one.
func NewClassifier(m Markers) *Classifier {
	c := &Classifier{
		fillers: make(map[string]Category),
		pauses:  toSet(m.Pauses),
		breaks:  toSet(m.Breaks),
	}
	for _, group := range []struct {
		cat   Category
		words []string
	}{
		{UM, m.UM}, {HM, m.HM}, {UH, m.UH}, {AH, m.AH}, {ER, m.ER},
	} {
		for _, w := range group.words {
			key := squeeze(strings.ToLower(strings.TrimSpace(w)))
			if _, taken := c.fillers[key]; !taken && key != "" {
				c.fillers[key] = group.cat
			}
		}
	}
	return c
}

// Classify counts the disfluencies and words of one unit of text.
//
// A repetition is a word equal to the previous word, or a word extending a
// preceding fragment ("th- the"). Fillers and pauses between the two words
// do not break a repetition.
func (c *Classifier) Classify(text string) Unit {
	u := Unit{Text: text}
	prev, prevFragment := "", false

	for _, field := range strings.Fields(text) {
		lower := strings.ToLower(field)
		isPause := hasMarker(c.pauses, lower)
		isBreak := hasMarker(c.breaks, lower)
		word, fragment := normalizeWord(lower)
		filler, isFiller := c.fillers[squeeze(word)]
		isWord := word != "" && !isPause && !isBreak

		switch {
		case word != "" && !fragment && isFiller:
			u.Words++
			u.Counts[filler]++
		case isPause:
			u.Counts[Pause]++
		case isWord && prev != "" && (word == prev || (prevFragment && strings.HasPrefix(word, prev))):
			u.Words++
			u.Counts[Repetition]++
			prev, prevFragment = word, fragment
		case isBreak:
			u.Counts[Break]++
		case isWord:
			u.Words++
			prev, prevFragment = word, fragment
		}
	}
	return u
}

// hasMarker matches a field against a marker set, ignoring sentence
// punctuation attached to the marker ("{sl}.").
func hasMarker(set map[string]struct{}, field string) bool {
	if _, ok := set[field]; ok {
		return true
	}
	_, ok := set[strings.TrimRight(field, ".,;:!?")]
	return ok
}

// ClassifyAll classifies every unit, preserving order.
func (c *Classifier) ClassifyAll(texts []string) []Unit {
	out := make([]Unit, len(texts))
	for i, t := range texts {
		out[i] = c.Classify(t)
	}
	return out
}

// normalizeWord strips surrounding punctuation. A trailing hyphen marks a
// fragment and is removed from the returned word.
func normalizeWord(s string) (string, bool) {
	s = strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '-' && r != '\''
	})
	fragment := strings.HasSuffix(s, "-") && strings.IndexFunc(s, unicode.IsLetter) >= 0
	s = strings.Trim(s, "-'")
	if strings.IndexFunc(s, func(r rune) bool { return unicode.IsLetter(r) || unicode.IsNumber(r) }) < 0 {
		return "", false
	}
	return s, fragment
}

// squeeze collapses runs of the same rune: "ummm" -> "um".
func squeeze(s string) string {
	var b strings.Builder
	var last rune = -1
	for _, r := range s {
		if r != last {
			b.WriteRune(r)
		}
		last = r
	}
	return b.String()
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			set[w] = struct{}{}
		}
	}
	return set
}
