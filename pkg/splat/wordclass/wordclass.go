package wordclass

import (
	"fmt"
	"strings"

	"github.com/cognicore/splat/pkg/splat/splaterr"
)

// DefaultFunctionWords is the closed-class English vocabulary used when no
// word list is configured.
var DefaultFunctionWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an", "and",
	"any", "are", "as", "at", "be", "because", "been", "before", "being", "below",
	"between", "both", "but", "by", "can", "could", "did", "do", "does", "doing",
	"down", "during", "each", "either", "every", "few", "for", "from", "further",
	"had", "has", "have", "having", "he", "her", "here", "hers", "herself", "him",
	"himself", "his", "how", "i", "if", "in", "into", "is", "it", "its", "itself",
	"may", "me", "might", "mine", "more", "most", "must", "my", "myself", "neither",
	"no", "nor", "not", "of", "off", "on", "once", "only", "or", "other", "ought",
	"our", "ours", "ourselves", "out", "over", "own", "same", "shall", "she",
	"should", "so", "some", "such", "than", "that", "the", "their", "theirs",
	"them", "themselves", "then", "there", "these", "they", "this", "those",
	"through", "to", "too", "under", "until", "up", "upon", "us", "very", "was",
	"we", "were", "what", "when", "where", "whether", "which", "while", "who",
	"whom", "whose", "why", "will", "with", "within", "without", "would", "yet",
	"you", "your", "yours", "yourself", "yourselves",
}

// Lexicon partitions tokens into function (closed-class) and content words.
type Lexicon struct {
	function map[string]struct{}
}

// New creates a lexicon from the given function words. Matching is
// case-insensitive.
func New(functionWords []string) *Lexicon {
	fw := make(map[string]struct{}, len(functionWords))
	for _, w := range functionWords {
		fw[strings.ToLower(w)] = struct{}{}
	}
	return &Lexicon{function: fw}
}

// IsFunction reports whether word is a function word.
func (l *Lexicon) IsFunction(word string) bool {
	_, ok := l.function[strings.ToLower(word)]
	return ok
}

// ContentWords returns the tokens that are not function words, in order.
func (l *Lexicon) ContentWords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !l.IsFunction(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// FunctionWords returns the tokens that are function words, in order.
func (l *Lexicon) FunctionWords(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if l.IsFunction(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// Ratio returns content words divided by function words over tokens.
func (l *Lexicon) Ratio(tokens []string) (float64, error) {
	content, function := 0, 0
	for _, tok := range tokens {
		if l.IsFunction(tok) {
			function++
		} else {
			content++
		}
	}
	if function == 0 {
		return 0, fmt.Errorf("content-function ratio: %w", splaterr.ErrDivisionUndefined)
	}
	return float64(content) / float64(function), nil
}
