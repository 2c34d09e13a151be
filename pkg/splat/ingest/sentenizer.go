package ingest

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/cognicore/splat/pkg/splat/splaterr"
)

// Sentenizer splits text into sentences.
type Sentenizer interface {
	Sentenize(text string) []string
}

var abbreviations = map[string]struct{}{
	"mr": {}, "mrs": {}, "ms": {}, "dr": {}, "prof": {}, "sr": {}, "jr": {},
	"st": {}, "vs": {}, "etc": {}, "e.g": {}, "i.e": {}, "a.m": {}, "p.m": {},
}

// RuleSentenizer splits on terminal punctuation (. ! ?) followed by
// whitespace or end of text, except after common abbreviations.
type RuleSentenizer struct{}

// NewRuleSentenizer creates a punctuation-driven sentenizer
func NewRuleSentenizer() *RuleSentenizer {
	return &RuleSentenizer{}
}

// Sentenize returns the trimmed, non-empty sentences of text.
func (RuleSentenizer) Sentenize(text string) []string {
	var sentences []string
	runes := []rune(text)
	start := 0

	emit := func(end int) {
		s := strings.Join(strings.Fields(string(runes[start:end])), " ")
		if s != "" {
			sentences = append(sentences, s)
		}
		start = end
	}

	for i := 0; i < len(runes); i++ {
		if !isTerminal(runes[i]) {
			continue
		}
		j := i
		for j+1 < len(runes) && (isTerminal(runes[j+1]) || isCloser(runes[j+1])) {
			j++
		}
		if j+1 < len(runes) && !unicode.IsSpace(runes[j+1]) {
			i = j
			continue
		}
		if runes[i] == '.' && isAbbreviation(runes[start:i]) {
			i = j
			continue
		}
		emit(j + 1)
		i = j
	}
	emit(len(runes))

	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloser(r rune) bool {
	return r == '"' || r == '\'' || r == ')' || r == '”' || r == '’'
}

// isAbbreviation reports whether the word before a period is a known abbreviation.
func isAbbreviation(before []rune) bool {
	fields := strings.Fields(string(before))
	if len(fields) == 0 {
		return false
	}
	last := strings.ToLower(strings.TrimLeft(fields[len(fields)-1], "(\"'"))
	_, ok := abbreviations[last]
	return ok
}

// ResolveText turns sentenizer input into a single string: a string naming an
// existing file is read, any other string is used as is, and a []string is
// joined with single spaces. Any other value is ErrInvalidInput.
func ResolveText(v any) (string, error) {
	switch x := v.(type) {
	case string:
		if info, err := os.Stat(x); err == nil && !info.IsDir() {
			data, err := os.ReadFile(x)
			if err != nil {
				return "", fmt.Errorf("read %s: %w", x, err)
			}
			return strings.Join(strings.Fields(string(data)), " "), nil
		}
		return x, nil
	case []string:
		return strings.Join(x, " "), nil
	default:
		return "", fmt.Errorf("text to sentenize must be a string or []string, got %T: %w", v, splaterr.ErrInvalidInput)
	}
}

// SentenizeAny resolves v with ResolveText and sentenizes the result.
func SentenizeAny(s Sentenizer, v any) ([]string, error) {
	text, err := ResolveText(v)
	if err != nil {
		return nil, err
	}
	return s.Sentenize(text), nil
}
