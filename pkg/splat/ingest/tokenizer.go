package ingest

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Tokenizer turns text into an ordered sequence of tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// RawTokenizer splits on whitespace and keeps case, punctuation and
// transcription markers exactly as written.
type RawTokenizer struct{}

// NewRawTokenizer creates a raw tokenizer
func NewRawTokenizer() *RawTokenizer {
	return &RawTokenizer{}
}

// Tokenize splits text on runs of whitespace.
func (RawTokenizer) Tokenize(text string) []string {
	return strings.Fields(text)
}

// CleanTokenizer produces normalized word tokens: NFC-normalized, case-folded,
// stripped of punctuation and of bracketed transcription markers such as
// "{SL}" or "<pause>".
type CleanTokenizer struct {
	fold cases.Caser
}

// NewCleanTokenizer creates a clean tokenizer
func NewCleanTokenizer() *CleanTokenizer {
	return &CleanTokenizer{fold: cases.Fold()}
}

// Tokenize splits text into normalized tokens.
func (t *CleanTokenizer) Tokenize(text string) []string {
	text = norm.NFC.String(text)

	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			if word := t.cleanToken(current.String()); word != "" {
				tokens = append(tokens, word)
			}
			current.Reset()
		}
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r) || r == '\'' || r == '’' || r == '-':
			current.WriteRune(r)
		case r == '{' || r == '<' || r == '[':
			flush()
			if end := markerEnd(runes, i); end > i {
				i = end
			}
		default:
			flush()
		}
	}
	flush()

	return tokens
}

// cleanToken folds case and strips leading/trailing apostrophes and hyphens.
func (t *CleanTokenizer) cleanToken(token string) string {
	token = strings.ReplaceAll(token, "’", "'")
	token = strings.Trim(token, "-'")
	for strings.Contains(token, "--") {
		token = strings.ReplaceAll(token, "--", "-")
	}
	if token == "" {
		return ""
	}
	return t.fold.String(token)
}

// markerEnd returns the index of the closer matching the opener at i when it
// appears before the next whitespace, or -1. An unclosed opener is plain
// punctuation.
func markerEnd(runes []rune, i int) int {
	closing := markerClose(runes[i])
	for j := i + 1; j < len(runes) && !unicode.IsSpace(runes[j]); j++ {
		if runes[j] == closing {
			return j
		}
	}
	return -1
}

func markerClose(open rune) rune {
	switch open {
	case '{':
		return '}'
	case '<':
		return '>'
	default:
		return ']'
	}
}

// Typify returns the distinct tokens in first-occurrence order.
func Typify(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
