package ingest

import (
	"reflect"
	"strings"
	"testing"
)

func TestRawTokenizerPreservesSource(t *testing.T) {
	tokens := NewRawTokenizer().Tokenize("Um, I {SL} don't know.")
	want := []string{"Um,", "I", "{SL}", "don't", "know."}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Expected %v, got %v", want, tokens)
	}
}

func TestCleanTokenizerNormalizes(t *testing.T) {
	tokens := NewCleanTokenizer().Tokenize("Um, I {SL} DON'T know... <pause> the the-")
	want := []string{"um", "i", "don't", "know", "the", "the"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Expected %v, got %v", want, tokens)
	}
}

func TestCleanTokenizerUnclosedMarker(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"I scored < 3 goals and then we went home", []string{"i", "scored", "3", "goals", "and", "then", "we", "went", "home"}},
		{"see [note and {more", []string{"see", "note", "and", "more"}},
		{"a <b c> d", []string{"a", "b", "c", "d"}},
		{"ok {sl}, fine", []string{"ok", "fine"}},
	}

	tok := NewCleanTokenizer()
	for _, tt := range tests {
		got := tok.Tokenize(tt.text)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%q: expected %v, got %v", tt.text, tt.want, got)
		}
	}
}

func TestCleanTokenizerCaseNormalization(t *testing.T) {
	tokens := NewCleanTokenizer().Tokenize("STRASSE Hello WORLD")
	for _, tok := range tokens {
		if tok != strings.ToLower(tok) {
			t.Errorf("Token %s should be case folded", tok)
		}
	}
}

func TestCleanTokenizerHyphens(t *testing.T) {
	tokens := NewCleanTokenizer().Tokenize("well--known -- tip-top")
	want := []string{"well-known", "tip-top"}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Expected %v, got %v", want, tokens)
	}
}

func TestCleanTokenizerCurlyApostrophe(t *testing.T) {
	tokens := NewCleanTokenizer().Tokenize("It’s fine")
	if len(tokens) != 2 || tokens[0] != "it's" {
		t.Errorf("Curly apostrophes should normalize, got %v", tokens)
	}
}

func TestTypify(t *testing.T) {
	types := Typify([]string{"b", "a", "b", "c", "a"})
	want := []string{"b", "a", "c"}
	if !reflect.DeepEqual(types, want) {
		t.Errorf("Expected %v, got %v", want, types)
	}
}

func TestPipelineDefaults(t *testing.T) {
	p := NewPipeline(nil, nil, nil)
	out := p.Process("Hello there. How ARE you?")

	if len(out.Sentences) != 2 {
		t.Errorf("Expected 2 sentences, got %v", out.Sentences)
	}
	if len(out.RawTokens) != 5 {
		t.Errorf("Expected 5 raw tokens, got %v", out.RawTokens)
	}
	if out.Tokens[3] != "are" {
		t.Errorf("Clean tokens should be case folded, got %v", out.Tokens)
	}
}
