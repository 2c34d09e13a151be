package wordclass

import (
	"errors"
	"testing"

	"github.com/cognicore/splat/pkg/splat/splaterr"
)

func TestPartition(t *testing.T) {
	lex := New([]string{"the", "a", "of"})
	tokens := []string{"the", "cat", "of", "a", "house", "cat"}

	content := lex.ContentWords(tokens)
	function := lex.FunctionWords(tokens)

	if len(content) != 3 {
		t.Errorf("Expected 3 content words, got %v", content)
	}
	if len(function) != 3 {
		t.Errorf("Expected 3 function words, got %v", function)
	}
	if len(content)+len(function) != len(tokens) {
		t.Error("Partition must cover every token")
	}
	if content[0] != "cat" || content[1] != "house" {
		t.Errorf("Content words should keep source order, got %v", content)
	}
}

func TestCaseInsensitive(t *testing.T) {
	lex := New([]string{"The"})
	if !lex.IsFunction("the") || !lex.IsFunction("THE") {
		t.Error("Function word matching should ignore case")
	}
}

func TestRatio(t *testing.T) {
	lex := New([]string{"the"})
	got, err := lex.Ratio([]string{"the", "cat", "sat"})
	if err != nil {
		t.Fatal(err)
	}
	if got != 2.0 {
		t.Errorf("Expected 2.0, got %v", got)
	}

	_, err = lex.Ratio([]string{"cat", "sat"})
	if !errors.Is(err, splaterr.ErrDivisionUndefined) {
		t.Errorf("Expected ErrDivisionUndefined, got %v", err)
	}
}
