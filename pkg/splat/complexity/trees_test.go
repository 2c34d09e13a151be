package complexity

import (
	"errors"
	"math"
	"testing"

	"github.com/cognicore/splat/pkg/splat/parse"
	"github.com/cognicore/splat/pkg/splat/splaterr"
)

const eps = 1e-9

func mustTree(t *testing.T, s string) *parse.Node {
	t.Helper()
	tree, err := parse.ParseTree(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return tree
}

func TestTreeYngve(t *testing.T) {
	tests := []struct {
		tree string
		want float64
	}{
		{"dog", 0},
		{"(NN dog)", 0},
		{"(S (NP (NN dogs)))", 0},
		{"(S (NP (DT the) (NN dog)) (VP (VBD ran)))", 2.0 / 3.0},
		{"(NP (DT a) (JJ big) (NN dog))", 1.0},
		{"(ROOT (S (NP (DT the) (NN dog)) (VP (VBD ran))))", 2.0 / 3.0},
	}
	for _, tt := range tests {
		got := TreeYngve(mustTree(t, tt.tree))
		if math.Abs(got-tt.want) > eps {
			t.Errorf("%s: expected %v, got %v", tt.tree, tt.want, got)
		}
	}
}

func TestTreeFrazier(t *testing.T) {
	w := DefaultFrazierWeights()
	tests := []struct {
		tree string
		want float64
	}{
		{"dog", 0},
		{"(NN dog)", 0},
		{"(S (NP (DT the) (NN dog)) (VP (VBD ran)))", 3.5 / 3.0},
		{"(ROOT (S (NP (DT the) (NN dog)) (VP (VBD ran))))", 3.5 / 3.0},
		{"(S-TPC (NP-SBJ (PRP I)) (VP (VBD ran)))", 3.5 / 2.0},
		{"(SBAR (S (NP (PRP we)) (VP (VBD left))))", 5.0 / 2.0},
	}
	for _, tt := range tests {
		got := TreeFrazier(mustTree(t, tt.tree), w)
		if math.Abs(got-tt.want) > eps {
			t.Errorf("%s: expected %v, got %v", tt.tree, tt.want, got)
		}
	}
}

func TestFrazierCustomWeights(t *testing.T) {
	w := FrazierWeights{Sentence: 2, Phrase: 0.5, SentenceLabels: []string{"S"}}
	got := TreeFrazier(mustTree(t, "(S (NP (NN it)) (VP (VBZ works)))"), w)
	// it: S(2) + NP(0.5); works: VP(0.5)
	if math.Abs(got-1.5) > eps {
		t.Errorf("Expected 1.5, got %v", got)
	}
}

func TestMeanScores(t *testing.T) {
	trees := []*parse.Node{
		mustTree(t, "(NP (DT a) (JJ big) (NN dog))"),
		mustTree(t, "(NN dog)"),
	}
	y, err := MeanYngve(trees)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(y-0.5) > eps {
		t.Errorf("Expected mean Yngve 0.5, got %v", y)
	}

	f, err := MeanFrazier(trees, DefaultFrazierWeights())
	if err != nil {
		t.Fatal(err)
	}
	// (NP a big dog): a gets NP(1); others 0 -> 1/3; (NN dog) -> 0
	if math.Abs(f-1.0/6.0) > eps {
		t.Errorf("Expected mean Frazier 1/6, got %v", f)
	}
}

func TestMeanScoresNoTrees(t *testing.T) {
	if _, err := MeanYngve(nil); !errors.Is(err, splaterr.ErrNoTrees) {
		t.Errorf("Expected ErrNoTrees, got %v", err)
	}
	if _, err := MeanFrazier(nil, DefaultFrazierWeights()); !errors.Is(err, splaterr.ErrDivisionUndefined) {
		t.Errorf("ErrNoTrees should match ErrDivisionUndefined, got %v", err)
	}
	if _, err := MaxDepth(nil); !errors.Is(err, splaterr.ErrNoTrees) {
		t.Errorf("Expected ErrNoTrees, got %v", err)
	}
}

func TestUnparsableTreesExcluded(t *testing.T) {
	trees, dropped := parse.ParseAll([]string{"(NP (DT a) (JJ big) (NN dog))", "", "(S (broken"})
	if dropped != 2 {
		t.Fatalf("Expected 2 dropped trees, got %d", dropped)
	}
	y, err := MeanYngve(trees)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(y-1.0) > eps {
		t.Errorf("Unparsable trees must not count as zero: expected 1, got %v", y)
	}
}

func TestMaxDepth(t *testing.T) {
	trees := []*parse.Node{
		mustTree(t, "(NN dog)"),
		mustTree(t, "(S (NP (DT the) (NN dog)) (VP (VBD ran)))"),
	}
	got, err := MaxDepth(trees)
	if err != nil {
		t.Fatal(err)
	}
	if got != 4 {
		t.Errorf("Expected 4, got %d", got)
	}
}
