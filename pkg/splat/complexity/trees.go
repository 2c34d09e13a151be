package complexity

import (
	"fmt"
	"strings"

	"github.com/cognicore/splat/pkg/splat/parse"
	"github.com/cognicore/splat/pkg/splat/splaterr"
)

// TreeYngve scores one tree: each word is weighted by the number of left
// siblings passed on the way down from the root, and the tree scores the
// mean word weight. A tree with no branching scores 0.
func TreeYngve(t *parse.Node) float64 {
	var sum float64
	var leaves int
	var walk func(n *parse.Node, depth int)
	walk = func(n *parse.Node, depth int) {
		if n.IsLeaf() {
			sum += float64(depth)
			leaves++
			return
		}
		for i, c := range n.Children {
			walk(c, depth+i)
		}
	}
	walk(t, 0)
	return sum / float64(leaves)
}

// FrazierWeights is the node weighting of the Frazier score.
type FrazierWeights struct {
	Sentence       float64  `yaml:"sentence"`
	Phrase         float64  `yaml:"phrase"`
	Preterminal    float64  `yaml:"preterminal"`
	SentenceLabels []string `yaml:"sentence_labels"`
	IgnoreLabels   []string `yaml:"ignore_labels"`
}

// DefaultFrazierWeights weights clause nodes 1.5, other phrases 1 and
// part-of-speech nodes 0. ROOT/TOP wrappers carry no weight.
func DefaultFrazierWeights() FrazierWeights {
	return FrazierWeights{
		Sentence:       1.5,
		Phrase:         1.0,
		Preterminal:    0,
		SentenceLabels: []string{"S", "SBAR", "SBARQ", "SINV", "SQ"},
		IgnoreLabels:   []string{"", "ROOT", "TOP"},
	}
}

func (w FrazierWeights) weight(n *parse.Node) float64 {
	if n.IsPreterminal() {
		return w.Preterminal
	}
	label := baseLabel(n.Label)
	for _, l := range w.IgnoreLabels {
		if label == l {
			return 0
		}
	}
	for _, l := range w.SentenceLabels {
		if label == l {
			return w.Sentence
		}
	}
	return w.Phrase
}

// baseLabel drops function tags and indices: "NP-SBJ-1" -> "NP".
func baseLabel(label string) string {
	if strings.HasPrefix(label, "-") {
		return label
	}
	if i := strings.IndexAny(label, "-="); i > 0 {
		return label[:i]
	}
	return label
}

// TreeFrazier scores one tree: each word collects the weights of the
// constituents it begins, i.e. the ancestors reached from it through
// leftmost-child links only. The tree scores the mean word score.
func TreeFrazier(t *parse.Node, w FrazierWeights) float64 {
	var sum float64
	var leaves int
	var walk func(n *parse.Node, open float64)
	walk = func(n *parse.Node, open float64) {
		if n.IsLeaf() {
			sum += open
			leaves++
			return
		}
		for i, c := range n.Children {
			if i == 0 {
				walk(c, open+w.weight(n))
			} else {
				walk(c, 0)
			}
		}
	}
	walk(t, 0)
	return sum / float64(leaves)
}

// MeanYngve averages TreeYngve over trees. No trees is ErrNoTrees.
func MeanYngve(trees []*parse.Node) (float64, error) {
	return mean(trees, TreeYngve)
}

// MeanFrazier averages TreeFrazier over trees. No trees is ErrNoTrees.
func MeanFrazier(trees []*parse.Node, w FrazierWeights) (float64, error) {
	return mean(trees, func(t *parse.Node) float64 { return TreeFrazier(t, w) })
}

// MaxDepth returns the greatest tree height. No trees is ErrNoTrees.
func MaxDepth(trees []*parse.Node) (int, error) {
	if len(trees) == 0 {
		return 0, fmt.Errorf("max depth: %w", splaterr.ErrNoTrees)
	}
	max := 0
	for _, t := range trees {
		if h := t.Height(); h > max {
			max = h
		}
	}
	return max, nil
}

func mean(trees []*parse.Node, score func(*parse.Node) float64) (float64, error) {
	if len(trees) == 0 {
		return 0, fmt.Errorf("mean tree score: %w", splaterr.ErrNoTrees)
	}
	var sum float64
	for _, t := range trees {
		sum += score(t)
	}
	return sum / float64(len(trees)), nil
}
