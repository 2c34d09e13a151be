package complexity

import (
	"fmt"

	"github.com/cognicore/splat/pkg/splat/splaterr"
	"github.com/cognicore/splat/pkg/splat/tag"
)

// POSClasses groups Penn Treebank tags for the density measures.
type POSClasses struct {
	Open        []string `yaml:"open"`
	Closed      []string `yaml:"closed"`
	Proposition []string `yaml:"proposition"`
}

// DefaultPOSClasses returns the Penn Treebank open/closed split. Propositions
// are verbs, adjectives, prepositions and conjunctions.
func DefaultPOSClasses() POSClasses {
	return POSClasses{
		Open: []string{
			"NN", "NNS", "NNP", "NNPS",
			"VB", "VBD", "VBG", "VBN", "VBP", "VBZ",
			"JJ", "JJR", "JJS",
			"RB", "RBR", "RBS",
			"FW",
		},
		Closed: []string{
			"CC", "CD", "DT", "EX", "IN", "LS", "MD", "PDT", "POS",
			"PRP", "PRP$", "RP", "TO", "UH", "WDT", "WP", "WP$", "WRB",
		},
		Proposition: []string{
			"VB", "VBD", "VBG", "VBN", "VBP", "VBZ",
			"JJ", "JJR", "JJS",
			"IN", "CC",
		},
	}
}

// ContentDensity is the number of open-class tags over closed-class tags.
func ContentDensity(pairs []tag.Pair, c POSClasses) (float64, error) {
	open := countTags(pairs, c.Open)
	closed := countTags(pairs, c.Closed)
	if closed == 0 {
		return 0, fmt.Errorf("content density: %w", splaterr.ErrDivisionUndefined)
	}
	return float64(open) / float64(closed), nil
}

// IdeaDensity is the number of proposition-bearing tags over all tagged tokens.
func IdeaDensity(pairs []tag.Pair, c POSClasses) (float64, error) {
	if len(pairs) == 0 {
		return 0, fmt.Errorf("idea density: %w", splaterr.ErrDivisionUndefined)
	}
	return float64(countTags(pairs, c.Proposition)) / float64(len(pairs)), nil
}

func countTags(pairs []tag.Pair, tags []string) int {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	n := 0
	for _, p := range pairs {
		if _, ok := set[p.Tag]; ok {
			n++
		}
	}
	return n
}
