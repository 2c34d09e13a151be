package freq

import (
	"fmt"
	"strings"

	"github.com/cognicore/splat/pkg/splat/splaterr"
)

// NGrams returns every run of n adjacent tokens, preserving order.
func NGrams(tokens []string, n int) ([][]string, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n-gram size %d: %w", n, splaterr.ErrInvalidInput)
	}
	if len(tokens) < n {
		return [][]string{}, nil
	}
	out := make([][]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		gram := make([]string, n)
		copy(gram, tokens[i:i+n])
		out = append(out, gram)
	}
	return out, nil
}

// NGramCounts builds a distribution over space-joined n-grams.
func NGramCounts(tokens []string, n int) (*Distribution, error) {
	grams, err := NGrams(tokens, n)
	if err != nil {
		return nil, err
	}
	joined := make([]string, len(grams))
	for i, g := range grams {
		joined[i] = strings.Join(g, " ")
	}
	return Build(joined), nil
}
