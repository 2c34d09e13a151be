// Package prose adapts github.com/jdkato/prose/v2 to the tagger and
// sentenizer contracts.
package prose

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	"github.com/cognicore/splat/pkg/splat/tag"
)

// Tagger tags text with prose's averaged-perceptron Penn Treebank tagger.
type Tagger struct{}

// NewTagger creates a prose-backed tagger
func NewTagger() *Tagger {
	return &Tagger{}
}

// Tag tokenizes and tags text.
func (Tagger) Tag(text string) ([]tag.Pair, error) {
	if strings.TrimSpace(text) == "" {
		return []tag.Pair{}, nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("prose tag: %w", err)
	}

	toks := doc.Tokens()
	pairs := make([]tag.Pair, 0, len(toks))
	for _, tok := range toks {
		pairs = append(pairs, tag.Pair{Token: tok.Text, Tag: tok.Tag})
	}
	return pairs, nil
}

// Sentenizer segments text with prose's sentence boundary detector.
type Sentenizer struct{}

// NewSentenizer creates a prose-backed sentenizer
func NewSentenizer() *Sentenizer {
	return &Sentenizer{}
}

// Sentenize returns the sentences of text. Text prose cannot process yields
// no sentences.
func (Sentenizer) Sentenize(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithTokenization(false),
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil
	}

	var out []string
	for _, s := range doc.Sentences() {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}
