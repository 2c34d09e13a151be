package parse

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// TreeParser produces one bracketed parse tree per utterance. An utterance
// that cannot be parsed yields an empty string at its position.
type TreeParser interface {
	ParseTrees(ctx context.Context, utterances []string) ([]string, error)
}

// Static serves trees computed ahead of time, matched to utterances by position.
type Static struct {
	trees []string
}

// NewStatic creates a parser over pre-computed trees.
func NewStatic(trees []string) *Static {
	cp := make([]string, len(trees))
	copy(cp, trees)
	return &Static{trees: cp}
}

// LoadStatic reads pre-computed trees from a file, one tree per line. Blank
// lines stand for utterances that did not parse.
func LoadStatic(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trees %s: %w", path, err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return &Static{trees: lines}, nil
}

// ParseTrees returns the stored tree for each utterance position; positions
// past the stored trees are empty.
func (s *Static) ParseTrees(ctx context.Context, utterances []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]string, len(utterances))
	for i := range utterances {
		if i < len(s.trees) {
			out[i] = s.trees[i]
		}
	}
	return out, nil
}

// ParseAll reads every tree string, dropping the ones that are empty or
// malformed. The second result counts the dropped trees.
func ParseAll(treestrings []string) ([]*Node, int) {
	trees := make([]*Node, 0, len(treestrings))
	dropped := 0
	for _, s := range treestrings {
		t, err := ParseTree(s)
		if err != nil {
			dropped++
			continue
		}
		trees = append(trees, t)
	}
	return trees, dropped
}
