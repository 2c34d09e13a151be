package parse

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/cognicore/splat/pkg/splat/splaterr"
)

// Node is a constituent in a parse tree. Leaves (words) have no children.
type Node struct {
	Label    string
	Children []*Node
}

// IsLeaf reports whether n is a word.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// IsPreterminal reports whether n is a part-of-speech node directly above a word.
func (n *Node) IsPreterminal() bool {
	return len(n.Children) == 1 && n.Children[0].IsLeaf()
}

// Leaves returns the words under n, left to right.
func (n *Node) Leaves() []string {
	if n.IsLeaf() {
		return []string{n.Label}
	}
	var out []string
	for _, c := range n.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// Height counts the nodes on the longest path from n down to a word, the
// word included. A bare word has height 1; (NN dog) has height 2.
func (n *Node) Height() int {
	h := 0
	for _, c := range n.Children {
		if ch := c.Height(); ch > h {
			h = ch
		}
	}
	return h + 1
}

// String renders n in bracket notation.
func (n *Node) String() string {
	if n.IsLeaf() {
		return n.Label
	}
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(n.Label)
	for _, c := range n.Children {
		b.WriteString(" ")
		b.WriteString(c.String())
	}
	b.WriteString(")")
	return b.String()
}

// ParseTree reads a bracketed tree such as "(S (NP (DT the) (NN dog)) (VP (VBD ran)))".
// An unlabeled outer wrapper "( (S ...))" is kept as a node with an empty
// label. A single bare word is a one-leaf tree. Empty or unbalanced input is
// ErrMalformedTree.
func ParseTree(s string) (*Node, error) {
	toks := lexTree(s)
	if len(toks) == 0 {
		return nil, fmt.Errorf("empty tree: %w", splaterr.ErrMalformedTree)
	}
	if len(toks) == 1 && toks[0] != "(" && toks[0] != ")" {
		return &Node{Label: toks[0]}, nil
	}

	p := &treeParser{toks: toks}
	root, err := p.node()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("trailing input after tree at token %d: %w", p.pos, splaterr.ErrMalformedTree)
	}
	return root, nil
}

type treeParser struct {
	toks []string
	pos  int
}

func (p *treeParser) node() (*Node, error) {
	if p.pos >= len(p.toks) || p.toks[p.pos] != "(" {
		return nil, fmt.Errorf("expected '(' at token %d: %w", p.pos, splaterr.ErrMalformedTree)
	}
	p.pos++

	n := &Node{}
	if p.pos < len(p.toks) && p.toks[p.pos] != "(" && p.toks[p.pos] != ")" {
		n.Label = p.toks[p.pos]
		p.pos++
	}

	for p.pos < len(p.toks) {
		switch p.toks[p.pos] {
		case ")":
			p.pos++
			if len(n.Children) == 0 {
				return nil, fmt.Errorf("constituent %q has no children: %w", n.Label, splaterr.ErrMalformedTree)
			}
			return n, nil
		case "(":
			child, err := p.node()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		default:
			n.Children = append(n.Children, &Node{Label: p.toks[p.pos]})
			p.pos++
		}
	}
	return nil, fmt.Errorf("unbalanced brackets: %w", splaterr.ErrMalformedTree)
}

func lexTree(s string) []string {
	var toks []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '(' || r == ')':
			flush()
			toks = append(toks, string(r))
		case unicode.IsSpace(r):
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}
