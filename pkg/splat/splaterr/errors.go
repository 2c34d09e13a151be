package splaterr

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrDivisionUndefined = errors.New("division undefined: zero denominator")
	ErrUnsupported       = errors.New("not available")
	ErrMalformedTree     = errors.New("malformed parse tree")

	// ErrMissingAnnotation is returned by dialog-act queries on a bubble that was
	// never annotated.
	ErrMissingAnnotation = errors.New("no annotations are present; annotate the bubble first")

	// ErrNoTrees reports that no utterance produced a usable parse tree.
	ErrNoTrees = fmt.Errorf("no parse trees: %w", ErrDivisionUndefined)
)
