package splat

import (
	"fmt"
	"io"
	"strings"

	"github.com/cognicore/splat/pkg/splat/disfluency"
	"github.com/cognicore/splat/pkg/splat/tag"
)

// WriteDPU prints the per-utterance disfluency table.
func (b *Bubble) WriteDPU(w io.Writer) error {
	return disfluency.WriteUnits(w, b.dpu)
}

// WriteDPS prints the per-sentence disfluency table.
func (b *Bubble) WriteDPS(w io.Writer) error {
	return disfluency.WriteUnits(w, b.dps)
}

// WriteDisfluencies prints the disfluency totals.
func (b *Bubble) WriteDisfluencies(w io.Writer) error {
	return disfluency.WriteTotals(w, b.dis)
}

// WritePerAct prints the per-dialog-act disfluency table. The bubble must
// be annotated first.
func (b *Bubble) WritePerAct(w io.Writer) error {
	acts, err := b.DisfluenciesPerAct()
	if err != nil {
		return err
	}
	return disfluency.WritePerAct(w, acts)
}

// WritePOSCounts prints the tag histogram.
func (b *Bubble) WritePOSCounts(w io.Writer) error {
	return tag.WriteCounts(w, b.posCounts)
}

// Splat returns a multi-section summary of the bubble for inspection.
func (b *Bubble) Splat() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "===== %s [%s]\n", b.settings.Version, b.id)
	sb.WriteString("===== Bubble:\n")
	sb.WriteString(b.text + "\n")
	sb.WriteString("===== Sentences:\n")
	for i, s := range b.sentences {
		fmt.Fprintf(&sb, "[%d] %s\n", i, s)
	}
	fmt.Fprintf(&sb, "Sentence Count: %d\n", len(b.sentences))
	sb.WriteString("===== Tokens:\n")
	fmt.Fprintf(&sb, "%q\n", b.tokens)
	fmt.Fprintf(&sb, "Word Count: %d\n", len(b.rawTokens))
	sb.WriteString("===== Types:\n")
	fmt.Fprintf(&sb, "%q\n", b.types)
	fmt.Fprintf(&sb, "Unique Word Count: %d\n", len(b.types))
	sb.WriteString("===== Type-Token Ratio:\n")
	if b.ttrErr != nil {
		sb.WriteString("undefined\n")
	} else {
		fmt.Fprintf(&sb, "%g\n", b.ttr)
	}

	return sb.String()
}
