package splat

import (
	"maps"
	"slices"
	"strings"

	"github.com/cognicore/splat/pkg/splat/annotate"
	"github.com/cognicore/splat/pkg/splat/ingest"
)

// Annotation is the dialog-act annotated form of a bubble.
type Annotation struct {
	Lines    []string            // annotated utterances in "utterance (act, act)" form
	Acts     map[string][]string // utterance text -> dialog acts
	Speakers map[string]string   // utterance text -> speaker, when indicated
}

// String returns the annotated transcript.
func (a *Annotation) String() string {
	return strings.Join(a.Lines, "\n")
}

// ActsFor returns the dialog acts of an utterance.
func (a *Annotation) ActsFor(utt string) []string {
	return a.Acts[strings.TrimSpace(utt)]
}

func (a *Annotation) clone() *Annotation {
	c := &Annotation{
		Lines:    slices.Clone(a.Lines),
		Acts:     make(map[string][]string, len(a.Acts)),
		Speakers: maps.Clone(a.Speakers),
	}
	for utt, acts := range a.Acts {
		c.Acts[utt] = slices.Clone(acts)
	}
	return c
}

func annotationFromTranscript(t *ingest.Transcript) *Annotation {
	return &Annotation{
		Lines:    append([]string(nil), t.Annotated...),
		Acts:     t.Acts,
		Speakers: map[string]string{},
	}
}

// annotationFromUtterances keys the annotator's output by the source
// utterances, which it returns in order.
func annotationFromUtterances(utts []string, labelled []annotate.Utterance) *Annotation {
	a := &Annotation{
		Acts:     make(map[string][]string, len(utts)),
		Speakers: make(map[string]string),
	}
	for i, utt := range utts {
		if i >= len(labelled) {
			break
		}
		u := labelled[i]
		a.Acts[utt] = u.Acts
		if u.Speaker != "" {
			a.Speakers[utt] = u.Speaker
		}
		a.Lines = append(a.Lines, ingest.FormatAnnotation(utt, u.Acts))
	}
	return a
}
