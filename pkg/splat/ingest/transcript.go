package ingest

import (
	"strings"
)

// Transcript is a corpus split into utterances, with any dialog-act
// annotations found on its lines.
type Transcript struct {
	Text       string              // utterances joined by single spaces
	Utterances []string            // one per non-blank line, annotation removed
	Acts       map[string][]string // utterance text -> dialog acts
	Annotated  []string            // annotated lines in "utterance (act, act)" form
}

// HasAnnotations reports whether any line carried dialog acts.
func (t *Transcript) HasAnnotations() bool {
	return len(t.Acts) > 0
}

// ParseTranscript reads one utterance per line. A line ending in a
// parenthesized, comma-separated list is "utterance (act1, act2)"; the acts
// are attached to the utterance text. A line holding only "(act1, act2)"
// annotates the preceding utterance. Blank lines are skipped.
//
// Acts are keyed by utterance text, so identical utterances share one entry
// and the last annotation wins.
func ParseTranscript(text string) *Transcript {
	t := &Transcript{Acts: make(map[string][]string)}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		utt, acts, ok := splitAnnotation(line)
		if !ok {
			t.Utterances = append(t.Utterances, line)
			continue
		}
		if utt == "" {
			if len(t.Utterances) == 0 {
				continue
			}
			utt = t.Utterances[len(t.Utterances)-1]
		} else {
			t.Utterances = append(t.Utterances, utt)
		}
		t.Acts[utt] = acts
		t.Annotated = append(t.Annotated, FormatAnnotation(utt, acts))
	}

	t.Text = strings.Join(t.Utterances, " ")
	return t
}

// FormatAnnotation renders an utterance and its acts in transcript form.
func FormatAnnotation(utt string, acts []string) string {
	return utt + " (" + strings.Join(acts, ", ") + ")"
}

// splitAnnotation separates a trailing "(a, b)" group from line.
func splitAnnotation(line string) (string, []string, bool) {
	if !strings.HasSuffix(line, ")") {
		return "", nil, false
	}

	depth := 0
	open := -1
	for i := len(line) - 1; i >= 0; i-- {
		switch line[i] {
		case ')':
			depth++
		case '(':
			depth--
		}
		if depth == 0 {
			open = i
			break
		}
	}
	if open < 0 {
		return "", nil, false
	}

	var acts []string
	for _, act := range strings.Split(line[open+1:len(line)-1], ",") {
		if act = strings.TrimSpace(act); act != "" {
			acts = append(acts, act)
		}
	}
	if len(acts) == 0 {
		return "", nil, false
	}

	return strings.TrimSpace(line[:open]), acts, true
}
