package annotate

import (
	"regexp"
	"strings"
	"unicode"
)

// Dialog act labels assigned by DialogActs.
const (
	Question    = "Question"
	Statement   = "Statement"
	Backchannel = "Backchannel"
	Agreement   = "Agreement"
	Greeting    = "Greeting"
	Filler      = "Filler"
)

// Utterance is an annotated utterance.
type Utterance struct {
	Text    string
	Speaker string
	Acts    []string
}

// Annotator labels utterances with dialog acts.
type Annotator interface {
	Annotate(utterances []string) []Utterance
}

var speakerPrefix = regexp.MustCompile(`^([A-Z][A-Za-z0-9]{0,15}):\s*`)

var (
	greetings    = wordSet("hi", "hello", "hey", "bye", "goodbye", "morning", "evening")
	backchannels = wordSet("yeah", "uh-huh", "mhm", "mm-hmm", "okay", "ok", "right", "sure", "i see", "oh", "wow")
	agreements   = wordSet("yes", "yeah", "yep", "right", "exactly", "agreed", "sure", "definitely", "absolutely")
	fillers      = wordSet("um", "uh", "uhm", "er", "erm", "ah", "hm", "hmm", "mm", "like", "well")
	questionLead = wordSet(
		"what", "why", "how", "who", "whom", "whose", "where", "when", "which",
		"do", "does", "did", "is", "are", "was", "were", "can", "could", "would",
		"will", "should", "shall", "may", "have", "has",
	)
)

// DialogActs is a rule-based annotator. It strips speaker indicators such as
// "A:" into Utterance.Speaker, then labels each utterance from its wording
// and final punctuation. Every utterance receives at least one act.
type DialogActs struct{}

// NewDialogActs creates the rule-based annotator
func NewDialogActs() *DialogActs {
	return &DialogActs{}
}

// Annotate labels each utterance, preserving order.
func (DialogActs) Annotate(utterances []string) []Utterance {
	out := make([]Utterance, 0, len(utterances))
	for _, raw := range utterances {
		u := Utterance{Text: strings.TrimSpace(raw)}
		if m := speakerPrefix.FindStringSubmatch(u.Text); m != nil {
			u.Speaker = m[1]
			u.Text = strings.TrimSpace(u.Text[len(m[0]):])
		}
		u.Acts = classify(u.Text)
		out = append(out, u)
	}
	return out
}

func classify(text string) []string {
	words := words(text)
	if len(words) == 0 {
		return []string{Filler}
	}
	phrase := strings.Join(words, " ")

	var acts []string
	if allIn(words, fillers) {
		return []string{Filler}
	}
	if _, ok := greetings[words[0]]; ok {
		acts = append(acts, Greeting)
	}
	if _, ok := backchannels[phrase]; ok {
		return append(acts, Backchannel)
	}
	if _, ok := agreements[words[0]]; ok {
		acts = append(acts, Agreement)
	}
	if strings.HasSuffix(strings.TrimSpace(text), "?") {
		acts = append(acts, Question)
	} else if _, ok := questionLead[firstContent(words)]; ok {
		acts = append(acts, Question)
	}
	if len(acts) == 0 || (len(acts) == 1 && acts[0] != Question && len(words) > 2) {
		acts = append(acts, Statement)
	}
	return acts
}

// firstContent returns the first word that is not a filler.
func firstContent(words []string) string {
	for _, w := range words {
		if _, ok := fillers[w]; !ok {
			return w
		}
	}
	return ""
}

func words(text string) []string {
	var out []string
	for _, f := range strings.Fields(strings.ToLower(text)) {
		f = strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\'' && r != '-'
		})
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func allIn(words []string, set map[string]struct{}) bool {
	for _, w := range words {
		if _, ok := set[w]; !ok {
			return false
		}
	}
	return true
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
