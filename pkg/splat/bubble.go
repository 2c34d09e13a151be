package splat

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/cognicore/splat/internal/memo"
	"github.com/cognicore/splat/internal/textfile"
	"github.com/cognicore/splat/pkg/splat/annotate"
	"github.com/cognicore/splat/pkg/splat/complexity"
	"github.com/cognicore/splat/pkg/splat/config"
	"github.com/cognicore/splat/pkg/splat/disfluency"
	"github.com/cognicore/splat/pkg/splat/freq"
	"github.com/cognicore/splat/pkg/splat/ingest"
	"github.com/cognicore/splat/pkg/splat/parse"
	"github.com/cognicore/splat/pkg/splat/splaterr"
	"github.com/cognicore/splat/pkg/splat/tag"
	"github.com/cognicore/splat/pkg/splat/tag/prose"
	"github.com/cognicore/splat/pkg/splat/wordclass"
)

// Options configures a Bubble. Zero fields select the defaults.
type Options struct {
	Settings  *config.Settings
	Pipeline  *ingest.Pipeline
	Tagger    tag.Tagger
	Parser    parse.TreeParser // nil disables tree-based measures
	Annotator annotate.Annotator

	// Context bounds calls to the tree parser.
	Context context.Context
	Log     *logrus.Entry
}

// OptionsFrom builds options from loaded components.
func OptionsFrom(c *config.Components) Options {
	settings := c.Settings.Clone()
	return Options{
		Settings:  &settings,
		Pipeline:  c.Pipeline,
		Tagger:    c.Tagger,
		Parser:    c.Parser,
		Annotator: c.Annotator,
	}
}

// Bubble is the analysis of one corpus text. Text-level features are
// computed when the bubble is built; annotation, parse trees and the scores
// derived from them are computed on first use and cached. A Bubble is not
// safe for concurrent use.
type Bubble struct {
	id       string
	settings config.Settings
	log      *logrus.Entry
	ctx      context.Context

	parser     parse.TreeParser
	annotator  annotate.Annotator
	lexicon    *wordclass.Lexicon
	classifier *disfluency.Classifier

	text       string
	utterances []string
	sentences  []string
	rawTokens  []string
	tokens     []string
	rawTypes   []string
	types      []string

	ttr        float64
	ttrErr     error
	pos        []tag.Pair
	posCounts  map[string]int
	dist       *freq.Distribution
	syllables  int
	longest    []string
	shortest   []string
	cWords     []string
	fWords     []string
	ucWords    []string
	ufWords    []string
	cfRatio    float64
	cfErr      error
	cDensity   float64
	cDensErr   error
	iDensity   float64
	iDensErr   error
	avgUtt     float64
	avgSent    float64
	dpu        []disfluency.Unit
	dps        []disfluency.Unit
	dis        map[string]int
	perUttWord []int
	perSenWord []int

	annotated   memo.Value[*Annotation]
	treestrings memo.Value[[]string]
	trees       memo.Value[[]*parse.Node]
	yngve       memo.Value[float64]
	frazier     memo.Value[float64]
	maxDepth    memo.Value[int]
	flesch      memo.Value[float64]
	kincaid     memo.Value[float64]
	perAct      memo.Value[[]disfluency.ActVector]
}

// New builds a bubble from text. Each non-blank line is an utterance; lines
// may carry dialog-act annotations in "utterance (act, act)" form.
func New(text string, opts Options) (*Bubble, error) {
	settings := config.Default()
	if opts.Settings != nil {
		settings = opts.Settings.Clone()
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	b := &Bubble{
		id:         ulid.MustNew(ulid.Now(), ulid.Monotonic(rand.Reader, 0)).String(),
		settings:   settings,
		log:        opts.Log,
		ctx:        opts.Context,
		parser:     opts.Parser,
		annotator:  opts.Annotator,
		lexicon:    wordclass.New(settings.FunctionWords),
		classifier: disfluency.NewClassifier(settings.Disfluency),
	}
	if b.log == nil {
		b.log = logrus.WithField("component", "bubble")
	}
	b.log = b.log.WithField("bubble", b.id)
	if b.ctx == nil {
		b.ctx = context.Background()
	}
	if b.annotator == nil {
		b.annotator = annotate.NewDialogActs()
	}
	pipeline := opts.Pipeline
	if pipeline == nil {
		pipeline = ingest.DefaultPipeline()
	}
	tagger := opts.Tagger
	if tagger == nil {
		tagger = prose.NewTagger()
	}

	transcript := ingest.ParseTranscript(text)
	b.text = transcript.Text
	b.utterances = transcript.Utterances
	if transcript.HasAnnotations() {
		b.annotated.Set(annotationFromTranscript(transcript))
	}

	processed := pipeline.Process(b.text)
	b.sentences = processed.Sentences
	if len(b.sentences) == 0 {
		b.sentences = slices.Clone(b.utterances)
	}
	b.rawTokens = processed.RawTokens
	b.tokens = processed.Tokens
	b.rawTypes = ingest.Typify(b.rawTokens)
	b.types = ingest.Typify(b.tokens)

	r := settings.Rounding
	b.ttr, b.ttrErr = typeTokenRatio(len(b.types), len(b.tokens), r.Ratio)
	b.syllables = complexity.CountSyllables(b.tokens)
	b.longest, b.shortest = extremes(b.types)

	pos, err := tagger.Tag(b.text)
	if err != nil {
		return nil, fmt.Errorf("tag bubble: %w", err)
	}
	b.pos = pos
	b.posCounts = tag.Counts(pos)
	b.dist = freq.Build(b.tokens)

	b.cWords = b.lexicon.ContentWords(b.tokens)
	b.fWords = b.lexicon.FunctionWords(b.tokens)
	b.ucWords = b.lexicon.ContentWords(b.types)
	b.ufWords = b.lexicon.FunctionWords(b.types)
	if b.cfRatio, b.cfErr = b.lexicon.Ratio(b.tokens); b.cfErr == nil {
		b.cfRatio = complexity.Round(b.cfRatio, r.Average)
	}
	b.cDensity, b.cDensErr = complexity.ContentDensity(b.pos, settings.POS)
	b.iDensity, b.iDensErr = complexity.IdeaDensity(b.pos, settings.POS)

	b.avgUtt = average(len(b.rawTokens), len(b.utterances), r.Average)
	b.avgSent = average(len(b.rawTokens), len(b.sentences), r.Average)
	b.perUttWord = wordsPer(pipeline.RawTokenizer(), b.utterances)
	b.perSenWord = wordsPer(pipeline.RawTokenizer(), b.sentences)

	b.dpu = b.classifier.ClassifyAll(b.utterances)
	b.dps = b.classifier.ClassifyAll(b.sentences)
	b.dis = disfluency.Total(b.dpu)

	b.log.WithFields(logrus.Fields{
		"utterances": len(b.utterances),
		"sentences":  len(b.sentences),
		"tokens":     len(b.tokens),
		"types":      len(b.types),
		"annotated":  transcript.HasAnnotations(),
	}).Debug("bubble built")

	return b, nil
}

// FromLines builds a bubble with one utterance per element.
func FromLines(lines []string, opts Options) (*Bubble, error) {
	return New(strings.Join(lines, "\n"), opts)
}

// FromFile builds a bubble from a transcript file.
func FromFile(path string, opts Options) (*Bubble, error) {
	text, err := textfile.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, splaterr.ErrInvalidInput)
		}
		return nil, err
	}
	return New(text, opts)
}

// Open builds a bubble from a path to an existing file, a text string or a
// slice of utterances. Any other value is invalid input.
func Open(v any, opts Options) (*Bubble, error) {
	switch src := v.(type) {
	case string:
		if textfile.Exists(src) {
			return FromFile(src, opts)
		}
		return New(src, opts)
	case []string:
		return FromLines(src, opts)
	default:
		return nil, fmt.Errorf("bubble source must be a string or an existing file, got %T: %w", v, splaterr.ErrInvalidInput)
	}
}

// ID returns the bubble's unique identifier.
func (b *Bubble) ID() string { return b.id }

// Settings returns a copy of the configuration the bubble was built with.
func (b *Bubble) Settings() config.Settings { return b.settings.Clone() }

// Text returns the bubble text: the utterances joined by spaces, annotations removed.
func (b *Bubble) Text() string { return b.text }

// Utterances returns the utterances, one per non-blank source line.
func (b *Bubble) Utterances() []string { return slices.Clone(b.utterances) }

// Sentences returns the sentences of the bubble text.
func (b *Bubble) Sentences() []string { return slices.Clone(b.sentences) }

// UtteranceCount returns the number of utterances.
func (b *Bubble) UtteranceCount() int { return len(b.utterances) }

// SentenceCount returns the number of sentences.
func (b *Bubble) SentenceCount() int { return len(b.sentences) }

// RawTokens returns the tokens as written.
func (b *Bubble) RawTokens() []string { return slices.Clone(b.rawTokens) }

// Tokens returns the normalized tokens.
func (b *Bubble) Tokens() []string { return slices.Clone(b.tokens) }

// RawTypes returns the distinct raw tokens in first-occurrence order.
func (b *Bubble) RawTypes() []string { return slices.Clone(b.rawTypes) }

// Types returns the distinct normalized tokens in first-occurrence order.
func (b *Bubble) Types() []string { return slices.Clone(b.types) }

// WordCount returns the number of raw tokens.
func (b *Bubble) WordCount() int { return len(b.rawTokens) }

// UniqueWordCount returns the number of types.
func (b *Bubble) UniqueWordCount() int { return len(b.types) }

// TypeTokenRatio returns 100 × types / tokens. A bubble without tokens has
// no ratio.
func (b *Bubble) TypeTokenRatio() (float64, error) { return b.ttr, b.ttrErr }

// POS returns the (token, tag) pairs of the bubble text.
func (b *Bubble) POS() []tag.Pair { return slices.Clone(b.pos) }

// POSCounts maps each tag to its number of occurrences.
func (b *Bubble) POSCounts() map[string]int { return maps.Clone(b.posCounts) }

// FrequencyDistribution returns type counts over the normalized tokens.
func (b *Bubble) FrequencyDistribution() map[string]int { return b.dist.Counts() }

// MostFrequent returns the k most frequent types, ties in first-occurrence
// order. k <= 0 returns every type.
func (b *Bubble) MostFrequent(k int) []freq.Entry { return b.dist.MostFrequent(k) }

// NGramFrequencies returns the n-grams of the normalized tokens, most
// frequent first, each joined by single spaces.
func (b *Bubble) NGramFrequencies(n int) ([]freq.Entry, error) {
	d, err := freq.NGramCounts(b.tokens, n)
	if err != nil {
		return nil, err
	}
	return d.MostFrequent(0), nil
}

// LeastFrequent returns the most-frequent ordering reversed, truncated to k.
// k <= 0 returns every type.
func (b *Bubble) LeastFrequent(k int) []freq.Entry { return b.dist.LeastFrequent(k) }

// Syllables returns the syllable count of the normalized tokens.
func (b *Bubble) Syllables() int { return b.syllables }

// LongestWords returns the types of maximal length.
func (b *Bubble) LongestWords() []string { return slices.Clone(b.longest) }

// ShortestWords returns the types of minimal length.
func (b *Bubble) ShortestWords() []string { return slices.Clone(b.shortest) }

// ContentWords returns the tokens outside the function-word list.
func (b *Bubble) ContentWords() []string { return slices.Clone(b.cWords) }

// FunctionWords returns the tokens on the function-word list.
func (b *Bubble) FunctionWords() []string { return slices.Clone(b.fWords) }

// UniqueContentWords returns the content types.
func (b *Bubble) UniqueContentWords() []string { return slices.Clone(b.ucWords) }

// UniqueFunctionWords returns the function types.
func (b *Bubble) UniqueFunctionWords() []string { return slices.Clone(b.ufWords) }

// ContentFunctionRatio returns content words over function words.
func (b *Bubble) ContentFunctionRatio() (float64, error) { return b.cfRatio, b.cfErr }

// ContentDensity returns open-class over closed-class tag counts.
func (b *Bubble) ContentDensity() (float64, error) { return b.cDensity, b.cDensErr }

// IdeaDensity returns proposition-bearing tags over tagged tokens.
func (b *Bubble) IdeaDensity() (float64, error) { return b.iDensity, b.iDensErr }

// AverageUtteranceLength returns words per utterance, 0 without utterances.
func (b *Bubble) AverageUtteranceLength() float64 { return b.avgUtt }

// AverageSentenceLength returns words per sentence, 0 without sentences.
func (b *Bubble) AverageSentenceLength() float64 { return b.avgSent }

// WordsPerUtterance returns the raw token count of each utterance.
func (b *Bubble) WordsPerUtterance() []int { return slices.Clone(b.perUttWord) }

// WordsPerSentence returns the raw token count of each sentence.
func (b *Bubble) WordsPerSentence() []int { return slices.Clone(b.perSenWord) }

// NGrams returns every run of n adjacent normalized tokens.
func (b *Bubble) NGrams(n int) ([][]string, error) { return freq.NGrams(b.tokens, n) }

// Unigrams returns the 1-grams.
func (b *Bubble) Unigrams() [][]string { return b.mustNGrams(1) }

// Bigrams returns the 2-grams.
func (b *Bubble) Bigrams() [][]string { return b.mustNGrams(2) }

// Trigrams returns the 3-grams.
func (b *Bubble) Trigrams() [][]string { return b.mustNGrams(3) }

func (b *Bubble) mustNGrams(n int) [][]string {
	grams, _ := freq.NGrams(b.tokens, n)
	return grams
}

// DisfluenciesPerUtterance returns the classification of each utterance.
func (b *Bubble) DisfluenciesPerUtterance() []disfluency.Unit { return slices.Clone(b.dpu) }

// DisfluenciesPerSentence returns the classification of each sentence.
func (b *Bubble) DisfluenciesPerSentence() []disfluency.Unit { return slices.Clone(b.dps) }

// Disfluencies returns the per-category totals over all utterances.
func (b *Bubble) Disfluencies() map[string]int { return maps.Clone(b.dis) }

// Annotated reports whether the bubble carries dialog-act annotations,
// either from its source or from a previous call to Annotate.
func (b *Bubble) Annotated() bool {
	_, ok := b.annotated.Peek()
	return ok
}

// Annotate returns a copy of the annotated form of the bubble. Annotations
// present in the source are returned as read; otherwise the annotator labels
// every utterance once.
func (b *Bubble) Annotate() (*Annotation, error) {
	a, err := b.annotated.Get(func() (*Annotation, error) {
		b.log.Debug("annotating utterances")
		return annotationFromUtterances(b.utterances, b.annotator.Annotate(b.utterances)), nil
	})
	if err != nil {
		return nil, err
	}
	return a.clone(), nil
}

// DisfluenciesPerAct sums disfluencies under each dialog act. The bubble
// must be annotated first.
func (b *Bubble) DisfluenciesPerAct() ([]disfluency.ActVector, error) {
	a, ok := b.annotated.Peek()
	if !ok {
		return nil, splaterr.ErrMissingAnnotation
	}
	acts, err := b.perAct.Get(func() ([]disfluency.ActVector, error) {
		return disfluency.PerAct(b.dpu, a.Acts), nil
	})
	return slices.Clone(acts), err
}

// Treestrings returns one bracketed parse tree per utterance, empty where
// the utterance did not parse. The parser is called once per bubble.
func (b *Bubble) Treestrings() ([]string, error) {
	trees, err := b.treestrings.Get(func() ([]string, error) {
		if b.parser == nil {
			return nil, fmt.Errorf("no tree parser configured: %w", splaterr.ErrUnsupported)
		}
		b.log.Debug("parsing utterances")
		out, err := b.parser.ParseTrees(b.ctx, b.utterances)
		if err != nil {
			return nil, fmt.Errorf("parse trees: %w", err)
		}
		return out, nil
	})
	return slices.Clone(trees), err
}

func (b *Bubble) parsedTrees() ([]*parse.Node, error) {
	return b.trees.Get(func() ([]*parse.Node, error) {
		strs, err := b.Treestrings()
		if err != nil {
			return nil, err
		}
		trees, dropped := parse.ParseAll(strs)
		if dropped > 0 {
			b.log.WithField("dropped", dropped).Debug("unparsed utterances excluded from tree measures")
		}
		return trees, nil
	})
}

// TreeBasedYngve returns the mean Yngve score over the parsed utterances.
// Utterances without a tree are excluded from the mean.
func (b *Bubble) TreeBasedYngve() (float64, error) {
	return b.yngve.Get(func() (float64, error) {
		trees, err := b.parsedTrees()
		if err != nil {
			return 0, err
		}
		return complexity.MeanYngve(trees)
	})
}

// TreeBasedFrazier returns the mean Frazier score over the parsed utterances.
func (b *Bubble) TreeBasedFrazier() (float64, error) {
	return b.frazier.Get(func() (float64, error) {
		trees, err := b.parsedTrees()
		if err != nil {
			return 0, err
		}
		return complexity.MeanFrazier(trees, b.settings.Frazier)
	})
}

// StringBasedYngve is not available.
func (b *Bubble) StringBasedYngve() (float64, error) {
	return 0, fmt.Errorf("string-based Yngve score: %w", splaterr.ErrUnsupported)
}

// StringBasedFrazier is not available.
func (b *Bubble) StringBasedFrazier() (float64, error) {
	return 0, fmt.Errorf("string-based Frazier score: %w", splaterr.ErrUnsupported)
}

// MaxDepth returns the greatest height among the parsed trees.
func (b *Bubble) MaxDepth() (int, error) {
	return b.maxDepth.Get(func() (int, error) {
		trees, err := b.parsedTrees()
		if err != nil {
			return 0, err
		}
		return complexity.MaxDepth(trees)
	})
}

// Flesch returns the Flesch reading ease of the bubble.
func (b *Bubble) Flesch() (float64, error) {
	return b.flesch.Get(func() (float64, error) {
		score, err := complexity.Flesch(len(b.rawTokens), len(b.sentences), b.syllables)
		if err != nil {
			return 0, err
		}
		return complexity.Round(score, b.settings.Rounding.Readability), nil
	})
}

// Kincaid returns the Flesch-Kincaid grade level of the bubble.
func (b *Bubble) Kincaid() (float64, error) {
	return b.kincaid.Get(func() (float64, error) {
		grade, err := complexity.FleschKincaid(len(b.rawTokens), len(b.sentences), b.syllables)
		if err != nil {
			return 0, err
		}
		return complexity.Round(grade, b.settings.Rounding.Readability), nil
	})
}

func typeTokenRatio(types, tokens, places int) (float64, error) {
	if tokens == 0 {
		return 0, fmt.Errorf("type-token ratio: %w", splaterr.ErrDivisionUndefined)
	}
	return complexity.Round(100*float64(types)/float64(tokens), places), nil
}

func average(words, units, places int) float64 {
	if units == 0 {
		return 0
	}
	return complexity.Round(float64(words)/float64(units), places)
}

func wordsPer(t ingest.Tokenizer, units []string) []int {
	out := make([]int, len(units))
	for i, u := range units {
		out[i] = len(t.Tokenize(u))
	}
	return out
}

// extremes returns the longest and shortest of words, in input order.
func extremes(words []string) ([]string, []string) {
	if len(words) == 0 {
		return []string{}, []string{}
	}
	lo, hi := utf8.RuneCountInString(words[0]), utf8.RuneCountInString(words[0])
	for _, w := range words[1:] {
		n := utf8.RuneCountInString(w)
		lo = min(lo, n)
		hi = max(hi, n)
	}
	var longest, shortest []string
	for _, w := range words {
		switch n := utf8.RuneCountInString(w); {
		case n == hi:
			longest = append(longest, w)
			if n == lo {
				shortest = append(shortest, w)
			}
		case n == lo:
			shortest = append(shortest, w)
		}
	}
	return longest, shortest
}
