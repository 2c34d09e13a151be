package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cognicore/splat/pkg/splat"
	"github.com/cognicore/splat/pkg/splat/freq"
)

// query is one CLI subcommand over a bubble. param names an optional
// second argument.
type query struct {
	name  string
	short string
	param string
	run   func(b *splat.Bubble, w io.Writer, args []string) error
}

var queries = []query{
	{name: "splat", short: "Summary of the bubble", run: func(b *splat.Bubble, w io.Writer, _ []string) error {
		_, err := io.WriteString(w, b.Splat())
		return err
	}},
	{name: "bubble", short: "Bubble text", run: text((*splat.Bubble).Text)},
	{name: "annotate", short: "Dialog-act annotated transcript", run: func(b *splat.Bubble, w io.Writer, _ []string) error {
		a, err := b.Annotate()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, a.String())
		return err
	}},
	{name: "sents", short: "Sentences", run: lines((*splat.Bubble).Sentences)},
	{name: "utts", short: "Utterances", run: lines((*splat.Bubble).Utterances)},
	{name: "rawtokens", short: "Raw tokens", run: lines((*splat.Bubble).RawTokens)},
	{name: "tokens", short: "Clean tokens", run: lines((*splat.Bubble).Tokens)},
	{name: "rawtypes", short: "Raw types", run: lines((*splat.Bubble).RawTypes)},
	{name: "types", short: "Clean types", run: lines((*splat.Bubble).Types)},
	{name: "wordcount", short: "Word count", run: number((*splat.Bubble).WordCount)},
	{name: "uniquewordcount", short: "Unique word count", run: number((*splat.Bubble).UniqueWordCount)},
	{name: "sentcount", short: "Sentence count", run: number((*splat.Bubble).SentenceCount)},
	{name: "uttcount", short: "Utterance count", run: number((*splat.Bubble).UtteranceCount)},
	{name: "syllables", short: "Syllable count", run: number((*splat.Bubble).Syllables)},
	{name: "ttr", short: "Type-token ratio", run: score((*splat.Bubble).TypeTokenRatio)},
	{name: "alu", short: "Average utterance length", run: score(always((*splat.Bubble).AverageUtteranceLength))},
	{name: "als", short: "Average sentence length", run: score(always((*splat.Bubble).AverageSentenceLength))},
	{name: "wpu", short: "Words per utterance", run: counts((*splat.Bubble).WordsPerUtterance)},
	{name: "wps", short: "Words per sentence", run: counts((*splat.Bubble).WordsPerSentence)},
	{name: "longest", short: "Longest words", run: lines((*splat.Bubble).LongestWords)},
	{name: "shortest", short: "Shortest words", run: lines((*splat.Bubble).ShortestWords)},
	{name: "content", short: "Content words", run: lines((*splat.Bubble).ContentWords)},
	{name: "function", short: "Function words", run: lines((*splat.Bubble).FunctionWords)},
	{name: "ucontent", short: "Unique content words", run: lines((*splat.Bubble).UniqueContentWords)},
	{name: "ufunction", short: "Unique function words", run: lines((*splat.Bubble).UniqueFunctionWords)},
	{name: "cfr", short: "Content-function ratio", run: score((*splat.Bubble).ContentFunctionRatio)},
	{name: "cdensity", short: "Content density", run: score((*splat.Bubble).ContentDensity)},
	{name: "idensity", short: "Idea density", run: score((*splat.Bubble).IdeaDensity)},
	{name: "flesch", short: "Flesch readability", run: score((*splat.Bubble).Flesch)},
	{name: "kincaid", short: "Flesch-Kincaid grade level", run: score((*splat.Bubble).Kincaid)},
	{name: "yngve", short: "Mean tree-based Yngve score", run: score((*splat.Bubble).TreeBasedYngve)},
	{name: "frazier", short: "Mean tree-based Frazier score", run: score((*splat.Bubble).TreeBasedFrazier)},
	{name: "string-yngve", short: "String-based Yngve score (not available)", run: score((*splat.Bubble).StringBasedYngve)},
	{name: "string-frazier", short: "String-based Frazier score (not available)", run: score((*splat.Bubble).StringBasedFrazier)},
	{name: "maxdepth", short: "Maximum parse tree depth", run: func(b *splat.Bubble, w io.Writer, _ []string) error {
		d, err := b.MaxDepth()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, d)
		return err
	}},
	{name: "trees", short: "Parse trees", run: func(b *splat.Bubble, w io.Writer, _ []string) error {
		trees, err := b.Treestrings()
		if err != nil {
			return err
		}
		return writeLines(w, trees)
	}},
	{name: "pos", short: "Part-of-speech tags", run: func(b *splat.Bubble, w io.Writer, _ []string) error {
		for _, p := range b.POS() {
			if _, err := fmt.Fprintf(w, "%s\t%s\n", p.Token, p.Tag); err != nil {
				return err
			}
		}
		return nil
	}},
	{name: "poscounts", short: "Part-of-speech tag counts", run: func(b *splat.Bubble, w io.Writer, _ []string) error {
		return b.WritePOSCounts(w)
	}},
	{name: "mostfreq", short: "Most frequent words", param: "k", run: func(b *splat.Bubble, w io.Writer, args []string) error {
		k, err := optionalInt(args)
		if err != nil {
			return err
		}
		return writeEntries(w, b.MostFrequent(k))
	}},
	{name: "leastfreq", short: "Least frequent words", param: "k", run: func(b *splat.Bubble, w io.Writer, args []string) error {
		k, err := optionalInt(args)
		if err != nil {
			return err
		}
		return writeEntries(w, b.LeastFrequent(k))
	}},
	{name: "ngrams", short: "N-grams", param: "n", run: func(b *splat.Bubble, w io.Writer, args []string) error {
		n, err := optionalInt(args)
		if err != nil {
			return err
		}
		grams, err := b.NGrams(n)
		if err != nil {
			return err
		}
		for _, g := range grams {
			if _, err := fmt.Fprintln(w, strings.Join(g, " ")); err != nil {
				return err
			}
		}
		return nil
	}},
	{name: "ngramfreq", short: "N-gram frequencies", param: "n", run: func(b *splat.Bubble, w io.Writer, args []string) error {
		n, err := optionalInt(args)
		if err != nil {
			return err
		}
		entries, err := b.NGramFrequencies(n)
		if err != nil {
			return err
		}
		return writeEntries(w, entries)
	}},
	{name: "dpu", short: "Disfluencies per utterance", run: func(b *splat.Bubble, w io.Writer, _ []string) error {
		return b.WriteDPU(w)
	}},
	{name: "dps", short: "Disfluencies per sentence", run: func(b *splat.Bubble, w io.Writer, _ []string) error {
		return b.WriteDPS(w)
	}},
	{name: "disfluencies", short: "Disfluency totals", run: func(b *splat.Bubble, w io.Writer, _ []string) error {
		return b.WriteDisfluencies(w)
	}},
	{name: "dpa", short: "Disfluencies per dialog act", run: func(b *splat.Bubble, w io.Writer, _ []string) error {
		return b.WritePerAct(w)
	}},
}

func text(get func(*splat.Bubble) string) func(*splat.Bubble, io.Writer, []string) error {
	return func(b *splat.Bubble, w io.Writer, _ []string) error {
		_, err := fmt.Fprintln(w, get(b))
		return err
	}
}

func lines(get func(*splat.Bubble) []string) func(*splat.Bubble, io.Writer, []string) error {
	return func(b *splat.Bubble, w io.Writer, _ []string) error {
		return writeLines(w, get(b))
	}
}

func number(get func(*splat.Bubble) int) func(*splat.Bubble, io.Writer, []string) error {
	return func(b *splat.Bubble, w io.Writer, _ []string) error {
		_, err := fmt.Fprintln(w, get(b))
		return err
	}
}

func counts(get func(*splat.Bubble) []int) func(*splat.Bubble, io.Writer, []string) error {
	return func(b *splat.Bubble, w io.Writer, _ []string) error {
		for _, n := range get(b) {
			if _, err := fmt.Fprintln(w, n); err != nil {
				return err
			}
		}
		return nil
	}
}

func score(get func(*splat.Bubble) (float64, error)) func(*splat.Bubble, io.Writer, []string) error {
	return func(b *splat.Bubble, w io.Writer, _ []string) error {
		v, err := get(b)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, strconv.FormatFloat(v, 'f', -1, 64))
		return err
	}
}

func always(get func(*splat.Bubble) float64) func(*splat.Bubble) (float64, error) {
	return func(b *splat.Bubble) (float64, error) { return get(b), nil }
}

func writeLines(w io.Writer, items []string) error {
	for _, s := range items {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

func writeEntries(w io.Writer, entries []freq.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%d\n", e.Type, e.Count); err != nil {
			return err
		}
	}
	return nil
}

// optionalInt parses the optional numeric argument; absent means 0.
func optionalInt(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", args[0], err)
	}
	return n, nil
}
