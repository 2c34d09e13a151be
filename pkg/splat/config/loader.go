package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cognicore/splat/pkg/splat/annotate"
	"github.com/cognicore/splat/pkg/splat/ingest"
	"github.com/cognicore/splat/pkg/splat/parse"
	"github.com/cognicore/splat/pkg/splat/parse/corenlp"
	"github.com/cognicore/splat/pkg/splat/splaterr"
	"github.com/cognicore/splat/pkg/splat/tag"
	"github.com/cognicore/splat/pkg/splat/tag/prose"
)

// Sentenizer names accepted by Loader.
const (
	SentenizerRule  = "rule"
	SentenizerProse = "prose"
)

// Loader loads all configuration files and constructs components
type Loader struct {
	SettingsPath      string
	FunctionWordsPath string
	TreesPath         string
	ParserURL         string
	Sentenizer        string

	Log *logrus.Entry
}

// Components holds all loaded configuration components
type Components struct {
	Settings  Settings
	Pipeline  *ingest.Pipeline
	Tagger    tag.Tagger
	Parser    parse.TreeParser
	Annotator annotate.Annotator
}

// Load reads all configuration files and returns initialized components.
// Parser is nil when neither a trees file nor a parser URL is configured.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{
		Settings:  Default(),
		Tagger:    prose.NewTagger(),
		Annotator: annotate.NewDialogActs(),
	}

	// Load settings
	if l.SettingsPath != "" {
		s, err := LoadSettings(l.SettingsPath)
		if err != nil {
			return nil, fmt.Errorf("load settings: %w", err)
		}
		comp.Settings = s
	}

	// A word list file replaces the configured function words
	if l.FunctionWordsPath != "" {
		wl, err := LoadWordList(l.FunctionWordsPath)
		if err != nil {
			return nil, fmt.Errorf("load function words: %w", err)
		}
		if len(wl.Terms) == 0 {
			return nil, fmt.Errorf("function words %s: no terms: %w", l.FunctionWordsPath, splaterr.ErrInvalidConfig)
		}
		comp.Settings.FunctionWords = wl.Terms
	}

	// Sentenizer
	switch strings.ToLower(l.Sentenizer) {
	case "", SentenizerRule:
		comp.Pipeline = ingest.DefaultPipeline()
	case SentenizerProse:
		comp.Pipeline = ingest.NewPipeline(nil, nil, prose.NewSentenizer())
	default:
		return nil, fmt.Errorf("unknown sentenizer %q: %w", l.Sentenizer, splaterr.ErrInvalidConfig)
	}

	// Tree parser: pre-computed trees take precedence over a live server
	switch {
	case l.TreesPath != "":
		static, err := parse.LoadStatic(l.TreesPath)
		if err != nil {
			return nil, fmt.Errorf("load trees: %w", err)
		}
		comp.Parser = static
	case l.ParserURL != "":
		comp.Parser = &corenlp.Client{
			BaseURL: strings.TrimRight(l.ParserURL, "/"),
			Log:     l.Log,
		}
	}

	return comp, nil
}
