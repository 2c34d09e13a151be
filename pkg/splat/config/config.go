package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/splat/pkg/splat/complexity"
	"github.com/cognicore/splat/pkg/splat/disfluency"
	"github.com/cognicore/splat/pkg/splat/splaterr"
	"github.com/cognicore/splat/pkg/splat/wordclass"
)

// DefaultVersion is reported in bubble summaries when no version is configured.
const DefaultVersion = "splat 0.4.0"

// Rounding sets the decimal places of reported scores.
type Rounding struct {
	Ratio       int `yaml:"ratio"`
	Average     int `yaml:"average"`
	Readability int `yaml:"readability"`
}

// Settings is the configuration owned by a bubble.
type Settings struct {
	Version       string                    `yaml:"version"`
	FunctionWords []string                  `yaml:"function_words"`
	Disfluency    disfluency.Markers        `yaml:"disfluency"`
	Frazier       complexity.FrazierWeights `yaml:"frazier"`
	POS           complexity.POSClasses     `yaml:"pos"`
	Rounding      Rounding                  `yaml:"rounding"`
}

// Default returns the built-in settings. Each call returns independent slices.
func Default() Settings {
	fw := make([]string, len(wordclass.DefaultFunctionWords))
	copy(fw, wordclass.DefaultFunctionWords)
	return Settings{
		Version:       DefaultVersion,
		FunctionWords: fw,
		Disfluency:    disfluency.DefaultMarkers(),
		Frazier:       complexity.DefaultFrazierWeights(),
		POS:           complexity.DefaultPOSClasses(),
		Rounding:      Rounding{Ratio: 2, Average: 4, Readability: 4},
	}
}

// Clone returns a deep copy of s that shares no slices with it.
func (s Settings) Clone() Settings {
	c := s
	c.FunctionWords = slices.Clone(s.FunctionWords)
	c.Disfluency = disfluency.Markers{
		UM:     slices.Clone(s.Disfluency.UM),
		HM:     slices.Clone(s.Disfluency.HM),
		UH:     slices.Clone(s.Disfluency.UH),
		AH:     slices.Clone(s.Disfluency.AH),
		ER:     slices.Clone(s.Disfluency.ER),
		Pauses: slices.Clone(s.Disfluency.Pauses),
		Breaks: slices.Clone(s.Disfluency.Breaks),
	}
	c.Frazier.SentenceLabels = slices.Clone(s.Frazier.SentenceLabels)
	c.Frazier.IgnoreLabels = slices.Clone(s.Frazier.IgnoreLabels)
	c.POS = complexity.POSClasses{
		Open:        slices.Clone(s.POS.Open),
		Closed:      slices.Clone(s.POS.Closed),
		Proposition: slices.Clone(s.POS.Proposition),
	}
	return c
}

// Validate checks that every table a bubble depends on is usable.
func (s Settings) Validate() error {
	switch {
	case len(s.FunctionWords) == 0:
		return fmt.Errorf("function_words is empty: %w", splaterr.ErrInvalidConfig)
	case len(s.POS.Open) == 0 || len(s.POS.Closed) == 0:
		return fmt.Errorf("pos open and closed classes are required: %w", splaterr.ErrInvalidConfig)
	case len(s.POS.Proposition) == 0:
		return fmt.Errorf("pos proposition class is empty: %w", splaterr.ErrInvalidConfig)
	case s.Frazier.Sentence < 0 || s.Frazier.Phrase < 0 || s.Frazier.Preterminal < 0:
		return fmt.Errorf("frazier weights must be non-negative: %w", splaterr.ErrInvalidConfig)
	case s.Rounding.Ratio < 0 || s.Rounding.Average < 0 || s.Rounding.Readability < 0:
		return fmt.Errorf("rounding places must be non-negative: %w", splaterr.ErrInvalidConfig)
	}
	return nil
}

// LoadSettings reads settings from a YAML file. Keys absent from the file
// keep their default values.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	return ParseSettings(data)
}

// ParseSettings decodes YAML settings over the defaults and validates them.
func ParseSettings(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// WordList represents a word list file
type WordList struct {
	Terms []string `yaml:"terms"`
}

// LoadWordList loads words from a YAML file with a top-level terms list
func LoadWordList(path string) (*WordList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var wl WordList
	if err := yaml.Unmarshal(data, &wl); err != nil {
		return nil, err
	}

	return &wl, nil
}
