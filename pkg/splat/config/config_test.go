package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/splat/pkg/splat/splaterr"
)

func TestDefaultIsIndependent(t *testing.T) {
	a := Default()
	b := Default()

	a.FunctionWords[0] = "changed"
	a.Disfluency.UM[0] = "changed"
	a.POS.Open[0] = "changed"

	if b.FunctionWords[0] == "changed" || b.Disfluency.UM[0] == "changed" || b.POS.Open[0] == "changed" {
		t.Error("Default settings share containers between calls")
	}
	if err := b.Validate(); err != nil {
		t.Errorf("Default settings should validate: %v", err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a := Default()
	b := a.Clone()

	a.FunctionWords[0] = "changed"
	a.Disfluency.Pauses[0] = "changed"
	a.Frazier.SentenceLabels[0] = "changed"
	a.Frazier.IgnoreLabels[0] = "changed"
	a.POS.Proposition[0] = "changed"

	if b.FunctionWords[0] == "changed" || b.Disfluency.Pauses[0] == "changed" ||
		b.Frazier.SentenceLabels[0] == "changed" || b.Frazier.IgnoreLabels[0] == "changed" ||
		b.POS.Proposition[0] == "changed" {
		t.Error("Clone shares slices with the original")
	}
	if b.Frazier.Sentence != a.Frazier.Sentence || b.Rounding != a.Rounding {
		t.Error("Clone should keep scalar fields")
	}
}

func TestLoadSettings(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "settings.yaml")

	content := `version: test-1
function_words:
  - the
  - a
frazier:
  sentence: 2
rounding:
  ratio: 3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("Failed to load settings: %v", err)
	}

	if s.Version != "test-1" {
		t.Errorf("Expected version test-1, got %q", s.Version)
	}
	if len(s.FunctionWords) != 2 {
		t.Errorf("Expected 2 function words, got %d", len(s.FunctionWords))
	}
	if s.Frazier.Sentence != 2 {
		t.Errorf("Expected sentence weight 2, got %v", s.Frazier.Sentence)
	}
	if s.Frazier.Phrase != 1 {
		t.Errorf("Unset phrase weight should keep default 1, got %v", s.Frazier.Phrase)
	}
	if s.Rounding.Ratio != 3 || s.Rounding.Readability != 4 {
		t.Errorf("Unexpected rounding %+v", s.Rounding)
	}
	if len(s.Disfluency.Pauses) == 0 {
		t.Error("Unset disfluency markers should keep defaults")
	}
}

func TestParseSettingsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty function words", "function_words: []\n"},
		{"negative weight", "frazier:\n  phrase: -1\n"},
		{"empty closed class", "pos:\n  closed: []\n"},
		{"negative rounding", "rounding:\n  average: -2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSettings([]byte(tt.yaml))
			if !errors.Is(err, splaterr.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestParseSettingsMalformed(t *testing.T) {
	if _, err := ParseSettings([]byte("version: [unterminated")); err == nil {
		t.Error("Should error on malformed YAML")
	}
}

func TestLoadSettingsMissing(t *testing.T) {
	if _, err := LoadSettings("/nonexistent/settings.yaml"); err == nil {
		t.Error("Should error on nonexistent settings file")
	}
}

func TestLoadWordList(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "function.yaml")

	content := `terms:
  - the
  - a
  - and
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	wl, err := LoadWordList(path)
	if err != nil {
		t.Fatalf("Failed to load word list: %v", err)
	}

	if len(wl.Terms) != 3 {
		t.Errorf("Expected 3 terms, got %d", len(wl.Terms))
	}

	expected := map[string]bool{"the": true, "a": true, "and": true}
	for _, term := range wl.Terms {
		if !expected[term] {
			t.Errorf("Unexpected term: %s", term)
		}
	}
}
