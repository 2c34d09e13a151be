package complexity

import (
	"fmt"
	"math"

	"github.com/cognicore/splat/pkg/splat/splaterr"
)

// Flesch returns the Flesch reading-ease score:
// 206.835 - 1.015*(words/sentences) - 84.6*(syllables/words).
func Flesch(words, sentences, syllables int) (float64, error) {
	wps, spw, err := rates(words, sentences, syllables)
	if err != nil {
		return 0, fmt.Errorf("flesch: %w", err)
	}
	return 206.835 - 1.015*wps - 84.6*spw, nil
}

// FleschKincaid returns the Flesch-Kincaid grade level:
// 0.39*(words/sentences) + 11.8*(syllables/words) - 15.59.
func FleschKincaid(words, sentences, syllables int) (float64, error) {
	wps, spw, err := rates(words, sentences, syllables)
	if err != nil {
		return 0, fmt.Errorf("flesch-kincaid: %w", err)
	}
	return 0.39*wps + 11.8*spw - 15.59, nil
}

func rates(words, sentences, syllables int) (float64, float64, error) {
	if words <= 0 || sentences <= 0 {
		return 0, 0, splaterr.ErrDivisionUndefined
	}
	return float64(words) / float64(sentences), float64(syllables) / float64(words), nil
}

// Round rounds x to the given number of decimal places.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
