package complexity

import (
	"strings"
	"unicode"
)

// Syllables estimates the syllables in word by counting vowel groups, less a
// silent final "e". Any word with a letter has at least one syllable.
func Syllables(word string) int {
	word = strings.ToLower(word)
	letters := make([]rune, 0, len(word))
	for _, r := range word {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return 0
	}

	count := 0
	inGroup := false
	for _, r := range letters {
		v := isVowel(r)
		if v && !inGroup {
			count++
		}
		inGroup = v
	}

	n := len(letters)
	if count > 1 && letters[n-1] == 'e' && !isVowel(letters[n-2]) {
		silent := !(n >= 3 && letters[n-2] == 'l' && !isVowel(letters[n-3]))
		if silent {
			count--
		}
	}
	if count == 0 {
		count = 1
	}
	return count
}

// CountSyllables sums Syllables over tokens.
func CountSyllables(tokens []string) int {
	total := 0
	for _, t := range tokens {
		total += Syllables(t)
	}
	return total
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
