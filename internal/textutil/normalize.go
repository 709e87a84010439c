// Package textutil provides the text normalization and tokenization helpers
// shared by the metric calculators. All functions are pure and total: any
// string input (including empty and non-ASCII/Bengali text) is accepted.
package textutil

import (
	"strings"
	"unicode"
)

// Normalize lowercases text, replaces every run of non-letter/non-digit
// characters with a single space, and trims. Empty input yields "".
// Combining marks count as word characters: Bengali vowel signs and the
// virama are category M, and dropping them would shred every Bengali word.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	lastSpace := true
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.M, r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if !lastSpace {
			b.WriteByte(' ')
			lastSpace = true
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Tokens splits text into normalized words.
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}

// WordSet returns the set of distinct normalized words in text.
func WordSet(text string) map[string]struct{} {
	set := map[string]struct{}{}
	for _, w := range Tokens(text) {
		set[w] = struct{}{}
	}
	return set
}

// Intersection counts words present in both sets.
func Intersection(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for w := range a {
		if _, ok := b[w]; ok {
			n++
		}
	}
	return n
}

// Jaccard computes |a ∩ b| / |a ∪ b|. Two empty sets are identical (1.0);
// one empty set against a non-empty one yields 0.0.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	inter := Intersection(a, b)
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

// WordCount returns the number of whitespace-separated words in raw text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
