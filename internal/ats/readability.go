package ats

import (
	"math"
	"regexp"
	"strings"
)

// defaultReadability is returned when the text has no sentences or no words.
const defaultReadability = 50

var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// Readability approximates the Flesch Reading Ease of text, clamped to [0, 100].
func Readability(text string) int {
	sentences := 0
	for _, s := range sentenceBreak.Split(text, -1) {
		if s != "" {
			sentences++
		}
	}
	words := strings.Fields(text)
	if sentences == 0 || len(words) == 0 {
		return defaultReadability
	}

	syllables := 0
	for _, w := range words {
		syllables += CountSyllables(w)
	}

	wordsPerSentence := float64(len(words)) / float64(sentences)
	syllablesPerWord := float64(syllables) / float64(len(words))
	score := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	return int(math.Round(clamp(score, 0, 100)))
}

// CountSyllables counts vowel groups (a, e, i, o, u, y), drops one for a trailing
// silent "e" and never returns less than 1.
func CountSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(word, "e") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
