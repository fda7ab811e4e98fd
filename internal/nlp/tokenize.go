package nlp

import (
	"strings"
	"unicode"
)

// syllableVowels are the characters treated as vowels by the syllable
// heuristic.
const syllableVowels = "aeiouy"

// Tokenize splits text into maximal runs of word characters (letters,
// digits, underscore). Case is preserved; callers that need
// case-insensitive counts lower the text first.
func Tokenize(text string) []string {
	var tokens []string
	start := -1
	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			tokens = append(tokens, text[start:i])
			start = -1
		}
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// SplitSentences segments text on runs of '.', '!' and '?'. Segments
// without any word character are dropped.
func SplitSentences(text string) []string {
	var sentences []string
	appendSegment := func(seg string) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			return
		}
		for _, r := range seg {
			if isWordRune(r) {
				sentences = append(sentences, seg)
				return
			}
		}
	}

	start := 0
	for i, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if start < i {
				appendSegment(text[start:i])
			}
			start = i + len(string(r))
		}
	}
	if start < len(text) {
		appendSegment(text[start:])
	}
	return sentences
}

// Syllables estimates the syllable count of a single word: the number
// of maximal vowel runs, minus one for a trailing 'e', with a floor of
// one. The empty string counts zero.
func Syllables(word string) int {
	word = strings.ToLower(word)
	if word == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := strings.ContainsRune(syllableVowels, r)
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

// WordTokenizer is the default Tokenizer backed by Tokenize.
type WordTokenizer struct{}

// Tokenize implements Tokenizer.
func (WordTokenizer) Tokenize(text string) []string {
	return Tokenize(text)
}

// PunctSplitter is the default SentenceSplitter backed by SplitSentences.
type PunctSplitter struct{}

// Split implements SentenceSplitter.
func (PunctSplitter) Split(text string) []string {
	return SplitSentences(text)
}
