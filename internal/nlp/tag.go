package nlp

import (
	"strings"
	"unicode"
)

// HeuristicTagger assigns coarse tags from three signals: the stopword
// list for closed-class words, lexicon tags for words whose shape says
// nothing, and common suffixes for the rest. Unknown open-class words
// default to noun, which is the right bias for topic extraction.
type HeuristicTagger struct {
	lexicon   *Lexicon
	stopwords map[string]bool
}

// NewHeuristicTagger creates a tagger over the loaded lexicon and
// stopword set.
func NewHeuristicTagger(lexicon *Lexicon, stopwords map[string]bool) *HeuristicTagger {
	return &HeuristicTagger{lexicon: lexicon, stopwords: stopwords}
}

// Tag implements Tagger.
func (t *HeuristicTagger) Tag(tokens []string) []Tag {
	tags := make([]Tag, len(tokens))
	for i, token := range tokens {
		tags[i] = t.tagWord(strings.ToLower(token))
	}
	return tags
}

func (t *HeuristicTagger) tagWord(word string) Tag {
	if word == "" || isNumeric(word) {
		return TagOther
	}
	if t.stopwords[word] {
		return TagOther
	}
	if entry, ok := t.lexicon.Entry(word); ok && entry.Tag != "" {
		return Tag(entry.Tag)
	}

	switch {
	case hasSuffix(word, "ly"):
		return TagOther
	case hasSuffix(word, "ing", "ed"):
		return TagVerb
	case hasSuffix(word, "tion", "sion", "ment", "ness", "ship", "ance", "ence", "ity"):
		return TagNoun
	case hasSuffix(word, "ous", "ful", "ive", "able", "ible", "ish", "less", "ical", "ic", "al"):
		return TagAdjective
	}
	return TagNoun
}

// hasSuffix requires at least two characters of stem so suffix-only
// words ("ing", "al") keep their default tag.
func hasSuffix(word string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if len(word) >= len(suffix)+2 && strings.HasSuffix(word, suffix) {
			return true
		}
	}
	return false
}

func isNumeric(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
