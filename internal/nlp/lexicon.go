package nlp

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/lexicon.yaml
var lexiconYAML []byte

//go:embed data/stopwords.yaml
var stopwordsYAML []byte

// Entry is one scored lexicon word. Polarity is in [-1,1], subjectivity
// in [0,1]. Tag marks words whose part of speech the tagger cannot
// derive from shape alone (mostly adjectives).
type Entry struct {
	Polarity     float64 `yaml:"polarity"`
	Subjectivity float64 `yaml:"subjectivity"`
	Tag          string  `yaml:"tag,omitempty"`
}

// Lexicon is the embedded sentiment word list plus negation markers.
type Lexicon struct {
	Entries   map[string]Entry `yaml:"entries"`
	Negations []string         `yaml:"negations"`

	negated map[string]bool
}

// LoadLexicon parses and checks the embedded lexicon.
func LoadLexicon() (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(lexiconYAML, &lex); err != nil {
		return nil, fmt.Errorf("parsing embedded lexicon: %w", err)
	}
	if len(lex.Entries) == 0 {
		return nil, fmt.Errorf("embedded lexicon has no entries")
	}
	for word, entry := range lex.Entries {
		if entry.Polarity < -1 || entry.Polarity > 1 {
			return nil, fmt.Errorf("lexicon entry %q polarity %v out of range", word, entry.Polarity)
		}
		if entry.Subjectivity < 0 || entry.Subjectivity > 1 {
			return nil, fmt.Errorf("lexicon entry %q subjectivity %v out of range", word, entry.Subjectivity)
		}
	}
	lex.negated = make(map[string]bool, len(lex.Negations))
	for _, word := range lex.Negations {
		lex.negated[strings.ToLower(word)] = true
	}
	return &lex, nil
}

// Entry looks up a lowercased word.
func (l *Lexicon) Entry(word string) (Entry, bool) {
	entry, ok := l.Entries[word]
	return entry, ok
}

// IsNegation reports whether a lowercased word flips the polarity of
// the word after it.
func (l *Lexicon) IsNegation(word string) bool {
	return l.negated[word]
}

// LoadStopwords parses the embedded stopword list into a lookup set.
func LoadStopwords() (map[string]bool, error) {
	var doc struct {
		Words []string `yaml:"words"`
	}
	if err := yaml.Unmarshal(stopwordsYAML, &doc); err != nil {
		return nil, fmt.Errorf("parsing embedded stopwords: %w", err)
	}
	if len(doc.Words) == 0 {
		return nil, fmt.Errorf("embedded stopword list is empty")
	}
	set := make(map[string]bool, len(doc.Words))
	for _, word := range doc.Words {
		set[strings.ToLower(word)] = true
	}
	return set, nil
}
