// Package nlp provides the text capabilities shared by the analyzers:
// tokenization, sentence segmentation, syllable counting, part-of-speech
// tagging, polarity scoring and binary classification. The default
// backends are deterministic heuristics over an embedded lexicon so the
// engine stays pure; the interfaces allow heavier model-backed
// replacements without touching the analyzers.
package nlp

// Tag is a coarse part-of-speech class.
type Tag string

const (
	TagNoun      Tag = "noun"
	TagAdjective Tag = "adj"
	TagVerb      Tag = "verb"
	TagOther     Tag = "other"
)

// Classifier labels for binary sentiment classification.
const (
	LabelPositive = "POSITIVE"
	LabelNegative = "NEGATIVE"
)

// Tokenizer splits text into word tokens.
type Tokenizer interface {
	Tokenize(text string) []string
}

// SentenceSplitter segments text into sentences.
type SentenceSplitter interface {
	Split(text string) []string
}

// Tagger assigns a part-of-speech tag to each token.
type Tagger interface {
	Tag(tokens []string) []Tag
}

// PolarityScorer scores text on the lexicon method: polarity in [-1,1]
// and subjectivity in [0,1].
type PolarityScorer interface {
	Score(text string) (polarity, subjectivity float64)
}

// Classification is a binary label with its confidence.
type Classification struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Classifier labels text independently of the polarity method.
type Classifier interface {
	Classify(text string) Classification
}
