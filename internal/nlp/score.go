package nlp

import (
	"math"
	"strings"
)

// NegationDamping is the multiplier applied to a scored word's polarity
// when the token before it is a negation ("not good" reads mildly
// negative, not the mirror of "good").
const NegationDamping = -0.5

// LexiconScorer scores text by averaging the lexicon values of matched
// tokens. Unmatched text scores neutral (0, 0).
type LexiconScorer struct {
	lexicon *Lexicon
}

// NewLexiconScorer creates a scorer over a loaded lexicon.
func NewLexiconScorer(lexicon *Lexicon) *LexiconScorer {
	return &LexiconScorer{lexicon: lexicon}
}

// Score implements PolarityScorer.
func (s *LexiconScorer) Score(text string) (float64, float64) {
	tokens := Tokenize(strings.ToLower(text))

	var polaritySum, subjectivitySum float64
	matched := 0
	for i, token := range tokens {
		entry, ok := s.lexicon.Entry(token)
		if !ok {
			continue
		}
		polarity := entry.Polarity
		if i > 0 && s.lexicon.IsNegation(tokens[i-1]) {
			polarity *= NegationDamping
		}
		polaritySum += polarity
		subjectivitySum += entry.Subjectivity
		matched++
	}
	if matched == 0 {
		return 0, 0
	}

	n := float64(matched)
	return clamp(polaritySum/n, -1, 1), clamp(subjectivitySum/n, 0, 1)
}

// LogOddsClassifier labels text by summing signed lexicon weights and
// squashing the total through a logistic curve. It shares the word list
// with LexiconScorer but not the scoring rule: evidence accumulates
// instead of averaging, and negation flips a word outright.
type LogOddsClassifier struct {
	lexicon *Lexicon
}

// NewLogOddsClassifier creates a classifier over a loaded lexicon.
func NewLogOddsClassifier(lexicon *Lexicon) *LogOddsClassifier {
	return &LogOddsClassifier{lexicon: lexicon}
}

// Classify implements Classifier.
func (c *LogOddsClassifier) Classify(text string) Classification {
	tokens := Tokenize(strings.ToLower(text))

	var score float64
	for i, token := range tokens {
		entry, ok := c.lexicon.Entry(token)
		if !ok {
			continue
		}
		weight := entry.Polarity
		if i > 0 && c.lexicon.IsNegation(tokens[i-1]) {
			weight = -weight
		}
		score += weight
	}

	label := LabelPositive
	if score < 0 {
		label = LabelNegative
	}
	confidence := 1 / (1 + math.Exp(-math.Abs(score)))
	return Classification{Label: label, Confidence: confidence}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
