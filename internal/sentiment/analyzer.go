// Package sentiment scores audience text with two independent methods
// (lexicon polarity and binary classification), extracts recurring
// topics and attributes sentiment to them.
package sentiment

import (
	"fmt"
	"sort"
	"strings"

	"frameworks/api_insights/internal/nlp"
	"frameworks/api_insights/pkg/logging"
	"frameworks/api_insights/pkg/models"
)

// ClassifierInputLimit caps the text passed to the classifier backend.
// It mirrors the input window of transformer-style models; the lexicon
// method always reads the full text.
const ClassifierInputLimit = 512

// topTopicCount bounds topic extraction to the most mentioned phrases.
const topTopicCount = 10

// temporalDateFormat keys the per-date weight aggregation.
const temporalDateFormat = "2006-01-02"

// Backends are the text capabilities the analyzer runs on. The defaults
// are the deterministic heuristics from internal/nlp; any conforming
// implementation can be substituted.
type Backends struct {
	Scorer     nlp.PolarityScorer
	Classifier nlp.Classifier
	Splitter   nlp.SentenceSplitter
	Tokenizer  nlp.Tokenizer
	Tagger     nlp.Tagger
}

// Analyzer computes corpus sentiment over comment units.
type Analyzer struct {
	backends Backends
	logger   logging.Logger
}

// NewAnalyzer creates an analyzer on the default embedded-lexicon
// backends.
func NewAnalyzer(logger logging.Logger) (*Analyzer, error) {
	lexicon, err := nlp.LoadLexicon()
	if err != nil {
		return nil, fmt.Errorf("loading sentiment lexicon: %w", err)
	}
	stopwords, err := nlp.LoadStopwords()
	if err != nil {
		return nil, fmt.Errorf("loading stopwords: %w", err)
	}

	return NewAnalyzerWithBackends(Backends{
		Scorer:     nlp.NewLexiconScorer(lexicon),
		Classifier: nlp.NewLogOddsClassifier(lexicon),
		Splitter:   nlp.PunctSplitter{},
		Tokenizer:  nlp.WordTokenizer{},
		Tagger:     nlp.NewHeuristicTagger(lexicon, stopwords),
	}, logger), nil
}

// NewAnalyzerWithBackends creates an analyzer on caller-supplied
// backends.
func NewAnalyzerWithBackends(backends Backends, logger logging.Logger) *Analyzer {
	return &Analyzer{backends: backends, logger: logger}
}

// AnalyzeUnit scores one text with both methods. The lexicon method
// reads the full text; the classifier input is truncated to
// ClassifierInputLimit characters. The two readings are reported side
// by side, never averaged.
func (a *Analyzer) AnalyzeUnit(text string) models.UnitSentiment {
	polarity, subjectivity := a.backends.Scorer.Score(text)
	classification := a.backends.Classifier.Classify(truncate(text, ClassifierInputLimit))

	return models.UnitSentiment{
		Polarity:     polarity,
		Subjectivity: subjectivity,
		Label:        classification.Label,
		Confidence:   classification.Confidence,
	}
}

// Aggregate summarizes per-unit sentiment across a corpus. The
// positive percentage follows the classifier labels, not the lexicon
// polarity sign. An empty corpus yields zero means and an empty
// distribution.
func (a *Analyzer) Aggregate(units []models.CommentUnit) models.CorpusSentiment {
	result := models.CorpusSentiment{
		UnitCount:         len(units),
		LabelDistribution: make(map[string]int),
	}
	if len(units) == 0 {
		return result
	}

	var polaritySum, subjectivitySum float64
	positive := 0
	for i := range units {
		unit := a.AnalyzeUnit(units[i].Text)
		polaritySum += unit.Polarity
		subjectivitySum += unit.Subjectivity
		if unit.Label == nlp.LabelPositive {
			positive++
		}
		result.LabelDistribution[unit.Label]++
	}

	n := float64(len(units))
	result.AveragePolarity = polaritySum / n
	result.AverageSubjectivity = subjectivitySum / n
	result.PositivePercentage = float64(positive) / n * 100
	return result
}

// Topics extracts the most mentioned noun/adjective phrases across the
// corpus: consecutive noun- or adjective-tagged tokens in a sentence
// form one candidate phrase, flushed on any other tag or at sentence
// end.
func (a *Analyzer) Topics(units []models.CommentUnit) []models.Topic {
	counts := make(map[string]int)
	for i := range units {
		for _, sentence := range a.backends.Splitter.Split(units[i].Text) {
			tokens := a.backends.Tokenizer.Tokenize(strings.ToLower(sentence))
			tags := a.backends.Tagger.Tag(tokens)

			var group []string
			flush := func() {
				if len(group) > 0 {
					counts[strings.Join(group, " ")]++
					group = group[:0]
				}
			}
			for j, tag := range tags {
				if tag == nlp.TagNoun || tag == nlp.TagAdjective {
					group = append(group, tokens[j])
					continue
				}
				flush()
			}
			flush()
		}
	}

	topics := make([]models.Topic, 0, len(counts))
	for phrase, mentions := range counts {
		topics = append(topics, models.Topic{Phrase: phrase, Mentions: mentions})
	}
	// Mentions desc, then alphabetical so equal counts rank stably.
	sort.Slice(topics, func(i, j int) bool {
		if topics[i].Mentions != topics[j].Mentions {
			return topics[i].Mentions > topics[j].Mentions
		}
		return topics[i].Phrase < topics[j].Phrase
	})
	if len(topics) > topTopicCount {
		topics = topics[:topTopicCount]
	}
	return topics
}

// TopicSentiment attributes sentiment to topics: for each topic, the
// mean lexicon polarity over the units whose text contains the phrase
// case-insensitively. Topics matching no unit are omitted. The
// classifier labels play no part here.
func (a *Analyzer) TopicSentiment(units []models.CommentUnit, topics []models.Topic) []models.TopicSentiment {
	lowered := make([]string, len(units))
	for i := range units {
		lowered[i] = strings.ToLower(units[i].Text)
	}

	attributed := make([]models.TopicSentiment, 0, len(topics))
	for _, topic := range topics {
		phrase := strings.ToLower(topic.Phrase)
		var polaritySum float64
		matched := 0
		for i := range units {
			if !strings.Contains(lowered[i], phrase) {
				continue
			}
			polarity, _ := a.backends.Scorer.Score(units[i].Text)
			polaritySum += polarity
			matched++
		}
		if matched == 0 {
			continue
		}
		attributed = append(attributed, models.TopicSentiment{
			Phrase:   topic.Phrase,
			Mentions: topic.Mentions,
			Polarity: polaritySum / float64(matched),
		})
	}
	return attributed
}

// Temporal groups units by the UTC calendar date of their publish
// timestamp and reports the mean weight (likes) per date, ascending.
// Units without a timestamp are excluded from this view only.
func (a *Analyzer) Temporal(units []models.CommentUnit) []models.DateValue {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i := range units {
		published, ok := units[i].PublishedTime()
		if !ok {
			continue
		}
		date := published.UTC().Format(temporalDateFormat)
		if units[i].Likes != nil {
			sums[date] += float64(*units[i].Likes)
		}
		counts[date]++
	}

	result := make([]models.DateValue, 0, len(counts))
	for date, count := range counts {
		result = append(result, models.DateValue{Date: date, Value: sums[date] / float64(count)})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date < result[j].Date })
	return result
}

// Report runs the full corpus analysis: per-unit sentiment, the corpus
// aggregate, topic attribution over the top topics and the temporal
// view.
func (a *Analyzer) Report(units []models.CommentUnit) models.SentimentReport {
	perUnit := make([]models.UnitSentiment, len(units))
	for i := range units {
		perUnit[i] = a.AnalyzeUnit(units[i].Text)
	}

	report := models.SentimentReport{
		Overall:   a.Aggregate(units),
		KeyThemes: a.TopicSentiment(units, a.Topics(units)),
		Temporal:  a.Temporal(units),
		Units:     perUnit,
	}

	a.logger.WithFields(logging.Fields{
		"units":      len(units),
		"key_themes": len(report.KeyThemes),
		"positive":   report.Overall.PositivePercentage,
	}).Debug("Analyzed comment corpus")

	return report
}

// truncate cuts text to at most limit characters, not bytes.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
