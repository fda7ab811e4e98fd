// Package keywords extracts ranked keywords from free text and tag
// suggestions from sets of content documents.
package keywords

import (
	"fmt"
	"sort"
	"strings"

	"frameworks/api_insights/internal/nlp"
	"frameworks/api_insights/pkg/logging"
	"frameworks/api_insights/pkg/models"
)

const (
	// DefaultLimit caps extraction when the caller does not ask for a
	// specific count.
	DefaultLimit = 15

	// minTokenLength drops tokens too short to carry meaning.
	minTokenLength = 3
)

// suggestionLimit caps each ranked list in tag suggestions.
const suggestionLimit = 10

// Extractor ranks keywords by frequency after stopword filtering.
type Extractor struct {
	stopwords map[string]bool
	logger    logging.Logger
}

// NewExtractor creates an extractor over the embedded stopword list.
func NewExtractor(logger logging.Logger) (*Extractor, error) {
	stopwords, err := nlp.LoadStopwords()
	if err != nil {
		return nil, fmt.Errorf("loading stopwords: %w", err)
	}
	return &Extractor{stopwords: stopwords, logger: logger}, nil
}

// Extract returns up to limit keywords from the text, most frequent
// first. Tokens are lowercased; stopwords and tokens shorter than three
// characters are dropped. A non-positive limit means DefaultLimit.
func (e *Extractor) Extract(text string, limit int) []models.KeywordCount {
	if limit <= 0 {
		limit = DefaultLimit
	}
	ranked := e.rank(e.count(text), limit)

	e.logger.WithFields(logging.Fields{
		"keywords": len(ranked),
		"limit":    limit,
	}).Debug("Extracted keywords")

	return ranked
}

// TagSuggestions aggregates word usage across a document set: the most
// common title words, description words and tags, each as a ranked
// list.
func (e *Extractor) TagSuggestions(documents []models.ContentDocument) models.TagSuggestions {
	titleCounts := make(map[string]int)
	descriptionCounts := make(map[string]int)
	tagCounts := make(map[string]int)

	for i := range documents {
		e.countInto(titleCounts, documents[i].Title)
		e.countInto(descriptionCounts, documents[i].Description)
		for _, tag := range documents[i].Tags {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag != "" {
				tagCounts[tag]++
			}
		}
	}

	return models.TagSuggestions{
		TitleWords:       e.rank(titleCounts, suggestionLimit),
		DescriptionWords: e.rank(descriptionCounts, suggestionLimit),
		Tags:             e.rank(tagCounts, suggestionLimit),
	}
}

func (e *Extractor) count(text string) map[string]int {
	counts := make(map[string]int)
	e.countInto(counts, text)
	return counts
}

func (e *Extractor) countInto(counts map[string]int, text string) {
	for _, token := range nlp.Tokenize(strings.ToLower(text)) {
		if len(token) < minTokenLength || e.stopwords[token] {
			continue
		}
		counts[token]++
	}
}

// rank orders counted words by count, descending, then alphabetically
// so equal counts rank stably.
func (e *Extractor) rank(counts map[string]int, limit int) []models.KeywordCount {
	ranked := make([]models.KeywordCount, 0, len(counts))
	for keyword, count := range counts {
		ranked = append(ranked, models.KeywordCount{Keyword: keyword, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Keyword < ranked[j].Keyword
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
