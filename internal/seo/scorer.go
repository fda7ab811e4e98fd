// Package seo scores content documents: keyword density, Flesch reading
// ease and a 100-point audit over title, description and tags.
package seo

import (
	"sort"
	"strings"
	"unicode/utf8"

	"frameworks/api_insights/internal/nlp"
	"frameworks/api_insights/pkg/logging"
	"frameworks/api_insights/pkg/models"
)

// Flesch reading ease coefficients.
const (
	fleschBase           = 206.835
	fleschSentenceWeight = 1.015
	fleschSyllableWeight = 84.6
)

// Audit thresholds. Each passing check awards a quarter of the score;
// absent fields skip their check entirely.
const (
	checkAward          = 25.0
	titleMinChars       = 30
	titleMaxChars       = 60
	descriptionMinChars = 100
	descriptionMaxChars = 5000
	minTagCount         = 5
	densityLowPct       = 0.5
	densityStuffedPct   = 5.0
)

// topKeywordCount bounds the density report to the most frequent tokens.
const topKeywordCount = 10

// Audit recommendations are stable strings; callers match on them.
const (
	recTitleShort       = "Title is too short (< 30 characters)"
	recTitleLong        = "Title is too long (> 60 characters)"
	recDescriptionShort = "Description is too short (< 100 characters)"
	recDescriptionLong  = "Description is too long (> 5000 characters)"
	recTagsFew          = "Add more tags (minimum 5 recommended)"
	recKeywordStuffing  = "Keyword stuffing detected (density > 5%)"
	recKeywordLow       = "Main keyword usage is too low (< 0.5%)"
)

// Scorer audits content documents.
type Scorer struct {
	logger logging.Logger
}

// NewScorer creates a content scorer.
func NewScorer(logger logging.Logger) *Scorer {
	return &Scorer{logger: logger}
}

// Score runs the full audit for one document: density and readability
// over the combined title, description and long-form body, and the
// four-check point score.
func (s *Scorer) Score(doc models.ContentDocument) models.ContentScore {
	combined := strings.TrimSpace(strings.Join([]string{doc.Title, doc.Description, doc.Body}, " "))
	density := s.KeywordDensity(combined)

	score, recommendations := s.audit(doc, density)
	result := models.ContentScore{
		SEOScore:        score,
		Readability:     s.Readability(combined),
		KeywordDensity:  density,
		Recommendations: recommendations,
	}

	s.logger.WithFields(logging.Fields{
		"seo_score":       result.SEOScore,
		"readability":     result.Readability,
		"recommendations": len(result.Recommendations),
	}).Debug("Scored content document")

	return result
}

// KeywordDensity returns the top tokens of the lowercased text as
// percentages of the total token count. Empty text yields an empty map.
func (s *Scorer) KeywordDensity(text string) map[string]float64 {
	tokens := nlp.Tokenize(strings.ToLower(text))
	density := make(map[string]float64)
	if len(tokens) == 0 {
		return density
	}

	counts := make(map[string]int)
	for _, token := range tokens {
		counts[token]++
	}

	type wordCount struct {
		word  string
		count int
	}
	ranked := make([]wordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, wordCount{word, count})
	}
	// Count desc, then alphabetical so equal counts rank stably.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].word < ranked[j].word
	})

	limit := topKeywordCount
	if len(ranked) < limit {
		limit = len(ranked)
	}
	total := float64(len(tokens))
	for _, wc := range ranked[:limit] {
		density[wc.word] = float64(wc.count) / total * 100
	}
	return density
}

// Readability computes Flesch reading ease clamped to [0,100]. Text with
// no words or no sentences scores zero.
func (s *Scorer) Readability(text string) float64 {
	words := nlp.Tokenize(text)
	sentences := nlp.SplitSentences(text)
	if len(words) == 0 || len(sentences) == 0 {
		return 0
	}

	syllables := 0
	for _, word := range words {
		syllables += nlp.Syllables(word)
	}

	score := fleschBase -
		fleschSentenceWeight*(float64(len(words))/float64(len(sentences))) -
		fleschSyllableWeight*(float64(syllables)/float64(len(words)))

	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// audit applies the four independent checks and collects the
// recommendations for the failing ones.
func (s *Scorer) audit(doc models.ContentDocument, density map[string]float64) (float64, []string) {
	score := 0.0
	recommendations := []string{}

	if doc.Title != "" {
		length := utf8.RuneCountInString(doc.Title)
		switch {
		case length < titleMinChars:
			recommendations = append(recommendations, recTitleShort)
		case length > titleMaxChars:
			recommendations = append(recommendations, recTitleLong)
		default:
			score += checkAward
		}
	}

	if doc.Description != "" {
		length := utf8.RuneCountInString(doc.Description)
		switch {
		case length < descriptionMinChars:
			recommendations = append(recommendations, recDescriptionShort)
		case length > descriptionMaxChars:
			recommendations = append(recommendations, recDescriptionLong)
		default:
			score += checkAward
		}
	}

	if len(doc.Tags) > 0 {
		if len(doc.Tags) >= minTagCount {
			score += checkAward
		} else {
			recommendations = append(recommendations, recTagsFew)
		}
	}

	if top := topDensity(density); top > 0 {
		switch {
		case top > densityStuffedPct:
			recommendations = append(recommendations, recKeywordStuffing)
		case top < densityLowPct:
			recommendations = append(recommendations, recKeywordLow)
		default:
			score += checkAward
		}
	}

	return score, recommendations
}

func topDensity(density map[string]float64) float64 {
	top := 0.0
	for _, d := range density {
		if d > top {
			top = d
		}
	}
	return top
}
