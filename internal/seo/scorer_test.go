package seo

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frameworks/api_insights/pkg/logging"
	"frameworks/api_insights/pkg/models"
)

func newTestScorer() *Scorer {
	return NewScorer(logging.NewNopLogger())
}

func TestKeywordDensity(t *testing.T) {
	scorer := newTestScorer()

	t.Run("percentages of token total", func(t *testing.T) {
		density := scorer.KeywordDensity("go go go gopher")
		require.Len(t, density, 2)
		assert.InDelta(t, 75.0, density["go"], 1e-9)
		assert.InDelta(t, 25.0, density["gopher"], 1e-9)
	})

	t.Run("case folds", func(t *testing.T) {
		density := scorer.KeywordDensity("Video VIDEO video")
		require.Len(t, density, 1)
		assert.InDelta(t, 100.0, density["video"], 1e-9)
	})

	t.Run("caps at top ten", func(t *testing.T) {
		var words []string
		for i := 0; i < 15; i++ {
			words = append(words, fmt.Sprintf("word%d", i))
		}
		density := scorer.KeywordDensity(strings.Join(words, " "))
		assert.Len(t, density, 10)
	})

	t.Run("empty text", func(t *testing.T) {
		assert.Empty(t, scorer.KeywordDensity(""))
	})
}

func TestReadability(t *testing.T) {
	scorer := newTestScorer()

	t.Run("empty text scores zero", func(t *testing.T) {
		assert.Zero(t, scorer.Readability(""))
	})

	t.Run("punctuation only scores zero", func(t *testing.T) {
		assert.Zero(t, scorer.Readability("!!! ???"))
	})

	t.Run("simple text clamps to 100", func(t *testing.T) {
		assert.InDelta(t, 100.0, scorer.Readability("The cat sat."), 1e-9)
	})

	t.Run("dense text clamps to 0", func(t *testing.T) {
		assert.Zero(t, scorer.Readability("Readability analysis requires careful calibration."))
	})

	t.Run("mid-range value", func(t *testing.T) {
		text := "Creators publish weekly videos. Audiences respond with comments. Analytics measure the outcome."
		assert.InDelta(t, 26.525, scorer.Readability(text), 1e-3)
	})
}

func TestScoreTitleCheck(t *testing.T) {
	scorer := newTestScorer()

	t.Run("short title", func(t *testing.T) {
		result := scorer.Score(models.ContentDocument{Title: "AI"})
		assert.Contains(t, result.Recommendations, recTitleShort)
		assert.Zero(t, result.SEOScore)
	})

	t.Run("in-range title awards points", func(t *testing.T) {
		result := scorer.Score(models.ContentDocument{Title: "Understanding Machine Learning Fundamentals"})
		assert.NotContains(t, result.Recommendations, recTitleShort)
		assert.NotContains(t, result.Recommendations, recTitleLong)
		assert.InDelta(t, checkAward, result.SEOScore, 1e-9)
	})

	t.Run("long title", func(t *testing.T) {
		result := scorer.Score(models.ContentDocument{Title: strings.Repeat("x", 61)})
		assert.Contains(t, result.Recommendations, recTitleLong)
	})

	t.Run("missing title skips the check", func(t *testing.T) {
		result := scorer.Score(models.ContentDocument{})
		assert.Zero(t, result.SEOScore)
		assert.Empty(t, result.Recommendations)
	})
}

func TestScoreDescriptionCheck(t *testing.T) {
	scorer := newTestScorer()

	t.Run("short description", func(t *testing.T) {
		result := scorer.Score(models.ContentDocument{Description: "too short"})
		assert.Contains(t, result.Recommendations, recDescriptionShort)
	})

	t.Run("long description", func(t *testing.T) {
		result := scorer.Score(models.ContentDocument{Description: strings.Repeat("y", 5001)})
		assert.Contains(t, result.Recommendations, recDescriptionLong)
	})
}

func TestScoreTagCheck(t *testing.T) {
	scorer := newTestScorer()

	t.Run("enough tags award points", func(t *testing.T) {
		result := scorer.Score(models.ContentDocument{Tags: []string{"a", "b", "c", "d", "e"}})
		assert.InDelta(t, checkAward, result.SEOScore, 1e-9)
		assert.Empty(t, result.Recommendations)
	})

	t.Run("too few tags", func(t *testing.T) {
		result := scorer.Score(models.ContentDocument{Tags: []string{"a", "b"}})
		assert.Contains(t, result.Recommendations, recTagsFew)
		assert.Zero(t, result.SEOScore)
	})

	t.Run("no tags skips the check", func(t *testing.T) {
		result := scorer.Score(models.ContentDocument{})
		assert.NotContains(t, result.Recommendations, recTagsFew)
	})
}

func TestScoreDensityCheck(t *testing.T) {
	scorer := newTestScorer()

	t.Run("stuffed keyword", func(t *testing.T) {
		result := scorer.Score(models.ContentDocument{Description: strings.Repeat("buzzword ", 40)})
		assert.Contains(t, result.Recommendations, recKeywordStuffing)
	})

	t.Run("exactly five percent passes", func(t *testing.T) {
		// One token twice in 40 -> top density exactly 5%.
		var words []string
		for i := 0; i < 40; i++ {
			words = append(words, fmt.Sprintf("w%d", i))
		}
		words[39] = "w0"
		result := scorer.Score(models.ContentDocument{Description: strings.Join(words, " ")})
		assert.NotContains(t, result.Recommendations, recKeywordStuffing)
		assert.NotContains(t, result.Recommendations, recKeywordLow)
	})

	t.Run("exactly half a percent passes", func(t *testing.T) {
		var words []string
		for i := 0; i < 200; i++ {
			words = append(words, fmt.Sprintf("w%d", i))
		}
		result := scorer.Score(models.ContentDocument{Description: strings.Join(words, " ")})
		assert.NotContains(t, result.Recommendations, recKeywordLow)
		assert.NotContains(t, result.Recommendations, recKeywordStuffing)
	})

	t.Run("below half a percent", func(t *testing.T) {
		var words []string
		for i := 0; i < 250; i++ {
			words = append(words, fmt.Sprintf("w%d", i))
		}
		result := scorer.Score(models.ContentDocument{Description: strings.Join(words, " ")})
		assert.Contains(t, result.Recommendations, recKeywordLow)
	})
}

func TestScoreFullHouse(t *testing.T) {
	doc := models.ContentDocument{
		Title: "A Complete Guide to Building Modern Web Applications",
		Description: "This tutorial covers planning, designing, and shipping production services " +
			"with routing, storage, caching, deployment plus monitoring advice for beginners " +
			"seeking practical examples that scale smoothly under heavy traffic loads. " +
			"It is easy to follow.",
		Tags: []string{"tutorial", "web", "golang", "backend", "devops"},
	}

	result := newTestScorer().Score(doc)
	assert.InDelta(t, 100.0, result.SEOScore, 1e-9)
	assert.Empty(t, result.Recommendations)
	assert.NotEmpty(t, result.KeywordDensity)
	assert.Greater(t, result.Readability, 0.0)
}

func TestScoreCombinesAllTextFields(t *testing.T) {
	scorer := newTestScorer()

	t.Run("body feeds keyword density", func(t *testing.T) {
		result := scorer.Score(models.ContentDocument{
			Title: "Understanding Machine Learning Fundamentals",
			Body:  strings.Repeat("buzzword ", 500),
		})
		assert.Contains(t, result.KeywordDensity, "buzzword")
		assert.Contains(t, result.Recommendations, recKeywordStuffing)
	})

	t.Run("body feeds readability", func(t *testing.T) {
		result := scorer.Score(models.ContentDocument{Body: "The cat sat. The dog ran."})
		assert.Greater(t, result.Readability, 0.0)
	})
}

func TestScoreIdempotent(t *testing.T) {
	scorer := newTestScorer()
	doc := models.ContentDocument{Title: "Some Title For Scoring Purposes Here", Tags: []string{"one"}}

	first := scorer.Score(doc)
	second := scorer.Score(doc)
	assert.Equal(t, first, second)
}
