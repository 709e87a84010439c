package metrics

import (
	"fmt"
	"strings"

	"github.com/banglastudy/dataqc/internal/models"
	"github.com/banglastudy/dataqc/internal/textutil"
)

// extractiveCalculator measures how much of the answer is drawn from the
// source passage: 1.0 when the normalized answer is a substring of the
// normalized source, otherwise the fraction of distinct answer words that
// also appear in the source. Empty answer or source scores 0.0.
type extractiveCalculator struct{}

// NewExtractive creates the extractive-overlap calculator.
func NewExtractive() Calculator { return extractiveCalculator{} }

func (extractiveCalculator) Name() string { return NameExtractive }

func (c extractiveCalculator) Compute(rc *Context) models.MetricResult {
	return guard(NameExtractive, 0.0, func() models.MetricResult {
		answer := textutil.Normalize(rc.Answer)
		source := textutil.Normalize(rc.SourceText)

		if answer == "" || source == "" {
			return models.MetricResult{
				Name:     NameExtractive,
				Score:    0.0,
				Feedback: "no answer or source text to compare",
			}
		}

		if strings.Contains(source, answer) {
			return models.MetricResult{
				Name:     NameExtractive,
				Score:    1.0,
				Feedback: "answer is a verbatim extract of the source",
			}
		}

		answerWords := textutil.WordSet(answer)
		if len(answerWords) == 0 {
			return models.MetricResult{Name: NameExtractive, Score: 0.0, Feedback: "answer has no words"}
		}
		sourceWords := textutil.WordSet(source)
		overlap := textutil.Intersection(answerWords, sourceWords)
		score := float64(overlap) / float64(len(answerWords))

		return models.MetricResult{
			Name:     NameExtractive,
			Score:    score,
			Feedback: fmt.Sprintf("%d of %d answer words found in source", overlap, len(answerWords)),
			Details: map[string]any{
				"answer_words":      len(answerWords),
				"overlapping_words": overlap,
			},
		}
	})
}
