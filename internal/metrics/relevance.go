package metrics

import (
	"fmt"

	"github.com/banglastudy/dataqc/internal/models"
	"github.com/banglastudy/dataqc/internal/textutil"
)

// relevanceCalculator measures question/answer topical overlap:
// |Q ∩ A| / min(|Q|, |A|) over normalized word sets. Either side being empty
// scores 0.0.
type relevanceCalculator struct{}

// NewRelevance creates the question/answer word-overlap calculator.
func NewRelevance() Calculator { return relevanceCalculator{} }

func (relevanceCalculator) Name() string { return NameRelevance }

func (c relevanceCalculator) Compute(rc *Context) models.MetricResult {
	return guard(NameRelevance, 0.0, func() models.MetricResult {
		qWords := textutil.WordSet(rc.Question)
		aWords := textutil.WordSet(rc.Answer)

		if len(qWords) == 0 || len(aWords) == 0 {
			return models.MetricResult{
				Name:     NameRelevance,
				Score:    0.0,
				Feedback: "question or answer has no words",
			}
		}

		overlap := textutil.Intersection(qWords, aWords)
		smaller := len(qWords)
		if len(aWords) < smaller {
			smaller = len(aWords)
		}
		score := float64(overlap) / float64(smaller)

		return models.MetricResult{
			Name:     NameRelevance,
			Score:    score,
			Feedback: fmt.Sprintf("%d shared words (smaller side has %d)", overlap, smaller),
		}
	})
}
