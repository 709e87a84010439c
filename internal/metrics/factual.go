package metrics

import (
	"fmt"

	"github.com/banglastudy/dataqc/internal/models"
	"github.com/banglastudy/dataqc/internal/patterns"
)

// FactualArgs configures the factual accuracy calculator.
type FactualArgs struct {
	// NoClaimDefault is returned when the answer makes no checkable factual
	// claims — nothing to contradict.
	NoClaimDefault float64 `mapstructure:"no_claim_default"`
}

// factualCalculator extracts checkable factual tokens (currency amounts,
// percentages, years, GPA figures) from answer and source and returns the
// fraction of answer claims that match a source claim exactly.
type factualCalculator struct {
	args FactualArgs
}

// NewFactual creates the factual accuracy calculator.
func NewFactual(args FactualArgs) Calculator { return factualCalculator{args: args} }

func (factualCalculator) Name() string { return NameFactual }

func (c factualCalculator) Compute(rc *Context) models.MetricResult {
	return guard(NameFactual, c.args.NoClaimDefault, func() models.MetricResult {
		answerTokens := patterns.FactualTokens(rc.Answer)
		if len(answerTokens) == 0 {
			return models.MetricResult{
				Name:     NameFactual,
				Score:    c.args.NoClaimDefault,
				Feedback: "answer makes no checkable factual claims",
			}
		}

		sourceSet := map[string]struct{}{}
		for _, tok := range patterns.FactualTokens(rc.SourceText) {
			sourceSet[tok] = struct{}{}
		}

		matched := 0
		var unmatched []string
		for _, tok := range answerTokens {
			if _, ok := sourceSet[tok]; ok {
				matched++
			} else {
				unmatched = append(unmatched, tok)
			}
		}
		score := float64(matched) / float64(len(answerTokens))

		return models.MetricResult{
			Name:     NameFactual,
			Score:    score,
			Feedback: fmt.Sprintf("%d of %d factual claims verified against source", matched, len(answerTokens)),
			Details: map[string]any{
				"answer_claims":    answerTokens,
				"unmatched_claims": unmatched,
			},
		}
	})
}
