package metrics

import (
	"fmt"
	"strings"

	"github.com/banglastudy/dataqc/internal/models"
	"github.com/banglastudy/dataqc/internal/patterns"
)

// hallucinationCalculator flags speculative-language markers ("i think",
// "might be", ...) in either the question or the answer. A clean pair scores
// 1.0; any flag drops the score to 0.0 and the matched markers are listed in
// Details["flags"]. The admission gate treats any flag as critical.
type hallucinationCalculator struct{}

// NewHallucination creates the speculative-language detector.
func NewHallucination() Calculator { return hallucinationCalculator{} }

func (hallucinationCalculator) Name() string { return NameHallucination }

func (c hallucinationCalculator) Compute(rc *Context) models.MetricResult {
	return guard(NameHallucination, 1.0, func() models.MetricResult {
		flags := patterns.HallucinationFlags(rc.Question)
		for _, f := range patterns.HallucinationFlags(rc.Answer) {
			if !containsString(flags, f) {
				flags = append(flags, f)
			}
		}

		if len(flags) == 0 {
			return models.MetricResult{
				Name:     NameHallucination,
				Score:    1.0,
				Feedback: "no speculative-language markers found",
			}
		}

		return models.MetricResult{
			Name:     NameHallucination,
			Score:    0.0,
			Feedback: fmt.Sprintf("speculative language found: %s", strings.Join(flags, ", ")),
			Details:  map[string]any{"flags": flags},
		}
	})
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
