package metrics

import (
	"fmt"

	"github.com/banglastudy/dataqc/internal/models"
	"github.com/banglastudy/dataqc/internal/patterns"
)

// GradesArgs configures the grade sanity calculator.
type GradesArgs struct {
	// Penalty is subtracted per out-of-scale grade claim.
	Penalty float64 `mapstructure:"penalty"`
}

// gradesCalculator is the domain-specific numeric sanity check: an answer
// claiming "SSC 5.8" or "Bachelor CGPA 4.6" exceeds the real grading scale
// (SSC/HSC max 5.0, Diploma/Bachelor CGPA max 4.0) and is penalized per
// violation, starting from 1.0 and floored at 0.0. Text with no grade claims
// scores 1.0.
type gradesCalculator struct {
	args GradesArgs
}

// NewGrades creates the grade scale sanity calculator.
func NewGrades(args GradesArgs) Calculator { return gradesCalculator{args: args} }

func (gradesCalculator) Name() string { return NameGrades }

func (c gradesCalculator) Compute(rc *Context) models.MetricResult {
	return guard(NameGrades, 1.0, func() models.MetricResult {
		claims := patterns.GradeClaims(rc.Question + " " + rc.Answer)

		score := 1.0
		var violations []string
		for _, claim := range claims {
			if claim.Max > 0 && claim.Value > claim.Max {
				score -= c.args.Penalty
				violations = append(violations,
					fmt.Sprintf("%s %.2f exceeds scale max %.1f", claim.Qualification, claim.Value, claim.Max))
			}
		}
		if score < 0.0 {
			score = 0.0
		}

		feedback := fmt.Sprintf("%d grade claims, all within scale", len(claims))
		if len(violations) > 0 {
			feedback = fmt.Sprintf("%d of %d grade claims out of scale", len(violations), len(claims))
		}

		res := models.MetricResult{
			Name:     NameGrades,
			Score:    score,
			Feedback: feedback,
		}
		if len(violations) > 0 {
			res.Details = map[string]any{"violations": violations}
		}
		return res
	})
}
