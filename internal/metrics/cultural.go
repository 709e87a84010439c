package metrics

import (
	"fmt"

	"github.com/banglastudy/dataqc/internal/models"
	"github.com/banglastudy/dataqc/internal/patterns"
)

// CulturalArgs configures the cultural sensitivity calculator.
type CulturalArgs struct {
	// MentionBonus is added when the pair explicitly names Bangladesh.
	MentionBonus float64 `mapstructure:"mention_bonus"`
	// TermBonus is added per distinct Bengali lexicon label matched.
	TermBonus float64 `mapstructure:"term_bonus"`
}

// culturalCalculator scores how anchored the pair is in the Bangladeshi
// student context. The score starts at a 0.5 baseline and increases with each
// distinct category of cultural indicator matched, capped at 1.0, so the
// score is monotonically non-decreasing in matched indicator categories.
type culturalCalculator struct {
	args CulturalArgs
}

// NewCultural creates the cultural sensitivity calculator.
func NewCultural(args CulturalArgs) Calculator { return culturalCalculator{args: args} }

func (culturalCalculator) Name() string { return NameCultural }

const culturalBaseline = 0.5

func (c culturalCalculator) Compute(rc *Context) models.MetricResult {
	return guard(NameCultural, culturalBaseline, func() models.MetricResult {
		combined := rc.Question + " " + rc.Answer

		score := culturalBaseline
		var indicators []string

		if patterns.MentionsBangladesh(combined) {
			score += c.args.MentionBonus
			indicators = append(indicators, "bangladesh_mention")
		}
		for _, label := range patterns.BengaliTerms(combined) {
			score += c.args.TermBonus
			indicators = append(indicators, "bengali:"+label)
		}
		if terms := patterns.EducationTerms(combined); len(terms) > 0 {
			// one bonus for the qualification-terminology category, however
			// many terms appear
			score += c.args.TermBonus
			indicators = append(indicators, "education_terms")
		}

		if score > 1.0 {
			score = 1.0
		}

		return models.MetricResult{
			Name:     NameCultural,
			Score:    score,
			Feedback: fmt.Sprintf("%d cultural indicator categories matched", len(indicators)),
			Details:  map[string]any{"indicators": indicators},
		}
	})
}
