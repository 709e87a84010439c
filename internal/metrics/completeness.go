package metrics

import (
	"fmt"

	"github.com/banglastudy/dataqc/internal/models"
	"github.com/banglastudy/dataqc/internal/textutil"
)

// CompletenessArgs configures the content completeness calculator.
type CompletenessArgs struct {
	// Denominator normalizes the indicator count into a base score.
	Denominator int `mapstructure:"denominator"`
	// LengthBonusMax caps the length bonus.
	LengthBonusMax float64 `mapstructure:"length_bonus_max"`
	// LengthBonusWords is the word count at which the bonus reaches its cap.
	LengthBonusWords int `mapstructure:"length_bonus_words"`
}

// informativenessIndicators are terms whose presence suggests the answer
// actually carries usable admissions information.
var informativenessIndicators = []string{
	"fee", "cost", "tuition", "contact", "requirement", "document",
	"eligibility", "deadline", "email", "phone", "website", "scholarship",
}

// completenessCalculator scores answer informativeness: matched indicator
// terms normalized by a fixed denominator plus a linearly scaled length
// bonus, capped at 1.0.
type completenessCalculator struct {
	args CompletenessArgs
}

// NewCompleteness creates the content completeness calculator.
func NewCompleteness(args CompletenessArgs) Calculator { return completenessCalculator{args: args} }

func (completenessCalculator) Name() string { return NameCompleteness }

func (c completenessCalculator) Compute(rc *Context) models.MetricResult {
	return guard(NameCompleteness, 0.0, func() models.MetricResult {
		words := textutil.WordSet(rc.Answer)
		if len(words) == 0 {
			return models.MetricResult{Name: NameCompleteness, Score: 0.0, Feedback: "empty answer"}
		}

		matched := 0
		for _, ind := range informativenessIndicators {
			if _, ok := words[ind]; ok {
				matched++
			}
		}
		score := float64(matched) / float64(c.args.Denominator)

		wordCount := textutil.WordCount(rc.Answer)
		bonus := c.args.LengthBonusMax * float64(wordCount) / float64(c.args.LengthBonusWords)
		if bonus > c.args.LengthBonusMax {
			bonus = c.args.LengthBonusMax
		}
		score += bonus

		if score > 1.0 {
			score = 1.0
		}

		return models.MetricResult{
			Name:     NameCompleteness,
			Score:    score,
			Feedback: fmt.Sprintf("%d informativeness indicators, %d words", matched, wordCount),
			Details:  map[string]any{"indicators_matched": matched, "word_count": wordCount},
		}
	})
}
