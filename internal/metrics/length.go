package metrics

import (
	"fmt"

	"github.com/banglastudy/dataqc/internal/models"
	"github.com/banglastudy/dataqc/internal/textutil"
)

// LengthArgs configures the question/answer length bounds.
type LengthArgs struct {
	MinQuestionWords int `mapstructure:"min_question_words"`
	MinAnswerWords   int `mapstructure:"min_answer_words"`
	MaxAnswerWords   int `mapstructure:"max_answer_words"`
}

// lengthCalculator is a binary bounds check on question and answer word
// counts. Violations are critical at the gate — a three-word answer is not a
// training example worth keeping regardless of its other scores.
type lengthCalculator struct {
	args LengthArgs
}

// NewLength creates the length bounds calculator.
func NewLength(args LengthArgs) Calculator { return lengthCalculator{args: args} }

func (lengthCalculator) Name() string { return NameLength }

func (c lengthCalculator) Compute(rc *Context) models.MetricResult {
	return guard(NameLength, 0.0, func() models.MetricResult {
		qWords := textutil.WordCount(rc.Question)
		aWords := textutil.WordCount(rc.Answer)

		var violations []string
		if qWords < c.args.MinQuestionWords {
			violations = append(violations,
				fmt.Sprintf("question has %d words (min %d)", qWords, c.args.MinQuestionWords))
		}
		if aWords < c.args.MinAnswerWords {
			violations = append(violations,
				fmt.Sprintf("answer has %d words (min %d)", aWords, c.args.MinAnswerWords))
		}
		if c.args.MaxAnswerWords > 0 && aWords > c.args.MaxAnswerWords {
			violations = append(violations,
				fmt.Sprintf("answer has %d words (max %d)", aWords, c.args.MaxAnswerWords))
		}

		if len(violations) > 0 {
			return models.MetricResult{
				Name:     NameLength,
				Score:    0.0,
				Feedback: fmt.Sprintf("length bounds violated: %s", violations[0]),
				Details:  map[string]any{"violations": violations},
			}
		}
		return models.MetricResult{
			Name:     NameLength,
			Score:    1.0,
			Feedback: fmt.Sprintf("question %d words, answer %d words", qWords, aWords),
		}
	})
}
