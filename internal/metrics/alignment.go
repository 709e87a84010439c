package metrics

import (
	"fmt"

	"github.com/banglastudy/dataqc/internal/models"
	"github.com/banglastudy/dataqc/internal/textutil"
)

// AlignmentArgs configures the semantic alignment gate. Categories maps a
// question category to its expected answer keywords; entries here override
// the built-in table.
type AlignmentArgs struct {
	Categories map[string][]string `mapstructure:"categories"`
}

// defaultCategoryKeywords is the built-in topic keyword table. An answer to a
// question of a given category must contain at least one of these words.
var defaultCategoryKeywords = map[string][]string{
	"scholarship": {"scholarship", "waiver", "merit", "discount", "concession", "stipend"},
	"fee":         {"fee", "fees", "cost", "tuition", "payment", "installment", "lakh", "inr"},
	"admission":   {"admission", "apply", "application", "eligibility", "intake", "enroll", "enrollment"},
	"process":     {"process", "step", "procedure", "apply", "submit", "register"},
	"document":    {"document", "documents", "certificate", "transcript", "passport", "marksheet"},
	"visa":        {"visa", "embassy", "passport", "immigration", "entry"},
	"hostel":      {"hostel", "accommodation", "room", "mess", "residence"},
}

// alignmentCalculator is the hard topic gate: a scholarship question answered
// with visa content scores 0.0. It is binary, not graded. Records with no
// declared category (or an unknown one) score 1.0 — there is no expectation
// to violate.
type alignmentCalculator struct {
	categories map[string][]string
}

// NewAlignment creates the semantic alignment gate.
func NewAlignment(args AlignmentArgs) Calculator {
	cats := make(map[string][]string, len(defaultCategoryKeywords))
	for k, v := range defaultCategoryKeywords {
		cats[k] = v
	}
	for k, v := range args.Categories {
		cats[k] = v
	}
	return alignmentCalculator{categories: cats}
}

func (alignmentCalculator) Name() string { return NameAlignment }

func (c alignmentCalculator) Compute(rc *Context) models.MetricResult {
	return guard(NameAlignment, 1.0, func() models.MetricResult {
		category := rc.metaString("category")
		keywords, ok := c.categories[category]
		if category == "" || !ok {
			return models.MetricResult{
				Name:     NameAlignment,
				Score:    1.0,
				Feedback: "no declared category to check against",
			}
		}

		answerWords := textutil.WordSet(rc.Answer)
		for _, kw := range keywords {
			if _, found := answerWords[kw]; found {
				return models.MetricResult{
					Name:     NameAlignment,
					Score:    1.0,
					Feedback: fmt.Sprintf("answer matches %q topic via keyword %q", category, kw),
				}
			}
		}

		return models.MetricResult{
			Name:     NameAlignment,
			Score:    0.0,
			Feedback: fmt.Sprintf("answer contains no %q topic keywords", category),
			Details:  map[string]any{"category": category, "expected_any_of": keywords},
		}
	})
}
