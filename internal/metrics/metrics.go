// Package metrics implements the family of quality metric calculators. Each
// calculator is a pure function from a scoring context to a MetricResult with
// a score in [0, 1]; the one exception is uniqueness, which reads and updates
// the per-run AnalysisContext.
package metrics

import (
	"fmt"

	"github.com/banglastudy/dataqc/internal/models"
	"github.com/go-viper/mapstructure/v2"
)

// Metric name constants. Profiles reference metrics by these names in their
// weight and threshold tables.
const (
	NameExtractive    = "extractive"
	NameRelevance     = "relevance"
	NameHallucination = "hallucination"
	NameCultural      = "cultural_sensitivity"
	NameFactual       = "factual_accuracy"
	NameUniqueness    = "uniqueness"
	NameAlignment     = "semantic_alignment"
	NameCompleteness  = "completeness"
	NameGrades        = "grade_accuracy"
	NameLength        = "length_bounds"
)

// Known returns every metric name, in canonical order.
func Known() []string {
	return []string{
		NameExtractive,
		NameRelevance,
		NameHallucination,
		NameCultural,
		NameFactual,
		NameUniqueness,
		NameAlignment,
		NameCompleteness,
		NameGrades,
		NameLength,
	}
}

// IsKnown reports whether name refers to a metric this package implements.
func IsKnown(name string) bool {
	for _, n := range Known() {
		if n == name {
			return true
		}
	}
	return false
}

// Context carries one record's fields into a calculator. Fields mirror
// models.Record; the record itself is never mutated.
type Context struct {
	Question   string
	Answer     string
	SourceText string
	Metadata   map[string]any

	// Analysis is the per-run state required by the uniqueness metric.
	// Nil is valid for single-record scoring; uniqueness then degrades to
	// its stateless specificity heuristic.
	Analysis *AnalysisContext
}

// NewContext builds a scoring context from a record.
func NewContext(rec models.Record, actx *AnalysisContext) *Context {
	return &Context{
		Question:   rec.Question,
		Answer:     rec.Answer,
		SourceText: rec.SourceText,
		Metadata:   rec.Metadata,
		Analysis:   actx,
	}
}

func (c *Context) metaString(key string) string {
	if c.Metadata == nil {
		return ""
	}
	if s, ok := c.Metadata[key].(string); ok {
		return s
	}
	return ""
}

// Calculator is the interface every metric implements.
type Calculator interface {
	// Name returns the metric identifier used in profiles and reports.
	Name() string

	// Compute scores one record. Implementations never return an error: an
	// internal failure yields the metric's documented neutral value with
	// Errored set, so a single bad metric cannot abort a record or a run.
	Compute(rc *Context) models.MetricResult
}

// guard runs fn and converts a panic into the metric's neutral default, so
// the report is still produced when a calculator fails internally.
func guard(name string, neutral float64, fn func() models.MetricResult) (res models.MetricResult) {
	defer func() {
		if r := recover(); r != nil {
			res = models.MetricResult{
				Name:     name,
				Score:    neutral,
				Feedback: fmt.Sprintf("metric failed internally, neutral default substituted: %v", r),
				Errored:  true,
			}
		}
	}()
	return fn()
}

// Build constructs a calculator by name with profile-supplied parameters.
// Unknown parameter keys are rejected so profile typos surface at load time.
func Build(name string, params map[string]any) (Calculator, error) {
	decode := func(out any) error {
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      out,
			ErrorUnused: true,
		})
		if err != nil {
			return err
		}
		if err := dec.Decode(params); err != nil {
			return fmt.Errorf("metrics: bad params for %q: %w", name, err)
		}
		return nil
	}

	// parameterless metrics reject supplied params so profile typos surface
	// instead of being silently ignored
	noParams := func(mk func() Calculator) (Calculator, error) {
		if len(params) > 0 {
			return nil, fmt.Errorf("metrics: %q takes no params, got %d", name, len(params))
		}
		return mk(), nil
	}

	switch name {
	case NameExtractive:
		return noParams(NewExtractive)
	case NameRelevance:
		return noParams(NewRelevance)
	case NameHallucination:
		return noParams(NewHallucination)
	case NameCultural:
		args := CulturalArgs{MentionBonus: 0.25, TermBonus: 0.10}
		if err := decode(&args); err != nil {
			return nil, err
		}
		return NewCultural(args), nil
	case NameFactual:
		args := FactualArgs{NoClaimDefault: 0.9}
		if err := decode(&args); err != nil {
			return nil, err
		}
		return NewFactual(args), nil
	case NameUniqueness:
		args := UniquenessArgs{DuplicateScore: 0.1, SimilarityThreshold: 0.8, NearDuplicateScore: 0.4}
		if err := decode(&args); err != nil {
			return nil, err
		}
		return NewUniqueness(args), nil
	case NameAlignment:
		args := AlignmentArgs{}
		if err := decode(&args); err != nil {
			return nil, err
		}
		return NewAlignment(args), nil
	case NameCompleteness:
		args := CompletenessArgs{Denominator: 5, LengthBonusMax: 0.20, LengthBonusWords: 100}
		if err := decode(&args); err != nil {
			return nil, err
		}
		return NewCompleteness(args), nil
	case NameGrades:
		args := GradesArgs{Penalty: 0.4}
		if err := decode(&args); err != nil {
			return nil, err
		}
		return NewGrades(args), nil
	case NameLength:
		args := LengthArgs{MinQuestionWords: 3, MinAnswerWords: 5, MaxAnswerWords: 300}
		if err := decode(&args); err != nil {
			return nil, err
		}
		return NewLength(args), nil
	default:
		return nil, fmt.Errorf("metrics: unknown metric %q", name)
	}
}
