// Package scoring combines individual metric results into an overall quality
// score and applies the admission gate's thresholds.
package scoring

import (
	"fmt"
	"math"

	"github.com/banglastudy/dataqc/internal/models"
)

// weightTolerance is the allowed deviation of a weight table's sum from 1.0.
const weightTolerance = 1e-6

// Weights maps metric names to composite weights. A valid table sums to 1.0.
type Weights map[string]float64

// Validate checks the table sums to 1.0 within tolerance and has no negative
// entries. Run at configuration-load time: a bad table makes every score of
// the run meaningless, so this is fatal rather than degradable.
func (w Weights) Validate() error {
	sum := 0.0
	for name, weight := range w {
		if weight < 0 {
			return fmt.Errorf("scoring: weight for %q is negative (%v)", name, weight)
		}
		sum += weight
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("scoring: weights sum to %v, must sum to 1.0", sum)
	}
	return nil
}

// TierCuts are the lower bounds of the excellent/good/fair tiers. Scores
// below Fair are poor.
type TierCuts struct {
	Excellent float64 `yaml:"excellent" json:"excellent"`
	Good      float64 `yaml:"good" json:"good"`
	Fair      float64 `yaml:"fair" json:"fair"`
}

// Validate checks the cut points are ordered and within [0, 1].
func (tc TierCuts) Validate() error {
	if tc.Excellent > 1.0 || tc.Fair < 0.0 {
		return fmt.Errorf("scoring: tier cuts must lie in [0,1], got %+v", tc)
	}
	if !(tc.Excellent > tc.Good && tc.Good > tc.Fair) {
		return fmt.Errorf("scoring: tier cuts must be strictly ordered excellent > good > fair, got %+v", tc)
	}
	return nil
}

// TierFor buckets an overall score.
func (tc TierCuts) TierFor(score float64) models.Tier {
	switch {
	case score >= tc.Excellent:
		return models.TierExcellent
	case score >= tc.Good:
		return models.TierGood
	case score >= tc.Fair:
		return models.TierFair
	default:
		return models.TierPoor
	}
}

// Combine computes the weighted overall score from a metric result map.
// Metrics absent from the weight table contribute nothing; a weighted metric
// missing from the results contributes zero, which is the conservative
// reading of "no evidence".
func Combine(results map[string]models.MetricResult, w Weights) float64 {
	overall := 0.0
	for name, weight := range w {
		if res, ok := results[name]; ok {
			overall += weight * res.Score
		}
	}
	// guard against float drift pushing past the bounds
	if overall > 1.0 {
		overall = 1.0
	}
	if overall < 0.0 {
		overall = 0.0
	}
	return overall
}
