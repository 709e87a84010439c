package scoring

import (
	"fmt"
	"sort"

	"github.com/banglastudy/dataqc/internal/models"
)

// Threshold is one admission rule: the metric's score must reach Min, and a
// violation carries the configured severity.
type Threshold struct {
	Min      float64         `yaml:"min" json:"min"`
	Severity models.Severity `yaml:"severity" json:"severity"`
}

// Gate applies per-metric thresholds plus an optional minimum on the overall
// score, producing the pass/fail decision and the ordered issue list.
type Gate struct {
	Thresholds map[string]Threshold

	// MinOverall rejects records whose composite score falls below it.
	// Zero disables the check. Violations are warnings: the per-metric
	// criticals are what hard-reject a record.
	MinOverall float64
}

// Validate rejects negative or out-of-range thresholds and unknown
// severities at configuration-load time.
func (g *Gate) Validate() error {
	for name, th := range g.Thresholds {
		if th.Min < 0 || th.Min > 1 {
			return fmt.Errorf("scoring: threshold for %q must lie in [0,1], got %v", name, th.Min)
		}
		switch th.Severity {
		case models.SeverityCritical, models.SeverityWarning, models.SeverityInfo:
		default:
			return fmt.Errorf("scoring: threshold for %q has unknown severity %q", name, th.Severity)
		}
	}
	if g.MinOverall < 0 || g.MinOverall > 1 {
		return fmt.Errorf("scoring: min_overall must lie in [0,1], got %v", g.MinOverall)
	}
	return nil
}

// Evaluate compares metric results against the thresholds. passed is false
// iff any emitted issue is critical; warnings and infos coexist with a pass.
// A calculator that errored internally contributes an info issue on top of
// any threshold result, so defaulted metrics remain visible in the report.
//
// Issues are ordered deterministically: critical first, then warning, then
// info, ties broken by metric name.
func (g *Gate) Evaluate(results map[string]models.MetricResult, overall float64) (bool, []models.Issue) {
	var issues []models.Issue

	for name, th := range g.Thresholds {
		res, ok := results[name]
		if !ok {
			continue
		}
		if res.Score < th.Min {
			issues = append(issues, models.Issue{
				Metric:      name,
				Severity:    th.Severity,
				Description: res.Feedback,
				Expected:    fmt.Sprintf(">= %.2f", th.Min),
				Actual:      fmt.Sprintf("%.2f", res.Score),
			})
		}
	}

	for name, res := range results {
		if res.Errored {
			issues = append(issues, models.Issue{
				Metric:      name,
				Severity:    models.SeverityInfo,
				Description: res.Feedback,
			})
		}
	}

	if g.MinOverall > 0 && overall < g.MinOverall {
		issues = append(issues, models.Issue{
			Metric:      "overall",
			Severity:    models.SeverityWarning,
			Description: "overall quality score below profile minimum",
			Expected:    fmt.Sprintf(">= %.2f", g.MinOverall),
			Actual:      fmt.Sprintf("%.2f", overall),
		})
	}

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Severity != issues[j].Severity {
			return issues[i].Severity.Rank() < issues[j].Severity.Rank()
		}
		return issues[i].Metric < issues[j].Metric
	})

	passed := true
	for _, iss := range issues {
		if iss.Severity == models.SeverityCritical {
			passed = false
			break
		}
	}
	return passed, issues
}
