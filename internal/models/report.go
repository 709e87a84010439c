package models

// Severity classifies how serious an admission issue is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

var severityRank = map[Severity]int{
	SeverityCritical: 0,
	SeverityWarning:  1,
	SeverityInfo:     2,
}

// Rank returns the sort order for a severity; critical sorts first.
func (s Severity) Rank() int {
	if r, ok := severityRank[s]; ok {
		return r
	}
	return len(severityRank)
}

// Tier is a discrete quality bucket derived from the overall score.
type Tier string

const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierFair      Tier = "fair"
	TierPoor      Tier = "poor"
)

// MetricResult is the output of one metric calculator. Score is always in
// [0, 1]; boolean metrics report 1.0 or 0.0. Details carries metric-specific
// evidence (matched flags, overlapping tokens, etc).
type MetricResult struct {
	Name     string         `json:"name"`
	Score    float64        `json:"score"`
	Feedback string         `json:"feedback,omitempty"`
	Details  map[string]any `json:"details,omitempty"`

	// Errored is set when the calculator itself failed and the documented
	// neutral default was substituted for Score.
	Errored bool `json:"errored,omitempty"`
}

// Issue records one violated threshold or anomaly found during admission.
type Issue struct {
	Metric      string   `json:"metric"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Expected    string   `json:"expected,omitempty"`
	Actual      string   `json:"actual,omitempty"`
}

// QualityReport is the per-record scoring output: every metric result, the
// weighted composite, the derived tier, and the admission decision.
//
// Passed is false whenever any issue is critical. Warnings may coexist with
// Passed == true.
type QualityReport struct {
	Record       Record                  `json:"record"`
	Metrics      map[string]MetricResult `json:"metrics"`
	OverallScore float64                 `json:"overall_score"`
	Tier         Tier                    `json:"quality_tier"`
	Passed       bool                    `json:"passed"`
	Issues       []Issue                 `json:"issues,omitempty"`
}

// HasCritical reports whether any issue carries critical severity.
func (qr *QualityReport) HasCritical() bool {
	for _, iss := range qr.Issues {
		if iss.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
