package models

import "time"

// CountEntry is one bucket in a top-N distribution.
type CountEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ScoreStats summarizes the distribution of overall scores across a run.
type ScoreStats struct {
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	CILower float64 `json:"ci_lower"`
	CIUpper float64 `json:"ci_upper"`
}

// Analysis is the aggregate result of scoring a whole dataset. It is built
// once by the analyzer's fold and never mutated afterward.
type Analysis struct {
	Timestamp time.Time `json:"timestamp"`
	Profile   string    `json:"profile"`

	TotalRecords   int     `json:"total_records"`
	ValidRecords   int     `json:"valid_records"`
	InvalidRecords int     `json:"invalid_records"`
	ParseErrors    int     `json:"parse_errors"`
	ValidityRate   float64 `json:"validity_rate"`

	Scores         ScoreStats         `json:"scores"`
	MetricAverages map[string]float64 `json:"metric_averages"`

	TierDistribution map[Tier]int     `json:"quality_distribution"`
	IssueCounts      map[string]int   `json:"issue_counts"`
	SeverityCounts   map[Severity]int `json:"severity_counts"`

	DuplicateQuestions int `json:"duplicate_questions"`

	TopCategories  []CountEntry `json:"top_categories,omitempty"`
	TopSourceFiles []CountEntry `json:"top_source_files,omitempty"`

	// Flagged holds the full report for every rejected record, capped by the
	// analyzer's flagged-limit option (0 = uncapped).
	Flagged []QualityReport `json:"flagged_records,omitempty"`

	DurationMs int64 `json:"duration_ms"`
}
