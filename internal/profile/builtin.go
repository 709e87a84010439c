package profile

import (
	"fmt"
	"sort"

	"github.com/banglastudy/dataqc/internal/metrics"
	"github.com/banglastudy/dataqc/internal/models"
	"github.com/banglastudy/dataqc/internal/scoring"
)

// builtins are the named profiles shipped with the tool. The historical
// validator variants differed only in these numbers; they live here as data
// so one engine serves all of them.
var builtins = map[string]func() *Profile{
	"production": productionProfile,
	"strict":     strictProfile,
	"relaxed":    relaxedProfile,
}

// Builtin returns a fresh copy of the named builtin profile.
func Builtin(name string) (*Profile, error) {
	mk, ok := builtins[name]
	if !ok {
		return nil, fmt.Errorf("profile: no builtin profile %q (have %v)", name, Names())
	}
	return mk(), nil
}

// Names lists the builtin profile names in stable order.
func Names() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DefaultName is the profile used when none is requested.
const DefaultName = "production"

func productionProfile() *Profile {
	return &Profile{
		Name: "production",
		Weights: scoring.Weights{
			metrics.NameExtractive:   0.30,
			metrics.NameFactual:      0.20,
			metrics.NameCultural:     0.15,
			metrics.NameAlignment:    0.10,
			metrics.NameRelevance:    0.10,
			metrics.NameUniqueness:   0.10,
			metrics.NameCompleteness: 0.05,
		},
		Thresholds: map[string]scoring.Threshold{
			metrics.NameExtractive:    {Min: 0.60, Severity: models.SeverityWarning},
			metrics.NameRelevance:     {Min: 0.30, Severity: models.SeverityWarning},
			metrics.NameFactual:       {Min: 0.50, Severity: models.SeverityWarning},
			metrics.NameUniqueness:    {Min: 0.30, Severity: models.SeverityWarning},
			metrics.NameGrades:        {Min: 1.00, Severity: models.SeverityWarning},
			metrics.NameHallucination: {Min: 1.00, Severity: models.SeverityCritical},
			metrics.NameAlignment:     {Min: 1.00, Severity: models.SeverityCritical},
			metrics.NameLength:        {Min: 1.00, Severity: models.SeverityCritical},
		},
		MinOverall: 0.50,
		Tiers:      scoring.TierCuts{Excellent: 0.90, Good: 0.80, Fair: 0.70},
	}
}

func strictProfile() *Profile {
	return &Profile{
		Name: "strict",
		Weights: scoring.Weights{
			metrics.NameExtractive:   0.40,
			metrics.NameFactual:      0.25,
			metrics.NameCultural:     0.05,
			metrics.NameAlignment:    0.10,
			metrics.NameRelevance:    0.10,
			metrics.NameUniqueness:   0.05,
			metrics.NameCompleteness: 0.05,
		},
		Thresholds: map[string]scoring.Threshold{
			metrics.NameExtractive:    {Min: 0.75, Severity: models.SeverityCritical},
			metrics.NameRelevance:     {Min: 0.40, Severity: models.SeverityWarning},
			metrics.NameFactual:       {Min: 0.70, Severity: models.SeverityCritical},
			metrics.NameUniqueness:    {Min: 0.50, Severity: models.SeverityWarning},
			metrics.NameGrades:        {Min: 1.00, Severity: models.SeverityCritical},
			metrics.NameHallucination: {Min: 1.00, Severity: models.SeverityCritical},
			metrics.NameAlignment:     {Min: 1.00, Severity: models.SeverityCritical},
			metrics.NameLength:        {Min: 1.00, Severity: models.SeverityCritical},
		},
		MinOverall: 0.75,
		Tiers:      scoring.TierCuts{Excellent: 0.90, Good: 0.80, Fair: 0.70},
	}
}

func relaxedProfile() *Profile {
	return &Profile{
		Name: "relaxed",
		Weights: scoring.Weights{
			metrics.NameExtractive:   0.25,
			metrics.NameFactual:      0.20,
			metrics.NameCultural:     0.20,
			metrics.NameAlignment:    0.10,
			metrics.NameRelevance:    0.10,
			metrics.NameUniqueness:   0.10,
			metrics.NameCompleteness: 0.05,
		},
		Thresholds: map[string]scoring.Threshold{
			metrics.NameExtractive:    {Min: 0.40, Severity: models.SeverityWarning},
			metrics.NameUniqueness:    {Min: 0.20, Severity: models.SeverityInfo},
			metrics.NameHallucination: {Min: 1.00, Severity: models.SeverityCritical},
			metrics.NameAlignment:     {Min: 1.00, Severity: models.SeverityCritical},
			metrics.NameLength:        {Min: 1.00, Severity: models.SeverityCritical},
		},
		MinOverall: 0.40,
		Tiers:      scoring.TierCuts{Excellent: 0.85, Good: 0.75, Fair: 0.65},
		MetricParams: map[string]map[string]any{
			metrics.NameUniqueness: {"duplicate_score": 0.3},
		},
	}
}
