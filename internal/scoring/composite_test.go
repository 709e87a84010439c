package scoring

import (
	"testing"

	"github.com/banglastudy/dataqc/internal/models"
	"github.com/stretchr/testify/require"
)

func TestWeights_Validate(t *testing.T) {
	tests := []struct {
		name    string
		weights Weights
		wantErr bool
	}{
		{"sums to one", Weights{"a": 0.6, "b": 0.4}, false},
		{"within tolerance", Weights{"a": 0.5, "b": 0.5 + 5e-7}, false},
		{"sums to 0.9", Weights{"a": 0.5, "b": 0.4}, true},
		{"negative weight", Weights{"a": 1.4, "b": -0.4}, true},
		{"empty table", Weights{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.weights.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCombine(t *testing.T) {
	w := Weights{"extractive": 0.5, "relevance": 0.3, "completeness": 0.2}
	results := map[string]models.MetricResult{
		"extractive":   {Name: "extractive", Score: 1.0},
		"relevance":    {Name: "relevance", Score: 0.5},
		"completeness": {Name: "completeness", Score: 0.0},
	}
	require.InDelta(t, 0.65, Combine(results, w), 1e-9)
}

func TestCombine_MissingMetricContributesZero(t *testing.T) {
	w := Weights{"extractive": 0.5, "relevance": 0.5}
	results := map[string]models.MetricResult{
		"extractive": {Name: "extractive", Score: 1.0},
	}
	require.InDelta(t, 0.5, Combine(results, w), 1e-9)
}

func TestTierCuts_Validate(t *testing.T) {
	require.NoError(t, TierCuts{Excellent: 0.9, Good: 0.8, Fair: 0.7}.Validate())
	require.Error(t, TierCuts{Excellent: 0.7, Good: 0.8, Fair: 0.9}.Validate())
	require.Error(t, TierCuts{Excellent: 1.2, Good: 0.8, Fair: 0.7}.Validate())
	require.Error(t, TierCuts{Excellent: 0.9, Good: 0.9, Fair: 0.7}.Validate())
}

func TestTierCuts_TierFor(t *testing.T) {
	cuts := TierCuts{Excellent: 0.9, Good: 0.8, Fair: 0.7}
	tests := []struct {
		score float64
		want  models.Tier
	}{
		{1.0, models.TierExcellent},
		{0.9, models.TierExcellent},
		{0.89, models.TierGood},
		{0.8, models.TierGood},
		{0.79, models.TierFair},
		{0.7, models.TierFair},
		{0.69, models.TierPoor},
		{0.0, models.TierPoor},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, cuts.TierFor(tt.score), "score %v", tt.score)
	}
}
