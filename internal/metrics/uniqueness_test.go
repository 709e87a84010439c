package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newUniquenessForTest() Calculator {
	return NewUniqueness(UniquenessArgs{
		DuplicateScore:      0.1,
		SimilarityThreshold: 0.8,
		NearDuplicateScore:  0.4,
	})
}

func TestUniqueness_ExactDuplicateCaseAndWhitespace(t *testing.T) {
	calc := newUniquenessForTest()
	actx := NewAnalysisContext(0)

	first := calc.Compute(&Context{Question: "What is the hostel fee at Sharda University?", Analysis: actx})
	require.Greater(t, first.Score, 0.5)

	second := calc.Compute(&Context{Question: "  what is THE hostel fee at sharda university? ", Analysis: actx})
	require.Equal(t, 0.1, second.Score)
	require.Equal(t, true, second.Details["duplicate"])
	require.Equal(t, 1, actx.Duplicates())
}

func TestUniqueness_NearDuplicate(t *testing.T) {
	calc := newUniquenessForTest()
	actx := NewAnalysisContext(0)

	calc.Compute(&Context{Question: "What is the annual hostel fee at Sharda University for international students?", Analysis: actx})
	res := calc.Compute(&Context{Question: "What is the annual hostel fee at Sharda University for all international students?", Analysis: actx})

	require.Equal(t, 0.4, res.Score)
	require.Equal(t, 0, actx.Duplicates())
}

func TestUniqueness_SpecificityRewardsProperNouns(t *testing.T) {
	calc := newUniquenessForTest()

	generic := calc.Compute(&Context{Question: "what is the fee?"})
	specific := calc.Compute(&Context{Question: "what is the B.Tech fee at Chandigarh University for the 2025 intake?"})

	require.Greater(t, specific.Score, generic.Score)
}

func TestUniqueness_DeterministicWithSeed(t *testing.T) {
	calc := newUniquenessForTest()
	questions := []string{
		"What scholarship exists at LPU?",
		"What is the hostel fee at Amity?",
		"Which documents are needed for admission?",
	}

	run := func() []float64 {
		actx := NewAnalysisContext(42)
		var scores []float64
		for _, q := range questions {
			scores = append(scores, calc.Compute(&Context{Question: q, Analysis: actx}).Score)
		}
		return scores
	}

	require.Equal(t, run(), run())
}

func TestUniqueness_UniversityMetadataBonus(t *testing.T) {
	calc := newUniquenessForTest()
	question := "what is the fee?"

	plain := calc.Compute(&Context{Question: question})
	tagged := calc.Compute(&Context{Question: question, Metadata: map[string]any{"university": "Sharda"}})

	require.Greater(t, tagged.Score, plain.Score)
}

func TestUniqueness_NilAnalysisContext(t *testing.T) {
	calc := newUniquenessForTest()
	res := calc.Compute(&Context{Question: "What is the fee?"})
	require.Greater(t, res.Score, 0.0)
	require.LessOrEqual(t, res.Score, 1.0)
}

func TestAnalysisContext_PrePopulatedDetectsDuplicate(t *testing.T) {
	calc := newUniquenessForTest()
	actx := NewAnalysisContext(0)

	// seed the context as if earlier records had been scored
	calc.Compute(&Context{Question: "What is the visa process?", Analysis: actx})

	res := calc.Compute(&Context{Question: "WHAT IS THE VISA PROCESS", Analysis: actx})
	require.Equal(t, 0.1, res.Score)
}
