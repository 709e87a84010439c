package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractive_DegenerateInputs(t *testing.T) {
	calc := NewExtractive()

	tests := []struct {
		name   string
		answer string
		source string
	}{
		{"both empty", "", ""},
		{"empty source", "anything", ""},
		{"empty answer", "", "some source text"},
		{"punctuation-only answer", "?!.", "some source text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := calc.Compute(&Context{Answer: tt.answer, SourceText: tt.source})
			require.Equal(t, 0.0, res.Score)
			require.False(t, res.Errored)
		})
	}
}

func TestExtractive_VerbatimSubstring(t *testing.T) {
	calc := NewExtractive()
	source := "Sharda University offers a 50% merit scholarship to Bangladeshi students with GPA above 4.5."

	// identical after normalization despite case and punctuation differences
	res := calc.Compute(&Context{
		Answer:     "sharda university offers a 50 merit scholarship",
		SourceText: source,
	})
	require.Equal(t, 1.0, res.Score)
}

func TestExtractive_PartialOverlap(t *testing.T) {
	calc := NewExtractive()
	res := calc.Compute(&Context{
		Answer:     "tuition waiver and hostel discount",
		SourceText: "the tuition waiver covers half the fee",
	})
	// "tuition" and "waiver" of 5 distinct answer words appear in source
	require.InDelta(t, 2.0/5.0, res.Score, 1e-9)
}

func TestExtractive_MonotonicInSourceWords(t *testing.T) {
	calc := NewExtractive()
	source := "admission requires ssc transcripts hsc certificates and a valid passport"

	// each answer adds one more source word to the previous one
	answers := []string{
		"admission invented",
		"admission requires invented",
		"admission requires transcripts invented",
		"admission requires transcripts passport invented",
	}
	prev := -1.0
	for _, a := range answers {
		res := calc.Compute(&Context{Answer: a, SourceText: source})
		require.GreaterOrEqual(t, res.Score, prev, "answer %q decreased the score", a)
		prev = res.Score
	}
}

func TestExtractive_Idempotent(t *testing.T) {
	calc := NewExtractive()
	rc := &Context{Answer: "the fee is ₹120000 per year", SourceText: "fee: ₹120000 per year for B.Tech"}
	first := calc.Compute(rc)
	second := calc.Compute(rc)
	require.Equal(t, first, second)
}
