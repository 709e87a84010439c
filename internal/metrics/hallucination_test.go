package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHallucination_Clean(t *testing.T) {
	calc := NewHallucination()
	res := calc.Compute(&Context{
		Question: "What is the tuition fee at Amity?",
		Answer:   "The annual tuition fee for B.Tech is ₹3,10,000.",
	})
	require.Equal(t, 1.0, res.Score)
	require.Nil(t, res.Details)
}

func TestHallucination_SpeculativeAnswer(t *testing.T) {
	calc := NewHallucination()
	res := calc.Compute(&Context{
		Question: "What scholarship percentage is offered?",
		Answer:   "I think this might be around 50%",
	})
	require.Equal(t, 0.0, res.Score)
	flags, ok := res.Details["flags"].([]string)
	require.True(t, ok)
	require.Contains(t, flags, "i think")
	require.Contains(t, flags, "might be")
}

func TestHallucination_FlagsInQuestionToo(t *testing.T) {
	calc := NewHallucination()
	res := calc.Compute(&Context{
		Question: "Is the fee probably around 2 lakh?",
		Answer:   "The fee is 2 lakh per year.",
	})
	require.Equal(t, 0.0, res.Score)
}

func TestHallucination_EmptyInputs(t *testing.T) {
	calc := NewHallucination()
	res := calc.Compute(&Context{})
	require.Equal(t, 1.0, res.Score)
}

func TestHallucination_DeduplicatesAcrossFields(t *testing.T) {
	calc := NewHallucination()
	res := calc.Compute(&Context{
		Question: "I think the fee changed?",
		Answer:   "I think it is now 2 lakh.",
	})
	flags := res.Details["flags"].([]string)
	require.Equal(t, []string{"i think"}, flags)
}
