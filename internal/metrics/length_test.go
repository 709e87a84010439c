package metrics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLength_Bounds(t *testing.T) {
	calc := NewLength(LengthArgs{MinQuestionWords: 3, MinAnswerWords: 5, MaxAnswerWords: 300})

	tests := []struct {
		name     string
		question string
		answer   string
		want     float64
	}{
		{
			name:     "within bounds",
			question: "What is the tuition fee?",
			answer:   "The tuition fee is one lakh twenty thousand rupees per year.",
			want:     1.0,
		},
		{
			name:     "question too short",
			question: "Fees?",
			answer:   "The tuition fee is one lakh twenty thousand rupees per year.",
			want:     0.0,
		},
		{
			name:     "answer too short",
			question: "What is the tuition fee?",
			answer:   "One lakh.",
			want:     0.0,
		},
		{
			name:     "answer too long",
			question: "What is the tuition fee?",
			answer:   strings.Repeat("very ", 301) + "long",
			want:     0.0,
		},
		{
			name:     "empty record",
			question: "",
			answer:   "",
			want:     0.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := calc.Compute(&Context{Question: tt.question, Answer: tt.answer})
			require.Equal(t, tt.want, res.Score)
		})
	}
}

func TestLength_MaxDisabledWhenZero(t *testing.T) {
	calc := NewLength(LengthArgs{MinQuestionWords: 1, MinAnswerWords: 1, MaxAnswerWords: 0})
	res := calc.Compute(&Context{
		Question: "Long answers allowed?",
		Answer:   strings.Repeat("word ", 5000),
	})
	require.Equal(t, 1.0, res.Score)
}
