package analyzer

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/banglastudy/dataqc/internal/dataset"
	"github.com/banglastudy/dataqc/internal/metrics"
	"github.com/banglastudy/dataqc/internal/models"
	"github.com/banglastudy/dataqc/internal/profile"
	"github.com/stretchr/testify/require"
)

func newAnalyzer(t *testing.T, profileName string) *Analyzer {
	t.Helper()
	p, err := profile.Builtin(profileName)
	require.NoError(t, err)
	a, err := New(p)
	require.NoError(t, err)
	return a
}

func goodRecord(i int) models.Record {
	return models.Record{
		Question:   fmt.Sprintf("What is the B.Tech tuition fee at Sharda University for batch %d?", i),
		Answer:     fmt.Sprintf("The B.Tech tuition fee at Sharda University for batch %d is ₹1,20,000 per year including all charges.", i),
		SourceText: fmt.Sprintf("The B.Tech tuition fee at Sharda University for batch %d is ₹1,20,000 per year including all charges.", i),
		Metadata:   map[string]any{"category": "fee", "source_file": "sharda.txt"},
	}
}

func TestNew_RejectsInvalidProfile(t *testing.T) {
	p, err := profile.Builtin("production")
	require.NoError(t, err)
	p.Weights[metrics.NameExtractive] = 0.0 // sum now 0.7

	_, err = New(p)
	require.Error(t, err)
}

func TestScoreRecord_CleanRecordPasses(t *testing.T) {
	a := newAnalyzer(t, "production")
	rep := a.ScoreRecord(goodRecord(1), metrics.NewAnalysisContext(0))

	require.True(t, rep.Passed, "issues: %+v", rep.Issues)
	require.Equal(t, 1.0, rep.Metrics[metrics.NameExtractive].Score)
	require.Greater(t, rep.OverallScore, 0.7)
}

func TestScoreRecord_Idempotent(t *testing.T) {
	a := newAnalyzer(t, "production")
	rec := goodRecord(1)

	first := a.ScoreRecord(rec, nil)
	second := a.ScoreRecord(rec, nil)
	require.Equal(t, first, second)
}

func TestScoreRecord_ScenarioVisaAnswerToScholarshipQuestion(t *testing.T) {
	a := newAnalyzer(t, "production")
	rep := a.ScoreRecord(models.Record{
		Question: "What scholarship can I get for B.Tech CSE at Sharda University?",
		Answer:   "Student visa duration is 12 months with multiple entry facility.",
		Metadata: map[string]any{"category": "scholarship"},
	}, nil)

	require.Equal(t, 0.0, rep.Metrics[metrics.NameAlignment].Score)
	require.False(t, rep.Passed)

	found := false
	for _, iss := range rep.Issues {
		if iss.Metric == metrics.NameAlignment && iss.Severity == models.SeverityCritical {
			found = true
		}
	}
	require.True(t, found, "expected a critical semantic_alignment issue, got %+v", rep.Issues)
}

func TestScoreRecord_ScenarioSpeculativeAnswerRejected(t *testing.T) {
	a := newAnalyzer(t, "production")
	rep := a.ScoreRecord(models.Record{
		Question: "What percentage scholarship does Amity offer to Bangladeshi students?",
		Answer:   "I think this might be around 50% but you should verify this figure yourself.",
	}, nil)

	require.False(t, rep.Passed)
	require.Equal(t, 0.0, rep.Metrics[metrics.NameHallucination].Score)
	require.True(t, rep.HasCritical())
}

func TestAnalyze_ScenarioMalformedLinesDoNotAbort(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 100; i++ {
		rec := goodRecord(i)
		b.WriteString(fmt.Sprintf(`{"question": %q, "answer": %q, "source_text": %q, "metadata": {"category": "fee"}}`+"\n",
			rec.Question, rec.Answer, rec.SourceText))
	}
	for i := 0; i < 5; i++ {
		b.WriteString("{malformed json line\n")
	}

	loaded, err := dataset.ReadNDJSON(strings.NewReader(b.String()))
	require.NoError(t, err)

	a := newAnalyzer(t, "production")
	analysis, err := a.Analyze(context.Background(), loaded.Records, loaded.ParseErrors)
	require.NoError(t, err)

	require.Equal(t, 100, analysis.TotalRecords)
	require.Equal(t, 5, analysis.ParseErrors)
	require.Equal(t, 100, analysis.ValidRecords+analysis.InvalidRecords)
}

func TestAnalyze_ScenarioDuplicateQuestionFlagged(t *testing.T) {
	records := []models.Record{
		goodRecord(1),
		{
			Question:   "  " + strings.ToUpper(goodRecord(1).Question) + "  ",
			Answer:     goodRecord(1).Answer,
			SourceText: goodRecord(1).SourceText,
		},
	}

	a := newAnalyzer(t, "production")
	analysis, err := a.Analyze(context.Background(), records, 0)
	require.NoError(t, err)

	require.Equal(t, 1, analysis.DuplicateQuestions)
}

func TestAnalyze_DeterministicAcrossRuns(t *testing.T) {
	var records []models.Record
	for i := 0; i < 20; i++ {
		records = append(records, goodRecord(i))
	}
	records = append(records, models.Record{Question: "Is it probably fine?", Answer: "I guess so."})

	a := newAnalyzer(t, "production")
	run := func() *models.Analysis {
		analysis, err := a.Analyze(context.Background(), records, 0)
		require.NoError(t, err)
		// wall-clock fields differ between runs by construction
		analysis.Timestamp = time.Time{}
		analysis.DurationMs = 0
		return analysis
	}
	require.Equal(t, run(), run())
}

func TestAnalyze_Aggregates(t *testing.T) {
	records := []models.Record{
		goodRecord(1),
		goodRecord(2),
		{Question: "Any scholarship?", Answer: "I think maybe.", Metadata: map[string]any{"category": "scholarship"}},
	}

	a := newAnalyzer(t, "production")
	analysis, err := a.Analyze(context.Background(), records, 0)
	require.NoError(t, err)

	require.Equal(t, 3, analysis.TotalRecords)
	require.Equal(t, 1, analysis.InvalidRecords)
	require.InDelta(t, 2.0/3.0, analysis.ValidityRate, 1e-9)

	require.NotEmpty(t, analysis.Flagged)
	require.False(t, analysis.Flagged[0].Passed)

	require.Equal(t, "fee", analysis.TopCategories[0].Name)
	require.Equal(t, 2, analysis.TopCategories[0].Count)
	require.Equal(t, "sharda.txt", analysis.TopSourceFiles[0].Name)

	require.Greater(t, analysis.Scores.Mean, 0.0)
	require.GreaterOrEqual(t, analysis.Scores.Max, analysis.Scores.Min)
	require.Contains(t, analysis.MetricAverages, metrics.NameExtractive)
}

func TestAnalyze_FlaggedLimit(t *testing.T) {
	p, err := profile.Builtin("production")
	require.NoError(t, err)
	p.FlaggedLimit = 1

	a, err := New(p)
	require.NoError(t, err)

	records := []models.Record{
		{Question: "One?", Answer: "I think so."},
		{Question: "Two?", Answer: "Probably yes."},
		{Question: "Three?", Answer: "I guess."},
	}
	analysis, err := a.Analyze(context.Background(), records, 0)
	require.NoError(t, err)

	require.Equal(t, 3, analysis.InvalidRecords)
	require.Len(t, analysis.Flagged, 1)
}

func TestAnalyze_EmptyDataset(t *testing.T) {
	a := newAnalyzer(t, "production")
	analysis, err := a.Analyze(context.Background(), nil, 2)
	require.NoError(t, err)

	require.Equal(t, 0, analysis.TotalRecords)
	require.Equal(t, 2, analysis.ParseErrors)
	require.Equal(t, 0.0, analysis.ValidityRate)
}
