// Package analyzer drives the per-record scoring pipeline across a whole
// dataset and folds the results into aggregate statistics.
package analyzer

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/banglastudy/dataqc/internal/metrics"
	"github.com/banglastudy/dataqc/internal/models"
	"github.com/banglastudy/dataqc/internal/profile"
	"github.com/banglastudy/dataqc/internal/scoring"
	"github.com/banglastudy/dataqc/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// topN caps the category and source-file distributions in the digest.
const topN = 10

// ciSeed fixes the bootstrap confidence interval's resampling so reports are
// reproducible.
const ciSeed = 1

// Analyzer scores records against one profile. Construction validates the
// profile and builds every calculator once; the analyzer itself is stateless
// across runs and safe for reuse.
type Analyzer struct {
	prof    *profile.Profile
	calcs   []metrics.Calculator
	gate    *scoring.Gate
	workers int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithWorkers sets the scoring fan-out width. Values below 1 fall back to
// the default of 4.
func WithWorkers(n int) Option {
	return func(a *Analyzer) {
		if n >= 1 {
			a.workers = n
		}
	}
}

// New creates an Analyzer for the given profile. The profile is validated
// here — a bad weight table or threshold set must fail before any record is
// scored.
func New(prof *profile.Profile, opts ...Option) (*Analyzer, error) {
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	calcs, err := prof.Calculators()
	if err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}
	a := &Analyzer{
		prof:    prof,
		calcs:   calcs,
		gate:    prof.Gate(),
		workers: 4,
	}
	for _, o := range opts {
		o(a)
	}
	return a, nil
}

// ScoreRecord scores one record. The AnalysisContext carries the run's
// seen-question state for the uniqueness metric; pass nil when scoring a
// record in isolation.
func (a *Analyzer) ScoreRecord(rec models.Record, actx *metrics.AnalysisContext) models.QualityReport {
	return a.score(rec, actx, nil)
}

// score computes all metrics for rec, skipping any already present in
// precomputed (the uniqueness pre-pass), then applies the composite scorer
// and the admission gate.
func (a *Analyzer) score(rec models.Record, actx *metrics.AnalysisContext, precomputed map[string]models.MetricResult) models.QualityReport {
	rc := metrics.NewContext(rec, actx)

	results := make(map[string]models.MetricResult, len(a.calcs))
	for name, res := range precomputed {
		results[name] = res
	}
	for _, calc := range a.calcs {
		if _, done := results[calc.Name()]; done {
			continue
		}
		results[calc.Name()] = calc.Compute(rc)
	}

	overall := scoring.Combine(results, a.prof.Weights)
	passed, issues := a.gate.Evaluate(results, overall)

	return models.QualityReport{
		Record:       rec,
		Metrics:      results,
		OverallScore: overall,
		Tier:         a.prof.Tiers.TierFor(overall),
		Passed:       passed,
		Issues:       issues,
	}
}

// Analyze scores every record and folds the reports into an Analysis.
// parseErrors is the count of malformed input lines the loader skipped; it
// is carried through so the digest reflects the whole input stream.
//
// Uniqueness runs in a sequential pre-pass over records in input order;
// duplicate attribution ("the second occurrence is the duplicate") must not
// depend on worker scheduling. The remaining metrics are pure and fan out
// across workers; the fold itself is deterministic given input order.
func (a *Analyzer) Analyze(ctx context.Context, records []models.Record, parseErrors int) (*models.Analysis, error) {
	start := time.Now()
	actx := metrics.NewAnalysisContext(a.prof.Seed)

	uniq := a.uniquenessCalculator()
	pre := make([]map[string]models.MetricResult, len(records))
	if uniq != nil {
		for i, rec := range records {
			res := uniq.Compute(metrics.NewContext(rec, actx))
			pre[i] = map[string]models.MetricResult{res.Name: res}
		}
	}

	reports := make([]models.QualityReport, len(records))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, rec := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i] = a.score(rec, actx, pre[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analyzer: %w", err)
	}

	analysis := a.fold(reports, parseErrors, actx)
	analysis.DurationMs = time.Since(start).Milliseconds()
	return analysis, nil
}

func (a *Analyzer) uniquenessCalculator() metrics.Calculator {
	for _, calc := range a.calcs {
		if calc.Name() == metrics.NameUniqueness {
			return calc
		}
	}
	return nil
}

func (a *Analyzer) fold(reports []models.QualityReport, parseErrors int, actx *metrics.AnalysisContext) *models.Analysis {
	analysis := &models.Analysis{
		Timestamp:        time.Now().UTC(),
		Profile:          a.prof.Name,
		TotalRecords:     len(reports),
		ParseErrors:      parseErrors,
		MetricAverages:   map[string]float64{},
		TierDistribution: map[models.Tier]int{},
		IssueCounts:      map[string]int{},
		SeverityCounts:   map[models.Severity]int{},
	}

	scores := make([]float64, 0, len(reports))
	metricSums := map[string]float64{}
	categoryCounts := map[string]int{}
	sourceCounts := map[string]int{}

	for _, rep := range reports {
		scores = append(scores, rep.OverallScore)
		analysis.TierDistribution[rep.Tier]++

		if rep.Passed {
			analysis.ValidRecords++
		} else {
			analysis.InvalidRecords++
			if a.prof.FlaggedLimit == 0 || len(analysis.Flagged) < a.prof.FlaggedLimit {
				analysis.Flagged = append(analysis.Flagged, rep)
			}
		}

		for name, res := range rep.Metrics {
			metricSums[name] += res.Score
		}
		for _, iss := range rep.Issues {
			analysis.IssueCounts[iss.Metric]++
			analysis.SeverityCounts[iss.Severity]++
		}
		if cat := rep.Record.Category(); cat != "" {
			categoryCounts[cat]++
		}
		if src := rep.Record.SourceFile(); src != "" {
			sourceCounts[src]++
		}
	}

	if len(reports) > 0 {
		analysis.ValidityRate = float64(analysis.ValidRecords) / float64(len(reports))
		for name, sum := range metricSums {
			analysis.MetricAverages[name] = sum / float64(len(reports))
		}
	}

	lo, hi := statistics.MinMax(scores)
	ci := statistics.BootstrapCI(scores, 0.95, ciSeed)
	analysis.Scores = models.ScoreStats{
		Mean:    statistics.Mean(scores),
		StdDev:  statistics.StdDev(scores),
		Min:     lo,
		Max:     hi,
		CILower: ci.Lower,
		CIUpper: ci.Upper,
	}

	analysis.DuplicateQuestions = actx.Duplicates()
	analysis.TopCategories = topEntries(categoryCounts, topN)
	analysis.TopSourceFiles = topEntries(sourceCounts, topN)
	return analysis
}

// topEntries returns the n largest buckets, ties broken by name for
// deterministic output.
func topEntries(counts map[string]int, n int) []models.CountEntry {
	entries := make([]models.CountEntry, 0, len(counts))
	for name, count := range counts {
		entries = append(entries, models.CountEntry{Name: name, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Name < entries[j].Name
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
