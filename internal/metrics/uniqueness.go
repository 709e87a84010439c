package metrics

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"unicode"

	"github.com/banglastudy/dataqc/internal/models"
	"github.com/banglastudy/dataqc/internal/textutil"
)

// AnalysisContext is the one piece of cross-record state in a scoring run:
// the index of questions already seen, used by the uniqueness metric. Create
// one per analysis run and pass it into every per-record scoring call.
//
// Check-and-insert is serialized by an internal mutex, so a context may be
// shared across workers; the analyzer nevertheless runs uniqueness in a
// sequential pre-pass to keep duplicate attribution order-deterministic.
type AnalysisContext struct {
	mu       sync.Mutex
	seen     map[string]struct{}
	seenSets []map[string]struct{}
	rng      *rand.Rand

	duplicates int
}

// NewAnalysisContext creates an empty context. A non-zero seed enables
// seeded score jitter in the uniqueness specificity heuristic; zero disables
// jitter entirely, which is the reproducible default.
func NewAnalysisContext(seed int64) *AnalysisContext {
	ctx := &AnalysisContext{seen: map[string]struct{}{}}
	if seed != 0 {
		ctx.rng = rand.New(rand.NewSource(seed))
	}
	return ctx
}

// observe registers a normalized question and reports whether it was an
// exact duplicate, plus the highest Jaccard similarity against previously
// seen questions.
func (a *AnalysisContext) observe(norm string, words map[string]struct{}) (dup bool, maxSim float64) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, ok := a.seen[norm]; ok {
		a.duplicates++
		return true, 1.0
	}
	for _, prev := range a.seenSets {
		if sim := textutil.Jaccard(words, prev); sim > maxSim {
			maxSim = sim
		}
	}
	a.seen[norm] = struct{}{}
	a.seenSets = append(a.seenSets, words)
	return false, maxSim
}

func (a *AnalysisContext) jitter(max float64) float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.rng == nil {
		return 0.0
	}
	return (a.rng.Float64()*2 - 1) * max
}

// Duplicates returns the number of exact duplicate questions observed.
func (a *AnalysisContext) Duplicates() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.duplicates
}

// UniquenessArgs configures the uniqueness calculator.
type UniquenessArgs struct {
	// DuplicateScore is assigned to an exact (case/whitespace-insensitive)
	// duplicate of a previously seen question.
	DuplicateScore float64 `mapstructure:"duplicate_score"`
	// SimilarityThreshold is the Jaccard similarity above which a question
	// counts as a near-duplicate.
	SimilarityThreshold float64 `mapstructure:"similarity_threshold"`
	// NearDuplicateScore is assigned to near-duplicates.
	NearDuplicateScore float64 `mapstructure:"near_duplicate_score"`
}

// specificityKeywords are domain terms whose presence makes a question more
// specific and therefore more valuable in a training set.
var specificityKeywords = []string{
	"university", "scholarship", "fee", "admission", "visa", "hostel",
	"btech", "mbbs", "bba", "cse", "engineering",
}

// uniquenessCalculator scores question novelty within the current run. It is
// the only stateful metric: without an AnalysisContext it degrades to the
// stateless specificity heuristic.
type uniquenessCalculator struct {
	args UniquenessArgs
}

// NewUniqueness creates the uniqueness calculator.
func NewUniqueness(args UniquenessArgs) Calculator { return uniquenessCalculator{args: args} }

func (uniquenessCalculator) Name() string { return NameUniqueness }

func (c uniquenessCalculator) Compute(rc *Context) models.MetricResult {
	return guard(NameUniqueness, 1.0, func() models.MetricResult {
		norm := textutil.Normalize(rc.Question)
		words := textutil.WordSet(rc.Question)

		if rc.Analysis != nil {
			dup, maxSim := rc.Analysis.observe(norm, words)
			if dup {
				return models.MetricResult{
					Name:     NameUniqueness,
					Score:    c.args.DuplicateScore,
					Feedback: "exact duplicate of a previously seen question",
					Details:  map[string]any{"duplicate": true},
				}
			}
			if maxSim > c.args.SimilarityThreshold {
				return models.MetricResult{
					Name:     NameUniqueness,
					Score:    c.args.NearDuplicateScore,
					Feedback: fmt.Sprintf("near-duplicate question (similarity %.2f)", maxSim),
					Details:  map[string]any{"similarity": maxSim},
				}
			}
		}

		score := c.specificity(rc.Question)
		if rc.metaString("university") != "" {
			score += 0.03
		}
		if rc.Analysis != nil {
			score += rc.Analysis.jitter(0.05)
		}
		if score > 1.0 {
			score = 1.0
		}
		if score < 0.0 {
			score = 0.0
		}

		return models.MetricResult{
			Name:     NameUniqueness,
			Score:    score,
			Feedback: "question not seen before in this run",
		}
	})
}

// specificity estimates lexical specificity: a 0.6 base plus small bonuses
// for proper nouns (capitalized non-leading words in the raw question) and
// domain keywords, capped at 0.95. A university metadata tag adds a further
// small bonus before jitter.
func (c uniquenessCalculator) specificity(question string) float64 {
	score := 0.6

	fields := strings.Fields(question)
	for i, f := range fields {
		if i == 0 {
			continue
		}
		r := []rune(f)
		if len(r) > 1 && unicode.IsUpper(r[0]) && unicode.IsLower(r[1]) {
			score += 0.05
		}
	}

	words := textutil.WordSet(question)
	for _, kw := range specificityKeywords {
		if _, ok := words[kw]; ok {
			score += 0.03
		}
	}

	if score > 0.95 {
		score = 0.95
	}
	return score
}
