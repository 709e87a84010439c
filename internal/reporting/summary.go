package reporting

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/banglastudy/dataqc/internal/models"
)

// numPrinter formats counts with thousands separators.
var numPrinter = message.NewPrinter(language.English)

// InterpretScore returns a plain-language label for a numeric score (0 to 1).
func InterpretScore(score float64) string {
	pct := score * 100
	switch {
	case pct >= 90:
		return "Excellent (>=90%)"
	case pct >= 70:
		return "Good (70-90%)"
	case pct >= 50:
		return "Needs Work (50-70%)"
	default:
		return "Poor (<50%)"
	}
}

// InterpretValidityRate explains a validity rate (0 to 1) in plain words.
func InterpretValidityRate(rate float64) string {
	pct := rate * 100
	switch {
	case pct >= 100:
		return fmt.Sprintf("All records passed (%.0f%%)", pct)
	case pct >= 80:
		return fmt.Sprintf("Most records passed (%.0f%%)", pct)
	case pct >= 50:
		return fmt.Sprintf("About half the records passed (%.0f%%)", pct)
	default:
		return fmt.Sprintf("Few records passed (%.0f%%)", pct)
	}
}

// tierOrder fixes the display order of quality tiers.
var tierOrder = []models.Tier{models.TierExcellent, models.TierGood, models.TierFair, models.TierPoor}

// FormatSummary produces the console summary for an analysis run.
func FormatSummary(analysis *models.Analysis) string {
	var b strings.Builder

	b.WriteString("=== Dataset Quality Summary ===\n\n")
	b.WriteString(fmt.Sprintf("Profile:       %s\n", analysis.Profile))
	b.WriteString(numPrinter.Sprintf("Records:       %d total, %d valid, %d invalid, %d parse errors\n",
		analysis.TotalRecords, analysis.ValidRecords, analysis.InvalidRecords, analysis.ParseErrors))
	b.WriteString(fmt.Sprintf("Validity:      %s\n", InterpretValidityRate(analysis.ValidityRate)))
	b.WriteString(fmt.Sprintf("Mean Score:    %.3f, %s (95%% CI %.3f to %.3f)\n",
		analysis.Scores.Mean, InterpretScore(analysis.Scores.Mean), analysis.Scores.CILower, analysis.Scores.CIUpper))
	if analysis.DuplicateQuestions > 0 {
		b.WriteString(numPrinter.Sprintf("Duplicates:    %d exact duplicate questions\n", analysis.DuplicateQuestions))
	}
	b.WriteString(fmt.Sprintf("Duration:      %v\n", time.Duration(analysis.DurationMs)*time.Millisecond))

	b.WriteString("\nQuality Tiers:\n")
	for _, tier := range tierOrder {
		count := analysis.TierDistribution[tier]
		b.WriteString(fmt.Sprintf("  %s %s\n", padCell(string(tier), 10), bar(count, analysis.TotalRecords)))
	}

	if len(analysis.IssueCounts) > 0 {
		b.WriteString("\nTop Issues:\n")
		for _, entry := range sortedCounts(analysis.IssueCounts) {
			b.WriteString(numPrinter.Sprintf("  %s %d\n", padCell(entry.Name, 20), entry.Count))
		}
	}

	if len(analysis.MetricAverages) > 0 {
		b.WriteString("\nMetric Averages:\n")
		names := make([]string, 0, len(analysis.MetricAverages))
		for name := range analysis.MetricAverages {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			b.WriteString(fmt.Sprintf("  %s %.3f\n", padCell(name, 20), analysis.MetricAverages[name]))
		}
	}

	if len(analysis.TopCategories) > 0 {
		b.WriteString("\nTop Categories:\n")
		for _, entry := range analysis.TopCategories {
			b.WriteString(numPrinter.Sprintf("  %s %d\n", padCell(entry.Name, 20), entry.Count))
		}
	}

	return b.String()
}

// padCell pads a table cell to the given display width, handling wide runes
// (Bengali question text shows up in category names).
func padCell(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// bar renders a proportional count bar sized to the terminal.
func bar(count, total int) string {
	if total == 0 {
		return "0"
	}
	maxBar := terminalWidth() - 30
	if maxBar < 10 {
		maxBar = 10
	}
	n := count * maxBar / total
	return fmt.Sprintf("%s %d", strings.Repeat("█", n), count)
}

func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func sortedCounts(counts map[string]int) []models.CountEntry {
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
	return entries
}
