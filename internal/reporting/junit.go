package reporting

import (
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/banglastudy/dataqc/internal/models"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	Errors     int              `xml:"errors,attr"`
	Time       float64          `xml:"time,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one analysis run.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Errors     int             `xml:"errors,attr"`
	Time       float64         `xml:"time,attr"`
	Timestamp  string          `xml:"timestamp,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one flagged record (passing records are summarized,
// not enumerated, to keep the file usable on large datasets).
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
}

// JUnitFailure represents a rejected record's issue list.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitProperty is a key-value metadata entry.
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ConvertToJUnit converts an Analysis to JUnit XML format. Each flagged
// record becomes a failed testcase; parse errors count as suite errors.
func ConvertToJUnit(analysis *models.Analysis) *JUnitTestSuites {
	durationSec := float64(analysis.DurationMs) / 1000.0

	suite := JUnitTestSuite{
		Name:      "dataqc-" + analysis.Profile,
		Tests:     analysis.TotalRecords,
		Failures:  analysis.InvalidRecords,
		Errors:    analysis.ParseErrors,
		Time:      durationSec,
		Timestamp: analysis.Timestamp.Format(time.RFC3339),
		Properties: []JUnitProperty{
			{Name: "profile", Value: analysis.Profile},
			{Name: "validity_rate", Value: fmt.Sprintf("%.4f", analysis.ValidityRate)},
			{Name: "mean_score", Value: fmt.Sprintf("%.4f", analysis.Scores.Mean)},
			{Name: "duplicate_questions", Value: fmt.Sprintf("%d", analysis.DuplicateQuestions)},
		},
	}

	for _, rep := range analysis.Flagged {
		suite.TestCases = append(suite.TestCases, convertFlagged(analysis.Profile, rep))
	}

	return &JUnitTestSuites{
		Tests:      analysis.TotalRecords,
		Failures:   analysis.InvalidRecords,
		Errors:     analysis.ParseErrors,
		Time:       durationSec,
		TestSuites: []JUnitTestSuite{suite},
	}
}

func convertFlagged(profileName string, rep models.QualityReport) JUnitTestCase {
	tc := JUnitTestCase{
		Name:      truncate(rep.Record.Question, 120),
		Classname: profileName,
	}

	var lines []string
	for _, iss := range rep.Issues {
		line := fmt.Sprintf("[%s] %s: %s", iss.Severity, iss.Metric, iss.Description)
		if iss.Expected != "" {
			line += fmt.Sprintf(" (expected %s, got %s)", iss.Expected, iss.Actual)
		}
		lines = append(lines, line)
	}

	tc.Failure = &JUnitFailure{
		Message: fmt.Sprintf("%d issue(s), overall score %.2f (%s)", len(rep.Issues), rep.OverallScore, rep.Tier),
		Type:    "QualityGateFailure",
		Body:    strings.Join(lines, "\n"),
	}
	return tc
}

// WriteJUnit renders the analysis as JUnit XML to the given path.
func WriteJUnit(path string, analysis *models.Analysis) error {
	suites := ConvertToJUnit(analysis)
	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return fmt.Errorf("reporting: marshaling junit: %w", err)
	}
	out := []byte(xml.Header + string(data) + "\n")
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("reporting: writing %s: %w", path, err)
	}
	return nil
}

// truncate shortens s to n runes. Counting runes, not bytes, keeps
// multibyte question text (Bengali script) from being split mid-sequence.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
