package main

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/banglastudy/dataqc/internal/analyzer"
	"github.com/banglastudy/dataqc/internal/dataset"
	"github.com/banglastudy/dataqc/internal/models"
	"github.com/banglastudy/dataqc/internal/profile"
)

func newCheckCommand() *cobra.Command {
	var (
		profileName string
		question    string
		answer      string
		sourceText  string
		sourcePath  string
		category    string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Score a single question-answer pair",
		Long: `Check scores one QA pair against a quality profile and prints the
per-metric breakdown.

The source context can be given inline with --source or loaded from a file
with --source-file (Markdown files are reduced to plain text first).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkCommandE(cmd, profileName, question, answer, sourceText, sourcePath, category, format)
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", profile.DefaultName, "Builtin profile name or profile YAML path")
	cmd.Flags().StringVar(&question, "question", "", "Question text (required)")
	cmd.Flags().StringVar(&answer, "answer", "", "Answer text (required)")
	cmd.Flags().StringVar(&sourceText, "source", "", "Source context the answer should be grounded in")
	cmd.Flags().StringVar(&sourcePath, "source-file", "", "File to load the source context from")
	cmd.Flags().StringVar(&category, "category", "", "Question category (scholarship, fee, admission, ...)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json")
	_ = cmd.MarkFlagRequired("question")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}

func checkCommandE(cmd *cobra.Command, profileName, question, answer, sourceText, sourcePath, category, format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}

	prof, err := profile.Resolve(profileName)
	if err != nil {
		return err
	}

	if sourcePath != "" {
		loaded, err := dataset.LoadContext(sourcePath)
		if err != nil {
			return err
		}
		sourceText = loaded
	}

	rec := models.Record{
		Question:   question,
		Answer:     answer,
		SourceText: sourceText,
	}
	if category != "" {
		rec.Metadata = map[string]any{"category": category}
	}

	a, err := analyzer.New(prof)
	if err != nil {
		return err
	}
	rep := a.ScoreRecord(rec, nil)

	if format == "json" {
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data)) //nolint:errcheck
	} else {
		printCheckReport(cmd, prof.Name, rep)
	}

	if !rep.Passed {
		return &GateFailureError{
			Message: fmt.Sprintf("record failed the %s quality gate with %d issue(s)", prof.Name, len(rep.Issues)),
		}
	}
	return nil
}

//nolint:errcheck // display function, fmt.Fprintf errors to stdout are not actionable
func printCheckReport(cmd *cobra.Command, profileName string, rep models.QualityReport) {
	out := cmd.OutOrStdout()

	verdict := "PASS"
	if !rep.Passed {
		verdict = "FAIL"
	}
	fmt.Fprintf(out, "Profile: %s\n", profileName)
	fmt.Fprintf(out, "Overall: %.3f (%s) %s\n\n", rep.OverallScore, rep.Tier, verdict)

	names := make([]string, 0, len(rep.Metrics))
	for name := range rep.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		res := rep.Metrics[name]
		fmt.Fprintf(out, "  %-22s %.3f  %s\n", name, res.Score, res.Feedback)
	}

	if len(rep.Issues) > 0 {
		fmt.Fprintln(out, "\nIssues:")
		for _, iss := range rep.Issues {
			fmt.Fprintf(out, "  [%s] %s: %s\n", iss.Severity, iss.Metric, iss.Description)
		}
	}
}
