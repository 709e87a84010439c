package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/banglastudy/dataqc/internal/analyzer"
	"github.com/banglastudy/dataqc/internal/dataset"
	"github.com/banglastudy/dataqc/internal/profile"
	"github.com/banglastudy/dataqc/internal/reporting"
)

func newAnalyzeCommand() *cobra.Command {
	var (
		profileName string
		outputPath  string
		junitPath   string
		contextPath string
		workers     int
		quiet       bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <dataset.ndjson>",
		Short: "Analyze a QA dataset against a quality profile",
		Long: `Analyze scores every record in an NDJSON dataset and prints a dataset
quality digest.

Each line of the dataset is one JSON object with "question", "answer", and
optionally "source_text" (or its alias "context") and "metadata". Malformed
lines are counted as parse errors and skipped, never fatal.

The profile may be a builtin name (production, strict, relaxed) or a path to
a profile YAML file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return analyzeCommandE(cmd, args[0], profileName, outputPath, junitPath, contextPath, workers, quiet)
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", profile.DefaultName, "Builtin profile name or profile YAML path")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output JSON file for the full analysis")
	cmd.Flags().StringVar(&junitPath, "junit", "", "Output JUnit XML file for CI ingestion")
	cmd.Flags().StringVar(&contextPath, "context", "", "Fallback source-context file (text or Markdown) for records without source_text")
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of concurrent scoring workers (default: 4)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the console summary")

	return cmd
}

func analyzeCommandE(cmd *cobra.Command, datasetPath, profileName, outputPath, junitPath, contextPath string, workers int, quiet bool) error {
	prof, err := profile.Resolve(profileName)
	if err != nil {
		return err
	}

	loaded, err := dataset.LoadFile(datasetPath)
	if err != nil {
		return err
	}
	slog.Debug("dataset loaded",
		"records", len(loaded.Records),
		"parse_errors", loaded.ParseErrors,
		"sentinels_skipped", loaded.SentinelsSkipped)

	if contextPath != "" {
		fallback, err := dataset.LoadContext(contextPath)
		if err != nil {
			return err
		}
		for i := range loaded.Records {
			if loaded.Records[i].SourceText == "" {
				loaded.Records[i].SourceText = fallback
			}
		}
	}

	var opts []analyzer.Option
	if workers > 0 {
		opts = append(opts, analyzer.WithWorkers(workers))
	}
	a, err := analyzer.New(prof, opts...)
	if err != nil {
		return err
	}

	analysis, err := a.Analyze(cmd.Context(), loaded.Records, loaded.ParseErrors)
	if err != nil {
		return err
	}

	if !quiet {
		fmt.Fprint(cmd.OutOrStdout(), reporting.FormatSummary(analysis)) //nolint:errcheck
	}
	if outputPath != "" {
		if err := reporting.WriteJSON(outputPath, analysis); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nAnalysis written to %s\n", outputPath) //nolint:errcheck
	}
	if junitPath != "" {
		if err := reporting.WriteJUnit(junitPath, analysis); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "JUnit report written to %s\n", junitPath) //nolint:errcheck
	}

	if analysis.InvalidRecords > 0 {
		return &GateFailureError{
			Message: fmt.Sprintf("%d of %d records failed the %s quality gate",
				analysis.InvalidRecords, analysis.TotalRecords, prof.Name),
		}
	}
	return nil
}
