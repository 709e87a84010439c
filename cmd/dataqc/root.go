package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dataqc",
		Short: "dataqc - quality scoring and validation for QA training data",
		Long: `dataqc scores synthetic question-answer training pairs against a quality
profile and gates which records are fit for training.

It reads NDJSON datasets, computes per-record quality metrics (extractive
grounding, hallucination markers, semantic alignment, uniqueness and more),
and produces dataset-level reports in JSON, JUnit XML, and console form.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newAnalyzeCommand())
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newProfilesCommand())
	cmd.AddCommand(newInitCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
