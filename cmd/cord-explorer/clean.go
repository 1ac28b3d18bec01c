// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cord-explorer/internal/clean"
	"github.com/pdiddy/cord-explorer/internal/dataset"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean the raw metadata into an analysis-ready table",
	Long: `Clean reads the raw metadata CSV, drops rows without a title or a
parseable publication date, fills missing abstracts and journals, derives
publication year/month/quarter and word-count columns, and writes the cleaned
CSV plus a YAML cleaning report. Malformed rows are dropped and counted, never
fatal.`,
	RunE: runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	input := setting(cmd, "input", "dataset.metadata_path")
	output := setting(cmd, "output", "dataset.cleaned_path")
	reportPath := setting(cmd, "report", "cleaning.report_path")

	raw, err := dataset.ReadRaw(input)
	if err != nil {
		return err
	}

	cfg := types.CleaningConfig{
		AbstractFill: viper.GetString("cleaning.abstract_fill"),
		JournalFill:  viper.GetString("cleaning.journal_fill"),
		SourceFill:   viper.GetString("cleaning.source_fill"),
		MinYear:      viper.GetInt("cleaning.min_year"),
		MaxYear:      viper.GetInt("cleaning.max_year"),
	}

	records, report := clean.New(cfg).Clean(raw)
	report.Write(os.Stdout)

	if err := dataset.WriteCleaned(output, records); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "\nWrote %d cleaned records to %s\n", len(records), output)

	if reportPath != "" {
		if err := report.Save(reportPath); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote cleaning report to %s\n", reportPath)
	}
	return nil
}

func init() {
	cleanCmd.Flags().String("input", "", "raw metadata CSV path")
	cleanCmd.Flags().String("output", "", "cleaned CSV path")
	cleanCmd.Flags().String("report", "", "YAML cleaning report path (empty disables)")

	rootCmd.AddCommand(cleanCmd)
}
