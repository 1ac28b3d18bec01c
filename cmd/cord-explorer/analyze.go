// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cord-explorer/internal/analyze"
	"github.com/pdiddy/cord-explorer/internal/charts"
	"github.com/pdiddy/cord-explorer/internal/dataset"
	"github.com/pdiddy/cord-explorer/internal/exporter"
	"github.com/pdiddy/cord-explorer/internal/store"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute aggregates and render charts from the cleaned table",
	Long: `Analyze reads the cleaned CSV, computes publication counts by year,
journal and source rankings, a title word-frequency table, and abstract-length
statistics, and renders each as a PNG chart. Optionally it ingests the cleaned
records into a SQLite database and exports the aggregate tables to an xlsx
workbook.`,
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input := setting(cmd, "input", "dataset.cleaned_path")
	chartsDir := setting(cmd, "charts-dir", "analysis.charts_dir")
	dbPath := setting(cmd, "db", "analysis.db_path")
	workbookPath := setting(cmd, "workbook", "analysis.workbook_path")
	topJournals := intSetting(cmd, "top-journals", "analysis.top_journals")
	topWords := intSetting(cmd, "top-words", "analysis.top_words")
	topSources := intSetting(cmd, "top-sources", "analysis.top_sources")
	bins := intSetting(cmd, "bins", "analysis.histogram_bins")
	stopwords := viper.GetStringSlice("analysis.stopwords")

	records, err := dataset.ReadCleaned(input)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Loaded %d cleaned records from %s\n", len(records), input)

	tables := exporter.Tables{
		Summary:   analyze.Summarize(records),
		Years:     analyze.CountByYear(records),
		Journals:  analyze.TopJournals(records, topJournals),
		Sources:   analyze.TopSources(records, topSources),
		Words:     analyze.WordFrequencies(records, topWords, stopwords),
		Abstracts: analyze.AbstractLengthStats(records, bins),
	}

	if err := renderCharts(chartsDir, tables); err != nil {
		return err
	}

	if dbPath != "" {
		s, err := store.Open(dbPath)
		if err != nil {
			return err
		}
		defer s.Close()
		ctx := context.Background()
		if err := s.Ingest(ctx, records, os.Stdout); err != nil {
			return err
		}
		stored, err := s.Count(ctx, analyze.Filter{})
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Database %s now holds %d papers\n", dbPath, stored)
	}

	if workbookPath != "" {
		if err := exporter.WriteWorkbook(workbookPath, tables); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote workbook to %s\n", workbookPath)
	}

	printFindings(tables)
	return nil
}

// renderCharts writes one PNG per non-empty aggregate into dir.
func renderCharts(dir string, t exporter.Tables) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating charts directory: %w", err)
	}
	r := charts.NewRenderer()

	renders := []struct {
		file   string
		render func(f *os.File) error
	}{
		{"publications_over_time.png", func(f *os.File) error { return r.PublicationsOverTime(f, t.Years) }},
		{"top_journals.png", func(f *os.File) error { return r.TopJournals(f, t.Journals) }},
		{"title_words.png", func(f *os.File) error { return r.TitleWords(f, t.Words) }},
		{"source_distribution.png", func(f *os.File) error { return r.SourceBreakdown(f, t.Sources) }},
		{"abstract_lengths.png", func(f *os.File) error { return r.AbstractLengths(f, t.Abstracts) }},
	}

	for _, c := range renders {
		path := filepath.Join(dir, c.file)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		err = c.render(f)
		f.Close()
		if errors.Is(err, charts.ErrNoData) {
			os.Remove(path)
			fmt.Fprintf(os.Stdout, "skipped: %s (no data)\n", c.file)
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "wrote:   %s\n", path)
	}
	return nil
}

func printFindings(t exporter.Tables) {
	fmt.Fprintln(os.Stdout, "\nKey findings:")
	fmt.Fprintf(os.Stdout, "  Total papers: %d\n", t.Summary.Total)
	if t.Summary.Total == 0 {
		return
	}
	fmt.Fprintf(os.Stdout, "  Date range: %d-%d\n", t.Summary.MinYear, t.Summary.MaxYear)
	fmt.Fprintf(os.Stdout, "  Peak year: %d with %d papers\n", t.Summary.PeakYear, t.Summary.PeakYearCount)
	if len(t.Journals) > 0 {
		fmt.Fprintf(os.Stdout, "  Top journal: %s with %d papers\n", t.Journals[0].Label, t.Journals[0].Count)
	}
	if len(t.Sources) > 0 {
		fmt.Fprintf(os.Stdout, "  Top source: %s with %d papers\n", t.Sources[0].Label, t.Sources[0].Count)
	}
	if t.Abstracts.Papers > 0 {
		fmt.Fprintf(os.Stdout, "  Abstract length: mean %.1f, median %.1f words\n",
			t.Abstracts.Mean, t.Abstracts.Median)
	}
}

func init() {
	analyzeCmd.Flags().String("input", "", "cleaned CSV path")
	analyzeCmd.Flags().String("charts-dir", "", "directory for chart PNGs")
	analyzeCmd.Flags().String("db", "", "SQLite database to ingest cleaned records into")
	analyzeCmd.Flags().String("workbook", "", "xlsx workbook path for aggregate tables")
	analyzeCmd.Flags().Int("top-journals", 15, "journals to keep in the ranking")
	analyzeCmd.Flags().Int("top-words", 25, "title words to keep in the frequency table")
	analyzeCmd.Flags().Int("top-sources", 10, "sources to keep in the breakdown")
	analyzeCmd.Flags().Int("bins", 30, "abstract-length histogram bins")

	rootCmd.AddCommand(analyzeCmd)
}
