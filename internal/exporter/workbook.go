// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package exporter writes the analysis aggregates into an xlsx workbook,
// one sheet per aggregate, for spreadsheet consumers.
package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/cord-explorer/internal/analyze"
)

// Tables bundles the aggregates a workbook export contains.
type Tables struct {
	Summary   analyze.Summary
	Years     []analyze.YearCount
	Journals  []analyze.LabelCount
	Sources   []analyze.LabelCount
	Words     []analyze.LabelCount
	Abstracts analyze.LengthStats
}

// WriteWorkbook writes the aggregate tables to an xlsx file at path.
func WriteWorkbook(path string, t Tables) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}

	if err := writeSummarySheet(f, header, t.Summary); err != nil {
		return err
	}

	sheets := []struct {
		name   string
		label  string
		counts []analyze.LabelCount
	}{
		{"Journals", "Journal", t.Journals},
		{"Sources", "Source", t.Sources},
		{"Title Words", "Word", t.Words},
	}

	if err := writeYearSheet(f, header, t.Years); err != nil {
		return err
	}
	for _, s := range sheets {
		if err := writeCountSheet(f, header, s.name, s.label, s.counts); err != nil {
			return err
		}
	}
	if err := writeAbstractSheet(f, header, t.Abstracts); err != nil {
		return err
	}

	// The default sheet excelize creates is replaced by Summary.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, header int, s analyze.Summary) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}

	rows := []struct {
		label string
		value any
	}{
		{"Total papers", s.Total},
		{"Papers with abstracts", s.WithAbstract},
		{"Abstract coverage (%)", s.AbstractPercent},
		{"First year", s.MinYear},
		{"Last year", s.MaxYear},
		{"Peak year", s.PeakYear},
		{"Peak year papers", s.PeakYearCount},
		{"Distinct journals", s.Journals},
		{"Mean abstract length (words)", s.MeanAbstractLen},
		{"Mean title length (words)", s.MeanTitleLen},
	}

	if err := setHeader(f, sheet, header, "Metric", "Value"); err != nil {
		return err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row.label, row.value); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "A", 32)
}

func writeYearSheet(f *excelize.File, header int, years []analyze.YearCount) error {
	const sheet = "Years"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}
	if err := setHeader(f, sheet, header, "Year", "Papers"); err != nil {
		return err
	}
	for i, yc := range years {
		if err := setRow(f, sheet, i+2, yc.Year, yc.Count); err != nil {
			return err
		}
	}
	return nil
}

func writeCountSheet(f *excelize.File, header int, sheet, label string, counts []analyze.LabelCount) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}
	if err := setHeader(f, sheet, header, label, "Papers"); err != nil {
		return err
	}
	for i, lc := range counts {
		if err := setRow(f, sheet, i+2, lc.Label, lc.Count); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "A", "A", 40)
}

func writeAbstractSheet(f *excelize.File, header int, stats analyze.LengthStats) error {
	const sheet = "Abstract Lengths"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}
	if err := setHeader(f, sheet, header, "Word count range", "Papers"); err != nil {
		return err
	}
	for i, b := range stats.Bins {
		rangeLabel := fmt.Sprintf("%d-%d", b.Lo, b.Hi)
		if err := setRow(f, sheet, i+2, rangeLabel, b.Count); err != nil {
			return err
		}
	}
	return nil
}

func setHeader(f *excelize.File, sheet string, style int, a, b string) error {
	if err := setRow(f, sheet, 1, a, b); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", style); err != nil {
		return fmt.Errorf("styling header of %s: %w", sheet, err)
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, a, b any) error {
	cellA, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("computing cell name: %w", err)
	}
	cellB, err := excelize.CoordinatesToCellName(2, row)
	if err != nil {
		return fmt.Errorf("computing cell name: %w", err)
	}
	if err := f.SetCellValue(sheet, cellA, a); err != nil {
		return fmt.Errorf("writing %s!%s: %w", sheet, cellA, err)
	}
	if err := f.SetCellValue(sheet, cellB, b); err != nil {
		return fmt.Errorf("writing %s!%s: %w", sheet, cellB, err)
	}
	return nil
}
