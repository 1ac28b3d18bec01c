// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pdiddy/cord-explorer/internal/analyze"
)

func testTables() Tables {
	return Tables{
		Summary: analyze.Summary{
			Total:        3,
			WithAbstract: 2,
			MinYear:      2019,
			MaxYear:      2021,
			PeakYear:     2020,
			Journals:     2,
		},
		Years: []analyze.YearCount{
			{Year: 2019, Count: 1},
			{Year: 2020, Count: 2},
		},
		Journals: []analyze.LabelCount{{Label: "Nature", Count: 2}, {Label: "BMJ", Count: 1}},
		Sources:  []analyze.LabelCount{{Label: "PMC", Count: 3}},
		Words:    []analyze.LabelCount{{Label: "transmission", Count: 5}},
		Abstracts: analyze.LengthStats{
			Papers: 2,
			Bins:   []analyze.Bin{{Lo: 0, Hi: 100, Count: 2}},
		},
	}
}

func TestWriteWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aggregates.xlsx")
	require.NoError(t, WriteWorkbook(path, testTables()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	for _, want := range []string{"Summary", "Years", "Journals", "Sources", "Title Words", "Abstract Lengths"} {
		assert.Contains(t, sheets, want)
	}
	assert.NotContains(t, sheets, "Sheet1", "default sheet should be removed")

	year, err := f.GetCellValue("Years", "A2")
	require.NoError(t, err)
	assert.Equal(t, "2019", year)

	count, err := f.GetCellValue("Years", "B3")
	require.NoError(t, err)
	assert.Equal(t, "2", count)

	journal, err := f.GetCellValue("Journals", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Nature", journal)

	metric, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Metric", metric)
}

func TestWriteWorkbookEmptyTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteWorkbook(path, Tables{}))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	// Sheets exist with headers only.
	header, err := f.GetCellValue("Years", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Year", header)

	row2, err := f.GetCellValue("Years", "A2")
	require.NoError(t, err)
	assert.Empty(t, row2)
}
