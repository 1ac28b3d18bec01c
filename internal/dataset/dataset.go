// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dataset reads and writes the metadata CSV files the pipeline works
// on: the raw CORD-19 metadata table and the cleaned table the cleaner emits.
// Columns are resolved by header name, so column order and extra columns in
// the source file do not matter.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// requiredColumns must be present in the raw header for the file to be
// treated as a CORD-19 metadata table.
var requiredColumns = []string{"title", "publish_time"}

// dateLayout is the date format used in the cleaned CSV.
const dateLayout = "2006-01-02"

// headerIndex builds a name → column index map from a CSV header row.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(strings.ToLower(name))] = i
	}
	return idx
}

// field returns row[i] for the named column, or "" when the column is absent
// or the row is short.
func field(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// ReadRaw reads the raw CORD-19 metadata CSV at path. A missing file or an
// unreadable CSV is a fatal error; individual rows are never rejected here —
// row-level validation belongs to the cleaner.
func ReadRaw(path string) ([]types.RawRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening metadata CSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	idx := headerIndex(header)
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("metadata CSV missing required column %q", name)
		}
	}

	var records []types.RawRecord
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		records = append(records, types.RawRecord{
			CordUID:     field(row, idx, "cord_uid"),
			Source:      field(row, idx, "source_x"),
			Title:       field(row, idx, "title"),
			DOI:         field(row, idx, "doi"),
			License:     field(row, idx, "license"),
			Abstract:    field(row, idx, "abstract"),
			PublishTime: field(row, idx, "publish_time"),
			Authors:     field(row, idx, "authors"),
			Journal:     field(row, idx, "journal"),
			URL:         field(row, idx, "url"),
		})
	}
	return records, nil
}

// cleanedHeader is the column set of the cleaned CSV, in write order.
var cleanedHeader = []string{
	"cord_uid", "title", "abstract", "publish_time", "journal", "source",
	"doi", "url", "authors", "publication_year", "publication_month",
	"publication_quarter", "title_word_count", "abstract_word_count",
	"has_abstract",
}

// WriteCleaned writes cleaned records to path as CSV.
func WriteCleaned(path string, records []types.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating cleaned CSV: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(cleanedHeader); err != nil {
		return fmt.Errorf("writing cleaned CSV header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.CordUID,
			rec.Title,
			rec.Abstract,
			rec.Date.Format(dateLayout),
			rec.Journal,
			rec.Source,
			rec.DOI,
			rec.URL,
			strings.Join(rec.Authors, "; "),
			strconv.Itoa(rec.Year),
			strconv.Itoa(rec.Month),
			strconv.Itoa(rec.Quarter),
			strconv.Itoa(rec.TitleWordCount),
			strconv.Itoa(rec.AbstractWordCount),
			strconv.FormatBool(rec.HasAbstract),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing cleaned CSV row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing cleaned CSV: %w", err)
	}
	return nil
}

// ReadCleaned reads a cleaned CSV back into records. The file is produced by
// WriteCleaned, so malformed rows indicate a corrupt file and are an error.
func ReadCleaned(path string) ([]types.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cleaned CSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading cleaned CSV header: %w", err)
	}
	idx := headerIndex(header)

	var records []types.Record
	line := 1
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading cleaned CSV row: %w", err)
		}
		rec, err := parseCleanedRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("cleaned CSV line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseCleanedRow(row []string, idx map[string]int) (types.Record, error) {
	date, err := time.Parse(dateLayout, field(row, idx, "publish_time"))
	if err != nil {
		return types.Record{}, fmt.Errorf("parsing publish_time: %w", err)
	}

	ints := map[string]int{}
	for _, name := range []string{
		"publication_year", "publication_month", "publication_quarter",
		"title_word_count", "abstract_word_count",
	} {
		v, err := strconv.Atoi(field(row, idx, name))
		if err != nil {
			return types.Record{}, fmt.Errorf("parsing %s: %w", name, err)
		}
		ints[name] = v
	}

	return types.Record{
		CordUID:           field(row, idx, "cord_uid"),
		Title:             field(row, idx, "title"),
		Abstract:          field(row, idx, "abstract"),
		Date:              date,
		Journal:           field(row, idx, "journal"),
		Source:            field(row, idx, "source"),
		DOI:               field(row, idx, "doi"),
		URL:               field(row, idx, "url"),
		Authors:           types.AuthorList(field(row, idx, "authors")),
		Year:              ints["publication_year"],
		Month:             ints["publication_month"],
		Quarter:           ints["publication_quarter"],
		TitleWordCount:    ints["title_word_count"],
		AbstractWordCount: ints["abstract_word_count"],
		HasAbstract:       field(row, idx, "has_abstract") == "true",
	}, nil
}
