// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package clean turns raw metadata rows into cleaned records. Cleaning is
// row-local and never aborts the run: rows that cannot be repaired (missing
// title, unparseable date, implausible year) are dropped and counted, and
// everything else is normalized and enriched with derived columns.
package clean

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// Defaults for CleaningConfig fields left zero.
const (
	DefaultAbstractFill = "No abstract available"
	DefaultJournalFill  = "Unknown"
	DefaultSourceFill   = "Unknown"
	DefaultMinYear      = 1900
)

// Cleaner applies the cleaning steps to raw records.
type Cleaner struct {
	cfg types.CleaningConfig
}

// New returns a Cleaner with defaults applied for unset config fields.
func New(cfg types.CleaningConfig) *Cleaner {
	if cfg.AbstractFill == "" {
		cfg.AbstractFill = DefaultAbstractFill
	}
	if cfg.JournalFill == "" {
		cfg.JournalFill = DefaultJournalFill
	}
	if cfg.SourceFill == "" {
		cfg.SourceFill = DefaultSourceFill
	}
	if cfg.MinYear == 0 {
		cfg.MinYear = DefaultMinYear
	}
	if cfg.MaxYear == 0 {
		cfg.MaxYear = time.Now().Year() + 1
	}
	return &Cleaner{cfg: cfg}
}

// Report records what cleaning did to the table.
type Report struct {
	RowsIn  int `json:"rows_in" yaml:"rows_in"`
	RowsOut int `json:"rows_out" yaml:"rows_out"`
	Dropped int `json:"dropped" yaml:"dropped"`

	DroppedNoTitle int `json:"dropped_no_title" yaml:"dropped_no_title"`
	DroppedNoDate  int `json:"dropped_no_date" yaml:"dropped_no_date"`
	DroppedBadYear int `json:"dropped_bad_year" yaml:"dropped_bad_year"`

	FilledAbstract int `json:"filled_abstract" yaml:"filled_abstract"`
	FilledJournal  int `json:"filled_journal" yaml:"filled_journal"`
	FilledSource   int `json:"filled_source" yaml:"filled_source"`

	Steps []string `json:"steps" yaml:"steps"`
}

// Clean processes raw rows into cleaned records and a report. The returned
// slice is never longer than the input.
func (c *Cleaner) Clean(raw []types.RawRecord) ([]types.Record, Report) {
	report := Report{RowsIn: len(raw)}
	records := make([]types.Record, 0, len(raw))

	for _, row := range raw {
		title := normalize(row.Title)
		if title == "" {
			report.DroppedNoTitle++
			continue
		}

		date, ok := ParseDate(row.PublishTime)
		if !ok {
			report.DroppedNoDate++
			continue
		}
		if date.Year() < c.cfg.MinYear || date.Year() > c.cfg.MaxYear {
			report.DroppedBadYear++
			continue
		}

		abstract := normalize(row.Abstract)
		hasAbstract := abstract != ""
		if !hasAbstract {
			abstract = c.cfg.AbstractFill
			report.FilledAbstract++
		}

		journal := normalize(row.Journal)
		if journal == "" {
			journal = c.cfg.JournalFill
			report.FilledJournal++
		}

		source := normalize(row.Source)
		if source == "" {
			source = c.cfg.SourceFill
			report.FilledSource++
		}

		abstractWords := 0
		if hasAbstract {
			abstractWords = len(strings.Fields(abstract))
		}

		records = append(records, types.Record{
			CordUID:           strings.TrimSpace(row.CordUID),
			Title:             title,
			Abstract:          abstract,
			Date:              date,
			Journal:           journal,
			Source:            source,
			DOI:               strings.TrimSpace(row.DOI),
			URL:               strings.TrimSpace(row.URL),
			Authors:           types.AuthorList(row.Authors),
			Year:              date.Year(),
			Month:             int(date.Month()),
			Quarter:           quarter(date.Month()),
			TitleWordCount:    len(strings.Fields(title)),
			AbstractWordCount: abstractWords,
			HasAbstract:       hasAbstract,
		})
	}

	report.RowsOut = len(records)
	report.Dropped = report.RowsIn - report.RowsOut
	report.Steps = []string{
		fmt.Sprintf("Removed %d rows with missing critical data (%d no title, %d no date, %d implausible year)",
			report.Dropped, report.DroppedNoTitle, report.DroppedNoDate, report.DroppedBadYear),
		"Parsed publish_time and derived publication year/month/quarter",
		fmt.Sprintf("Filled %d missing abstracts, %d journals, %d sources",
			report.FilledAbstract, report.FilledJournal, report.FilledSource),
		"Derived title and abstract word counts and has_abstract flag",
	}
	return records, report
}

// normalize collapses internal whitespace and trims the ends.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Write prints a cleaning summary in pipeline progress style.
func (r Report) Write(w io.Writer) {
	fmt.Fprintf(w, "Original data: %d rows\n", r.RowsIn)
	fmt.Fprintf(w, "After cleaning: %d rows\n", r.RowsOut)
	fmt.Fprintf(w, "Rows removed: %d\n\n", r.Dropped)
	for i, step := range r.Steps {
		fmt.Fprintf(w, "%d. %s\n", i+1, step)
	}
}

// Save writes the report as YAML to path.
func (r Report) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling cleaning report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing cleaning report: %w", err)
	}
	return nil
}
