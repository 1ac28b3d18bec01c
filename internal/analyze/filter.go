// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import "github.com/pdiddy/cord-explorer/pkg/types"

// AbstractFilter selects records by abstract availability.
type AbstractFilter string

const (
	AbstractAll     AbstractFilter = "all"
	AbstractWith    AbstractFilter = "with"
	AbstractWithout AbstractFilter = "without"
)

// Filter narrows the cleaned table for a dashboard view. Zero values mean
// "no restriction" for each field.
type Filter struct {
	// YearFrom and YearTo bound the publication year, inclusive. Zero
	// disables the respective bound.
	YearFrom int `json:"year_from"`
	YearTo   int `json:"year_to"`

	// Journals, when non-empty, keeps only records from these journals.
	Journals []string `json:"journals,omitempty"`

	// Abstract selects by abstract availability. Empty means AbstractAll.
	Abstract AbstractFilter `json:"abstract,omitempty"`
}

// Match reports whether rec passes the filter.
func (f Filter) Match(rec types.Record) bool {
	if f.YearFrom != 0 && rec.Year < f.YearFrom {
		return false
	}
	if f.YearTo != 0 && rec.Year > f.YearTo {
		return false
	}
	if len(f.Journals) > 0 {
		found := false
		for _, j := range f.Journals {
			if rec.Journal == j {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	switch f.Abstract {
	case AbstractWith:
		return rec.HasAbstract
	case AbstractWithout:
		return !rec.HasAbstract
	}
	return true
}

// Apply returns the records that pass the filter. The input is not modified.
func (f Filter) Apply(records []types.Record) []types.Record {
	out := make([]types.Record, 0, len(records))
	for _, rec := range records {
		if f.Match(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// IsZero reports whether the filter restricts nothing.
func (f Filter) IsZero() bool {
	return f.YearFrom == 0 && f.YearTo == 0 && len(f.Journals) == 0 &&
		(f.Abstract == "" || f.Abstract == AbstractAll)
}
