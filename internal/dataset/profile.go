// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// ColumnStat reports missing-value counts for one column of the raw table.
type ColumnStat struct {
	Column  string  `json:"column" yaml:"column"`
	Missing int     `json:"missing" yaml:"missing"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// Profile summarizes the raw table: dimensions and per-column missing values.
type Profile struct {
	Rows    int          `json:"rows" yaml:"rows"`
	Columns []ColumnStat `json:"columns" yaml:"columns"`
}

// columnGetters pairs each profiled column with its accessor, in the raw
// column order.
var columnGetters = []struct {
	name string
	get  func(types.RawRecord) string
}{
	{"cord_uid", func(r types.RawRecord) string { return r.CordUID }},
	{"source_x", func(r types.RawRecord) string { return r.Source }},
	{"title", func(r types.RawRecord) string { return r.Title }},
	{"doi", func(r types.RawRecord) string { return r.DOI }},
	{"license", func(r types.RawRecord) string { return r.License }},
	{"abstract", func(r types.RawRecord) string { return r.Abstract }},
	{"publish_time", func(r types.RawRecord) string { return r.PublishTime }},
	{"authors", func(r types.RawRecord) string { return r.Authors }},
	{"journal", func(r types.RawRecord) string { return r.Journal }},
	{"url", func(r types.RawRecord) string { return r.URL }},
}

// Profiled computes the missing-value profile of the raw table.
func Profiled(records []types.RawRecord) Profile {
	p := Profile{Rows: len(records)}
	for _, col := range columnGetters {
		missing := 0
		for _, rec := range records {
			if strings.TrimSpace(col.get(rec)) == "" {
				missing++
			}
		}
		pct := 0.0
		if len(records) > 0 {
			pct = float64(missing) / float64(len(records)) * 100
		}
		p.Columns = append(p.Columns, ColumnStat{Column: col.name, Missing: missing, Percent: pct})
	}
	return p
}

// MissingOnly returns the columns that have missing values, worst first.
func (p Profile) MissingOnly() []ColumnStat {
	var out []ColumnStat
	for _, c := range p.Columns {
		if c.Missing > 0 {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Percent > out[j].Percent })
	return out
}

// Write prints the profile as a table.
func (p Profile) Write(w io.Writer) {
	fmt.Fprintf(w, "Rows: %d  Columns: %d\n\n", p.Rows, len(p.Columns))

	missing := p.MissingOnly()
	if len(missing) == 0 {
		fmt.Fprintln(w, "No missing values.")
		return
	}

	fmt.Fprintf(w, "%-16s  %10s  %8s\n", "Column", "Missing", "Percent")
	fmt.Fprintln(w, strings.Repeat("-", 38))
	for _, c := range missing {
		fmt.Fprintf(w, "%-16s  %10d  %7.1f%%\n", c.Column, c.Missing, c.Percent)
	}
}
