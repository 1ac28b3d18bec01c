// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze computes the descriptive aggregates the charts and the
// dashboard are built from. All functions are pure: they take a slice of
// cleaned records and return value types, so each dashboard request can
// recompute from the immutable in-memory table.
package analyze

import (
	"sort"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// YearCount is the number of papers published in one year.
type YearCount struct {
	Year  int `json:"year" yaml:"year"`
	Count int `json:"count" yaml:"count"`
}

// LabelCount is a generic label → count pair (journal, source, or title word).
type LabelCount struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// CountByYear groups records by publication year, ascending. Years with no
// records simply do not appear.
func CountByYear(records []types.Record) []YearCount {
	byYear := map[int]int{}
	for _, r := range records {
		byYear[r.Year]++
	}
	out := make([]YearCount, 0, len(byYear))
	for year, n := range byYear {
		out = append(out, YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// TopJournals returns the n most frequent journals, descending by count.
func TopJournals(records []types.Record, n int) []LabelCount {
	return topBy(records, n, func(r types.Record) string { return r.Journal })
}

// TopSources returns the n most frequent sources, descending by count.
func TopSources(records []types.Record, n int) []LabelCount {
	return topBy(records, n, func(r types.Record) string { return r.Source })
}

func topBy(records []types.Record, n int, key func(types.Record) string) []LabelCount {
	counts := map[string]int{}
	for _, r := range records {
		if k := key(r); k != "" {
			counts[k]++
		}
	}
	out := make([]LabelCount, 0, len(counts))
	for label, c := range counts {
		out = append(out, LabelCount{Label: label, Count: c})
	}
	// Ties break alphabetically so output is deterministic.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Bin is one bucket of the abstract-length histogram: [Lo, Hi).
type Bin struct {
	Lo    int `json:"lo" yaml:"lo"`
	Hi    int `json:"hi" yaml:"hi"`
	Count int `json:"count" yaml:"count"`
}

// LengthStats describes the abstract word-count distribution over records
// that have a real abstract.
type LengthStats struct {
	Papers int     `json:"papers" yaml:"papers"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	Bins   []Bin   `json:"bins" yaml:"bins"`
}

// AbstractLengthStats computes mean, median, and a histogram of abstract word
// counts across records with abstracts. bins <= 0 defaults to 30. Empty input
// yields zero stats and no bins.
func AbstractLengthStats(records []types.Record, bins int) LengthStats {
	if bins <= 0 {
		bins = 30
	}
	var counts []int
	sum := 0
	for _, r := range records {
		if r.HasAbstract {
			counts = append(counts, r.AbstractWordCount)
			sum += r.AbstractWordCount
		}
	}
	if len(counts) == 0 {
		return LengthStats{}
	}
	sort.Ints(counts)

	stats := LengthStats{
		Papers: len(counts),
		Mean:   float64(sum) / float64(len(counts)),
	}
	mid := len(counts) / 2
	if len(counts)%2 == 0 {
		stats.Median = float64(counts[mid-1]+counts[mid]) / 2
	} else {
		stats.Median = float64(counts[mid])
	}

	max := counts[len(counts)-1]
	width := max/bins + 1
	binCounts := make([]int, bins)
	for _, c := range counts {
		i := c / width
		if i >= bins {
			i = bins - 1
		}
		binCounts[i]++
	}
	for i, n := range binCounts {
		if n == 0 {
			continue
		}
		stats.Bins = append(stats.Bins, Bin{Lo: i * width, Hi: (i + 1) * width, Count: n})
	}
	return stats
}

// Summary holds the headline numbers shown above the charts.
type Summary struct {
	Total           int     `json:"total" yaml:"total"`
	WithAbstract    int     `json:"with_abstract" yaml:"with_abstract"`
	AbstractPercent float64 `json:"abstract_percent" yaml:"abstract_percent"`
	MinYear         int     `json:"min_year" yaml:"min_year"`
	MaxYear         int     `json:"max_year" yaml:"max_year"`
	PeakYear        int     `json:"peak_year" yaml:"peak_year"`
	PeakYearCount   int     `json:"peak_year_count" yaml:"peak_year_count"`
	Journals        int     `json:"journals" yaml:"journals"`
	MeanAbstractLen float64 `json:"mean_abstract_len" yaml:"mean_abstract_len"`
	MeanTitleLen    float64 `json:"mean_title_len" yaml:"mean_title_len"`
}

// Summarize computes the headline numbers. A zero-record input returns a
// zero Summary, which callers render as an empty state rather than an error.
func Summarize(records []types.Record) Summary {
	s := Summary{Total: len(records)}
	if len(records) == 0 {
		return s
	}

	journals := map[string]struct{}{}
	abstractSum, titleSum := 0, 0
	for _, r := range records {
		if r.HasAbstract {
			s.WithAbstract++
			abstractSum += r.AbstractWordCount
		}
		titleSum += r.TitleWordCount
		journals[r.Journal] = struct{}{}
		if s.MinYear == 0 || r.Year < s.MinYear {
			s.MinYear = r.Year
		}
		if r.Year > s.MaxYear {
			s.MaxYear = r.Year
		}
	}
	s.AbstractPercent = float64(s.WithAbstract) / float64(s.Total) * 100
	s.Journals = len(journals)
	s.MeanTitleLen = float64(titleSum) / float64(s.Total)
	if s.WithAbstract > 0 {
		s.MeanAbstractLen = float64(abstractSum) / float64(s.WithAbstract)
	}

	for _, yc := range CountByYear(records) {
		if yc.Count > s.PeakYearCount {
			s.PeakYear, s.PeakYearCount = yc.Year, yc.Count
		}
	}
	return s
}
