// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package charts

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pdiddy/cord-explorer/internal/analyze"
)

// pngMagic is the PNG file signature.
var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func assertPNG(t *testing.T, buf *bytes.Buffer) {
	t.Helper()
	if buf.Len() < len(pngMagic) {
		t.Fatalf("output too short: %d bytes", buf.Len())
	}
	if !bytes.HasPrefix(buf.Bytes(), pngMagic) {
		t.Errorf("output does not start with PNG signature")
	}
}

func TestPublicationsOverTime(t *testing.T) {
	var buf bytes.Buffer
	counts := []analyze.YearCount{{Year: 2019, Count: 10}, {Year: 2020, Count: 120}, {Year: 2021, Count: 80}}
	if err := NewRenderer().PublicationsOverTime(&buf, counts); err != nil {
		t.Fatal(err)
	}
	assertPNG(t, &buf)
}

// A single surviving year still renders (as bars) instead of erroring.
func TestPublicationsOverTimeSingleYear(t *testing.T) {
	var buf bytes.Buffer
	counts := []analyze.YearCount{{Year: 2020, Count: 42}}
	if err := NewRenderer().PublicationsOverTime(&buf, counts); err != nil {
		t.Fatal(err)
	}
	assertPNG(t, &buf)
}

func TestBarAndDonutCharts(t *testing.T) {
	counts := []analyze.LabelCount{
		{Label: "Nature", Count: 30},
		{Label: "A journal with a very long name indeed", Count: 20},
		{Label: "BMJ", Count: 10},
	}
	r := NewRenderer()

	tests := []struct {
		name   string
		render func(buf *bytes.Buffer) error
	}{
		{"journals", func(b *bytes.Buffer) error { return r.TopJournals(b, counts) }},
		{"words", func(b *bytes.Buffer) error { return r.TitleWords(b, counts) }},
		{"sources", func(b *bytes.Buffer) error { return r.SourceBreakdown(b, counts) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.render(&buf); err != nil {
				t.Fatal(err)
			}
			assertPNG(t, &buf)
		})
	}
}

// Degenerate bar sets still render: a single bar, and bars whose values are
// all equal, would otherwise collapse the derived y-range to zero.
func TestBarChartsDegenerateRanges(t *testing.T) {
	r := NewRenderer()

	tests := []struct {
		name   string
		counts []analyze.LabelCount
	}{
		{"single journal", []analyze.LabelCount{{Label: "Nature", Count: 7}}},
		{"equal counts", []analyze.LabelCount{{Label: "Nature", Count: 5}, {Label: "BMJ", Count: 5}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := r.TopJournals(&buf, tt.counts); err != nil {
				t.Fatal(err)
			}
			assertPNG(t, &buf)
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"BMJ", 18, "BMJ"},
		{"Journal of Irreproducible Results", 18, "Journal of Irre..."},
		{"Zeitschrift für Ärztliche Fortbildung", 18, "Zeitschrift für..."},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
		for _, r := range got {
			if r == '�' {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8: %q", tt.in, tt.n, got)
			}
		}
	}
}

func TestAbstractLengths(t *testing.T) {
	var buf bytes.Buffer
	stats := analyze.LengthStats{
		Papers: 3,
		Bins: []analyze.Bin{
			{Lo: 0, Hi: 100, Count: 1},
			{Lo: 100, Hi: 200, Count: 2},
		},
	}
	if err := NewRenderer().AbstractLengths(&buf, stats); err != nil {
		t.Fatal(err)
	}
	assertPNG(t, &buf)
}

// Empty aggregates must report ErrNoData so callers can skip the chart.
func TestEmptyAggregates(t *testing.T) {
	r := NewRenderer()
	var buf bytes.Buffer

	tests := []struct {
		name string
		err  error
	}{
		{"years", r.PublicationsOverTime(&buf, nil)},
		{"journals", r.TopJournals(&buf, nil)},
		{"words", r.TitleWords(&buf, nil)},
		{"sources", r.SourceBreakdown(&buf, nil)},
		{"abstracts", r.AbstractLengths(&buf, analyze.LengthStats{})},
	}
	for _, tt := range tests {
		if !errors.Is(tt.err, ErrNoData) {
			t.Errorf("%s: err = %v, want ErrNoData", tt.name, tt.err)
		}
	}
	if buf.Len() != 0 {
		t.Errorf("empty aggregates wrote %d bytes", buf.Len())
	}
}

func TestBarWidth(t *testing.T) {
	if w := barWidth(1024, 0); w != 1 {
		t.Errorf("barWidth(1024, 0) = %d, want 1", w)
	}
	if w := barWidth(1024, 5); w != 60 {
		t.Errorf("barWidth(1024, 5) = %d, want capped at 60", w)
	}
	if w := barWidth(1024, 200); w != 4 {
		t.Errorf("barWidth(1024, 200) = %d, want floor of 4", w)
	}
}
