// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package charts renders the analysis aggregates as PNG images using
// go-chart. Each renderer returns ErrNoData for an empty aggregate so
// callers can skip the chart instead of failing the run.
package charts

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/pdiddy/cord-explorer/internal/analyze"
)

// ErrNoData is returned when an aggregate has nothing to plot.
var ErrNoData = errors.New("no data to chart")

// Renderer renders aggregates to PNG at a fixed canvas size.
type Renderer struct {
	Width  int
	Height int
}

// NewRenderer returns a Renderer with the default canvas size.
func NewRenderer() Renderer {
	return Renderer{Width: 1024, Height: 512}
}

// PublicationsOverTime renders the per-year publication counts as a line
// chart. A single surviving year degrades to a bar chart, since a line
// needs two points.
func (r Renderer) PublicationsOverTime(w io.Writer, counts []analyze.YearCount) error {
	if len(counts) == 0 {
		return ErrNoData
	}
	if len(counts) < 2 {
		return r.yearBars(w, counts)
	}

	xs := make([]float64, len(counts))
	ys := make([]float64, len(counts))
	ticks := make([]chart.Tick, len(counts))
	for i, yc := range counts {
		xs[i] = float64(yc.Year)
		ys[i] = float64(yc.Count)
		ticks[i] = chart.Tick{Value: float64(yc.Year), Label: strconv.Itoa(yc.Year)}
	}

	graph := chart.Chart{
		Title:  "Publications by Year",
		Width:  r.Width,
		Height: r.Height,
		XAxis: chart.XAxis{
			Name:  "Year",
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Publications",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "publications",
				XValues: xs,
				YValues: ys,
			},
		},
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering publications chart: %w", err)
	}
	return nil
}

func (r Renderer) yearBars(w io.Writer, counts []analyze.YearCount) error {
	bars := make([]chart.Value, len(counts))
	for i, yc := range counts {
		bars[i] = chart.Value{Label: strconv.Itoa(yc.Year), Value: float64(yc.Count)}
	}
	return r.renderBars(w, "Publications by Year", bars)
}

// TopJournals renders the journal ranking as a bar chart.
func (r Renderer) TopJournals(w io.Writer, counts []analyze.LabelCount) error {
	return r.labelBars(w, "Top Journals", counts)
}

// TitleWords renders the title word-frequency table as a bar chart.
func (r Renderer) TitleWords(w io.Writer, counts []analyze.LabelCount) error {
	return r.labelBars(w, "Most Frequent Title Words", counts)
}

func (r Renderer) labelBars(w io.Writer, title string, counts []analyze.LabelCount) error {
	if len(counts) == 0 {
		return ErrNoData
	}
	bars := make([]chart.Value, len(counts))
	for i, lc := range counts {
		bars[i] = chart.Value{Label: truncate(lc.Label, 18), Value: float64(lc.Count)}
	}
	return r.renderBars(w, title, bars)
}

func (r Renderer) renderBars(w io.Writer, title string, bars []chart.Value) error {
	// go-chart derives the y-range from the bar values and rejects a
	// zero-delta range, which a single bar or all-equal bars produce.
	max := 0.0
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
	}
	if max <= 0 {
		max = 1
	}
	graph := chart.BarChart{
		Title:    title,
		Width:    r.Width,
		Height:   r.Height,
		BarWidth: barWidth(r.Width, len(bars)),
		XAxis: chart.Style{
			TextRotationDegrees: 45,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: max * 1.1},
		},
		Bars: bars,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering %s: %w", title, err)
	}
	return nil
}

// SourceBreakdown renders the source distribution as a donut chart.
func (r Renderer) SourceBreakdown(w io.Writer, counts []analyze.LabelCount) error {
	if len(counts) == 0 {
		return ErrNoData
	}
	values := make([]chart.Value, len(counts))
	for i, lc := range counts {
		values[i] = chart.Value{Label: truncate(lc.Label, 24), Value: float64(lc.Count)}
	}
	graph := chart.DonutChart{
		Title:  "Papers by Source",
		Width:  r.Height,
		Height: r.Height,
		Values: values,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("rendering source chart: %w", err)
	}
	return nil
}

// AbstractLengths renders the abstract word-count histogram as a bar chart.
func (r Renderer) AbstractLengths(w io.Writer, stats analyze.LengthStats) error {
	if len(stats.Bins) == 0 {
		return ErrNoData
	}
	bars := make([]chart.Value, len(stats.Bins))
	for i, b := range stats.Bins {
		bars[i] = chart.Value{
			Label: fmt.Sprintf("%d-%d", b.Lo, b.Hi),
			Value: float64(b.Count),
		}
	}
	return r.renderBars(w, "Abstract Word Counts", bars)
}

// barWidth sizes bars to fill most of the canvas without overlapping.
func barWidth(canvas, n int) int {
	if n == 0 {
		return 1
	}
	w := canvas / (n * 2)
	if w < 4 {
		w = 4
	}
	if w > 60 {
		w = 60
	}
	return w
}

// truncate shortens s to at most n runes, never splitting a multi-byte rune.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
