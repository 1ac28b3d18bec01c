// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/pdiddy/cord-explorer/internal/analyze"
	"github.com/pdiddy/cord-explorer/internal/charts"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

// emptyMessage is shown whenever the active filter matches no records.
const emptyMessage = "No papers match the selected filters."

// problem is an RFC 7807 style error payload.
type problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, problem{
		Title:  "Invalid filter",
		Status: http.StatusBadRequest,
		Detail: err.Error(),
	})
}

// listResponse wraps an aggregate list with the filter that produced it.
type listResponse struct {
	Filter  analyze.Filter `json:"filter"`
	Total   int            `json:"total"`
	Data    any            `json:"data"`
	Message string         `json:"message,omitempty"`
}

func (s *Server) respondList(w http.ResponseWriter, r *http.Request, f analyze.Filter, total int, data any) {
	resp := listResponse{Filter: f, Total: total, Data: data}
	if total == 0 {
		resp.Message = emptyMessage
	}
	render.JSON(w, r, resp)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	subset, f, err := s.filtered(r)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	summary := analyze.Summarize(subset)
	s.respondList(w, r, f, summary.Total, summary)
}

func (s *Server) handleYears(w http.ResponseWriter, r *http.Request) {
	subset, f, err := s.filtered(r)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	s.respondList(w, r, f, len(subset), analyze.CountByYear(subset))
}

func (s *Server) handleJournals(w http.ResponseWriter, r *http.Request) {
	subset, f, err := s.filtered(r)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	s.respondList(w, r, f, len(subset), analyze.TopJournals(subset, 10))
}

func (s *Server) handleWords(w http.ResponseWriter, r *http.Request) {
	subset, f, err := s.filtered(r)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	s.respondList(w, r, f, len(subset), analyze.WordFrequencies(subset, 25, nil))
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	subset, f, err := s.filtered(r)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}
	if len(subset) > s.cfg.SampleSize {
		subset = subset[:s.cfg.SampleSize]
	}
	s.respondList(w, r, f, len(subset), subset)
}

// handleChart renders one chart PNG for the filtered subset. An aggregate
// with nothing to plot yields 204, not an error.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	subset, _, err := s.filtered(r)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}

	var buf bytes.Buffer
	switch name := chi.URLParam(r, "name"); name {
	case "years":
		err = s.renderer.PublicationsOverTime(&buf, analyze.CountByYear(subset))
	case "journals":
		err = s.renderer.TopJournals(&buf, analyze.TopJournals(subset, 10))
	case "words":
		err = s.renderer.TitleWords(&buf, analyze.WordFrequencies(subset, 20, nil))
	case "sources":
		err = s.renderer.SourceBreakdown(&buf, analyze.TopSources(subset, 10))
	case "abstracts":
		err = s.renderer.AbstractLengths(&buf, analyze.AbstractLengthStats(subset, 30))
	default:
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, problem{
			Title:  "Unknown chart",
			Status: http.StatusNotFound,
			Detail: "chart " + name + " does not exist",
		})
		return
	}

	if errors.Is(err, charts.ErrNoData) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		s.logger.Error("chart render failed", slog.String("error", err.Error()))
		http.Error(w, "chart rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

// journalOption is one entry of the filter form's journal list.
type journalOption struct {
	Name     string
	Count    int
	Selected bool
}

// pageData feeds the index template.
type pageData struct {
	Summary  analyze.Summary
	Filter   analyze.Filter
	Journals []journalOption
	Sample   []types.Record
	Query    string
	Empty    bool
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	subset, f, err := s.filtered(r)
	if err != nil {
		s.badRequest(w, r, err)
		return
	}

	selected := map[string]bool{}
	for _, j := range f.Journals {
		selected[j] = true
	}
	options := make([]journalOption, len(s.journalOptions))
	for i, lc := range s.journalOptions {
		options[i] = journalOption{Name: lc.Label, Count: lc.Count, Selected: selected[lc.Label]}
	}

	sample := subset
	if len(sample) > s.cfg.SampleSize {
		sample = sample[:s.cfg.SampleSize]
	}

	data := pageData{
		Summary:  analyze.Summarize(subset),
		Filter:   f,
		Journals: options,
		Sample:   sample,
		Query:    EncodeFilter(f),
		Empty:    len(subset) == 0,
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		s.logger.Error("template render failed", slog.String("error", err.Error()))
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
