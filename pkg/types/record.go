// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data structures passed between pipeline
// stages: raw and cleaned paper records, and the per-stage configuration.
package types

import (
	"strings"
	"time"
)

// RawRecord is one row of the CORD-19 metadata CSV as read from disk, before
// any cleaning. All fields are kept as strings; the cleaner owns parsing.
type RawRecord struct {
	CordUID     string `json:"cord_uid" yaml:"cord_uid"`
	Source      string `json:"source" yaml:"source"`
	Title       string `json:"title" yaml:"title"`
	DOI         string `json:"doi,omitempty" yaml:"doi,omitempty"`
	License     string `json:"license,omitempty" yaml:"license,omitempty"`
	Abstract    string `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	PublishTime string `json:"publish_time" yaml:"publish_time"`
	Authors     string `json:"authors,omitempty" yaml:"authors,omitempty"`
	Journal     string `json:"journal,omitempty" yaml:"journal,omitempty"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Record is a cleaned paper record. Every Record has a non-empty Title and a
// valid Date; rows that cannot satisfy that are dropped during cleaning.
type Record struct {
	// CordUID is the CORD-19 identifier for the paper.
	CordUID string `json:"cord_uid" yaml:"cord_uid"`

	// Title is the paper title, whitespace-normalized.
	Title string `json:"title" yaml:"title"`

	// Abstract is the paper abstract, or the configured fill value when the
	// source row had none.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Date is the parsed publication date.
	Date time.Time `json:"publish_time" yaml:"publish_time"`

	// Journal is the publishing journal, or the fill value when missing.
	Journal string `json:"journal" yaml:"journal"`

	// Source identifies the collection the row came from (e.g. "PMC", "WHO"),
	// or the fill value when missing.
	Source string `json:"source" yaml:"source"`

	DOI     string   `json:"doi,omitempty" yaml:"doi,omitempty"`
	URL     string   `json:"url,omitempty" yaml:"url,omitempty"`
	Authors []string `json:"authors,omitempty" yaml:"authors,omitempty"`

	// Year, Month, and Quarter are derived from Date during cleaning.
	Year    int `json:"publication_year" yaml:"publication_year"`
	Month   int `json:"publication_month" yaml:"publication_month"`
	Quarter int `json:"publication_quarter" yaml:"publication_quarter"`

	// TitleWordCount and AbstractWordCount are whitespace token counts.
	TitleWordCount    int `json:"title_word_count" yaml:"title_word_count"`
	AbstractWordCount int `json:"abstract_word_count" yaml:"abstract_word_count"`

	// HasAbstract reports whether the source row carried a real abstract,
	// as opposed to the fill value.
	HasAbstract bool `json:"has_abstract" yaml:"has_abstract"`
}

// AuthorList splits a CORD-19 authors field ("Last, First; Last, First")
// into individual author strings, dropping empty entries.
func AuthorList(field string) []string {
	parts := strings.Split(field, ";")
	authors := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			authors = append(authors, p)
		}
	}
	return authors
}
