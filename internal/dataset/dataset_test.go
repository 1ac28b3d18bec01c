// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// --- test helpers ---

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "metadata.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// --- ReadRaw ---

func TestReadRaw(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"cord_uid,source_x,title,doi,abstract,publish_time,authors,journal,url",
		"ug7v899j,PMC,Clinical features of culture-proven pneumonia,10.1186/1471-2334-1-6,OBJECTIVE: ...,2001-07-04,\"Madani, Tariq A\",BMC Infect Dis,https://example.org/a",
		"02tnwd4m,WHO,Nitric oxide: a pro-inflammatory mediator?,,,2000-08-15,,Respir Res,",
	}, "\n"))

	records, err := ReadRaw(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
	first := records[0]
	if first.CordUID != "ug7v899j" || first.Journal != "BMC Infect Dis" {
		t.Errorf("first record = %+v", first)
	}
	if first.PublishTime != "2001-07-04" {
		t.Errorf("PublishTime = %q", first.PublishTime)
	}
	if records[1].Abstract != "" || records[1].Authors != "" {
		t.Errorf("missing fields should read empty, got %+v", records[1])
	}
}

func TestReadRawHeaderVariants(t *testing.T) {
	// Column order differs and extra columns exist; resolution is by name.
	path := writeCSV(t, strings.Join([]string{
		"publish_time,extra,title,cord_uid",
		"2020-01-01,ignored,Some paper,abc",
	}, "\n"))

	records, err := ReadRaw(path)
	if err != nil {
		t.Fatal(err)
	}
	if records[0].Title != "Some paper" || records[0].CordUID != "abc" {
		t.Errorf("record = %+v", records[0])
	}
}

func TestReadRawShortRows(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"cord_uid,title,publish_time,journal",
		"abc,Short row,2020-01-01",
	}, "\n"))

	records, err := ReadRaw(path)
	if err != nil {
		t.Fatal(err)
	}
	if records[0].Journal != "" {
		t.Errorf("Journal = %q, want empty for short row", records[0].Journal)
	}
}

func TestReadRawErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ReadRaw(filepath.Join(t.TempDir(), "nope.csv"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
		}
	})

	t.Run("missing required column", func(t *testing.T) {
		path := writeCSV(t, "cord_uid,journal\nabc,Nature")
		_, err := ReadRaw(path)
		if err == nil || !strings.Contains(err.Error(), "required column") {
			t.Errorf("err = %v, want required-column error", err)
		}
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeCSV(t, "")
		if _, err := ReadRaw(path); err == nil {
			t.Error("expected error for empty file")
		}
	})
}

// --- cleaned round trip ---

func TestWriteAndReadCleaned(t *testing.T) {
	records := []types.Record{{
		CordUID:           "abc",
		Title:             "A title",
		Abstract:          "An abstract",
		Date:              time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
		Journal:           "Nature",
		Source:            "PMC",
		Authors:           []string{"Smith, Jane", "Doe, John"},
		Year:              2020,
		Month:             6,
		Quarter:           2,
		TitleWordCount:    2,
		AbstractWordCount: 2,
		HasAbstract:       true,
	}}

	path := filepath.Join(t.TempDir(), "cleaned.csv")
	if err := WriteCleaned(path, records); err != nil {
		t.Fatal(err)
	}

	got, err := ReadCleaned(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("records = %d, want 1", len(got))
	}
	rec := got[0]
	if rec.Title != "A title" || rec.Year != 2020 || !rec.HasAbstract {
		t.Errorf("record = %+v", rec)
	}
	if !rec.Date.Equal(records[0].Date) {
		t.Errorf("Date = %v, want %v", rec.Date, records[0].Date)
	}
	if len(rec.Authors) != 2 {
		t.Errorf("Authors = %v", rec.Authors)
	}
}

func TestReadCleanedRejectsCorruptRows(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		strings.Join(cleanedHeader, ","),
		"abc,T,A,not-a-date,J,S,,,,2020,6,2,1,1,true",
	}, "\n"))

	_, err := ReadCleaned(path)
	if err == nil || !strings.Contains(err.Error(), "publish_time") {
		t.Errorf("err = %v, want publish_time parse error", err)
	}
}
