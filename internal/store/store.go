// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists cleaned records into a SQLite database and answers
// the same aggregate queries the in-memory analyzer computes, so large
// datasets can be queried without re-reading the CSV.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/cord-explorer/internal/analyze"
	"github.com/pdiddy/cord-explorer/pkg/types"
)

const dateLayout = "2006-01-02"

// Store manages the papers SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database at path and ensures the schema
// exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS papers (
			cord_uid TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			abstract TEXT,
			publish_time TEXT NOT NULL,
			journal TEXT,
			source TEXT,
			doi TEXT,
			url TEXT,
			authors TEXT,
			year INTEGER NOT NULL,
			month INTEGER,
			quarter INTEGER,
			title_word_count INTEGER,
			abstract_word_count INTEGER,
			has_abstract INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_year ON papers(year)`,
		`CREATE INDEX IF NOT EXISTS idx_papers_journal ON papers(journal)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Ingest upserts cleaned records into the papers table inside one
// transaction and reports progress to w.
func (s *Store) Ingest(ctx context.Context, records []types.Record, w io.Writer) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO papers
		(cord_uid, title, abstract, publish_time, journal, source, doi, url,
		 authors, year, month, quarter, title_word_count, abstract_word_count,
		 has_abstract)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		hasAbstract := 0
		if rec.HasAbstract {
			hasAbstract = 1
		}
		_, err := stmt.ExecContext(ctx,
			rec.CordUID, rec.Title, rec.Abstract,
			rec.Date.Format(dateLayout), rec.Journal, rec.Source,
			rec.DOI, rec.URL, strings.Join(rec.Authors, "; "),
			rec.Year, rec.Month, rec.Quarter,
			rec.TitleWordCount, rec.AbstractWordCount, hasAbstract)
		if err != nil {
			return fmt.Errorf("inserting %s: %w", rec.CordUID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing ingest: %w", err)
	}
	fmt.Fprintf(w, "Ingested %d records into papers table\n", len(records))
	return nil
}

// Count returns the number of stored papers matching the filter.
func (s *Store) Count(ctx context.Context, f analyze.Filter) (int, error) {
	where, args := whereClause(f)
	var n int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM papers"+where, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting papers: %w", err)
	}
	return n, nil
}

// CountByYear groups stored papers by year, ascending.
func (s *Store) CountByYear(ctx context.Context, f analyze.Filter) ([]analyze.YearCount, error) {
	where, args := whereClause(f)
	rows, err := s.db.QueryContext(ctx,
		"SELECT year, COUNT(*) FROM papers"+where+" GROUP BY year ORDER BY year", args...)
	if err != nil {
		return nil, fmt.Errorf("querying year counts: %w", err)
	}
	defer rows.Close()

	var out []analyze.YearCount
	for rows.Next() {
		var yc analyze.YearCount
		if err := rows.Scan(&yc.Year, &yc.Count); err != nil {
			return nil, fmt.Errorf("scanning year count: %w", err)
		}
		out = append(out, yc)
	}
	return out, rows.Err()
}

// TopJournals returns the n most frequent journals among stored papers.
func (s *Store) TopJournals(ctx context.Context, f analyze.Filter, n int) ([]analyze.LabelCount, error) {
	where, args := whereClause(f)
	args = append(args, n)
	rows, err := s.db.QueryContext(ctx,
		"SELECT journal, COUNT(*) AS c FROM papers"+where+
			" GROUP BY journal ORDER BY c DESC, journal ASC LIMIT ?", args...)
	if err != nil {
		return nil, fmt.Errorf("querying journal counts: %w", err)
	}
	defer rows.Close()

	var out []analyze.LabelCount
	for rows.Next() {
		var lc analyze.LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, fmt.Errorf("scanning journal count: %w", err)
		}
		out = append(out, lc)
	}
	return out, rows.Err()
}

// Select returns stored papers matching the filter, ordered by date then ID.
// limit <= 0 means no limit.
func (s *Store) Select(ctx context.Context, f analyze.Filter, limit int) ([]types.Record, error) {
	where, args := whereClause(f)
	q := `SELECT cord_uid, title, abstract, publish_time, journal, source,
		doi, url, authors, year, month, quarter, title_word_count,
		abstract_word_count, has_abstract FROM papers` + where +
		" ORDER BY publish_time, cord_uid"
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying papers: %w", err)
	}
	defer rows.Close()

	var out []types.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanRecord(rows *sql.Rows) (types.Record, error) {
	var rec types.Record
	var date, authors string
	var hasAbstract int
	err := rows.Scan(&rec.CordUID, &rec.Title, &rec.Abstract, &date,
		&rec.Journal, &rec.Source, &rec.DOI, &rec.URL, &authors,
		&rec.Year, &rec.Month, &rec.Quarter,
		&rec.TitleWordCount, &rec.AbstractWordCount, &hasAbstract)
	if err != nil {
		return types.Record{}, fmt.Errorf("scanning paper: %w", err)
	}
	rec.Date, err = parseDate(date)
	if err != nil {
		return types.Record{}, fmt.Errorf("paper %s: %w", rec.CordUID, err)
	}
	rec.Authors = types.AuthorList(authors)
	rec.HasAbstract = hasAbstract != 0
	return rec, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing publish_time: %w", err)
	}
	return t, nil
}

// whereClause builds a WHERE clause (with leading space) and its arguments
// from a filter. A zero filter yields an empty clause.
func whereClause(f analyze.Filter) (string, []any) {
	var conds []string
	var args []any
	if f.YearFrom != 0 {
		conds = append(conds, "year >= ?")
		args = append(args, f.YearFrom)
	}
	if f.YearTo != 0 {
		conds = append(conds, "year <= ?")
		args = append(args, f.YearTo)
	}
	if len(f.Journals) > 0 {
		ph := strings.Repeat("?,", len(f.Journals))
		conds = append(conds, "journal IN ("+ph[:len(ph)-1]+")")
		for _, j := range f.Journals {
			args = append(args, j)
		}
	}
	switch f.Abstract {
	case analyze.AbstractWith:
		conds = append(conds, "has_abstract = 1")
	case analyze.AbstractWithout:
		conds = append(conds, "has_abstract = 0")
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
