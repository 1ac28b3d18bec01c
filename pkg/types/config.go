// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DatasetConfig holds file locations shared by all stages.
type DatasetConfig struct {
	// MetadataPath is the raw CORD-19 metadata CSV.
	MetadataPath string `json:"metadata_path" yaml:"metadata_path"`

	// CleanedPath is where the cleaner writes (and later stages read) the
	// cleaned CSV.
	CleanedPath string `json:"cleaned_path" yaml:"cleaned_path"`
}

// CleaningConfig holds settings for the cleaning stage.
type CleaningConfig struct {
	// AbstractFill replaces a missing abstract (default "No abstract available").
	AbstractFill string `json:"abstract_fill" yaml:"abstract_fill"`

	// JournalFill replaces a missing journal (default "Unknown").
	JournalFill string `json:"journal_fill" yaml:"journal_fill"`

	// SourceFill replaces a missing source (default "Unknown").
	SourceFill string `json:"source_fill" yaml:"source_fill"`

	// MinYear and MaxYear bound plausible publication years. Rows whose
	// parsed year falls outside the range are dropped as malformed.
	MinYear int `json:"min_year" yaml:"min_year"`
	MaxYear int `json:"max_year" yaml:"max_year"`

	// ReportPath is where the YAML cleaning report is written. Empty
	// disables the report.
	ReportPath string `json:"report_path,omitempty" yaml:"report_path,omitempty"`
}

// AnalysisConfig holds settings for the analysis stage.
type AnalysisConfig struct {
	// ChartsDir is the directory chart PNGs are written into.
	ChartsDir string `json:"charts_dir" yaml:"charts_dir"`

	// TopJournals is how many journals the journal ranking keeps (default 15).
	TopJournals int `json:"top_journals" yaml:"top_journals"`

	// TopWords is how many title words the frequency table keeps (default 25).
	TopWords int `json:"top_words" yaml:"top_words"`

	// TopSources is how many sources the source breakdown keeps (default 10).
	TopSources int `json:"top_sources" yaml:"top_sources"`

	// HistogramBins is the bin count for the abstract-length histogram
	// (default 30).
	HistogramBins int `json:"histogram_bins" yaml:"histogram_bins"`

	// Stopwords extends the built-in stopword list used for the title
	// word-frequency table.
	Stopwords []string `json:"stopwords,omitempty" yaml:"stopwords,omitempty"`

	// DBPath is an optional SQLite database the cleaned records are
	// ingested into. Empty disables ingestion.
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`

	// WorkbookPath is an optional xlsx workbook the aggregate tables are
	// exported into. Empty disables the export.
	WorkbookPath string `json:"workbook_path,omitempty" yaml:"workbook_path,omitempty"`
}

// DashboardConfig holds settings for the dashboard server.
type DashboardConfig struct {
	// Addr is the listen address (default "127.0.0.1:8080").
	Addr string `json:"addr" yaml:"addr"`

	// SampleSize is how many records the sample table shows (default 100).
	SampleSize int `json:"sample_size" yaml:"sample_size"`
}

// Config is the full configuration file structure (cord-explorer.yaml).
type Config struct {
	Dataset   DatasetConfig   `json:"dataset" yaml:"dataset"`
	Cleaning  CleaningConfig  `json:"cleaning" yaml:"cleaning"`
	Analysis  AnalysisConfig  `json:"analysis" yaml:"analysis"`
	Dashboard DashboardConfig `json:"dashboard" yaml:"dashboard"`
}
