// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"testing"
	"time"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

func titled(title string) types.Record {
	return types.Record{
		Title: title,
		Date:  time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		Year:  2020,
	}
}

// --- Tokenize ---

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"case folded", "Viral TRANSMISSION Dynamics", []string{"viral", "transmission", "dynamics"}},
		{"punctuation split", "vaccine-induced immunity: a review?", []string{"vaccine", "induced", "immunity", "review"}},
		{"short tokens dropped", "of an RNA virus", []string{"rna", "virus"}},
		{"numeric tokens dropped", "2020 update on 1918 influenza", []string{"update", "influenza"}},
		{"mixed alphanumeric kept", "sars2 variant b117 profile", []string{"sars2", "variant", "b117", "profile"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// --- WordFrequencies ---

func TestWordFrequencies(t *testing.T) {
	records := []types.Record{
		titled("Transmission dynamics of influenza"),
		titled("Transmission routes in hospitals"),
		titled("Hospital transmission clusters"),
	}

	freqs := WordFrequencies(records, 10, nil)
	if len(freqs) == 0 {
		t.Fatal("expected frequencies")
	}
	if freqs[0].Label != "transmission" || freqs[0].Count != 3 {
		t.Errorf("freqs[0] = %v, want transmission/3", freqs[0])
	}
}

func TestWordFrequenciesStopwords(t *testing.T) {
	records := []types.Record{
		titled("The COVID pandemic study"),
		titled("A study of the pandemic"),
	}

	for _, lc := range WordFrequencies(records, 10, nil) {
		switch lc.Label {
		case "the", "covid", "pandemic", "study":
			t.Errorf("stopword %q survived", lc.Label)
		}
	}
}

func TestWordFrequenciesExtraStopwords(t *testing.T) {
	records := []types.Record{
		titled("Influenza surveillance report"),
		titled("Influenza vaccination uptake"),
	}

	freqs := WordFrequencies(records, 10, []string{"Influenza"})
	for _, lc := range freqs {
		if lc.Label == "influenza" {
			t.Error("extra stopword survived (should be case-folded)")
		}
	}
}

func TestWordFrequenciesLimit(t *testing.T) {
	records := []types.Record{
		titled("alpha beta gamma delta epsilon zeta"),
	}
	freqs := WordFrequencies(records, 3, nil)
	if len(freqs) != 3 {
		t.Errorf("freqs = %d entries, want 3", len(freqs))
	}
}

func TestWordFrequenciesEmpty(t *testing.T) {
	if freqs := WordFrequencies(nil, 10, nil); len(freqs) != 0 {
		t.Errorf("freqs = %v, want empty", freqs)
	}
}
