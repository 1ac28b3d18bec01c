// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/pdiddy/cord-explorer/internal/analyze"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    analyze.Filter
		wantErr bool
	}{
		{"empty", "", analyze.Filter{Abstract: analyze.AbstractAll}, false},
		{"year range", "from=2019&to=2021", analyze.Filter{YearFrom: 2019, YearTo: 2021, Abstract: analyze.AbstractAll}, false},
		{"open-ended range", "from=2020", analyze.Filter{YearFrom: 2020, Abstract: analyze.AbstractAll}, false},
		{"journals", "journal=Nature&journal=BMJ", analyze.Filter{Journals: []string{"Nature", "BMJ"}, Abstract: analyze.AbstractAll}, false},
		{"abstract with", "abstract=with", analyze.Filter{Abstract: analyze.AbstractWith}, false},
		{"abstract without", "abstract=without", analyze.Filter{Abstract: analyze.AbstractWithout}, false},
		{"blank journal ignored", "journal=", analyze.Filter{Abstract: analyze.AbstractAll}, false},
		{"bad from", "from=abc", analyze.Filter{}, true},
		{"negative year", "to=-5", analyze.Filter{}, true},
		{"inverted range", "from=2021&to=2019", analyze.Filter{}, true},
		{"bad abstract", "abstract=maybe", analyze.Filter{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}
			got, err := ParseFilter(q)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFilter(%q) err = %v, wantErr %v", tt.query, err, tt.wantErr)
			}
			if err == nil && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFilter(%q) = %+v, want %+v", tt.query, got, tt.want)
			}
		})
	}
}

func TestEncodeFilterRoundTrip(t *testing.T) {
	f := analyze.Filter{
		YearFrom: 2019,
		YearTo:   2021,
		Journals: []string{"Nature", "The Lancet"},
		Abstract: analyze.AbstractWith,
	}

	q, err := url.ParseQuery(EncodeFilter(f))
	if err != nil {
		t.Fatal(err)
	}
	got, err := ParseFilter(q)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, f) {
		t.Errorf("round trip = %+v, want %+v", got, f)
	}
}

func TestEncodeFilterZero(t *testing.T) {
	if q := EncodeFilter(analyze.Filter{}); q != "" {
		t.Errorf("EncodeFilter(zero) = %q, want empty", q)
	}
	if q := EncodeFilter(analyze.Filter{Abstract: analyze.AbstractAll}); q != "" {
		t.Errorf("EncodeFilter(all) = %q, want empty", q)
	}
}
