// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"full date", "2020-03-15", time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"year month day words", "2020 Apr 15", time.Date(2020, 4, 15, 0, 0, 0, 0, time.UTC), true},
		{"year month", "2020 Apr", time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC), true},
		{"bare year", "2020", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), true},
		{"surrounding whitespace", "  2019-12-31 ", time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC), true},
		{"multiple dates take first", "2020-05-01; 2020-06-01", time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "not a date", time.Time{}, false},
		{"month name only", "April", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseDate(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseDate(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestQuarter(t *testing.T) {
	tests := []struct {
		month time.Month
		want  int
	}{
		{time.January, 1},
		{time.March, 1},
		{time.April, 2},
		{time.June, 2},
		{time.July, 3},
		{time.October, 4},
		{time.December, 4},
	}
	for _, tt := range tests {
		if got := quarter(tt.month); got != tt.want {
			t.Errorf("quarter(%v) = %d, want %d", tt.month, got, tt.want)
		}
	}
}
