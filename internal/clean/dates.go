// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package clean

import (
	"strings"
	"time"
)

// dateLayouts are the publish_time formats that occur in CORD-19 metadata,
// most specific first. A bare year parses to January 1 of that year.
var dateLayouts = []string{
	"2006-01-02",
	"2006 Jan 2",
	"2006 Jan",
	"2006",
}

// ParseDate parses a CORD-19 publish_time value. The second return value is
// false when the value is empty or matches none of the known layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return time.Time{}, false
	}
	// Some rows carry multiple dates separated by "; " — use the first.
	if i := strings.Index(s, ";"); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// quarter maps a month (1-12) to its calendar quarter (1-4).
func quarter(month time.Month) int {
	return (int(month)-1)/3 + 1
}
