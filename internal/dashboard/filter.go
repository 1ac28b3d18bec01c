// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dashboard

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/pdiddy/cord-explorer/internal/analyze"
)

// ParseFilter builds a record filter from dashboard query parameters:
// from/to (year bounds), journal (repeatable), abstract (all|with|without).
func ParseFilter(q url.Values) (analyze.Filter, error) {
	var f analyze.Filter
	var err error

	if f.YearFrom, err = yearParam(q, "from"); err != nil {
		return analyze.Filter{}, err
	}
	if f.YearTo, err = yearParam(q, "to"); err != nil {
		return analyze.Filter{}, err
	}
	if f.YearFrom != 0 && f.YearTo != 0 && f.YearFrom > f.YearTo {
		return analyze.Filter{}, fmt.Errorf("year range is inverted: from=%d to=%d", f.YearFrom, f.YearTo)
	}

	for _, j := range q["journal"] {
		if j != "" {
			f.Journals = append(f.Journals, j)
		}
	}

	switch ab := analyze.AbstractFilter(q.Get("abstract")); ab {
	case "", analyze.AbstractAll:
		f.Abstract = analyze.AbstractAll
	case analyze.AbstractWith, analyze.AbstractWithout:
		f.Abstract = ab
	default:
		return analyze.Filter{}, fmt.Errorf("invalid abstract filter %q", ab)
	}

	return f, nil
}

func yearParam(q url.Values, name string) (int, error) {
	v := q.Get(name)
	if v == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(v)
	if err != nil || year < 0 {
		return 0, fmt.Errorf("invalid %s year %q", name, v)
	}
	return year, nil
}

// EncodeFilter is the inverse of ParseFilter; the result is used to carry
// the active filter into chart image URLs.
func EncodeFilter(f analyze.Filter) string {
	q := url.Values{}
	if f.YearFrom != 0 {
		q.Set("from", strconv.Itoa(f.YearFrom))
	}
	if f.YearTo != 0 {
		q.Set("to", strconv.Itoa(f.YearTo))
	}
	for _, j := range f.Journals {
		q.Add("journal", j)
	}
	if f.Abstract != "" && f.Abstract != analyze.AbstractAll {
		q.Set("abstract", string(f.Abstract))
	}
	return q.Encode()
}
