// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// folder case-folds tokens so "COVID" and "covid" count as one word.
var folder = cases.Fold()

// minTokenLen drops fragments like "a" or "of" that survive stopword removal.
const minTokenLen = 3

// WordFrequencies computes the n most frequent title words across records,
// case-folded, with stopwords and numeric tokens removed. extra extends the
// built-in stopword list.
func WordFrequencies(records []types.Record, n int, extra []string) []LabelCount {
	stop := make(map[string]struct{}, len(defaultStopwords)+len(extra))
	for _, w := range defaultStopwords {
		stop[w] = struct{}{}
	}
	for _, w := range extra {
		stop[folder.String(w)] = struct{}{}
	}

	counts := map[string]int{}
	for _, r := range records {
		for _, tok := range Tokenize(r.Title) {
			if _, skip := stop[tok]; skip {
				continue
			}
			counts[tok]++
		}
	}

	out := make([]LabelCount, 0, len(counts))
	for w, c := range counts {
		out = append(out, LabelCount{Label: w, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Label < out[j].Label
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Tokenize splits text into case-folded word tokens. Tokens shorter than
// minTokenLen or consisting only of digits are dropped.
func Tokenize(text string) []string {
	folded := folder.String(text)
	fields := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < minTokenLen || isNumeric(f) {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
