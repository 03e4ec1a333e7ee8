// Package search narrows a candidate list by a live query.
package search

import "strings"

// MaxResults caps how many matches Filter returns.
const MaxResults = 20

// Match is one filtered candidate. Exactly one match, the first, is active.
type Match struct {
	Text   string
	Active bool
}

// Filter returns the candidates containing query (case-sensitive), in source
// order, capped at MaxResults. An empty query matches everything. The first
// match is marked active. No match yields an empty, non-nil slice.
func Filter(source []string, query string) []Match {
	matches := make([]Match, 0, min(len(source), MaxResults))
	for _, s := range source {
		if !strings.Contains(s, query) {
			continue
		}
		matches = append(matches, Match{Text: s, Active: len(matches) == 0})
		if len(matches) == MaxResults {
			break
		}
	}
	return matches
}

// Texts returns the text of each match.
func Texts(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Text
	}
	return out
}
