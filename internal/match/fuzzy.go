// Package match ranks catalog entries against a partial query for
// search-as-you-type selection. Ranking is deterministic: ties keep catalog
// order via a stable sort, so identical inputs always produce identical
// output.
package match

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultLimit is the number of results returned when no limit is given.
const DefaultLimit = 8

// Entry is a labeled catalog row to rank.
type Entry struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	SubLabel string `json:"sub_label,omitempty"`
}

// Result is a ranked entry. Score is 1..100; zero-score entries are never
// returned.
type Result struct {
	Entry Entry `json:"entry"`
	Score int   `json:"score"`
}

// Rank scores entries against query and returns the top matches, best first.
// Matching is case-insensitive with surrounding whitespace trimmed. The first
// rule that matches wins; scores do not combine:
//
//	exact label            100
//	label prefix            80
//	word prefix             70
//	label substring         60
//	sub-label substring     50
//	edit distance d         40-d, within the error budget for the
//	                        query length
//
// Entries beyond the edit-distance budget are excluded entirely.
func Rank(query string, entries []Entry, limit int) []Result {
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := strings.ToLower(strings.TrimSpace(query))
	budget := errorBudget(len(q))

	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		if score := scoreEntry(q, e, budget); score > 0 {
			results = append(results, Result{Entry: e, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func scoreEntry(q string, e Entry, budget int) int {
	label := strings.ToLower(e.Label)
	sub := strings.ToLower(e.SubLabel)

	switch {
	case label == q:
		return 100
	case strings.HasPrefix(label, q):
		return 80
	case anyWordHasPrefix(label, q):
		return 70
	case strings.Contains(label, q):
		return 60
	case sub != "" && strings.Contains(sub, q):
		return 50
	}

	if d := Levenshtein(q, label); d <= budget {
		return 40 - d
	}
	return 0
}

// errorBudget scales edit-distance tolerance with query length so short
// queries don't produce false positives.
func errorBudget(n int) int {
	switch {
	case n > 5:
		return 2
	case n > 2:
		return 1
	default:
		return 0
	}
}

func anyWordHasPrefix(label, q string) bool {
	words := strings.FieldsFunc(label, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-'
	})
	for _, w := range words {
		if strings.HasPrefix(w, q) {
			return true
		}
	}
	return false
}

// Levenshtein is the textbook dynamic-programming edit distance with unit
// insert/delete/substitute costs over the full table. No early termination;
// the exact value is part of the scoring contract.
func Levenshtein(a, b string) int {
	ar, br := []rune(a), []rune(b)
	m, n := len(ar), len(br)
	if m == 0 {
		return n
	}
	if n == 0 {
		return m
	}

	d := make([][]int, n+1)
	for i := 0; i <= n; i++ {
		d[i] = make([]int, m+1)
		d[i][0] = i
	}
	for j := 1; j <= m; j++ {
		d[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if br[i-1] == ar[j-1] {
				d[i][j] = d[i-1][j-1]
			} else {
				d[i][j] = min3(d[i-1][j-1], d[i][j-1], d[i-1][j]) + 1
			}
		}
	}
	return d[n][m]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
