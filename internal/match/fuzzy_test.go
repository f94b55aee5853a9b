package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rapidbill/internal/match"
)

func entries() []match.Entry {
	return []match.Entry{
		{ID: "1001", Label: "Basmati Rice 5kg", SubLabel: "1001"},
		{ID: "1002", Label: "Rice Flour 1kg", SubLabel: "1002"},
		{ID: "1003", Label: "Brown Rice 2kg", SubLabel: "1003"},
		{ID: "2001", Label: "Sunflower Oil 1L", SubLabel: "2001"},
	}
}

// --- scoring ladder ---

func TestRank_ExactMatchWins(t *testing.T) {
	results := match.Rank("rice flour 1kg", entries(), 0)

	assert.NotEmpty(t, results)
	assert.Equal(t, "1002", results[0].Entry.ID)
	assert.Equal(t, 100, results[0].Score)
}

func TestRank_LabelPrefix(t *testing.T) {
	results := match.Rank("basm", entries(), 0)

	assert.NotEmpty(t, results)
	assert.Equal(t, "1001", results[0].Entry.ID)
	assert.Equal(t, 80, results[0].Score)
}

func TestRank_WordPrefix(t *testing.T) {
	// "rice" is a label prefix for 1002 (80) and a word prefix for 1001 and
	// 1003 (70).
	results := match.Rank("rice", entries(), 0)

	assert.Len(t, results, 3)
	assert.Equal(t, "1002", results[0].Entry.ID)
	assert.Equal(t, 80, results[0].Score)
	assert.Equal(t, 70, results[1].Score)
	assert.Equal(t, 70, results[2].Score)
}

func TestRank_Substring(t *testing.T) {
	results := match.Rank("flower", entries(), 0)

	assert.Len(t, results, 1)
	assert.Equal(t, "2001", results[0].Entry.ID)
	assert.Equal(t, 60, results[0].Score)
}

func TestRank_SubLabelSubstring(t *testing.T) {
	results := match.Rank("2001", entries(), 0)

	assert.Len(t, results, 1)
	assert.Equal(t, "2001", results[0].Entry.ID)
	assert.Equal(t, 50, results[0].Score)
}

func TestRank_EditDistanceWithinBudget(t *testing.T) {
	e := []match.Entry{{ID: "x", Label: "paneer"}}

	// One substitution against a 6-char query: budget 2, score 40-1.
	results := match.Rank("paneet", e, 0)
	assert.Len(t, results, 1)
	assert.Equal(t, 39, results[0].Score)
}

func TestRank_EditDistanceBeyondBudgetExcluded(t *testing.T) {
	e := []match.Entry{{ID: "x", Label: "paneer"}}

	results := match.Rank("butter", e, 0)
	assert.Empty(t, results)
}

func TestRank_ShortQueryHasNoFuzzBudget(t *testing.T) {
	// Two chars tolerate zero edits, so "xz" finds nothing.
	e := []match.Entry{{ID: "x", Label: "xy"}}
	assert.Empty(t, match.Rank("xz", e, 0))
}

func TestRank_CaseInsensitiveAndTrimmed(t *testing.T) {
	results := match.Rank("  BASM  ", entries(), 0)

	assert.NotEmpty(t, results)
	assert.Equal(t, "1001", results[0].Entry.ID)
}

func TestRank_EmptyQueryNothingScores(t *testing.T) {
	// An empty query prefixes every label, so everything scores 80.
	results := match.Rank("", entries(), 0)
	assert.Len(t, results, 4)
	for _, r := range results {
		assert.Equal(t, 80, r.Score)
	}
}

// --- ordering, stability and truncation ---

func TestRank_TiesKeepInputOrder(t *testing.T) {
	results := match.Rank("rice", entries(), 0)

	// 1001 and 1003 both score 70; 1001 comes first in the catalog.
	assert.Equal(t, "1001", results[1].Entry.ID)
	assert.Equal(t, "1003", results[2].Entry.ID)
}

func TestRank_Deterministic(t *testing.T) {
	a := match.Rank("rice", entries(), 0)
	b := match.Rank("rice", entries(), 0)
	assert.Equal(t, a, b)
}

func TestRank_DefaultLimit(t *testing.T) {
	var many []match.Entry
	for i := 0; i < 20; i++ {
		many = append(many, match.Entry{ID: string(rune('a' + i)), Label: "rice"})
	}

	results := match.Rank("rice", many, 0)
	assert.Len(t, results, match.DefaultLimit)
}

func TestRank_ExplicitLimit(t *testing.T) {
	results := match.Rank("rice", entries(), 2)
	assert.Len(t, results, 2)
}

// --- Levenshtein ---

func TestLevenshtein(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"paneer", "paneet", 1},
		{"sunday", "saturday", 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, match.Levenshtein(c.a, c.b), "%q vs %q", c.a, c.b)
	}
}
