package catalog

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseQuery_ValidTokens tests that every valid character yields one
// clause, in the order encountered.
func TestParseQuery_ValidTokens(t *testing.T) {
	clauses := ParseQuery("eEmMhHlLdDsS")

	require.Len(t, clauses, 12)
	assert.Equal(t, []Clause{
		ClauseEasy, ClauseNotEasy,
		ClauseMedium, ClauseNotMedium,
		ClauseHard, ClauseNotHard,
		ClauseLocked, ClauseUnlocked,
		ClauseDone, ClauseNotDone,
		ClauseStarred, ClauseUnstarred,
	}, clauses)
}

// TestParseQuery_Empty tests that the empty string parses to no clauses.
func TestParseQuery_Empty(t *testing.T) {
	assert.Empty(t, ParseQuery(""))
}

// TestParseQuery_SkipsUnrecognized tests the permissive parse policy:
// output equals the parse of the input with invalid characters removed.
func TestParseQuery_SkipsUnrecognized(t *testing.T) {
	tests := []struct {
		name  string
		noisy string
		clean string
	}{
		{"punctuation", "e,D!", "eD"},
		{"digits", "1m2M3", "mM"},
		{"all noise", "xyz*?", ""},
		{"wrong case is noise only off-axis", "qQeZ", "e"},
		{"unicode noise", "héd", "hd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, ParseQuery(tt.clean), ParseQuery(tt.noisy))
		})
	}
}

// TestParseQuery_DuplicatesPreserved tests that repeated tokens yield
// repeated clauses; duplicates are redundant under conjunction, not an
// error.
func TestParseQuery_DuplicatesPreserved(t *testing.T) {
	clauses := ParseQuery("eee")
	assert.Equal(t, []Clause{ClauseEasy, ClauseEasy, ClauseEasy}, clauses)
}

// TestParseQueryStrict tests the opt-in strict mode: identical output on
// clean input, an error naming the bad characters otherwise.
func TestParseQueryStrict(t *testing.T) {
	clauses, err := ParseQueryStrict("mdLs")
	require.NoError(t, err)
	assert.Equal(t, ParseQuery("mdLs"), clauses)

	_, err = ParseQueryStrict("e?D?x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownToken)
	assert.Contains(t, err.Error(), `"?x"`)
}

// TestClauseMatch tests the predicate table for every clause variant.
func TestClauseMatch(t *testing.T) {
	p := Problem{ID: 1, TitleSlug: "two-sum", Level: LevelMedium, Done: true, Locked: false, Starred: true}

	tests := []struct {
		clause Clause
		want   bool
	}{
		{ClauseEasy, false},
		{ClauseNotEasy, true},
		{ClauseMedium, true},
		{ClauseNotMedium, false},
		{ClauseHard, false},
		{ClauseNotHard, true},
		{ClauseLocked, false},
		{ClauseUnlocked, true},
		{ClauseDone, true},
		{ClauseNotDone, false},
		{ClauseStarred, true},
		{ClauseUnstarred, false},
	}

	for _, tt := range tests {
		t.Run(tt.clause.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.clause.Match(p))
		})
	}
}

// TestMatchAll_ConjunctionLaw tests that MatchAll agrees with evaluating
// every clause independently, across randomized records and clause sets.
func TestMatchAll_ConjunctionLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	allClauses := []Clause{
		ClauseEasy, ClauseNotEasy, ClauseMedium, ClauseNotMedium,
		ClauseHard, ClauseNotHard, ClauseLocked, ClauseUnlocked,
		ClauseDone, ClauseNotDone, ClauseStarred, ClauseUnstarred,
	}

	for i := 0; i < 500; i++ {
		p := Problem{
			ID:      rng.Intn(1000) + 1,
			Level:   rng.Intn(3) + 1,
			Done:    rng.Intn(2) == 0,
			Locked:  rng.Intn(2) == 0,
			Starred: rng.Intn(2) == 0,
		}

		clauses := make([]Clause, rng.Intn(5))
		for j := range clauses {
			clauses[j] = allClauses[rng.Intn(len(allClauses))]
		}

		want := true
		for _, c := range clauses {
			want = want && c.Match(p)
		}

		assert.Equal(t, want, MatchAll(p, clauses), "record %+v clauses %v", p, clauses)
	}
}

// TestMatchAll_EmptyMatchesEverything tests that no clauses means no
// constraints.
func TestMatchAll_EmptyMatchesEverything(t *testing.T) {
	assert.True(t, MatchAll(Problem{Level: 7}, nil))
	assert.True(t, MatchAll(Problem{}, []Clause{}))
}

// TestMatchAll_Contradiction tests that opposite clauses on the same axis
// are unsatisfiable for any record.
func TestMatchAll_Contradiction(t *testing.T) {
	contradiction := ParseQuery("eE")

	for level := 0; level <= 4; level++ {
		assert.False(t, MatchAll(Problem{Level: level}, contradiction), "level %d", level)
	}
}
