package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Clause is one parsed filter condition from the query mini-language.
// Each clause is a predicate over a single Problem field; a parsed query
// is the conjunction of its clauses.
type Clause int

const (
	ClauseEasy Clause = iota
	ClauseNotEasy
	ClauseMedium
	ClauseNotMedium
	ClauseHard
	ClauseNotHard
	ClauseLocked
	ClauseUnlocked
	ClauseDone
	ClauseNotDone
	ClauseStarred
	ClauseUnstarred
)

// clauseTokens maps each query character to its clause. Case matters:
// lowercase selects an axis, uppercase negates it.
var clauseTokens = map[rune]Clause{
	'e': ClauseEasy,
	'E': ClauseNotEasy,
	'm': ClauseMedium,
	'M': ClauseNotMedium,
	'h': ClauseHard,
	'H': ClauseNotHard,
	'l': ClauseLocked,
	'L': ClauseUnlocked,
	'd': ClauseDone,
	'D': ClauseNotDone,
	's': ClauseStarred,
	'S': ClauseUnstarred,
}

// ParseQuery parses a query string into clauses, one per recognized
// character, in the order encountered. Unrecognized characters are
// silently skipped and the empty string parses to no clauses at all,
// so parsing never fails. Use ParseQueryStrict to reject bad tokens.
func ParseQuery(query string) []Clause {
	var clauses []Clause
	for _, r := range query {
		if c, ok := clauseTokens[r]; ok {
			clauses = append(clauses, c)
		}
	}
	return clauses
}

// ErrUnknownToken indicates a strict parse hit a character outside the
// mini-language.
var ErrUnknownToken = errors.New("unrecognized token")

// ParseQueryStrict parses like ParseQuery but returns an error naming
// every unrecognized character instead of skipping them. On clean input
// the result is identical to ParseQuery.
func ParseQueryStrict(query string) ([]Clause, error) {
	if bad := unknownTokens(query, func(r rune) bool { _, ok := clauseTokens[r]; return ok }); bad != "" {
		return nil, fmt.Errorf("%w: %q in query %q", ErrUnknownToken, bad, query)
	}
	return ParseQuery(query), nil
}

// unknownTokens collects the characters of s rejected by known, keeping
// first-occurrence order without duplicates.
func unknownTokens(s string, known func(rune) bool) string {
	var bad strings.Builder
	for _, r := range s {
		if !known(r) && !strings.ContainsRune(bad.String(), r) {
			bad.WriteRune(r)
		}
	}
	return bad.String()
}

// Match reports whether p satisfies the clause's predicate.
func (c Clause) Match(p Problem) bool {
	switch c {
	case ClauseEasy:
		return p.Level == LevelEasy
	case ClauseNotEasy:
		return p.Level != LevelEasy
	case ClauseMedium:
		return p.Level == LevelMedium
	case ClauseNotMedium:
		return p.Level != LevelMedium
	case ClauseHard:
		return p.Level == LevelHard
	case ClauseNotHard:
		return p.Level != LevelHard
	case ClauseLocked:
		return p.Locked
	case ClauseUnlocked:
		return !p.Locked
	case ClauseDone:
		return p.Done
	case ClauseNotDone:
		return !p.Done
	case ClauseStarred:
		return p.Starred
	case ClauseUnstarred:
		return !p.Starred
	default:
		return false
	}
}

// String returns the clause name, for diagnostics.
func (c Clause) String() string {
	names := [...]string{
		ClauseEasy:      "Easy",
		ClauseNotEasy:   "NotEasy",
		ClauseMedium:    "Medium",
		ClauseNotMedium: "NotMedium",
		ClauseHard:      "Hard",
		ClauseNotHard:   "NotHard",
		ClauseLocked:    "Locked",
		ClauseUnlocked:  "Unlocked",
		ClauseDone:      "Done",
		ClauseNotDone:   "NotDone",
		ClauseStarred:   "Starred",
		ClauseUnstarred: "Unstarred",
	}
	if int(c) < len(names) {
		return names[c]
	}
	return fmt.Sprintf("Clause(%d)", int(c))
}

// MatchAll reports whether p satisfies the conjunction of every clause.
// An empty clause slice matches everything. Opposite clauses on the same
// axis make the conjunction unsatisfiable; that is a valid query with an
// empty result, not an error.
func MatchAll(p Problem, clauses []Clause) bool {
	for _, c := range clauses {
		if !c.Match(p) {
			return false
		}
	}
	return true
}
