package catalog

import "strings"

// Filter returns the problems satisfying every clause plus the keyword
// check, preserving the relative order of the input (filtering is stable,
// it never reorders).
//
// The keyword is lowercased and matched as a plain substring of the
// title slug; no tokenization, no fuzzy matching. An empty keyword
// matches every record, as does an empty clause slice. A contradictory
// clause set yields an empty result, not an error.
//
// Callers with no clauses and no keyword should skip Filter entirely and
// keep using their already-sorted slice; the bypass avoids allocating a
// copy of the full snapshot, not any behavioral difference.
func Filter(problems []Problem, clauses []Clause, keyword string) []Problem {
	keyword = strings.ToLower(keyword)

	filtered := make([]Problem, 0, len(problems))
	for _, p := range problems {
		if keyword != "" && !strings.Contains(p.TitleSlug, keyword) {
			continue
		}
		if !MatchAll(p, clauses) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}
