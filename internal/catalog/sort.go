package catalog

import "slices"

// defaultOrder mirrors the natural field order of the record: id, then
// title slug, then difficulty, ascending. IDs are unique, so in practice
// this behaves as an ascending-by-id sort; the later keys only matter
// for defect-bearing snapshots with duplicate ids.
var defaultOrder = []SortKey{SortIDAsc, SortTitleAsc, SortLevelAsc}

// Sort orders problems in place by the given keys with left-to-right
// precedence: the first key that distinguishes two records decides, and
// records equal under every key keep their input order (the sort is
// stable). A nil or empty key slice selects the default ordering.
func Sort(problems []Problem, keys []SortKey) {
	if len(keys) == 0 {
		keys = defaultOrder
	}
	slices.SortStableFunc(problems, func(a, b Problem) int {
		for _, k := range keys {
			if c := k.compare(a, b); c != 0 {
				return c
			}
		}
		return 0
	})
}
