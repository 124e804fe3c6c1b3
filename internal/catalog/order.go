package catalog

import (
	"cmp"
	"fmt"
	"strings"
)

// SortKey pairs a sort axis with a direction.
type SortKey int

const (
	SortIDAsc SortKey = iota
	SortIDDesc
	SortTitleAsc
	SortTitleDesc
	SortLevelAsc
	SortLevelDesc
)

// orderTokens maps each order character to its sort key. As with query
// tokens, uppercase flips the direction.
var orderTokens = map[rune]SortKey{
	'i': SortIDAsc,
	'I': SortIDDesc,
	't': SortTitleAsc,
	'T': SortTitleDesc,
	'd': SortLevelAsc,
	'D': SortLevelDesc,
}

// ParseOrder parses an order string into sort keys with left-to-right
// priority: the first key is the primary sort, later keys break ties.
// Unrecognized characters are silently skipped; the empty string parses
// to no keys, which callers treat as "use the default ordering".
func ParseOrder(order string) []SortKey {
	var keys []SortKey
	for _, r := range order {
		if k, ok := orderTokens[r]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// ParseOrderStrict parses like ParseOrder but returns an error naming
// every unrecognized character instead of skipping them.
func ParseOrderStrict(order string) ([]SortKey, error) {
	if bad := unknownTokens(order, func(r rune) bool { _, ok := orderTokens[r]; return ok }); bad != "" {
		return nil, fmt.Errorf("%w: %q in order %q", ErrUnknownToken, bad, order)
	}
	return ParseOrder(order), nil
}

// compare orders a against b under this key: negative when a sorts
// first, positive when b does, zero when the key cannot distinguish
// them. Descending variants negate this key's comparison only; the
// final sequence is never reversed wholesale.
func (k SortKey) compare(a, b Problem) int {
	switch k {
	case SortIDAsc:
		return cmp.Compare(a.ID, b.ID)
	case SortIDDesc:
		return -cmp.Compare(a.ID, b.ID)
	case SortTitleAsc:
		return strings.Compare(a.TitleSlug, b.TitleSlug)
	case SortTitleDesc:
		return -strings.Compare(a.TitleSlug, b.TitleSlug)
	case SortLevelAsc:
		return cmp.Compare(a.Level, b.Level)
	case SortLevelDesc:
		return -cmp.Compare(a.Level, b.Level)
	default:
		return 0
	}
}

// String returns the sort key name, for diagnostics.
func (k SortKey) String() string {
	names := [...]string{
		SortIDAsc:     "IDAsc",
		SortIDDesc:    "IDDesc",
		SortTitleAsc:  "TitleAsc",
		SortTitleDesc: "TitleDesc",
		SortLevelAsc:  "LevelAsc",
		SortLevelDesc: "LevelDesc",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}
