package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// slugFold decomposes to NFKD, strips combining marks, and recomposes,
// so accented titles fold to their ASCII skeleton before slugging.
var slugFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives the normalized lowercase identifier for a title:
// diacritics folded, letters lowercased, every other run of characters
// collapsed to a single hyphen. Used when an upstream record carries a
// title but no slug; slugs present in the catalog are taken as-is.
func Slugify(title string) string {
	folded, _, err := transform.String(slugFold, title)
	if err != nil {
		folded = title
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingHyphen := false
	for _, r := range strings.ToLower(folded) {
		isWord := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isWord {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
