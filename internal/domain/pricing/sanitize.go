package pricing

import "strings"

// SanitizePriceInput keeps only ASCII digits and '.' from a price typed into the
// table editor. Commas are dropped, not converted: "12a.3,4" becomes "12.34".
// An empty result is kept as the "touched but blank" marker.
func SanitizePriceInput(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
