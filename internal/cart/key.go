package cart

import (
	"sort"
	"strings"
)

// Modes discriminate how a product entered the cart, so a whole
// catering package and a per-item addition of the same product never
// share a key.
const (
	ModeItem    = "item"
	ModePackage = "package"
)

// LineKey builds the composite identity for a cart line: base product
// id, the mode discriminator, and the chosen extras in sorted order.
// Two additions with the same key are the same configuration and merge;
// any difference in extras yields a distinct line.
func LineKey(baseID, mode string, extras []string) string {
	parts := []string{baseID, mode}

	if len(extras) > 0 {
		sorted := make([]string, len(extras))
		copy(sorted, extras)
		sort.Strings(sorted)
		parts = append(parts, strings.Join(sorted, ","))
	}

	return strings.Join(parts, "|")
}
