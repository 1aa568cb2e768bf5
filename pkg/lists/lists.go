// Package lists joins items into natural-language enumerations such as
// "one, two and three". The final conjunction comes from the locale's
// "%s and %s" template, so translated catalogs control both the word and
// its placement.
package lists

import (
	"strings"

	"github.com/jackburrus/speakhuman/pkg/i18n"
)

// NaturalList joins items with commas and an English "and".
func NaturalList(items []string) string {
	return Join(i18n.English, items)
}

// Join renders items as a natural enumeration using the provider's
// conjunction template. Zero items yield the empty string and a single item
// is returned unchanged.
func Join(p i18n.Provider, items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}

	head := strings.Join(items[:len(items)-1], ", ")
	tail := items[len(items)-1]

	out := p.Gettext("%s and %s")
	out = strings.Replace(out, "%s", head, 1)
	return strings.Replace(out, "%s", tail, 1)
}
