// Package place normalizes human-entered place names into stable keys so
// lookups and stored charts agree on spelling, width, and diacritics
package place

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// foldTransform strips diacritics and folds width variants
var foldTransform = transform.Chain(
	width.Fold,
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Key canonicalizes a place name for comparison and storage: width folded,
// diacritics removed, lowercased, inner whitespace collapsed
func Key(name string) string {
	out, _, err := transform.String(foldTransform, name)
	if err != nil {
		out = name
	}
	out = cases.Lower(language.Und).String(out)
	return strings.Join(strings.Fields(out), " ")
}

// Display tidies a place name for output without losing diacritics
func Display(name string) string {
	return cases.Title(language.Und).String(strings.Join(strings.Fields(name), " "))
}
