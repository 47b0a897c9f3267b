package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify folds accents, lower-cases s, collapses every run of characters
// outside [a-z0-9] into one hyphen and trims hyphens from both ends.
func Slugify(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}

	lower := cases.Lower(language.Und).String(folded)
	return strings.Trim(nonSlugRun.ReplaceAllString(lower, "-"), "-")
}
