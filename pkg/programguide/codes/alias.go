package codes

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	multipleHyphens = regexp.MustCompile(`-+`)
)

// Slugify converts an ASCII display string to a lowercase hyphenated slug.
// "Sports - Baseball" -> "sports-baseball".
// "NHK BS1 (102ch)" -> "nhk-bs1-102ch".
func Slugify(s string) string {
	s = norm.NFKD.String(s)
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII {
			return -1
		}
		return r
	}, s)
	s = strings.ToLower(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = multipleHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// expandAliases returns the declared aliases followed by the derived ones,
// without duplicates and without the entry name itself.
//
// Derived forms: the width-folded spelling of the name and of every alias
// ("ＮＨＫ総合１" -> "NHK総合1"), and the slug of every spelling that is pure
// ASCII. Slugs of mixed-script strings are skipped because dropping the
// non-ASCII runes would leave unrelated entries with the same slug.
func expandAliases(name string, declared []string) []string {
	seen := map[string]bool{name: true, "": true}
	var out []string
	add := func(s string) {
		if seen[s] {
			return
		}
		seen[s] = true
		out = append(out, s)
	}

	for _, a := range declared {
		add(a)
	}

	spellings := append([]string{name}, declared...)
	for _, s := range spellings {
		add(width.Fold.String(s))
	}
	for _, s := range spellings {
		folded := width.Fold.String(s)
		if isASCII(folded) {
			add(Slugify(folded))
		}
	}

	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > unicode.MaxASCII {
			return false
		}
	}
	return true
}
