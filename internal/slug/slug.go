// Package slug derives URL path segments from product names.
package slug

import (
	"regexp"
	"strings"
	"unicode"
)

var reHyphens = regexp.MustCompile(`-+`)

// Make lowercases name, turns whitespace runs into hyphens, drops everything that is
// not a letter, digit, underscore or hyphen, and collapses/trims hyphens.
// Make(Make(x)) == Make(x) for every x. Uniqueness is not guaranteed.
func Make(name string) string {
	s := strings.ToLower(name)
	s = strings.Join(strings.Fields(s), "-")
	s = strings.Map(func(r rune) rune {
		if isWord(r) || r == '-' {
			return r
		}
		return -1
	}, s)
	s = reHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
