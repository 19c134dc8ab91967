package textutil

import (
	"regexp"
	"strings"
)

var separatorRegex = regexp.MustCompile(`[\s_-]+`)

// NormalizeName lowercases a user supplied name and drops whitespace,
// hyphens and underscores so "Hydro-xide " and "hydroxide" compare equal.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	return separatorRegex.ReplaceAllString(name, "")
}
