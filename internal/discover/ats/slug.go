package ats

import (
	"regexp"
	"strings"
)

var (
	nonAlnum    = regexp.MustCompile(`[^a-z0-9]+`)
	nonAlnumGap = regexp.MustCompile(`[^a-z0-9-]+`)
	spaceRun    = regexp.MustCompile(`\s+`)
)

// CondensedSlug guesses the URL slug style that runs a name together:
// "Palo Alto Networks" -> "paloaltonetworks".
func CondensedSlug(name string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(name), "")
}

// HyphenSlug guesses the hyphenated style: "Palo Alto Networks" ->
// "palo-alto-networks".
func HyphenSlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = spaceRun.ReplaceAllString(s, "-")
	s = nonAlnumGap.ReplaceAllString(s, "")
	return strings.Trim(s, "-")
}
