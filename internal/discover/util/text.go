package util

import "strings"

// CleanText collapses whitespace and strips non-breaking spaces that
// scraped HTML tends to carry.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// ContainsAny reports whether the lowercased haystack contains any of
// the needles. Empty needles are skipped.
func ContainsAny(haystack string, needles []string) (string, bool) {
	low := strings.ToLower(haystack)
	for _, n := range needles {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if strings.Contains(low, n) {
			return n, true
		}
	}
	return "", false
}
