package names

import (
	"regexp"
	"strings"
)

var (
	legalSuffix  = regexp.MustCompile(`(?i)[\s,]+(inc\.?|llc\.?|corp\.?|corporation|ltd\.?|limited|co\.?)$`)
	parenTail    = regexp.MustCompile(`\s*\([^)]*\)\s*$`)
	leadArticle  = regexp.MustCompile(`(?i)^(the|a|an)\s+`)
	spaceCollide = regexp.MustCompile(`\s+`)
)

// Clean strips legal-entity suffixes, trailing parenthetical
// annotations and a leading article, and collapses whitespace.
// Returns "" when nothing usable remains.
func Clean(name string) string {
	s := strings.ReplaceAll(name, " ", " ")
	s = strings.TrimSpace(s)
	// stripping one layer can expose another ("Acme (NY) Inc." leaves
	// a paren tail once the suffix goes), so run the whole strip
	// sequence to a fixed point
	for {
		prev := s
		s = strings.TrimSpace(parenTail.ReplaceAllString(s, ""))
		s = strings.TrimSpace(legalSuffix.ReplaceAllString(s, ""))
		s = strings.TrimSpace(leadArticle.ReplaceAllString(s, ""))
		if s == prev {
			break
		}
	}
	s = spaceCollide.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	if len(s) <= 1 {
		return ""
	}
	return s
}

// Normalize produces the dedup key for a company name. Two names that
// normalize identically are treated as the same company ("Acme Inc."
// and "ACME" both become "acme"). Best-effort: false merges and false
// splits are possible and accepted.
func Normalize(name string) string {
	return strings.ToLower(Clean(name))
}
