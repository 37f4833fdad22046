package names

import (
	"regexp"
	"strings"
)

// noiseRule pairs a pattern with the reason it exists, so the blocklist
// stays reviewable and testable as plain data.
type noiseRule struct {
	re     *regexp.Regexp
	reason string
}

var noiseRules = []noiseRule{
	{regexp.MustCompile(`(?i)\btosign\b`), "mangled sign-in fragment"},
	{regexp.MustCompile(`(?i)\binorcreate\b`), "mangled sign-in fragment"},
	{regexp.MustCompile(`(?i)\baccount\b.*\bsave\b`), "account CTA"},
	{regexp.MustCompile(`(?i)^e\s`), "truncated HTML fragment"},
	{regexp.MustCompile(`(?i)^e$`), "truncated HTML fragment"},
	{regexp.MustCompile(`(?i)need\s*to`), "login prompt"},
	{regexp.MustCompile(`(?i)sign\s*in`), "login prompt"},
	{regexp.MustCompile(`(?i)create\s*an`), "signup prompt"},
	{regexp.MustCompile(`(?i)post\s*a\s*job`), "employer CTA"},
	{regexp.MustCompile(`(?i)apply\s*for`), "apply CTA"},
	{regexp.MustCompile(`(?i)maximum\s*exposure`), "employer upsell copy"},
	{regexp.MustCompile(`(?i)^hiring\s*companies$`), "section heading"},
	{regexp.MustCompile(`(?i)^latest\s*news$`), "section heading"},
	{regexp.MustCompile(`(?i)why\s*choose`), "marketing copy"},
	{regexp.MustCompile(`(?i)need.*account`), "login prompt"},
	{regexp.MustCompile(`(?i)you\s*need`), "login prompt"},
	{regexp.MustCompile(`(?i)apply$`), "apply CTA tail"},
	{regexp.MustCompile(`(?i)^ed\s*today`), "truncated 'posted today'"},
	{regexp.MustCompile(`(?i)^es\s*to\s*apply`), "truncated CTA"},
	{regexp.MustCompile(`(?i)^terson\s`), "truncated location"},
	{regexp.MustCompile(`(?i)^ion\s`), "truncated title"},
	{regexp.MustCompile(`(?i)see\s*wha$`), "truncated 'see what'"},
	{regexp.MustCompile(`(?i)description\s*see`), "run-together card text"},
	{regexp.MustCompile(`(?i)not\s*specified`), "placeholder value"},
}

// genericTerms are exact (case-insensitive) strings that show up as
// "company names" when a selector lands on chrome instead of content.
var genericTerms = map[string]struct{}{
	"job":               {},
	"jobs":              {},
	"apply":             {},
	"save":              {},
	"account":           {},
	"login":             {},
	"sign in":           {},
	"post a job":        {},
	"latest news":       {},
	"hiring companies":  {},
	"careers":           {},
	"security":          {},
	"you need":          {},
	"create an account": {},
	"maximum exposure":  {},
}

var (
	hasLetter   = regexp.MustCompile(`[A-Za-z]`)
	startsAlnum = regexp.MustCompile(`^[A-Za-z0-9]`)
)

// IsValidCompanyName reports whether extracted text is plausibly a real
// company name rather than UI noise. Every adapter scrapes HTML meant
// for humans, so this is the single choke point keeping button labels,
// breadcrumbs and half-rendered strings out of the registry.
func IsValidCompanyName(candidate string) bool {
	name := strings.TrimSpace(candidate)
	if len(name) < 2 || len(name) > 100 {
		return false
	}
	if !hasLetter.MatchString(name) {
		return false
	}
	for _, rule := range noiseRules {
		if rule.re.MatchString(name) {
			return false
		}
	}
	if _, hit := genericTerms[strings.ToLower(name)]; hit {
		return false
	}
	return startsAlnum.MatchString(name)
}
