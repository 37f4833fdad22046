package jobsearch

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/Rishita317/saas-security-signal-engine/internal/discover/util"
	"github.com/Rishita317/saas-security-signal-engine/internal/names"
)

// The search site's markup is not stable across renders, so company
// extraction is an ordered chain of decreasing-confidence strategies.
// The first strategy whose result survives cleaning and validation
// wins; a card where none succeed is dropped entirely.

type strategy func(card *goquery.Selection) string

var companyStrategies = []strategy{
	fromTestID,
	fromCompanyClass,
	fromDataAttr,
	fromCardText,
}

var atByPattern = regexp.MustCompile(`(?:at|by)\s+([A-Z][A-Za-z0-9\s.\-&]{2,50})`)

func extractCompany(card *goquery.Selection) (string, bool) {
	for _, s := range companyStrategies {
		raw := util.CleanText(s(card))
		if raw == "" {
			continue
		}
		name := names.Clean(raw)
		if name == "" {
			continue
		}
		if names.IsValidCompanyName(name) {
			return name, true
		}
	}
	return "", false
}

func fromTestID(card *goquery.Selection) string {
	return card.Find(`span[data-testid="company-name"]`).First().Text()
}

func fromCompanyClass(card *goquery.Selection) string {
	return card.Find("span[class*='company'], div[class*='company']").First().Text()
}

func fromDataAttr(card *goquery.Selection) string {
	v, _ := card.Find("span[data-company-name], div[data-company-name]").First().Attr("data-company-name")
	return v
}

// fromCardText is the last resort: scan the card's flattened text for
// an "at <Name>" / "by <Name>" mention.
func fromCardText(card *goquery.Selection) string {
	m := atByPattern.FindStringSubmatch(card.Text())
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
