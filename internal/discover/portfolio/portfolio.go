// Package portfolio discovers companies from venture-capital portfolio
// pages. Membership on a portfolio page is evidence of being in-market
// by itself, so no job or post detail is attached.
package portfolio

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Rishita317/saas-security-signal-engine/internal/config"
	"github.com/Rishita317/saas-security-signal-engine/internal/discover/util"
	"github.com/Rishita317/saas-security-signal-engine/internal/names"
	"github.com/Rishita317/saas-security-signal-engine/internal/registry"
)

type Adapter struct {
	boards  []config.Board
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(boards []config.Board, timeout time.Duration, limiter *util.HostLimiter) *Adapter {
	return &Adapter{
		boards:  boards,
		hc:      &http.Client{Timeout: timeout},
		limiter: limiter,
	}
}

func (a *Adapter) Name() string { return "portfolio" }

// hrefs that are navigation or social links, never portfolio companies
var skipHrefs = []string{
	"twitter", "linkedin", "facebook", "instagram",
	"about", "team", "contact", "news",
}

var (
	companyShape = regexp.MustCompile(`^[A-Za-z0-9\s.\-&]+$`)
	skipTexts    = map[string]struct{}{
		"view all": {}, "learn more": {}, "read more": {}, "see more": {},
		"portfolio": {}, "companies": {},
	}
)

func (a *Adapter) Discover(ctx context.Context, reg *registry.Registry, max int) ([]string, error) {
	found := make(map[string]struct{})
	var keys []string

	for _, board := range a.boards {
		if len(found) >= max {
			break
		}
		if ctx.Err() != nil {
			break
		}

		candidates, err := a.scanBoard(ctx, board)
		if err != nil {
			log.Printf("[portfolio] board=%q error: %v", board.Name, err)
			continue
		}

		for _, name := range candidates {
			if len(found) >= max {
				break
			}
			key, ok := reg.Upsert(name, nil, nil)
			if !ok {
				continue
			}
			if _, seen := found[key]; !seen {
				found[key] = struct{}{}
				keys = append(keys, key)
			}
		}
	}

	log.Printf("[portfolio] companies=%d from %d boards", len(found), len(a.boards))
	return keys, nil
}

func (a *Adapter) scanBoard(ctx context.Context, board config.Board) ([]string, error) {
	if err := a.limiter.WaitURL(ctx, board.URL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, board.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	res, err := a.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("portfolio get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("portfolio status %d", res.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, fmt.Errorf("portfolio parse: %w", err)
	}

	var out []string

	// anchors whose text looks like a company name
	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		low := strings.ToLower(href)
		for _, skip := range skipHrefs {
			if strings.Contains(low, skip) {
				return
			}
		}
		if name, ok := candidate(link.Text()); ok {
			out = append(out, name)
		}
	})

	// containers the VC sites typically wrap company cards in
	doc.Find("div[class*='company'], li[class*='company'], article[class*='company'], "+
		"div[class*='portfolio'], li[class*='portfolio'], "+
		"div[class*='card'], li[class*='grid-item']").Each(func(_ int, el *goquery.Selection) {
		if name, ok := candidate(el.Text()); ok {
			out = append(out, name)
		}
	})

	return out, nil
}

// candidate applies the portfolio-specific shape rules (2-50 chars,
// letters/digits plus limited punctuation) before the shared validator
// has its say downstream in the registry.
func candidate(text string) (string, bool) {
	name := util.CleanText(text)
	if len(name) < 2 || len(name) > 50 {
		return "", false
	}
	if strings.HasPrefix(name, "#") {
		return "", false
	}
	if !companyShape.MatchString(name) {
		return "", false
	}
	if _, skip := skipTexts[strings.ToLower(name)]; skip {
		return "", false
	}
	if !names.IsValidCompanyName(name) {
		return "", false
	}
	return name, true
}
