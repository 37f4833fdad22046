// Package jobsearch discovers companies from an Indeed-style job
// search site. Result pages are fetched through a headless browser
// because the card markup is not fully rendered for plain HTTP
// clients.
package jobsearch

import (
	"context"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Rishita317/saas-security-signal-engine/internal/discover/browser"
	"github.com/Rishita317/saas-security-signal-engine/internal/discover/util"
	"github.com/Rishita317/saas-security-signal-engine/internal/domain"
	"github.com/Rishita317/saas-security-signal-engine/internal/registry"
)

type Config struct {
	BaseURL  string
	Keywords []string
	Delay    time.Duration // pause between keyword searches
}

// SessionFactory acquires a page fetcher for one keyword search. The
// release func must be safe to call on every exit path.
type SessionFactory func(ctx context.Context) (browser.Fetcher, func(), error)

type Adapter struct {
	cfg      Config
	sessions SessionFactory
}

func New(cfg Config, sessions SessionFactory) *Adapter {
	return &Adapter{cfg: cfg, sessions: sessions}
}

func (a *Adapter) Name() string { return "jobsearch" }

// Discover issues one search per configured role keyword and walks the
// result cards. Failures are contained per keyword: a dead session or
// an unparseable page skips that search only.
func (a *Adapter) Discover(ctx context.Context, reg *registry.Registry, max int) ([]string, error) {
	found := make(map[string]struct{})
	var keys []string
	skipped := 0

	for _, keyword := range a.cfg.Keywords {
		if len(found) >= max {
			break
		}
		if ctx.Err() != nil {
			break
		}

		fetcher, release, err := a.sessions(ctx)
		if err != nil {
			// persistent inability to get a browser is adapter-fatal;
			// return what we have
			log.Printf("[jobsearch] session acquire failed: %v", err)
			return keys, err
		}

		searchURL := a.searchURL(keyword)
		html, err := fetcher.HTML(ctx, searchURL)
		release()
		if err != nil {
			log.Printf("[jobsearch] keyword=%q fetch error: %v", keyword, err)
			continue
		}

		doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
		if err != nil {
			log.Printf("[jobsearch] keyword=%q parse error: %v", keyword, err)
			continue
		}

		doc.Find("div.job_seen_beacon").EachWithBreak(func(_ int, card *goquery.Selection) bool {
			if len(found) >= max {
				return false
			}

			company, ok := extractCompany(card)
			if !ok {
				skipped++
				return true
			}
			title := extractTitle(card)
			if title == "" {
				skipped++
				return true
			}

			jobURL := a.extractJobURL(card, searchURL)
			key, ok := reg.Upsert(company, &domain.JobSignal{
				Title:    title,
				Source:   "jobsearch",
				URL:      util.CanonicalizeURL(jobURL),
				Location: "Various",
			}, nil)
			if !ok {
				skipped++
				return true
			}
			if _, seen := found[key]; !seen {
				found[key] = struct{}{}
				keys = append(keys, key)
			}
			return true
		})

		if a.cfg.Delay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(a.cfg.Delay):
			}
		}
	}

	log.Printf("[jobsearch] companies=%d skipped_cards=%d", len(found), skipped)
	return keys, nil
}

func (a *Adapter) searchURL(keyword string) string {
	q := url.QueryEscape(keyword)
	return strings.TrimRight(a.cfg.BaseURL, "/") + "/jobs?q=" + q + "&l="
}

func extractTitle(card *goquery.Selection) string {
	if t := util.CleanText(card.Find("h2.jobTitle").First().Text()); t != "" {
		return t
	}
	return util.CleanText(card.Find("h2[class*='title'], h3[class*='title'], a[class*='title']").First().Text())
}

func (a *Adapter) extractJobURL(card *goquery.Selection, fallback string) string {
	link := card.Find("a.jcs-JobTitle").First()
	if link.Length() == 0 {
		link = card.Find("a[href*='/rc/clk'], a[href*='/viewjob']").First()
	}
	href, ok := link.Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return fallback
	}
	return util.ResolveHref(a.cfg.BaseURL, href)
}
