// Package ats probes hosted applicant-tracking systems directly.
// Instead of crawling each platform, it backtracks from companies
// earlier adapters already found: guess the company's board URL from
// its name, probe it with a short timeout, and only scan for security
// roles when the probe lands on the platform's own domain.
package ats

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Rishita317/saas-security-signal-engine/internal/discover/util"
	"github.com/Rishita317/saas-security-signal-engine/internal/domain"
	"github.com/Rishita317/saas-security-signal-engine/internal/registry"
)

const listingsPerBoard = 10

type Prober struct {
	platform  Platform
	hc        *http.Client
	limiter   *util.HostLimiter
	keywords  []string // security title vocabulary
	seedLimit int
}

func NewProber(platform Platform, timeout time.Duration, limiter *util.HostLimiter, keywords []string, seedLimit int) *Prober {
	return &Prober{
		platform:  platform,
		hc:        &http.Client{Timeout: timeout},
		limiter:   limiter,
		keywords:  keywords,
		seedLimit: seedLimit,
	}
}

func (p *Prober) Name() string { return "ats:" + p.platform.Name }

// Discover probes up to seedLimit already-known companies and records
// at most one JobSignal per company. Trades completeness for never
// crawling the platform.
func (p *Prober) Discover(ctx context.Context, reg *registry.Registry, max int) ([]string, error) {
	seeds := reg.Names()
	if p.seedLimit > 0 && len(seeds) > p.seedLimit {
		seeds = seeds[:p.seedLimit]
	}

	var keys []string
	for _, company := range seeds {
		if len(keys) >= max {
			break
		}
		if ctx.Err() != nil {
			break
		}

		job, err := p.probeCompany(ctx, company)
		if err != nil || job == nil {
			continue
		}
		key, ok := reg.Upsert(company, job, nil)
		if !ok {
			continue
		}
		keys = append(keys, key)
	}

	log.Printf("[ats:%s] probed=%d hits=%d", p.platform.Name, len(seeds), len(keys))
	return keys, nil
}

// probeCompany tries each candidate board URL until one resolves to
// the platform's domain, then scans its listings. A nil, nil return
// means "no board or no security roles", which is the common case.
func (p *Prober) probeCompany(ctx context.Context, company string) (*domain.JobSignal, error) {
	for _, candidate := range p.platform.CandidateURLs(company) {
		if err := p.limiter.WaitURL(ctx, candidate); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, candidate, nil)
		if err != nil {
			continue
		}
		req.Header.Set("User-Agent", "Mozilla/5.0")

		res, err := p.hc.Do(req)
		if err != nil {
			continue // try next URL pattern
		}

		finalHost := strings.ToLower(res.Request.URL.Host)
		if res.StatusCode != http.StatusOK || !strings.Contains(finalHost, p.platform.HostSuffix) {
			res.Body.Close()
			continue
		}

		job, err := p.scanListings(res, candidate)
		res.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("%s scan: %w", p.platform.Name, err)
		}
		// valid board found; whether or not it had security roles,
		// other URL patterns won't do better
		return job, nil
	}
	return nil, nil
}

func (p *Prober) scanListings(res *http.Response, pageURL string) (*domain.JobSignal, error) {
	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, err
	}

	var job *domain.JobSignal
	doc.Find("a[href*='" + p.platform.JobHref + "']").EachWithBreak(func(i int, link *goquery.Selection) bool {
		if i >= listingsPerBoard {
			return false
		}
		title := util.CleanText(link.Text())
		if title == "" {
			return true
		}
		if _, hit := util.ContainsAny(title, p.keywords); !hit {
			return true
		}
		href, _ := link.Attr("href")
		job = &domain.JobSignal{
			Title:      title,
			Source:     p.platform.Display,
			URL:        util.CanonicalizeURL(util.ResolveHref(pageURL, href)),
			Location:   "Multiple Locations",
			PostedDate: "Recent",
		}
		return false // first match wins, move to next company
	})
	return job, nil
}
