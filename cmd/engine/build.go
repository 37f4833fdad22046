package main

import (
	"context"
	"log"
	"time"

	"github.com/Rishita317/saas-security-signal-engine/internal/config"
	"github.com/Rishita317/saas-security-signal-engine/internal/discover"
	"github.com/Rishita317/saas-security-signal-engine/internal/discover/ats"
	"github.com/Rishita317/saas-security-signal-engine/internal/discover/browser"
	"github.com/Rishita317/saas-security-signal-engine/internal/discover/jobsearch"
	"github.com/Rishita317/saas-security-signal-engine/internal/discover/portfolio"
	"github.com/Rishita317/saas-security-signal-engine/internal/discover/rssfeed"
	"github.com/Rishita317/saas-security-signal-engine/internal/discover/util"
	"github.com/Rishita317/saas-security-signal-engine/internal/domain"
)

// buildEngine assembles the adapter chain from enabled sources, in
// fixed priority order: broad keyword search first, then portfolio
// membership, then ATS backtracking seeded by what the first two
// found, then RSS conversations.
func buildEngine(cfg config.Config) *discover.Engine {
	limiter := util.NewHostLimiter(cfg.HTTP.ReqPerSec, cfg.HTTP.Burst)
	httpTimeout := time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second
	probeTimeout := time.Duration(cfg.HTTP.ProbeSeconds) * time.Second

	eng := &discover.Engine{}

	if cfg.Sources.JobSearch.Enabled {
		eng.Hiring = append(eng.Hiring, jobsearch.New(jobsearch.Config{
			BaseURL:  cfg.Sources.JobSearch.BaseURL,
			Keywords: cfg.Sources.JobSearch.Keywords,
			Delay:    time.Duration(cfg.HTTP.DelayMillis) * time.Millisecond,
		}, browserSessions()))
	}

	if cfg.Sources.Portfolio.Enabled {
		eng.Hiring = append(eng.Hiring, portfolio.New(cfg.Sources.Portfolio.Boards, httpTimeout, limiter))
	}

	if cfg.Sources.ATS.Enabled {
		for _, name := range cfg.Sources.ATS.Platforms {
			platform, ok := ats.ForName(name)
			if !ok {
				log.Printf("[engine] unknown ats platform %q, skipping", name)
				continue
			}
			eng.Hiring = append(eng.Hiring, ats.NewProber(
				platform, probeTimeout, limiter,
				cfg.Keywords.SecurityTitles, cfg.Budgets.SeedLimit,
			))
		}
	}

	if cfg.Sources.RSS.Enabled {
		eng.Conversation = append(eng.Conversation, rssfeed.New(
			cfg.Sources.RSS.Publishers, cfg.Keywords.Conversation, httpTimeout, limiter,
		))
	}

	return eng
}

// browserSessions acquires a fresh headless browser per keyword search
// and guarantees teardown before the next acquisition.
func browserSessions() jobsearch.SessionFactory {
	return func(ctx context.Context) (browser.Fetcher, func(), error) {
		s, err := browser.NewSession(ctx)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
}

func printSummary(entries []domain.TrackerEntry, sum discover.Summary) {
	counts := map[string]int{}
	for _, e := range entries {
		counts[e.ActivityType]++
	}

	log.Printf("[summary] companies=%d jobs=%d posts=%d", sum.Companies, sum.Jobs, sum.Posts)
	log.Printf("[summary] both=%d hiring_only=%d talking_only=%d discovered=%d",
		counts[domain.ActivityBoth], counts[domain.ActivityHiringOnly],
		counts[domain.ActivityTalkonly], counts[domain.ActivityDiscovered])

	top := entries
	if len(top) > 10 {
		top = top[:10]
	}
	for i, e := range top {
		log.Printf("[summary] #%d %s (%s) roles=%d posts=%d", i+1, e.CompanyName, e.ActivityType, e.RoleCount, e.PostCount)
	}
}
