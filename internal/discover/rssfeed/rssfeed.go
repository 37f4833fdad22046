// Package rssfeed collects conversation signals from security
// publishers' RSS feeds. Each publisher is keyed into the registry as
// a pseudo-company.
package rssfeed

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/Rishita317/saas-security-signal-engine/internal/config"
	"github.com/Rishita317/saas-security-signal-engine/internal/discover/util"
	"github.com/Rishita317/saas-security-signal-engine/internal/domain"
	"github.com/Rishita317/saas-security-signal-engine/internal/registry"
)

const itemsPerFeed = 10

type Adapter struct {
	publishers []config.Publisher
	keywords   []string
	hc         *http.Client
	limiter    *util.HostLimiter
	parser     *gofeed.Parser
}

func New(publishers []config.Publisher, keywords []string, timeout time.Duration, limiter *util.HostLimiter) *Adapter {
	return &Adapter{
		publishers: publishers,
		keywords:   keywords,
		hc:         &http.Client{Timeout: timeout},
		limiter:    limiter,
		parser:     gofeed.NewParser(),
	}
}

func (a *Adapter) Name() string { return "rss" }

// Discover walks the publisher feeds in order. For this adapter max is
// a post budget, not a company budget: collection stops once that many
// matching items have been recorded.
func (a *Adapter) Discover(ctx context.Context, reg *registry.Registry, max int) ([]string, error) {
	found := make(map[string]struct{})
	var keys []string
	collected := 0

	for _, pub := range a.publishers {
		if collected >= max {
			break
		}
		if ctx.Err() != nil {
			break
		}

		feed, err := a.fetchFeed(ctx, pub.Feed)
		if err != nil {
			log.Printf("[rss] publisher=%q error: %v", pub.Name, err)
			continue
		}

		items := feed.Items
		if len(items) > itemsPerFeed {
			items = items[:itemsPerFeed]
		}
		for _, item := range items {
			if collected >= max {
				break
			}
			title := util.CleanText(item.Title)
			if title == "" || item.Link == "" {
				continue
			}
			if _, hit := util.ContainsAny(title, a.keywords); !hit {
				continue
			}

			key, ok := reg.Upsert(pub.Name, nil, &domain.PostSignal{
				Title:       title,
				URL:         item.Link,
				PublishedAt: publishedAt(item),
				Source:      "RSS Feed",
			})
			if !ok {
				continue
			}
			collected++
			if _, seen := found[key]; !seen {
				found[key] = struct{}{}
				keys = append(keys, key)
			}
		}
	}

	log.Printf("[rss] posts=%d publishers=%d", collected, len(found))
	return keys, nil
}

func (a *Adapter) fetchFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	if err := a.limiter.WaitURL(ctx, feedURL); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	res, err := a.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rss get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rss status %d", res.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("rss read: %w", err)
	}
	feed, err := a.parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("rss parse: %w", err)
	}
	return feed, nil
}

func publishedAt(item *gofeed.Item) string {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.Format(time.RFC3339)
	}
	if item.Published != "" {
		return item.Published
	}
	return "Recent"
}
