package classify

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Rishita317/saas-security-signal-engine/internal/domain"
	"github.com/Rishita317/saas-security-signal-engine/internal/registry"
)

// ScoredPost is a conversation signal paired with its relevance
// verdict, ready for threshold filtering and export.
type ScoredPost struct {
	Company  string
	Post     domain.PostSignal
	Matched  []string
	Score    float64
	Category string
}

const enrichWorkers = 4

// ScorePosts classifies the registry's conversation signals. This runs
// after the sequential scrape phase, so bounded parallel calls to the
// classifier are fine here.
func (c *Client) ScorePosts(ctx context.Context, reg *registry.Registry, keywords []string) []ScoredPost {
	var posts []ScoredPost
	for _, rec := range reg.Records() {
		for _, p := range rec.Conversations {
			posts = append(posts, ScoredPost{
				Company: rec.Name,
				Post:    p,
				Matched: MatchedKeywords(p.Title, keywords),
			})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichWorkers)
	for i := range posts {
		i := i
		g.Go(func() error {
			res := c.Classify(gctx, Input{
				Company:  posts[i].Company,
				Title:    posts[i].Post.Title,
				Matched:  posts[i].Matched,
				Category: "SaaS Security",
			})
			posts[i].Score = res.Score
			posts[i].Category = res.Category
			return nil
		})
	}
	_ = g.Wait()

	return posts
}

// FilterRelevant keeps posts at or above the minimum relevance score.
func FilterRelevant(posts []ScoredPost, minScore float64) []ScoredPost {
	out := make([]ScoredPost, 0, len(posts))
	for _, p := range posts {
		if p.Score >= minScore {
			out = append(out, p)
		}
	}
	return out
}
