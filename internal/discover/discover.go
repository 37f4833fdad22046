// Package discover runs source adapters in priority order against a
// shared registry, bounded by a company-count target.
package discover

import (
	"context"
	"log"

	"github.com/Rishita317/saas-security-signal-engine/internal/registry"
)

// Adapter is one source-specific scraper. Discover fetches from its
// external system, writes signals into reg, and returns the normalized
// company keys it touched, at most max new ones. Adapters recover from
// per-unit failures themselves; a returned error means the adapter as
// a whole could not run (it still never aborts the overall run).
type Adapter interface {
	Name() string
	Discover(ctx context.Context, reg *registry.Registry, max int) ([]string, error)
}

// SourceStats is the per-adapter slice of a run summary.
type SourceStats struct {
	Source  string `json:"source"`
	Found   int    `json:"found"`
	Skipped int    `json:"skipped"`
	Err     string `json:"error,omitempty"`
}

// Summary reports what a whole discovery run produced.
type Summary struct {
	Companies int           `json:"companies"`
	Jobs      int           `json:"jobs"`
	Posts     int           `json:"posts"`
	Sources   []SourceStats `json:"sources"`
}

// Engine holds the adapter chain. Hiring adapters run first, broadest
// source first, each capped by the remaining company budget; then
// conversation adapters run capped by the post budget.
type Engine struct {
	Hiring       []Adapter
	Conversation []Adapter
}

// Run executes the whole discovery pipeline sequentially. Budget
// bookkeeping: later adapters only get target minus what earlier ones
// already found, so each does strictly incremental work.
func (e *Engine) Run(ctx context.Context, reg *registry.Registry, companyTarget, postTarget int) Summary {
	var sum Summary

	discovered := make(map[string]struct{})

	for _, a := range e.Hiring {
		remaining := companyTarget - len(discovered)
		if remaining <= 0 {
			log.Printf("[discover] company target %d reached, skipping %s", companyTarget, a.Name())
			break
		}

		log.Printf("[%s] running (budget=%d)...", a.Name(), remaining)
		keys, err := a.Discover(ctx, reg, remaining)
		st := SourceStats{Source: a.Name(), Found: len(keys)}
		if err != nil {
			// adapter-fatal: keep whatever it accumulated, move on
			log.Printf("[%s] error: %v", a.Name(), err)
			st.Err = err.Error()
		}
		for _, k := range keys {
			discovered[k] = struct{}{}
		}
		sum.Sources = append(sum.Sources, st)
		log.Printf("[%s] found=%d total=%d", a.Name(), len(keys), len(discovered))
	}

	postsBefore := reg.TotalPosts()
	for _, a := range e.Conversation {
		remaining := postTarget - (reg.TotalPosts() - postsBefore)
		if remaining <= 0 {
			break
		}
		log.Printf("[%s] running (budget=%d posts)...", a.Name(), remaining)
		keys, err := a.Discover(ctx, reg, remaining)
		st := SourceStats{Source: a.Name(), Found: len(keys)}
		if err != nil {
			log.Printf("[%s] error: %v", a.Name(), err)
			st.Err = err.Error()
		}
		sum.Sources = append(sum.Sources, st)
	}

	sum.Companies = reg.Len()
	sum.Jobs = reg.TotalJobs()
	sum.Posts = reg.TotalPosts()
	return sum
}
