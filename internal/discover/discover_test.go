package discover

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/Rishita317/saas-security-signal-engine/internal/domain"
	"github.com/Rishita317/saas-security-signal-engine/internal/registry"
)

// fakeAdapter registers a fixed batch of companies, honoring max.
type fakeAdapter struct {
	name     string
	names    []string
	posts    int // conversation posts to attach per company
	err      error
	gotMax   []int
	ranCount int
}

func (f *fakeAdapter) Name() string { return f.name }

func (f *fakeAdapter) Discover(ctx context.Context, reg *registry.Registry, max int) ([]string, error) {
	f.ranCount++
	f.gotMax = append(f.gotMax, max)
	var keys []string
	for _, n := range f.names {
		if len(keys) >= max {
			break
		}
		var job *domain.JobSignal
		if f.posts == 0 {
			job = &domain.JobSignal{Title: "Security Engineer", Source: f.name}
		}
		key, ok := reg.Upsert(n, job, nil)
		if !ok {
			continue
		}
		for i := 0; i < f.posts; i++ {
			reg.Upsert(n, nil, &domain.PostSignal{Title: "post", Source: f.name})
		}
		keys = append(keys, key)
	}
	return keys, f.err
}

func companyNames(prefix string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s Labs %d", prefix, i)
	}
	return out
}

func TestRunPassesRemainingBudgetDown(t *testing.T) {
	first := &fakeAdapter{name: "first", names: companyNames("Alpha", 6)}
	second := &fakeAdapter{name: "second", names: companyNames("Beta", 10)}

	e := &Engine{Hiring: []Adapter{first, second}}
	sum := e.Run(context.Background(), registry.New(), 10, 0)

	if first.gotMax[0] != 10 {
		t.Errorf("first adapter budget = %d, want 10", first.gotMax[0])
	}
	if second.gotMax[0] != 4 {
		t.Errorf("second adapter budget = %d, want remaining 4", second.gotMax[0])
	}
	if sum.Companies != 10 {
		t.Errorf("Companies = %d, want 10", sum.Companies)
	}
}

func TestRunSkipsAdaptersOnceTargetReached(t *testing.T) {
	first := &fakeAdapter{name: "first", names: companyNames("Alpha", 5)}
	second := &fakeAdapter{name: "second", names: companyNames("Beta", 5)}

	e := &Engine{Hiring: []Adapter{first, second}}
	e.Run(context.Background(), registry.New(), 5, 0)

	if second.ranCount != 0 {
		t.Error("second adapter ran after target was already met")
	}
}

func TestRunAdapterErrorDoesNotAbortRun(t *testing.T) {
	broken := &fakeAdapter{name: "broken", err: errors.New("site down")}
	healthy := &fakeAdapter{name: "healthy", names: companyNames("Gamma", 3)}

	e := &Engine{Hiring: []Adapter{broken, healthy}}
	sum := e.Run(context.Background(), registry.New(), 10, 0)

	if healthy.ranCount != 1 {
		t.Fatal("healthy adapter did not run after a failing one")
	}
	if sum.Companies != 3 {
		t.Errorf("Companies = %d, want 3", sum.Companies)
	}
	if len(sum.Sources) != 2 || sum.Sources[0].Err == "" {
		t.Errorf("sources = %+v, want the failure recorded", sum.Sources)
	}
}

func TestRunConversationBudgetIsPostBased(t *testing.T) {
	rss := &fakeAdapter{name: "rss", names: []string{"Publisher One"}, posts: 3}

	e := &Engine{Conversation: []Adapter{rss}}
	sum := e.Run(context.Background(), registry.New(), 0, 15)

	if rss.gotMax[0] != 15 {
		t.Errorf("conversation budget = %d, want 15", rss.gotMax[0])
	}
	if sum.Posts != 3 {
		t.Errorf("Posts = %d, want 3", sum.Posts)
	}
	if sum.Jobs != 0 {
		t.Errorf("Jobs = %d, want 0", sum.Jobs)
	}
}
