package tracker

import (
	"testing"

	"github.com/Rishita317/saas-security-signal-engine/internal/domain"
	"github.com/Rishita317/saas-security-signal-engine/internal/registry"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		roles, posts int
		wantActivity string
		wantPriority int
	}{
		{3, 2, domain.ActivityBoth, 3},
		{1, 0, domain.ActivityHiringOnly, 2},
		{0, 4, domain.ActivityTalkonly, 1},
		{0, 0, domain.ActivityDiscovered, 0},
	}
	for _, c := range cases {
		activity, priority := Classify(c.roles, c.posts)
		if activity != c.wantActivity || priority != c.wantPriority {
			t.Errorf("Classify(%d, %d) = (%q, %d), want (%q, %d)",
				c.roles, c.posts, activity, priority, c.wantActivity, c.wantPriority)
		}
	}
}

func addSignals(reg *registry.Registry, name string, roles, posts int) {
	if roles == 0 && posts == 0 {
		reg.Upsert(name, nil, nil)
		return
	}
	for i := 0; i < roles; i++ {
		reg.Upsert(name, &domain.JobSignal{Title: "Security Engineer"}, nil)
	}
	for i := 0; i < posts; i++ {
		reg.Upsert(name, nil, &domain.PostSignal{Title: "on shadow IT"})
	}
}

func TestBuildOrdersByPriorityThenVolume(t *testing.T) {
	reg := registry.New()
	// priority 2 with huge volume must still rank below any priority 3
	addSignals(reg, "Loudly Hiring", 100, 0)
	addSignals(reg, "Quiet Both", 1, 1)
	addSignals(reg, "Busy Both", 5, 5)
	addSignals(reg, "Talker", 0, 1)
	addSignals(reg, "Ghost", 0, 0)

	entries := Build(reg)
	want := []string{"Busy Both", "Quiet Both", "Loudly Hiring", "Talker", "Ghost"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].CompanyName != name {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].CompanyName, name)
		}
	}
	prios := []int{3, 3, 2, 1, 0}
	for i, p := range prios {
		if entries[i].PriorityScore != p {
			t.Errorf("entries[%d].PriorityScore = %d, want %d", i, entries[i].PriorityScore, p)
		}
	}
}

func TestBuildTiesKeepInsertionOrder(t *testing.T) {
	reg := registry.New()
	addSignals(reg, "First", 1, 1)
	addSignals(reg, "Second", 1, 1)
	addSignals(reg, "Third", 1, 1)

	entries := Build(reg)
	want := []string{"First", "Second", "Third"}
	for i, name := range want {
		if entries[i].CompanyName != name {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].CompanyName, name)
		}
	}
}
