package portfolio

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Rishita317/saas-security-signal-engine/internal/config"
	"github.com/Rishita317/saas-security-signal-engine/internal/registry"
)

const portfolioPage = `<html><body>
<nav><a href="/about">About</a><a href="https://twitter.com/vcfirm">Twitter</a></nav>
<main>
  <a href="/portfolio/acme">Acme Security</a>
  <a href="/portfolio/wiz">Wiz</a>
  <a href="/portfolio/all">View All</a>
  <div class="company-card">Island Browser</div>
  <div class="card">Learn more</div>
</main>
</body></html>`

func TestDiscoverScrapesPortfolioBoards(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, portfolioPage)
	}))
	defer srv.Close()

	a := New([]config.Board{{Name: "Test Ventures", URL: srv.URL}}, 2*time.Second, nil)
	reg := registry.New()

	keys, err := a.Discover(context.Background(), reg, 50)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("keys = %v, want 3 companies", keys)
	}
	for _, key := range []string{"acme security", "wiz", "island browser"} {
		rec, ok := reg.Get(key)
		if !ok {
			t.Fatalf("missing company %q", key)
		}
		if len(rec.Hiring) != 0 || len(rec.Conversations) != 0 {
			t.Errorf("%q: portfolio discovery must attach no signals", key)
		}
	}
}

func TestDiscoverBoardFailureIsContained(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer bad.Close()
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, portfolioPage)
	}))
	defer good.Close()

	a := New([]config.Board{
		{Name: "Blocked Ventures", URL: bad.URL},
		{Name: "Test Ventures", URL: good.URL},
	}, 2*time.Second, nil)
	reg := registry.New()

	keys, err := a.Discover(context.Background(), reg, 50)
	if err != nil {
		t.Fatalf("one failing board must not fail the adapter: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("keys = %v, want 3 from the healthy board", keys)
	}
}

func TestDiscoverHonorsBudget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, portfolioPage)
	}))
	defer srv.Close()

	a := New([]config.Board{{Name: "Test Ventures", URL: srv.URL}}, 2*time.Second, nil)
	reg := registry.New()

	keys, err := a.Discover(context.Background(), reg, 1)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("keys = %v, want budget of 1", keys)
	}
}

func TestCandidateShapeRules(t *testing.T) {
	cases := []struct {
		in   string
		ok   bool
		want string
	}{
		{"Acme Security", true, "Acme Security"},
		{"  Island   Browser  ", true, "Island Browser"},
		{"View All", false, ""},
		{"portfolio", false, ""},
		{"#cloud", false, ""},
		{"Série A (closed)", false, ""},
		{"X", false, ""},
	}
	for _, c := range cases {
		got, ok := candidate(c.in)
		if ok != c.ok {
			t.Errorf("candidate(%q) ok = %v, want %v", c.in, ok, c.ok)
			continue
		}
		if ok && got != c.want {
			t.Errorf("candidate(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
