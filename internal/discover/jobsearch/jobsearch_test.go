package jobsearch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/Rishita317/saas-security-signal-engine/internal/discover/browser"
	"github.com/Rishita317/saas-security-signal-engine/internal/registry"
)

const resultsPage = `<html><body>
<div class="job_seen_beacon">
  <h2 class="jobTitle">Security Engineer</h2>
  <span data-testid="company-name">Acme Inc.</span>
  <a class="jcs-JobTitle" href="/rc/clk?jk=111">view</a>
</div>
<div class="job_seen_beacon">
  <h2 class="jobTitle">SOC Analyst</h2>
  <span data-testid="company-name">Globex Corporation</span>
  <a href="/viewjob?jk=222">view</a>
</div>
<div class="job_seen_beacon">
  <h2 class="jobTitle">Cloud Security Architect</h2>
  <span class="companyName">Initech</span>
</div>
<div class="job_seen_beacon">
  <h2 class="jobTitle">Detection Engineer</h2>
  <span data-testid="company-name">Sign in</span>
</div>
<div class="job_seen_beacon">
  <h2 class="jobTitle">Threat Analyst</h2>
  <span data-testid="company-name">e account to save</span>
</div>
<div class="job_seen_beacon">
  <h2 class="jobTitle">IAM Engineer</h2>
  <span data-testid="company-name"></span>
</div>
</body></html>`

type fixtureFetcher struct {
	html string
	err  error
}

func (f fixtureFetcher) HTML(ctx context.Context, url string) (string, error) {
	return f.html, f.err
}

func fixtureSessions(html string, err error) SessionFactory {
	return func(ctx context.Context) (browser.Fetcher, func(), error) {
		return fixtureFetcher{html: html, err: err}, func() {}, nil
	}
}

func TestDiscoverExtractsValidCompaniesOnly(t *testing.T) {
	a := New(Config{
		BaseURL:  "https://jobs.example.com",
		Keywords: []string{"security engineer"},
	}, fixtureSessions(resultsPage, nil))

	reg := registry.New()
	keys, err := a.Discover(context.Background(), reg, 50)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(keys) != 3 {
		t.Fatalf("got %d keys %v, want 3", len(keys), keys)
	}
	if reg.Len() != 3 {
		t.Fatalf("registry has %d companies, want 3", reg.Len())
	}
	for _, key := range []string{"acme", "globex", "initech"} {
		rec, ok := reg.Get(key)
		if !ok {
			t.Fatalf("missing company %q", key)
		}
		if len(rec.Hiring) != 1 {
			t.Errorf("%q has %d hiring signals, want 1", key, len(rec.Hiring))
		}
		if rec.Hiring[0].Source != "jobsearch" {
			t.Errorf("%q signal source = %q", key, rec.Hiring[0].Source)
		}
	}
}

func TestDiscoverHonorsBudget(t *testing.T) {
	a := New(Config{
		BaseURL:  "https://jobs.example.com",
		Keywords: []string{"security engineer", "soc analyst"},
	}, fixtureSessions(resultsPage, nil))

	reg := registry.New()
	keys, err := a.Discover(context.Background(), reg, 2)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("got %d keys, want 2", len(keys))
	}
}

func TestDiscoverFetchErrorSkipsKeyword(t *testing.T) {
	a := New(Config{
		BaseURL:  "https://jobs.example.com",
		Keywords: []string{"security engineer"},
	}, fixtureSessions("", errors.New("tab crashed")))

	reg := registry.New()
	keys, err := a.Discover(context.Background(), reg, 10)
	if err != nil {
		t.Fatalf("fetch errors must be contained, got %v", err)
	}
	if len(keys) != 0 || reg.Len() != 0 {
		t.Fatalf("expected empty result, got keys=%v len=%d", keys, reg.Len())
	}
}

func TestDiscoverSessionFailureIsFatal(t *testing.T) {
	a := New(Config{
		BaseURL:  "https://jobs.example.com",
		Keywords: []string{"security engineer"},
	}, func(ctx context.Context) (browser.Fetcher, func(), error) {
		return nil, nil, errors.New("chrome not found")
	})

	reg := registry.New()
	if _, err := a.Discover(context.Background(), reg, 10); err == nil {
		t.Fatal("expected error when no session can be acquired")
	}
}

func TestExtractCompanyFallbackChain(t *testing.T) {
	cases := []struct {
		name, html, want string
		ok               bool
	}{
		{
			"test id wins",
			`<div><span data-testid="company-name">Acme Inc.</span><span class="companyName">Wrong Co</span></div>`,
			"Acme", true,
		},
		{
			"company class fallback",
			`<div><span class="companyName">Initech</span></div>`,
			"Initech", true,
		},
		{
			"data attribute fallback",
			`<div><span data-company-name="Hooli"></span></div>`,
			"Hooli", true,
		},
		{
			"card text fallback",
			`<div>Detection Engineer at Umbrella Security</div>`,
			"Umbrella Security", true,
		},
		{
			"all noise",
			`<div><span data-testid="company-name">Sign in</span></div>`,
			"", false,
		},
	}
	for _, c := range cases {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(c.html))
		if err != nil {
			t.Fatalf("%s: %v", c.name, err)
		}
		got, ok := extractCompany(doc.Find("div").First())
		if ok != c.ok {
			t.Errorf("%s: ok = %v, want %v (got %q)", c.name, ok, c.ok, got)
			continue
		}
		if ok && got != c.want {
			t.Errorf("%s: got %q, want %q", c.name, got, c.want)
		}
	}
}
