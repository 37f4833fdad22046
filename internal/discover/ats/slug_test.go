package ats

import "testing"

func TestCondensedSlug(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Palo Alto Networks", "paloaltonetworks"},
		{"Acme", "acme"},
		{"S&P Global", "spglobal"},
		{"1Password", "1password"},
		{"  ", ""},
	}
	for _, c := range cases {
		if got := CondensedSlug(c.in); got != c.want {
			t.Errorf("CondensedSlug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestHyphenSlug(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Palo Alto Networks", "palo-alto-networks"},
		{"Acme", "acme"},
		{"  Spaced   Name  ", "spaced-name"},
		{"", ""},
	}
	for _, c := range cases {
		if got := HyphenSlug(c.in); got != c.want {
			t.Errorf("HyphenSlug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestForName(t *testing.T) {
	for _, name := range []string{"greenhouse", "lever", "workday", "ashby", "smartrecruiters", "bamboohr"} {
		p, ok := ForName(name)
		if !ok || p.Name != name {
			t.Errorf("ForName(%q) = (%q, %v)", name, p.Name, ok)
		}
	}
	if _, ok := ForName("taleo"); ok {
		t.Error("ForName accepted unknown platform")
	}
}

func TestWorkdayCandidateInstances(t *testing.T) {
	urls := Workday().CandidateURLs("Palo Alto Networks")
	if len(urls) != 3 {
		t.Fatalf("got %d candidate URLs, want 3", len(urls))
	}
	if urls[0] != "https://paloaltonetworks.wd1.myworkdayjobs.com" {
		t.Errorf("first candidate = %q", urls[0])
	}
}

func TestCondensedSlugPlatforms(t *testing.T) {
	cases := []struct {
		platform Platform
		want     string
	}{
		{SmartRecruiters(), "https://careers.smartrecruiters.com/paloaltonetworks"},
		{BambooHR(), "https://paloaltonetworks.bamboohr.com/careers"},
	}
	for _, c := range cases {
		urls := c.platform.CandidateURLs("Palo Alto Networks")
		if len(urls) != 1 || urls[0] != c.want {
			t.Errorf("%s candidates = %v, want [%s]", c.platform.Name, urls, c.want)
		}
	}
	if urls := SmartRecruiters().CandidateURLs("!!"); urls != nil {
		t.Errorf("empty slug must yield no candidates, got %v", urls)
	}
}
