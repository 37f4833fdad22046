package ats

import "fmt"

// Platform describes one hosted ATS and how to guess a company's board
// URL on it. CandidateURLs returns probe targets in decreasing
// likelihood; HostSuffix is what the final (post-redirect) host must
// contain for a hit to count.
type Platform struct {
	Name          string // adapter identifier, e.g. "greenhouse"
	Display       string // signal source label, e.g. "Greenhouse"
	HostSuffix    string
	JobHref       string // href fragment that marks a job listing link
	CandidateURLs func(companyName string) []string
}

func Greenhouse() Platform {
	return Platform{
		Name:       "greenhouse",
		Display:    "Greenhouse",
		HostSuffix: "greenhouse.io",
		JobHref:    "/jobs/",
		CandidateURLs: func(name string) []string {
			slug := HyphenSlug(name)
			if slug == "" {
				return nil
			}
			return []string{fmt.Sprintf("https://boards.greenhouse.io/%s", slug)}
		},
	}
}

func Lever() Platform {
	return Platform{
		Name:       "lever",
		Display:    "Lever",
		HostSuffix: "lever.co",
		JobHref:    "/",
		CandidateURLs: func(name string) []string {
			slug := HyphenSlug(name)
			if slug == "" {
				return nil
			}
			return []string{fmt.Sprintf("https://jobs.lever.co/%s", slug)}
		},
	}
}

func Workday() Platform {
	return Platform{
		Name:       "workday",
		Display:    "Workday",
		HostSuffix: "myworkdayjobs.com",
		JobHref:    "/job/",
		CandidateURLs: func(name string) []string {
			slug := CondensedSlug(name)
			if slug == "" {
				return nil
			}
			// tenants are spread over numbered instances
			return []string{
				fmt.Sprintf("https://%s.wd1.myworkdayjobs.com", slug),
				fmt.Sprintf("https://%s.wd5.myworkdayjobs.com", slug),
				fmt.Sprintf("https://%s.wd12.myworkdayjobs.com", slug),
			}
		},
	}
}

func Ashby() Platform {
	return Platform{
		Name:       "ashby",
		Display:    "Ashby",
		HostSuffix: "ashbyhq.com",
		JobHref:    "/",
		CandidateURLs: func(name string) []string {
			slug := HyphenSlug(name)
			if slug == "" {
				return nil
			}
			return []string{fmt.Sprintf("https://jobs.ashbyhq.com/%s", slug)}
		},
	}
}

func SmartRecruiters() Platform {
	return Platform{
		Name:       "smartrecruiters",
		Display:    "SmartRecruiters",
		HostSuffix: "smartrecruiters.com",
		JobHref:    "/",
		CandidateURLs: func(name string) []string {
			slug := CondensedSlug(name)
			if slug == "" {
				return nil
			}
			return []string{fmt.Sprintf("https://careers.smartrecruiters.com/%s", slug)}
		},
	}
}

func BambooHR() Platform {
	return Platform{
		Name:       "bamboohr",
		Display:    "BambooHR",
		HostSuffix: "bamboohr.com",
		JobHref:    "/careers/",
		CandidateURLs: func(name string) []string {
			slug := CondensedSlug(name)
			if slug == "" {
				return nil
			}
			return []string{fmt.Sprintf("https://%s.bamboohr.com/careers", slug)}
		},
	}
}

// ForName resolves a config platform identifier.
func ForName(name string) (Platform, bool) {
	switch name {
	case "greenhouse":
		return Greenhouse(), true
	case "lever":
		return Lever(), true
	case "workday":
		return Workday(), true
	case "ashby":
		return Ashby(), true
	case "smartrecruiters":
		return SmartRecruiters(), true
	case "bamboohr":
		return BambooHR(), true
	}
	return Platform{}, false
}
