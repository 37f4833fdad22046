package config

// Default returns the shipped configuration: the curated keyword lists,
// VC portfolio pages and publisher feeds the engine starts from when no
// user config exists yet.
func Default() Config {
	var cfg Config

	cfg.App.DataDir = "."
	cfg.App.OutputDir = "data/weekly"

	cfg.Budgets.Companies = 1000
	cfg.Budgets.Posts = 50
	cfg.Budgets.SeedLimit = 100

	cfg.HTTP.ReqPerSec = 2
	cfg.HTTP.Burst = 1
	cfg.HTTP.TimeoutSeconds = 15
	cfg.HTTP.ProbeSeconds = 5
	cfg.HTTP.DelayMillis = 3000

	cfg.Sources.JobSearch.Enabled = true
	cfg.Sources.JobSearch.BaseURL = "https://www.indeed.com"
	cfg.Sources.JobSearch.Keywords = []string{
		"Security Engineer", "Cybersecurity Engineer", "Information Security Engineer",
		"Security Analyst", "Security Architect", "Security Consultant",
		"Cloud Security Engineer", "Cloud Security Architect", "SaaS Security",
		"SSPM Engineer", "Application Security Engineer", "AppSec Engineer",
		"Product Security Engineer", "DevSecOps Engineer", "Security Operations Engineer",
		"SOC Analyst", "Threat Intelligence Analyst", "Penetration Tester",
		"Security Compliance Engineer", "GRC Analyst", "Privacy Engineer",
		"Identity Security Engineer", "IAM Engineer", "Incident Response Analyst",
		"SIEM Engineer", "Detection Engineer", "AI Security Engineer",
		"Container Security", "Kubernetes Security", "API Security Engineer",
		"Security Intern", "Cybersecurity Intern", "Cloud Security Intern",
		"AppSec Intern", "Security Engineering Intern", "SOC Intern",
	}

	cfg.Sources.Portfolio.Enabled = true
	cfg.Sources.Portfolio.Boards = []Board{
		{Name: "Sequoia", URL: "https://www.sequoiacap.com/companies/"},
		{Name: "a16z", URL: "https://a16z.com/portfolio/"},
		{Name: "Accel", URL: "https://www.accel.com/companies"},
		{Name: "Khosla", URL: "https://www.khoslaventures.com/portfolio/"},
		{Name: "Lightspeed", URL: "https://lsvp.com/portfolio/"},
		{Name: "Greylock", URL: "https://greylock.com/portfolio/"},
		{Name: "Founders Fund", URL: "https://foundersfund.com/companies/"},
		{Name: "Insight Partners", URL: "https://www.insightpartners.com/portfolio/"},
		{Name: "Index Ventures", URL: "https://www.indexventures.com/portfolio"},
		{Name: "General Catalyst", URL: "https://www.generalcatalyst.com/companies"},
		{Name: "Bessemer", URL: "https://www.bvp.com/portfolio"},
		{Name: "YL Ventures", URL: "https://www.ylventures.com/portfolio"},
		{Name: "Team8", URL: "https://www.team8.vc/portfolio/"},
		{Name: "Ballistic Ventures", URL: "https://www.ballisticventures.com/portfolio"},
		{Name: "DataTribe", URL: "https://datatribe.com/portfolio/"},
		{Name: "Battery Ventures", URL: "https://www.battery.com/portfolio/"},
		{Name: "Menlo Ventures", URL: "https://menlovc.com/portfolio/"},
		{Name: "Redpoint", URL: "https://www.redpoint.com/companies/"},
		{Name: "Felicis", URL: "https://www.felicis.com/portfolio"},
	}

	cfg.Sources.ATS.Enabled = true
	cfg.Sources.ATS.Platforms = []string{"workday", "greenhouse", "lever", "ashby", "smartrecruiters", "bamboohr"}

	cfg.Sources.RSS.Enabled = true
	cfg.Sources.RSS.Publishers = []Publisher{
		{Name: "Dark Reading", Feed: "https://www.darkreading.com/rss.xml"},
		{Name: "BleepingComputer", Feed: "https://www.bleepingcomputer.com/feed/"},
		{Name: "The Hacker News", Feed: "https://feeds.feedburner.com/TheHackersNews"},
		{Name: "SecurityWeek", Feed: "https://www.securityweek.com/feed/"},
		{Name: "Krebs on Security", Feed: "https://krebsonsecurity.com/feed/"},
		{Name: "CSO Online", Feed: "https://www.csoonline.com/feed/"},
		{Name: "Security Boulevard", Feed: "https://securityboulevard.com/feed/"},
		{Name: "InfoSecurity Magazine", Feed: "https://www.infosecurity-magazine.com/rss/news/"},
		{Name: "Cisco Security", Feed: "https://blogs.cisco.com/security/feed"},
		{Name: "CrowdStrike", Feed: "https://www.crowdstrike.com/blog/feed/"},
	}

	cfg.Keywords.Hiring = map[string][]string{
		"SaaS Security": {
			"saas security", "cloud app security", "cloud application security",
			"shadow it", "saas risk",
		},
		"SSPM": {
			"sspm", "saas security posture", "saas posture management",
			"security posture management",
		},
		"AI Agent Security": {
			"ai agent security", "ai security", "llm security",
			"autonomous agent security", "genai security",
		},
		"SaaS Compliance": {
			"saas compliance", "cloud compliance", "saas governance",
			"cloud governance", "saas audit",
		},
		"AI Compliance": {
			"ai compliance", "ai governance", "llm compliance", "ai policy",
		},
	}
	cfg.Keywords.SecurityTitles = []string{
		"security", "cyber", "infosec", "soc", "threat", "devsecops", "appsec", "iam",
	}
	cfg.Keywords.Conversation = []string{
		"security", "threat", "vulnerability", "attack", "breach",
		"ransomware", "malware", "phishing", "zero-day", "exploit",
		"cloud", "saas", "sspm", "iam", "compliance", "encryption",
	}

	cfg.Classify.Enabled = true
	cfg.Classify.Endpoint = "https://api.openai.com/v1/chat/completions"
	cfg.Classify.Model = "gpt-4o-mini"
	cfg.Classify.MinRelevance = 0.6

	return cfg
}
