package domain

// JobSignal is one observed job posting attributed to a company.
// Immutable once appended to a CompanyRecord.
type JobSignal struct {
	Title      string
	Source     string // adapter identifier: jobsearch/greenhouse/workday/...
	URL        string
	Location   string
	PostedDate string // free text, often just "Recent"
}

// PostSignal is one observed public discussion item, keyed by the
// publisher acting as a pseudo-company.
type PostSignal struct {
	Title       string
	URL         string
	PublishedAt string // free text or RFC1123 from the feed
	Source      string
}

// CompanyRecord accumulates everything a run learned about one company.
// Key is the normalized dedup key; Name keeps the display string as
// first observed.
type CompanyRecord struct {
	Name          string
	Key           string
	Hiring        []JobSignal
	Conversations []PostSignal
}
