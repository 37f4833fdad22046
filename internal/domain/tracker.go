package domain

// Activity classification for a tracked company.
const (
	ActivityBoth       = "both"
	ActivityHiringOnly = "hiring_only"
	ActivityTalkonly   = "talking_only"
	ActivityDiscovered = "discovered"
)

// TrackerEntry is a pure projection of a CompanyRecord at export time.
type TrackerEntry struct {
	CompanyName   string
	ActivityType  string
	RoleCount     int
	PostCount     int
	PriorityScore int
	LastUpdated   string // YYYY-MM-DD
}
