// Package tracker derives the ranked export list from a run's registry.
package tracker

import (
	"sort"
	"time"

	"github.com/Rishita317/saas-security-signal-engine/internal/domain"
	"github.com/Rishita317/saas-security-signal-engine/internal/registry"
)

// Classify maps signal presence to an activity type and its fixed
// priority score. Total and exclusive over the four buckets.
func Classify(roleCount, postCount int) (activity string, priority int) {
	switch {
	case roleCount > 0 && postCount > 0:
		return domain.ActivityBoth, 3
	case roleCount > 0:
		return domain.ActivityHiringOnly, 2
	case postCount > 0:
		return domain.ActivityTalkonly, 1
	default:
		return domain.ActivityDiscovered, 0
	}
}

// Build projects every CompanyRecord into a TrackerEntry and sorts
// descending by (priority_score, role_count+post_count). The sort is
// stable so exact ties keep registry insertion order. Priority
// dominates raw volume: a company that is both hiring and being
// discussed outranks a louder single-signal company.
func Build(reg *registry.Registry) []domain.TrackerEntry {
	today := time.Now().Format("2006-01-02")

	entries := make([]domain.TrackerEntry, 0, reg.Len())
	for _, rec := range reg.Records() {
		activity, priority := Classify(len(rec.Hiring), len(rec.Conversations))
		entries = append(entries, domain.TrackerEntry{
			CompanyName:   rec.Name,
			ActivityType:  activity,
			RoleCount:     len(rec.Hiring),
			PostCount:     len(rec.Conversations),
			PriorityScore: priority,
			LastUpdated:   today,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].PriorityScore != entries[j].PriorityScore {
			return entries[i].PriorityScore > entries[j].PriorityScore
		}
		vi := entries[i].RoleCount + entries[i].PostCount
		vj := entries[j].RoleCount + entries[j].PostCount
		return vi > vj
	})

	return entries
}
