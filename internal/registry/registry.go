// Package registry holds the per-run company store every adapter
// writes into. One Registry value is created per discovery run, passed
// to adapters explicitly, and discarded after export.
package registry

import (
	"github.com/Rishita317/saas-security-signal-engine/internal/domain"
	"github.com/Rishita317/saas-security-signal-engine/internal/names"
)

// Registry maps normalized company key -> accumulated record. It is not
// safe for concurrent use; adapters run strictly sequentially.
type Registry struct {
	records map[string]*domain.CompanyRecord
	order   []string // insertion order, keeps tracker ties stable
}

func New() *Registry {
	return &Registry{records: make(map[string]*domain.CompanyRecord)}
}

// Upsert records evidence for a company. The display name of the first
// observation wins; signals are append-only and duplicates across
// adapters are kept (company identity is deduped, individual signals
// are not). Returns the normalized key, or ok=false when the name does
// not survive normalization.
func (r *Registry) Upsert(name string, job *domain.JobSignal, post *domain.PostSignal) (key string, ok bool) {
	key = names.Normalize(name)
	if key == "" {
		return "", false
	}
	rec, exists := r.records[key]
	if !exists {
		rec = &domain.CompanyRecord{Name: name, Key: key}
		r.records[key] = rec
		r.order = append(r.order, key)
	}
	if job != nil {
		rec.Hiring = append(rec.Hiring, *job)
	}
	if post != nil {
		rec.Conversations = append(rec.Conversations, *post)
	}
	return key, true
}

// Get returns the record for a normalized key.
func (r *Registry) Get(key string) (*domain.CompanyRecord, bool) {
	rec, ok := r.records[key]
	return rec, ok
}

// Records returns all records in insertion order.
func (r *Registry) Records() []*domain.CompanyRecord {
	out := make([]*domain.CompanyRecord, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.records[k])
	}
	return out
}

// Names returns display names in insertion order. ATS probers use this
// as their seed list.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.order))
	for _, k := range r.order {
		out = append(out, r.records[k].Name)
	}
	return out
}

func (r *Registry) Len() int { return len(r.order) }

// TotalJobs counts hiring signals across all records.
func (r *Registry) TotalJobs() int {
	n := 0
	for _, rec := range r.records {
		n += len(rec.Hiring)
	}
	return n
}

// TotalPosts counts conversation signals across all records.
func (r *Registry) TotalPosts() int {
	n := 0
	for _, rec := range r.records {
		n += len(rec.Conversations)
	}
	return n
}
