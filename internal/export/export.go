// Package export writes the run's flat tables: the ranked company
// tracker plus one row per hiring and conversation signal.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Rishita317/saas-security-signal-engine/internal/classify"
	"github.com/Rishita317/saas-security-signal-engine/internal/discover"
	"github.com/Rishita317/saas-security-signal-engine/internal/domain"
	"github.com/Rishita317/saas-security-signal-engine/internal/registry"
)

func writeCSV(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// WriteTrackerCSV writes company_tracker_<week>.csv in ranked order.
func WriteTrackerCSV(dir, weekID string, entries []domain.TrackerEntry) (string, error) {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.CompanyName, e.ActivityType,
			strconv.Itoa(e.RoleCount), strconv.Itoa(e.PostCount),
			strconv.Itoa(e.PriorityScore), e.LastUpdated,
		})
	}
	path := filepath.Join(dir, fmt.Sprintf("company_tracker_%s.csv", weekID))
	header := []string{"company_name", "activity_type", "role_count", "post_count", "priority_score", "last_updated"}
	return path, writeCSV(path, header, rows)
}

// WriteHiringCSV writes one row per JobSignal with company attribution.
func WriteHiringCSV(dir, weekID string, reg *registry.Registry) (string, error) {
	var rows [][]string
	for _, rec := range reg.Records() {
		for _, j := range rec.Hiring {
			rows = append(rows, []string{rec.Name, j.Title, j.Source, j.URL, j.Location, j.PostedDate})
		}
	}
	path := filepath.Join(dir, fmt.Sprintf("hiring_signals_%s.csv", weekID))
	header := []string{"company", "title", "source", "url", "location", "posted_date"}
	return path, writeCSV(path, header, rows)
}

// WriteConversationsCSV writes one row per scored PostSignal.
func WriteConversationsCSV(dir, weekID string, posts []classify.ScoredPost) (string, error) {
	rows := make([][]string, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, []string{
			p.Company, p.Post.Title, p.Post.URL, p.Post.PublishedAt, p.Post.Source,
			strconv.FormatFloat(p.Score, 'f', 2, 64), p.Category,
		})
	}
	path := filepath.Join(dir, fmt.Sprintf("conversation_signals_%s.csv", weekID))
	header := []string{"publisher", "title", "url", "published_at", "source", "relevance", "category"}
	return path, writeCSV(path, header, rows)
}

// WriteSummaryJSON dumps the run summary for downstream reporting.
func WriteSummaryJSON(dir, weekID string, sum discover.Summary) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("run_summary_%s.json", weekID))
	b, err := json.MarshalIndent(sum, "", "  ")
	if err != nil {
		return "", err
	}
	return path, os.WriteFile(path, b, 0o644)
}
