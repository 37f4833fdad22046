// Package store persists per-run snapshots to SQLite, keyed by ISO
// week. The registry itself is rebuilt from scratch every run; the
// snapshot is what survives for later comparison.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Rishita317/saas-security-signal-engine/internal/classify"
	"github.com/Rishita317/saas-security-signal-engine/internal/domain"
	"github.com/Rishita317/saas-security-signal-engine/internal/registry"
)

func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS company_tracker (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  week_id TEXT NOT NULL,
  company TEXT NOT NULL,
  activity_type TEXT NOT NULL,
  role_count INTEGER NOT NULL,
  post_count INTEGER NOT NULL,
  priority_score INTEGER NOT NULL,
  last_updated TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS hiring_signals (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  week_id TEXT NOT NULL,
  company TEXT NOT NULL,
  title TEXT NOT NULL,
  source TEXT NOT NULL,
  url TEXT NOT NULL,
  location TEXT NOT NULL,
  posted_date TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS conversation_signals (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  week_id TEXT NOT NULL,
  publisher TEXT NOT NULL,
  title TEXT NOT NULL,
  url TEXT NOT NULL,
  published_at TEXT NOT NULL,
  source TEXT NOT NULL,
  relevance REAL NOT NULL,
  category TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_tracker_week ON company_tracker(week_id);
CREATE INDEX IF NOT EXISTS idx_hiring_week ON hiring_signals(week_id);
CREATE INDEX IF NOT EXISTS idx_conv_week ON conversation_signals(week_id);
`)
	return err
}

// WeekID formats a time as an ISO week id like "2026-W35".
func WeekID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// PriorWeeks returns the distinct week ids with stored snapshots,
// oldest first.
func PriorWeeks(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, "SELECT DISTINCT week_id FROM company_tracker ORDER BY week_id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var weeks []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		weeks = append(weeks, w)
	}
	return weeks, rows.Err()
}

// SaveSnapshot writes the run's tracker, hiring rows and scored
// conversation rows in one transaction. Re-running in the same week
// replaces that week's snapshot.
func SaveSnapshot(ctx context.Context, db *sql.DB, weekID string, entries []domain.TrackerEntry, reg *registry.Registry, posts []classify.ScoredPost) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"company_tracker", "hiring_signals", "conversation_signals"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE week_id = ?", weekID); err != nil {
			return err
		}
	}

	for _, e := range entries {
		_, err := tx.ExecContext(ctx, `
INSERT INTO company_tracker(week_id, company, activity_type, role_count, post_count, priority_score, last_updated)
VALUES(?,?,?,?,?,?,?);`,
			weekID, e.CompanyName, e.ActivityType, e.RoleCount, e.PostCount, e.PriorityScore, e.LastUpdated)
		if err != nil {
			return err
		}
	}

	for _, rec := range reg.Records() {
		for _, j := range rec.Hiring {
			_, err := tx.ExecContext(ctx, `
INSERT INTO hiring_signals(week_id, company, title, source, url, location, posted_date)
VALUES(?,?,?,?,?,?,?);`,
				weekID, rec.Name, j.Title, j.Source, j.URL, j.Location, j.PostedDate)
			if err != nil {
				return err
			}
		}
	}

	for _, p := range posts {
		_, err := tx.ExecContext(ctx, `
INSERT INTO conversation_signals(week_id, publisher, title, url, published_at, source, relevance, category)
VALUES(?,?,?,?,?,?,?,?);`,
			weekID, p.Company, p.Post.Title, p.Post.URL, p.Post.PublishedAt, p.Post.Source, p.Score, p.Category)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
