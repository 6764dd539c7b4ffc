// Package analytics records privacy-conscious visit and outbound-link
// statistics in SQLite.
package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Visit is one recorded page view. Raw IPs are never stored.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// LinkStat is the click count of one project link.
type LinkStat struct {
	Project string `json:"project"`
	Link    string `json:"link"`
	Clicks  int64  `json:"clicks"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64      `json:"total_visitors"`
	UniqueVisitors   int64      `json:"unique_visitors"`
	VisitorsToday    int64      `json:"visitors_today"`
	VisitorsThisWeek int64      `json:"visitors_this_week"`
	TotalClicks      int64      `json:"total_clicks"`
	TopLinks         []LinkStat `json:"top_links"`
	RecentVisitors   []Visit    `json:"recent_visitors"`
}

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT,
	path TEXT,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visitors_created_at ON visitors(created_at);

CREATE TABLE IF NOT EXISTS link_clicks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	project TEXT NOT NULL,
	link TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_link_clicks_project ON link_clicks(project, link);
`

// Store wraps the analytics database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database at path and applies the schema.
// Use ":memory:" for an ephemeral store.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	// SQLite allows one writer; a single connection also keeps :memory: coherent.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// RecordVisit stores a page view.
func (s *Store) RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, created_at)
		VALUES (?, ?, ?, ?)`,
		hashedIP, userAgent, path, s.now().Unix())
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// RecordClick stores one outbound click on a project link.
func (s *Store) RecordClick(ctx context.Context, project, link string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO link_clicks (project, link, created_at)
		VALUES (?, ?, ?)`,
		project, link, s.now().Unix())
	if err != nil {
		return fmt.Errorf("recording click: %w", err)
	}
	return nil
}

// Cleanup deletes visitor records older than retention and returns how
// many were removed.
func (s *Store) Cleanup(ctx context.Context, retention time.Duration) (int64, error) {
	cutoff := s.now().Add(-retention).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleaning visitors: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// RecentVisitors returns the newest visits first.
func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, COALESCE(user_agent, ''), COALESCE(path, ''), created_at
		FROM visitors
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying visitors: %w", err)
	}
	defer rows.Close()

	var visits []Visit
	for rows.Next() {
		var v Visit
		var ts int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &ts); err != nil {
			return nil, fmt.Errorf("scanning visitor: %w", err)
		}
		v.Timestamp = time.Unix(ts, 0).UTC()
		visits = append(visits, v)
	}
	return visits, rows.Err()
}

// TopLinks returns the most clicked project links.
func (s *Store) TopLinks(ctx context.Context, limit int) ([]LinkStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT project, link, COUNT(*) AS clicks
		FROM link_clicks
		GROUP BY project, link
		ORDER BY clicks DESC, project ASC, link ASC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying link clicks: %w", err)
	}
	defer rows.Close()

	var stats []LinkStat
	for rows.Next() {
		var ls LinkStat
		if err := rows.Scan(&ls.Project, &ls.Link, &ls.Clicks); err != nil {
			return nil, fmt.Errorf("scanning link clicks: %w", err)
		}
		stats = append(stats, ls)
	}
	return stats, rows.Err()
}

// Stats gathers the dashboard summary.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	week := now.Add(-7 * 24 * time.Hour)

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE created_at >= ?`, []any{today.Unix()}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE created_at >= ?`, []any{week.Unix()}},
		{&stats.TotalClicks, `SELECT COUNT(*) FROM link_clicks`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("counting stats: %w", err)
		}
	}

	var err error
	if stats.TopLinks, err = s.TopLinks(ctx, 10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.RecentVisitors(ctx, 50); err != nil {
		return nil, err
	}
	return stats, nil
}
