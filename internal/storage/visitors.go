package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Zachkp/portfolio/internal/contact"
)

// Visit is one tracked page view. The client IP is never stored raw.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	VisitedAt time.Time `json:"timestamp"`
}

// PathStat counts visits to one path.
type PathStat struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64           `json:"total_visitors"`
	UniqueVisitors   int64           `json:"unique_visitors"`
	VisitorsToday    int64           `json:"visitors_today"`
	VisitorsThisWeek int64           `json:"visitors_this_week"`
	TotalMessages    int64           `json:"total_messages"`
	FailedMessages   int64           `json:"failed_messages"`
	TopPaths         []PathStat      `json:"top_paths"`
	RecentVisitors   []Visit         `json:"recent_visitors"`
	RecentMessages   []StoredMessage `json:"recent_messages"`
}

// RecordVisit appends v to the visitor log.
func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	if v.HashedIP == "" {
		return fmt.Errorf("hashed ip is required")
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO visitors (hashed_ip, user_agent, path, visited_at_unixms) VALUES (?, ?, ?, ?)`,
		v.HashedIP, v.UserAgent, v.Path, toUnixMillis(v.VisitedAt))
	if err != nil {
		return fmt.Errorf("record visit: %w", err)
	}
	return nil
}

// CleanupVisitors deletes visits older than retention as of now and returns
// how many rows went.
func (s *Store) CleanupVisitors(ctx context.Context, now time.Time, retention time.Duration) (int64, error) {
	cutoff := now.Add(-retention).UTC().UnixMilli()
	res, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE visited_at_unixms < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("cleanup visitors: %w", err)
	}
	return n, nil
}

// Stats summarizes traffic and messages as of now. "Today" is the current
// UTC calendar day; "this week" is the trailing seven days.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	now = now.UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).UnixMilli()
	weekStart := now.Add(-7 * 24 * time.Hour).UnixMilli()

	stats := &Stats{}
	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE visited_at_unixms >= ?`, []any{dayStart}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE visited_at_unixms >= ?`, []any{weekStart}},
		{&stats.TotalMessages, `SELECT COUNT(*) FROM messages`, nil},
		{&stats.FailedMessages, `SELECT COUNT(*) FROM messages WHERE status = ?`, []any{contact.StatusFailed}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	var err error
	if stats.TopPaths, err = s.topPaths(ctx, 10); err != nil {
		return nil, err
	}
	if stats.RecentVisitors, err = s.RecentVisitors(ctx, 50); err != nil {
		return nil, err
	}
	if stats.RecentMessages, err = s.ListMessages(ctx, 10); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *Store) topPaths(ctx context.Context, limit int) ([]PathStat, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, COUNT(*) AS visits
		 FROM visitors
		 GROUP BY path
		 ORDER BY visits DESC, path
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}
	defer rows.Close()

	out := []PathStat{}
	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Visits); err != nil {
			return nil, fmt.Errorf("scan path stat: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// RecentVisitors returns the newest visits first, at most limit of them.
func (s *Store) RecentVisitors(ctx context.Context, limit int) ([]Visit, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, hashed_ip, user_agent, path, visited_at_unixms
		 FROM visitors
		 ORDER BY visited_at_unixms DESC, id DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("recent visitors: %w", err)
	}
	defer rows.Close()

	out := []Visit{}
	for rows.Next() {
		var v Visit
		var at int64
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &at); err != nil {
			return nil, fmt.Errorf("scan visit: %w", err)
		}
		v.VisitedAt = fromUnixMillis(at)
		out = append(out, v)
	}
	return out, rows.Err()
}
