// Package mysql holds the operational fetch log: one row per adapter
// failure, for operators chasing degraded renders. Nothing on the render
// path reads it and no feed entity is ever stored here.
package mysql

import (
	"context"
	"database/sql"
	"time"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// LogMiss records one adapter failure. Status is the mapped HTTP-ish
// status (0 when unknown); reason is a short operator-facing string.
func (r *Repo) LogMiss(ctx context.Context, source string, status int, reason string) error {
	if len(reason) > 255 {
		reason = reason[:255]
	}
	_, err := r.db.ExecContext(ctx, insertMissSQL, source, status, reason)
	return err
}

// Miss is one recorded adapter failure.
type Miss struct {
	ID     int64
	Source string
	Status int
	Reason string
	SeenAt time.Time
}

// RecentMisses returns the newest failures, most recent first. Used by
// operators and the integration tests, never by page assembly.
func (r *Repo) RecentMisses(ctx context.Context, limit int) ([]Miss, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx, recentMissesSQL, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Miss
	for rows.Next() {
		var m Miss
		if err := rows.Scan(&m.ID, &m.Source, &m.Status, &m.Reason, &m.SeenAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
