// Package eventlog records append-only platform events (session
// lifecycle, instrument scoring). Scoring semantics never depend on it.
package eventlog

import (
	"context"
	"database/sql"
	"time"
)

const (
	SessionStarted   = "SessionStarted"
	InstrumentScored = "InstrumentScored"
	SessionCompleted = "SessionCompleted"
)

type Event struct {
	Offset    int64
	Type      string
	Key       string // natural key: sessionID
	DataJSON  string
	CreatedAt int64
}

type Repo struct{ db *sql.DB }

func NewRepo(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Append(ctx context.Context, e Event) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO event_log (typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4)`,
		e.Type, e.Key, e.DataJSON, time.Now().Unix())
	return err
}

// Recent returns up to limit newest events, newest first.
func (r *Repo) Recent(ctx context.Context, limit int) ([]Event, error) {
	// "offset" is reserved in postgres, so it is always quoted.
	rows, err := r.db.QueryContext(ctx,
		`SELECT "offset", typ, key, data, created_at FROM event_log
		 ORDER BY "offset" DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Offset, &e.Type, &e.Key, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
