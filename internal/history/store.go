// internal/history/store.go
//
// SQLite-backed record of finished solves.
// One row per session (INSERT OR IGNORE on the session ID), with the guesses,
// the emoji grid and the terminal status.

package history

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/robalobadob/wordle/apps/go-solver/internal/session"
)

// Result is one finished solve.
type Result struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	Word       string    `json:"word,omitempty"`
	Attempts   int       `json:"attempts"`
	Guesses    []string  `json:"guesses"`
	Grid       string    `json:"grid"`
	Mode       string    `json:"mode"` // "interactive" | "simulate" | "api"
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// ResultFrom builds a Result for a finished session.
func ResultFrom(s *session.Session, mode, grid string) Result {
	out := s.Outcome()
	guesses := make([]string, 0, len(out.Rounds))
	for _, r := range out.Rounds {
		guesses = append(guesses, r.Guess)
	}
	return Result{
		ID:         s.ID,
		Status:     string(out.Status),
		Word:       out.Word,
		Attempts:   out.Attempts,
		Guesses:    guesses,
		Grid:       grid,
		Mode:       mode,
		StartedAt:  s.CreatedAt,
		FinishedAt: time.Now().UTC(),
	}
}

// Stats aggregates the recorded solves.
type Stats struct {
	Played          int     `json:"played"`
	Solved          int     `json:"solved"`
	AverageAttempts float64 `json:"averageAttempts"` // over solved rows only
}

// Store reads and writes solve history.
type Store struct{ db *sql.DB }

// Open opens the database at dsn and applies migrations.
func Open(dsn string) (*Store, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts a result. A second insert with the same ID is ignored.
func (s *Store) Record(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx, `
        INSERT OR IGNORE INTO solves
            (id, status, word, attempts, guesses, grid, mode, started_at, finished_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Status, r.Word, r.Attempts, strings.Join(r.Guesses, ","), r.Grid, r.Mode,
		r.StartedAt.UTC().Format(time.RFC3339Nano), r.FinishedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// Recent returns the latest results, newest first. Default limit is 20.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, status, word, attempts, guesses, grid, mode, started_at, finished_at
        FROM solves
        ORDER BY finished_at DESC, id ASC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Result, 0, limit)
	for rows.Next() {
		var r Result
		var guesses, started, finished string
		if err := rows.Scan(&r.ID, &r.Status, &r.Word, &r.Attempts, &guesses, &r.Grid, &r.Mode, &started, &finished); err != nil {
			return nil, err
		}
		if guesses != "" {
			r.Guesses = strings.Split(guesses, ",")
		}
		r.StartedAt = mustParse(started)
		r.FinishedAt = mustParse(finished)
		out = append(out, r)
	}
	return out, rows.Err()
}

// Stats returns aggregate counts over all recorded solves.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	var avg sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
        SELECT COUNT(1),
               COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0),
               AVG(CASE WHEN status = ? THEN attempts END)
        FROM solves`, string(session.StatusSolved), string(session.StatusSolved),
	).Scan(&st.Played, &st.Solved, &avg)
	if err != nil {
		return Stats{}, err
	}
	st.AverageAttempts = avg.Float64
	return st, nil
}

// mustParse parses RFC3339 timestamps; on error returns zero time.
func mustParse(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}
