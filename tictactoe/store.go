package tictactoe

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS matches (
	id          TEXT PRIMARY KEY,
	mode        TEXT NOT NULL,
	outcome     INTEGER NOT NULL,
	moves       TEXT NOT NULL,
	started_at  INTEGER NOT NULL,
	finished_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS matches_finished_at ON matches (finished_at);
`

// Stats is the tally over every stored match.
type Stats struct {
	XWins int
	OWins int
	Draws int
}

func (s Stats) Total() int { return s.XWins + s.OWins + s.Draws }

// Store persists finished matches in a sqlite file.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the history database at path.
func OpenStore(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	// sqlite serialises writers anyway; a single connection also keeps
	// ":memory:" databases from splitting across the pool.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Save records a finished match. Saving the same ID twice is an error.
func (s *Store) Save(ctx context.Context, r Result) error {
	if r.Outcome == InProgress {
		return fmt.Errorf("save match %s: match not finished", r.ID)
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO matches (id, mode, outcome, moves, started_at, finished_at) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID.String(), string(r.Mode), int(r.Outcome), encodeMoves(r.Moves),
		r.StartedAt.UnixNano(), r.FinishedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("save match %s: %w", r.ID, err)
	}
	return nil
}

// Recent returns up to limit matches, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mode, outcome, moves, started_at, finished_at
		   FROM matches ORDER BY finished_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []Result
	for rows.Next() {
		var (
			id, mode, moves   string
			outcome           int
			started, finished int64
		)
		if err := rows.Scan(&id, &mode, &outcome, &moves, &started, &finished); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		r := Result{
			Mode:       Mode(mode),
			Outcome:    Outcome(outcome),
			StartedAt:  time.Unix(0, started),
			FinishedAt: time.Unix(0, finished),
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("history row %q: %w", id, err)
		}
		if r.Moves, err = decodeMoves(moves); err != nil {
			return nil, fmt.Errorf("history row %q: %w", id, err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Stats counts wins per mark and draws.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT outcome, COUNT(*) FROM matches GROUP BY outcome`)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}
	defer rows.Close()

	var st Stats
	for rows.Next() {
		var outcome, n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return Stats{}, fmt.Errorf("scan stats: %w", err)
		}
		switch Outcome(outcome) {
		case XWins:
			st.XWins = n
		case OWins:
			st.OWins = n
		case Draw:
			st.Draws = n
		}
	}
	return st, rows.Err()
}

// encodeMoves writes moves as "r,c;r,c;...".
func encodeMoves(moves []Cell) string {
	parts := make([]string, len(moves))
	for i, c := range moves {
		parts[i] = strconv.Itoa(c.Row) + "," + strconv.Itoa(c.Col)
	}
	return strings.Join(parts, ";")
}

func decodeMoves(s string) ([]Cell, error) {
	if s == "" {
		return nil, nil
	}
	var out []Cell
	for _, part := range strings.Split(s, ";") {
		row, col, ok := strings.Cut(part, ",")
		if !ok {
			return nil, fmt.Errorf("bad move %q", part)
		}
		r, err := strconv.Atoi(row)
		if err != nil {
			return nil, fmt.Errorf("bad move %q: %w", part, err)
		}
		c, err := strconv.Atoi(col)
		if err != nil {
			return nil, fmt.Errorf("bad move %q: %w", part, err)
		}
		out = append(out, Cell{r, c})
	}
	return out, nil
}
