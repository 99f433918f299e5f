// Package scoreboard keeps the history of finished games in a local SQLite file
package scoreboard

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Entry is one finished game
type Entry struct {
	ID       string
	Outcome  string
	Reason   string
	Level    int
	Points   int
	Gold     int
	Duration time.Duration
	PlayedAt time.Time
}

// Board is an open score history
type Board struct {
	db *sql.DB
}

// Open creates or opens the score database at path, creating parent directories
func Open(path string) (*Board, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create scoreboard directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scoreboard: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping scoreboard: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create scoreboard schema: %w", err)
	}

	return &Board{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schemas := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			outcome TEXT NOT NULL,
			reason TEXT NOT NULL DEFAULT '',
			level INTEGER NOT NULL,
			points INTEGER NOT NULL,
			gold INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			played_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_games_points ON games(points DESC);`,
	}

	for _, query := range schemas {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}
	return nil
}

// Record stores a finished game, assigning an ID and timestamp when missing
func (b *Board) Record(ctx context.Context, e Entry) (Entry, error) {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.PlayedAt.IsZero() {
		e.PlayedAt = time.Now()
	}

	query := `
		INSERT INTO games (id, outcome, reason, level, points, gold, duration_ms, played_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := b.db.ExecContext(ctx, query,
		e.ID, e.Outcome, e.Reason, e.Level, e.Points, e.Gold,
		e.Duration.Milliseconds(), e.PlayedAt.UnixNano(),
	)
	if err != nil {
		return e, fmt.Errorf("failed to record game: %w", err)
	}
	return e, nil
}

// Top returns up to n games by points, earliest first on equal points
func (b *Board) Top(ctx context.Context, n int) ([]Entry, error) {
	query := `SELECT id, outcome, reason, level, points, gold, duration_ms, played_at
		FROM games ORDER BY points DESC, played_at ASC LIMIT ?`
	rows, err := b.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e        Entry
			duration int64
			played   int64
		)
		if err := rows.Scan(&e.ID, &e.Outcome, &e.Reason, &e.Level, &e.Points, &e.Gold, &duration, &played); err != nil {
			return nil, err
		}
		e.Duration = time.Duration(duration) * time.Millisecond
		e.PlayedAt = time.Unix(0, played)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Close releases the database
func (b *Board) Close() error {
	return b.db.Close()
}

// Format renders an entry as a single dialog line
func (e Entry) Format() string {
	return fmt.Sprintf("%-4s lvl %2d  %4d pts  %s", e.Outcome, e.Level, e.Points, e.PlayedAt.Format("2006-01-02 15:04"))
}
