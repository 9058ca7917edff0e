// Package storage provides SQLite-based persistence for SnakeNeo:
// the per-mode leaderboard, best scores, unlocked achievements and settings.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultLimit is the leaderboard size.
const DefaultLimit = 20

// MaxNameLen is the maximum player name length in runes.
const MaxNameLen = 20

// DefaultName replaces empty player names.
const DefaultName = "Player"

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single leaderboard record.
type ScoreEntry struct {
	ID        int64
	Mode      string
	Name      string
	Score     int
	Seed      int64
	Cheated   bool
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			cheated INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_mode ON scores(mode);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(mode, score DESC);

		CREATE TABLE IF NOT EXISTS bests (
			mode TEXT PRIMARY KEY,
			score INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// NormalizeName trims a player name, caps it at MaxNameLen runes and
// substitutes DefaultName when nothing is left.
func NormalizeName(name string) string {
	name = strings.TrimSpace(name)
	if r := []rune(name); len(r) > MaxNameLen {
		name = strings.TrimSpace(string(r[:MaxNameLen]))
	}
	if name == "" {
		return DefaultName
	}
	return name
}

// SaveScore records a leaderboard entry and raises the mode's best score.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(mode, name string, score int, seed int64, cheated bool) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (mode, name, score, seed, cheated) VALUES (?, ?, ?, ?, ?)",
		mode, NormalizeName(name), score, seed, boolInt(cheated),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if err := s.RecordBest(mode, score); err != nil {
		return id, err
	}
	return id, nil
}

// TopScores retrieves the top N scores for the given mode, or for all
// modes when mode is empty. Results are ordered by score descending.
func (s *Store) TopScores(mode string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	query := `SELECT id, mode, name, score, seed, cheated, created_at FROM scores`
	args := []any{}
	if mode != "" {
		query += ` WHERE mode = ?`
		args = append(args, mode)
	}
	query += ` ORDER BY score DESC, id ASC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var cheated int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Name, &e.Score, &e.Seed, &cheated, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Cheated = cheated != 0
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// allScores returns every leaderboard row, oldest first.
func (s *Store) allScores() ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, mode, name, score, seed, cheated, created_at FROM scores ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var cheated int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Mode, &e.Name, &e.Score, &e.Seed, &cheated, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Cheated = cheated != 0
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// RecordBest raises the stored best score for a mode. Lower scores are ignored.
func (s *Store) RecordBest(mode string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO bests (mode, score) VALUES (?, ?)
		 ON CONFLICT(mode) DO UPDATE SET score = MAX(score, excluded.score)`,
		mode, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record best: %w", err)
	}
	return nil
}

// BestScore returns the best score for a mode, or across modes when mode is empty.
// Returns 0 if nothing was recorded.
func (s *Store) BestScore(mode string) (int, error) {
	query := `SELECT MAX(score) FROM (
		SELECT score FROM bests WHERE mode = ? OR ? = ''
		UNION ALL
		SELECT score FROM scores WHERE mode = ? OR ? = ''
	)`

	var score sql.NullInt64
	if err := s.db.QueryRow(query, mode, mode, mode, mode).Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// BestOverall returns the best score across all modes.
func (s *Store) BestOverall() (int, error) {
	return s.BestScore("")
}

// ClearScores deletes the leaderboard of a mode, or of every mode when mode is empty.
// Best scores are kept.
func (s *Store) ClearScores(mode string) error {
	var err error
	if mode == "" {
		_, err = s.db.Exec("DELETE FROM scores")
	} else {
		_, err = s.db.Exec("DELETE FROM scores WHERE mode = ?", mode)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// FactoryReset wipes every table.
func (s *Store) FactoryReset() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin reset: %w", err)
	}
	if err := wipe(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit reset: %w", err)
	}
	return nil
}

func wipe(tx *sql.Tx) error {
	for _, table := range []string{"scores", "bests", "achievements", "settings"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	return nil
}

// Stats contains aggregated statistics for a mode.
type Stats struct {
	Mode       string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// ModeStats retrieves aggregated leaderboard statistics for a mode.
func (s *Store) ModeStats(mode string) (*Stats, error) {
	stats := &Stats{Mode: mode}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE mode = ?`,
		mode,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM scores WHERE mode = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		mode,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
