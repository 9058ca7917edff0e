package storage

import (
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tggbb/SnakeNeo/internal/config"
)

// DumpVersion is the current export format version.
const DumpVersion = 1

// ErrInvalidDump is returned when imported data cannot be used.
var ErrInvalidDump = errors.New("storage: invalid dump")

// Dump is a full export of the persisted player data.
type Dump struct {
	Version      int              `yaml:"version"`
	ExportedAt   time.Time        `yaml:"exported_at"`
	Settings     *config.Settings `yaml:"settings,omitempty"`
	Bests        map[string]int   `yaml:"bests,omitempty"`
	Leaderboard  []DumpScore      `yaml:"leaderboard"`
	Achievements []string         `yaml:"achievements"`
}

// DumpScore is one leaderboard entry in a Dump.
type DumpScore struct {
	Mode    string    `yaml:"mode"`
	Name    string    `yaml:"name"`
	Score   int       `yaml:"score"`
	Seed    int64     `yaml:"seed,omitempty"`
	Cheated bool      `yaml:"cheated,omitempty"`
	Date    time.Time `yaml:"date"`
}

// Export collects every persisted record into a Dump.
func (s *Store) Export() (Dump, error) {
	d := Dump{
		Version:    DumpVersion,
		ExportedAt: time.Now().UTC(),
		Bests:      map[string]int{},
	}

	settings, ok, err := s.LoadSettings(config.DefaultSettings())
	if err != nil {
		return d, err
	}
	if ok {
		d.Settings = &settings
	}

	scores, err := s.allScores()
	if err != nil {
		return d, err
	}
	for _, e := range scores {
		d.Leaderboard = append(d.Leaderboard, DumpScore{
			Mode:    e.Mode,
			Name:    e.Name,
			Score:   e.Score,
			Seed:    e.Seed,
			Cheated: e.Cheated,
			Date:    e.CreatedAt,
		})
	}

	rows, err := s.db.Query("SELECT mode, score FROM bests ORDER BY mode")
	if err != nil {
		return d, fmt.Errorf("storage: cannot query bests: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var mode string
		var score int
		if err := rows.Scan(&mode, &score); err != nil {
			return d, fmt.Errorf("storage: cannot scan best: %w", err)
		}
		d.Bests[mode] = score
	}
	if err := rows.Err(); err != nil {
		return d, fmt.Errorf("storage: row iteration error: %w", err)
	}

	ids, err := s.AchievementIDs()
	if err != nil {
		return d, err
	}
	d.Achievements = ids
	return d, nil
}

// Import loads a Dump. With replace set, existing data is wiped first;
// otherwise entries are merged and bests only ever rise.
func (s *Store) Import(d Dump, replace bool) error {
	if d.Version <= 0 || d.Version > DumpVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidDump, d.Version)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback()

	if replace {
		if err := wipe(tx); err != nil {
			return err
		}
	}

	for _, e := range d.Leaderboard {
		if e.Mode == "" || e.Score < 0 {
			continue
		}
		date := e.Date
		if date.IsZero() {
			date = time.Now()
		}
		_, err := tx.Exec(
			"INSERT INTO scores (mode, name, score, seed, cheated, created_at) VALUES (?, ?, ?, ?, ?, ?)",
			e.Mode, NormalizeName(e.Name), e.Score, e.Seed, boolInt(e.Cheated), date.UTC().Format(timeLayout),
		)
		if err != nil {
			return fmt.Errorf("storage: cannot import score: %w", err)
		}
	}

	for mode, score := range d.Bests {
		_, err := tx.Exec(
			`INSERT INTO bests (mode, score) VALUES (?, ?)
			 ON CONFLICT(mode) DO UPDATE SET score = MAX(score, excluded.score)`,
			mode, score,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot import best: %w", err)
		}
	}

	for _, id := range d.Achievements {
		if id == "" {
			continue
		}
		if _, err := tx.Exec("INSERT OR IGNORE INTO achievements (id) VALUES (?)", id); err != nil {
			return fmt.Errorf("storage: cannot import achievement: %w", err)
		}
	}

	if d.Settings != nil {
		settings := *d.Settings
		settings.Clamp()
		data, err := yaml.Marshal(settings)
		if err != nil {
			return fmt.Errorf("storage: cannot encode settings: %w", err)
		}
		_, err = tx.Exec(
			`INSERT INTO settings (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			settingsKey, string(data),
		)
		if err != nil {
			return fmt.Errorf("storage: cannot import settings: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return nil
}

// EncodeDump serializes a Dump as YAML.
func EncodeDump(d Dump) ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot encode dump: %w", err)
	}
	return data, nil
}

// DecodeDump parses a YAML Dump.
func DecodeDump(data []byte) (Dump, error) {
	var d Dump
	if err := yaml.Unmarshal(data, &d); err != nil {
		return d, fmt.Errorf("%w: %v", ErrInvalidDump, err)
	}
	if d.Version == 0 {
		return d, fmt.Errorf("%w: missing version", ErrInvalidDump)
	}
	return d, nil
}
