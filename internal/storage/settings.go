package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/tggbb/SnakeNeo/internal/config"
)

const settingsKey = "settings"

// SaveSettings persists the player's settings.
func (s *Store) SaveSettings(settings config.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("storage: cannot encode settings: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		settingsKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save settings: %w", err)
	}
	return nil
}

// LoadSettings returns the persisted settings layered over base.
// Reports false if nothing was saved yet.
func (s *Store) LoadSettings(base config.Settings) (config.Settings, bool, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", settingsKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return base, false, nil
	}
	if err != nil {
		return base, false, fmt.Errorf("storage: cannot load settings: %w", err)
	}

	settings := base
	if err := yaml.Unmarshal([]byte(value), &settings); err != nil {
		return base, false, fmt.Errorf("storage: cannot decode settings: %w", err)
	}
	settings.Clamp()
	return settings, true, nil
}
