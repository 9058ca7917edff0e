package storage

import (
	"fmt"
	"time"
)

// UnlockedAchievement is a persisted achievement unlock.
type UnlockedAchievement struct {
	ID         string
	UnlockedAt time.Time
}

// UnlockAchievement marks an achievement as unlocked.
// Reports false if it was already unlocked.
func (s *Store) UnlockAchievement(id string) (bool, error) {
	result, err := s.db.Exec("INSERT OR IGNORE INTO achievements (id) VALUES (?)", id)
	if err != nil {
		return false, fmt.Errorf("storage: cannot unlock achievement: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot check unlock: %w", err)
	}
	return n > 0, nil
}

// Achievements lists unlocked achievements in unlock order.
func (s *Store) Achievements() ([]UnlockedAchievement, error) {
	rows, err := s.db.Query("SELECT id, unlocked_at FROM achievements ORDER BY unlocked_at ASC, rowid ASC")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query achievements: %w", err)
	}
	defer rows.Close()

	var list []UnlockedAchievement
	for rows.Next() {
		var a UnlockedAchievement
		var unlockedAt any
		if err := rows.Scan(&a.ID, &unlockedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan achievement: %w", err)
		}
		a.UnlockedAt = parseTime(unlockedAt)
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return list, nil
}

// AchievementIDs lists the IDs of unlocked achievements.
func (s *Store) AchievementIDs() ([]string, error) {
	list, err := s.Achievements()
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.ID)
	}
	return ids, nil
}
