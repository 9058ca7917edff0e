package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named base speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets returns the preset names from slowest to fastest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParsePreset normalizes a preset name.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Presets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q (use easy, normal or hard)", s)
}

// SpeedForPreset returns the base speed in ticks per second for a preset.
func SpeedForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 4
	case DifficultyHard:
		return 9
	default:
		return 6
	}
}

// ApplyPreset modifies the settings based on a difficulty preset.
func ApplyPreset(s *Settings, preset DifficultyPreset) {
	s.BaseSpeed = SpeedForPreset(preset)
}
