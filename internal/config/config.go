// Package config provides YAML-based configuration loading, settings
// clamping, and speed presets for SnakeNeo.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a mode name is not one of Modes().
var ErrUnknownMode = errors.New("config: unknown mode")

// Game modes understood by the simulation.
const (
	ModeClassic = "classic"
	ModeTimed   = "timed"
	ModeDaily   = "daily"
)

// Themes understood by the terminal renderer.
const (
	ThemeNeo    = "neo"
	ThemeRetro  = "retro"
	ThemeSunset = "sunset"
)

// Settings bounds.
const (
	MinGridWidth  = 10
	MaxGridWidth  = 80
	MinGridHeight = 10
	MaxGridHeight = 60
	MinBaseSpeed  = 1
	MaxBaseSpeed  = 10
)

// SnakeConfig contains all configuration for a SnakeNeo session.
type SnakeConfig struct {
	Settings Settings `yaml:"settings"`
	Rules    Rules    `yaml:"rules"`
}

// Settings are the player-facing options. They are applied to the
// simulation only at full restart boundaries.
type Settings struct {
	GridWidth  int    `yaml:"grid_width"`
	GridHeight int    `yaml:"grid_height"`
	BaseSpeed  int    `yaml:"base_speed"` // ticks per second at 1x
	Wrap       bool   `yaml:"wrap"`
	Obstacles  bool   `yaml:"obstacles"`
	Sound      bool   `yaml:"sound"`
	Mode       string `yaml:"mode"`
	Theme      string `yaml:"theme"`
}

// Rules holds the tuning constants of the simulation.
type Rules struct {
	FoodPoints       int     `yaml:"food_points"`
	GoldenBonus      int     `yaml:"golden_bonus"`
	CheatScore       int     `yaml:"cheat_score"`
	SpecialChance    float64 `yaml:"special_chance"`
	SpecialTTLMin    int     `yaml:"special_ttl_min"`
	SpecialTTLMax    int     `yaml:"special_ttl_max"`
	CheatSpecialTTL  int     `yaml:"cheat_special_ttl"`
	ObstacleDensity  float64 `yaml:"obstacle_density"`
	TimedSeconds     float64 `yaml:"timed_seconds"`
	FreeCellAttempts int     `yaml:"free_cell_attempts"`
	PortalJitter     int     `yaml:"portal_jitter"`
	InitialLength    int     `yaml:"initial_length"`
}

// Clamp brings every setting into its valid range.
// Unknown modes fall back to classic and unknown themes to neo.
func (s *Settings) Clamp() {
	s.GridWidth = clampInt(s.GridWidth, MinGridWidth, MaxGridWidth)
	s.GridHeight = clampInt(s.GridHeight, MinGridHeight, MaxGridHeight)
	s.BaseSpeed = clampInt(s.BaseSpeed, MinBaseSpeed, MaxBaseSpeed)

	if m, err := ParseMode(s.Mode); err == nil {
		s.Mode = m
	} else {
		s.Mode = ModeClassic
	}

	switch strings.ToLower(s.Theme) {
	case ThemeNeo, ThemeRetro, ThemeSunset:
		s.Theme = strings.ToLower(s.Theme)
	default:
		s.Theme = ThemeNeo
	}
}

// Validate reports rule values the simulation cannot run with.
func (r Rules) Validate() error {
	switch {
	case r.FoodPoints < 0 || r.GoldenBonus < 0 || r.CheatScore < 0:
		return errors.New("config: points must not be negative")
	case r.SpecialChance < 0 || r.SpecialChance > 1:
		return fmt.Errorf("config: special_chance %v outside [0, 1]", r.SpecialChance)
	case r.SpecialTTLMin < 1 || r.SpecialTTLMax < r.SpecialTTLMin:
		return fmt.Errorf("config: invalid special ttl range [%d, %d]", r.SpecialTTLMin, r.SpecialTTLMax)
	case r.CheatSpecialTTL < 1:
		return fmt.Errorf("config: cheat_special_ttl must be positive, got %d", r.CheatSpecialTTL)
	case r.ObstacleDensity < 0 || r.ObstacleDensity > 0.5:
		return fmt.Errorf("config: obstacle_density %v outside [0, 0.5]", r.ObstacleDensity)
	case r.TimedSeconds <= 0:
		return fmt.Errorf("config: timed_seconds must be positive, got %v", r.TimedSeconds)
	case r.FreeCellAttempts < 1:
		return fmt.Errorf("config: free_cell_attempts must be positive, got %d", r.FreeCellAttempts)
	case r.PortalJitter < 0:
		return fmt.Errorf("config: portal_jitter must not be negative, got %d", r.PortalJitter)
	case r.InitialLength < 1 || r.InitialLength > MinGridWidth/2:
		return fmt.Errorf("config: initial_length %d outside [1, %d]", r.InitialLength, MinGridWidth/2)
	}
	return nil
}

// Modes returns the mode names in cycle order.
func Modes() []string {
	return []string{ModeClassic, ModeTimed, ModeDaily}
}

// ParseMode normalizes a mode name.
func ParseMode(s string) (string, error) {
	m := strings.ToLower(strings.TrimSpace(s))
	for _, known := range Modes() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// NextMode returns the mode following m in cycle order.
func NextMode(m string) string {
	modes := Modes()
	for i, known := range modes {
		if known == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return ModeClassic
}

func clampInt(val, lo, hi int) int {
	return max(lo, min(hi, val))
}
