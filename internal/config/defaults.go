package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSettings returns the factory settings.
func DefaultSettings() Settings {
	return Settings{
		GridWidth:  28,
		GridHeight: 22,
		BaseSpeed:  6,
		Wrap:       true,
		Obstacles:  false,
		Sound:      true,
		Mode:       ModeClassic,
		Theme:      ThemeNeo,
	}
}

// DefaultRules returns the stock rule constants.
func DefaultRules() Rules {
	return Rules{
		FoodPoints:       1,
		GoldenBonus:      5,
		CheatScore:       50,
		SpecialChance:    0.1,
		SpecialTTLMin:    30,
		SpecialTTLMax:    60,
		CheatSpecialTTL:  80,
		ObstacleDensity:  0.04,
		TimedSeconds:     120,
		FreeCellAttempts: 5000,
		PortalJitter:     2,
		InitialLength:    3,
	}
}

// DefaultSnakeConfig returns the hardcoded default configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Settings: DefaultSettings(),
		Rules:    DefaultRules(),
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
