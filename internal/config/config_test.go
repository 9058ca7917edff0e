package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestSettingsClamp(t *testing.T) {
	tests := []struct {
		name string
		in   Settings
		want Settings
	}{
		{
			name: "below minimum",
			in:   Settings{GridWidth: 2, GridHeight: -4, BaseSpeed: 0, Mode: "classic", Theme: "neo"},
			want: Settings{GridWidth: 10, GridHeight: 10, BaseSpeed: 1, Mode: "classic", Theme: "neo"},
		},
		{
			name: "above maximum",
			in:   Settings{GridWidth: 500, GridHeight: 61, BaseSpeed: 11, Mode: "timed", Theme: "retro"},
			want: Settings{GridWidth: 80, GridHeight: 60, BaseSpeed: 10, Mode: "timed", Theme: "retro"},
		},
		{
			name: "unknown mode and theme",
			in:   Settings{GridWidth: 28, GridHeight: 22, BaseSpeed: 6, Mode: "arcade", Theme: "pink"},
			want: Settings{GridWidth: 28, GridHeight: 22, BaseSpeed: 6, Mode: "classic", Theme: "neo"},
		},
		{
			name: "case normalized",
			in:   Settings{GridWidth: 28, GridHeight: 22, BaseSpeed: 6, Mode: " Daily ", Theme: "SUNSET"},
			want: Settings{GridWidth: 28, GridHeight: 22, BaseSpeed: 6, Mode: "daily", Theme: "sunset"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in
			got.Clamp()
			if got != tc.want {
				t.Errorf("Clamp() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("TIMED"); err != nil || m != ModeTimed {
		t.Errorf("ParseMode(TIMED) = %q, %v", m, err)
	}
	if _, err := ParseMode("zen"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("ParseMode(zen) error = %v, expected ErrUnknownMode", err)
	}
}

func TestNextMode(t *testing.T) {
	tests := map[string]string{
		ModeClassic: ModeTimed,
		ModeTimed:   ModeDaily,
		ModeDaily:   ModeClassic,
		"bogus":     ModeClassic,
	}
	for in, want := range tests {
		if got := NextMode(in); got != want {
			t.Errorf("NextMode(%q) = %q, expected %q", in, got, want)
		}
	}
}

func TestDefaultRulesValid(t *testing.T) {
	if err := DefaultRules().Validate(); err != nil {
		t.Fatalf("DefaultRules().Validate() = %v", err)
	}
}

func TestRulesValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Rules)
	}{
		{"negative chance", func(r *Rules) { r.SpecialChance = -0.1 }},
		{"chance above one", func(r *Rules) { r.SpecialChance = 1.5 }},
		{"inverted ttl", func(r *Rules) { r.SpecialTTLMin, r.SpecialTTLMax = 40, 30 }},
		{"zero attempts", func(r *Rules) { r.FreeCellAttempts = 0 }},
		{"zero timer", func(r *Rules) { r.TimedSeconds = 0 }},
		{"long start", func(r *Rules) { r.InitialLength = 6 }},
		{"negative jitter", func(r *Rules) { r.PortalJitter = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := DefaultRules()
			tc.mutate(&r)
			if err := r.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) = %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults %+v differ from hardcoded %+v", cfg, DefaultSnakeConfig())
	}
}

func TestParseKeepsDefaultsForMissingKeys(t *testing.T) {
	cfg, err := Parse([]byte("settings:\n  grid_width: 40\n  obstacles: true\n"))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	if cfg.Settings.GridWidth != 40 || !cfg.Settings.Obstacles {
		t.Errorf("overrides not applied: %+v", cfg.Settings)
	}
	if cfg.Settings.GridHeight != 22 || cfg.Settings.BaseSpeed != 6 {
		t.Errorf("missing keys should keep defaults: %+v", cfg.Settings)
	}
	if cfg.Rules != DefaultRules() {
		t.Errorf("rules should be defaults, got %+v", cfg.Rules)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(path, []byte("settings:\n  grid_width: 5\n  mode: timed\nrules:\n  timed_seconds: 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cfg.Settings.GridWidth != MinGridWidth {
		t.Errorf("GridWidth = %d, expected clamp to %d", cfg.Settings.GridWidth, MinGridWidth)
	}
	if cfg.Settings.Mode != ModeTimed || cfg.Rules.TimedSeconds != 30 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing custom path should fail")
	}
}

func TestLoadRejectsInvalidRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  special_chance: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should reject invalid rules")
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snake.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault() = %v", err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("written default does not load: %v", err)
	}
	if err := WriteDefault(path); err == nil {
		t.Error("WriteDefault should refuse to overwrite")
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		in    string
		speed int
	}{
		{"easy", 4},
		{"Normal", 6},
		{"HARD", 9},
	}
	for _, tc := range tests {
		p, err := ParsePreset(tc.in)
		if err != nil {
			t.Fatalf("ParsePreset(%q) = %v", tc.in, err)
		}
		s := DefaultSettings()
		ApplyPreset(&s, p)
		if s.BaseSpeed != tc.speed {
			t.Errorf("preset %q speed = %d, expected %d", tc.in, s.BaseSpeed, tc.speed)
		}
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}
