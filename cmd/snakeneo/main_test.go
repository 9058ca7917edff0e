package main

import (
	"testing"

	"github.com/tggbb/SnakeNeo/internal/config"
)

func TestParseBoolFlag(t *testing.T) {
	tests := []struct {
		value   string
		start   bool
		want    bool
		wantErr bool
	}{
		{"", true, true, false},
		{"", false, false, false},
		{"true", false, true, false},
		{"on", false, true, false},
		{"0", true, false, false},
		{"no", true, false, false},
		{"maybe", true, true, true},
	}

	for _, tt := range tests {
		got := tt.start
		err := parseBoolFlag("wrap", tt.value, &got)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseBoolFlag(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseBoolFlag(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestApplyPlayFlags(t *testing.T) {
	defer func() {
		flagPreset, flagWidth, flagHeight, flagWrap, flagNoSound = "", 0, 0, "", false
	}()
	flagPreset = "hard"
	flagWidth = 500
	flagHeight = 15
	flagWrap = "false"
	flagNoSound = true

	s := config.DefaultSettings()
	if err := applyPlayFlags(&s); err != nil {
		t.Fatalf("applyPlayFlags failed: %v", err)
	}
	if s.BaseSpeed != config.SpeedForPreset(config.DifficultyHard) {
		t.Errorf("BaseSpeed = %d, want hard preset", s.BaseSpeed)
	}
	if s.GridWidth != config.MaxGridWidth {
		t.Errorf("GridWidth = %d, want clamped %d", s.GridWidth, config.MaxGridWidth)
	}
	if s.GridHeight != 15 {
		t.Errorf("GridHeight = %d, want 15", s.GridHeight)
	}
	if s.Wrap || s.Sound {
		t.Errorf("Wrap = %v, Sound = %v, want both false", s.Wrap, s.Sound)
	}

	flagPreset = "insane"
	if err := applyPlayFlags(&s); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestPortOf(t *testing.T) {
	tests := map[string]string{
		":23234":         "23234",
		"0.0.0.0:2222":   "2222",
		"[::1]:2200":     "2200",
		"no-port-at-all": "no-port-at-all",
	}
	for addr, want := range tests {
		if got := portOf(addr); got != want {
			t.Errorf("portOf(%q) = %q, want %q", addr, got, want)
		}
	}
}
