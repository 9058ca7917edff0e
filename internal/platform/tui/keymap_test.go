package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tggbb/SnakeNeo/internal/core"
	"github.com/tggbb/SnakeNeo/internal/games/snake"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(false)

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Action
		isQuit bool
	}{
		{name: "w", msg: runeKey('w'), want: core.ActionUp},
		{name: "up", msg: tea.KeyMsg{Type: tea.KeyUp}, want: core.ActionUp},
		{name: "a", msg: runeKey('a'), want: core.ActionLeft},
		{name: "left", msg: tea.KeyMsg{Type: tea.KeyLeft}, want: core.ActionLeft},
		{name: "s", msg: runeKey('s'), want: core.ActionDown},
		{name: "d", msg: runeKey('d'), want: core.ActionRight},
		{name: "right", msg: tea.KeyMsg{Type: tea.KeyRight}, want: core.ActionRight},
		{name: "space", msg: tea.KeyMsg{Type: tea.KeySpace}, want: core.ActionPause},
		{name: "p", msg: runeKey('p'), want: core.ActionPause},
		{name: "r", msg: runeKey('r'), want: core.ActionRestart},
		{name: "R", msg: runeKey('R'), want: core.ActionSoftRestart},
		{name: "m", msg: runeKey('m'), want: core.ActionCycleMode},
		{name: "esc", msg: tea.KeyMsg{Type: tea.KeyEscape}, want: core.ActionBack},
		{name: "q", msg: runeKey('q'), want: core.ActionQuit, isQuit: true},
		{name: "ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, want: core.ActionQuit, isQuit: true},
		{name: "unbound", msg: runeKey('z'), want: core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.isQuit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, quit, tt.want, tt.isQuit)
			}
		})
	}
}

func TestMapKeyToFrameKeepsOrder(t *testing.T) {
	km := NewKeyMapper(false)
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('w'), &frame)
	km.MapKeyToFrame(runeKey('z'), &frame)
	km.MapKeyToFrame(runeKey('a'), &frame)

	dirs := frame.Directions()
	if len(dirs) != 2 || dirs[0] != core.ActionUp || dirs[1] != core.ActionLeft {
		t.Errorf("unexpected directions: %v", dirs)
	}
}

func TestMapAdminKey(t *testing.T) {
	if _, ok := NewKeyMapper(false).MapAdminKey(runeKey('g')); ok {
		t.Error("cheat keys must be unbound without admin mode")
	}

	km := NewKeyMapper(true)
	tests := []struct {
		key  rune
		want snake.Cheat
	}{
		{'g', snake.CheatToggleGod},
		{'t', snake.CheatToggleWrap},
		{'o', snake.CheatObstacles},
		{'1', snake.CheatSpawnGolden},
		{'2', snake.CheatSpawnPortal},
		{'x', snake.CheatAddScore},
		{']', snake.CheatGrow},
		{'[', snake.CheatShrink},
		{'f', snake.CheatTeleportFood},
		{'+', snake.CheatSpeedUp},
		{'-', snake.CheatSpeedDown},
	}
	for _, tt := range tests {
		got, ok := km.MapAdminKey(runeKey(tt.key))
		if !ok || got != tt.want {
			t.Errorf("MapAdminKey(%q) = %q, %v; want %q", tt.key, got, ok, tt.want)
		}
	}

	if _, ok := km.MapAdminKey(runeKey('w')); ok {
		t.Error("movement keys must not map to cheats")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper(false)

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('k'), MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
