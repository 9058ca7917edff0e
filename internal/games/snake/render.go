package snake

import (
	"fmt"

	"github.com/tggbb/SnakeNeo/internal/core"
)

// Visual characters for rendering
const (
	charHead     = '█'
	charBody     = '▓'
	charFood     = '●'
	charGolden   = '★'
	charPortal   = '◎'
	charObstacle = '▒'
)

const hudHeight = 2

// layout returns the board origin and cell width for the current screen,
// or ok=false when the board does not fit.
func (g *Game) layout(w, h int) (originX, originY, cellW int, ok bool) {
	if h < g.grid.Height+hudHeight+2 || w < g.grid.Width+2 {
		return 0, 0, 0, false
	}
	cellW = 1
	if g.grid.Width*2+2 <= w {
		cellW = 2
	}
	boardW := g.grid.Width*cellW + 2
	originX = (w - boardW) / 2
	originY = hudHeight
	return originX, originY, cellW, true
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	ox, oy, cw, ok := g.layout(dst.Width(), dst.Height())
	if !ok {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.grid.Width+2, g.grid.Height+hudHeight+2))
		return
	}

	frame := core.ColorGray
	if g.grid.Wrap {
		frame = core.ColorBlue
	}
	dst.DrawBoxColor(core.NewRect(ox, oy, g.grid.Width*cw+2, g.grid.Height+2), frame)

	cell := func(p Point, r rune, c core.Color, fill bool) {
		x := ox + 1 + p.X*cw
		y := oy + 1 + p.Y
		dst.SetColor(x, y, r, c)
		if cw == 2 && fill {
			dst.SetColor(x+1, y, r, c)
		}
	}

	g.obstacles.Each(func(p Point) {
		cell(p, charObstacle, core.ColorGray, true)
	})
	if g.hasFood {
		cell(g.food, charFood, core.ColorBrightGreen, false)
	}
	if g.special != nil {
		if g.special.Kind == SpecialGolden {
			cell(g.special.Pos, charGolden, core.ColorBrightYellow, false)
		} else {
			cell(g.special.Pos, charPortal, core.ColorBrightBlue, false)
		}
	}
	for i := len(g.snake) - 1; i >= 0; i-- {
		if i == 0 {
			cell(g.snake[i], charHead, core.ColorBrightCyan, true)
		} else {
			cell(g.snake[i], charBody, core.ColorCyan, true)
		}
	}

	switch g.phase {
	case PhaseIdle:
		g.renderOverlay(dst, "Press an arrow key to start", "WASD supported, space to pause")
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P or space to continue")
	case PhaseGameOver:
		g.renderOverlay(dst, fmt.Sprintf("Game Over: %d", g.score), "r restart, R soft restart")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" SNAKE NEO  %s  Score: %d  Best: %d  Speed: %.1fx",
		g.mode.Title(), g.score, g.Best(), g.speedMul)
	if g.mode == ModeTimed {
		hud += "  Time: " + FormatClock(g.timeLeft)
	}
	if g.mode == ModeDaily {
		hud += fmt.Sprintf("  Seed: %d", g.daily)
	}
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	var flags string
	if g.god {
		flags += " GOD"
	}
	if g.cheated {
		flags += " CHEAT"
	}
	if flags != "" {
		dst.DrawTextColor(dst.Width()-len(flags)-1, 0, flags, core.ColorBrightRed)
	}

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBoxColor(r, core.ColorBrightWhite)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
