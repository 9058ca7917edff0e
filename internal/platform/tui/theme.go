package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tggbb/SnakeNeo/internal/config"
	"github.com/tggbb/SnakeNeo/internal/core"
)

// Theme maps screen colors to terminal styles and styles the chrome
// around the board.
type Theme struct {
	Name    string
	palette map[core.Color]lipgloss.Style

	// Chrome styles
	Title  lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Alert  lipgloss.Style
}

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// basePalette maps every core.Color to its plain ANSI code.
func basePalette() map[core.Color]lipgloss.Style {
	p := make(map[core.Color]lipgloss.Style)
	for _, c := range core.Colors() {
		if code := c.ANSI(); code != "" {
			p[c] = fg(code)
		} else {
			p[c] = lipgloss.NewStyle()
		}
	}
	return p
}

// NeoTheme returns the default neon theme.
func NeoTheme() Theme {
	p := basePalette()
	p[core.ColorCyan] = fg("45")         // Snake body
	p[core.ColorBrightCyan] = fg("87")   // Snake head
	p[core.ColorBrightGreen] = fg("199") // Food
	p[core.ColorBrightYellow] = fg("227")
	p[core.ColorBrightBlue] = fg("171")
	p[core.ColorGray] = fg("240")
	return Theme{
		Name:    config.ThemeNeo,
		palette: p,
		Title:   fg("87").Bold(true),
		Text:    fg("252"),
		Muted:   fg("241"),
		Accent:  fg("199").Bold(true),
		Alert:   fg("203").Bold(true),
	}
}

// RetroTheme returns a green phosphor theme.
func RetroTheme() Theme {
	p := basePalette()
	for c := range p {
		p[c] = fg("34")
	}
	p[core.ColorDefault] = lipgloss.NewStyle()
	p[core.ColorBrightCyan] = fg("46").Bold(true)
	p[core.ColorBrightWhite] = fg("46")
	p[core.ColorBrightYellow] = fg("118").Bold(true)
	p[core.ColorBrightRed] = fg("120").Bold(true)
	p[core.ColorGray] = fg("22")
	return Theme{
		Name:    config.ThemeRetro,
		palette: p,
		Title:   fg("46").Bold(true),
		Text:    fg("34"),
		Muted:   fg("22"),
		Accent:  fg("118").Bold(true),
		Alert:   fg("120").Bold(true),
	}
}

// SunsetTheme returns a warm orange and pink theme.
func SunsetTheme() Theme {
	p := basePalette()
	p[core.ColorCyan] = fg("209")
	p[core.ColorBrightCyan] = fg("214")
	p[core.ColorBrightGreen] = fg("198")
	p[core.ColorBrightYellow] = fg("220")
	p[core.ColorBrightBlue] = fg("135")
	p[core.ColorBlue] = fg("97")
	p[core.ColorGray] = fg("95")
	p[core.ColorBrightWhite] = fg("223")
	return Theme{
		Name:    config.ThemeSunset,
		palette: p,
		Title:   fg("214").Bold(true),
		Text:    fg("223"),
		Muted:   fg("95"),
		Accent:  fg("198").Bold(true),
		Alert:   fg("196").Bold(true),
	}
}

// ThemeByName returns the named theme, falling back to neo.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case config.ThemeRetro:
		return RetroTheme()
	case config.ThemeSunset:
		return SunsetTheme()
	default:
		return NeoTheme()
	}
}

// Style returns the style for a screen color.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.palette[c]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
