package snake

import (
	"time"

	"github.com/tggbb/SnakeNeo/internal/config"
)

// Mode selects the rule set of a run.
type Mode string

const (
	ModeClassic Mode = config.ModeClassic
	ModeTimed   Mode = config.ModeTimed
	ModeDaily   Mode = config.ModeDaily
)

// Modes returns every mode in cycle order.
func Modes() []Mode {
	names := config.Modes()
	modes := make([]Mode, len(names))
	for i, n := range names {
		modes[i] = Mode(n)
	}
	return modes
}

// ParseMode converts a mode name, returning config.ErrUnknownMode for unknown names.
func ParseMode(s string) (Mode, error) {
	m, err := config.ParseMode(s)
	if err != nil {
		return "", err
	}
	return Mode(m), nil
}

// Next returns the mode after m in cycle order.
func (m Mode) Next() Mode {
	return Mode(config.NextMode(string(m)))
}

// Title returns a display name for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeTimed:
		return "Timed"
	case ModeDaily:
		return "Daily"
	default:
		return "Classic"
	}
}

// Description returns a one-line summary of the mode's rules.
func (m Mode) Description() string {
	switch m {
	case ModeTimed:
		return "Score as much as you can before the clock runs out"
	case ModeDaily:
		return "Same board for everyone, new every day"
	default:
		return "Endless run, eat and grow"
	}
}

// Options configure a Game. They are assumed to be clamped already
// and take effect at the next full restart.
type Options struct {
	Mode      Mode
	Grid      GridConfig
	BaseSpeed int // ticks per second at 1x
	Rules     config.Rules

	// SpeedMul is the speed multiplier a full restart starts from.
	// Zero means 1. Replays use it to rebuild runs after soft restarts.
	SpeedMul float64

	// Seed seeds the ambient stream of the first run in classic and timed
	// modes. Later runs draw their seeds from it. Zero seeds from the clock.
	Seed int64

	// DailySeed pins the daily-mode seed. Zero derives it from Now.
	DailySeed uint32

	// Now supplies the date for daily seeds. Nil means time.Now.
	Now func() time.Time
}

// DefaultOptions returns options built from the factory settings.
func DefaultOptions(mode Mode) Options {
	opts := OptionsFromConfig(config.DefaultSnakeConfig())
	opts.Mode = mode
	return opts
}

// OptionsFromConfig converts loaded configuration into game options.
func OptionsFromConfig(cfg config.SnakeConfig) Options {
	s := cfg.Settings
	s.Clamp()
	return Options{
		Mode: Mode(s.Mode),
		Grid: GridConfig{
			Width:     s.GridWidth,
			Height:    s.GridHeight,
			Wrap:      s.Wrap,
			Obstacles: s.Obstacles,
		},
		BaseSpeed: s.BaseSpeed,
		Rules:     cfg.Rules,
	}
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}
