// Package audio plays short synthesized tones for simulation events.
// Sound is best-effort: when no output device is available the player
// logs once and stays silent.
package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/tggbb/SnakeNeo/internal/games/snake"
)

// SampleRate is the output sample rate.
const SampleRate = beep.SampleRate(44100)

// Tone is a sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

// Event tones.
var (
	ToneEat      = Tone{Freq: 660, Duration: 60 * time.Millisecond}
	ToneGolden   = Tone{Freq: 880, Duration: 80 * time.Millisecond}
	TonePortal   = Tone{Freq: 520, Duration: 60 * time.Millisecond}
	ToneGameOver = Tone{Freq: 140, Duration: 120 * time.Millisecond}
	ToneUnlock   = Tone{Freq: 990, Duration: 90 * time.Millisecond}
)

// ToneFor returns the tone announcing an event, if any.
func ToneFor(ev snake.Event) (Tone, bool) {
	switch e := ev.(type) {
	case snake.FoodEaten:
		return ToneEat, true
	case snake.SpecialConsumed:
		if e.Special.Kind == snake.SpecialPortal {
			return TonePortal, true
		}
		return ToneGolden, true
	case snake.GameOver:
		return ToneGameOver, true
	case snake.AchievementUnlocked:
		return ToneUnlock, true
	}
	return Tone{}, false
}

// Player turns events into tones.
type Player struct {
	enabled bool
	ready   bool
	volume  float64 // beep volume exponent, base 2
	logger  *log.Logger
	play    func(...beep.Streamer)
}

// New creates a Player. It makes no sound until Init succeeds.
func New(enabled bool, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		enabled: enabled,
		volume:  -1,
		logger:  logger,
		play:    speaker.Play,
	}
}

// Init opens the speaker. A failure leaves the player silent; the error is
// returned for callers that want to report it.
func (p *Player) Init() error {
	if !p.enabled || p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		p.enabled = false
		p.logger.Warn("audio unavailable, continuing silently", "error", err)
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Enabled reports whether tones are played.
func (p *Player) Enabled() bool {
	return p.enabled && p.ready
}

// SetEnabled toggles sound. Enabling a player that was never initialized
// has no audible effect until Init.
func (p *Player) SetEnabled(on bool) {
	p.enabled = on
}

// Handle plays the tone of each event that has one.
func (p *Player) Handle(events []snake.Event) {
	if !p.Enabled() {
		return
	}
	for _, ev := range events {
		tone, ok := ToneFor(ev)
		if !ok {
			continue
		}
		s, err := p.stream(tone)
		if err != nil {
			p.logger.Debug("cannot build tone", "freq", tone.Freq, "error", err)
			continue
		}
		p.play(s)
	}
}

// stream builds a finite, attenuated sine streamer for a tone.
func (p *Player) stream(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, t.Freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(SampleRate.N(t.Duration), sine),
		Base:     2,
		Volume:   p.volume,
	}, nil
}
