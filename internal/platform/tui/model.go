package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/tggbb/SnakeNeo/internal/audio"
	"github.com/tggbb/SnakeNeo/internal/core"
	"github.com/tggbb/SnakeNeo/internal/games/snake"
	"github.com/tggbb/SnakeNeo/internal/persist"
	"github.com/tggbb/SnakeNeo/internal/replay"
	"github.com/tggbb/SnakeNeo/internal/storage"
)

// statusDuration is how long a status message stays on screen.
const statusDuration = 3 * time.Second

// LastReplayFile is the file name of the most recent recording.
const LastReplayFile = "last.snr"

// Session bundles the collaborators of a play session. Every field is optional.
type Session struct {
	Store      *storage.Store
	Audio      *audio.Player
	Logger     *log.Logger
	ReplayDir  string // empty disables replay files
	DataDir    string // screenshots go under DataDir/screenshots
	PlayerName string
	Theme      string
	Admin      bool
	FPS        int
}

// Model is the Bubble Tea model for playing SnakeNeo.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	session    Session
	theme      Theme
	keyMapper  *KeyMapper
	persist    *persist.Recorder
	replays    *replay.Recorder
	inputFrame core.InputFrame
	lastTick   time.Time
	nameEntry  *NameEntry

	status      string
	statusUntil time.Time

	width    int
	height   int
	quitting bool
	back     bool
}

// NewModel creates a play model for the game.
func NewModel(game *snake.Game, s Session, width, height int) Model {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.FPS <= 0 {
		s.FPS = DefaultFPS
	}

	var store persist.Store
	if s.Store != nil {
		store = s.Store
	}
	rec := persist.New(store, s.Logger)
	if err := rec.Prime(game); err != nil {
		s.Logger.Warn("could not load saved progress", "error", err)
	}

	game.Resize(width, height)
	replays := replay.NewRecorder(game)
	replays.Start()

	return Model{
		game:       game,
		screen:     core.NewScreen(width, height),
		session:    s,
		theme:      ThemeByName(s.Theme),
		keyMapper:  NewKeyMapper(s.Admin),
		persist:    rec,
		replays:    replays,
		inputFrame: core.NewInputFrame(),
		width:      width,
		height:     height,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.nameEntry != nil {
		entry, cmd := m.nameEntry.Update(msg)
		m.nameEntry = &entry
		if entry.Done() {
			m.finishNameEntry()
		}
		return m, cmd
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if cheat, ok := m.keyMapper.MapAdminKey(msg); ok {
		if m.game.ApplyCheat(cheat) {
			m.setStatus("cheat: " + string(cheat))
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack && m.game.Phase() != snake.PhaseRunning {
		m.back = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleTick applies the buffered input and the elapsed time since the last frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	m.applyInput()
	m.game.Update(dt)
	m.dispatch(m.game.Events())

	if m.status != "" && now.After(m.statusUntil) {
		m.status = ""
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.session.FPS)
}

// applyInput forwards the frame's actions in arrival order. Directions go
// through the replay recorder so accepted turns are captured.
func (m *Model) applyInput() {
	for _, a := range m.inputFrame.Sequence {
		switch a {
		case core.ActionRestart:
			m.restart(func() { m.game.Restart(snake.RestartFull) })
		case core.ActionSoftRestart:
			m.restart(func() { m.game.Restart(snake.RestartSoft) })
		case core.ActionCycleMode:
			m.restart(func() { m.game.SetMode(m.game.Mode().Next()) })
		case core.ActionPause:
			m.game.TogglePause()
		default:
			if d, ok := snake.DirectionFromAction(a); ok {
				m.replays.Submit(d)
			}
		}
	}
}

func (m *Model) restart(do func()) {
	m.persist.Discard()
	do()
	m.replays.Start()
}

// dispatch hands drained events to the collaborators.
func (m *Model) dispatch(events []snake.Event) {
	if len(events) == 0 {
		return
	}
	if err := m.persist.Handle(events); err != nil {
		m.setStatus("could not save progress")
	}
	if m.session.Audio != nil {
		m.session.Audio.Handle(events)
	}

	for _, ev := range events {
		switch e := ev.(type) {
		case snake.AchievementUnlocked:
			m.setStatus("Achievement unlocked: " + e.Name)
		case snake.GameOver:
			m.onGameOver(e)
		}
	}
}

func (m *Model) onGameOver(e snake.GameOver) {
	if rec, ok := m.replays.Finish(); ok && m.session.ReplayDir != "" {
		path := filepath.Join(m.session.ReplayDir, LastReplayFile)
		if err := replay.Save(path, rec); err != nil {
			m.session.Logger.Warn("could not save replay", "error", err)
		}
	}
	if e.NewBest {
		m.setStatus(fmt.Sprintf("New best: %d", e.Best))
	}
	if e.FinalScore > 0 && m.persist.Enabled() {
		entry := NewNameEntry(e.FinalScore, m.session.PlayerName)
		m.nameEntry = &entry
	}
}

func (m *Model) finishNameEntry() {
	entry := m.nameEntry
	m.nameEntry = nil
	if !entry.Submitted() {
		m.persist.Discard()
		return
	}

	name := entry.Name()
	m.session.PlayerName = name
	saved, err := m.persist.SaveRun(name, m.game.Snapshot())
	switch {
	case err != nil:
		m.setStatus("could not save score")
	case saved:
		m.setStatus("Saved to leaderboard as " + name)
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusUntil = time.Now().Add(statusDuration)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(m.session.DataDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatus("screenshot failed")
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.setStatus("screenshot failed")
		return
	}
	m.setStatus("screenshot saved")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.nameEntry != nil {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Render(m.nameEntry.View(m.theme))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	m.game.Render(m.screen)
	if m.status != "" && m.screen.Height() > 0 {
		m.screen.DrawTextColor(1, m.screen.Height()-1, m.status, core.ColorBrightYellow)
	}
	return RenderScreen(m.screen, m.theme)
}

// Game returns the wrapped game.
func (m Model) Game() *snake.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// PlayerName returns the last name entered for the leaderboard.
func (m Model) PlayerName() string {
	return m.session.PlayerName
}

// Run plays the game until the player quits or goes back.
// It reports whether the player asked to go back to the menu.
func Run(game *snake.Game, s Session, width, height int) (goBack bool, err error) {
	model := NewModel(game, s, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
