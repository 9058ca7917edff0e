package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tggbb/SnakeNeo/internal/games/snake"
	"github.com/tggbb/SnakeNeo/internal/registry"
	"github.com/tggbb/SnakeNeo/internal/storage"
)

const minWidthForSidebar = 80
const sidebarWidth = 20

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPage, k.PrevPage, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPage, k.PrevPage},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab", "right", "l", "d"),
			key.WithHelp("tab/right", "next"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h", "a"),
			key.WithHelp("S-tab/left", "prev"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// boardPage is one tab of the scoreboard: a leaderboard (mode "" lists
// every mode) or the achievement list.
type boardPage struct {
	title        string
	mode         string
	achievements bool
}

func boardPages() []boardPage {
	pages := []boardPage{{title: "All"}}
	for _, info := range registry.List() {
		pages = append(pages, boardPage{title: snake.Mode(info.ID).Title(), mode: info.ID})
	}
	return append(pages, boardPage{title: "Achievements", achievements: true})
}

// ScoreboardModel shows the leaderboards and achievements.
type ScoreboardModel struct {
	pages       []boardPage
	page        int
	store       *storage.Store
	scores      []storage.ScoreEntry
	unlocked    map[string]string // achievement id -> unlock date
	best        int
	theme       Theme
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard opened on the board of start.
// An empty start opens the board of all modes.
func NewScoreboardModel(store *storage.Store, theme Theme, start snake.Mode, width, height int) ScoreboardModel {
	pages := boardPages()
	page := 0
	for i, p := range pages {
		if !p.achievements && p.mode == string(start) {
			page = i
		}
	}

	h := help.New()
	h.ShowAll = false
	h.Styles.ShortKey = theme.Accent
	h.Styles.ShortDesc = theme.Muted

	m := ScoreboardModel{
		pages:       pages,
		page:        page,
		store:       store,
		theme:       theme,
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m ScoreboardModel) current() boardPage {
	return m.pages[m.page]
}

// createTable builds the table for the current page and terminal size.
func (m *ScoreboardModel) createTable() table.Model {
	available := m.width - 6
	if m.showSidebar {
		available -= sidebarWidth + 4
	}

	var columns []table.Column
	if m.current().achievements {
		columns = []table.Column{
			{Title: "", Width: 3},
			{Title: "Achievement", Width: 16},
			{Title: "Description", Width: 32},
			{Title: "Unlocked", Width: 10},
		}
		if fixed := 3 + 16 + 10 + 8; available-fixed < 32 {
			columns[2].Width = max(10, available-fixed)
		}
	} else {
		columns = []table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Name", Width: storage.MaxNameLen},
			{Title: "Score", Width: 7},
			{Title: "Date", Width: 12},
		}
		if m.current().mode == "" {
			columns = slices.Insert(columns, 2, table.Column{Title: "Mode", Width: 8})
		}
		fixed := 2 * len(columns)
		for i, c := range columns {
			if i != 1 {
				fixed += c.Width
			}
		}
		if available-fixed < storage.MaxNameLen {
			columns[1].Width = max(8, available-fixed)
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)),
	)

	s := table.DefaultStyles()
	s.Header = m.theme.Title.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.theme.Muted.GetForeground()).
		BorderBottom(true)
	s.Selected = m.theme.Accent.Reverse(true)
	t.SetStyles(s)
	return t
}

// load reads the data of the current page and fills the table.
func (m *ScoreboardModel) load() {
	m.scores = nil
	m.unlocked = nil
	m.best = 0

	p := m.current()
	if m.store != nil {
		if p.achievements {
			if list, err := m.store.Achievements(); err == nil {
				m.unlocked = make(map[string]string, len(list))
				for _, a := range list {
					m.unlocked[a.ID] = a.UnlockedAt.Format("2006-01-02")
				}
			}
		} else {
			if scores, err := m.store.TopScores(p.mode, storage.DefaultLimit); err == nil {
				m.scores = scores
			}
			if best, err := m.store.BestScore(p.mode); err == nil {
				m.best = best
			}
		}
	}

	m.table = m.createTable()
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func (m ScoreboardModel) rows() []table.Row {
	if m.current().achievements {
		catalogue := snake.Achievements()
		rows := make([]table.Row, len(catalogue))
		for i, a := range catalogue {
			mark, date := " ", ""
			if d, ok := m.unlocked[a.ID]; ok {
				mark, date = "*", d
			}
			rows[i] = table.Row{mark, a.Name, a.Description, date}
		}
		return rows
	}

	allModes := m.current().mode == ""
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		score := fmt.Sprintf("%d", s.Score)
		if s.Cheated {
			score += "*"
		}
		row := table.Row{fmt.Sprintf("#%d", i+1), s.Name}
		if allModes {
			row = append(row, snake.Mode(s.Mode).Title())
		}
		rows[i] = append(row, score, s.CreatedAt.Format("Jan 02 15:04"))
	}
	return rows
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPage):
			m.page = (m.page + 1) % len(m.pages)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevPage):
			m.page = (m.page + len(m.pages) - 1) % len(m.pages)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.table.SetRows(m.rows())
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	p := m.current()
	title := "HIGH SCORES - " + p.title
	switch {
	case p.achievements:
		title = fmt.Sprintf("ACHIEVEMENTS  (%d/%d)", len(m.unlocked), len(snake.Achievements()))
	case m.best > 0:
		title += fmt.Sprintf("  (best %d)", m.best)
	}
	b.WriteString(centerStyled(m.theme.Title.Render(title), title, m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m ScoreboardModel) box() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Muted.GetForeground()).
		Padding(0, 1)
}

// renderWideLayout puts the page list in a sidebar left of the table.
func (m ScoreboardModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString(m.theme.Text.Render("Boards"))
	sidebar.WriteString("\n")
	sidebar.WriteString(m.theme.Muted.Render(strings.Repeat("-", sidebarWidth-4)))
	sidebar.WriteString("\n")

	for i, p := range m.pages {
		if i == m.page {
			sidebar.WriteString(m.theme.Accent.Render("> " + p.title))
		} else {
			sidebar.WriteString(m.theme.Text.Render("  " + p.title))
		}
		sidebar.WriteString("\n")
	}

	left := m.box().Width(sidebarWidth).Render(sidebar.String())
	right := m.box().Render(m.renderTableContent())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// renderNarrowLayout shows the page tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabs := make([]string, len(m.pages))
	plain := make([]string, len(m.pages))
	for i, p := range m.pages {
		plain[i] = " " + p.title + " "
		if i == m.page {
			tabs[i] = m.theme.Accent.Reverse(true).Render(plain[i])
		} else {
			tabs[i] = m.theme.Muted.Render(plain[i])
		}
	}

	tabLine := strings.Join(tabs, " ")
	plainLine := strings.Join(plain, " ")
	if len(plainLine) > m.width-4 {
		plainLine = fmt.Sprintf("< %s >", m.current().title)
		tabLine = m.theme.Accent.Render(plainLine)
	}
	b.WriteString(centerStyled(tabLine, plainLine, m.width))
	b.WriteString("\n\n")
	b.WriteString(m.box().Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or the empty message.
func (m ScoreboardModel) renderTableContent() string {
	if !m.current().achievements && len(m.scores) == 0 {
		return m.theme.Muted.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nPlay a run to set a high score!")
	}
	return m.table.View()
}

// Mode returns the mode of the current leaderboard, or "" on the
// all-modes board and the achievement page.
func (m ScoreboardModel) Mode() snake.Mode {
	return snake.Mode(m.current().mode)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, theme Theme, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, theme, "", width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
