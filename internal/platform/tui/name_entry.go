package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tggbb/SnakeNeo/internal/storage"
)

// NameEntry prompts for a leaderboard name after a run.
type NameEntry struct {
	input     textinput.Model
	score     int
	submitted bool
	cancelled bool
}

// NewNameEntry creates a focused prompt prefilled with a default name.
func NewNameEntry(score int, defaultName string) NameEntry {
	ti := textinput.New()
	ti.Placeholder = storage.DefaultName
	ti.CharLimit = storage.MaxNameLen
	ti.Width = storage.MaxNameLen + 1
	ti.Prompt = "> "
	ti.SetValue(defaultName)
	ti.Focus()

	return NameEntry{input: ti, score: score}
}

// Update handles key input. Enter submits and Esc cancels.
func (n NameEntry) Update(msg tea.Msg) (NameEntry, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			n.submitted = true
			n.input.Blur()
			return n, nil
		case "esc":
			n.cancelled = true
			n.input.Blur()
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return n, cmd
}

// Done reports whether the prompt was submitted or cancelled.
func (n NameEntry) Done() bool {
	return n.submitted || n.cancelled
}

// Submitted reports whether the player confirmed a name.
func (n NameEntry) Submitted() bool {
	return n.submitted
}

// Name returns the normalized entered name.
func (n NameEntry) Name() string {
	return storage.NormalizeName(n.input.Value())
}

// View renders the prompt.
func (n NameEntry) View(theme Theme) string {
	return fmt.Sprintf("%s\n%s\n%s",
		theme.Accent.Render(fmt.Sprintf("Score %d! Enter your name for the leaderboard:", n.score)),
		n.input.View(),
		theme.Muted.Render("enter: save  esc: skip"),
	)
}
