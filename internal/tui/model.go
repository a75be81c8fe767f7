package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jimezsa/eatcli/internal/api"
	"github.com/jimezsa/eatcli/internal/notify"
	"github.com/jimezsa/eatcli/internal/search"
)

// Searcher receives the field value after every keystroke.
type Searcher interface {
	Input(raw string)
}

// Activator runs the action bound to a row and reports the outcome.
type Activator func(ctx context.Context, row Row) (notify.Level, string)

const pruneInterval = 500 * time.Millisecond

type Model struct {
	ctx      context.Context
	source   api.Source
	searcher Searcher
	activate Activator
	board    *notify.Board
	styles   *Styles

	input   textinput.Model
	spinner spinner.Model
	value   string
	epoch   uint64

	rows        []Row
	cursor      int
	loading     bool
	placeholder bool
}

func NewModel(ctx context.Context, source api.Source, searcher Searcher, activate Activator, board *notify.Board) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if board == nil {
		board = notify.NewBoard(nil, notify.FlashLifetime)
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = placeholderFor(source.Name)
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &Model{
		ctx:      ctx,
		source:   source,
		searcher: searcher,
		activate: activate,
		board:    board,
		styles:   NewStyles(),
		input:    input,
		spinner:  spin,
	}
}

func placeholderFor(name string) string {
	if name == api.SourceRecipes {
		return "Search recipes..."
	}
	return "Search by email..."
}

func pruneTick() tea.Cmd {
	return tea.Tick(pruneInterval, func(t time.Time) tea.Msg {
		return pruneMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, pruneTick())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case clearMsg:
		if !m.stale(msg.epoch) {
			m.reset()
		}

	case loadingMsg:
		if m.stale(msg.epoch) {
			return m, nil
		}
		m.loading = true
		return m, m.spinner.Tick

	case resultsMsg:
		if m.stale(msg.epoch) {
			return m, nil
		}
		m.loading = false
		m.placeholder = false
		m.rows = msg.rows
		m.cursor = 0

	case emptyMsg:
		if m.stale(msg.epoch) {
			return m, nil
		}
		m.loading = false
		m.placeholder = true
		m.rows = nil
		m.cursor = 0

	case failedMsg:
		if m.stale(msg.epoch) {
			return m, nil
		}
		// Rows already on screen stay.
		m.loading = false
		m.board.Push(notify.Danger, m.source.FailureText)

	case noticeMsg:
		m.board.Push(msg.level, msg.message)

	case pruneMsg:
		m.board.Prune(time.Time(msg))
		return m, pruneTick()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.board.DismissNewest()
		return m, nil
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		return m, m.activateSelected()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if value := m.input.Value(); value != m.value {
		m.value = value
		if search.Normalize(value) == "" {
			// The controller clears its renderer on the same input, which
			// moves the renderer to the same epoch.
			m.epoch++
			m.reset()
		}
		if m.searcher != nil {
			m.searcher.Input(value)
		}
	}
	return m, cmd
}

// stale reports whether a render message was queued before the field was
// last cleared.
func (m *Model) stale(epoch uint64) bool {
	return epoch < m.epoch
}

func (m *Model) reset() {
	m.rows = nil
	m.cursor = 0
	m.loading = false
	m.placeholder = false
}

func (m *Model) activateSelected() tea.Cmd {
	if m.activate == nil || m.cursor >= len(m.rows) {
		return nil
	}
	row := m.rows[m.cursor]
	ctx := m.ctx
	activate := m.activate
	return func() tea.Msg {
		level, message := activate(ctx, row)
		return noticeMsg{level: level, message: message}
	}
}

func (m *Model) Rows() []Row {
	return append([]Row(nil), m.rows...)
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(fmt.Sprintf("Search %s", m.source.Name)))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.styles.Loading.Render(m.spinner.View() + " Searching..."))
		b.WriteString("\n")
	}

	switch {
	case m.placeholder:
		b.WriteString(m.styles.Placeholder.Render(m.source.Placeholder))
		b.WriteString("\n")
	default:
		for i, row := range m.rows {
			line := row.Text + "  " + m.styles.Action.Render("["+row.Action.Label+"]")
			if i == m.cursor {
				b.WriteString(m.styles.Selected.Render("> " + line))
			} else {
				b.WriteString(m.styles.Row.Render("  " + line))
			}
			b.WriteString("\n")
		}
	}

	for _, n := range m.board.Active() {
		b.WriteString("\n")
		b.WriteString(m.styles.Notice(n.Level).Render(n.Message))
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("up/down move • enter select • esc dismiss • ctrl+c quit"))
	return b.String()
}
