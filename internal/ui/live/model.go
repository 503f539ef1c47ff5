package live

import (
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quizdeck/internal/quiz"
	"quizdeck/internal/ui/action"
)

const defaultWidth = 80

// Model renders a quiz session as a full-screen Bubble Tea UI.
type Model struct {
	session  *quiz.Session
	title    string
	keys     keyMap
	help     help.Model
	progress progress.Model
	table    table.Model
	width    int
	status   string
	jumping  bool
	jumpTo   string
	noColor  bool
}

// Options configures the live UI model.
type Options struct {
	Title     string
	NoColor   bool
	AltScreen bool
}

// NewModel constructs a live UI model for a session.
func NewModel(session *quiz.Session, opts Options) Model {
	t := table.New(
		table.WithColumns(columnsForWidth(defaultWidth)),
		table.WithRows([]table.Row{}),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(tableStyles(opts.NoColor))

	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultWidth/2))
	if opts.NoColor {
		bar = progress.New(progress.WithSolidFill(""), progress.WithFillCharacters('#', '.'), progress.WithWidth(defaultWidth/2))
	}

	m := Model{
		session:  session,
		title:    opts.Title,
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: bar,
		table:    t,
		width:    defaultWidth,
		noColor:  opts.NoColor,
	}
	m.sync()
	return m
}

// Init implements tea.Model; the quiz waits for input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update consumes key presses and window resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.help.Width = typed.Width
		m.progress.Width = max(typed.Width/2, 10)
		m.table.SetColumns(columnsForWidth(typed.Width))
		m.table.SetHeight(max(typed.Height-8, 3))
		m.sync()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.jumping {
		return m.handleJumpKey(msg), nil
	}

	var intent action.Action
	switch {
	case key.Matches(msg, m.keys.Select):
		letter, _ := action.LetterForKey(msg.String())
		intent = action.Action{Kind: action.Select, Letter: letter}
	case key.Matches(msg, m.keys.Check):
		intent = action.Action{Kind: action.Check}
	case key.Matches(msg, m.keys.Next):
		intent = action.Action{Kind: action.Next}
	case key.Matches(msg, m.keys.Previous):
		intent = action.Action{Kind: action.Previous}
	case key.Matches(msg, m.keys.Jump):
		m.jumping, m.jumpTo = true, ""
		m.status = "Jump to question: type its number, enter to go"
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		intent = action.Action{Kind: action.Submit}
	case key.Matches(msg, m.keys.Retake):
		intent = action.Action{Kind: action.Retake}
	case key.Matches(msg, m.keys.Results):
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
	m.status = action.Apply(m.session, intent)
	m.sync()
	return m, nil
}

// sync refreshes derived widgets after the session changes.
func (m *Model) sync() {
	completed := m.session.State() == quiz.StateCompleted
	m.keys.setCompleted(completed)
	if !completed {
		m.table.SetRows(nil)
		return
	}
	columns := columnsForWidth(m.width)
	m.table.SetRows(rowsForResults(m.session.Results(), columns[1].Width))
	m.table.SetCursor(0)
}

// View renders the live UI.
func (m Model) View() string {
	snap := m.session.Snapshot()
	header := renderHeader(m.title, snap, m.noColor)
	bar := m.progress.ViewAs(float64(snap.Answered) / float64(max(snap.Total, 1)))
	helpView := m.help.View(m.keys)

	if snap.Submitted {
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			renderScore(snap, m.noColor),
			"",
			m.table.View(),
			"",
			renderStatus(m.status, m.noColor),
			helpView,
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		renderIndicators(snap, m.noColor),
		bar,
		"",
		renderQuestion(m.session, m.noColor),
		"",
		renderStatus(m.status, m.noColor),
		helpView,
	)
}

// Status returns the last status message.
func (m Model) Status() string {
	return m.status
}

// handleJumpKey collects the digits of a jump target. The jump happens on
// enter, or as soon as no further digit could name an existing question.
func (m Model) handleJumpKey(msg tea.KeyMsg) Model {
	k := msg.String()
	switch {
	case msg.Type == tea.KeyEnter:
		if m.jumpTo == "" {
			return m.cancelJump()
		}
		return m.finishJump()
	case msg.Type == tea.KeyBackspace:
		if m.jumpTo == "" {
			return m.cancelJump()
		}
		m.jumpTo = m.jumpTo[:len(m.jumpTo)-1]
	case len(k) == 1 && k[0] >= '0' && k[0] <= '9':
		m.jumpTo += k
		if n, _ := strconv.Atoi(m.jumpTo); n*10 > m.session.Len() {
			return m.finishJump()
		}
	default:
		return m.cancelJump()
	}
	m.status = "Jump to question: " + m.jumpTo
	return m
}

func (m Model) finishJump() Model {
	n, _ := strconv.Atoi(m.jumpTo)
	m.jumping, m.jumpTo = false, ""
	m.status = action.Apply(m.session, action.Action{Kind: action.Jump, Target: n - 1})
	m.sync()
	return m
}

func (m Model) cancelJump() Model {
	m.jumping, m.jumpTo = false, ""
	m.status = "Jump cancelled"
	return m
}
