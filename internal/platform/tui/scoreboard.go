package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shapestorm/internal/storage"
)

const maxLedgerRows = 100

// LedgerKeyMap defines the key bindings for the match ledger.
type LedgerKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k LedgerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LedgerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultLedgerKeyMap returns default key bindings.
func DefaultLedgerKeyMap() LedgerKeyMap {
	return LedgerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LedgerModel is the Bubble Tea model for the match ledger: the win
// tally up top, the recent duels below.
type LedgerModel struct {
	store      *storage.Store
	playerWins int
	agentWins  int
	matches    []storage.MatchRecord
	table      table.Model
	help       help.Model
	keys       LedgerKeyMap
	width      int
	height     int
	quitting   bool
}

// NewLedgerModel creates a ledger model and loads its data.
func NewLedgerModel(store *storage.Store, width, height int) LedgerModel {
	h := help.New()
	h.ShowAll = false

	m := LedgerModel{
		store:  store,
		keys:   DefaultLedgerKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.load()
	return m
}

func (m *LedgerModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 14},
		{Title: "Mode", Width: 20},
		{Title: "Winner", Width: 8},
		{Title: "You", Width: 6},
		{Title: "Agent", Width: 6},
		{Title: "Level", Width: 6},
		{Title: "Time", Width: 7},
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads counters and match history. Missing storage leaves the
// ledger empty rather than failing.
func (m *LedgerModel) load() {
	if m.store == nil {
		return
	}

	m.playerWins, _ = m.store.Counter(storage.CounterPlayerWins) //nolint:errcheck // display-only
	m.agentWins, _ = m.store.Counter(storage.CounterAgentWins)   //nolint:errcheck // display-only

	matches, err := m.store.RecentMatches(maxLedgerRows)
	if err != nil {
		matches = nil
	}
	m.matches = matches

	rows := make([]table.Row, len(matches))
	for i, rec := range matches {
		rows[i] = table.Row{
			rec.CreatedAt.Format("Jan 02 15:04"),
			rec.GameID,
			rec.Winner,
			fmt.Sprintf("%d", rec.PlayerScore),
			fmt.Sprintf("%d", rec.AgentScore),
			fmt.Sprintf("%d", rec.LevelReached),
			fmt.Sprintf("%ds", rec.DurationSecs),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the ledger model.
func (m LedgerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the ledger.
func (m LedgerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the ledger.
func (m LedgerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("MATCH LEDGER", m.width)))
	b.WriteString("\n\n")

	tally := fmt.Sprintf("you %d : %d agent", m.playerWins, m.agentWins)
	tallyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	b.WriteString(centerText(tallyStyle.Render(tally), m.width))
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(emptyStyle.Render("No duels recorded yet.\nPlay a round to fill the ledger!"))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
		b.WriteString(centerText(tableStyle.Render(m.table.View()), m.width))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// RunLedger runs the match-ledger screen.
func RunLedger(store *storage.Store, width, height int) error {
	p := tea.NewProgram(
		NewLedgerModel(store, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}

// centerText pads a single-line string to center it in the given width.
func centerText(s string, width int) string {
	pad := (width - lipgloss.Width(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
