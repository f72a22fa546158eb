package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/game-center/internal/core"
	"github.com/vovakirdan/game-center/internal/manifest"
	"github.com/vovakirdan/game-center/internal/registry"
)

// openGameMsg asks the router to open a game view.
type openGameMsg struct {
	entry manifest.Entry
}

// LandingModel is the landing view: the manifest's games in a table.
type LandingModel struct {
	name    string
	entries []manifest.Entry
	table   table.Model
	help    help.Model
	keys    LandingKeyMap
	width   int
	height  int
}

// NewLandingModel lists the manifest games that have a registered engine.
func NewLandingModel(m *manifest.Manifest, width, height int) LandingModel {
	entries := make([]manifest.Entry, 0, len(m.Games))
	for _, e := range m.Games {
		if registry.Exists(e.ID) {
			entries = append(entries, e)
		}
	}

	l := LandingModel{
		name:    m.Name,
		entries: entries,
		help:    help.New(),
		keys:    DefaultLandingKeyMap(),
		width:   width,
		height:  height,
	}
	l.table = l.createTable()
	return l
}

// createTable builds the game table with one row per entry.
func (l *LandingModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Game", Width: 16},
		{Title: "Route", Width: 16},
		{Title: "Tick", Width: 8},
	}

	rows := make([]table.Row, 0, len(l.entries))
	for _, e := range l.entries {
		rows = append(rows, table.Row{e.Title, e.Route, tickLabel(e.ID)})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(len(rows), 1)+1),
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

// tickLabel shows a game's tick period from its resolved config.
func tickLabel(id string) string {
	g, err := registry.Create(id)
	if err != nil {
		return "-"
	}
	g.Reset(core.DefaultConfig())
	if d := g.TickInterval(); d > 0 {
		return d.String()
	}
	return "-"
}

// Init initializes the landing view.
func (l LandingModel) Init() tea.Cmd {
	return nil
}

// Update handles navigation and selection.
func (l LandingModel) Update(msg tea.Msg) (LandingModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, l.keys.Quit):
			return l, tea.Quit

		case key.Matches(msg, l.keys.Select):
			if e, ok := l.Selected(); ok {
				return l, func() tea.Msg { return openGameMsg{entry: e} }
			}
			return l, nil

		case key.Matches(msg, l.keys.Up):
			l.table.MoveUp(1)
			return l, nil

		case key.Matches(msg, l.keys.Down):
			l.table.MoveDown(1)
			return l, nil
		}

	case tea.WindowSizeMsg:
		l.width, l.height = msg.Width, msg.Height
		l.help.Width = msg.Width
		return l, nil
	}

	l.table, cmd = l.table.Update(msg)
	return l, cmd
}

// Selected returns the entry under the cursor.
func (l LandingModel) Selected() (manifest.Entry, bool) {
	i := l.table.Cursor()
	if i < 0 || i >= len(l.entries) {
		return manifest.Entry{}, false
	}
	return l.entries[i], true
}

// View renders the landing view.
func (l LandingModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(l.name))
	b.WriteString("\n")

	if len(l.entries) == 0 {
		b.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).Render("No games available."))
	} else {
		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(l.accent()).
			Padding(0, 1)
		b.WriteString(tableStyle.Render(l.table.View()))
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(l.help.View(l.keys)))

	content := b.String()
	if l.width <= 0 || l.height <= 0 {
		return content
	}
	return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, content)
}

// accent is the selected game's color, used for the table border.
func (l LandingModel) accent() lipgloss.Color {
	if e, ok := l.Selected(); ok {
		return lipgloss.Color(e.Accent)
	}
	return lipgloss.Color("240")
}
