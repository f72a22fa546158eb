package tui

import (
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/game-center/internal/core"
	"github.com/vovakirdan/game-center/internal/manifest"
	"github.com/vovakirdan/game-center/internal/registry"
)

// backMsg asks the router to return to the landing view.
type backMsg struct{}

// viewIDs numbers game views so ticks from a torn-down view are recognizable.
var viewIDs atomic.Uint64

// chrome is the number of rows the game view spends around the board:
// the HUD line, the two border rows and the help footer.
const chrome = 4

// GameModel hosts one game: it owns the tick chain, maps input to intents and
// presents the canvas. Like the bubbles components it is embedded by value and
// updated through its own Update method.
type GameModel struct {
	game   registry.Game
	entry  manifest.Entry
	config core.RuntimeConfig
	seeds  core.Rand
	logger *log.Logger

	keys GameKeyMap
	help help.Model

	canvas *core.Canvas
	screen *core.Screen
	width  int
	height int

	view uint64 // Identifies this view's tick chain
	gen  uint64 // Bumped whenever the chain is cut
}

// NewGameModel creates a game view and resets the game. A zero seed is
// replaced by the clock; later restarts draw their seeds from it.
func NewGameModel(game registry.Game, entry manifest.Entry, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := GameModel{
		game:   game,
		entry:  entry,
		config: cfg,
		seeds:  core.NewRand(cfg.Seed),
		logger: logger.With("game", game.ID()),
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		view:   viewIDs.Add(1),
	}

	game.Reset(cfg)
	m.canvas = core.NewCanvas(game.Bounds())
	m.screen = core.NewScreen(m.boardSize())
	m.logger.Info("game started", "seed", cfg.Seed)
	return m
}

// Init starts the tick chain.
func (m GameModel) Init() tea.Cmd {
	return m.schedule()
}

// Update handles input, ticks and resizes.
func (m GameModel) Update(msg tea.Msg) (GameModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleAction(m.keys.ActionFor(msg))

	case tea.MouseMsg:
		return m.handleAction(MouseAction(msg))

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.screen.Resize(m.boardSize())
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}
	return m, nil
}

func (m GameModel) handleAction(a core.Action) (GameModel, tea.Cmd) {
	switch a {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.gen++
		return m, tea.Quit

	case core.ActionBack:
		m.gen++
		m.logger.Debug("leaving game view")
		return m, func() tea.Msg { return backMsg{} }

	case core.ActionRestart:
		m.config.Seed = m.seeds.Int63()
		m.game.Reset(m.config)
		m.gen++
		m.logger.Info("game restarted", "seed", m.config.Seed)
		return m, m.schedule()

	case core.ActionPause:
		before := m.game.State().Status
		m.game.Handle(a)
		after := m.game.State().Status
		if before == after {
			return m, nil
		}
		m.gen++
		m.logger.Debug("pause toggled", "status", after)
		if after == core.StatusRunning {
			return m, m.schedule()
		}
		return m, nil
	}

	m.game.Handle(a)
	return m, nil
}

func (m GameModel) handleTick(msg TickMsg) (GameModel, tea.Cmd) {
	if msg.View != m.view || msg.Gen != m.gen {
		return m, nil
	}

	res := m.game.Step()
	if res.Ended {
		m.gen++
		m.logger.Info("game over", "score", res.State.Score)
		return m, nil
	}
	if res.State.Status != core.StatusRunning {
		return m, nil
	}
	return m, m.schedule()
}

// schedule starts a tick for the current generation.
func (m GameModel) schedule() tea.Cmd {
	return tickCmd(m.game.TickInterval(), m.view, m.gen)
}

// boardSize returns the cell grid the board is presented at.
func (m GameModel) boardSize() (cols, rows int) {
	w, h := m.game.Bounds()
	maxCols, maxRows := m.width-2, m.height-chrome
	if m.width <= 0 || m.height <= 0 {
		maxCols, maxRows = w, h/2
	}
	return FitCells(w, h, max(maxCols, 1), max(maxRows, 1))
}

// View renders the HUD, the bordered board and the help footer.
func (m GameModel) View() string {
	m.game.Render(m.canvas)
	Rasterize(m.canvas, m.screen)

	accent := lipgloss.Color(m.entry.Accent)
	state := m.game.State()

	title := lipgloss.NewStyle().Bold(true).Foreground(accent).Render(m.entry.Title)
	score := lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Render(fmt.Sprintf("Score: %d", state.Score))
	hud := title + "   " + score
	switch state.Status {
	case core.StatusPaused:
		hud += "   " + lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("paused")
	case core.StatusOver:
		hud += "   " + lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("press r to restart")
	}

	board := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Render(RenderScreen(m.screen))

	footer := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))

	content := lipgloss.JoinVertical(lipgloss.Center, hud, board, footer)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// State returns the hosted game's state.
func (m GameModel) State() core.GameState {
	return m.game.State()
}

// Entry returns the manifest entry of the hosted game.
func (m GameModel) Entry() manifest.Entry {
	return m.entry
}
