package tui

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/game-center/internal/core"
	"github.com/vovakirdan/game-center/internal/manifest"
	"github.com/vovakirdan/game-center/internal/registry"
)

// LandingRoute is the path of the landing view.
const LandingRoute = "/"

// Options configures the game center program.
type Options struct {
	Manifest *manifest.Manifest
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Route    string // Initial route; empty means the landing view
}

// ResolveRoute maps a route ("/games/snake") or bare id ("snake") to a
// manifest entry. The landing route resolves to ok == false with no error.
func ResolveRoute(m *manifest.Manifest, target string) (entry manifest.Entry, ok bool, err error) {
	if target == "" || target == LandingRoute {
		return manifest.Entry{}, false, nil
	}
	entry, found := m.Lookup(target)
	if !found {
		return manifest.Entry{}, false, fmt.Errorf("tui: unknown route %q", target)
	}
	if !registry.Exists(entry.ID) {
		return manifest.Entry{}, false, fmt.Errorf("tui: route %q has no registered game %q", target, entry.ID)
	}
	return entry, true, nil
}

// App routes between the landing view and one game view at a time. Leaving a
// game view drops it, which cuts its tick chain.
type App struct {
	opts    Options
	route   string
	landing LandingModel
	game    GameModel
	playing bool
}

// NewApp builds the program model and opens the initial route.
func NewApp(opts Options) (App, error) {
	if opts.Manifest == nil {
		return App{}, fmt.Errorf("tui: manifest is required")
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	a := App{
		opts:    opts,
		route:   LandingRoute,
		landing: NewLandingModel(opts.Manifest, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}

	entry, ok, err := ResolveRoute(opts.Manifest, opts.Route)
	if err != nil {
		return App{}, err
	}
	if ok {
		if err := a.open(entry); err != nil {
			return App{}, err
		}
	}
	return a, nil
}

// open replaces the current view with a fresh game view.
func (a *App) open(entry manifest.Entry) error {
	game, err := registry.Create(entry.ID)
	if err != nil {
		return err
	}
	a.game = NewGameModel(game, entry, a.opts.Runtime, a.opts.Logger)
	a.playing = true
	a.route = entry.Route
	a.opts.Logger.Debug("route changed", "route", a.route)
	return nil
}

// Init starts the initial view.
func (a App) Init() tea.Cmd {
	if a.playing {
		return a.game.Init()
	}
	return a.landing.Init()
}

// Update dispatches navigation messages and forwards the rest to the active
// view.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case openGameMsg:
		if err := a.open(msg.entry); err != nil {
			a.opts.Logger.Error("could not open game", "route", msg.entry.Route, "error", err)
			return a, nil
		}
		return a, a.game.Init()

	case backMsg:
		a.playing = false
		a.game = GameModel{}
		a.route = LandingRoute
		a.opts.Logger.Debug("route changed", "route", a.route)
		return a, nil

	case TickMsg:
		if !a.playing {
			return a, nil
		}
		a.game, cmd = a.game.Update(msg)
		return a, cmd

	case tea.WindowSizeMsg:
		a.opts.Runtime.ScreenW, a.opts.Runtime.ScreenH = msg.Width, msg.Height
		a.landing, _ = a.landing.Update(msg)
		if a.playing {
			a.game, cmd = a.game.Update(msg)
		}
		return a, cmd
	}

	if a.playing {
		a.game, cmd = a.game.Update(msg)
		return a, cmd
	}
	a.landing, cmd = a.landing.Update(msg)
	return a, cmd
}

// View renders the active view.
func (a App) View() string {
	if a.playing {
		return a.game.View()
	}
	return a.landing.View()
}

// Route returns the path of the active view.
func (a App) Route() string {
	return a.route
}

// Run starts the program on the alternate screen with mouse support.
func Run(opts Options) error {
	app, err := NewApp(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
