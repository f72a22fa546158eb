package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/game-center/internal/core"
	_ "github.com/vovakirdan/game-center/internal/games/dino"
	_ "github.com/vovakirdan/game-center/internal/games/snake"
	"github.com/vovakirdan/game-center/internal/manifest"
)

func loadManifest(t *testing.T) *manifest.Manifest {
	t.Helper()
	m, err := manifest.Load()
	if err != nil {
		t.Fatalf("manifest.Load() failed: %v", err)
	}
	return m
}

func TestResolveRoute(t *testing.T) {
	m := loadManifest(t)

	tests := []struct {
		target  string
		wantID  string
		wantOK  bool
		wantErr bool
	}{
		{"", "", false, false},
		{"/", "", false, false},
		{"/games/snake", "snake", true, false},
		{"/games/dino", "dino", true, false},
		{"dino", "dino", true, false},
		{"/games/tetris", "", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			entry, ok, err := ResolveRoute(m, tc.target)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if ok != tc.wantOK || entry.ID != tc.wantID {
				t.Errorf("ResolveRoute(%q) = %q, %v", tc.target, entry.ID, ok)
			}
		})
	}
}

func newApp(t *testing.T, route string) App {
	t.Helper()
	app, err := NewApp(Options{
		Manifest: loadManifest(t),
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7},
		Route:    route,
	})
	if err != nil {
		t.Fatalf("NewApp() failed: %v", err)
	}
	return app
}

// send feeds msg to the app and returns the updated app.
func send(t *testing.T, app App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	next, cmd := app.Update(msg)
	a, ok := next.(App)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return a, cmd
}

func TestAppStartsOnRoute(t *testing.T) {
	if app := newApp(t, ""); app.Route() != LandingRoute {
		t.Errorf("Route() = %q, expected landing", app.Route())
	}

	app := newApp(t, "/games/dino")
	if app.Route() != "/games/dino" {
		t.Errorf("Route() = %q", app.Route())
	}
	if app.Init() == nil {
		t.Error("a game route should start ticking")
	}

	if _, err := NewApp(Options{Manifest: loadManifest(t), Route: "/games/nope"}); err == nil {
		t.Error("unknown route should fail")
	}
}

func TestLandingOpensSelectedGame(t *testing.T) {
	app := newApp(t, "")

	app, _ = send(t, app, tea.KeyMsg{Type: tea.KeyDown})
	app, cmd := send(t, app, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should open a game")
	}
	msg := cmd()
	if open, ok := msg.(openGameMsg); !ok || open.entry.ID != "dino" {
		t.Fatalf("expected to open dino, got %#v", msg)
	}

	app, cmd = send(t, app, msg)
	if app.Route() != "/games/dino" {
		t.Errorf("Route() = %q", app.Route())
	}
	if cmd == nil {
		t.Error("opening a game should start its tick chain")
	}
}

func TestBackTearsDownGameView(t *testing.T) {
	app := newApp(t, "/games/snake")
	tick := app.game.currentTick()

	app, _ = send(t, app, backMsg{})
	if app.Route() != LandingRoute {
		t.Fatalf("Route() = %q, expected landing", app.Route())
	}

	app, cmd := send(t, app, tick)
	if cmd != nil {
		t.Error("a tick from a torn-down view must be dropped")
	}

	// Reopening creates a new view; the old chain stays dead.
	app, _ = send(t, app, openGameMsg{entry: app.landing.entries[0]})
	if _, cmd = send(t, app, tick); cmd != nil {
		t.Error("a tick from a previous view must not drive the new one")
	}
}

func TestAppForwardsTicks(t *testing.T) {
	app := newApp(t, "/games/snake")

	app, cmd := send(t, app, app.game.currentTick())
	if cmd == nil {
		t.Error("a current tick should reschedule")
	}
	if app.game.State().GameOver() {
		t.Error("one tick should not end a fresh snake game")
	}
}

func TestQuitFromLanding(t *testing.T) {
	app := newApp(t, "")

	_, cmd := send(t, app, runes("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}
