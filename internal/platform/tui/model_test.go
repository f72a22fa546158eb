package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/game-center/internal/core"
	"github.com/vovakirdan/game-center/internal/manifest"
)

// fakeGame ends after endAt steps and records every intent it receives.
type fakeGame struct {
	steps   int
	endAt   int
	status  core.Status
	resets  int
	seeds   []int64
	handled []core.Action
}

func (f *fakeGame) ID() string { return "fake" }
func (f *fakeGame) Title() string { return "Fake" }

func (f *fakeGame) Reset(cfg core.RuntimeConfig) {
	f.steps = 0
	f.status = core.StatusRunning
	f.resets++
	f.seeds = append(f.seeds, cfg.Seed)
}

func (f *fakeGame) Handle(a core.Action) {
	f.handled = append(f.handled, a)
	if a == core.ActionPause {
		f.status = f.status.TogglePause()
	}
}

func (f *fakeGame) Step() core.StepResult {
	if f.status != core.StatusRunning {
		return core.StepResult{State: f.State()}
	}
	f.steps++
	if f.steps == f.endAt {
		f.status = core.StatusOver
		return core.StepResult{State: f.State(), Ended: true}
	}
	return core.StepResult{State: f.State()}
}

func (f *fakeGame) Render(dst *core.Canvas) {
	if dst == nil {
		return
	}
	dst.Clear()
	dst.Fill(core.ColorBlack)
	if f.status == core.StatusOver {
		dst.DrawLabel(10, 10, "Game Over", core.ColorWhite)
	}
}

func (f *fakeGame) State() core.GameState {
	return core.GameState{Score: f.steps, Status: f.status}
}

func (f *fakeGame) TickInterval() time.Duration { return 10 * time.Millisecond }
func (f *fakeGame) Bounds() (width, height int) { return 20, 20 }

var fakeEntry = manifest.Entry{ID: "fake", Title: "Fake", Route: "/games/fake", Accent: "#2563eb"}

func newFakeModel(endAt int) (GameModel, *fakeGame) {
	g := &fakeGame{endAt: endAt}
	m := NewGameModel(g, fakeEntry, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42}, nil)
	return m, g
}

func (m GameModel) currentTick() TickMsg {
	return TickMsg{View: m.view, Gen: m.gen}
}

func TestNewGameModelResets(t *testing.T) {
	m, g := newFakeModel(100)

	if g.resets != 1 || g.seeds[0] != 42 {
		t.Errorf("expected one reset with seed 42, got %d %v", g.resets, g.seeds)
	}
	if m.Init() == nil {
		t.Error("Init should start the tick chain")
	}
}

func TestTickAdvancesAndReschedules(t *testing.T) {
	m, g := newFakeModel(100)

	m, cmd := m.Update(m.currentTick())

	if g.steps != 1 {
		t.Errorf("steps = %d, expected 1", g.steps)
	}
	if cmd == nil {
		t.Error("a running game should schedule the next tick")
	}
}

func TestStaleTicksAreDropped(t *testing.T) {
	m, g := newFakeModel(100)

	tests := []struct {
		name string
		msg  TickMsg
	}{
		{"old generation", TickMsg{View: m.view, Gen: m.gen + 1}},
		{"other view", TickMsg{View: m.view + 1000, Gen: m.gen}},
	}
	for _, tc := range tests {
		var cmd tea.Cmd
		m, cmd = m.Update(tc.msg)
		if cmd != nil || g.steps != 0 {
			t.Errorf("%s: tick should be ignored (steps=%d)", tc.name, g.steps)
		}
	}
}

func TestPauseCutsChain(t *testing.T) {
	m, g := newFakeModel(100)
	stale := m.currentTick()

	m, cmd := m.Update(runes("p"))
	if cmd != nil {
		t.Error("pausing should not schedule a tick")
	}
	if !m.State().Paused() {
		t.Fatal("expected paused")
	}

	m, cmd = m.Update(stale)
	if cmd != nil || g.steps != 0 {
		t.Error("the tick scheduled before pausing must not step the game")
	}

	m, cmd = m.Update(runes("p"))
	if cmd == nil {
		t.Error("resuming should restart the chain")
	}
	if m.State().Paused() {
		t.Error("expected running")
	}

	m, _ = m.Update(m.currentTick())
	if g.steps != 1 {
		t.Errorf("steps = %d, expected 1 after resume", g.steps)
	}
}

func TestGameOverStopsChain(t *testing.T) {
	m, g := newFakeModel(2)

	m, _ = m.Update(m.currentTick())
	last := m.currentTick()
	m, cmd := m.Update(last)

	if !m.State().GameOver() {
		t.Fatal("expected game over on the second tick")
	}
	if cmd != nil {
		t.Error("no tick should be scheduled after game over")
	}

	m, cmd = m.Update(last)
	if cmd != nil || g.steps != 2 {
		t.Error("a duplicate tick after game over must be ignored")
	}

	if !strings.Contains(m.View(), "Game Over") {
		t.Error("final frame should show the overlay")
	}
}

func TestRestart(t *testing.T) {
	m, g := newFakeModel(1)
	m, _ = m.Update(m.currentTick())
	if !m.State().GameOver() {
		t.Fatal("expected game over")
	}
	oldGen := m.gen

	m, cmd := m.Update(runes("r"))

	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
	if g.seeds[1] == 42 {
		t.Error("restart should draw a fresh seed")
	}
	if m.gen == oldGen {
		t.Error("restart should start a new generation")
	}
	if cmd == nil || m.State().Status != core.StatusRunning {
		t.Error("restart should resume ticking")
	}
}

func TestRestartSeedsAreDeterministic(t *testing.T) {
	m1, g1 := newFakeModel(100)
	m2, g2 := newFakeModel(100)

	m1.Update(runes("r"))
	m2.Update(runes("r"))

	if g1.seeds[1] != g2.seeds[1] {
		t.Errorf("same session seed should give the same restart seed: %d vs %d", g1.seeds[1], g2.seeds[1])
	}
}

func TestBackAndQuit(t *testing.T) {
	m, _ := newFakeModel(100)

	_, cmd := m.Update(runes("b"))
	if cmd == nil {
		t.Fatal("back should emit a command")
	}
	if _, ok := cmd().(backMsg); !ok {
		t.Error("back should ask the router to leave")
	}

	_, cmd = m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit should emit a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should end the program")
	}
}

func TestIntentsReachGame(t *testing.T) {
	m, g := newFakeModel(100)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(runes(" "))
	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = m.Update(runes("z"))

	want := []core.Action{core.ActionLeft, core.ActionJump, core.ActionJump}
	if len(g.handled) != len(want) {
		t.Fatalf("handled = %v, expected %v", g.handled, want)
	}
	for i := range want {
		if g.handled[i] != want[i] {
			t.Errorf("handled[%d] = %v, expected %v", i, g.handled[i], want[i])
		}
	}
}

func TestResizeRefitsBoard(t *testing.T) {
	m, _ := newFakeModel(100)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 20 || m.screen.Height() != 10 {
		t.Errorf("board = %dx%d, expected 20x10", m.screen.Width(), m.screen.Height())
	}

	m, _ = m.Update(tea.WindowSizeMsg{Width: 12, Height: 10})
	if m.screen.Width() != 10 || m.screen.Height() != 5 {
		t.Errorf("board = %dx%d, expected 10x5", m.screen.Width(), m.screen.Height())
	}
}

func TestViewShowsHUD(t *testing.T) {
	m, _ := newFakeModel(100)
	m, _ = m.Update(m.currentTick())

	view := m.View()
	if !strings.Contains(view, "Fake") || !strings.Contains(view, "Score: 1") {
		t.Errorf("HUD missing from view:\n%s", view)
	}
}
