// Package snake implements Snake on a wrapping grid: the head leaving one edge
// re-enters on the opposite edge, and only running into the body ends a run.
package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/game-center/internal/config"
	"github.com/vovakirdan/game-center/internal/core"
	"github.com/vovakirdan/game-center/internal/registry"
)

// Game implements the Snake game.
type Game struct {
	cfg    config.SnakeConfig
	rng    core.Rand
	tick   uint64
	status core.Status

	body      []core.Point // Head at index 0
	heading   core.Point   // Direction of the last completed move
	direction core.Point   // Latest accepted turn, applied on the next tick
	food      core.Point
	eaten     int
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// New creates a new Snake game instance. Call Reset before use.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake Game"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		config.ApplySnakePreset(&cfg, difficultyPreset)
	}
	g.reset(cfg, core.NewRand(runtime.Seed))
}

// reset puts every entity back at its start value.
func (g *Game) reset(cfg config.SnakeConfig, rng core.Rand) {
	g.cfg = cfg
	g.rng = rng
	g.tick = 0
	g.status = core.StatusRunning
	g.eaten = 0

	g.body = []core.Point{{X: cfg.Start.X, Y: cfg.Start.Y}}
	g.direction = directionVector(cfg.Start.Direction, cfg.Board.Scale)
	g.heading = g.direction

	g.spawnFood()
}

// directionVector maps a direction name to a one-cell step.
func directionVector(name string, scale int) core.Point {
	switch name {
	case "up":
		return core.Point{X: 0, Y: -scale}
	case "down":
		return core.Point{X: 0, Y: scale}
	case "left":
		return core.Point{X: -scale, Y: 0}
	default:
		return core.Point{X: scale, Y: 0}
	}
}

// Handle applies an intent immediately.
func (g *Game) Handle(a core.Action) {
	scale := g.cfg.Board.Scale
	switch a {
	case core.ActionPause:
		g.status = g.status.TogglePause()
	case core.ActionUp:
		g.Turn(core.Point{X: 0, Y: -scale})
	case core.ActionDown:
		g.Turn(core.Point{X: 0, Y: scale})
	case core.ActionLeft:
		g.Turn(core.Point{X: -scale, Y: 0})
	case core.ActionRight:
		g.Turn(core.Point{X: scale, Y: 0})
	}
}

// Turn requests a new direction. Turns are checked against the heading of the
// last move, not the pending direction, so no sequence of presses between two
// ticks can fold the snake back onto itself. A queued turn may be replaced by
// any other legal one, including the opposite turn, and pressing the current
// heading cancels it. Turns are ignored unless running.
func (g *Game) Turn(d core.Point) bool {
	if g.status != core.StatusRunning {
		return false
	}
	perpendicular := (d.X != 0 && d.Y == 0 && g.heading.X == 0) ||
		(d.Y != 0 && d.X == 0 && g.heading.Y == 0)
	if !perpendicular && d != g.heading {
		return false
	}
	g.direction = d
	return true
}

// Step advances the game by one tick.
func (g *Game) Step() core.StepResult {
	if g.status != core.StatusRunning || len(g.body) == 0 {
		return core.StepResult{State: g.State()}
	}
	g.tick++
	g.heading = g.direction

	newHead := g.wrap(g.body[0].Add(g.direction))

	// The tail still occupies its cell at this point, so it counts.
	for _, seg := range g.body {
		if seg == newHead {
			g.status = core.StatusOver
			return core.StepResult{State: g.State(), Ended: true}
		}
	}

	g.body = append([]core.Point{newHead}, g.body...)
	if newHead == g.food {
		g.eaten++
		g.spawnFood()
	} else {
		g.body = g.body[:len(g.body)-1]
	}

	return core.StepResult{State: g.State()}
}

// wrap folds a cell that left the board back in from the opposite edge.
func (g *Game) wrap(p core.Point) core.Point {
	b := g.cfg.Board
	switch {
	case p.X < 0:
		p.X = b.Width - b.Scale
	case p.X >= b.Width:
		p.X = 0
	}
	switch {
	case p.Y < 0:
		p.Y = b.Height - b.Scale
	case p.Y >= b.Height:
		p.Y = 0
	}
	return p
}

// spawnFood picks a uniform random cell. It may land on the body.
func (g *Game) spawnFood() {
	b := g.cfg.Board
	g.food = core.Point{
		X: g.rng.IntRange(0, b.Width/b.Scale-1) * b.Scale,
		Y: g.rng.IntRange(0, b.Height/b.Scale-1) * b.Scale,
	}
}

// Render draws the game to the canvas.
func (g *Game) Render(dst *core.Canvas) {
	if dst == nil {
		return
	}
	b := g.cfg.Board

	dst.Clear()
	dst.Fill(core.ColorBlack)

	for _, seg := range g.body {
		dst.FillRect(core.NewRect(seg.X, seg.Y, b.Scale, b.Scale), core.ColorLime)
	}
	dst.FillRect(core.NewRect(g.food.X, g.food.Y, b.Scale, b.Scale), core.ColorRed)

	switch g.status {
	case core.StatusOver:
		dst.DrawLabel(b.Width/2, b.Height/2, "Game Over", core.ColorWhite)
	case core.StatusPaused:
		dst.DrawLabel(b.Width/2, b.Height/2, "Paused", core.ColorWhite)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.eaten,
		Status: g.status,
	}
}

// TickInterval returns the configured tick period.
func (g *Game) TickInterval() time.Duration {
	return g.cfg.TickInterval()
}

// Bounds returns the board size in pixels.
func (g *Game) Bounds() (width, height int) {
	return g.cfg.Board.Width, g.cfg.Board.Height
}

// Direction returns the direction the next tick will move in.
func (g *Game) Direction() core.Point {
	return g.direction
}

// directionName is the inverse of directionVector.
func directionName(d core.Point) string {
	switch {
	case d.Y < 0:
		return "up"
	case d.Y > 0:
		return "down"
	case d.X < 0:
		return "left"
	case d.X > 0:
		return "right"
	default:
		return "none"
	}
}

// DebugState returns a one-line description of the game state.
func (g *Game) DebugState() string {
	head := core.Point{}
	if len(g.body) > 0 {
		head = g.body[0]
	}
	return fmt.Sprintf("tick=%d status=%s len=%d head=(%d,%d) dir=%s food=(%d,%d)",
		g.tick, g.status, len(g.body), head.X, head.Y, directionName(g.direction), g.food.X, g.food.Y)
}
