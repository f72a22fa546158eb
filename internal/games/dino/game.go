// Package dino implements Dino Run, an endless runner: the player stays in
// place while obstacles scroll in from the right and must be jumped over.
package dino

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/game-center/internal/config"
	"github.com/vovakirdan/game-center/internal/core"
	"github.com/vovakirdan/game-center/internal/registry"
)

// Player is the runner's body. X never changes during a run.
type Player struct {
	X        int
	Y        float64 // Top edge, canvas pixels
	VY       float64 // Positive is downward
	Grounded bool
	Rotation float64 // Cosmetic spin while airborne, radians
}

// Game implements the Dino Run game logic.
type Game struct {
	cfg    config.DinoConfig
	rng    core.Rand
	tick   uint64
	status core.Status

	player    Player
	obstacles *ObstacleField
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

// New creates a new Dino Run game instance. Call Reset before use.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("dino", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "dino"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Dino Run"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadDino(configPath)
	if err != nil {
		cfg = config.DefaultDinoConfig()
	}
	if difficultyPreset != "" {
		config.ApplyDinoPreset(&cfg, difficultyPreset)
	}
	g.reset(cfg, core.NewRand(runtime.Seed))
}

func (g *Game) reset(cfg config.DinoConfig, rng core.Rand) {
	g.cfg = cfg
	g.rng = rng
	g.tick = 0
	g.status = core.StatusRunning

	g.player = Player{
		X:        cfg.Player.X,
		Y:        cfg.GroundY(),
		Grounded: true,
	}
	g.obstacles = NewObstacleField(cfg, rng)
}

// Handle applies an intent immediately.
func (g *Game) Handle(a core.Action) {
	switch a {
	case core.ActionPause:
		g.status = g.status.TogglePause()
	case core.ActionJump, core.ActionUp:
		g.Jump()
	}
}

// Jump launches the player. There is no double jump: it only works from the
// ground, and only while running.
func (g *Game) Jump() bool {
	if g.status != core.StatusRunning || !g.player.Grounded {
		return false
	}
	g.player.VY = -g.cfg.Physics.JumpForce
	g.player.Grounded = false
	return true
}

// Step advances the game by one tick.
func (g *Game) Step() core.StepResult {
	if g.status != core.StatusRunning || g.obstacles == nil {
		return core.StepResult{State: g.State()}
	}
	g.tick++

	g.updatePlayer()
	g.obstacles.Update(g.cfg.Physics.Speed)

	if g.obstacles.Collides(g.playerBox()) {
		g.status = core.StatusOver
		return core.StepResult{State: g.State(), Ended: true}
	}
	return core.StepResult{State: g.State()}
}

// updatePlayer integrates position, then velocity, and lands the player once
// it reaches the ground.
func (g *Game) updatePlayer() {
	p := &g.player
	if p.Grounded {
		return
	}
	p.Y += p.VY
	p.VY += g.cfg.Physics.Gravity
	p.Rotation += g.cfg.Physics.RotationStep

	if ground := g.cfg.GroundY(); p.Y >= ground {
		p.Y = ground
		p.VY = 0
		p.Grounded = true
		p.Rotation = 0
	}
}

func (g *Game) playerBox() core.RectF {
	return core.RectF{
		X: float64(g.player.X),
		Y: g.player.Y,
		W: float64(g.cfg.Player.Width),
		H: float64(g.cfg.Player.Height),
	}
}

// stickFigure holds the limbs of the player sprite relative to its center,
// before rotation.
var stickFigure = [][2]core.Vec{
	{{X: 0, Y: -2}, {X: 0, Y: 2}},
	{{X: 0, Y: 0}, {X: -6, Y: 0}},
	{{X: 0, Y: 0}, {X: 6, Y: 0}},
	{{X: 0, Y: 2}, {X: -4, Y: 10}},
	{{X: 0, Y: 2}, {X: 4, Y: 10}},
}

// Render draws the game to the canvas.
func (g *Game) Render(dst *core.Canvas) {
	if dst == nil || g.obstacles == nil {
		return
	}

	dst.Clear()
	dst.Fill(core.ColorBlack)

	g.drawPlayer(dst)
	for _, ob := range g.obstacles.Obstacles() {
		drawObstacle(dst, ob)
	}

	w, h := g.Bounds()
	switch g.status {
	case core.StatusOver:
		dst.DrawLabel(w/2, h/2, "Game Over", core.ColorWhite)
	case core.StatusPaused:
		dst.DrawLabel(w/2, h/2, "Paused", core.ColorWhite)
	}
}

// drawPlayer draws the stick figure rotated around the center of its box.
func (g *Game) drawPlayer(dst *core.Canvas) {
	dst.Push()
	defer dst.Pop()

	dst.Translate(
		float64(g.player.X)+float64(g.cfg.Player.Width)/2,
		g.player.Y+float64(g.cfg.Player.Height)/2,
	)
	dst.Rotate(g.player.Rotation)

	dst.FillCircle(core.Vec{X: 0, Y: -6}, 4, core.ColorYellow)
	for _, limb := range stickFigure {
		dst.Line(limb[0], limb[1], 2, core.ColorYellow)
	}
}

func drawObstacle(dst *core.Canvas, ob Obstacle) {
	x, y := float64(ob.X), float64(ob.Y)
	w, h := float64(ob.Width), float64(ob.Height)

	switch ob.Shape {
	case ShapeCircle:
		dst.FillCircle(core.Vec{X: x + w/2, Y: y + h/2}, math.Min(w, h)/2, ob.Color)
	case ShapeTriangle:
		dst.FillTriangle(
			core.Vec{X: x, Y: y + h},
			core.Vec{X: x + w/2, Y: y},
			core.Vec{X: x + w, Y: y + h},
			ob.Color,
		)
	default:
		dst.FillRect(ob.Rect(), ob.Color)
	}
}

// State returns the current game state. The score is ticks survived.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  int(g.tick),
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

// Player returns a copy of the player's body.
func (g *Game) Player() Player {
	return g.player
}

// Obstacles returns the current obstacles.
func (g *Game) Obstacles() []Obstacle {
	if g.obstacles == nil {
		return nil
	}
	return g.obstacles.Obstacles()
}

// DebugState returns a one-line description of the game state.
func (g *Game) DebugState() string {
	return fmt.Sprintf("tick=%d status=%s y=%.1f vy=%.1f grounded=%v obstacles=%d",
		g.tick, g.status, g.player.Y, g.player.VY, g.player.Grounded, len(g.Obstacles()))
}
