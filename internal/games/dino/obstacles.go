package dino

import (
	"image/color"

	"github.com/vovakirdan/game-center/internal/config"
	"github.com/vovakirdan/game-center/internal/core"
)

// Shape selects how an obstacle is drawn. Collision always uses the box.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeCircle
	ShapeTriangle
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	case ShapeTriangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Obstacle is a ground obstacle the player must jump over.
type Obstacle struct {
	X, Y          int // Top-left corner; Y keeps the base on the ground
	Width, Height int
	Shape         Shape
	Color         color.RGBA
}

// Rect returns the collision box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() int {
	return o.X + o.Width
}

// kinds lists the obstacle set, one per shape, in spawn order.
var kinds = []struct {
	shape Shape
	color color.RGBA
}{
	{ShapeRect, core.ColorRed},
	{ShapeCircle, core.ColorGreen},
	{ShapeTriangle, core.ColorBlue},
}

// ObstacleField scrolls a fixed set of obstacles and recycles each one past
// the rightmost once it leaves the board. Obstacles are never removed.
type ObstacleField struct {
	obstacles []Obstacle
	rng       core.Rand
	cfg       config.DinoConfig
}

// NewObstacleField lays out one obstacle per shape beyond the right edge,
// each a random gap past the previous one.
func NewObstacleField(cfg config.DinoConfig, rng core.Rand) *ObstacleField {
	f := &ObstacleField{
		obstacles: make([]Obstacle, 0, len(kinds)),
		rng:       rng,
		cfg:       cfg,
	}

	nextX := cfg.Board.Width
	for _, k := range kinds {
		nextX += f.gap()
		ob := Obstacle{X: nextX, Shape: k.shape, Color: k.color}
		f.resize(&ob)
		f.obstacles = append(f.obstacles, ob)
	}
	return f
}

// Update moves every obstacle left by speed, then recycles those that have
// fully scrolled past the left edge.
func (f *ObstacleField) Update(speed int) {
	for i := range f.obstacles {
		f.obstacles[i].X -= speed
	}

	rightmost := f.rightmost()
	for i := range f.obstacles {
		ob := &f.obstacles[i]
		if ob.Right() >= 0 {
			continue
		}
		rightmost += f.gap()
		ob.X = rightmost
		f.resize(ob)
	}
}

// Collides reports whether box overlaps any obstacle.
func (f *ObstacleField) Collides(box core.RectF) bool {
	for _, ob := range f.obstacles {
		if box.Intersects(ob.Rect().ToRectF()) {
			return true
		}
	}
	return false
}

// Obstacles returns the current obstacles.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

func (f *ObstacleField) rightmost() int {
	if len(f.obstacles) == 0 {
		return f.cfg.Board.Width
	}
	x := f.obstacles[0].X
	for _, ob := range f.obstacles[1:] {
		if ob.X > x {
			x = ob.X
		}
	}
	return x
}

func (f *ObstacleField) gap() int {
	o := f.cfg.Obstacles
	return f.rng.IntRange(o.GapMin, o.GapMax)
}

// resize draws a fresh size and rests the obstacle on the ground.
func (f *ObstacleField) resize(ob *Obstacle) {
	o := f.cfg.Obstacles
	ob.Width = f.rng.IntRange(o.MinWidth, o.MaxWidth)
	ob.Height = f.rng.IntRange(o.MinHeight, o.MaxHeight)
	ob.Y = f.cfg.Board.Height - ob.Height
}
