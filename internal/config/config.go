// Package config provides YAML-based game configuration loading, validation
// and difficulty presets for the game center.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board  SnakeBoard `yaml:"board"`
	Start  SnakeStart `yaml:"start"`
	TickMS int        `yaml:"tick_ms"`
}

// SnakeBoard defines the playfield in canvas pixels.
type SnakeBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Scale  int `yaml:"scale"` // Size of one grid cell
}

// SnakeStart defines the initial head cell and heading.
type SnakeStart struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Direction string `yaml:"direction"` // up, down, left or right
}

// TickInterval returns the fixed tick period.
func (c SnakeConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// Validate checks that the board is a whole grid and the start cell lies on it.
func (c SnakeConfig) Validate() error {
	b := c.Board
	switch {
	case b.Scale <= 0:
		return fmt.Errorf("%w: snake board.scale must be positive, got %d", ErrInvalid, b.Scale)
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: snake board must be non-empty, got %dx%d", ErrInvalid, b.Width, b.Height)
	case b.Width%b.Scale != 0 || b.Height%b.Scale != 0:
		return fmt.Errorf("%w: snake board %dx%d is not a multiple of scale %d", ErrInvalid, b.Width, b.Height, b.Scale)
	case c.Start.X < 0 || c.Start.X >= b.Width || c.Start.Y < 0 || c.Start.Y >= b.Height:
		return fmt.Errorf("%w: snake start (%d,%d) is off the board", ErrInvalid, c.Start.X, c.Start.Y)
	case c.Start.X%b.Scale != 0 || c.Start.Y%b.Scale != 0:
		return fmt.Errorf("%w: snake start (%d,%d) is not grid aligned", ErrInvalid, c.Start.X, c.Start.Y)
	case c.TickMS <= 0:
		return fmt.Errorf("%w: snake tick_ms must be positive, got %d", ErrInvalid, c.TickMS)
	}
	switch c.Start.Direction {
	case "up", "down", "left", "right":
	default:
		return fmt.Errorf("%w: snake start.direction %q", ErrInvalid, c.Start.Direction)
	}
	return nil
}

// DinoConfig contains all configuration for the Dino Run game.
type DinoConfig struct {
	Board     DinoBoard     `yaml:"board"`
	Physics   DinoPhysics   `yaml:"physics"`
	Player    DinoPlayer    `yaml:"player"`
	Obstacles DinoObstacles `yaml:"obstacles"`
	TickMS    int           `yaml:"tick_ms"`
}

// DinoBoard defines the playfield in canvas pixels. The ground is its bottom edge.
type DinoBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DinoPhysics defines the constant-acceleration model.
type DinoPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // Added to vertical velocity every airborne tick
	JumpForce    float64 `yaml:"jump_force"`    // Upward velocity given by a jump
	Speed        int     `yaml:"speed"`         // Obstacle scroll per tick
	RotationStep float64 `yaml:"rotation_step"` // Cosmetic spin per airborne tick, radians
}

// DinoPlayer defines the player's box.
type DinoPlayer struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DinoObstacles defines the ranges obstacles are randomized from.
type DinoObstacles struct {
	GapMin    int `yaml:"gap_min"`
	GapMax    int `yaml:"gap_max"`
	MinWidth  int `yaml:"min_width"`
	MaxWidth  int `yaml:"max_width"`
	MinHeight int `yaml:"min_height"`
	MaxHeight int `yaml:"max_height"`
}

// TickInterval returns the fixed tick period.
func (c DinoConfig) TickInterval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// GroundY returns the resting y of the player's top edge.
func (c DinoConfig) GroundY() float64 {
	return float64(c.Board.Height - c.Player.Height)
}

// Validate checks ranges and that the player fits on the board.
func (c DinoConfig) Validate() error {
	o := c.Obstacles
	switch {
	case c.Board.Width <= 0 || c.Board.Height <= 0:
		return fmt.Errorf("%w: dino board must be non-empty, got %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Height > c.Board.Height:
		return fmt.Errorf("%w: dino player %dx%d does not fit the board", ErrInvalid, c.Player.Width, c.Player.Height)
	case c.Player.X < 0 || c.Player.X+c.Player.Width > c.Board.Width:
		return fmt.Errorf("%w: dino player.x %d is off the board", ErrInvalid, c.Player.X)
	case c.Physics.Gravity <= 0 || c.Physics.JumpForce <= 0:
		return fmt.Errorf("%w: dino gravity and jump_force must be positive", ErrInvalid)
	case c.Physics.Speed <= 0:
		return fmt.Errorf("%w: dino speed must be positive, got %d", ErrInvalid, c.Physics.Speed)
	case o.GapMin <= 0 || o.GapMin > o.GapMax:
		return fmt.Errorf("%w: dino gap range [%d,%d]", ErrInvalid, o.GapMin, o.GapMax)
	case o.MinWidth <= 0 || o.MinWidth > o.MaxWidth:
		return fmt.Errorf("%w: dino obstacle width range [%d,%d]", ErrInvalid, o.MinWidth, o.MaxWidth)
	case o.MinHeight <= 0 || o.MinHeight > o.MaxHeight || o.MaxHeight > c.Board.Height:
		return fmt.Errorf("%w: dino obstacle height range [%d,%d]", ErrInvalid, o.MinHeight, o.MaxHeight)
	case c.TickMS <= 0:
		return fmt.Errorf("%w: dino tick_ms must be positive, got %d", ErrInvalid, c.TickMS)
	}
	return nil
}
