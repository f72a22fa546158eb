package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/dino.yaml
var defaultDinoYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			Width:  300,
			Height: 300,
			Scale:  10,
		},
		Start: SnakeStart{
			X:         150,
			Y:         150,
			Direction: "right",
		},
		TickMS: 100,
	}
}

// DefaultDinoConfig returns the default Dino Run configuration.
func DefaultDinoConfig() DinoConfig {
	return DinoConfig{
		Board: DinoBoard{
			Width:  300,
			Height: 150,
		},
		Physics: DinoPhysics{
			Gravity:      1,
			JumpForce:    15,
			Speed:        2,
			RotationStep: 0.2,
		},
		Player: DinoPlayer{
			X:      30,
			Width:  20,
			Height: 20,
		},
		Obstacles: DinoObstacles{
			GapMin:    100,
			GapMax:    300,
			MinWidth:  10,
			MaxWidth:  40,
			MinHeight: 10,
			MaxHeight: 40,
		},
		TickMS: 30,
	}
}
