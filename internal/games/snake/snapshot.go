package snake

import "github.com/vovakirdan/game-center/internal/core"

// Snapshot captures the game state for determinism testing and headless runs.
type Snapshot struct {
	Tick      uint64     `yaml:"tick"`
	Status    string     `yaml:"status"`
	Score     int        `yaml:"score"`
	Length    int        `yaml:"length"`
	Head      core.Point `yaml:"head"`
	Direction string     `yaml:"direction"`
	Food      core.Point `yaml:"food"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	var head core.Point
	if len(g.body) > 0 {
		head = g.body[0]
	}
	return Snapshot{
		Tick:      g.tick,
		Status:    g.status.String(),
		Score:     g.eaten,
		Length:    len(g.body),
		Head:      head,
		Direction: directionName(g.direction),
		Food:      g.food,
	}
}
