package dino

// ObstacleSnapshot is the serializable form of an Obstacle.
type ObstacleSnapshot struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Shape  string `yaml:"shape"`
}

// Snapshot captures the game state for determinism testing and headless runs.
type Snapshot struct {
	Tick      uint64             `yaml:"tick"`
	Status    string             `yaml:"status"`
	Score     int                `yaml:"score"`
	PlayerY   float64            `yaml:"player_y"`
	PlayerVY  float64            `yaml:"player_vy"`
	Grounded  bool               `yaml:"grounded"`
	Obstacles []ObstacleSnapshot `yaml:"obstacles"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	obs := g.Obstacles()
	s := Snapshot{
		Tick:      g.tick,
		Status:    g.status.String(),
		Score:     g.State().Score,
		PlayerY:   g.player.Y,
		PlayerVY:  g.player.VY,
		Grounded:  g.player.Grounded,
		Obstacles: make([]ObstacleSnapshot, 0, len(obs)),
	}
	for _, ob := range obs {
		s.Obstacles = append(s.Obstacles, ObstacleSnapshot{
			X:      ob.X,
			Y:      ob.Y,
			Width:  ob.Width,
			Height: ob.Height,
			Shape:  ob.Shape.String(),
		})
	}
	return s
}
