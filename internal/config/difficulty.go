package config

import "fmt"

// DifficultyPreset represents a named difficulty level. A preset adjusts the
// constants once at reset; nothing changes during a run.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means "leave the
// config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplySnakePreset scales the tick period: slower on easy, faster on hard.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.TickMS = cfg.TickMS * 3 / 2
	case DifficultyHard:
		cfg.TickMS = max(1, cfg.TickMS*7/10)
	}
}

// ApplyDinoPreset widens obstacle gaps on easy, and speeds up the scroll and
// tightens gaps on hard.
func ApplyDinoPreset(cfg *DinoConfig, preset DifficultyPreset) {
	o := &cfg.Obstacles
	switch preset {
	case DifficultyEasy:
		o.GapMin = o.GapMin * 3 / 2
		o.GapMax = max(o.GapMin, o.GapMax)
	case DifficultyHard:
		cfg.Physics.Speed++
		o.GapMin = max(1, o.GapMin*4/5)
		o.GapMax = max(o.GapMin, o.GapMax*4/5)
	}
}
