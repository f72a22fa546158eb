package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/game-center/internal/manifest"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <route|id>",
	Short: "Play a game",
	Long: `Open a game view directly, skipping the landing view.

The game is addressed by its manifest route or its id.

Controls:
  Arrows/WASD  - Turn (Snake)
  Space/Up     - Jump (Dino Run), mouse click works too
  P/Esc        - Pause
  R            - Restart
  B            - Back to the landing view
  Q/Ctrl+C     - Quit

Difficulty options:
  easy    - Slower ticks, gentler physics
  normal  - Defaults
  hard    - Faster ticks, faster obstacles

Examples:
  gamecenter play /games/snake
  gamecenter play dino --difficulty easy
  gamecenter play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(_ *cobra.Command, args []string) error {
	m, err := manifest.Load()
	if err != nil {
		return err
	}
	entry, err := resolveGame(m, args[0])
	if err != nil {
		return err
	}
	if err := configureGames(entry.ID, flagConfig); err != nil {
		return err
	}
	return runViews(entry.Route)
}
