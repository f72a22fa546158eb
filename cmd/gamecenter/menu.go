package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/game-center/internal/manifest"
	"github.com/vovakirdan/game-center/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the landing view",
	Long: `Open the landing view listing every game in the manifest.

Pick a game to open its view. Leaving a game (b) stops it and
returns here.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Open game
  Q/Esc        - Quit

Examples:
  gamecenter menu
  gamecenter menu --seed 42 --log-file gamecenter.log`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runViews(tui.LandingRoute)
}

// runViews starts the interactive program on route.
func runViews(route string) error {
	m, err := manifest.Load()
	if err != nil {
		return err
	}

	logger, closeLog, err := viewLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	return tui.Run(tui.Options{
		Manifest: m,
		Runtime:  runtimeConfig(),
		Logger:   logger,
		Route:    route,
	})
}
