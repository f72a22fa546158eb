// gamecenter is a terminal game center hosting Snake and Dino Run.
//
// Usage:
//
//	gamecenter                       - Open the landing view
//	gamecenter menu                  - Same as above
//	gamecenter play <route|id>       - Jump straight into a game
//	gamecenter list                  - List the games in the manifest
//	gamecenter sim <route|id>        - Run a game headless and print its state
//	gamecenter manifest              - Print the web manifest as JSON
//
// Global flags:
//
//	--seed <value>          - RNG seed for reproducible gameplay
//	--difficulty <preset>   - easy, normal or hard
//	--log-level <level>     - debug, info, warn or error
//	--log-file <path>       - Where the interactive views write their log
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/game-center/internal/config"
	"github.com/vovakirdan/game-center/internal/core"
	"github.com/vovakirdan/game-center/internal/games/dino"
	"github.com/vovakirdan/game-center/internal/games/snake"
	"github.com/vovakirdan/game-center/internal/manifest"
	"github.com/vovakirdan/game-center/internal/platform/tui"
)

var (
	// Global flags
	flagSeed       int64
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gamecenter",
	Short: "Game Center - Snake and Dino Run in your terminal",
	Long: `Game Center hosts small arcade games behind a landing view.
Every game runs on a fixed tick: update, collision check, render.

Available commands:
  menu      - Landing view with the game list (default)
  play      - Open a game by route or id
  list      - Show the games in the manifest
  sim       - Run a game without a terminal and print its state
  manifest  - Print the web manifest, optionally writing icons

Examples:
  gamecenter
  gamecenter play /games/snake
  gamecenter play dino --difficulty hard
  gamecenter sim dino --ticks 200 --jump-every 40 --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for interactive views (default: discard)")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(manifestCmd)
}

// newLogger builds a logger at the --log-level threshold.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "gamecenter",
	}), nil
}

// viewLogger returns the logger for the alternate-screen views. They own the
// terminal, so output goes to --log-file or nowhere.
func viewLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		logger, err := newLogger(io.Discard)
		return logger, func() {}, err
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// configureGames applies --difficulty to every game and a custom config file
// to the target game. The file is loaded once up front so a broken file fails
// the command instead of silently falling back to defaults.
func configureGames(gameID, configPath string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	snake.SetDifficultyPreset(preset)
	dino.SetDifficultyPreset(preset)

	if configPath == "" {
		return nil
	}
	switch gameID {
	case "snake":
		if _, err := config.LoadSnake(configPath); err != nil {
			return err
		}
		snake.SetConfigPath(configPath)
	case "dino":
		if _, err := config.LoadDino(configPath); err != nil {
			return err
		}
		dino.SetConfigPath(configPath)
	default:
		return fmt.Errorf("--config is not supported for %q", gameID)
	}
	return nil
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}
}

// resolveGame maps a route or id to a manifest entry with a registered game.
func resolveGame(m *manifest.Manifest, target string) (manifest.Entry, error) {
	entry, ok, err := tui.ResolveRoute(m, target)
	if err != nil {
		return manifest.Entry{}, fmt.Errorf("%w (run 'gamecenter list' to see available games)", err)
	}
	if !ok {
		return manifest.Entry{}, fmt.Errorf("%q is the landing view, not a game", target)
	}
	return entry, nil
}
