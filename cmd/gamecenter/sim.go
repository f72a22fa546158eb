package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/game-center/internal/core"
	"github.com/vovakirdan/game-center/internal/games/dino"
	"github.com/vovakirdan/game-center/internal/games/snake"
	"github.com/vovakirdan/game-center/internal/manifest"
	"github.com/vovakirdan/game-center/internal/platform/tui"
	"github.com/vovakirdan/game-center/internal/registry"
)

var (
	flagTicks     int
	flagJumpEvery int
	flagTurns     string
	flagFrame     bool
	flagFrameCols int
	flagSimConfig string
)

var simCmd = &cobra.Command{
	Use:   "sim <route|id>",
	Short: "Run a game headless and print its final state",
	Long: `Step a game for a fixed number of ticks without a terminal UI and
print the resulting snapshot as YAML. The same seed and script always
produce the same output.

Scripted intents are given as tick:action pairs and are applied just
before that tick's step. Action names: up, down, left, right, jump,
pause.

Examples:
  gamecenter sim snake --ticks 50 --seed 1
  gamecenter sim snake --ticks 30 --turns 5:down,12:left
  gamecenter sim dino --ticks 300 --jump-every 45 --frame`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 100, "Number of ticks to step")
	simCmd.Flags().IntVar(&flagJumpEvery, "jump-every", 0, "Send a jump every K ticks (0 = never)")
	simCmd.Flags().StringVar(&flagTurns, "turns", "", "Scripted intents, e.g. 5:down,12:left")
	simCmd.Flags().BoolVar(&flagFrame, "frame", false, "Also print the final frame as text")
	simCmd.Flags().IntVar(&flagFrameCols, "frame-cols", 60, "Maximum frame width in columns")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
}

// simReport is the YAML document printed by sim.
type simReport struct {
	Game  string `yaml:"game"`
	Seed  int64  `yaml:"seed"`
	Ticks int    `yaml:"ticks"`
	Ended bool   `yaml:"ended"`
	State any    `yaml:"state"`
}

func runSim(_ *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	if flagTicks < 0 {
		return fmt.Errorf("--ticks must not be negative, got %d", flagTicks)
	}
	script, err := parseScript(flagTurns)
	if err != nil {
		return err
	}

	m, err := manifest.Load()
	if err != nil {
		return err
	}
	entry, err := resolveGame(m, args[0])
	if err != nil {
		return err
	}
	if err := configureGames(entry.ID, flagSimConfig); err != nil {
		return err
	}

	game, err := registry.Create(entry.ID)
	if err != nil {
		return err
	}
	game.Reset(core.RuntimeConfig{Seed: flagSeed})

	logger = logger.With("game", entry.ID)
	logger.Debug("simulating", "ticks", flagTicks, "seed", flagSeed, "scripted", scriptTicks(script))
	ticks, ended := simulate(game, flagTicks, flagJumpEvery, script, logger)

	state, err := snapshotOf(game)
	if err != nil {
		return err
	}
	report := simReport{Game: entry.ID, Seed: flagSeed, Ticks: ticks, Ended: ended, State: state}
	if err := writeReport(os.Stdout, report); err != nil {
		return err
	}

	if flagFrame {
		w, h := game.Bounds()
		canvas := core.NewCanvas(w, h)
		game.Render(canvas)
		fmt.Println(tui.PlainFrame(canvas, flagFrameCols, flagFrameCols))
	}
	return nil
}

// simulate steps g up to ticks times and returns how many steps ran and
// whether the game ended. Scripted intents and periodic jumps land before
// the step of their tick.
func simulate(g registry.Game, ticks, jumpEvery int, script map[int][]core.Action, logger *log.Logger) (int, bool) {
	for t := 1; t <= ticks; t++ {
		for _, a := range script[t] {
			g.Handle(a)
		}
		if jumpEvery > 0 && t%jumpEvery == 0 {
			g.Handle(core.ActionJump)
		}

		res := g.Step()
		if res.Ended {
			logger.Info("game over", "tick", t, "score", res.State.Score)
			return t, true
		}
	}
	return ticks, g.State().GameOver()
}

// parseScript parses "tick:action,..." into intents keyed by tick.
func parseScript(s string) (map[int][]core.Action, error) {
	script := make(map[int][]core.Action)
	if strings.TrimSpace(s) == "" {
		return script, nil
	}

	for _, item := range strings.Split(s, ",") {
		tickStr, name, ok := strings.Cut(strings.TrimSpace(item), ":")
		if !ok {
			return nil, fmt.Errorf("invalid intent %q: want tick:action", item)
		}
		tick, err := strconv.Atoi(tickStr)
		if err != nil || tick < 1 {
			return nil, fmt.Errorf("invalid tick in %q: want a positive number", item)
		}
		action, err := parseIntent(name)
		if err != nil {
			return nil, err
		}
		script[tick] = append(script[tick], action)
	}
	return script, nil
}

// parseIntent accepts action names in any case. Session-level actions
// (restart, back, quit) have no meaning in a headless run.
func parseIntent(name string) (core.Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return core.ActionNone, fmt.Errorf("empty action name")
	}
	action, ok := core.ParseAction(strings.ToUpper(name[:1]) + name[1:])
	if !ok {
		return core.ActionNone, fmt.Errorf("unknown action %q", name)
	}
	switch action {
	case core.ActionRestart, core.ActionBack, core.ActionConfirm, core.ActionQuit:
		return core.ActionNone, fmt.Errorf("action %q is not available in sim", name)
	}
	return action, nil
}

// snapshotOf returns the engine's own snapshot type.
func snapshotOf(g registry.Game) (any, error) {
	switch g := g.(type) {
	case *snake.Game:
		return g.Snapshot(), nil
	case *dino.Game:
		return g.Snapshot(), nil
	default:
		return nil, fmt.Errorf("game %q has no snapshot", g.ID())
	}
}

func writeReport(w io.Writer, report simReport) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}

// scriptTicks lists the scripted ticks in order, for debug output.
func scriptTicks(script map[int][]core.Action) []int {
	ticks := make([]int, 0, len(script))
	for t := range script {
		ticks = append(ticks, t)
	}
	sort.Ints(ticks)
	return ticks
}
