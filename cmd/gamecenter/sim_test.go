package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/game-center/internal/core"
	"github.com/vovakirdan/game-center/internal/registry"
)

func TestParseScript(t *testing.T) {
	script, err := parseScript("5:down, 12:Left,5:pause")
	if err != nil {
		t.Fatalf("parseScript() failed: %v", err)
	}

	if got := script[5]; len(got) != 2 || got[0] != core.ActionDown || got[1] != core.ActionPause {
		t.Errorf("tick 5 = %v, expected [Down Pause]", got)
	}
	if got := script[12]; len(got) != 1 || got[0] != core.ActionLeft {
		t.Errorf("tick 12 = %v, expected [Left]", got)
	}
	if ticks := scriptTicks(script); len(ticks) != 2 || ticks[0] != 5 || ticks[1] != 12 {
		t.Errorf("scriptTicks() = %v", ticks)
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []string{
		"5",
		"x:up",
		"0:up",
		"3:fly",
		"3:",
		"3:quit",
		"3:restart",
	}
	for _, in := range tests {
		if _, err := parseScript(in); err == nil {
			t.Errorf("parseScript(%q) should fail", in)
		}
	}

	if script, err := parseScript("  "); err != nil || len(script) != 0 {
		t.Errorf("blank script = %v, %v", script, err)
	}
}

func newSimGame(t *testing.T, id string, seed int64) registry.Game {
	t.Helper()
	g, err := registry.Create(id)
	if err != nil {
		t.Fatalf("registry.Create(%q) failed: %v", id, err)
	}
	g.Reset(core.RuntimeConfig{Seed: seed})
	return g
}

func TestSimulateRunsAllTicks(t *testing.T) {
	g := newSimGame(t, "dino", 3)

	ticks, ended := simulate(g, 10, 0, nil, log.New(io.Discard))

	if ticks != 10 || ended {
		t.Errorf("simulate() = %d, %v; expected 10 ticks without game over", ticks, ended)
	}
	if g.State().Score != 10 {
		t.Errorf("score = %d, expected 10", g.State().Score)
	}
}

func TestSimulateJumpEvery(t *testing.T) {
	g := newSimGame(t, "dino", 3)

	simulate(g, 1, 1, nil, log.New(io.Discard))

	snap, err := snapshotOf(g)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := writeReport(&buf, simReport{Game: "dino", State: snap}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "grounded: false") {
		t.Errorf("a jump on tick 1 should leave the ground:\n%s", buf.String())
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	script, err := parseScript("3:down,9:left,15:up")
	if err != nil {
		t.Fatal(err)
	}

	run := func() string {
		g := newSimGame(t, "snake", 11)
		ticks, ended := simulate(g, 40, 0, script, log.New(io.Discard))
		snap, err := snapshotOf(g)
		if err != nil {
			t.Fatal(err)
		}
		var buf bytes.Buffer
		if err := writeReport(&buf, simReport{Game: "snake", Seed: 11, Ticks: ticks, Ended: ended, State: snap}); err != nil {
			t.Fatal(err)
		}
		return buf.String()
	}

	first, second := run(), run()
	if first != second {
		t.Errorf("same seed and script gave different reports:\n%s\n---\n%s", first, second)
	}
	if !strings.Contains(first, "game: snake") || !strings.Contains(first, "seed: 11") {
		t.Errorf("report is missing its header:\n%s", first)
	}
}
