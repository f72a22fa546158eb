package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/game-center/internal/core"
)

func TestFitCells(t *testing.T) {
	tests := []struct {
		name               string
		w, h, maxC, maxR   int
		wantCols, wantRows int
	}{
		{"square board in 80x24", 300, 300, 80, 24, 48, 24},
		{"wide board limited by columns", 300, 150, 150, 100, 150, 37},
		{"never upscales", 10, 10, 100, 100, 10, 5},
		{"tiny terminal keeps one cell", 300, 300, 0, 0, 1, 1},
		{"empty canvas", 0, 10, 80, 24, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cols, rows := FitCells(tc.w, tc.h, tc.maxC, tc.maxR)
			if cols != tc.wantCols || rows != tc.wantRows {
				t.Errorf("FitCells() = %dx%d, expected %dx%d", cols, rows, tc.wantCols, tc.wantRows)
			}
		})
	}
}

func TestRasterizeKeepsThinDetail(t *testing.T) {
	c := core.NewCanvas(4, 4)
	c.Fill(core.ColorBlack)
	c.FillRect(core.NewRect(0, 0, 1, 1), core.ColorRed)

	s := core.NewScreen(2, 1)
	Rasterize(c, s)

	left := s.GetCell(0, 0)
	if left.Rune != halfBlock {
		t.Errorf("rune = %q, expected half block", left.Rune)
	}
	if left.FG != core.ColorRed {
		t.Errorf("upper half = %v, expected the single red pixel to win", left.FG)
	}
	if left.BG != core.ColorBlack {
		t.Errorf("lower half = %v, expected background", left.BG)
	}

	right := s.GetCell(1, 0)
	if right.FG != core.ColorBlack || right.BG != core.ColorBlack {
		t.Errorf("empty block = %+v, expected background", right)
	}
}

func TestRasterizeLabels(t *testing.T) {
	c := core.NewCanvas(10, 10)
	c.Fill(core.ColorBlack)
	c.DrawLabel(5, 5, "Hi", core.ColorWhite)

	s := core.NewScreen(10, 5)
	Rasterize(c, s)

	if row := []rune(s.Row(2)); string(row[4:6]) != "Hi" {
		t.Errorf("row 2 = %q, expected label centered at column 5", string(row))
	}
	cell := s.GetCell(4, 2)
	if cell.FG != core.ColorWhite || cell.BG != core.ColorBlack {
		t.Errorf("label cell = %+v, expected white on the picture's background", cell)
	}
}

func TestRasterizeNilCanvas(t *testing.T) {
	s := core.NewScreen(3, 2)
	Rasterize(nil, s)
	if s.Row(0) != "   " {
		t.Errorf("nil canvas should leave a blank screen, got %q", s.Row(0))
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetCell(0, 0, core.Cell{Rune: halfBlock, FG: core.ColorRed, BG: core.ColorBlack})
	s.DrawText(1, 1, "ok", core.ColorWhite)

	out := RenderScreen(s)

	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
	if !strings.Contains(out, string(halfBlock)) || !strings.Contains(out, "ok") {
		t.Errorf("output lost content: %q", out)
	}
}

func TestPlainFrame(t *testing.T) {
	c := core.NewCanvas(4, 4)
	c.Fill(core.ColorBlack)
	c.FillRect(core.NewRect(0, 0, 2, 4), core.ColorRed)
	c.FillRect(core.NewRect(2, 2, 2, 2), core.ColorRed)

	got := PlainFrame(c, 4, 2)
	want := "██  \n████"
	if got != want {
		t.Errorf("PlainFrame() = %q, expected %q", got, want)
	}

	if PlainFrame(nil, 4, 2) != "" {
		t.Error("nil canvas should render nothing")
	}
}

func TestTallyDominant(t *testing.T) {
	c := core.NewCanvas(4, 2)
	c.Fill(core.ColorBlack)
	c.FillRect(core.NewRect(0, 0, 1, 1), core.ColorRed)
	c.FillRect(core.NewRect(1, 0, 2, 1), core.ColorBlue)
	c.FillRect(core.NewRect(3, 1, 1, 1), core.ColorRed)

	var tl tally
	if got := tl.dominant(c, core.ColorBlack, 0, 4, 0, 2); got != core.ColorBlue {
		t.Errorf("dominant = %v, expected blue (2 px) over red (2 px, reached later)", got)
	}
	if got := tl.dominant(c, core.ColorBlack, 3, 4, 1, 2); got != core.ColorRed {
		t.Errorf("dominant = %v, counts from the previous block must not leak", got)
	}
	if got := tl.dominant(c, core.ColorBlack, 0, 1, 1, 2); got != core.ColorBlack {
		t.Errorf("dominant = %v, expected background for an empty block", got)
	}
}

func TestRasterizeDoesNotAllocatePerBlock(t *testing.T) {
	c := core.NewCanvas(120, 60)
	c.Fill(core.ColorBlack)
	for i := 0; i < 12; i++ {
		c.FillRect(core.NewRect(i*10, i*5, 10, 5), core.ColorRed)
		c.FillRect(core.NewRect(i*10+5, i*5, 5, 5), core.ColorBlue)
	}
	s := core.NewScreen(60, 15)

	allocs := testing.AllocsPerRun(10, func() { Rasterize(c, s) })
	if allocs > 4 {
		t.Errorf("Rasterize allocated %.0f times per frame, expected a constant few", allocs)
	}
}
