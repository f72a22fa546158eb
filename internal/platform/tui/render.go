package tui

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/game-center/internal/core"
)

// halfBlock shows two vertically stacked pixels in one cell: the foreground
// paints the upper half, the background the lower half.
const halfBlock = '▀'

// FitCells picks the largest cell grid that shows a width x height canvas
// inside maxCols x maxRows without distortion. A cell holds two pixels
// vertically, so rows need half as many cells as columns. The canvas is never
// upscaled.
func FitCells(width, height, maxCols, maxRows int) (cols, rows int) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	scale := 1.0
	if sx := float64(maxCols) / float64(width); sx < scale {
		scale = sx
	}
	if sy := float64(2*maxRows) / float64(height); sy < scale {
		scale = sy
	}
	cols = int(float64(width) * scale)
	rows = int(float64(height) * scale / 2)
	return max(cols, 1), max(rows, 1)
}

// Rasterize downsamples the canvas onto the screen. Each half cell covers a
// block of pixels; the most frequent color other than the background wins,
// so thin strokes survive the shrink. Labels are stamped last.
func Rasterize(c *core.Canvas, dst *core.Screen) {
	dst.Clear()
	cols, rows := dst.Width(), dst.Height()
	if c == nil || cols == 0 || rows == 0 {
		return
	}

	w, h := c.Width(), c.Height()
	bg := c.Background()
	var t tally
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			x0, x1 := cx*w/cols, (cx+1)*w/cols
			top := t.dominant(c, bg, x0, x1, 2*cy*h/(2*rows), (2*cy+1)*h/(2*rows))
			bottom := t.dominant(c, bg, x0, x1, (2*cy+1)*h/(2*rows), (2*cy+2)*h/(2*rows))
			dst.SetCell(cx, cy, core.Cell{Rune: halfBlock, FG: top, BG: bottom})
		}
	}

	for _, l := range c.Labels() {
		cx := l.X * cols / w
		cy := l.Y * rows / h
		dst.DrawText(cx-len([]rune(l.Text))/2, cy, l.Text, l.Color)
	}
}

// colorCount is one entry of a tally.
type colorCount struct {
	color color.RGBA
	n     int
}

// tally counts colors within one block. The buffer is reused across blocks
// of a frame and holds only the few colors a block contains.
type tally struct {
	counts []colorCount
}

// dominant returns the most frequent non-background color in the block
// [x0,x1) x [y0,y1), or bg when the block holds nothing else. Ties go to the
// color that reached the count first.
func (t *tally) dominant(c *core.Canvas, bg color.RGBA, x0, x1, y0, y1 int) color.RGBA {
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	t.counts = t.counts[:0]
	best, bestCount := bg, 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			px := c.At(x, y)
			if px == bg {
				continue
			}
			if n := t.add(px); n > bestCount {
				best, bestCount = px, n
			}
		}
	}
	return best
}

// add bumps the count of col and returns the new count.
func (t *tally) add(col color.RGBA) int {
	for i := range t.counts {
		if t.counts[i].color == col {
			t.counts[i].n++
			return t.counts[i].n
		}
	}
	t.counts = append(t.counts, colorCount{color: col, n: 1})
	return 1
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.FG != start.FG || cell.BG != start.BG {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}

// cellStyle maps a cell's colors to lipgloss. A zero alpha color keeps the
// terminal default.
func cellStyle(c core.Cell) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c.FG.A != 0 {
		style = style.Foreground(lipgloss.Color(core.Hex(c.FG)))
	}
	if c.BG.A != 0 {
		style = style.Background(lipgloss.Color(core.Hex(c.BG)))
	}
	return style
}

// PlainFrame renders the canvas as uncolored text for logs and pipes. Each
// cell shows which of its two pixels differ from the background.
func PlainFrame(c *core.Canvas, maxCols, maxRows int) string {
	if c == nil {
		return ""
	}
	cols, rows := FitCells(c.Width(), c.Height(), maxCols, maxRows)
	s := core.NewScreen(cols, rows)
	Rasterize(c, s)

	bg := c.Background()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := s.GetCell(x, y)
			if cell.Rune != halfBlock {
				continue
			}
			cell.Rune = shade(cell.FG != bg, cell.BG != bg)
			s.SetCell(x, y, cell)
		}
	}
	return s.String()
}

func shade(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	default:
		return ' '
	}
}
