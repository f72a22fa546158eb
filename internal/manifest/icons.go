package manifest

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/vovakirdan/game-center/internal/core"
)

// iconGrid is the resolution icons are drawn at before upscaling.
const iconGrid = 32

// RenderIcon draws the app icon at size x size: a snake chasing its food over
// a rolling obstacle, on the theme color.
func (m *Manifest) RenderIcon(size int) (*image.RGBA, error) {
	bg, err := core.ParseHex(m.ThemeColor)
	if err != nil {
		return nil, fmt.Errorf("manifest: icon background: %w", err)
	}

	c := core.NewCanvas(iconGrid, iconGrid)
	c.Fill(bg)

	for i := 0; i < 4; i++ {
		c.FillRect(core.NewRect(4+i*4, 8, 4, 4), core.ColorLime)
	}
	c.FillRect(core.NewRect(24, 8, 4, 4), core.ColorRed)

	c.FillRect(core.NewRect(0, 28, iconGrid, 4), core.ColorGray)
	c.FillCircle(core.Vec{X: 10, Y: 22}, 2, core.ColorYellow)
	c.Line(core.Vec{X: 10, Y: 24}, core.Vec{X: 10, Y: 28}, 1, core.ColorYellow)
	c.FillTriangle(core.Vec{X: 18, Y: 28}, core.Vec{X: 22, Y: 20}, core.Vec{X: 26, Y: 28}, core.ColorBlue)

	return c.Scaled(size, size), nil
}

// WriteIcons renders every icon in the set as PNG into dir, named after the
// base of its src. It returns the written paths.
func (m *Manifest) WriteIcons(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("manifest: create icon dir: %w", err)
	}

	paths := make([]string, 0, len(m.Icons))
	for _, icon := range m.Icons {
		size, err := icon.Size()
		if err != nil {
			return paths, err
		}
		img, err := m.RenderIcon(size)
		if err != nil {
			return paths, err
		}

		path := filepath.Join(dir, filepath.Base(icon.Src))
		if err := writePNG(path, img); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("manifest: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("manifest: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("manifest: close %s: %w", path, err)
	}
	return nil
}
