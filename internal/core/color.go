package core

import (
	"fmt"
	"image/color"
)

// Palette used by the games. Values follow the CSS named colors.
var (
	ColorBlack  = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	ColorWhite  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorLime   = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	ColorRed    = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	ColorGreen  = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	ColorBlue   = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
	ColorYellow = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	ColorGray   = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

// Hex formats a color as #rrggbb, the form lipgloss accepts.
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses #rgb or #rrggbb into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("bad length %d", len(s))
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return c, nil
}
