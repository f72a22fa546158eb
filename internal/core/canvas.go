package core

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/fogleman/gg"
)

// Vec is a sub-pixel position used for shapes that rotate or scale.
type Vec struct {
	X, Y float64
}

// Label is a line of text anchored on the canvas. Text lives in its own layer
// because a terminal cannot show pixel fonts at game resolution; the presenter
// stamps labels over the downsampled pixels.
type Label struct {
	X, Y  int // Center of the text, in canvas pixels
	Text  string
	Color color.RGBA
}

// Canvas is the bitmap surface games render onto. Rectangles are copied
// straight into the raster; other shapes go through a gg path context and
// cover a pixel when at least half of it is inside the shape, so edges stay
// hard and every pixel holds an exact palette color. Everything outside the
// bounds is clipped silently.
//
// Shapes drawn with Vec coordinates honor the current transform (Translate,
// Rotate, Push, Pop). FillRect and labels always use canvas pixels.
type Canvas struct {
	img        *image.RGBA
	mask       *image.RGBA
	dc         *gg.Context
	background color.RGBA
	labels     []Label
}

// coverage is the mask alpha from which a pixel counts as inside a shape.
const coverage = 0x80

// NewCanvas allocates a cleared canvas of the given size in pixels.
func NewCanvas(width, height int) *Canvas {
	bounds := image.Rect(0, 0, width, height)
	mask := image.NewRGBA(bounds)
	dc := gg.NewContextForRGBA(mask)
	dc.SetColor(color.White)
	dc.SetLineCap(gg.LineCapRound)
	return &Canvas{
		img:  image.NewRGBA(bounds),
		mask: mask,
		dc:   dc,
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Clear resets every pixel to transparent, drops all labels and resets the
// transform.
func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	c.background = color.RGBA{}
	c.labels = c.labels[:0]
	c.dc.Identity()
}

// Fill paints the whole canvas and records the color as background.
func (c *Canvas) Fill(col color.RGBA) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
	c.background = col
}

// Background returns the color of the last Fill.
func (c *Canvas) Background() color.RGBA {
	return c.background
}

// FillRect paints an axis-aligned rectangle.
func (c *Canvas) FillRect(r Rect, col color.RGBA) {
	dst := image.Rect(r.X, r.Y, r.Right(), r.Bottom()).Intersect(c.img.Bounds())
	if dst.Empty() {
		return
	}
	draw.Draw(c.img, dst, &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// Push saves the current transform.
func (c *Canvas) Push() {
	c.dc.Push()
}

// Pop restores the transform saved by the matching Push.
func (c *Canvas) Pop() {
	c.dc.Pop()
}

// Translate moves the origin of later shapes by (x, y).
func (c *Canvas) Translate(x, y float64) {
	c.dc.Translate(x, y)
}

// Rotate turns later shapes by angle radians around the current origin.
func (c *Canvas) Rotate(angle float64) {
	c.dc.Rotate(angle)
}

// FillCircle paints a disc centered at center.
func (c *Canvas) FillCircle(center Vec, radius float64, col color.RGBA) {
	box := [2]Vec{{center.X - radius, center.Y - radius}, {center.X + radius, center.Y + radius}}
	c.paint(box, col, func(dc *gg.Context) {
		dc.DrawCircle(center.X, center.Y, radius)
		dc.Fill()
	})
}

// FillTriangle paints the triangle a-b-d, regardless of winding.
func (c *Canvas) FillTriangle(a, b, d Vec, col color.RGBA) {
	box := [2]Vec{
		{math.Min(a.X, math.Min(b.X, d.X)), math.Min(a.Y, math.Min(b.Y, d.Y))},
		{math.Max(a.X, math.Max(b.X, d.X)), math.Max(a.Y, math.Max(b.Y, d.Y))},
	}
	c.paint(box, col, func(dc *gg.Context) {
		dc.MoveTo(a.X, a.Y)
		dc.LineTo(b.X, b.Y)
		dc.LineTo(d.X, d.Y)
		dc.ClosePath()
		dc.Fill()
	})
}

// Line strokes a segment with the given width and round caps.
func (c *Canvas) Line(a, b Vec, width float64, col color.RGBA) {
	half := width / 2
	box := [2]Vec{
		{math.Min(a.X, b.X) - half, math.Min(a.Y, b.Y) - half},
		{math.Max(a.X, b.X) + half, math.Max(a.Y, b.Y) + half},
	}
	c.paint(box, col, func(dc *gg.Context) {
		dc.SetLineWidth(width)
		dc.DrawLine(a.X, a.Y, b.X, b.Y)
		dc.Stroke()
	})
}

// DrawLabel adds centered text at (x, y).
func (c *Canvas) DrawLabel(x, y int, text string, col color.RGBA) {
	c.labels = append(c.labels, Label{X: x, Y: y, Text: text, Color: col})
}

// Labels returns the text layer in drawing order.
func (c *Canvas) Labels() []Label {
	return c.labels
}

// At returns the pixel at (x, y); transparent when out of bounds.
func (c *Canvas) At(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(c.img.Bounds()) {
		return color.RGBA{}
	}
	return c.img.RGBAAt(x, y)
}

// Image exposes the backing raster for export.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Scaled returns a nearest-neighbour copy of the canvas at width x height.
func (c *Canvas) Scaled(width, height int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 || c.Width() == 0 || c.Height() == 0 {
		return out
	}
	for y := 0; y < height; y++ {
		sy := y * c.Height() / height
		for x := 0; x < width; x++ {
			sx := x * c.Width() / width
			out.SetRGBA(x, y, c.img.RGBAAt(sx, sy))
		}
	}
	return out
}

// paint renders one shape into the mask and copies the covered pixels into
// the raster in col. box is the shape's extent before the transform; only
// its transformed bounding box is cleared and scanned.
func (c *Canvas) paint(box [2]Vec, col color.RGBA, shape func(dc *gg.Context)) {
	area := c.deviceBounds(box)
	if area.Empty() {
		return
	}
	draw.Draw(c.mask, area, image.Transparent, image.Point{}, draw.Src)
	shape(c.dc)

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			if c.mask.RGBAAt(x, y).A >= coverage {
				c.img.SetRGBA(x, y, col)
			}
		}
	}
}

// deviceBounds maps a local box through the transform and returns the pixel
// rectangle covering it, padded by one pixel and clipped to the canvas.
func (c *Canvas) deviceBounds(box [2]Vec) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, corner := range [4]Vec{box[0], {box[1].X, box[0].Y}, {box[0].X, box[1].Y}, box[1]} {
		x, y := c.dc.TransformPoint(corner.X, corner.Y)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	r := image.Rect(
		int(math.Floor(minX))-1, int(math.Floor(minY))-1,
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	)
	return r.Intersect(c.img.Bounds())
}
