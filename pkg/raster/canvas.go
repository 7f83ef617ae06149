// Package raster draws preview scenes into RGBA images and encodes them.
package raster

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"teeforge/pkg/geom"
	pathpkg "teeforge/pkg/path"
)

// Canvas represents a drawing surface for rasterization.
type Canvas struct {
	img    *image.RGBA
	width  int
	height int

	background color.Color
}

// NewCanvas creates a new canvas filled with white.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		width:      width,
		height:     height,
		background: color.White,
	}
	c.Clear()
	return c
}

// Image returns the underlying RGBA image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	xdraw.Draw(c.img, c.img.Bounds(), &image.Uniform{c.background}, image.Point{}, xdraw.Src)
}

// SetBackground sets the background color used by Clear.
func (c *Canvas) SetBackground(col color.Color) {
	c.background = col
}

// Fill fills a path with col under the non-zero rule.
func (c *Canvas) Fill(path *geom.Path, col color.Color) {
	if path.IsEmpty() {
		return
	}

	r := vector.NewRasterizer(c.width, c.height)
	pathpkg.ToVector(path, r)
	r.Draw(c.img, c.img.Bounds(), &image.Uniform{col}, image.Point{})
}

// Stroke outlines a path with round joins. Each piece is filled on its
// own so overlapping pieces never cancel out.
func (c *Canvas) Stroke(path *geom.Path, col color.Color, width float64) {
	if path.IsEmpty() || width <= 0 {
		return
	}
	half := width / 2

	for _, pl := range pathpkg.Flatten(path) {
		pts := pl.Points
		if pl.Closed {
			pts = append(pts, pts[0])
		}
		for i := 1; i < len(pts); i++ {
			if seg := segmentQuad(pts[i-1], pts[i], half); seg != nil {
				c.Fill(seg, col)
			}
		}
		for _, p := range pts {
			c.Fill(pathpkg.NewBuilder().Circle(p.X, p.Y, half).Build(), col)
		}
	}
}

// segmentQuad returns the rectangle covering a line of half-width hw, or
// nil for a zero-length segment.
func segmentQuad(a, b geom.Point, hw float64) *geom.Path {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}
	n := geom.Pt(-dy/length*hw, dx/length*hw)

	p := geom.NewPath()
	p.Polygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
	return p
}

// DrawLine draws a line between two points.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float64, col color.Color, width float64) {
	path := geom.NewPath()
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	c.Stroke(path, col, width)
}

// DrawRoundRect fills and optionally outlines a rounded rectangle.
func (c *Canvas) DrawRoundRect(r geom.Rect, radius float64, fillColor, strokeColor color.Color, strokeWidth float64) {
	path := pathpkg.NewBuilder().RoundRect(r, radius).Build()

	if fillColor != nil {
		c.Fill(path, fillColor)
	}
	if strokeColor != nil && strokeWidth > 0 {
		c.Stroke(path, strokeColor, strokeWidth)
	}
}

// DrawCircle draws a circle.
func (c *Canvas) DrawCircle(cx, cy, r float64, fillColor, strokeColor color.Color, strokeWidth float64) {
	path := pathpkg.NewBuilder().Circle(cx, cy, r).Build()

	if fillColor != nil {
		c.Fill(path, fillColor)
	}
	if strokeColor != nil && strokeWidth > 0 {
		c.Stroke(path, strokeColor, strokeWidth)
	}
}

// SetPixel sets a single pixel.
func (c *Canvas) SetPixel(x, y int, col color.Color) {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		c.img.Set(x, y, col)
	}
}

// GetPixel gets a pixel color.
func (c *Canvas) GetPixel(x, y int) color.Color {
	if x >= 0 && x < c.width && y >= 0 && y < c.height {
		return c.img.At(x, y)
	}
	return color.Transparent
}

// DrawImage draws an image at the given position.
func (c *Canvas) DrawImage(img image.Image, x, y int) {
	b := img.Bounds()
	xdraw.Draw(c.img, image.Rect(x, y, x+b.Dx(), y+b.Dy()), img, b.Min, xdraw.Over)
}

// DrawImageTransformed composites img through m, which maps image pixels
// (origin at the image's top-left) to canvas pixels.
func (c *Canvas) DrawImageTransformed(img image.Image, m geom.Matrix) {
	b := img.Bounds()
	s2d := geom.Translate(-float64(b.Min.X), -float64(b.Min.Y)).Multiply(m)
	xdraw.CatmullRom.Transform(c.img, s2d.Aff3(), img, b, xdraw.Over, nil)
}

// DrawText draws s with its left edge at x and baseline at y.
func (c *Canvas) DrawText(face font.Face, s string, x, y float64, col color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  &image.Uniform{col},
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))},
	}
	d.DrawString(s)
}

// MeasureText returns the advance width of s in pixels.
func MeasureText(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}
