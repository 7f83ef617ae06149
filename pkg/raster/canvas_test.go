package raster

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"

	"teeforge/pkg/geom"
)

var black = color.RGBA{A: 0xff}

func TestFill(t *testing.T) {
	c := NewCanvas(20, 20)
	p := geom.NewPath()
	p.Polygon(geom.Pt(5, 5), geom.Pt(15, 5), geom.Pt(15, 15), geom.Pt(5, 15))
	c.Fill(p, black)

	assert.Equal(t, black, c.GetPixel(10, 10))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, c.GetPixel(2, 2))
	assert.Equal(t, color.Transparent, c.GetPixel(-1, 40))
}

func TestStrokeClosedPath(t *testing.T) {
	c := NewCanvas(40, 40)
	p := geom.NewPath()
	p.Polygon(geom.Pt(10, 10), geom.Pt(30, 10), geom.Pt(30, 30), geom.Pt(10, 30))
	c.Stroke(p, black, 4)

	assert.Equal(t, black, c.GetPixel(20, 10), "top edge")
	assert.Equal(t, black, c.GetPixel(10, 20), "closing edge")
	assert.Equal(t, black, c.GetPixel(30, 30), "joint")
	assert.NotEqual(t, black, c.GetPixel(20, 20), "interior")
}

func TestDrawImageTransformedOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(50, 50, 60, 60))
	draw.Draw(src, src.Bounds(), &image.Uniform{black}, image.Point{}, draw.Src)

	c := NewCanvas(40, 40)
	c.DrawImageTransformed(src, geom.Translate(5, 5))

	assert.Equal(t, black, c.GetPixel(10, 10))
	assert.NotEqual(t, black, c.GetPixel(20, 20))
}

func TestDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(3, 3, 6, 6))
	draw.Draw(src, src.Bounds(), &image.Uniform{black}, image.Point{}, draw.Src)

	c := NewCanvas(10, 10)
	c.DrawImage(src, 0, 0)
	assert.Equal(t, black, c.GetPixel(2, 2))
	assert.NotEqual(t, black, c.GetPixel(4, 4))
}
