package path

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/vector"

	"teeforge/pkg/geom"
)

func coverage(p *geom.Path, w, h int) int {
	r := vector.NewRasterizer(w, h)
	ToVector(p, r)
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	n := 0
	for _, a := range dst.Pix {
		if a > 127 {
			n++
		}
	}
	return n
}

func TestToVectorFillsRect(t *testing.T) {
	p := NewBuilder().Rect(geom.Rect{X: 2, Y: 2, Width: 10, Height: 10}).Build()
	assert.Equal(t, 100, coverage(p, 20, 20))
}

func TestRoundRect(t *testing.T) {
	r := geom.Rect{X: 0, Y: 0, Width: 40, Height: 20}
	p := NewBuilder().RoundRect(r, 8).Build()

	assert.True(t, p.Contains(geom.Pt(20, 10)))
	assert.True(t, p.Contains(geom.Pt(20, 0.5)))
	assert.False(t, p.Contains(geom.Pt(0.5, 0.5)), "corner is cut")

	// Radius larger than half the short side is clamped to a pill.
	pill := NewBuilder().RoundRect(r, 100).Build()
	b := pill.Bounds()
	assert.InDelta(t, 40, b.Width, 1e-9)
	assert.InDelta(t, 20, b.Height, 1e-9)

	// Zero radius is a plain rectangle.
	sq := NewBuilder().RoundRect(r, 0).Build()
	assert.True(t, sq.Contains(geom.Pt(0.5, 0.5)))
}

func TestEllipseCoverage(t *testing.T) {
	p := NewBuilder().Circle(50, 50, 40).Build()
	want := math.Pi * 40 * 40
	assert.InEpsilon(t, want, float64(coverage(p, 100, 100)), 0.02)
}

func TestQuadTo(t *testing.T) {
	p := NewBuilder().MoveTo(0, 0).QuadTo(5, 10, 10, 0).Build()
	seg := p.Segments[1]
	assert.Equal(t, geom.PathOpCurveTo, seg.Op)
	assert.InDelta(t, 10.0/3, seg.Points[0].X, 1e-9)
	assert.InDelta(t, 20.0/3, seg.Points[0].Y, 1e-9)
	assert.Equal(t, geom.Pt(10, 0), seg.Points[2])
}

func TestArcEndpoints(t *testing.T) {
	p := NewBuilder().Arc(0, 0, 10, 0, math.Pi).Build()
	assert.Len(t, p.Segments, 3)

	end := p.CurrentPoint()
	assert.InDelta(t, -10, end.X, 1e-9)
	assert.InDelta(t, 0, end.Y, 1e-9)
}

func TestClear(t *testing.T) {
	b := NewBuilder().Circle(0, 0, 1)
	assert.True(t, b.Clear().Build().IsEmpty())
}
