// Package path builds the outlines the preview rasterizer fills: rounded
// label boxes, ellipses and the garment silhouettes.
package path

import (
	"math"

	"teeforge/pkg/geom"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498307936

// ToVector feeds p into a golang.org/x/image/vector rasterizer.
func ToVector(p *geom.Path, rasterizer *vector.Rasterizer) {
	for _, seg := range p.Segments {
		switch seg.Op {
		case geom.PathOpMoveTo:
			if len(seg.Points) >= 1 {
				rasterizer.MoveTo(
					float32(seg.Points[0].X),
					float32(seg.Points[0].Y),
				)
			}
		case geom.PathOpLineTo:
			if len(seg.Points) >= 1 {
				rasterizer.LineTo(
					float32(seg.Points[0].X),
					float32(seg.Points[0].Y),
				)
			}
		case geom.PathOpCurveTo:
			if len(seg.Points) >= 3 {
				rasterizer.CubeTo(
					float32(seg.Points[0].X), float32(seg.Points[0].Y),
					float32(seg.Points[1].X), float32(seg.Points[1].Y),
					float32(seg.Points[2].X), float32(seg.Points[2].Y),
				)
			}
		case geom.PathOpClose:
			rasterizer.ClosePath()
		}
	}
}

// Builder provides a fluent interface for building paths.
type Builder struct {
	path *geom.Path
}

// NewBuilder creates a new path builder.
func NewBuilder() *Builder {
	return &Builder{path: geom.NewPath()}
}

// MoveTo starts a new subpath.
func (b *Builder) MoveTo(x, y float64) *Builder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to the given point.
func (b *Builder) LineTo(x, y float64) *Builder {
	b.path.LineTo(x, y)
	return b
}

// CurveTo draws a cubic Bezier curve.
func (b *Builder) CurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) *Builder {
	b.path.CurveTo(cp1x, cp1y, cp2x, cp2y, x, y)
	return b
}

// QuadTo draws a quadratic Bezier curve, raised to a cubic.
func (b *Builder) QuadTo(cpx, cpy, x, y float64) *Builder {
	cur := b.path.CurrentPoint()
	b.path.CurveTo(
		cur.X+2.0/3.0*(cpx-cur.X), cur.Y+2.0/3.0*(cpy-cur.Y),
		x+2.0/3.0*(cpx-x), y+2.0/3.0*(cpy-y),
		x, y,
	)
	return b
}

// Close closes the current subpath.
func (b *Builder) Close() *Builder {
	b.path.Close()
	return b
}

// Rect adds a rectangle to the path.
func (b *Builder) Rect(r geom.Rect) *Builder {
	for i, c := range r.Corners() {
		if i == 0 {
			b.MoveTo(c.X, c.Y)
		} else {
			b.LineTo(c.X, c.Y)
		}
	}
	return b.Close()
}

// RoundRect adds a rectangle with corner radius rad. The radius is clamped
// to half the shorter side.
func (b *Builder) RoundRect(r geom.Rect, rad float64) *Builder {
	rad = math.Max(0, math.Min(rad, math.Min(r.Width, r.Height)/2))
	if rad == 0 {
		return b.Rect(r)
	}

	x, y, w, h := r.X, r.Y, r.Width, r.Height
	k := rad * kappa

	b.MoveTo(x+rad, y)
	b.LineTo(x+w-rad, y)
	b.CurveTo(x+w-rad+k, y, x+w, y+rad-k, x+w, y+rad)
	b.LineTo(x+w, y+h-rad)
	b.CurveTo(x+w, y+h-rad+k, x+w-rad+k, y+h, x+w-rad, y+h)
	b.LineTo(x+rad, y+h)
	b.CurveTo(x+rad-k, y+h, x, y+h-rad+k, x, y+h-rad)
	b.LineTo(x, y+rad)
	b.CurveTo(x, y+rad-k, x+rad-k, y, x+rad, y)
	return b.Close()
}

// Circle adds a circle to the path.
func (b *Builder) Circle(cx, cy, r float64) *Builder {
	return b.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse to the path.
func (b *Builder) Ellipse(cx, cy, rx, ry float64) *Builder {
	kx, ky := rx*kappa, ry*kappa

	b.MoveTo(cx+rx, cy)
	b.CurveTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	b.CurveTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	b.CurveTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	b.CurveTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	return b.Close()
}

// Arc adds an open circular arc from startAngle to endAngle (radians,
// clockwise in canvas space).
func (b *Builder) Arc(cx, cy, r, startAngle, endAngle float64) *Builder {
	segments := int(math.Ceil(math.Abs(endAngle-startAngle) / (math.Pi / 2)))
	if segments < 1 {
		segments = 1
	}
	step := (endAngle - startAngle) / float64(segments)
	k := 4.0 / 3.0 * math.Tan(step/4)

	x := cx + r*math.Cos(startAngle)
	y := cy + r*math.Sin(startAngle)
	b.MoveTo(x, y)

	for i := 0; i < segments; i++ {
		a1 := startAngle + float64(i)*step
		a2 := a1 + step
		x2 := cx + r*math.Cos(a2)
		y2 := cy + r*math.Sin(a2)

		b.CurveTo(
			x-k*r*math.Sin(a1), y+k*r*math.Cos(a1),
			x2+k*r*math.Sin(a2), y2-k*r*math.Cos(a2),
			x2, y2,
		)
		x, y = x2, y2
	}
	return b
}

// Build returns the constructed path.
func (b *Builder) Build() *geom.Path {
	return b.path
}

// Clear resets the builder for reuse.
func (b *Builder) Clear() *Builder {
	b.path.Clear()
	return b
}
