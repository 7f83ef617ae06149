package path

import "teeforge/pkg/geom"

// CurveSteps is the number of chords a cubic is split into when flattened.
const CurveSteps = 16

// Polyline is one flattened subpath.
type Polyline struct {
	Points []geom.Point
	Closed bool
}

// Flatten converts p into polylines, replacing each cubic with chords.
func Flatten(p *geom.Path) []Polyline {
	var (
		out []Polyline
		cur *Polyline
		pen geom.Point
	)
	flush := func() {
		if cur != nil && len(cur.Points) > 1 {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, seg := range p.Segments {
		switch seg.Op {
		case geom.PathOpMoveTo:
			if len(seg.Points) == 0 {
				continue
			}
			flush()
			pen = seg.Points[0]
			cur = &Polyline{Points: []geom.Point{pen}}
		case geom.PathOpLineTo:
			if len(seg.Points) == 0 || cur == nil {
				continue
			}
			pen = seg.Points[0]
			cur.Points = append(cur.Points, pen)
		case geom.PathOpCurveTo:
			if len(seg.Points) < 3 || cur == nil {
				continue
			}
			c1, c2, end := seg.Points[0], seg.Points[1], seg.Points[2]
			for i := 1; i <= CurveSteps; i++ {
				cur.Points = append(cur.Points, cubicAt(pen, c1, c2, end, float64(i)/CurveSteps))
			}
			pen = end
		case geom.PathOpClose:
			if cur != nil {
				cur.Closed = true
				pen = cur.Points[0]
				flush()
			}
		}
	}
	flush()
	return out
}

func cubicAt(p0, p1, p2, p3 geom.Point, t float64) geom.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return geom.Pt(
		a*p0.X+b*p1.X+c*p2.X+d*p3.X,
		a*p0.Y+b*p1.Y+c*p2.Y+d*p3.Y,
	)
}
