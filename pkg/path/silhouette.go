package path

import "teeforge/pkg/geom"

// Silhouette describes a garment outline in unit coordinates, where the
// canvas spans 0..1 on both axes.
type Silhouette struct {
	Name string

	// BodyHalf is half the torso width.
	BodyHalf float64
	// SleeveReach is how far the sleeve tip sits from the center line.
	SleeveReach float64
	// SleeveDrop is the sleeve tip's y.
	SleeveDrop float64
	// Hem is the bottom edge's y.
	Hem float64
	// VNeck cuts a V instead of a crew curve.
	VNeck bool
}

// DefaultSilhouette is used for unknown names.
const DefaultSilhouette = "crew"

var silhouettes = map[string]Silhouette{
	"crew":  {Name: "crew", BodyHalf: 0.30, SleeveReach: 0.48, SleeveDrop: 0.32, Hem: 0.96},
	"slim":  {Name: "slim", BodyHalf: 0.25, SleeveReach: 0.43, SleeveDrop: 0.32, Hem: 0.96},
	"boxy":  {Name: "boxy", BodyHalf: 0.36, SleeveReach: 0.49, SleeveDrop: 0.40, Hem: 0.92},
	"vneck": {Name: "vneck", BodyHalf: 0.30, SleeveReach: 0.48, SleeveDrop: 0.32, Hem: 0.96, VNeck: true},
}

// LookupSilhouette returns the named silhouette, falling back to crew.
func LookupSilhouette(name string) Silhouette {
	if s, ok := silhouettes[name]; ok {
		return s
	}
	return silhouettes[DefaultSilhouette]
}

// Path returns the outline scaled into r.
func (s Silhouette) Path(r geom.Rect) *geom.Path {
	const (
		neckHalf   = 0.12
		neckTop    = 0.06
		shoulderY  = 0.10
		armpitY    = 0.34
		sleeveCuff = 0.08
	)

	b := NewBuilder()
	pt := func(x, y float64) (float64, float64) {
		return r.X + x*r.Width, r.Y + y*r.Height
	}
	line := func(x, y float64) {
		b.LineTo(pt(x, y))
	}

	b.MoveTo(pt(0.5+neckHalf, neckTop))
	line(0.5+s.BodyHalf-0.02, shoulderY)
	line(0.5+s.SleeveReach, s.SleeveDrop)
	line(0.5+s.SleeveReach-sleeveCuff, s.SleeveDrop+sleeveCuff)
	line(0.5+s.BodyHalf, armpitY)
	line(0.5+s.BodyHalf, s.Hem)
	line(0.5-s.BodyHalf, s.Hem)
	line(0.5-s.BodyHalf, armpitY)
	line(0.5-s.SleeveReach+sleeveCuff, s.SleeveDrop+sleeveCuff)
	line(0.5-s.SleeveReach, s.SleeveDrop)
	line(0.5-s.BodyHalf+0.02, shoulderY)
	line(0.5-neckHalf, neckTop)

	if s.VNeck {
		line(0.5, 0.22)
		line(0.5+neckHalf, neckTop)
	} else {
		cx, cy := pt(0.5, 0.18)
		ex, ey := pt(0.5+neckHalf, neckTop)
		b.QuadTo(cx, cy, ex, ey)
	}
	return b.Close().Build()
}
