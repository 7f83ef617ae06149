package preview

import (
	"math"
	"time"
)

// Transition tells the renderer whether to ease into a new transform.
type Transition struct {
	Animate  bool
	Duration time.Duration
	Easing   CubicBezier
}

// CubicBezier is a CSS timing function with control points (X1,Y1), (X2,Y2).
type CubicBezier struct {
	X1, Y1, X2, Y2 float64
}

// Springy is the overshooting curve layers settle with.
var Springy = CubicBezier{0.4, 2, 0.6, 1}

// TransitionDuration is how long a layer eases after a non-drag change.
const TransitionDuration = 100 * time.Millisecond

func transitionFor(dragging bool) Transition {
	if dragging {
		return Transition{}
	}
	return Transition{Animate: true, Duration: TransitionDuration, Easing: Springy}
}

// At returns the eased progress for linear progress x in [0,1].
func (c CubicBezier) At(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	}
	return bezier(c.solve(x), c.Y1, c.Y2)
}

// solve finds the curve parameter whose x coordinate is x.
func (c CubicBezier) solve(x float64) float64 {
	t := x
	for i := 0; i < 8; i++ {
		d := bezier(t, c.X1, c.X2) - x
		if math.Abs(d) < 1e-7 {
			return t
		}
		slope := bezierSlope(t, c.X1, c.X2)
		if math.Abs(slope) < 1e-6 {
			break
		}
		t -= d / slope
	}

	// Newton stalled; bisect.
	lo, hi := 0.0, 1.0
	t = x
	for i := 0; i < 50; i++ {
		v := bezier(t, c.X1, c.X2)
		if math.Abs(v-x) < 1e-7 {
			break
		}
		if v < x {
			lo = t
		} else {
			hi = t
		}
		t = (lo + hi) / 2
	}
	return t
}

// bezier evaluates one coordinate of a curve anchored at 0 and 1.
func bezier(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t
}

func bezierSlope(t, p1, p2 float64) float64 {
	u := 1 - t
	return 3*u*u*p1 + 6*u*t*(p2-p1) + 3*t*t*(1-p2)
}

// Lerp interpolates between two image transforms.
func (t ImageTransform) Lerp(to ImageTransform, k float64) ImageTransform {
	return ImageTransform{
		X:        t.X + (to.X-t.X)*k,
		Y:        t.Y + (to.Y-t.Y)*k,
		Scale:    t.Scale + (to.Scale-t.Scale)*k,
		Rotation: t.Rotation + (to.Rotation-t.Rotation)*k,
	}
}

// Lerp interpolates between two text offsets.
func (t TextTransform) Lerp(to TextTransform, k float64) TextTransform {
	return TextTransform{X: t.X + (to.X-t.X)*k, Y: t.Y + (to.Y-t.Y)*k}
}

// Tween returns a copy of s with each animating layer moved fraction k of
// the way from its position in from. Layers that are dragging, missing from
// from, or showing a different image are returned as they are in s.
func (s *Scene) Tween(from *Scene, k float64) *Scene {
	out := *s
	if from == nil {
		return &out
	}

	if l := s.Image; l != nil && l.Transition.Animate && from.Image != nil &&
		from.Image.Source.ID == l.Source.ID {
		img := *l
		img.Transform = from.Image.Transform.Lerp(l.Transform, k)
		fit := 1.0
		if iw, _ := l.Source.Size(); iw > 0 {
			fit = l.Frame.Width / float64(iw)
		}
		img.Matrix = imageMatrix(l.Frame, fit, img.Transform)
		img.CSS = img.Transform.CSS()
		out.Image = &img
	}

	if s.Text.Transition.Animate && len(s.Text.Lines) > 0 {
		off := from.Text.Offset.Lerp(s.Text.Offset, k)
		out.Text.Bounds.X += off.X - s.Text.Offset.X
		out.Text.Bounds.Y += off.Y - s.Text.Offset.Y
		out.Text.Offset = off
	}
	return &out
}

// Moved reports whether any animating layer sits elsewhere in from, so a
// tween from it would be visible.
func (s *Scene) Moved(from *Scene) bool {
	if from == nil {
		return false
	}
	if l := s.Image; l != nil && l.Transition.Animate && from.Image != nil &&
		from.Image.Source.ID == l.Source.ID && from.Image.Transform != l.Transform {
		return true
	}
	return s.Text.Transition.Animate && len(s.Text.Lines) > 0 && from.Text.Offset != s.Text.Offset
}
