package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertPoint(t *testing.T, want, got Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, "x")
	assert.InDelta(t, want.Y, got.Y, 1e-9, "y")
}

func TestComposeOrder(t *testing.T) {
	tests := []struct {
		name                string
		x, y, scale, degree float64
		in, want            Point
	}{
		{"identity", 0, 0, 1, 0, Pt(3, 4), Pt(3, 4)},
		{"origin lands on translation", 40, -20, 0.8, 35, Pt(0, 0), Pt(40, -20)},
		{"scale after rotate", 10, 20, 2, 90, Pt(1, 0), Pt(10, 22)},
		{"translation is not scaled", 5, 5, 2, 0, Pt(1, 1), Pt(7, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Compose(tt.x, tt.y, tt.scale, tt.degree)
			assertPoint(t, tt.want, m.TransformPoint(tt.in))
		})
	}
}

func TestComposeRotationIsPeriodic(t *testing.T) {
	a := Compose(1, 2, 1.5, 15)
	b := Compose(1, 2, 1.5, 15+360*4)
	for i := range a {
		assert.InDelta(t, a[i], b[i], 1e-9)
	}
}

func TestAboutKeepsOriginFixed(t *testing.T) {
	center := Pt(50, 30)
	m := Compose(0, 0, 2, 45).About(center)
	assertPoint(t, center, m.TransformPoint(center))
}

func TestInverse(t *testing.T) {
	m := Compose(12, -7, 0.3, 77)
	p := Pt(9, 4)
	assertPoint(t, p, m.Inverse().TransformPoint(m.TransformPoint(p)))
	assert.Equal(t, Identity(), Scale(0, 0).Inverse())
}

func TestAff3(t *testing.T) {
	m := Compose(3, 4, 2, 30)
	a := m.Aff3()
	x, y := m.Transform(5, 6)
	assert.InDelta(t, x, a[0]*5+a[1]*6+a[2], 1e-9)
	assert.InDelta(t, y, a[3]*5+a[4]*6+a[5], 1e-9)
}

func TestCSS(t *testing.T) {
	assert.Equal(t, "translate(40px, -20px) scale(0.8) rotate(0deg)", CSS(40, -20, 0.8, 0))
	assert.Equal(t, "translate(0px, 0px) scale(1) rotate(-725deg)", CSS(0, 0, 1, -725))
}

func TestRectTransformBounds(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	got := r.Transform(Compose(0, 0, 1, 90))
	assert.InDelta(t, -10, got.X, 1e-9)
	assert.InDelta(t, 10, got.Width, 1e-9)
	assert.InDelta(t, 10, got.Height, 1e-9)
	assert.Equal(t, Pt(5, 5), r.Center())
}
