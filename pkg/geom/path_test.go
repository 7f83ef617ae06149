package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathContains(t *testing.T) {
	p := NewPath()
	p.Polygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))

	assert.True(t, p.Contains(Pt(5, 5)))
	assert.False(t, p.Contains(Pt(15, 5)))
	assert.False(t, p.Contains(Pt(5, -1)))
}

func TestPathTransformedContains(t *testing.T) {
	p := NewPath()
	p.Polygon(Pt(-5, -1), Pt(5, -1), Pt(5, 1), Pt(-5, 1))

	rotated := p.Transform(Compose(0, 0, 1, 90))
	assert.True(t, rotated.Contains(Pt(0, 4)))
	assert.False(t, rotated.Contains(Pt(4, 0)))
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	assert.Equal(t, Rect{}, p.Bounds())
	assert.True(t, p.IsEmpty())

	p.MoveTo(1, 2)
	p.CurveTo(0, 0, 8, 9, 4, 4)
	p.Close()
	assert.Equal(t, NewRect(0, 0, 8, 9), p.Bounds())
	assert.Equal(t, Pt(1, 2), p.CurrentPoint())

	p.Clear()
	assert.True(t, p.IsEmpty())
}
