package preview

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teeforge/pkg/geom"
	"teeforge/pkg/imageio"
)

func newSource(w, h int) *imageio.Source {
	return imageio.FromImage(image.NewNRGBA(image.Rect(0, 0, w, h)), "design.png")
}

func drag(c *Compositor, layer Layer, from, to geom.Point) {
	c.PointerDown(layer, from)
	c.PointerMove(layer, to)
	c.PointerUp(layer)
}

func TestUploadDragZoomScenario(t *testing.T) {
	c := New()
	c.SetImage(newSource(100, 100))

	drag(c, LayerImage, geom.Pt(200, 150), geom.Pt(240, 130))
	assert.True(t, c.Wheel(120, false))
	assert.True(t, c.Wheel(120, false))

	assert.Equal(t, ImageTransform{X: 40, Y: -20, Scale: 0.8, Rotation: 0}, c.ImageTransform())
}

func TestDragIsLinear(t *testing.T) {
	c := New()
	c.SetImage(newSource(10, 10))
	drag(c, LayerImage, geom.Pt(0, 0), geom.Pt(7, 9))

	// Second session starts from (7,9).
	require.True(t, c.PointerDown(LayerImage, geom.Pt(100, 100)))
	c.PointerMove(LayerImage, geom.Pt(130, 50))
	c.PointerMove(LayerImage, geom.Pt(100+5, 100-3))
	assert.Equal(t, geom.Pt(12, 6), c.ImageTransform().Position())
}

func TestNewImageResets(t *testing.T) {
	c := New()
	c.SetImage(newSource(10, 10))
	c.SetText("HELLO")
	drag(c, LayerImage, geom.Pt(0, 0), geom.Pt(30, 30))
	drag(c, LayerText, geom.Pt(0, 0), geom.Pt(-5, 8))
	c.Wheel(1, false)
	c.Wheel(1, true)
	c.Save()

	c.SetImage(newSource(10, 10))

	assert.Equal(t, ImageTransform{Scale: 1}, c.ImageTransform())
	assert.Equal(t, TextTransform{}, c.TextTransform())
	assert.Equal(t, Editable, c.Lock())
}

func TestSameImageIdentityDoesNotReset(t *testing.T) {
	c := New()
	src := newSource(10, 10)
	c.SetImage(src)
	drag(c, LayerImage, geom.Pt(0, 0), geom.Pt(3, 3))
	c.Save()

	c.SetImage(src)
	assert.Equal(t, geom.Pt(3, 3), c.ImageTransform().Position())
	assert.Equal(t, Committed, c.Lock())
}

func TestClearingImageResets(t *testing.T) {
	c := New()
	c.SetImage(newSource(10, 10))
	drag(c, LayerImage, geom.Pt(0, 0), geom.Pt(3, 3))

	c.SetImage(nil)
	assert.Nil(t, c.Image())
	assert.Equal(t, ImageTransform{Scale: 1}, c.ImageTransform())
	assert.Nil(t, c.Scene().Image)
}

func TestLockToggleKeepsTransforms(t *testing.T) {
	c := New()
	c.SetImage(newSource(10, 10))
	c.SetText("A\nB")
	drag(c, LayerImage, geom.Pt(0, 0), geom.Pt(11, -4))
	drag(c, LayerText, geom.Pt(0, 0), geom.Pt(6, 2))
	c.Wheel(-1, false)
	c.Wheel(-1, true)

	img, txt := c.ImageTransform(), c.TextTransform()
	c.Save()
	c.Edit()

	assert.Equal(t, img, c.ImageTransform())
	assert.Equal(t, txt, c.TextTransform())
}

func TestLockedIgnoresGestures(t *testing.T) {
	c := New()
	c.SetImage(newSource(10, 10))
	c.SetText("HI")
	drag(c, LayerImage, geom.Pt(0, 0), geom.Pt(5, 5))
	before := c.ImageTransform()

	c.Save()
	assert.False(t, c.PointerDown(LayerImage, geom.Pt(10, 10)))
	assert.False(t, c.PointerMove(LayerImage, geom.Pt(90, 90)))
	assert.False(t, c.Wheel(1, false))
	assert.False(t, c.Wheel(1, true))
	assert.False(t, c.PointerDown(LayerText, geom.Pt(0, 0)))
	assert.False(t, c.PointerMove(LayerText, geom.Pt(40, 40)))

	assert.Equal(t, before, c.ImageTransform())
	assert.Equal(t, TextTransform{}, c.TextTransform())
}

func TestLockDuringDragFreezesLayer(t *testing.T) {
	c := New()
	c.SetImage(newSource(10, 10))
	require.True(t, c.PointerDown(LayerImage, geom.Pt(0, 0)))
	c.PointerMove(LayerImage, geom.Pt(4, 4))

	c.Save()
	assert.False(t, c.PointerMove(LayerImage, geom.Pt(50, 50)))
	assert.Equal(t, geom.Pt(4, 4), c.ImageTransform().Position())
}

func TestNoImageIgnoresImageGestures(t *testing.T) {
	c := New()
	assert.False(t, c.PointerDown(LayerImage, geom.Pt(0, 0)))
	assert.False(t, c.Wheel(1, false))
	assert.False(t, c.Wheel(1, true))
	assert.Equal(t, ImageTransform{Scale: 1}, c.ImageTransform())

	// The text layer does not need an image.
	c.SetText("solo")
	drag(c, LayerText, geom.Pt(0, 0), geom.Pt(2, 2))
	assert.Equal(t, TextTransform{X: 2, Y: 2}, c.TextTransform())
}

func TestTextChangeMidImageDrag(t *testing.T) {
	c := New()
	c.SetImage(newSource(10, 10))
	c.SetText("first")
	drag(c, LayerText, geom.Pt(0, 0), geom.Pt(9, 9))

	require.True(t, c.PointerDown(LayerImage, geom.Pt(0, 0)))
	c.PointerMove(LayerImage, geom.Pt(20, 10))
	c.SetText("second")
	c.PointerMove(LayerImage, geom.Pt(25, 15))

	assert.Equal(t, geom.Pt(25, 15), c.ImageTransform().Position())
	assert.True(t, c.Dragging(LayerImage))
	assert.Equal(t, TextTransform{}, c.TextTransform())
}

func TestTextResetClosesTextDrag(t *testing.T) {
	c := New()
	c.SetText("a")
	require.True(t, c.PointerDown(LayerText, geom.Pt(0, 0)))
	c.SetText("ab")

	assert.False(t, c.Dragging(LayerText))
	assert.False(t, c.PointerMove(LayerText, geom.Pt(30, 30)))
}

func TestHiddenTextChangeKeepsOffset(t *testing.T) {
	c := New()
	c.SetText("A\nB\nC")
	drag(c, LayerText, geom.Pt(0, 0), geom.Pt(4, 4))

	c.SetText("A\nB\nC\nD")
	assert.Equal(t, TextTransform{X: 4, Y: 4}, c.TextTransform())
	assert.Equal(t, []string{"A", "B", "C"}, c.TextLines())
	assert.Equal(t, "A\nB\nC\nD", c.Text())
}

func TestReleaseThenMove(t *testing.T) {
	tests := []struct {
		name    string
		release func(*Compositor, Layer)
	}{
		{"pointer up", (*Compositor).PointerUp},
		{"pointer leave", (*Compositor).PointerLeave},
		{"touch end", (*Compositor).TouchEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.SetImage(newSource(10, 10))
			c.SetText("x")

			for _, layer := range []Layer{LayerImage, LayerText} {
				require.True(t, c.PointerDown(layer, geom.Pt(0, 0)))
				c.PointerMove(layer, geom.Pt(3, 3))
				tt.release(c, layer)
				assert.False(t, c.PointerMove(layer, geom.Pt(60, 60)))
			}
			assert.Equal(t, geom.Pt(3, 3), c.ImageTransform().Position())
			assert.Equal(t, TextTransform{X: 3, Y: 3}, c.TextTransform())
		})
	}
}

func TestTouchUsesFirstFinger(t *testing.T) {
	c := New()
	c.SetImage(newSource(10, 10))

	assert.False(t, c.TouchStart(LayerImage, nil))
	require.True(t, c.TouchStart(LayerImage, []geom.Point{{X: 10, Y: 10}, {X: 500, Y: 500}}))
	assert.False(t, c.TouchMove(LayerImage, nil))
	require.True(t, c.TouchMove(LayerImage, []geom.Point{{X: 14, Y: 7}, {X: 0, Y: 0}}))
	c.TouchEnd(LayerImage)

	assert.Equal(t, geom.Pt(4, -3), c.ImageTransform().Position())
}

func TestUnknownLayerIsIgnored(t *testing.T) {
	c := New()
	assert.False(t, c.PointerDown(LayerNone, geom.Pt(0, 0)))
	assert.False(t, c.PointerMove(LayerNone, geom.Pt(1, 1)))
	c.PointerUp(LayerNone)
	assert.False(t, c.Dragging(LayerNone))
}

func TestStyleFallback(t *testing.T) {
	c := New()
	assert.Equal(t, "classic", c.Style().ID)

	c.SetStyle("oversized")
	assert.Equal(t, "Oversized", c.Scene().Style.Name)

	c.SetStyle("does-not-exist")
	assert.Equal(t, "classic", c.Style().ID)
}
