package path

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"teeforge/pkg/geom"
)

var canvas = geom.Rect{Width: 360, Height: 480}

func TestSilhouetteContainsChest(t *testing.T) {
	for _, name := range []string{"crew", "slim", "boxy", "vneck"} {
		t.Run(name, func(t *testing.T) {
			p := LookupSilhouette(name).Path(canvas)
			assert.True(t, p.Contains(geom.Pt(180, 200)), "chest")
			assert.True(t, p.Contains(geom.Pt(180, 440)), "belly")
			assert.False(t, p.Contains(geom.Pt(5, 470)), "outside corner")
			assert.False(t, p.Contains(geom.Pt(180, 10)), "above the collar")
		})
	}
}

func TestSilhouetteWidths(t *testing.T) {
	width := func(name string) float64 {
		return LookupSilhouette(name).Path(canvas).Bounds().Width
	}
	assert.Less(t, width("slim"), width("crew"))
	assert.Greater(t, width("boxy"), width("crew"))
}

func TestVNeckCut(t *testing.T) {
	// Inside the V but below the crew curve.
	at := geom.Pt(180, 0.15*480)
	assert.False(t, LookupSilhouette("vneck").Path(canvas).Contains(at))
	assert.True(t, LookupSilhouette("crew").Path(canvas).Contains(geom.Pt(180, 0.17*480)))
}

func TestUnknownSilhouetteFallsBack(t *testing.T) {
	assert.Equal(t, "crew", LookupSilhouette("raglan").Name)
}
