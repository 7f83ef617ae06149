package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#fff", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#6366f1", color.NRGBA{R: 0x63, G: 0x66, B: 0xf1, A: 0xff}},
		{"ec489980", color.NRGBA{R: 0xec, G: 0x48, B: 0x99, A: 0x80}},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "#12", "#zzzzzz"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestShade(t *testing.T) {
	c := color.NRGBA{R: 200, G: 100, B: 50, A: 255}
	assert.Equal(t, c, Shade(c, 1))

	d := Shade(c, 0.5)
	assert.Equal(t, uint8(100), d.R)
	assert.Equal(t, uint8(50), d.G)
	assert.Equal(t, uint8(25), d.B)
}

func TestContrast(t *testing.T) {
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	assert.Equal(t, white, Contrast(color.NRGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}))
	assert.NotEqual(t, white, Contrast(white))
}

func TestWithAlpha(t *testing.T) {
	assert.Equal(t, uint8(128), WithAlpha(color.NRGBA{}, 0.5).A)
	assert.Equal(t, uint8(255), WithAlpha(color.NRGBA{}, 4).A)
}
