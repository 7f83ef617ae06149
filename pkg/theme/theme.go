// Package theme defines the application color themes and the cycling
// shortcut that switches between them.
package theme

import (
	"fmt"
	"image/color"
	"strings"
)

// Theme is one of the application palettes.
type Theme int

const (
	Light Theme = iota
	Dark
	Colorful
)

// All lists the themes in cycling order.
var All = []Theme{Light, Dark, Colorful}

func (t Theme) String() string {
	switch t {
	case Dark:
		return "dark"
	case Colorful:
		return "colorful"
	default:
		return "light"
	}
}

// Next returns the theme after t, wrapping around.
func (t Theme) Next() Theme {
	for i, v := range All {
		if v == t {
			return All[(i+1)%len(All)]
		}
	}
	return Light
}

// IsDark reports whether the palette uses light text on dark surfaces.
func (t Theme) IsDark() bool {
	return t == Dark
}

// Parse converts a theme name into a Theme.
func Parse(name string) (Theme, error) {
	for _, t := range All {
		if strings.EqualFold(name, t.String()) {
			return t, nil
		}
	}
	return Light, fmt.Errorf("unknown theme %q", name)
}

// Palette holds the colors a theme paints with.
type Palette struct {
	Background color.NRGBA
	Header     color.NRGBA
	Card       color.NRGBA
	Input      color.NRGBA
	Button     color.NRGBA
	Foreground color.NRGBA
	Accent     color.NRGBA
}

// Palette returns the colors for t.
func (t Theme) Palette() Palette {
	switch t {
	case Dark:
		return Palette{
			Background: rgb(0x1f2937),
			Header:     rgb(0x67e8f9),
			Card:       rgba(0x1f2937, 0xcc),
			Input:      rgba(0x374151, 0xcc),
			Button:     rgb(0x06b6d4),
			Foreground: rgb(0xf3f4f6),
			Accent:     rgb(0x0e7490),
		}
	case Colorful:
		return Palette{
			Background: rgb(0xe9d5ff),
			Header:     rgb(0xbe185d),
			Card:       rgba(0xffffff, 0xcc),
			Input:      rgba(0xfce7f3, 0xcc),
			Button:     rgb(0xec4899),
			Foreground: rgb(0x111827),
			Accent:     rgb(0xf472b6),
		}
	default:
		return Palette{
			Background: rgb(0xeff6ff),
			Header:     rgb(0x4338ca),
			Card:       rgba(0xffffff, 0xcc),
			Input:      rgba(0xffffff, 0xcc),
			Button:     rgb(0x6366f1),
			Foreground: rgb(0x1f2937),
			Accent:     rgb(0xc7d2fe),
		}
	}
}

func rgb(hex uint32) color.NRGBA {
	return rgba(hex, 0xff)
}

func rgba(hex uint32, a uint8) color.NRGBA {
	return color.NRGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: a}
}
