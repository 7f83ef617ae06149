package raster

import (
	"image/color"

	"teeforge/pkg/theme"
)

// RenderOptions configures rendering behavior.
type RenderOptions struct {
	// Scale multiplies the scene's canvas size.
	// Default: 1.0
	Scale float64

	// Theme picks the background and badge colors.
	// Default: theme.Light
	Theme theme.Theme

	// ShirtColor fills the garment silhouette.
	// Default: white
	ShirtColor color.NRGBA

	// Transparent leaves the background unpainted.
	// Default: false
	Transparent bool

	// RenderText enables the text block.
	// Default: true
	RenderText bool

	// RenderImage enables the design image.
	// Default: true
	RenderImage bool

	// Guides draws the image outline while editable and the lock badge
	// once committed.
	// Default: true
	Guides bool
}

// DefaultRenderOptions returns render options with sensible defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Scale:       1.0,
		Theme:       theme.Light,
		ShirtColor:  color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		RenderText:  true,
		RenderImage: true,
		Guides:      true,
	}
}

// WithScale returns options with the specified scale.
func WithScale(scale float64) RenderOptions {
	opts := DefaultRenderOptions()
	opts.Scale = scale
	return opts
}

// WithTheme returns options with the specified theme.
func WithTheme(t theme.Theme) RenderOptions {
	opts := DefaultRenderOptions()
	opts.Theme = t
	return opts
}
