package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"

	"teeforge/pkg/geom"
	pathpkg "teeforge/pkg/path"
	"teeforge/pkg/preview"
)

// Text block styling: bg-white/70 boxes with dark text.
const (
	labelPadX     = 8.0
	labelRadius   = 4.0
	labelOpacity  = 0.7
	silhouetteInk = 0.82
)

var textInk = color.NRGBA{R: 0x11, G: 0x18, B: 0x27, A: 0xff}

// Renderer rasterizes preview scenes. It caches font faces per size and is
// not safe for concurrent use.
type Renderer struct {
	opts  RenderOptions
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewRenderer creates a renderer with the given options.
func NewRenderer(opts RenderOptions) (*Renderer, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	return &Renderer{
		opts:  opts,
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// Options returns the renderer's options.
func (r *Renderer) Options() RenderOptions {
	return r.opts
}

// Render draws s back to front: background, garment, image, text, badge.
func (r *Renderer) Render(s *preview.Scene) (*image.RGBA, error) {
	k := r.opts.Scale
	w := int(math.Ceil(s.Canvas.Width * k))
	h := int(math.Ceil(s.Canvas.Height * k))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", w, h)
	}

	palette := r.opts.Theme.Palette()
	canvas := NewCanvas(w, h)
	if r.opts.Transparent {
		canvas.SetBackground(color.Transparent)
	} else {
		canvas.SetBackground(palette.Background)
	}
	canvas.Clear()

	toCanvas := geom.Scale(k, k)
	full := geom.Rect{Width: s.Canvas.Width, Height: s.Canvas.Height}

	shirt := pathpkg.LookupSilhouette(s.Style.Silhouette).Path(full).Transform(toCanvas)
	canvas.Fill(shirt, r.opts.ShirtColor)
	canvas.Stroke(shirt, Shade(r.opts.ShirtColor, silhouetteInk), 2*k)

	if s.Image != nil && r.opts.RenderImage {
		canvas.DrawImageTransformed(s.Image.Source.Image, s.Image.Matrix.Multiply(toCanvas))
		if r.opts.Guides && s.Image.Interactive {
			canvas.Stroke(s.Image.Quad().Transform(toCanvas), WithAlpha(palette.Button, 0.6), k)
		}
	}

	if r.opts.RenderText && len(s.Text.Lines) > 0 {
		if err := r.drawText(canvas, s.Text, k); err != nil {
			return nil, err
		}
	}

	if r.opts.Guides && s.Lock == preview.Committed {
		if err := r.drawBadge(canvas, palette.Button, k); err != nil {
			return nil, err
		}
	}

	return canvas.Image(), nil
}

func (r *Renderer) drawText(canvas *Canvas, t preview.TextLayer, k float64) error {
	face, err := r.face(t.FontSize * k)
	if err != nil {
		return err
	}

	lh := t.LineHeight * k
	cx := (t.Bounds.X + t.Bounds.Width/2) * k
	box := WithAlpha(color.NRGBA{R: 0xff, G: 0xff, B: 0xff}, labelOpacity)

	for i, line := range t.Lines {
		top := t.LineTop(i) * k
		tw := MeasureText(face, line)
		if line != "" {
			canvas.DrawRoundRect(geom.Rect{
				X:      cx - tw/2 - labelPadX*k,
				Y:      top,
				Width:  tw + 2*labelPadX*k,
				Height: lh,
			}, labelRadius*k, box, nil, 0)
		}
		canvas.DrawText(face, line, cx-tw/2, baseline(face, top, lh), textInk)
	}
	return nil
}

func (r *Renderer) drawBadge(canvas *Canvas, bg color.NRGBA, k float64) error {
	const label = "Locked"

	face, err := r.face(12 * k)
	if err != nil {
		return err
	}
	tw := MeasureText(face, label)
	h := 20 * k
	rect := geom.Rect{
		X:      float64(canvas.Width()) - tw - 2*labelPadX*k - 8*k,
		Y:      8 * k,
		Width:  tw + 2*labelPadX*k,
		Height: h,
	}
	canvas.DrawRoundRect(rect, h/2, bg, nil, 0)
	canvas.DrawText(face, label, rect.X+labelPadX*k, baseline(face, rect.Y, h), Contrast(bg))
	return nil
}

// face returns a cached face for the pixel size.
func (r *Renderer) face(size float64) (font.Face, error) {
	if f, ok := r.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(r.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face: %w", err)
	}
	r.faces[size] = f
	return f, nil
}

// baseline centers the face's ascent+descent inside a row of height h.
func baseline(face font.Face, top, h float64) float64 {
	m := face.Metrics()
	ascent := float64(m.Ascent) / 64
	descent := float64(m.Descent) / 64
	return top + (h-(ascent+descent))/2 + ascent
}
