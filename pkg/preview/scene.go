package preview

import (
	"math"

	"teeforge/pkg/catalog"
	"teeforge/pkg/geom"
	"teeforge/pkg/imageio"
)

// Layout fractions of the preview canvas.
const (
	imageTopFrac       = 0.25
	imageWidthFrac     = 0.60
	imageMaxHeightFrac = 128.0 / 480.0
	textBottomFrac     = 0.25
	fontSizeFrac       = 20.0 / 480.0
	lineHeightFactor   = 1.2
)

// Layer identifies an input target.
type Layer int

const (
	LayerNone Layer = iota
	LayerImage
	LayerText
)

func (l Layer) String() string {
	switch l {
	case LayerImage:
		return "image"
	case LayerText:
		return "text"
	default:
		return "none"
	}
}

// Action is the button the lock affordance offers.
type Action int

const (
	ActionSave Action = iota
	ActionEdit
)

func (a Action) String() string {
	if a == ActionEdit {
		return "Edit"
	}
	return "Save"
}

// Scene describes one rendered frame, back to front.
type Scene struct {
	Canvas geom.Rect
	Style  catalog.Style
	Image  *ImageLayer // nil without an image
	Text   TextLayer
	Lock   LockState

	// Affordances is nil without an image.
	Affordances *Affordances
}

// ImageLayer is the placed, transformed design image.
type ImageLayer struct {
	Source *imageio.Source

	// Box is the anchor region: top quarter, centered, 60% wide.
	Box geom.Rect
	// Frame is where the untransformed image sits on the canvas.
	Frame geom.Rect

	Transform   ImageTransform
	Matrix      geom.Matrix // image pixels to canvas pixels
	CSS         string
	Transition  Transition
	Interactive bool
}

// Quad returns the transformed image outline on the canvas.
func (l *ImageLayer) Quad() *geom.Path {
	b := l.Source.Image.Bounds()
	p := geom.NewPath()
	p.Polygon(
		geom.Pt(0, 0),
		geom.Pt(float64(b.Dx()), 0),
		geom.Pt(float64(b.Dx()), float64(b.Dy())),
		geom.Pt(0, float64(b.Dy())),
	)
	return p.Transform(l.Matrix)
}

// TextLayer is the stacked text block.
type TextLayer struct {
	Lines      []string
	FontSize   float64
	LineHeight float64

	// Bounds is the full-width block after the offset is applied.
	Bounds      geom.Rect
	Offset      TextTransform
	Transition  Transition
	Interactive bool
}

// LineTop returns the canvas y of line i's box top. Lines are centered
// horizontally by the renderer.
func (l TextLayer) LineTop(i int) float64 {
	return l.Bounds.Y + float64(i)*l.LineHeight
}

// Affordances are the lock-dependent hints and button.
type Affordances struct {
	Hint   string
	Chips  []string
	Action Action
}

var (
	editableAffordances = Affordances{
		Hint:   "Adjust the image, then Save to fix its position.",
		Chips:  []string{"Drag to move", "Scroll to resize", "Alt+Scroll to rotate"},
		Action: ActionSave,
	}
	committedAffordances = Affordances{
		Hint:   "Image position fixed. Edit to adjust again.",
		Action: ActionEdit,
	}
)

func affordancesFor(s LockState) *Affordances {
	a := editableAffordances
	if s == Committed {
		a = committedAffordances
	}
	a.Chips = append([]string(nil), a.Chips...)
	return &a
}

// imageLayout places src inside the anchor box. The image keeps its natural
// size unless it is taller than the max height or wider than the box.
func imageLayout(w, h float64, src *imageio.Source) (box, frame geom.Rect, fit float64) {
	box = geom.Rect{
		X:     w * (1 - imageWidthFrac) / 2,
		Y:     h * imageTopFrac,
		Width: w * imageWidthFrac,
	}

	iw, ih := src.Size()
	if iw == 0 || ih == 0 {
		return box, geom.Rect{X: box.X + box.Width/2, Y: box.Y}, 1
	}

	fit = math.Min(1, math.Min(h*imageMaxHeightFrac/float64(ih), box.Width/float64(iw)))
	fw, fh := float64(iw)*fit, float64(ih)*fit
	box.Height = fh
	frame = geom.Rect{X: box.X + (box.Width-fw)/2, Y: box.Y, Width: fw, Height: fh}
	return box, frame, fit
}

// imageMatrix maps image pixels to canvas pixels: fit into the frame, then
// apply t around the frame center.
func imageMatrix(frame geom.Rect, fit float64, t ImageTransform) geom.Matrix {
	center := geom.Pt(frame.Width/2, frame.Height/2)
	return geom.Scale(fit, fit).
		Multiply(t.Matrix().About(center)).
		Multiply(geom.Translate(frame.X, frame.Y))
}

func textLayout(w, h float64, lines []string, off TextTransform) TextLayer {
	fs := h * fontSizeFrac
	lh := fs * lineHeightFactor
	height := float64(len(lines)) * lh
	return TextLayer{
		Lines:      lines,
		FontSize:   fs,
		LineHeight: lh,
		Bounds: geom.Rect{
			X:      off.X,
			Y:      h*(1-textBottomFrac) - height + off.Y,
			Width:  w,
			Height: height,
		},
		Offset: off,
	}
}

// HitTest returns the topmost layer under p. The text block is drawn above
// the image so it wins where they overlap.
func (s *Scene) HitTest(p geom.Point) Layer {
	if len(s.Text.Lines) > 0 && s.Text.Bounds.Contains(p) {
		return LayerText
	}
	if s.Image != nil && s.Image.Quad().Contains(p) {
		return LayerImage
	}
	return LayerNone
}
