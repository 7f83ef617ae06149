package preview

import (
	"math"

	"teeforge/pkg/geom"
	"teeforge/pkg/gesture"
)

// Image layer limits and wheel steps.
const (
	MinScale    = 0.1
	MaxScale    = 2.0
	ScaleStep   = 0.1
	RotateStepD = 5.0
)

// ImageTransform places the image layer. Rotation is in degrees and is
// never wrapped; the composed matrix is periodic so any value renders.
type ImageTransform struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Scale    float64 `json:"scale"`
	Rotation float64 `json:"rotation"`
}

// DefaultImageTransform is the placement of a freshly loaded image.
func DefaultImageTransform() ImageTransform {
	return ImageTransform{Scale: 1}
}

// Position returns the translation part.
func (t ImageTransform) Position() geom.Point {
	return geom.Pt(t.X, t.Y)
}

// Matrix composes translate, scale and rotate in that order.
func (t ImageTransform) Matrix() geom.Matrix {
	return geom.Compose(t.X, t.Y, t.Scale, t.Rotation)
}

// CSS renders the transform as a stylesheet transform list.
func (t ImageTransform) CSS() string {
	return geom.CSS(t.X, t.Y, t.Scale, t.Rotation)
}

// Dragged returns t moved to p.
func (t ImageTransform) Dragged(p geom.Point) ImageTransform {
	t.X, t.Y = p.X, p.Y
	return t
}

// Zoomed returns t after one wheel notch. A positive deltaY shrinks.
func (t ImageTransform) Zoomed(deltaY float64) ImageTransform {
	step := ScaleStep
	if deltaY > 0 {
		step = -ScaleStep
	}
	t.Scale = clamp(roundScale(t.Scale+step), MinScale, MaxScale)
	return t
}

// Rotated returns t after one modified wheel notch. A positive deltaY turns
// counter-clockwise.
func (t ImageTransform) Rotated(deltaY float64) ImageTransform {
	if deltaY > 0 {
		t.Rotation -= RotateStepD
	} else {
		t.Rotation += RotateStepD
	}
	return t
}

// roundScale drops the binary representation error of repeated 0.1 steps.
func roundScale(s float64) float64 {
	return math.Round(s*1e9) / 1e9
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// ImageState owns the image layer transform and its gesture tracker.
type ImageState struct {
	t       ImageTransform
	tracker *gesture.Tracker
	enabled func() bool
}

// NewImageState creates the image layer. enabled is consulted before every
// mutation; a nil func means always enabled.
func NewImageState(enabled func() bool) *ImageState {
	if enabled == nil {
		enabled = func() bool { return true }
	}
	return &ImageState{
		t:       DefaultImageTransform(),
		tracker: gesture.NewTracker(),
		enabled: enabled,
	}
}

// Transform returns the current transform.
func (s *ImageState) Transform() ImageTransform {
	return s.t
}

// Dragging reports whether a gesture session is live on the layer.
func (s *ImageState) Dragging() bool {
	return s.tracker.Dragging()
}

// Press starts a drag at pointer.
func (s *ImageState) Press(pointer geom.Point) bool {
	return s.tracker.Press(pointer, s.t.Position(), s.enabled())
}

// Move continues a drag. It reports whether the transform changed.
func (s *ImageState) Move(pointer geom.Point) bool {
	p, ok := s.tracker.Move(pointer, s.enabled())
	if !ok {
		return false
	}
	return s.ApplyDrag(p)
}

// Release ends the drag.
func (s *ImageState) Release() {
	s.tracker.Release()
}

// ApplyDrag sets the position, leaving scale and rotation alone.
func (s *ImageState) ApplyDrag(p geom.Point) bool {
	if !s.enabled() {
		return false
	}
	s.t = s.t.Dragged(p)
	return true
}

// ApplyZoom steps the scale. It reports whether the wheel event was
// consumed, in which case the host must not scroll.
func (s *ImageState) ApplyZoom(deltaY float64) bool {
	if !s.enabled() {
		return false
	}
	s.t = s.t.Zoomed(deltaY)
	return true
}

// ApplyRotate steps the rotation when modifier is held.
func (s *ImageState) ApplyRotate(deltaY float64, modifier bool) bool {
	if !modifier || !s.enabled() {
		return false
	}
	s.t = s.t.Rotated(deltaY)
	return true
}

// Reset restores the default transform and ends any drag.
func (s *ImageState) Reset() {
	s.t = DefaultImageTransform()
	s.tracker.Release()
}

// TextTransform places the text layer.
type TextTransform struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Position returns the offset as a point.
func (t TextTransform) Position() geom.Point {
	return geom.Pt(t.X, t.Y)
}

// Matrix returns the translation for the text block.
func (t TextTransform) Matrix() geom.Matrix {
	return geom.Translate(t.X, t.Y)
}

// TextState owns the text layer offset and its gesture tracker.
type TextState struct {
	t       TextTransform
	tracker *gesture.Tracker
	enabled func() bool
}

// NewTextState creates the text layer. A nil enabled means always enabled.
func NewTextState(enabled func() bool) *TextState {
	if enabled == nil {
		enabled = func() bool { return true }
	}
	return &TextState{tracker: gesture.NewTracker(), enabled: enabled}
}

// Transform returns the current offset.
func (s *TextState) Transform() TextTransform {
	return s.t
}

// Dragging reports whether a gesture session is live on the layer.
func (s *TextState) Dragging() bool {
	return s.tracker.Dragging()
}

// Press starts a drag at pointer.
func (s *TextState) Press(pointer geom.Point) bool {
	return s.tracker.Press(pointer, s.t.Position(), s.enabled())
}

// Move continues a drag. It reports whether the offset changed.
func (s *TextState) Move(pointer geom.Point) bool {
	p, ok := s.tracker.Move(pointer, s.enabled())
	if !ok {
		return false
	}
	return s.ApplyDrag(p)
}

// Release ends the drag.
func (s *TextState) Release() {
	s.tracker.Release()
}

// ApplyDrag sets the offset.
func (s *TextState) ApplyDrag(p geom.Point) bool {
	if !s.enabled() {
		return false
	}
	s.t = TextTransform{X: p.X, Y: p.Y}
	return true
}

// Reset zeroes the offset and force-closes any drag.
func (s *TextState) Reset() {
	s.t = TextTransform{}
	s.tracker.Release()
}
