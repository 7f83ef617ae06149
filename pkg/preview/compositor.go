// Package preview is the interactive transform engine behind the garment
// preview.
//
// A Compositor owns two independent layers over a base garment graphic: an
// image layer that can be dragged, scaled with the wheel and rotated with
// Alt+wheel, and a text layer that can be dragged. A lock (Save/Edit) freezes
// both. Loading a new image resets the image layer, the text layer and the
// lock; changing the visible text resets the text layer only.
//
// All methods run synchronously inside the caller's input handler. A
// Compositor is not safe for concurrent use.
package preview

import (
	"teeforge/pkg/catalog"
	"teeforge/pkg/geom"
	"teeforge/pkg/gesture"
	"teeforge/pkg/imageio"
)

// Compositor routes input to the layers and describes the resulting scene.
type Compositor struct {
	opts Options

	source  *imageio.Source
	styleID string
	rawText string
	joined  string

	image *ImageState
	text  *TextState
	lock  LockController
}

// New creates a compositor showing the first catalog style, no image and no
// text.
func New(opts ...Option) *Compositor {
	c := &Compositor{opts: NewOptions(opts...)}
	c.styleID = c.opts.Catalog.First().ID
	c.image = NewImageState(c.imageEnabled)
	c.text = NewTextState(c.textEnabled)
	c.lock.onChange = func(s LockState) {
		c.opts.Logger.Debug("lock changed", "state", s)
	}
	return c
}

func (c *Compositor) imageEnabled() bool {
	return c.source != nil && !c.lock.Locked()
}

func (c *Compositor) textEnabled() bool {
	return !c.lock.Locked()
}

// Options returns the effective options.
func (c *Compositor) Options() Options {
	return c.opts
}

// SetImage makes src the active image. A different identity (including
// nil) resets the image transform, the text offset and the lock.
func (c *Compositor) SetImage(src *imageio.Source) {
	if sourceID(src) == sourceID(c.source) {
		c.source = src
		return
	}
	c.source = src
	c.image.Reset()
	c.text.Reset()
	c.lock.Edit()
	c.opts.Logger.Debug("image changed", "id", sourceID(src))
}

func sourceID(src *imageio.Source) string {
	if src == nil {
		return ""
	}
	return src.ID
}

// Image returns the active image, or nil.
func (c *Compositor) Image() *imageio.Source {
	return c.source
}

// SetStyle selects the base garment. Unknown ids render the first style.
func (c *Compositor) SetStyle(id string) {
	c.styleID = id
}

// Style returns the resolved base garment.
func (c *Compositor) Style() catalog.Style {
	return c.opts.Catalog.Resolve(c.styleID)
}

// SetText updates the raw text. The text offset resets only when the visible
// lines change.
func (c *Compositor) SetText(raw string) {
	c.rawText = raw
	joined := joinedLines(raw)
	if joined == c.joined {
		return
	}
	c.joined = joined
	c.text.Reset()
}

// Text returns the raw text.
func (c *Compositor) Text() string {
	return c.rawText
}

// TextLines returns the visible lines.
func (c *Compositor) TextLines() []string {
	return TextLines(c.rawText)
}

// ImageTransform returns the image layer placement.
func (c *Compositor) ImageTransform() ImageTransform {
	return c.image.Transform()
}

// TextTransform returns the text layer offset.
func (c *Compositor) TextTransform() TextTransform {
	return c.text.Transform()
}

// Lock returns the lock state.
func (c *Compositor) Lock() LockState {
	return c.lock.State()
}

// Save commits the layout.
func (c *Compositor) Save() {
	c.lock.Save()
}

// Edit reopens the layout.
func (c *Compositor) Edit() {
	c.lock.Edit()
}

// Dragging reports whether layer has a live gesture session.
func (c *Compositor) Dragging(layer Layer) bool {
	switch layer {
	case LayerImage:
		return c.image.Dragging()
	case LayerText:
		return c.text.Dragging()
	}
	return false
}

// PointerDown starts a drag on layer.
func (c *Compositor) PointerDown(layer Layer, p geom.Point) bool {
	switch layer {
	case LayerImage:
		return c.image.Press(p)
	case LayerText:
		return c.text.Press(p)
	}
	return false
}

// PointerMove continues a drag on layer. It reports whether anything moved.
func (c *Compositor) PointerMove(layer Layer, p geom.Point) bool {
	switch layer {
	case LayerImage:
		return c.image.Move(p)
	case LayerText:
		return c.text.Move(p)
	}
	return false
}

// PointerUp ends a drag on layer.
func (c *Compositor) PointerUp(layer Layer) {
	switch layer {
	case LayerImage:
		c.image.Release()
	case LayerText:
		c.text.Release()
	}
}

// PointerLeave is handled exactly like PointerUp.
func (c *Compositor) PointerLeave(layer Layer) {
	c.PointerUp(layer)
}

// TouchStart starts a drag with the first finger of touches.
func (c *Compositor) TouchStart(layer Layer, touches []geom.Point) bool {
	p, ok := gesture.FirstTouch(touches)
	if !ok {
		return false
	}
	return c.PointerDown(layer, p)
}

// TouchMove continues a drag with the first finger of touches.
func (c *Compositor) TouchMove(layer Layer, touches []geom.Point) bool {
	p, ok := gesture.FirstTouch(touches)
	if !ok {
		return false
	}
	return c.PointerMove(layer, p)
}

// TouchEnd ends a touch drag.
func (c *Compositor) TouchEnd(layer Layer) {
	c.PointerUp(layer)
}

// Wheel applies a wheel notch to the image layer: rotation with the
// modifier held, zoom otherwise. A true result means the event was consumed
// and the host must not scroll.
func (c *Compositor) Wheel(deltaY float64, modifier bool) bool {
	if modifier {
		return c.image.ApplyRotate(deltaY, true)
	}
	return c.image.ApplyZoom(deltaY)
}

// Scene describes the current frame.
func (c *Compositor) Scene() *Scene {
	w, h := c.opts.CanvasWidth, c.opts.CanvasHeight
	locked := c.lock.Locked()

	s := &Scene{
		Canvas: geom.Rect{Width: w, Height: h},
		Style:  c.Style(),
		Lock:   c.lock.State(),
	}

	if c.source != nil {
		t := c.image.Transform()
		box, frame, fit := imageLayout(w, h, c.source)
		s.Image = &ImageLayer{
			Source:      c.source,
			Box:         box,
			Frame:       frame,
			Transform:   t,
			Matrix:      imageMatrix(frame, fit, t),
			CSS:         t.CSS(),
			Transition:  transitionFor(c.image.Dragging()),
			Interactive: !locked,
		}
		s.Affordances = affordancesFor(c.lock.State())
	}

	s.Text = textLayout(w, h, c.TextLines(), c.text.Transform())
	s.Text.Transition = transitionFor(c.text.Dragging())
	s.Text.Interactive = !locked

	return s
}

// HitTest returns the topmost layer under p in the current scene.
func (c *Compositor) HitTest(p geom.Point) Layer {
	return c.Scene().HitTest(p)
}
