package gui

import (
	"image"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"teeforge/pkg/geom"
	"teeforge/pkg/preview"
	"teeforge/pkg/raster"
)

// PreviewView is the interactive T-shirt preview. It forwards pointer,
// wheel and touch input to the compositor and draws the resulting scene,
// easing layers into place after non-drag changes.
type PreviewView struct {
	widget.BaseWidget

	comp     *preview.Compositor
	renderer *raster.Renderer
	logger   *log.Logger

	// mu guards renderer and the frame state below. Animation ticks run
	// on Fyne's animation goroutine; gen drops superseded frames.
	mu    sync.Mutex
	gen   int
	image *canvas.Image
	shown *preview.Scene
	anim  *fyne.Animation

	// Animate enables the settle transition. Tests turn it off.
	Animate bool

	active   preview.Layer
	hover    preview.Layer
	touching bool
	alt      bool

	// OnChange is called with the target scene after every update.
	OnChange func(*preview.Scene)
}

// NewPreviewView creates a preview widget over comp.
func NewPreviewView(comp *preview.Compositor, r *raster.Renderer, logger *log.Logger) *PreviewView {
	v := &PreviewView{
		comp:     comp,
		renderer: r,
		logger:   logger,
		Animate:  true,
	}
	v.ExtendBaseWidget(v)

	v.image = canvas.NewImageFromImage(image.NewRGBA(image.Rect(0, 0, 1, 1)))
	v.image.FillMode = canvas.ImageFillContain
	v.image.ScaleMode = canvas.ImageScaleSmooth

	return v
}

// Compositor returns the compositor the view drives.
func (v *PreviewView) Compositor() *preview.Compositor {
	return v.comp
}

// SetRenderer swaps the rasterizer, e.g. after a theme change, and redraws.
func (v *PreviewView) SetRenderer(r *raster.Renderer) {
	v.mu.Lock()
	v.renderer = r
	v.shown = nil
	v.mu.Unlock()
	v.Sync()
}

// SetAlt records whether the rotate modifier is held.
func (v *PreviewView) SetAlt(down bool) {
	v.alt = down
}

// Image returns the last drawn frame.
func (v *PreviewView) Image() image.Image {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.image.Image
}

// Sync redraws from the compositor's current scene.
func (v *PreviewView) Sync() {
	target := v.comp.Scene()

	v.mu.Lock()
	if v.anim != nil {
		v.anim.Stop()
		v.anim = nil
	}
	v.gen++
	gen := v.gen
	from := v.shown
	if v.Animate && target.Moved(from) {
		v.anim = fyne.NewAnimation(preview.TransitionDuration, func(f float32) {
			v.drawFrame(gen, target.Tween(from, float64(f)))
		})
		v.anim.Curve = func(t float32) float32 {
			return float32(preview.Springy.At(float64(t)))
		}
	}
	anim := v.anim
	v.mu.Unlock()

	if anim != nil {
		anim.Start()
	} else {
		v.drawFrame(gen, target)
	}

	if v.OnChange != nil {
		v.OnChange(target)
	}
}

// drawFrame renders s unless a later Sync has superseded gen.
func (v *PreviewView) drawFrame(gen int, s *preview.Scene) {
	v.mu.Lock()
	if gen != v.gen {
		v.mu.Unlock()
		return
	}
	img, err := v.renderer.Render(s)
	if err != nil {
		v.mu.Unlock()
		v.logger.Error("render failed", "err", err)
		return
	}
	v.shown = s
	v.image.Image = img
	v.mu.Unlock()

	v.image.Refresh()
}

// toScene maps a widget position to canvas coordinates, undoing the
// contain fit of the image.
func (v *PreviewView) toScene(p fyne.Position) geom.Point {
	opts := v.comp.Options()
	size := v.Size()
	cw, ch := opts.CanvasWidth, opts.CanvasHeight

	k := math.Min(float64(size.Width)/cw, float64(size.Height)/ch)
	if k <= 0 || math.IsInf(k, 0) || math.IsNaN(k) {
		k = 1
	}
	ox := (float64(size.Width) - cw*k) / 2
	oy := (float64(size.Height) - ch*k) / 2
	return geom.Pt((float64(p.X)-ox)/k, (float64(p.Y)-oy)/k)
}

func (v *PreviewView) press(pos fyne.Position, touch bool) {
	pt := v.toScene(pos)
	layer := v.comp.HitTest(pt)
	if layer == preview.LayerNone {
		return
	}

	var ok bool
	if touch {
		ok = v.comp.TouchStart(layer, []geom.Point{pt})
	} else {
		ok = v.comp.PointerDown(layer, pt)
	}
	if ok {
		v.active = layer
		v.touching = touch
		v.Sync()
	}
}

func (v *PreviewView) release() {
	if v.active == preview.LayerNone {
		return
	}
	if v.touching {
		v.comp.TouchEnd(v.active)
	} else {
		v.comp.PointerUp(v.active)
	}
	v.active = preview.LayerNone
	v.touching = false
	v.Sync()
}

// MouseDown starts a drag on the layer under the pointer.
func (v *PreviewView) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	v.press(ev.Position, false)
}

// MouseUp ends the drag.
func (v *PreviewView) MouseUp(*desktop.MouseEvent) {
	v.release()
}

// MouseIn is part of desktop.Hoverable.
func (v *PreviewView) MouseIn(ev *desktop.MouseEvent) {
	v.MouseMoved(ev)
}

// MouseMoved tracks the hovered layer for the cursor.
func (v *PreviewView) MouseMoved(ev *desktop.MouseEvent) {
	v.hover = v.comp.HitTest(v.toScene(ev.Position))
}

// MouseOut ends a mouse drag when the pointer leaves the preview.
func (v *PreviewView) MouseOut() {
	v.hover = preview.LayerNone
	if v.active == preview.LayerNone || v.touching {
		return
	}
	v.comp.PointerLeave(v.active)
	v.active = preview.LayerNone
	v.Sync()
}

// Cursor shows a pointer over draggable layers.
func (v *PreviewView) Cursor() desktop.Cursor {
	if v.hover != preview.LayerNone && v.comp.Lock() == preview.Editable {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

// Dragged moves the active layer.
func (v *PreviewView) Dragged(ev *fyne.DragEvent) {
	if v.active == preview.LayerNone {
		return
	}
	pt := v.toScene(ev.Position)

	var moved bool
	if v.touching {
		moved = v.comp.TouchMove(v.active, []geom.Point{pt})
	} else {
		moved = v.comp.PointerMove(v.active, pt)
	}
	if moved {
		v.Sync()
	}
}

// DragEnd ends the drag.
func (v *PreviewView) DragEnd() {
	v.release()
}

// Scrolled zooms the image, or rotates it while Alt is held. Fyne reports
// wheel-up as positive DY, the opposite of a DOM wheel deltaY.
func (v *PreviewView) Scrolled(ev *fyne.ScrollEvent) {
	if v.comp.Wheel(-float64(ev.Scrolled.DY), v.alt) {
		v.Sync()
	}
}

// TouchDown starts a touch drag.
func (v *PreviewView) TouchDown(ev *mobile.TouchEvent) {
	v.press(ev.Position, true)
}

// TouchUp ends a touch drag.
func (v *PreviewView) TouchUp(*mobile.TouchEvent) {
	v.release()
}

// TouchCancel ends a touch drag.
func (v *PreviewView) TouchCancel(*mobile.TouchEvent) {
	v.release()
}

// CreateRenderer creates the renderer for this widget.
func (v *PreviewView) CreateRenderer() fyne.WidgetRenderer {
	return &previewRenderer{view: v}
}

type previewRenderer struct {
	view *PreviewView
}

func (r *previewRenderer) Layout(size fyne.Size) {
	r.view.image.Move(fyne.NewPos(0, 0))
	r.view.image.Resize(size)
}

func (r *previewRenderer) MinSize() fyne.Size {
	opts := r.view.comp.Options()
	return fyne.NewSize(float32(opts.CanvasWidth), float32(opts.CanvasHeight))
}

func (r *previewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.image}
}

func (r *previewRenderer) Refresh() {
	r.view.image.Refresh()
}

func (r *previewRenderer) Destroy() {
	r.view.mu.Lock()
	defer r.view.mu.Unlock()
	if r.view.anim != nil {
		r.view.anim.Stop()
		r.view.anim = nil
	}
	r.view.gen++
}
