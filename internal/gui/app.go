// Package gui provides the native desktop customizer using Fyne.
package gui

import (
	"errors"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"github.com/charmbracelet/log"

	"teeforge/internal/config"
	"teeforge/pkg/form"
	"teeforge/pkg/imageio"
	"teeforge/pkg/preview"
	"teeforge/pkg/raster"
	apptheme "teeforge/pkg/theme"
)

// AppID identifies the application to Fyne's preferences store.
const AppID = "io.teeforge.customizer"

// App is the customizer window: preview on the left, order form on the right.
type App struct {
	fyneApp    fyne.App
	mainWindow fyne.Window
	logger     *log.Logger

	comp       *preview.Compositor
	renderOpts raster.RenderOptions
	cycler     *apptheme.Cycler

	// UI components
	header *canvas.Text
	view   *PreviewView
	panel  *FormPanel
	status *StatusBar
}

// NewApp creates the customizer from cfg.
func NewApp(cfg *config.Config, logger *log.Logger) (*App, error) {
	return newApp(app.NewWithID(AppID), cfg, logger)
}

func newApp(fa fyne.App, cfg *config.Config, logger *log.Logger) (*App, error) {
	opts, err := cfg.PreviewOptions(logger)
	if err != nil {
		return nil, err
	}
	renderOpts, err := cfg.RenderOptions()
	if err != nil {
		return nil, err
	}

	a := &App{
		fyneApp:    fa,
		logger:     logger,
		comp:       preview.New(opts...),
		renderOpts: renderOpts,
	}
	if cfg.Style != "" {
		a.comp.SetStyle(cfg.Style)
	}

	r, err := raster.NewRenderer(renderOpts)
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}
	a.view = NewPreviewView(a.comp, r, logger)
	a.cycler = apptheme.NewCycler(renderOpts.Theme, a.applyTheme)

	a.mainWindow = a.fyneApp.NewWindow("Teeforge")
	a.mainWindow.Resize(fyne.NewSize(900, 640))
	a.buildUI()
	a.applyTheme(a.cycler.Current())

	return a, nil
}

// Run starts the application.
func (a *App) Run() {
	a.mainWindow.ShowAndRun()
}

// RunWithFile starts the application with an image already placed. The
// image is decoded before the event loop starts.
func (a *App) RunWithFile(path string) {
	a.loadFile(path)
	a.mainWindow.ShowAndRun()
}

// buildUI constructs the user interface.
func (a *App) buildUI() {
	a.header = canvas.NewText("Design your T-shirt", a.cycler.Current().Palette().Header)
	a.header.TextSize = 22
	a.header.TextStyle = fyne.TextStyle{Bold: true}

	cat := a.comp.Options().Catalog
	a.panel = NewFormPanel(cat.Styles(), a.comp.Style().ID)
	a.panel.OnStyle = func(id string) {
		a.comp.SetStyle(id)
		a.view.Sync()
	}
	a.panel.OnText = func(text string) {
		a.comp.SetText(text)
		a.view.Sync()
	}
	a.panel.OnUpload = a.openFile
	a.panel.OnLock = a.toggleLock
	a.panel.OnSubmit = a.submit
	a.panel.OnTheme = func() { a.cycler.Cycle() }

	a.status = NewStatusBar()
	a.view.OnChange = func(s *preview.Scene) {
		a.panel.SetAffordances(s.Affordances)
		a.status.SetScene(s)
	}

	content := container.NewBorder(
		container.NewPadded(a.header),
		a.status.Container(),
		nil,
		container.NewVScroll(container.NewPadded(a.panel.Container())),
		a.view,
	)
	a.mainWindow.SetContent(content)
	a.view.Sync()

	if dc, ok := a.mainWindow.Canvas().(desktop.Canvas); ok {
		dc.SetOnKeyDown(func(ev *fyne.KeyEvent) { a.handleKey(ev, true) })
		dc.SetOnKeyUp(func(ev *fyne.KeyEvent) { a.handleKey(ev, false) })
	}

	a.mainWindow.SetOnDropped(a.dropped)

	// The cycling shortcut lives as long as the window.
	a.cycler.Install(shortcutRegistrar{canvas: a.mainWindow.Canvas()})
	a.mainWindow.SetOnClosed(a.cycler.Uninstall)
}

// handleKey tracks the rotate modifier.
func (a *App) handleKey(ev *fyne.KeyEvent, down bool) {
	switch ev.Name {
	case desktop.KeyAltLeft, desktop.KeyAltRight:
		a.view.SetAlt(down)
	}
}

// openFile shows a file dialog and places the selected image.
func (a *App) openFile() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.mainWindow)
			return
		}
		if reader == nil {
			return // Cancelled
		}
		defer reader.Close()
		src, err := imageio.Decode(reader, reader.URI().Name())
		a.placeImage(src, err)
	}, a.mainWindow)
	d.SetFilter(storage.NewExtensionFileFilter(imageio.Extensions()))
	d.Show()
}

// dropped places the first dropped local file. URIs with other schemes
// are skipped.
func (a *App) dropped(_ fyne.Position, uris []fyne.URI) {
	for _, u := range uris {
		if u.Scheme() == "file" {
			a.loadFile(u.Path())
			return
		}
	}
	a.logger.Debug("drop ignored", "uris", len(uris))
}

// loadFile decodes the image at path and places it.
func (a *App) loadFile(path string) {
	src, err := imageio.DecodeFile(path)
	a.placeImage(src, err)
}

func (a *App) placeImage(src *imageio.Source, err error) {
	if err != nil {
		a.logger.Warn("image rejected", "err", err)
		a.status.SetStatus("Could not read image")
		dialog.ShowError(err, a.mainWindow)
		return
	}
	w, h := src.Size()
	a.logger.Info("image placed", "name", src.Name, "format", src.Format, "size", fmt.Sprintf("%dx%d", w, h))
	a.comp.SetImage(src)
	a.status.SetStatus(src.Name)
	a.view.Sync()
}

// toggleLock saves or edits the image position.
func (a *App) toggleLock() {
	if a.comp.Lock() == preview.Committed {
		a.comp.Edit()
	} else {
		a.comp.Save()
	}
	a.logger.Debug("lock", "state", a.comp.Lock())
	a.view.Sync()
}

// submit validates the form and reports the assembled configuration.
func (a *App) submit(height, weight, build string) {
	m, err := form.Parse(height, weight, build, a.panel.Text())
	var p *preview.Payload
	if err == nil {
		p, err = a.comp.Submit(m)
	}
	if err != nil {
		var errs form.Errors
		if errors.As(err, &errs) {
			a.panel.SetErrors(errs)
			return
		}
		dialog.ShowError(err, a.mainWindow)
		return
	}

	a.panel.SetErrors(nil)
	a.logger.Info("added to cart", "order", p.OrderID, "style", p.Style.ID, "locked", p.Locked)
	dialog.ShowInformation("Added to cart", orderSummary(p), a.mainWindow)
}

func orderSummary(p *preview.Payload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s ($%.2f)\n", p.Style.Name, p.Style.Price)
	fmt.Fprintf(&b, "%d cm, %d kg, %s\n", p.Measurements.HeightCM, p.Measurements.WeightKG, p.Measurements.Build)
	if p.Image != nil {
		fmt.Fprintf(&b, "Image: %s, %s\n", p.Image.Name, p.Image.CSS)
	}
	if len(p.Lines) > 0 {
		fmt.Fprintf(&b, "Text: %s\n", strings.Join(p.Lines, " / "))
	}
	fmt.Fprintf(&b, "Order %s", p.OrderID)
	return b.String()
}

// applyTheme repaints widgets and the preview for t.
func (a *App) applyTheme(t apptheme.Theme) {
	a.fyneApp.Settings().SetTheme(newPaletteTheme(t))
	a.panel.SetThemeName(t.String())
	a.header.Color = t.Palette().Header
	a.header.Refresh()

	a.renderOpts.Theme = t
	r, err := raster.NewRenderer(a.renderOpts)
	if err != nil {
		a.logger.Error("theme change failed", "theme", t, "err", err)
		return
	}
	a.view.SetRenderer(r)
	a.logger.Debug("theme", "name", t)
}
