package gui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"teeforge/pkg/catalog"
	"teeforge/pkg/form"
	"teeforge/pkg/preview"
)

// FormPanel holds the order form: style, measurements, text, upload and
// the lock and cart buttons.
type FormPanel struct {
	container *fyne.Container

	// Callbacks
	OnStyle  func(id string)
	OnText   func(text string)
	OnUpload func()
	OnLock   func()
	OnSubmit func(height, weight, build string)
	OnTheme  func()

	styles []catalog.Style

	// Components
	style    *widget.Select
	price    *widget.Label
	height   *widget.Entry
	weight   *widget.Entry
	build    *widget.Select
	text     *widget.Entry
	upload   *widget.Button
	lockBtn  *widget.Button
	hint     *widget.Label
	chips    *widget.Label
	errors   *widget.Label
	themeBtn *widget.Button
}

// NewFormPanel creates the panel for the catalog's styles.
func NewFormPanel(styles []catalog.Style, selected string) *FormPanel {
	p := &FormPanel{styles: styles}
	p.build(selected)
	return p
}

func (p *FormPanel) build(selected string) {
	labels := make([]string, len(p.styles))
	for i, s := range p.styles {
		labels[i] = styleLabel(s)
	}
	p.price = widget.NewLabel("")
	p.style = widget.NewSelect(labels, func(label string) {
		for _, s := range p.styles {
			if styleLabel(s) == label {
				p.price.SetText(s.PriceLabel())
				if p.OnStyle != nil {
					p.OnStyle(s.ID)
				}
				return
			}
		}
	})
	p.SetStyle(selected)

	defaults := form.Defaults()
	p.height = widget.NewEntry()
	p.height.SetText(strconv.Itoa(defaults.HeightCM))
	p.height.SetPlaceHolder(fmt.Sprintf("%d-%d", form.MinHeightCM, form.MaxHeightCM))
	p.weight = widget.NewEntry()
	p.weight.SetText(strconv.Itoa(defaults.WeightKG))
	p.weight.SetPlaceHolder(fmt.Sprintf("%d-%d", form.MinWeightKG, form.MaxWeightKG))
	p.build = widget.NewSelect(form.Builds, nil)
	p.build.SetSelected(defaults.Build)

	p.text = widget.NewMultiLineEntry()
	p.text.SetPlaceHolder(fmt.Sprintf("Up to %d lines", preview.MaxTextLines))
	p.text.SetMinRowsVisible(preview.MaxTextLines)
	p.text.OnChanged = func(s string) {
		if p.OnText != nil {
			p.OnText(s)
		}
	}

	p.upload = widget.NewButtonWithIcon("Upload image", theme.UploadIcon(), func() {
		if p.OnUpload != nil {
			p.OnUpload()
		}
	})

	drop := widget.NewLabel("or drop an image on the window")
	drop.TextStyle = fyne.TextStyle{Italic: true}
	drop.Importance = widget.LowImportance

	p.lockBtn = widget.NewButtonWithIcon(preview.ActionSave.String(), theme.ConfirmIcon(), func() {
		if p.OnLock != nil {
			p.OnLock()
		}
	})
	p.hint = widget.NewLabel("")
	p.hint.Wrapping = fyne.TextWrapWord
	p.chips = widget.NewLabel("")
	p.chips.TextStyle = fyne.TextStyle{Italic: true}

	p.errors = widget.NewLabel("")
	p.errors.Importance = widget.DangerImportance
	p.errors.Wrapping = fyne.TextWrapWord

	cart := widget.NewButtonWithIcon("Add to Cart", theme.ContentAddIcon(), func() {
		if p.OnSubmit != nil {
			p.OnSubmit(p.height.Text, p.weight.Text, p.build.Selected)
		}
	})
	cart.Importance = widget.HighImportance

	p.themeBtn = widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		if p.OnTheme != nil {
			p.OnTheme()
		}
	})

	fields := widget.NewForm(
		widget.NewFormItem("Style", container.NewBorder(nil, nil, nil, p.price, p.style)),
		widget.NewFormItem("Height (cm)", p.height),
		widget.NewFormItem("Weight (kg)", p.weight),
		widget.NewFormItem("Build", p.build),
		widget.NewFormItem("Text", p.text),
	)

	p.container = container.NewVBox(
		fields,
		p.upload,
		drop,
		widget.NewSeparator(),
		p.hint,
		p.chips,
		p.lockBtn,
		widget.NewSeparator(),
		p.errors,
		cart,
		p.themeBtn,
	)
	p.SetAffordances(nil)
}

func styleLabel(s catalog.Style) string {
	return s.Name
}

// Container returns the panel container.
func (p *FormPanel) Container() *fyne.Container {
	return p.container
}

// SetStyle selects the style with id without firing OnStyle.
func (p *FormPanel) SetStyle(id string) {
	for _, s := range p.styles {
		if s.ID == id {
			cb := p.OnStyle
			p.OnStyle = nil
			p.style.SetSelected(styleLabel(s))
			p.OnStyle = cb
			p.price.SetText(s.PriceLabel())
			return
		}
	}
}

// Text returns the text entry's contents.
func (p *FormPanel) Text() string {
	return p.text.Text
}

// SetAffordances shows the lock hint and button, or hides them without an
// image.
func (p *FormPanel) SetAffordances(a *preview.Affordances) {
	if a == nil {
		p.hint.Hide()
		p.chips.Hide()
		p.lockBtn.Hide()
		return
	}

	p.hint.SetText(a.Hint)
	p.chips.SetText(strings.Join(a.Chips, " · "))
	p.lockBtn.SetText(a.Action.String())
	if a.Action == preview.ActionEdit {
		p.lockBtn.SetIcon(theme.DocumentCreateIcon())
	} else {
		p.lockBtn.SetIcon(theme.ConfirmIcon())
	}

	p.hint.Show()
	if len(a.Chips) > 0 {
		p.chips.Show()
	} else {
		p.chips.Hide()
	}
	p.lockBtn.Show()
}

// SetErrors shows validation messages; nil clears them.
func (p *FormPanel) SetErrors(errs form.Errors) {
	msgs := make([]string, len(errs))
	for i, fe := range errs {
		msgs[i] = fe.Message
	}
	p.errors.SetText(strings.Join(msgs, "\n"))
}

// SetThemeName labels the theme button.
func (p *FormPanel) SetThemeName(name string) {
	p.themeBtn.SetText("Theme: " + name + " (Alt+Q)")
}

// StatusBar shows the image transform and lock state.
type StatusBar struct {
	container *fyne.Container
	label     *widget.Label
	zoomLabel *widget.Label
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	s := &StatusBar{
		label:     widget.NewLabel("Upload an image to begin"),
		zoomLabel: widget.NewLabel(""),
	}

	s.container = container.NewHBox(
		s.label,
		widget.NewSeparator(),
		s.zoomLabel,
	)

	return s
}

// Container returns the status bar container.
func (s *StatusBar) Container() *fyne.Container {
	return s.container
}

// SetStatus sets the status message.
func (s *StatusBar) SetStatus(msg string) {
	s.label.SetText(msg)
}

// SetScene summarises the scene's image transform.
func (s *StatusBar) SetScene(sc *preview.Scene) {
	if sc.Image == nil {
		s.zoomLabel.SetText("")
		return
	}
	t := sc.Image.Transform
	s.zoomLabel.SetText(fmt.Sprintf("%d%% · %g° · %s",
		int(t.Scale*100+0.5), t.Rotation, sc.Lock))
}
