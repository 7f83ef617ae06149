package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	fynetheme "fyne.io/fyne/v2/theme"

	apptheme "teeforge/pkg/theme"
)

// paletteTheme paints Fyne widgets with an app palette and defers fonts,
// icons and sizes to the default theme.
type paletteTheme struct {
	palette apptheme.Palette
	variant fyne.ThemeVariant
}

func newPaletteTheme(t apptheme.Theme) fyne.Theme {
	variant := fynetheme.VariantLight
	if t.IsDark() {
		variant = fynetheme.VariantDark
	}
	return &paletteTheme{palette: t.Palette(), variant: variant}
}

func (t *paletteTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	p := t.palette
	switch name {
	case fynetheme.ColorNameBackground:
		return p.Background
	case fynetheme.ColorNameButton:
		return p.Card
	case fynetheme.ColorNamePrimary:
		return p.Button
	case fynetheme.ColorNameForeground:
		return p.Foreground
	case fynetheme.ColorNameInputBackground:
		return p.Input
	case fynetheme.ColorNameFocus, fynetheme.ColorNameSelection:
		return p.Accent
	}
	return fynetheme.DefaultTheme().Color(name, t.variant)
}

func (t *paletteTheme) Font(style fyne.TextStyle) fyne.Resource {
	return fynetheme.DefaultTheme().Font(style)
}

func (t *paletteTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return fynetheme.DefaultTheme().Icon(name)
}

func (t *paletteTheme) Size(name fyne.ThemeSizeName) float32 {
	return fynetheme.DefaultTheme().Size(name)
}

// cycleShortcut is Alt+Q.
var cycleShortcut = &desktop.CustomShortcut{KeyName: fyne.KeyQ, Modifier: fyne.KeyModifierAlt}

// shortcutRegistrar binds the theme cycler to a canvas shortcut.
type shortcutRegistrar struct {
	canvas fyne.Canvas
}

func (r shortcutRegistrar) Register(fn func()) func() {
	r.canvas.AddShortcut(cycleShortcut, func(fyne.Shortcut) { fn() })
	return func() { r.canvas.RemoveShortcut(cycleShortcut) }
}
