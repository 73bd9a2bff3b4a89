package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// LightTheme is a compact light theme. The system dark variant is ignored
// so the window always renders the same palette.
type LightTheme struct{}

// NewLightTheme creates the application theme
func NewLightTheme() fyne.Theme {
	return &LightTheme{}
}

// Color returns theme colors
func (t *LightTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case theme.ColorNameForeground:
		return color.RGBA{R: 34, G: 34, B: 34, A: 255} // #222222
	case theme.ColorNameInputBackground:
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameInputBorder:
		return color.RGBA{R: 208, G: 208, B: 208, A: 255}
	case theme.ColorNameButton:
		return color.RGBA{R: 227, G: 242, B: 253, A: 255} // #E3F2FD
	case theme.ColorNameDisabledButton:
		return color.RGBA{R: 238, G: 238, B: 238, A: 255}
	case theme.ColorNameDisabled:
		return color.RGBA{R: 136, G: 136, B: 136, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // #1976D2
	case theme.ColorNameForegroundOnPrimary:
		return color.White
	case theme.ColorNameHyperlink:
		return color.RGBA{R: 13, G: 71, B: 161, A: 255}
	case theme.ColorNamePlaceHolder:
		return color.RGBA{R: 102, G: 102, B: 102, A: 255}
	case theme.ColorNameSeparator:
		return color.RGBA{R: 224, G: 224, B: 224, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameWarning:
		return color.RGBA{R: 230, G: 145, B: 0, A: 255}
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *LightTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *LightTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *LightTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 12
	case theme.SizeNameInputRadius, theme.SizeNameSelectionRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
