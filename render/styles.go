package render

import (
	"github.com/gdamore/tcell/v2"
)

// ColorMode selects the palette
type ColorMode uint8

const (
	ColorModeAuto ColorMode = iota
	ColorModeTrueColor
	ColorMode256
	ColorModeMono
)

// ParseColorMode maps a flag value onto a ColorMode; unknown values fall back to auto
func ParseColorMode(s string) ColorMode {
	switch s {
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	case "256":
		return ColorMode256
	case "mono":
		return ColorModeMono
	}
	return ColorModeAuto
}

// Styles is the resolved palette for one color mode
type Styles struct {
	Ring   tcell.Style
	Core   tcell.Style
	Ball   tcell.Style
	Status tcell.Style
	Paused tcell.Style
}

// NewStyles resolves the palette; auto picks truecolor when the screen has more than 256 colors
func NewStyles(mode ColorMode, screen tcell.Screen) Styles {
	if mode == ColorModeAuto {
		switch {
		case screen == nil || screen.Colors() <= 0:
			mode = ColorModeMono
		case screen.Colors() > 256:
			mode = ColorModeTrueColor
		default:
			mode = ColorMode256
		}
	}

	base := tcell.StyleDefault
	switch mode {
	case ColorModeTrueColor:
		return Styles{
			Ring:   base.Foreground(tcell.NewRGBColor(230, 230, 230)).Bold(true),
			Core:   base.Foreground(tcell.NewRGBColor(255, 170, 40)),
			Ball:   base.Foreground(tcell.NewRGBColor(80, 200, 255)),
			Status: base.Foreground(tcell.NewRGBColor(160, 160, 160)),
			Paused: base.Foreground(tcell.NewRGBColor(255, 80, 80)).Reverse(true),
		}
	case ColorMode256:
		return Styles{
			Ring:   base.Foreground(tcell.PaletteColor(254)).Bold(true),
			Core:   base.Foreground(tcell.PaletteColor(214)),
			Ball:   base.Foreground(tcell.PaletteColor(81)),
			Status: base.Foreground(tcell.PaletteColor(245)),
			Paused: base.Foreground(tcell.PaletteColor(203)).Reverse(true),
		}
	}
	return Styles{
		Ring:   base.Bold(true),
		Core:   base,
		Ball:   base,
		Status: base.Dim(true),
		Paused: base.Reverse(true),
	}
}
