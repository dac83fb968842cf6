package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/term-tetris/constant"
	"github.com/lixenwraith/term-tetris/tetromino"
)

// RGB color definitions for piece kinds and chrome
var (
	RgbPieceCyan    = tcell.NewRGBColor(0, 220, 220)   // I
	RgbPieceYellow  = tcell.NewRGBColor(240, 220, 0)   // O
	RgbPieceMagenta = tcell.NewRGBColor(190, 60, 220)  // T
	RgbPieceGreen   = tcell.NewRGBColor(60, 210, 60)   // S
	RgbPieceRed     = tcell.NewRGBColor(230, 50, 50)   // Z
	RgbPieceBlue    = tcell.NewRGBColor(60, 100, 240)  // J
	RgbPieceOrange  = tcell.NewRGBColor(255, 150, 0)   // L
	RgbBackground   = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbEmptyCell    = tcell.NewRGBColor(70, 70, 80)    // Dim dot
	RgbText         = tcell.NewRGBColor(255, 255, 255) // White
	RgbGameOver     = tcell.NewRGBColor(255, 0, 0)     // Error Red
	RgbPaused       = tcell.NewRGBColor(255, 165, 0)   // Orange
)

// Theme maps color identities and chrome to terminal colors
type Theme struct {
	Name       string
	Pieces     [constant.KindCount]tcell.Color
	Background tcell.Color
	Border     tcell.Color
	Empty      tcell.Color
	Text       tcell.Color
	Alert      tcell.Color
	Notice     tcell.Color
	// Meter disables the level gradient when false
	Meter bool
}

// ClassicTheme uses a distinct RGB color per kind
var ClassicTheme = Theme{
	Name: constant.ThemeClassic,
	Pieces: [constant.KindCount]tcell.Color{
		tetromino.ColorCyan:    RgbPieceCyan,
		tetromino.ColorYellow:  RgbPieceYellow,
		tetromino.ColorMagenta: RgbPieceMagenta,
		tetromino.ColorGreen:   RgbPieceGreen,
		tetromino.ColorRed:     RgbPieceRed,
		tetromino.ColorBlue:    RgbPieceBlue,
		tetromino.ColorOrange:  RgbPieceOrange,
	},
	Background: RgbBackground,
	Border:     RgbBorder,
	Empty:      RgbEmptyCell,
	Text:       RgbText,
	Alert:      RgbGameOver,
	Notice:     RgbPaused,
	Meter:      true,
}

// MonoTheme draws everything in the terminal's default palette
var MonoTheme = Theme{
	Name: constant.ThemeMono,
	Pieces: [constant.KindCount]tcell.Color{
		tcell.ColorWhite, tcell.ColorWhite, tcell.ColorWhite, tcell.ColorWhite,
		tcell.ColorWhite, tcell.ColorWhite, tcell.ColorWhite,
	},
	Background: tcell.ColorDefault,
	Border:     tcell.ColorWhite,
	Empty:      tcell.ColorGray,
	Text:       tcell.ColorWhite,
	Alert:      tcell.ColorWhite,
	Notice:     tcell.ColorWhite,
}

// ThemeByName resolves a config theme name
func ThemeByName(name string) (Theme, bool) {
	switch name {
	case constant.ThemeClassic, "":
		return ClassicTheme, true
	case constant.ThemeMono:
		return MonoTheme, true
	}
	return Theme{}, false
}

// PieceColor returns the terminal color of a color identity
func (t *Theme) PieceColor(c tetromino.Color) tcell.Color {
	if int(c) >= len(t.Pieces) {
		return t.Text
	}
	return t.Pieces[c]
}

// Style returns the base style with the theme background
func (t *Theme) Style() tcell.Style {
	return tcell.StyleDefault.Background(t.Background)
}

// LevelMeterColor returns the color for a position in the level progress meter
// progress is 0.0 to 1.0, representing lines cleared toward the next level
func LevelMeterColor(progress float64) tcell.Color {
	if progress <= 0.0 {
		return tcell.NewRGBColor(0, 0, 0) // Black for unfilled
	}
	if progress > 1.0 {
		progress = 1.0
	}

	// Gradient: green → yellow → red as the next speed-up approaches
	if progress < 0.5 {
		t := progress / 0.5
		r := int32(34 + (255-34)*t)
		g := int32(139 + (215-139)*t)
		b := int32(34 - 34*t)
		return tcell.NewRGBColor(r, g, b)
	}
	t := (progress - 0.5) / 0.5
	r := int32(255)
	g := int32(215 - (215-40)*t)
	b := int32(0)
	return tcell.NewRGBColor(r, g, b)
}
