package codeview

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// Style is the mutable appearance of a View. It is read on every paint.
type Style struct {
	Background tcell.Color
	Foreground tcell.Color

	CurrentLineEnabled    bool
	CurrentLineBackground tcell.Color

	GutterEnabled    bool
	GutterBackground tcell.Color
	GutterDivider    tcell.Color
	LineNumberText   tcell.Color
	MarginLeft       int
	MarginRight      int
	DividerWidth     int

	CurrentLineNumberEnabled    bool
	CurrentLineNumberBackground tcell.Color
	CurrentLineNumberText       tcell.Color

	// MaxSuggestions caps the number of dropdown rows.
	MaxSuggestions int
	// ItemHeight is the height of one dropdown row.
	ItemHeight int
}

// DefaultStyle returns the dark scheme with cell-sized margins.
func DefaultStyle() Style {
	return Style{
		Background: tcell.NewHexColor(0x232323),
		Foreground: tcell.NewHexColor(0xFFFFFF),

		CurrentLineEnabled:    true,
		CurrentLineBackground: tcell.NewHexColor(0x353535),

		GutterEnabled:    true,
		GutterBackground: tcell.NewHexColor(0x2C2C2C),
		GutterDivider:    tcell.NewHexColor(0x555555),
		LineNumberText:   tcell.NewHexColor(0x555555),
		MarginLeft:       1,
		MarginRight:      2,
		DividerWidth:     1,

		CurrentLineNumberEnabled:    true,
		CurrentLineNumberBackground: tcell.NewHexColor(0x353535),
		CurrentLineNumberText:       tcell.NewHexColor(0xBBBBBB),

		MaxSuggestions: math.MaxInt,
		ItemHeight:     1,
	}
}

func (s *Style) body() tcell.Style {
	return tcell.StyleDefault.Background(s.Background).Foreground(s.Foreground)
}

func (s *Style) currentLine() tcell.Style {
	return s.body().Background(s.CurrentLineBackground)
}

func (s *Style) gutter() tcell.Style {
	return tcell.StyleDefault.Background(s.GutterBackground).Foreground(s.LineNumberText)
}

func (s *Style) divider() tcell.Style {
	return tcell.StyleDefault.Background(s.GutterDivider)
}

func (s *Style) currentLineNumber() tcell.Style {
	return tcell.StyleDefault.Background(s.CurrentLineNumberBackground).Foreground(s.CurrentLineNumberText)
}
