package codeview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Canvas is the drawing surface. tcell.Screen satisfies it.
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

type translated struct {
	c      Canvas
	clip   Rect
	dx, dy int
}

// Translate returns a canvas drawing in content coordinates: a point (x, y)
// lands on (x+dx, y+dy) of c, and anything outside clip (in c's
// coordinates) is dropped.
func Translate(c Canvas, clip Rect, dx, dy int) Canvas {
	return &translated{c: c, clip: clip, dx: dx, dy: dy}
}

func (t *translated) SetContent(x, y int, mainc rune, combc []rune, style tcell.Style) {
	x, y = x+t.dx, y+t.dy
	if !t.clip.Contains(x, y) {
		return
	}
	t.c.SetContent(x, y, mainc, combc, style)
}

// FillRect paints [x1, x2) x [y1, y2) with blanks.
func FillRect(c Canvas, x1, y1, x2, y2 int, style tcell.Style) {
	for y := y1; y < y2; y++ {
		for x := x1; x < x2; x++ {
			c.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawText draws s starting at x and returns the x after the last cell.
func DrawText(c Canvas, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		c.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

// DrawTextRight draws s so that it ends at x, measured with m. Each glyph
// starts at the measured width of the text before it.
func DrawTextRight(c Canvas, m Metrics, x, y int, s string, style tcell.Style) {
	x -= m.MeasureText(s)
	for i, r := range s {
		c.SetContent(x+m.MeasureText(s[:i]), y, r, nil, style)
	}
}
