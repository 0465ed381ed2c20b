// Package codeview draws the line-number gutter and the current-line
// highlight of a code editor, and places the autocomplete dropdown next to
// the caret. It does not store text: everything is derived on each paint
// from a Host, which owns the buffer and its layout.
package codeview

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Layout maps buffer offsets, visual lines and pixels.
// A pixel is whatever unit the host draws in; a terminal host uses cells.
type Layout interface {
	LineCount() int
	LineForOffset(off int) int
	// LineForVertical returns the line at content position y,
	// clamped to [0, LineCount()-1].
	LineForVertical(y int) int
	LineTop(line int) int
	LineBottom(line int) int
	LineBaseline(line int) int
	// PrimaryHorizontal returns the x position of off within its line.
	PrimaryHorizontal(off int) int
}

// Viewport is the scroll state and size of the widget, in content pixels.
type Viewport struct {
	ScrollX, ScrollY int
	Width, Height    int
	PaddingTop       int
	PaddingBottom    int
}

// Host is the text-editing widget the engine decorates.
type Host interface {
	// Layout returns nil until the host has laid out its text once.
	Layout() Layout
	SelectionStart() int
	Viewport() Viewport
	// VisibleScreenRect is the widget's visible rectangle in screen coordinates.
	VisibleScreenRect() Rect
}

// Insetter is implemented by hosts that can reserve room on their left edge.
type Insetter interface {
	SetLeftInset(px int)
}

// Adapter is the suggestion list backing the dropdown.
type Adapter interface {
	ItemCount() int
}

// TextPainter draws the glyphs of one line. style carries the background
// the line must keep, so the current-line highlight survives the text layer.
type TextPainter interface {
	PaintLine(c Canvas, line int, style tcell.Style)
}

// Metrics measures text in the line-number font.
type Metrics interface {
	MeasureText(s string) int
}

// CellMetrics measures terminal cells.
type CellMetrics struct{}

func (CellMetrics) MeasureText(s string) int { return runewidth.StringWidth(s) }

type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Bottom() int { return r.Y + r.Height }

func (r Rect) Contains(x, y int) bool {
	return r.X <= x && x < r.Right() && r.Y <= y && y < r.Bottom()
}
