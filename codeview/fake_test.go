package codeview

import (
	"github.com/gdamore/tcell/v2"
)

// fixedLayout lays out lines of equal length and height.
type fixedLayout struct {
	lines      int
	lineLen    int // offsets per line, newline included
	lineHeight int
	charWidth  int
}

func (l *fixedLayout) LineCount() int { return l.lines }

func (l *fixedLayout) LineForOffset(off int) int {
	return l.clamp(off / l.lineLen)
}

func (l *fixedLayout) LineForVertical(y int) int {
	return l.clamp(y / l.lineHeight)
}

func (l *fixedLayout) clamp(line int) int {
	if line < 0 {
		return 0
	}
	if line > l.lines-1 {
		return l.lines - 1
	}
	return line
}

func (l *fixedLayout) LineTop(line int) int      { return line * l.lineHeight }
func (l *fixedLayout) LineBottom(line int) int   { return (line + 1) * l.lineHeight }
func (l *fixedLayout) LineBaseline(line int) int { return line*l.lineHeight + l.lineHeight - 1 }

func (l *fixedLayout) PrimaryHorizontal(off int) int {
	return (off % l.lineLen) * l.charWidth
}

type fakeHost struct {
	layout *fixedLayout
	caret  int
	vp     Viewport
	screen Rect
	inset  int
}

func (h *fakeHost) Layout() Layout {
	if h.layout == nil {
		return nil
	}
	return h.layout
}

func (h *fakeHost) SelectionStart() int     { return h.caret }
func (h *fakeHost) Viewport() Viewport      { return h.vp }
func (h *fakeHost) VisibleScreenRect() Rect { return h.screen }
func (h *fakeHost) SetLeftInset(px int)     { h.inset = px }

type digitMetrics int

func (m digitMetrics) MeasureText(s string) int { return len(s) * int(m) }

type cell struct {
	r     rune
	style tcell.Style
}

// recorder keeps the last content set at each point.
type recorder map[[2]int]cell

func (r recorder) SetContent(x, y int, mainc rune, _ []rune, style tcell.Style) {
	r[[2]int{x, y}] = cell{mainc, style}
}

func (r recorder) at(x, y int) cell { return r[[2]int{x, y}] }

func (r recorder) bg(x, y int) tcell.Color {
	_, bg, _ := r.at(x, y).style.Decompose()
	return bg
}

func (r recorder) fg(x, y int) tcell.Color {
	fg, _, _ := r.at(x, y).style.Decompose()
	return fg
}

type itemCount int

func (n itemCount) ItemCount() int { return int(n) }

// linePainter records which style each line was painted with.
type linePainter map[int]tcell.Style

func (p linePainter) PaintLine(_ Canvas, line int, style tcell.Style) { p[line] = style }
