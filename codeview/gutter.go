package codeview

import "strconv"

// Gutter draws the line-number column.
type Gutter struct {
	Metrics Metrics
}

func (g Gutter) metrics() Metrics {
	if g.Metrics == nil {
		return CellMetrics{}
	}
	return g.Metrics
}

// Width returns the gutter width for lineCount lines: the measured width of
// the largest line number plus both margins.
func (g Gutter) Width(lineCount int, s *Style) int {
	if lineCount < 1 {
		lineCount = 1
	}
	return g.metrics().MeasureText(strconv.Itoa(lineCount)) + s.MarginLeft + s.MarginRight
}

// visibleLines returns the first and last line intersecting the viewport,
// partially visible lines included.
func visibleLines(l Layout, vp Viewport) (first, last int) {
	first = l.LineForVertical(vp.ScrollY)
	last = l.LineForVertical(vp.ScrollY + vp.Height - vp.PaddingTop - vp.PaddingBottom)
	return first, last
}

// Draw paints the gutter background, divider, current-line-number highlight
// and line numbers, in that order, and returns the gutter width.
// A nil layout only gets the background: numbers wait for the next paint.
func (g Gutter) Draw(c Canvas, l Layout, vp Viewport, s *Style, current int) int {
	lineCount := 0
	if l != nil {
		lineCount = l.LineCount()
	}
	width := g.Width(lineCount, s)

	x1, y1 := vp.ScrollX, vp.ScrollY
	x2, y2 := vp.ScrollX+width, vp.ScrollY+vp.Height
	FillRect(c, x1, y1, x2, y2, s.gutter())
	FillRect(c, x2-s.DividerWidth, y1, x2, y2, s.divider())

	if l == nil {
		return width
	}

	highlight := s.CurrentLineNumberEnabled && current < lineCount
	if highlight {
		FillRect(c, x1, l.LineTop(current), x2-s.DividerWidth, l.LineBottom(current), s.currentLineNumber())
	}

	m := g.metrics()
	numberX := x2 - s.MarginRight
	first, last := visibleLines(l, vp)
	for i := first; i <= last; i++ {
		style := s.gutter()
		if highlight && i == current {
			style = s.currentLineNumber()
		}
		DrawTextRight(c, m, numberX, l.LineBaseline(i), strconv.Itoa(i+1), style)
	}
	return width
}
