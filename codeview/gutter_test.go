package codeview

import (
	"strconv"
	"testing"
)

func TestGutterWidth(t *testing.T) {
	s := DefaultStyle()
	s.MarginLeft, s.MarginRight = 15, 10
	g := Gutter{Metrics: digitMetrics(10)}

	tests := []struct {
		lines int
		want  int
	}{
		{lines: 0, want: 35},
		{lines: 1, want: 35},
		{lines: 9, want: 35},
		{lines: 10, want: 45},
		{lines: 999, want: 55},
		{lines: 1000, want: 65},
	}
	for _, tt := range tests {
		if got := g.Width(tt.lines, &s); got != tt.want {
			t.Errorf("Width(%d) = %d, want %d", tt.lines, got, tt.want)
		}
	}
}

func TestGutterWidthCoversNumber(t *testing.T) {
	s := DefaultStyle()
	var g Gutter
	for n := 1; n < 100000; n = n*3 + 1 {
		least := CellMetrics{}.MeasureText(strconv.Itoa(n)) + s.MarginLeft + s.MarginRight
		if got := g.Width(n, &s); got < least {
			t.Errorf("Width(%d) = %d, want >= %d", n, got, least)
		}
	}
}

func TestGutterDraw(t *testing.T) {
	s := DefaultStyle()
	s.MarginLeft, s.MarginRight = 15, 10
	s.DividerWidth = 3
	l := &fixedLayout{lines: 9, lineLen: 10, lineHeight: 20, charWidth: 10}
	vp := Viewport{ScrollX: 7, ScrollY: 0, Width: 400, Height: 180}
	c := recorder{}

	width := Gutter{Metrics: digitMetrics(10)}.Draw(c, l, vp, &s, 2)
	if width != 35 {
		t.Fatalf("width = %d, want 35", width)
	}

	// background spans [scrollX, scrollX+35)
	if got := c.bg(7, 0); got != s.GutterBackground {
		t.Errorf("left edge bg = %v, want gutter background", got)
	}
	if got := c.bg(7+35-1, 0); got != s.GutterDivider {
		t.Errorf("right edge bg = %v, want divider", got)
	}
	if got := c.bg(7+35-3, 179); got != s.GutterDivider {
		t.Errorf("divider bg = %v, want divider", got)
	}
	if got := c.bg(7+35-4, 179); got != s.GutterBackground {
		t.Errorf("bg left of divider = %v, want gutter background", got)
	}
	if _, ok := c[[2]int{7 + 35, 0}]; ok {
		t.Errorf("drawn past the gutter right edge")
	}

	// numbers end at scrollX + width - marginRight, on the baseline; one
	// digit measures 10
	for i := 0; i < 9; i++ {
		cl := c.at(7+35-10-10, l.LineBaseline(i))
		if want := rune('1' + i); cl.r != want {
			t.Errorf("line %d number = %q, want %q", i, cl.r, want)
		}
	}

	// current line number pops
	if got := c.fg(22, l.LineBaseline(2)); got != s.CurrentLineNumberText {
		t.Errorf("current number fg = %v, want %v", got, s.CurrentLineNumberText)
	}
	if got := c.bg(7, l.LineTop(2)); got != s.CurrentLineNumberBackground {
		t.Errorf("current line gutter bg = %v, want %v", got, s.CurrentLineNumberBackground)
	}
	if got := c.bg(7+35-1, l.LineTop(2)); got != s.GutterDivider {
		t.Errorf("divider covered by current line highlight")
	}
	if got := c.fg(22, l.LineBaseline(3)); got != s.LineNumberText {
		t.Errorf("other number fg = %v, want %v", got, s.LineNumberText)
	}
}

func TestGutterDrawMeasuredDigits(t *testing.T) {
	s := DefaultStyle()
	s.MarginLeft, s.MarginRight = 15, 10
	l := &fixedLayout{lines: 10, lineLen: 10, lineHeight: 20, charWidth: 10}
	vp := Viewport{Width: 400, Height: 200}
	c := recorder{}

	width := Gutter{Metrics: digitMetrics(10)}.Draw(c, l, vp, &s, 0)
	if width != 45 {
		t.Fatalf("width = %d, want 45", width)
	}
	// "10" ends at 45 - 10 = 35, each digit 10 wide
	y := l.LineBaseline(9)
	if got := c.at(15, y).r; got != '1' {
		t.Errorf("cell 15 = %q, want '1'", got)
	}
	if got := c.at(25, y).r; got != '0' {
		t.Errorf("cell 25 = %q, want '0'", got)
	}
	// line 1 right-aligned with line 10
	if got := c.at(25, l.LineBaseline(0)).r; got != '1' {
		t.Errorf("line 1 digit at 25 = %q, want '1'", got)
	}
}

func TestGutterDrawVisibleRange(t *testing.T) {
	s := DefaultStyle()
	l := &fixedLayout{lines: 100, lineLen: 10, lineHeight: 1, charWidth: 1}
	vp := Viewport{ScrollY: 40, Width: 80, Height: 10, PaddingTop: 1, PaddingBottom: 1}
	c := recorder{}

	width := Gutter{}.Draw(c, l, vp, &s, 0)
	x := width - s.MarginRight - 1
	// [lineForVertical(40), lineForVertical(40+10-1-1)] = [40, 48]
	for y := 38; y <= 50; y++ {
		_, drawn := c[[2]int{x, y}]
		digit := drawn && c.at(x, y).r != ' '
		want := 40 <= y && y <= 48
		if digit != want {
			t.Errorf("row %d: number drawn = %v, want %v", y, digit, want)
		}
	}
	if got := c.at(x, 40).r; got != '1' {
		t.Errorf("row 40 last digit = %q, want '1' (line 41)", got)
	}
}

func TestGutterDrawNoLayout(t *testing.T) {
	s := DefaultStyle()
	c := recorder{}
	width := Gutter{}.Draw(c, nil, Viewport{Width: 20, Height: 5}, &s, 0)
	if width != 1+s.MarginLeft+s.MarginRight {
		t.Errorf("width = %d, want %d", width, 1+s.MarginLeft+s.MarginRight)
	}
	for p, cl := range c {
		if cl.r != ' ' {
			t.Errorf("glyph %q drawn at %v without layout", cl.r, p)
		}
	}
}
