package codeview

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newFakeHost(caret int) *fakeHost {
	return &fakeHost{
		layout: &fixedLayout{lines: 20, lineLen: 10, lineHeight: 1, charWidth: 1},
		caret:  caret,
		vp:     Viewport{Width: 40, Height: 20},
		screen: Rect{Width: 40, Height: 20},
	}
}

func TestCurrentLine(t *testing.T) {
	tests := []struct {
		name  string
		caret int
		want  int
	}{
		{name: "first", caret: 0, want: 0},
		{name: "line 3", caret: 34, want: 3},
		{name: "line start", caret: 30, want: 3},
		{name: "past end", caret: 1000, want: 19},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost(tt.caret)
			if got := CurrentLine(h); got != tt.want {
				t.Errorf("CurrentLine() = %d, want %d", got, tt.want)
			}
			if again := CurrentLine(h); again != tt.want {
				t.Errorf("second CurrentLine() = %d, want %d", again, tt.want)
			}
		})
	}
}

func TestCurrentLineNoLayout(t *testing.T) {
	h := newFakeHost(34)
	h.layout = nil
	if got := CurrentLine(h); got != 0 {
		t.Errorf("CurrentLine() = %d, want 0", got)
	}
}

func TestPaintHighlightsOneLine(t *testing.T) {
	h := newFakeHost(34)
	v := NewView(DefaultStyle())
	s := v.Style()
	c := recorder{}
	lines := linePainter{}

	f := v.Paint(c, h, lines)
	if f.CurrentLine != 3 {
		t.Fatalf("CurrentLine = %d, want 3", f.CurrentLine)
	}
	if f.First != 0 || f.Last != 19 {
		t.Errorf("visible lines = [%d, %d], want [0, 19]", f.First, f.Last)
	}
	if h.inset != f.GutterWidth || f.GutterWidth == 0 {
		t.Errorf("inset = %d, gutter width = %d", h.inset, f.GutterWidth)
	}

	// body highlight and gutter highlight are on the same row
	if got := c.bg(39, 3); got != s.CurrentLineBackground {
		t.Errorf("body bg on current line = %v, want %v", got, s.CurrentLineBackground)
	}
	if got := c.bg(39, 4); got != s.Background {
		t.Errorf("body bg on line 4 = %v, want %v", got, s.Background)
	}
	if got := c.bg(0, 3); got != s.CurrentLineNumberBackground {
		t.Errorf("gutter bg on current line = %v, want %v", got, s.CurrentLineNumberBackground)
	}
	if got := c.bg(0, 4); got != s.GutterBackground {
		t.Errorf("gutter bg on line 4 = %v, want %v", got, s.GutterBackground)
	}

	for line, style := range lines {
		_, bg, _ := style.Decompose()
		want := s.Background
		if line == 3 {
			want = s.CurrentLineBackground
		}
		if bg != want {
			t.Errorf("line %d painted with bg %v, want %v", line, bg, want)
		}
	}
	if len(lines) != 20 {
		t.Errorf("painted %d lines, want 20", len(lines))
	}
}

func TestPaintToggles(t *testing.T) {
	h := newFakeHost(34)
	h.inset = 9
	v := NewView(DefaultStyle())
	v.SetGutterEnabled(false)
	v.SetCurrentLineEnabled(false)
	c := recorder{}

	f := v.Paint(c, h, nil)
	if f.GutterWidth != 0 || h.inset != 0 {
		t.Errorf("gutter width = %d, inset = %d, want 0", f.GutterWidth, h.inset)
	}
	if got := c.bg(0, 3); got != v.Style().Background {
		t.Errorf("bg = %v, want body background", got)
	}

	// setters apply on the next paint
	v.SetGutterEnabled(true)
	v.SetCurrentLineNumberEnabled(false)
	v.SetGutterBackground(tcell.ColorNavy)
	c = recorder{}
	f = v.Paint(c, h, nil)
	if f.GutterWidth == 0 {
		t.Fatal("gutter not drawn after enabling it")
	}
	if got := c.bg(0, 3); got != tcell.ColorNavy {
		t.Errorf("gutter bg = %v, want navy", got)
	}
}

func TestPaintNoLayout(t *testing.T) {
	h := newFakeHost(34)
	h.layout = nil
	v := NewView(DefaultStyle())
	lines := linePainter{}
	c := recorder{}

	f := v.Paint(c, h, lines)
	if f.LayoutReady {
		t.Error("LayoutReady = true without layout")
	}
	if len(lines) != 0 {
		t.Errorf("painted %d lines without layout", len(lines))
	}
	if f.GutterWidth == 0 {
		t.Error("gutter background skipped without layout")
	}
}

func TestPaintTranslated(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(40, 12)

	h := newFakeHost(55)
	h.vp = Viewport{ScrollY: 4, Width: 30, Height: 10}
	widget := Rect{X: 2, Y: 1, Width: 30, Height: 10}
	v := NewView(DefaultStyle())

	v.Paint(Translate(screen, widget, widget.X-h.vp.ScrollX, widget.Y-h.vp.ScrollY), h, nil)

	// line 5 holds the caret: row 5-4 of the widget
	_, _, style, _ := screen.GetContent(2+v.MarginLeft()+1, 1+1)
	_, bg, _ := style.Decompose()
	if bg != v.CurrentLineNumberBackground() {
		t.Errorf("current line number bg = %v, want %v", bg, v.CurrentLineNumberBackground())
	}
	mainc, _, _, _ := screen.GetContent(2+v.MarginLeft()+1, 1)
	if mainc != '5' {
		t.Errorf("first visible number = %q, want '5'", mainc)
	}
	// nothing outside the widget
	if mainc, _, _, _ := screen.GetContent(0, 0); mainc != ' ' {
		t.Errorf("drew %q outside the widget", mainc)
	}
}
