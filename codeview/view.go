package codeview

import "github.com/gdamore/tcell/v2"

// Frame reports what one paint did.
type Frame struct {
	CurrentLine int
	First, Last int
	GutterWidth int
	LayoutReady bool
}

// View decorates a Host with a gutter and a current-line highlight.
// It is not safe for concurrent use; it belongs to the UI goroutine.
type View struct {
	style  Style
	gutter Gutter
}

func NewView(s Style) *View {
	return &View{style: s}
}

// SetMetrics sets the font metrics used to size the gutter.
func (v *View) SetMetrics(m Metrics) { v.gutter.Metrics = m }

func (v *View) Style() Style           { return v.style }
func (v *View) SetStyle(s Style)       { v.style = s }
func (v *View) BodyStyle() tcell.Style { return v.style.body() }

func (v *View) CurrentLineBackground() tcell.Color     { return v.style.CurrentLineBackground }
func (v *View) SetCurrentLineBackground(c tcell.Color) { v.style.CurrentLineBackground = c }
func (v *View) CurrentLineEnabled() bool               { return v.style.CurrentLineEnabled }
func (v *View) SetCurrentLineEnabled(on bool)          { v.style.CurrentLineEnabled = on }

func (v *View) GutterEnabled() bool                 { return v.style.GutterEnabled }
func (v *View) SetGutterEnabled(on bool)            { v.style.GutterEnabled = on }
func (v *View) GutterBackground() tcell.Color       { return v.style.GutterBackground }
func (v *View) SetGutterBackground(c tcell.Color)   { v.style.GutterBackground = c }
func (v *View) GutterDivider() tcell.Color          { return v.style.GutterDivider }
func (v *View) SetGutterDivider(c tcell.Color)      { v.style.GutterDivider = c }
func (v *View) LineNumberText() tcell.Color         { return v.style.LineNumberText }
func (v *View) SetLineNumberText(c tcell.Color)     { v.style.LineNumberText = c }
func (v *View) MarginLeft() int                     { return v.style.MarginLeft }
func (v *View) SetMarginLeft(px int)                { v.style.MarginLeft = px }
func (v *View) MarginRight() int                    { return v.style.MarginRight }
func (v *View) SetMarginRight(px int)               { v.style.MarginRight = px }
func (v *View) DividerWidth() int                   { return v.style.DividerWidth }
func (v *View) SetDividerWidth(px int)              { v.style.DividerWidth = px }
func (v *View) CurrentLineNumberEnabled() bool      { return v.style.CurrentLineNumberEnabled }
func (v *View) SetCurrentLineNumberEnabled(on bool) { v.style.CurrentLineNumberEnabled = on }

func (v *View) CurrentLineNumberBackground() tcell.Color {
	return v.style.CurrentLineNumberBackground
}

func (v *View) SetCurrentLineNumberBackground(c tcell.Color) {
	v.style.CurrentLineNumberBackground = c
}

func (v *View) CurrentLineNumberText() tcell.Color     { return v.style.CurrentLineNumberText }
func (v *View) SetCurrentLineNumberText(c tcell.Color) { v.style.CurrentLineNumberText = c }

func (v *View) MaxSuggestions() int          { return v.style.MaxSuggestions }
func (v *View) SetMaxSuggestions(n int)      { v.style.MaxSuggestions = n }
func (v *View) DropdownItemHeight() int      { return v.style.ItemHeight }
func (v *View) SetDropdownItemHeight(px int) { v.style.ItemHeight = px }

// GutterWidth returns the width the gutter takes for the host's current
// line count, or 0 when the gutter is off.
func (v *View) GutterWidth(h Host) int {
	if !v.style.GutterEnabled {
		return 0
	}
	n := 0
	if l := h.Layout(); l != nil {
		n = l.LineCount()
	}
	return v.gutter.Width(n, &v.style)
}

// Paint runs one paint cycle on c, which must take content coordinates
// (see Translate). Layers from bottom to top: body and current-line
// background, text from tp, gutter. Nothing is kept between calls.
func (v *View) Paint(c Canvas, h Host, tp TextPainter) Frame {
	s := &v.style
	vp := h.Viewport()
	l := h.Layout()
	f := Frame{CurrentLine: CurrentLine(h), LayoutReady: l != nil}

	FillRect(c, vp.ScrollX, vp.ScrollY, vp.ScrollX+vp.Width, vp.ScrollY+vp.Height, s.body())
	if l != nil {
		f.First, f.Last = visibleLines(l, vp)
		if s.CurrentLineEnabled {
			paintCurrentLine(c, l, vp, f.CurrentLine, s)
		}
		if tp != nil {
			for i := f.First; i <= f.Last; i++ {
				style := s.body()
				if s.CurrentLineEnabled && i == f.CurrentLine {
					style = s.currentLine()
				}
				tp.PaintLine(c, i, style)
			}
		}
	}

	if s.GutterEnabled {
		f.GutterWidth = v.gutter.Draw(c, l, vp, s, f.CurrentLine)
	}
	if in, ok := h.(Insetter); ok {
		in.SetLeftInset(f.GutterWidth)
	}
	return f
}

// PlaceDropdown computes where the suggestion popup goes. It reports false
// when there is nothing to show or the host has no layout yet.
func (v *View) PlaceDropdown(h Host, a Adapter) (Placement, bool) {
	l := h.Layout()
	if l == nil || a == nil || a.ItemCount() == 0 {
		return Placement{}, false
	}
	p := ComputePlacement(l, DropdownRequest{
		Caret:      h.SelectionStart(),
		Candidates: a.ItemCount(),
		ItemHeight: v.style.ItemHeight,
		MaxVisible: v.style.MaxSuggestions,
		Screen:     h.VisibleScreenRect(),
		ScrollY:    h.Viewport().ScrollY,
	})
	return p, true
}
