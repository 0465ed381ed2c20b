package codeview

// CurrentLine returns the visual line holding the selection start,
// or 0 while the host has no layout.
func CurrentLine(h Host) int {
	l := h.Layout()
	if l == nil {
		return 0
	}
	return l.LineForOffset(h.SelectionStart())
}

// paintCurrentLine fills the full scroll width of line, beneath the text.
func paintCurrentLine(c Canvas, l Layout, vp Viewport, line int, s *Style) {
	FillRect(c, vp.ScrollX, l.LineTop(line), vp.ScrollX+vp.Width, l.LineBottom(line), s.currentLine())
}
