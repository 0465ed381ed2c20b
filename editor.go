package main

import (
	"bytes"
	"io"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/chenen3/codepad/codeview"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

const tabWidth = 4

// editor is the text widget. It owns the buffer and lays it out on the
// cell grid: line i sits on content row i, one row high.
type editor struct {
	baseView
	view *codeview.View

	buf      [][]rune
	line     int // caret line, 0-based
	col      int // caret column in runes, 0-based
	scrollY  int // first visible line
	scrollX  int // first visible text column, in cells
	inset    int // left inset reserved for the gutter
	dirty    bool
	complete *completion
}

func newEditor(src []byte, view *codeview.View) *editor {
	e := &editor{view: view}
	e.complete = newCompletion(e)
	e.Load(src)
	return e
}

// Load replaces the buffer with src and puts the caret at the start.
func (e *editor) Load(src []byte) {
	a := bytes.Split(src, []byte{'\n'})
	e.buf = make([][]rune, len(a))
	for i := range a {
		e.buf[i] = []rune(string(a[i]))
	}
	e.line, e.col, e.scrollY, e.scrollX = 0, 0, 0, 0
	e.dirty = false
	e.complete.Hide()
}

// Layout is nil until the editor has been given a size.
func (e *editor) Layout() codeview.Layout {
	if e.width <= 0 || e.height <= 0 {
		return nil
	}
	return e
}

func (e *editor) LineCount() int { return len(e.buf) }

func (e *editor) LineForOffset(off int) int {
	for i, l := range e.buf {
		if off <= len(l) {
			return i
		}
		off -= len(l) + 1
	}
	return len(e.buf) - 1
}

func (e *editor) LineForVertical(y int) int {
	return clamp(y, 0, len(e.buf)-1)
}

func (e *editor) LineTop(line int) int      { return line }
func (e *editor) LineBottom(line int) int   { return line + 1 }
func (e *editor) LineBaseline(line int) int { return line }

func (e *editor) PrimaryHorizontal(off int) int {
	line, col := e.position(off)
	return cellWidth(e.buf[line][:col])
}

func (e *editor) SelectionStart() int { return e.offset(e.line, e.col) }

func (e *editor) Viewport() codeview.Viewport {
	return codeview.Viewport{ScrollX: e.scrollX, ScrollY: e.scrollY, Width: e.width, Height: e.height}
}

func (e *editor) VisibleScreenRect() codeview.Rect {
	return codeview.Rect{X: e.x, Y: e.y, Width: e.width, Height: e.height}
}

func (e *editor) SetLeftInset(px int) { e.inset = px }

// PaintLine draws the glyphs of line, starting right of the gutter. The
// canvas shifts them left by scrollX.
func (e *editor) PaintLine(c codeview.Canvas, line int, style tcell.Style) {
	x := 0
	g := uniseg.NewGraphemes(string(e.buf[line]))
	for g.Next() {
		rs := g.Runes()
		if rs[0] == '\t' {
			// the background is already painted
			x += tabWidth - x%tabWidth
			continue
		}
		c.SetContent(e.inset+x, line, rs[0], rs[1:], style)
		x += g.Width()
	}
}

// offset returns the rune offset of (line, col), newlines included.
func (e *editor) offset(line, col int) int {
	off := col
	for i := 0; i < line; i++ {
		off += len(e.buf[i]) + 1
	}
	return off
}

func (e *editor) position(off int) (line, col int) {
	line = e.LineForOffset(off)
	col = off - e.offset(line, 0)
	return line, clamp(col, 0, len(e.buf[line]))
}

// cellWidth returns the number of cells taken by rs, tabs expanded.
func cellWidth(rs []rune) int {
	w := 0
	g := uniseg.NewGraphemes(string(rs))
	for g.Next() {
		if g.Str() == "\t" {
			w += tabWidth - w%tabWidth
			continue
		}
		w += g.Width()
	}
	return w
}

// columnAt returns the rune column whose cell span covers cell x.
func columnAt(rs []rune, x int) int {
	w, col := 0, 0
	g := uniseg.NewGraphemes(string(rs))
	for g.Next() {
		n := g.Width()
		if g.Str() == "\t" {
			n = tabWidth - w%tabWidth
		}
		// closer to the right edge of the glyph moves past it
		if x < w+(n+1)/2 {
			return col
		}
		w += n
		col += len(g.Runes())
	}
	return col
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func (e *editor) Draw() {
	// size the gutter before the text layer uses the inset
	e.inset = e.view.GutterWidth(e)
	c := codeview.Translate(screen, e.VisibleScreenRect(), e.x-e.scrollX, e.y-e.scrollY)
	e.view.Paint(c, e, e)
	e.complete.Draw()
	e.ShowCursor()
}

func (e *editor) ShowCursor() {
	x := e.x + e.inset + e.PrimaryHorizontal(e.SelectionStart()) - e.scrollX
	y := e.y + e.line - e.scrollY
	if y < e.y || y >= e.y+e.height || x < e.x+e.inset || x >= e.x+e.width {
		screen.HideCursor()
		return
	}
	screen.ShowCursor(x, y)
}

// textWidth is the number of text columns right of the gutter.
func (e *editor) textWidth() int {
	return max(e.width-e.view.GutterWidth(e), 1)
}

// scrollToCaret keeps the caret inside the viewport, line and column.
func (e *editor) scrollToCaret() {
	if e.line < e.scrollY {
		e.scrollY = e.line
	} else if e.height > 0 && e.line >= e.scrollY+e.height {
		e.scrollY = e.line - e.height + 1
	}

	x := cellWidth(e.buf[e.line][:e.col])
	if x < e.scrollX {
		e.scrollX = x
	} else if w := e.textWidth(); x >= e.scrollX+w {
		e.scrollX = x - w + 1
	}
}

func (e *editor) ScrollUp(delta int) {
	e.scrollY = clamp(e.scrollY-delta, 0, len(e.buf)-1)
	e.complete.Hide()
}

func (e *editor) ScrollDown(delta int) {
	e.scrollY = clamp(e.scrollY+delta, 0, len(e.buf)-1)
	e.complete.Hide()
}

func (e *editor) cursorLineAdd(delta int) {
	e.line = clamp(e.line+delta, 0, len(e.buf)-1)
	if e.col > len(e.buf[e.line]) {
		e.col = len(e.buf[e.line])
	}
	e.scrollToCaret()
}

func (e *editor) cursorColAdd(delta int) {
	e.line, e.col = e.position(e.SelectionStart() + delta)
	e.scrollToCaret()
}

func (e *editor) OnClick(x, y int) {
	e.complete.Hide()
	line := clamp(y-e.y+e.scrollY, 0, len(e.buf)-1)
	e.line = line
	e.col = columnAt(e.buf[line], x-e.x-e.inset+e.scrollX)
	e.scrollToCaret()
}

func (e *editor) CursorLineStart() { e.col = 0 }
func (e *editor) CursorLineEnd()   { e.col = len(e.buf[e.line]) }

// Insert puts r at the caret.
func (e *editor) Insert(r rune) {
	if r == '\n' {
		e.Enter()
		return
	}
	line := e.buf[e.line]
	rs := make([]rune, 0, len(line)+1)
	rs = append(append(append(rs, line[:e.col]...), r), line[e.col:]...)
	e.buf[e.line] = rs
	e.col++
	e.dirty = true
}

func (e *editor) InsertString(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	for _, r := range s {
		e.Insert(r)
	}
	e.scrollToCaret()
}

// Enter splits the current line at the caret.
func (e *editor) Enter() {
	line := e.buf[e.line]
	newline := make([]rune, len(line[e.col:]))
	copy(newline, line[e.col:])
	e.buf[e.line] = line[:e.col:e.col]
	e.buf = append(e.buf[:e.line+1], append([][]rune{newline}, e.buf[e.line+1:]...)...)
	e.line++
	e.col = 0
	e.dirty = true
	e.scrollToCaret()
}

func (e *editor) DeleteLeft() {
	// caret at the head of line, merge the line to previous one
	if e.col == 0 {
		if e.line == 0 {
			return
		}
		prev := e.buf[e.line-1]
		col := len(prev)
		e.buf[e.line-1] = append(prev[:col:col], e.buf[e.line]...)
		e.buf = append(e.buf[:e.line], e.buf[e.line+1:]...)
		e.line--
		e.col = col
		e.dirty = true
		e.scrollToCaret()
		return
	}

	line := e.buf[e.line]
	e.buf[e.line] = append(line[:e.col-1:e.col-1], line[e.col:]...)
	e.col--
	e.dirty = true
}

// deleteBefore removes n runes left of the caret on the current line.
func (e *editor) deleteBefore(n int) {
	n = min(n, e.col)
	line := e.buf[e.line]
	e.buf[e.line] = append(line[:e.col-n:e.col-n], line[e.col:]...)
	e.col -= n
	e.dirty = true
}

func (e *editor) DeleteToLineStart() {
	e.deleteBefore(e.col)
}

func (e *editor) DeleteToLineEnd() {
	e.buf[e.line] = e.buf[e.line][:e.col]
	e.dirty = true
}

// CopyLine puts the current line on the system clipboard.
func (e *editor) CopyLine() error {
	return clipboard.WriteAll(string(e.buf[e.line]))
}

// Paste inserts the system clipboard at the caret.
func (e *editor) Paste() error {
	s, err := clipboard.ReadAll()
	if err != nil {
		return err
	}
	e.InsertString(s)
	return nil
}

// Line and Column are 1-based, for the status bar.
func (e *editor) Line() int   { return e.line + 1 }
func (e *editor) Column() int { return cellWidth(e.buf[e.line][:e.col]) + 1 }

func (e *editor) Dirty() bool { return e.dirty }

func (e *editor) WriteTo(w io.Writer) (int64, error) {
	buf := make([][]byte, len(e.buf))
	for i, rs := range e.buf {
		buf[i] = []byte(string(rs))
	}
	n, err := w.Write(bytes.Join(buf, []byte{'\n'}))
	if err != nil {
		return int64(n), err
	}
	e.dirty = false
	return int64(n), nil
}

func (e *editor) HandleKey(ev *tcell.EventKey) {
	if e.complete.HandleKey(ev) {
		return
	}

	// typing refreshes the suggestions, anything else closes them
	refresh := false
	switch ev.Key() {
	case tcell.KeyUp:
		e.cursorLineAdd(-1)
	case tcell.KeyDown:
		e.cursorLineAdd(1)
	case tcell.KeyLeft:
		e.cursorColAdd(-1)
	case tcell.KeyRight:
		e.cursorColAdd(1)
	case tcell.KeyHome, tcell.KeyCtrlA:
		e.CursorLineStart()
	case tcell.KeyEnd, tcell.KeyCtrlE:
		e.CursorLineEnd()
	case tcell.KeyRune:
		e.Insert(ev.Rune())
		refresh = true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		e.DeleteLeft()
		refresh = e.complete.Visible()
	case tcell.KeyTab:
		e.Insert('\t')
	case tcell.KeyEnter:
		e.Enter()
	case tcell.KeyCtrlU:
		e.DeleteToLineStart()
	case tcell.KeyCtrlK:
		e.DeleteToLineEnd()
	case tcell.KeyCtrlC:
		if err := e.CopyLine(); err != nil {
			logger.Printf("copy: %s", err)
		}
	case tcell.KeyCtrlV:
		if err := e.Paste(); err != nil {
			logger.Printf("paste: %s", err)
		}
	case tcell.KeyCtrlSpace:
		refresh = true
	default:
		return
	}

	e.scrollToCaret()
	if refresh {
		e.complete.Update()
	} else {
		e.complete.Hide()
	}
}
