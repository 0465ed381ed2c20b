package main

import (
	"github.com/chenen3/codepad/codeview"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// completion is the suggestion dropdown of the editor. Its items are the
// buffer's identifiers starting with the word left of the caret.
type completion struct {
	e       *editor
	prefix  []rune
	items   []string
	index   int
	visible bool
}

func newCompletion(e *editor) *completion {
	return &completion{e: e}
}

func (c *completion) ItemCount() int { return len(c.items) }
func (c *completion) Visible() bool  { return c.visible }

func (c *completion) Hide() {
	c.visible = false
	c.items = nil
	c.index = 0
}

// Update recomputes the suggestions for the word at the caret.
func (c *completion) Update() {
	e := c.e
	c.prefix = lastToken(e.buf[e.line], e.col)
	if len(c.prefix) == 0 {
		c.Hide()
		return
	}

	tree := new(node)
	buildTokenTree(tree, e.buf)
	var items []string
	for _, s := range tree.get(string(c.prefix)) {
		if s != string(c.prefix) {
			items = append(items, s)
		}
	}
	c.items = items
	c.index = 0
	// a style may allow no rows at all
	if c.rows() == 0 {
		c.Hide()
		return
	}
	c.visible = true
}

// Accept replaces the word at the caret with the selected item.
func (c *completion) Accept() {
	if !c.visible {
		return
	}
	item := c.items[c.index]
	c.e.deleteBefore(len(c.prefix))
	c.e.InsertString(item)
	c.Hide()
}

// HandleKey reports whether the key was taken by the dropdown.
func (c *completion) HandleKey(ev *tcell.EventKey) bool {
	if !c.visible {
		return false
	}
	switch ev.Key() {
	case tcell.KeyUp:
		if c.index > 0 {
			c.index--
		}
	case tcell.KeyDown:
		if c.index < c.rows()-1 {
			c.index++
		}
	case tcell.KeyEnter, tcell.KeyTab:
		c.Accept()
	case tcell.KeyESC:
		c.Hide()
	default:
		return false
	}
	return true
}

// rows is the number of items the dropdown shows.
func (c *completion) rows() int {
	return max(min(len(c.items), c.e.view.MaxSuggestions()), 0)
}

// Rect returns the dropdown rectangle on screen. The placement is
// computed again on every call since the caret or the viewport may have
// moved since the suggestions were refreshed.
func (c *completion) Rect() (codeview.Rect, bool) {
	if !c.visible || c.rows() == 0 {
		return codeview.Rect{}, false
	}
	e := c.e
	p, ok := e.view.PlaceDropdown(e, c)
	if !ok {
		return codeview.Rect{}, false
	}

	width := 0
	for _, s := range c.items[:c.rows()] {
		width = max(width, runewidth.StringWidth(s))
	}
	width += 2

	anchor := e.VisibleScreenRect()
	x := anchor.X + e.inset + p.HorizontalOffset - e.scrollX
	if x+width > anchor.Right() {
		x = max(anchor.Right()-width, anchor.X)
	}
	return codeview.Rect{X: x, Y: p.Top(anchor.Bottom()), Width: width, Height: p.Height}, true
}

func (c *completion) Draw() {
	r, ok := c.Rect()
	if !ok {
		return
	}
	v := c.e.view
	style := tcell.StyleDefault.Background(v.GutterBackground()).Foreground(v.Style().Foreground)
	itemHeight := max(v.DropdownItemHeight(), 1)

	codeview.FillRect(screen, r.X, r.Y, r.Right(), r.Bottom(), style)
	for i := 0; i < c.rows(); i++ {
		y := r.Y + i*itemHeight
		if y >= r.Bottom() {
			break
		}
		st := style
		if i == c.index {
			st = style.Reverse(true)
			codeview.FillRect(screen, r.X, y, r.Right(), y+itemHeight, st)
		}
		codeview.DrawText(screen, r.X+1, y, c.items[i], st)
	}
}
