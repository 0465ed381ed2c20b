package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

type statusBar struct {
	baseView
	e       *editor
	message *bind[string]
}

func newStatusBar(e *editor) *statusBar {
	b := &statusBar{e: e}
	b.height = 1
	b.fixedSize = true
	b.message = Bind("", b.Draw)
	return b
}

func (b *statusBar) Draw() {
	style := tcell.StyleDefault.Background(tcell.ColorLightGray).Foreground(tcell.ColorBlack)
	for y := b.y; y <= b.y+b.height-1; y++ {
		for x := b.x; x <= b.x+b.width-1; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}

	s := fmt.Sprintf("line %d, column %d", b.e.Line(), b.e.Column())
	if b.e.Dirty() {
		s += " *"
	}
	if m := b.message.Get(); m != "" {
		s += "  " + m
	}
	for i, c := range s {
		if i > b.width-1 {
			break
		}
		screen.SetContent(b.x+i, b.y, c, nil, style)
	}

	keymap := "<ctrl+s> save, <ctrl+q> quit, <ctrl+space> complete"
	for i, c := range keymap {
		if i > b.width-1 {
			break
		}
		// align right
		x := b.x + b.width - 1 - len(keymap) + i
		if x <= b.x+len(s) {
			// do not cover the line number
			break
		}
		screen.SetContent(x, b.y, c, nil, style)
	}
}
