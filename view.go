package main

import (
	"github.com/gdamore/tcell/v2"
)

type View interface {
	SetPos(x, y, width, height int)
	Pos() (x, y, width, height int)
	Draw()
	FixedSize() bool
	// HandleKey is used to operate inside a view.
	HandleKey(*tcell.EventKey)
	OnFocus()
	OnBlur()
	OnClick(x, y int)
}

// scroller is implemented by views that follow the mouse wheel.
type scroller interface {
	ScrollUp(delta int)
	ScrollDown(delta int)
}

type baseView struct {
	x, y          int
	width, height int
	fixedSize     bool
	focused       bool
}

func (v *baseView) SetPos(x, y, width, height int) {
	v.x = x
	v.y = y
	v.width = width
	v.height = height
}

func (v *baseView) Pos() (int, int, int, int) { return v.x, v.y, v.width, v.height }
func (v *baseView) FixedSize() bool           { return v.fixedSize }
func (v *baseView) OnFocus()                  { v.focused = true }
func (v *baseView) OnBlur()                   { v.focused = false }
func (v *baseView) Focused() bool             { return v.focused }
func (v *baseView) OnClick(int, int)          {}
func (v *baseView) HandleKey(*tcell.EventKey) {}

type vstack struct {
	baseView
	Views []View
}

func VStack(v ...View) *vstack {
	return &vstack{Views: v}
}

func (v *vstack) OnClick(x, y int) {
	for _, view := range v.Views {
		if inView(view, x, y) {
			view.OnClick(x, y)
			return
		}
	}
}

// layout gives fixed size views their own height and shares the rest
// evenly among the others, top to bottom.
func (v *vstack) layout() {
	flexible, remain := 0, v.height
	for _, view := range v.Views {
		if view.FixedSize() {
			_, _, _, h := view.Pos()
			remain -= h
		} else {
			flexible++
		}
	}
	share := 0
	if flexible > 0 {
		share = remain / flexible
	}

	y := v.y
	for _, view := range v.Views {
		h := share
		if view.FixedSize() {
			_, _, _, h = view.Pos()
		}
		view.SetPos(v.x, y, v.width, h)
		y += h
	}
}

func (v *vstack) Draw() {
	v.layout()
	for _, view := range v.Views {
		view.Draw()
	}
}

func inView(v View, x, y int) bool {
	x1, y1, w, h := v.Pos()
	return x1 <= x && x < x1+w && y1 <= y && y < y1+h
}
