package main

import "github.com/gdamore/tcell/v2"

// lines scrolled per mouse wheel notch
const wheelStep = 3

// Application framework
type App struct {
	body View

	focus  View
	done   chan struct{}
	keymap map[tcell.Key]func(*tcell.EventKey)
}

func NewApp() *App {
	return &App{
		done:   make(chan struct{}),
		keymap: make(map[tcell.Key]func(*tcell.EventKey)),
	}
}

func (a *App) SetBody(v View) {
	a.body = v
}

func (a *App) Close() {
	close(a.done)
}

func (a *App) Focus(v View) {
	if a.focus == v {
		return
	}

	if a.focus != nil {
		a.focus.OnBlur()
	}
	a.focus = v
	v.OnFocus()
}

func getHover(view View, x, y int) View {
	if !inView(view, x, y) {
		return nil
	}

	if s, ok := view.(*vstack); ok {
		for _, v := range s.Views {
			hover := getHover(v, x, y)
			if hover != nil {
				return hover
			}
		}
	}
	return view
}

// Handle registers f for key, ahead of the focused view.
func (a *App) Handle(key tcell.Key, f func(*tcell.EventKey)) {
	a.keymap[key] = f
}

// Run will not return until Close. The whole body is redrawn after every
// event that may change it.
func (a *App) Run() {
	a.resize()
	screen.Show()
	for {
		select {
		case <-a.done:
			return
		default:
		}

		switch ev := screen.PollEvent().(type) {
		case nil:
			// screen finalized
			return
		case *tcell.EventResize:
			a.resize()
			screen.Sync()
			continue
		case *tcell.EventMouse:
			if !a.handleMouse(ev) {
				continue
			}
		case *tcell.EventKey:
			a.handleKey(ev)
		}
		a.body.Draw()
		screen.Show()
	}
}

func (a *App) resize() {
	width, height := screen.Size()
	a.body.SetPos(0, 0, width, height)
	a.body.Draw()
}

// handleMouse reports whether the event needs a redraw.
func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	view := getHover(a.body, x, y)
	if view == nil {
		return false
	}
	switch ev.Buttons() {
	case tcell.Button1:
		a.Focus(view)
		view.OnClick(x, y)
	case tcell.WheelUp:
		if s, ok := view.(scroller); ok {
			s.ScrollUp(wheelStep)
		}
	case tcell.WheelDown:
		if s, ok := view.(scroller); ok {
			s.ScrollDown(wheelStep)
		}
	default:
		// do not render on mouse motion
		return false
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if f, ok := a.keymap[ev.Key()]; ok {
		f(ev)
		return
	}
	if a.focus != nil {
		a.focus.HandleKey(ev)
	}
}
