package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chenen3/codepad/codeview"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

// dumpFrame paints the first frame of src on a width x height editor and
// writes it to w. With color, each run of cells sharing a style is
// rendered with true colors; otherwise trailing blanks are trimmed.
func dumpFrame(w io.Writer, src []byte, view *codeview.View, width, height int, color bool) error {
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		return err
	}
	defer sim.Fini()
	sim.SetSize(width, height)

	prev := screen
	screen = sim
	defer func() { screen = prev }()

	e := newEditor(src, view)
	e.SetPos(0, 0, width, height)
	e.Draw()

	var r *lipgloss.Renderer
	if color {
		r = lipgloss.NewRenderer(w)
		r.SetColorProfile(termenv.TrueColor)
	}

	var b strings.Builder
	for y := 0; y < height; y++ {
		var run strings.Builder
		var runStyle tcell.Style
		var line strings.Builder
		flush := func() {
			if r != nil {
				line.WriteString(renderRun(r, run.String(), runStyle))
			} else {
				line.WriteString(run.String())
			}
			run.Reset()
		}
		for x := 0; x < width; {
			mainc, combc, style, cw := sim.GetContent(x, y)
			if style != runStyle && run.Len() > 0 {
				flush()
			}
			runStyle = style
			run.WriteRune(mainc)
			for _, c := range combc {
				run.WriteRune(c)
			}
			x += max(cw, 1)
		}
		flush()
		if r != nil {
			b.WriteString(line.String())
		} else {
			b.WriteString(strings.TrimRight(line.String(), " "))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func renderRun(r *lipgloss.Renderer, s string, style tcell.Style) string {
	fg, bg, attr := style.Decompose()
	ls := r.NewStyle()
	if fg != tcell.ColorDefault {
		ls = ls.Foreground(hexColor(fg))
	}
	if bg != tcell.ColorDefault {
		ls = ls.Background(hexColor(bg))
	}
	if attr&tcell.AttrReverse != 0 {
		ls = ls.Reverse(true)
	}
	return ls.Render(s)
}

// hexColor resolves palette colors too, lipgloss only knows "#rrggbb" and
// ANSI indexes.
func hexColor(c tcell.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%06x", c.Hex()))
}
