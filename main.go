package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/chenen3/codepad/codeview"
	"github.com/gdamore/tcell/v2"
)

var (
	screen tcell.Screen
	logger = log.New(io.Discard, "", 0)
)

func main() {
	os.Exit(run())
}

func defaultStylePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "codepad", "style.json")
}

func run() int {
	var (
		stylePath   = flag.String("style", defaultStylePath(), "path of the style file")
		suggestions = flag.Int("suggestions", 8, "maximum number of suggestions shown")
		printStyle  = flag.Bool("print-style", false, "print the effective style as JSON and exit")
		dump        = flag.Bool("dump", false, "print the first frame of the file and exit")
		color       = flag.Bool("color", false, "keep colors in the -dump output")
		width       = flag.Int("width", 80, "width of the -dump frame")
		height      = flag.Int("height", 24, "height of the -dump frame")
	)
	flag.Parse()
	filename := flag.Arg(0)

	tmp, err := os.OpenFile(filepath.Join(os.TempDir(), "codepad.log"), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Print(err)
		return 1
	}
	defer tmp.Close()
	logger = log.New(tmp, "", log.LstdFlags|log.Lshortfile)

	style, err := loadStyle(*stylePath, *suggestions)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	view := codeview.NewView(style)

	if *printStyle {
		data, err := codeview.EncodeStyle(view.Style())
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println(string(data))
		return 0
	}

	src, err := readSource(filename)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *dump {
		if err := dumpFrame(os.Stdout, src, view, *width, *height, *color); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	if err := edit(filename, src, view); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// loadStyle applies the style file on top of the defaults. An explicit
// -suggestions flag wins over the file.
func loadStyle(path string, suggestions int) (codeview.Style, error) {
	s := codeview.DefaultStyle()
	s.MaxSuggestions = suggestions
	if path != "" {
		var err error
		s, err = codeview.LoadStyleFile(path, s)
		if err != nil {
			return s, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "suggestions" {
			s.MaxSuggestions = suggestions
		}
	})
	return s, nil
}

// readSource returns the content of filename. A missing file is a new,
// empty buffer.
func readSource(filename string) ([]byte, error) {
	if filename == "" {
		return nil, nil
	}
	src, err := os.ReadFile(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return src, err
}

func save(filename string, e *editor) error {
	if filename == "" {
		return errors.New("no file name, start with: codepad <file>")
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := e.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return f.Close()
}

func edit(filename string, src []byte, view *codeview.View) error {
	tc, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = tc.Init(); err != nil {
		return err
	}
	tc.SetStyle(view.BodyStyle())
	tc.EnableMouse()
	tc.SetCursorStyle(tcell.CursorStyleDefault)
	tc.EnablePaste()
	tc.Clear()
	defer tc.Fini()
	screen = tc

	e := newEditor(src, view)
	status := newStatusBar(e)
	app := NewApp()
	app.SetBody(VStack(e, status))
	app.Focus(e)

	quitting := false
	app.Handle(tcell.KeyCtrlQ, func(*tcell.EventKey) {
		if e.Dirty() && !quitting {
			quitting = true
			status.message.Set("unsaved changes, <ctrl+q> again to quit")
			return
		}
		app.Close()
	})
	app.Handle(tcell.KeyCtrlS, func(*tcell.EventKey) {
		quitting = false
		if err := save(filename, e); err != nil {
			logger.Printf("save: %s", err)
			status.message.Set(err.Error())
			return
		}
		status.message.Set("saved " + filename)
	})

	logger.Printf("editing %q, %d bytes", filename, len(src))
	app.Run()
	return nil
}
