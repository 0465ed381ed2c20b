package codeview

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// style file keys
const (
	keyBackground              = "body.background"
	keyForeground              = "body.foreground"
	keyCurrentLineEnabled      = "currentLine.enabled"
	keyCurrentLineBackground   = "currentLine.background"
	keyGutterEnabled           = "gutter.enabled"
	keyGutterBackground        = "gutter.background"
	keyGutterDivider           = "gutter.divider"
	keyGutterText              = "gutter.text"
	keyMarginLeft              = "gutter.marginLeft"
	keyMarginRight             = "gutter.marginRight"
	keyDividerWidth            = "gutter.dividerWidth"
	keyCurrentNumberEnabled    = "gutter.current.enabled"
	keyCurrentNumberBackground = "gutter.current.background"
	keyCurrentNumberText       = "gutter.current.text"
	keyMaxSuggestions          = "dropdown.maxSuggestions"
	keyItemHeight              = "dropdown.itemHeight"
)

func colorFields(s *Style) map[string]*tcell.Color {
	return map[string]*tcell.Color{
		keyBackground:              &s.Background,
		keyForeground:              &s.Foreground,
		keyCurrentLineBackground:   &s.CurrentLineBackground,
		keyGutterBackground:        &s.GutterBackground,
		keyGutterDivider:           &s.GutterDivider,
		keyGutterText:              &s.LineNumberText,
		keyCurrentNumberBackground: &s.CurrentLineNumberBackground,
		keyCurrentNumberText:       &s.CurrentLineNumberText,
	}
}

func intFields(s *Style) map[string]*int {
	return map[string]*int{
		keyMarginLeft:     &s.MarginLeft,
		keyMarginRight:    &s.MarginRight,
		keyDividerWidth:   &s.DividerWidth,
		keyMaxSuggestions: &s.MaxSuggestions,
		keyItemHeight:     &s.ItemHeight,
	}
}

func boolFields(s *Style) map[string]*bool {
	return map[string]*bool{
		keyCurrentLineEnabled:   &s.CurrentLineEnabled,
		keyGutterEnabled:        &s.GutterEnabled,
		keyCurrentNumberEnabled: &s.CurrentLineNumberEnabled,
	}
}

// LoadStyle overlays the JSON style document data on base.
// Keys missing from data keep the value from base.
func LoadStyle(data []byte, base Style) (Style, error) {
	if !gjson.ValidBytes(data) {
		return base, errors.New("style: invalid json")
	}
	s := base
	for key, dst := range colorFields(&s) {
		r := gjson.GetBytes(data, key)
		if !r.Exists() {
			continue
		}
		c, err := ParseColor(r.String())
		if err != nil {
			return base, fmt.Errorf("style: %s: %w", key, err)
		}
		*dst = c
	}
	for key, dst := range intFields(&s) {
		r := gjson.GetBytes(data, key)
		if !r.Exists() {
			continue
		}
		if r.Type != gjson.Number {
			return base, fmt.Errorf("style: %s: not a number: %s", key, r.Raw)
		}
		*dst = int(r.Int())
	}
	for key, dst := range boolFields(&s) {
		r := gjson.GetBytes(data, key)
		if !r.Exists() {
			continue
		}
		if !r.IsBool() {
			return base, fmt.Errorf("style: %s: not a bool: %s", key, r.Raw)
		}
		*dst = r.Bool()
	}
	return s, nil
}

// LoadStyleFile reads a style file. A missing file yields base.
func LoadStyleFile(path string, base Style) (Style, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return base, err
	}
	s, err := LoadStyle(data, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// EncodeStyle writes s as a style document accepted by LoadStyle.
func EncodeStyle(s Style) ([]byte, error) {
	data := []byte("{}")
	var err error
	set := func(key string, v any) {
		if err != nil {
			return
		}
		data, err = sjson.SetBytes(data, key, v)
	}
	for key, c := range colorFields(&s) {
		set(key, FormatColor(*c))
	}
	for key, n := range intFields(&s) {
		set(key, *n)
	}
	for key, b := range boolFields(&s) {
		set(key, *b)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// ParseColor accepts "#rrggbb", a tcell color name, or "default".
func ParseColor(s string) (tcell.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "default" {
		return tcell.ColorDefault, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return tcell.ColorDefault, err
		}
		r, g, b := c.RGB255()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
	}
	if c, ok := tcell.ColorNames[strings.ToLower(s)]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
}

// FormatColor is the inverse of ParseColor: palette colors keep their
// name, the others are written as "#rrggbb".
func FormatColor(c tcell.Color) string {
	if c == tcell.ColorDefault {
		return "default"
	}
	if c&tcell.ColorIsRGB == 0 {
		if name := colorName(c); name != "" {
			return name
		}
	}
	r, g, b := c.RGB()
	if r < 0 {
		return "default"
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
}

// colorName returns the first name of c in alphabetical order, so that
// aliases such as "gray" and "grey" always give the same answer.
func colorName(c tcell.Color) string {
	var name string
	for n, v := range tcell.ColorNames {
		if v == c && (name == "" || n < name) {
			name = n
		}
	}
	return name
}
