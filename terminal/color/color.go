package color

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Color is one of the eight basic terminal colors or Default. The numbering
// follows the curses/ANSI order so that Color(n) is SGR 30+n (fg) and 40+n
// (bg).
type Color int

const (
	// Default is the terminal's own foreground or background color.
	Default Color = -1

	Black Color = iota - 1
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var names = map[Color]string{
	Default: "default",
	Black:   "black",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",
}

func (c Color) String() string {
	if name, ok := names[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Valid reports whether c is Default or one of the eight named colors.
func (c Color) Valid() bool {
	return c >= Default && c <= White
}

// Tcell converts the color to its terminal layer value. Invalid colors map
// to the terminal default.
func (c Color) Tcell() tcell.Color {
	if c == Default || !c.Valid() {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(int(c))
}

// Parse looks a color up by name, case-insensitively.
func Parse(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range names {
		if n == name {
			return c, nil
		}
	}
	return Default, fmt.Errorf("unknown color %q", name)
}
