package window

import (
	"github.com/hnimtadd/termwin/terminal/color"
	"github.com/hnimtadd/termwin/terminal/handler"
	"github.com/hnimtadd/termwin/terminal/size"
	"github.com/hnimtadd/termwin/terminal/style"
)

var _ handler.Handler = (*Window)(nil)

// ResetAttributes turns every mode off and selects the default pair
// (curses attrset(0)).
func (w *Window) ResetAttributes() {
	w.buf.Cursor.Attr.Reset()
}

// AddModes turns modes on for subsequent writes (attron).
func (w *Window) AddModes(m style.Mode) {
	w.buf.Cursor.Attr.Modes |= m
}

// RemoveModes turns modes off for subsequent writes (attroff).
func (w *Window) RemoveModes(m style.Mode) {
	w.buf.Cursor.Attr.Modes &^= m
}

// SetColors selects the (fg, bg) pair for subsequent writes. When the
// terminal has no pairs left, the default pair is used.
func (w *Window) SetColors(fg, bg color.Color) {
	w.buf.Cursor.Attr.Pair = w.env.Pairs.Get(fg, bg)
}

// MoveCursor moves the cursor to (x, y) inside w. It reports false, leaving
// the cursor where it was, when the position is outside w.
func (w *Window) MoveCursor(x, y int) bool {
	return w.buf.Move(size.CellCountInt(x), size.CellCountInt(y))
}

func (w *Window) EraseDisplay() {
	w.buf.Clear()
}

func (w *Window) PutGlyph(r rune) {
	w.buf.PrintGlyph(r)
}

// WriteText is Render without refresh.
func (w *Window) WriteText(text string) bool {
	return w.render(text)
}

// WriteStyled is PrettyRender with default colors and without refresh.
func (w *Window) WriteStyled(text string, modes style.Mode) bool {
	return w.prettyRender(text, Style{Fg: color.Default, Bg: color.Default, Modes: modes})
}
