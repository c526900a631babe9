package window

import (
	"strings"

	"github.com/hnimtadd/termwin/terminal/color"
	"github.com/hnimtadd/termwin/terminal/coordinate"
	"github.com/hnimtadd/termwin/terminal/screen"
	"github.com/hnimtadd/termwin/terminal/size"
	"github.com/hnimtadd/termwin/terminal/style"
	"golang.org/x/text/unicode/norm"
)

type renderOptions struct {
	at        *coordinate.Point[int]
	noRefresh bool
}

type RenderOption func(*renderOptions)

// At moves the cursor to (x, y) before writing. A position outside the
// window is ignored.
func At(x, y int) RenderOption {
	return func(o *renderOptions) {
		p := coordinate.NewPoint(x, y)
		o.at = &p
	}
}

// NoRefresh leaves the terminal alone; the change shows on the next Refresh.
func NoRefresh() RenderOption {
	return func(o *renderOptions) {
		o.noRefresh = true
	}
}

func newRenderOptions(opts []RenderOption) renderOptions {
	var o renderOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (w *Window) start(o renderOptions) {
	if o.at != nil {
		w.buf.Move(size.CellCountInt(o.at.X), size.CellCountInt(o.at.Y))
	}
}

func (w *Window) finish(o renderOptions) {
	if !o.noRefresh {
		w.Refresh()
	}
}

// Style is the look of a PrettyRender call.
type Style struct {
	Fg, Bg color.Color
	Modes  style.Mode
}

// Render writes plain text at the cursor with the current attribute.
//
// Text is written line by line. A line that would end on the last row is
// written without its terminator, so the window never needs to scroll, and
// ends the render; a line that would run past the last row is cut at the
// bottom-right cell. Render reports whether all of text was written.
func (w *Window) Render(text string, opts ...RenderOption) bool {
	o := newRenderOptions(opts)
	w.start(o)
	complete := w.render(text)
	w.finish(o)
	return complete
}

func (w *Window) render(text string) bool {
	width, height := w.Dimension()
	if width == 0 || height == 0 {
		return text == ""
	}
	for _, line := range splitLines(norm.NFC.String(text)) {
		x, y := int(w.buf.Cursor.X), int(w.buf.Cursor.Y)
		if w.buf.Cursor.PendingWrap {
			// The bottom-right cell is taken, nothing fits anymore.
			return false
		}
		end := y + (x+screen.StringWidth(line))/width
		switch {
		case end < height-1:
			// Tabs can make a line wider than its estimate.
			dropped := w.buf.Dropped()
			w.buf.PrintString(toLineFeed(line))
			if w.buf.Dropped() != dropped {
				return false
			}
		case end == height-1:
			w.buf.PrintString(trimTerminator(line))
			return false
		default:
			remaining := (width - x) + (height-1-y)*width
			w.buf.PrintString(truncate(line, remaining))
			return false
		}
	}
	return true
}

// PrettyRender writes text with the modes and colors of st. The attribute
// is reset before and after, whatever was written.
func (w *Window) PrettyRender(text string, st Style, opts ...RenderOption) bool {
	o := newRenderOptions(opts)
	w.start(o)
	complete := w.prettyRender(text, st)
	w.finish(o)
	return complete
}

func (w *Window) prettyRender(text string, st Style) bool {
	w.ResetAttributes()
	defer w.ResetAttributes()
	w.AddModes(st.Modes)
	w.SetColors(st.Fg, st.Bg)
	return w.render(text)
}

// SafeRender writes text that may contain control sequences: SGR colors
// and intensity, cursor positioning, erase display and DEC line drawing
// glyphs. Other escapes are shown literally, the ESC underlined. The
// attribute is reset before and after. SafeRender reports false when a
// plain run of text did not fit.
func (w *Window) SafeRender(text string, opts ...RenderOption) bool {
	o := newRenderOptions(opts)
	w.start(o)
	complete := w.chain.Run(w, text)
	w.finish(o)
	return complete
}

// splitLines splits s after every line terminator (LF, CR LF or CR), keeping
// the terminators.
func splitLines(s string) []string {
	var lines []string
	for s != "" {
		i := strings.IndexAny(s, "\r\n")
		if i < 0 {
			lines = append(lines, s)
			break
		}
		n := i + 1
		if s[i] == '\r' && n < len(s) && s[n] == '\n' {
			n++
		}
		lines = append(lines, s[:n])
		s = s[n:]
	}
	return lines
}

// toLineFeed turns a CR LF terminator into a single line feed, so the
// carriage return does not send the line feed's clear to end of line back
// over the line.
func toLineFeed(line string) string {
	if strings.HasSuffix(line, "\r\n") {
		return line[:len(line)-2] + "\n"
	}
	return line
}

func trimTerminator(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// truncate returns the longest prefix of line that is at most n cells wide.
func truncate(line string, n int) string {
	used := 0
	for i, r := range line {
		used += screen.RuneWidth(r)
		if used > n {
			return line[:i]
		}
	}
	return line
}
