// Package window implements rectangular views onto a terminal.
//
// A Window owns a cell buffer and a cursor. Writes go to the buffer; Refresh
// copies the changed cells to the terminal, parents first. Child windows are
// placed relative to their parent and share the terminal, the color pair
// registry and the input events of the root.
//
// Windows are not safe for concurrent use, and none of them may be used
// after the terminal context that created the root has been closed.
package window

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/termwin/logger"
	"github.com/hnimtadd/termwin/terminal/color"
	"github.com/hnimtadd/termwin/terminal/coordinate"
	"github.com/hnimtadd/termwin/terminal/interpreter"
	"github.com/hnimtadd/termwin/terminal/screen"
	"github.com/hnimtadd/termwin/terminal/size"
)

// Env is what every window of one terminal shares.
type Env struct {
	Screen tcell.Screen
	Pairs  *color.Registry
	// Events delivers terminal input. A closed channel reads as "no key".
	Events <-chan tcell.Event
	Logger logger.Logger
	// TabWidth is the tabstop interval of new windows, 0 for the default.
	TabWidth uint8

	// inputClosed is set once Events has been found closed.
	inputClosed bool
}

type Window struct {
	env *Env
	// parent is used to refresh ancestors first, it does not own w.
	parent *Window
	// x, y is the origin relative to the parent.
	x, y int

	buf   *screen.Buffer
	chain *interpreter.Chain

	// timeout of ReadKey: negative blocks, zero polls.
	timeout time.Duration
}

// NewRoot creates the window covering the whole terminal.
func NewRoot(env *Env) *Window {
	if env.Logger == nil {
		env.Logger = logger.Discard
	}
	if env.Pairs == nil {
		env.Pairs = color.NewRegistry(1, env.Logger)
	}
	w, h := env.Screen.Size()
	return newWindow(env, nil, 0, 0, w, h)
}

func newWindow(env *Env, parent *Window, x, y, width, height int) *Window {
	buf := screen.NewBuffer(size.CellCountInt(width), size.CellCountInt(height), env.Pairs)
	if env.TabWidth > 0 {
		buf.SetTabInterval(env.TabWidth)
	}
	return &Window{
		env:     env,
		parent:  parent,
		x:       x,
		y:       y,
		buf:     buf,
		chain:   interpreter.NewChain(env.Logger),
		timeout: -1,
	}
}

// Parent returns the window w was created from, nil for the root.
func (w *Window) Parent() *Window {
	return w.parent
}

// Origin is the position of w relative to its parent.
func (w *Window) Origin() coordinate.Point[int] {
	return coordinate.NewPoint(w.x, w.y)
}

func (w *Window) Dimension() (width, height int) {
	cols, rows := w.buf.Size()
	return int(cols), int(rows)
}

// Cursor returns the cursor position inside w.
func (w *Window) Cursor() coordinate.Point[int] {
	return coordinate.NewPoint(int(w.buf.Cursor.X), int(w.buf.Cursor.Y))
}

// Text returns the plain content of w, one line per row.
func (w *Window) Text() string {
	return w.buf.PlainString()
}

// Refresh brings the terminal up to date with w: ancestors are refreshed
// first, so w is drawn over them.
func (w *Window) Refresh() {
	w.paint()
	w.env.Screen.Show()
}

func (w *Window) paint() {
	if w.parent != nil {
		w.parent.paint()
	}
	x, y := w.origin()
	w.buf.Paint(w.env.Screen, x, y)
}

// Touch marks all of w as changed; the next Refresh redraws it even where
// other windows painted over it.
func (w *Window) Touch() {
	w.buf.Touch()
}

// Clear empties w and homes the cursor.
func (w *Window) Clear(opts ...RenderOption) {
	o := newRenderOptions(opts)
	w.buf.Clear()
	w.finish(o)
}

// ClearLine empties row y of w. The cursor does not move.
func (w *Window) ClearLine(y int, opts ...RenderOption) {
	o := newRenderOptions(opts)
	w.buf.ClearLine(size.CellCountInt(y))
	w.finish(o)
}

// SetTimeout sets how long ReadKey waits: negative blocks, zero returns at
// once.
func (w *Window) SetTimeout(d time.Duration) {
	if d == w.timeout {
		return
	}
	w.timeout = d
	w.env.Logger.Debug("input timeout changed", "timeout", d)
}

func (w *Window) Timeout() time.Duration {
	return w.timeout
}
