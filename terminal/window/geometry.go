package window

import (
	"errors"
	"fmt"

	"github.com/hnimtadd/termwin/terminal/size"
)

// ErrOutOfRange is matched by every geometry error.
var ErrOutOfRange = errors.New("out of range")

// RangeError names one window argument that does not fit into the
// container.
type RangeError struct {
	// Arg is "x", "y", "width" or "height".
	Arg   string
	Value int
	// Max is the largest value the argument could have taken.
	Max int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s is out of range: %d not in [0, %d]", e.Arg, e.Value, max(e.Max, 0))
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// validate checks a rectangle against a w x h container. Every violated
// bound yields its own *RangeError.
func validate(w, h, x, y, width, height int) error {
	var errs []error
	check := func(arg string, v, hi int) {
		if v < 0 || v > hi {
			errs = append(errs, &RangeError{Arg: arg, Value: v, Max: hi})
		}
	}
	check("x", x, w)
	check("y", y, h)
	check("width", width, w-x)
	check("height", height, h-y)
	return errors.Join(errs...)
}

// container returns the size of the area w is placed in: the parent, or
// the terminal for the root window.
func (w *Window) container() (width, height int) {
	if w.parent != nil {
		return w.parent.Dimension()
	}
	return w.env.Screen.Size()
}

// NewWindow creates a child window at (x, y) of w with the given size. It
// never clamps: any bound that does not fit into w is reported.
func (w *Window) NewWindow(x, y, width, height int) (*Window, error) {
	pw, ph := w.Dimension()
	if err := validate(pw, ph, x, y, width, height); err != nil {
		return nil, err
	}
	child := newWindow(w.env, w, x, y, width, height)
	w.env.Logger.Debug("window created",
		"x", x, "y", y, "width", width, "height", height)
	return child, nil
}

// NewWindowAt creates a child window at (x, y) that takes up the rest of w.
func (w *Window) NewWindowAt(x, y int) (*Window, error) {
	pw, ph := w.Dimension()
	return w.NewWindow(x, y, pw-x, ph-y)
}

// Move places w at (x, y) of its container, keeping its size and content.
func (w *Window) Move(x, y int) error {
	cw, ch := w.container()
	width, height := w.Dimension()
	if err := validate(cw, ch, x, y, width, height); err != nil {
		return err
	}
	w.x, w.y = x, y
	w.buf.Touch()
	return nil
}

// Resize changes the size of w, keeping its origin. Content in the part
// that survives is kept; the cursor is clamped.
func (w *Window) Resize(width, height int) error {
	cw, ch := w.container()
	if err := validate(cw, ch, w.x, w.y, width, height); err != nil {
		return err
	}
	w.buf.Resize(size.CellCountInt(width), size.CellCountInt(height))
	return nil
}

// origin is the absolute position of w on the terminal.
func (w *Window) origin() (x, y int) {
	x, y = w.x, w.y
	for p := w.parent; p != nil; p = p.parent {
		x += p.x
		y += p.y
	}
	return x, y
}
