// Package termwin draws text into windows on a character-cell terminal.
//
// Run owns the terminal for the duration of a callback:
//
//	err := termwin.Run(terminal.Options{}, func(root *window.Window) error {
//		root.SafeRender("\x1b[32mready\x1b[0m\n")
//		for key := range root.Keys(nil, -1) {
//			if key == keys.Of(keys.KeyEscape) {
//				return nil
//			}
//		}
//		return nil
//	})
package termwin

import (
	"github.com/go-errors/errors"
	"github.com/hnimtadd/termwin/terminal"
	"github.com/hnimtadd/termwin/terminal/window"
)

// Run opens the terminal, calls fn with the root window and restores the
// terminal afterwards. The terminal is restored also when fn panics; the
// panic is returned as an *errors.Error carrying the stack.
func Run(opts terminal.Options, fn func(root *window.Window) error) (err error) {
	ctx, err := terminal.Open(opts)
	if err != nil {
		return err
	}
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrap(r, 2)
		}
		if cerr := ctx.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(ctx.Root())
}
