// Package terminal owns the terminal for the lifetime of a program: it
// configures the terminal layer on Open, creates the root window and the
// color pair registry, pumps input events, and restores the terminal on
// Close.
package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/gdamore/tcell/v2/encoding"
	"github.com/go-errors/errors"
	"github.com/hnimtadd/termwin/logger"
	"github.com/hnimtadd/termwin/terminal/color"
	"github.com/hnimtadd/termwin/terminal/window"
)

// maxColorPairs is the largest pair table a terminal may advertise.
const maxColorPairs = 32767

type (
	Options struct {
		// Screen is the terminal layer. Nil opens the controlling terminal.
		Screen tcell.Screen
		// MaxColorPairs caps the pair table, pair 0 included. Zero derives it
		// from the number of colors the terminal supports.
		MaxColorPairs int
		// TabWidth is the tabstop interval of every window, 0 for 8.
		TabWidth uint8
		// Mouse turns mouse reporting on; clicks read as keys.KeyMouse.
		Mouse bool

		Logger logger.Logger
	}

	// Context is an opened terminal. Windows created from Root must not be
	// used after Close.
	Context struct {
		screen tcell.Screen
		pairs  *color.Registry
		root   *window.Window

		events chan tcell.Event
		quit   chan struct{}

		closeOnce sync.Once

		logger logger.Logger
	}
)

// Open takes over the terminal: raw input without echo, hidden cursor and
// colors. The caller must Close the context, also on error paths.
func Open(opts Options) (*Context, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Discard
	}

	// Make legacy charsets available, the way setlocale does for curses.
	encoding.Register()

	scr := opts.Screen
	if scr == nil {
		var err error
		if scr, err = tcell.NewScreen(); err != nil {
			return nil, errors.WrapPrefix(err, "open terminal", 0)
		}
	}
	if err := scr.Init(); err != nil {
		return nil, errors.WrapPrefix(err, "initialize terminal", 0)
	}
	scr.HideCursor()
	if opts.Mouse {
		scr.EnableMouse()
	}
	scr.Clear()

	limit := opts.MaxColorPairs
	if limit <= 0 {
		limit = colorPairs(scr.Colors())
	}
	pairs := color.NewRegistry(limit, logger.With(log, "component", "pairs"))

	c := &Context{
		screen: scr,
		pairs:  pairs,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
		logger: log,
	}
	go scr.ChannelEvents(c.events, c.quit)

	c.root = window.NewRoot(&window.Env{
		Screen:   scr,
		Pairs:    pairs,
		Events:   c.events,
		Logger:   logger.With(log, "component", "window"),
		TabWidth: opts.TabWidth,
	})

	w, h := scr.Size()
	log.Info("terminal opened", "width", w, "height", h, "colors", scr.Colors(), "pairs", limit)
	return c, nil
}

// colorPairs derives the pair table size from the number of colors, the
// way curses computes COLOR_PAIRS.
func colorPairs(colors int) int {
	if colors <= 1 {
		return 1
	}
	return min(colors*colors, maxColorPairs)
}

// Root is the window covering the whole terminal.
func (c *Context) Root() *window.Window {
	return c.root
}

func (c *Context) Pairs() *color.Registry {
	return c.pairs
}

func (c *Context) Screen() tcell.Screen {
	return c.screen
}

// Close stops the input pump and restores the terminal. Calling it more
// than once is harmless.
func (c *Context) Close() error {
	c.closeOnce.Do(func() {
		close(c.quit)
		c.screen.ShowCursor(0, 0)
		c.screen.Fini()
		c.logger.Info("terminal closed", "pairs", c.pairs.Bound())
	})
	return nil
}
