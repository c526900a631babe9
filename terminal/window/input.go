package window

import (
	"iter"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/termwin/terminal/keys"
)

// ReadKey waits for one key press according to timeout (see SetTimeout).
// It returns keys.KeyNone when the wait expired or the input has been
// closed.
func (w *Window) ReadKey(timeout time.Duration) keys.Event {
	w.SetTimeout(timeout)

	var expired <-chan time.Time
	if w.timeout > 0 {
		timer := time.NewTimer(w.timeout)
		defer timer.Stop()
		expired = timer.C
	}
	for {
		ev, ok := w.nextEvent(expired)
		if !ok {
			return keys.Of(keys.KeyNone)
		}
		if key, ok := keys.FromTcell(ev); ok {
			return key
		}
	}
}

func (w *Window) nextEvent(expired <-chan time.Time) (tcell.Event, bool) {
	if w.timeout == 0 {
		select {
		case ev, ok := <-w.env.Events:
			return w.received(ev, ok)
		default:
			return nil, false
		}
	}
	// expired is nil when blocking, that case never fires.
	select {
	case ev, ok := <-w.env.Events:
		return w.received(ev, ok)
	case <-expired:
		return nil, false
	}
}

func (w *Window) received(ev tcell.Event, ok bool) (tcell.Event, bool) {
	if !ok {
		w.env.inputClosed = true
	}
	return ev, ok
}

// Keys returns the key presses of w as a sequence. Keys found in
// reactions run their action and are not yielded; everything else,
// keys.KeyNone on timeout included, is yielded. The sequence ends when the
// caller stops ranging over it or the input is closed.
func (w *Window) Keys(reactions map[keys.Event]func(), timeout time.Duration) iter.Seq[keys.Event] {
	return func(yield func(keys.Event) bool) {
		for {
			key := w.ReadKey(timeout)
			if w.env.inputClosed {
				return
			}
			if react, ok := reactions[key]; ok {
				react()
				continue
			}
			if !yield(key) {
				return
			}
		}
	}
}
