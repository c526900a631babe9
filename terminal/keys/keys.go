// Package keys decodes raw key codes into events.
//
// Codes follow the ncurses numbering: values below KeyMin are characters,
// special keys start at KeyMin. A few special keys (escape, no key) live
// below KeyMin and are recognized before character decoding.
package keys

import "fmt"

type Key int

const (
	// KeyNone is returned when a read timed out without input.
	KeyNone Key = -1
	// KeyChar marks an event carrying a decoded character in Rune.
	KeyChar Key = 0

	KeyEscape Key = 27

	KeyMin       Key = 257
	KeyDown      Key = 258
	KeyUp        Key = 259
	KeyLeft      Key = 260
	KeyRight     Key = 261
	KeyHome      Key = 262
	KeyBackspace Key = 263
	KeyF0        Key = 264
	KeyF1        Key = KeyF0 + 1
	KeyF2        Key = KeyF0 + 2
	KeyF3        Key = KeyF0 + 3
	KeyF4        Key = KeyF0 + 4
	KeyF5        Key = KeyF0 + 5
	KeyF6        Key = KeyF0 + 6
	KeyF7        Key = KeyF0 + 7
	KeyF8        Key = KeyF0 + 8
	KeyF9        Key = KeyF0 + 9
	KeyF10       Key = KeyF0 + 10
	KeyF11       Key = KeyF0 + 11
	KeyF12       Key = KeyF0 + 12
	KeyDelete    Key = 330
	KeyInsert    Key = 331
	KeyPageDown  Key = 338
	KeyPageUp    Key = 339
	KeyBackTab   Key = 353
	KeyRefresh   Key = 357
	KeyEnd       Key = 360
	KeyMouse     Key = 409
	KeyResize    Key = 410
)

var names = map[Key]string{
	KeyNone:      "None",
	KeyEscape:    "Escape",
	KeyDown:      "Down",
	KeyUp:        "Up",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyBackspace: "Backspace",
	KeyF0:        "F0",
	KeyF1:        "F1",
	KeyF2:        "F2",
	KeyF3:        "F3",
	KeyF4:        "F4",
	KeyF5:        "F5",
	KeyF6:        "F6",
	KeyF7:        "F7",
	KeyF8:        "F8",
	KeyF9:        "F9",
	KeyF10:       "F10",
	KeyF11:       "F11",
	KeyF12:       "F12",
	KeyDelete:    "Delete",
	KeyInsert:    "Insert",
	KeyPageDown:  "PageDown",
	KeyPageUp:    "PageUp",
	KeyBackTab:   "BackTab",
	KeyRefresh:   "Refresh",
	KeyEnd:       "End",
	KeyMouse:     "Mouse",
	KeyResize:    "Resize",
}

func (k Key) String() string {
	if k == KeyChar {
		return "Char"
	}
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Known reports whether k is one of the named special keys.
func (k Key) Known() bool {
	_, ok := names[k]
	return ok
}

// Event is one decoded key press. It is comparable and can be used as a
// map key.
type Event struct {
	Key  Key
	Rune rune
}

// Of returns the event of a special key.
func Of(k Key) Event {
	return Event{Key: k}
}

// Rune returns the event of a character.
func Rune(r rune) Event {
	return Event{Key: KeyChar, Rune: r}
}

func (e Event) String() string {
	if e.Key == KeyChar {
		return fmt.Sprintf("Char(%q)", e.Rune)
	}
	return e.Key.String()
}

// Decode maps a raw code to an event. Named keys win; any other code below
// KeyMin is a character. Unnamed codes at or above KeyMin keep their
// numeric key.
func Decode(code int) Event {
	k := Key(code)
	if !k.Known() && k < KeyMin && code >= 0 {
		return Event{Key: KeyChar, Rune: rune(code)}
	}
	return Event{Key: k}
}
