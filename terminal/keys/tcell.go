package keys

import "github.com/gdamore/tcell/v2"

var special = map[tcell.Key]Key{
	tcell.KeyDown:       KeyDown,
	tcell.KeyUp:         KeyUp,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyBacktab:    KeyBackTab,
	tcell.KeyCtrlL:      KeyRefresh,
	tcell.KeyEscape:     KeyEscape,
}

// FromTcell translates a terminal layer event. Characters are taken as the
// terminal layer decoded them; special keys go through Decode. It reports
// false for events that are not key input (focus, paste markers,
// interrupts) and for special keys without a code.
func FromTcell(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return fromKey(ev)
	case *tcell.EventMouse:
		return Decode(int(KeyMouse)), true
	case *tcell.EventResize:
		return Decode(int(KeyResize)), true
	}
	return Event{}, false
}

func fromKey(ev *tcell.EventKey) (Event, bool) {
	key := ev.Key()
	if key == tcell.KeyRune {
		return Rune(ev.Rune()), true
	}
	if k, ok := special[key]; ok {
		return Decode(int(k)), true
	}
	switch {
	case key >= tcell.KeyF1 && key <= tcell.KeyF12:
		return Decode(int(KeyF1) + int(key-tcell.KeyF1)), true
	case key == tcell.KeyEnter:
		// The terminal is in newline mode: return reads as line feed.
		return Decode('\n'), true
	case key < 0x20:
		// Remaining control keys (tab, ctrl-letters) are plain characters.
		return Decode(int(key)), true
	}
	return Event{}, false
}
