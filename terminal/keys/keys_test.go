package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	tcs := []struct {
		name     string
		code     int
		expected Event
	}{
		{name: "timeout", code: -1, expected: Of(KeyNone)},
		{name: "letter", code: 'a', expected: Rune('a')},
		{name: "line feed", code: '\n', expected: Rune('\n')},
		{name: "escape is a key", code: 27, expected: Of(KeyEscape)},
		{name: "latin-1", code: 0xE9, expected: Rune('é')},
		{name: "down", code: 258, expected: Of(KeyDown)},
		{name: "f0", code: 264, expected: Of(KeyF0)},
		{name: "f12", code: 276, expected: Of(KeyF12)},
		{name: "page down", code: 338, expected: Of(KeyPageDown)},
		{name: "refresh", code: 357, expected: Of(KeyRefresh)},
		{name: "end", code: 360, expected: Of(KeyEnd)},
		{name: "mouse", code: 409, expected: Of(KeyMouse)},
		{name: "resize", code: 410, expected: Of(KeyResize)},
		{name: "unnamed special", code: 300, expected: Event{Key: 300}},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Decode(tc.code))
		})
	}
}

func TestEvent_String(t *testing.T) {
	assert.Equal(t, "Char('x')", Rune('x').String())
	assert.Equal(t, "Escape", Of(KeyEscape).String())
	assert.Equal(t, "F7", Of(KeyF7).String())
	assert.Equal(t, "Key(300)", Event{Key: 300}.String())
}

func TestFromTcell(t *testing.T) {
	tcs := []struct {
		name     string
		ev       tcell.Event
		expected Event
		ok       bool
	}{
		{name: "rune", ev: tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), expected: Rune('q'), ok: true},
		{name: "wide rune", ev: tcell.NewEventKey(tcell.KeyRune, '世', tcell.ModNone), expected: Rune('世'), ok: true},
		{name: "up", ev: tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), expected: Of(KeyUp), ok: true},
		{name: "page up", ev: tcell.NewEventKey(tcell.KeyPgUp, 0, tcell.ModNone), expected: Of(KeyPageUp), ok: true},
		{name: "f5", ev: tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), expected: Of(KeyF5), ok: true},
		{name: "escape", ev: tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), expected: Of(KeyEscape), ok: true},
		{name: "backspace", ev: tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), expected: Of(KeyBackspace), ok: true},
		{name: "ctrl-l", ev: tcell.NewEventKey(tcell.KeyCtrlL, 0, tcell.ModCtrl), expected: Of(KeyRefresh), ok: true},
		{name: "enter", ev: tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), expected: Rune('\n'), ok: true},
		{name: "tab", ev: tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), expected: Rune('\t'), ok: true},
		{name: "f20 has no code", ev: tcell.NewEventKey(tcell.KeyF20, 0, tcell.ModNone), ok: false},
		{name: "resize", ev: tcell.NewEventResize(80, 24), expected: Of(KeyResize), ok: true},
		{name: "mouse", ev: tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone), expected: Of(KeyMouse), ok: true},
		{name: "interrupt", ev: tcell.NewEventInterrupt(nil), ok: false},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			ev, ok := FromTcell(tc.ev)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, ev)
		})
	}
}
