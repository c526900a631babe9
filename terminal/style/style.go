package style

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/termwin/terminal/color"
)

// Mode is a set of display attribute flags. The zero value is Normal.
type Mode uint8

const (
	Normal Mode = 0
	Bold   Mode = 1 << iota
	Dim
	Underline
	Blink
	Reverse
)

var modeNames = []struct {
	mode Mode
	name string
}{
	{Bold, "bold"},
	{Dim, "dim"},
	{Underline, "underline"},
	{Blink, "blink"},
	{Reverse, "reverse"},
}

// Modes folds a list of modes into one set.
func Modes(modes ...Mode) Mode {
	var m Mode
	for _, mode := range modes {
		m |= mode
	}
	return m
}

// Has reports whether every flag of other is set in m.
func (m Mode) Has(other Mode) bool {
	return m&other == other
}

func (m Mode) String() string {
	if m == Normal {
		return "normal"
	}
	var parts []string
	for _, e := range modeNames {
		if m.Has(e.mode) {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}

// Tcell converts the flags into the terminal layer's attribute mask.
func (m Mode) Tcell() tcell.AttrMask {
	mask := tcell.AttrNone
	if m.Has(Bold) {
		mask |= tcell.AttrBold
	}
	if m.Has(Dim) {
		mask |= tcell.AttrDim
	}
	if m.Has(Underline) {
		mask |= tcell.AttrUnderline
	}
	if m.Has(Blink) {
		mask |= tcell.AttrBlink
	}
	if m.Has(Reverse) {
		mask |= tcell.AttrReverse
	}
	return mask
}

// FromTcell is the inverse of Mode.Tcell.
func FromTcell(mask tcell.AttrMask) Mode {
	var m Mode
	if mask&tcell.AttrBold != 0 {
		m |= Bold
	}
	if mask&tcell.AttrDim != 0 {
		m |= Dim
	}
	if mask&tcell.AttrUnderline != 0 {
		m |= Underline
	}
	if mask&tcell.AttrBlink != 0 {
		m |= Blink
	}
	if mask&tcell.AttrReverse != 0 {
		m |= Reverse
	}
	return m
}

// Attr is the attribute a window applies to the cells it writes: a set of
// modes plus a color pair handle. The zero value is the fully reset
// attribute.
type Attr struct {
	Modes Mode
	Pair  color.Handle
}

// Reset clears every mode and the color pair.
func (a *Attr) Reset() {
	*a = Attr{}
}

// IsDefault reports whether the attribute is fully reset.
func (a Attr) IsDefault() bool {
	return a == Attr{}
}

// Resolve builds the terminal style for the attribute, looking the pair up
// in the registry that bound it.
func (a Attr) Resolve(pairs *color.Registry) tcell.Style {
	st := tcell.StyleDefault
	if pairs != nil {
		st = pairs.Style(a.Pair)
	}
	return st.Attributes(a.Modes.Tcell())
}
