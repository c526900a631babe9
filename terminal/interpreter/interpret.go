package interpreter

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/termwin/logger"
	"github.com/hnimtadd/termwin/terminal/color"
	"github.com/hnimtadd/termwin/terminal/handler"
	"github.com/hnimtadd/termwin/terminal/sequences/csi"
	"github.com/hnimtadd/termwin/terminal/sgr"
	"github.com/hnimtadd/termwin/terminal/style"
)

// glyphs maps DEC special graphics characters to box-drawing runes.
var glyphs = map[rune]rune{
	'q': tcell.RuneHLine,
	'x': tcell.RuneVLine,
	'j': tcell.RuneLRCorner,
	'k': tcell.RuneURCorner,
	'l': tcell.RuneULCorner,
	'm': tcell.RuneLLCorner,
	'n': tcell.RunePlus,
	't': tcell.RuneLTee,
	'u': tcell.RuneRTee,
	'v': tcell.RuneBTee,
	'w': tcell.RuneTTee,
}

// Glyph returns the box-drawing rune for a DEC special graphics character.
func Glyph(c rune) (rune, bool) {
	r, ok := glyphs[c]
	return r, ok
}

// Interpret applies seq, a complete sequence matched by k, to h.
func (k Kind) Interpret(h handler.Handler, seq string, log logger.Logger) {
	if log == nil {
		log = logger.Discard
	}
	switch k {
	case KindMode:
		interpretMode(h, csi.Parse(seq), log)
	case KindMove:
		cmd := csi.Parse(seq)
		row, col := int(cmd.Param(0, 0)), int(cmd.Param(1, 0))
		w, ht := h.Dimension()
		if col >= w || row >= ht || !h.MoveCursor(col, row) {
			log.Debug("cursor position out of range", "row", row, "col", col, "width", w, "height", ht)
		}
	case KindClear:
		cmd := csi.Parse(seq)
		if mode := csi.EDMode(cmd.Param(0, 0)); mode == csi.EDModeComplete {
			h.EraseDisplay()
		} else {
			log.Debug("unimplemented erase mode", "mode", mode)
		}
	case KindGraphics:
		c, _ := utf8.DecodeRuneInString(seq[3 : len(seq)-3])
		if r, ok := Glyph(c); ok {
			h.PutGlyph(r)
		} else {
			log.Debug("unknown graphics character", "char", string(c))
		}
	case KindDefault:
		h.WriteStyled(seq, style.Underline)
	}
}

func interpretMode(h handler.Handler, cmd csi.Command, log logger.Logger) {
	fg, bg := color.Default, color.Default
	p := sgr.Parser{Params: cmd.Params}
	for attr := range p.Iter() {
		switch attr.Type {
		case sgr.AttributeTypeUnset:
			h.ResetAttributes()
			fg, bg = color.Default, color.Default
		case sgr.AttributeTypeBold:
			h.AddModes(style.Bold)
		case sgr.AttributeTypeFaint:
			h.AddModes(style.Dim)
		case sgr.AttributeTypeResetBold:
			h.RemoveModes(style.Bold | style.Dim)
		case sgr.AttributeTypeFg:
			fg = attr.Color
		case sgr.AttributeTypeBg:
			bg = attr.Color
		case sgr.AttributeTypeResetFg:
			fg = color.Default
		case sgr.AttributeTypeResetBg:
			bg = color.Default
		default:
			log.Debug("ignoring graphic rendition", "param", attr.Param)
		}
	}
	h.SetColors(fg, bg)
}

// Cleanup undoes what the last sequence of kind k left behind. Only mode
// changes outlive their sequence, until the next one starts.
func (k Kind) Cleanup(h handler.Handler) {
	if k == KindMode {
		h.ResetAttributes()
	}
}
