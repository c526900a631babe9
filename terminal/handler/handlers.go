package handler

import (
	"github.com/hnimtadd/termwin/terminal/color"
	"github.com/hnimtadd/termwin/terminal/style"
)

type (
	// SGR changes the current attribute of the target.
	SGR interface {
		// ResetAttributes turns every display mode off and selects the
		// default color pair.
		ResetAttributes()
		// AddModes turns the given display modes on, keeping the others.
		AddModes(m style.Mode)
		// RemoveModes turns the given display modes off.
		RemoveModes(m style.Mode)
		// SetColors selects the color pair for (fg, bg), registering it
		// when needed.
		SetColors(fg, bg color.Color)
	}

	// CUP positions the cursor.
	CUP interface {
		// Dimension returns the width and height of the target.
		Dimension() (width, height int)
		// MoveCursor moves to zero-based (x, y). It reports false and leaves
		// the cursor alone when the position is outside the target.
		MoveCursor(x, y int) bool
	}

	// ED erases the target.
	ED interface {
		// EraseDisplay empties the whole target and homes the cursor.
		EraseDisplay()
	}

	// Glyph draws line-drawing characters.
	Glyph interface {
		// PutGlyph writes r as a single cell with the current attribute.
		PutGlyph(r rune)
	}

	// Text renders plain text. Neither method refreshes the display.
	Text interface {
		// WriteText renders text with the current attribute. It reports
		// false when the text did not fit.
		WriteText(text string) bool
		// WriteStyled renders text with the given modes, resetting the
		// attribute before and after.
		WriteStyled(text string, modes style.Mode) bool
	}

	Handler interface {
		SGR
		CUP
		ED
		Glyph
		Text
	}
)
