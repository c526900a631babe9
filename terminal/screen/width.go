package screen

import (
	"github.com/hnimtadd/termwin/terminal/ansi"
	dw "github.com/mattn/go-runewidth"
)

// RuneWidth is the number of cells Print advances for r. Format effectors
// count as one, other control characters as their caret notation.
func RuneWidth(r rune) int {
	switch {
	case r == rune(ansi.C0.LF), r == rune(ansi.C0.CR), r == rune(ansi.C0.HT), r == rune(ansi.C0.BS):
		return 1
	case ansi.IsControl(r):
		return len(ansi.Caret(r))
	case r <= 0xFF:
		// Fast path, byte-sized characters are the common case.
		return 1
	}
	return dw.RuneWidth(r)
}

// StringWidth sums RuneWidth over s.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		n += RuneWidth(r)
	}
	return n
}
