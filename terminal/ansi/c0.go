package ansi

// c0 lists the C0 (7-bit) control characters the window layer reacts to
// when they appear inside plain text.
type c0 struct {
	NUL uint8 // NUL is the null character (Caret: ^@, Char: \0).
	BEL uint8 // BEL is the bell character (Caret: ^G, Char: \a).
	BS  uint8 // BS is the backspace character (Caret: ^H, Char: \b).
	HT  uint8 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
	CR  uint8 // CR is the carriage return character (Caret: ^M, Char: \r).
	ESC uint8 // ESC is the Escape character (Caret: ^[).
	DEL uint8 // DEL is the delete character (Caret: ^?).
}

// C0 control characters, see https://vt100.net/docs/vt100-ug/chapter3.html#S3.2
var C0 = c0{
	NUL: 0x00,
	BEL: 0x07,
	BS:  0x08,
	HT:  0x09,
	LF:  0x0A,
	CR:  0x0D,
	ESC: 0x1B,
	DEL: 0x7F,
}

// Introducers and designators used by the sequence grammars.
const (
	// CSI is the 7-bit control sequence introducer: ESC [.
	CSI = "\x1b["
	// G0 and G1 are the intermediates of the character set designation
	// sequences (SCS): ESC ( F and ESC ) F.
	G0 = '('
	G1 = ')'
)

// IsControl reports whether r is a C0 control character or DEL.
func IsControl(r rune) bool {
	return r < 0x20 || r == rune(C0.DEL)
}

// Caret returns the caret notation of a control character, the way curses
// displays control characters written with addstr: ^[ for ESC, ^? for DEL.
// Any other rune is returned unchanged.
func Caret(r rune) string {
	switch {
	case r == rune(C0.DEL):
		return "^?"
	case r < 0x20:
		return string([]rune{'^', r + '@'})
	default:
		return string(r)
	}
}
