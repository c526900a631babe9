package screen

import (
	"github.com/hnimtadd/termwin/terminal/size"
	"github.com/hnimtadd/termwin/terminal/style"
)

// The cursor position and style.
type Cursor struct {
	X size.CellCountInt
	Y size.CellCountInt

	// PendingWrap is set after a write to the last column of the last row.
	// The buffer does not scroll, so the cursor stays on that cell and the
	// next write is dropped.
	PendingWrap bool

	// The current active attribute, applied to every written cell.
	Attr style.Attr
}
