package screen

import "github.com/gdamore/tcell/v2"

type Wide int

const (
	// Not a wide character, cell width 1
	WideNarrow Wide = iota

	// WideWide character, cell width 2
	WideWide

	// Spacer after wide character. Do not render
	WideSpacerTail
)

// Cell is one addressable unit of a buffer.
type Cell struct {
	// Rune is the content, 0 for an empty cell.
	Rune  rune
	Wide  Wide
	Style tcell.Style
}

func (c Cell) IsEmpty() bool {
	return c.Rune == 0
}

// Width is the number of grid cells the content takes up.
func (c Cell) Width() int {
	if c.Wide == WideWide {
		return 2
	}
	return 1
}
