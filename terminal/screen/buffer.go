package screen

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/termwin/terminal/ansi"
	"github.com/hnimtadd/termwin/terminal/color"
	"github.com/hnimtadd/termwin/terminal/size"
	"github.com/hnimtadd/termwin/terminal/tabstops"
	"github.com/hnimtadd/termwin/terminal/utils"
)

// Buffer is the backing store of one window: a fixed grid of cells and a
// cursor. Writes wrap at the right edge and stop at the bottom-right cell;
// the buffer never scrolls and never addresses a cell outside the grid.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	Cursor *Cursor

	cells      []Cell
	cols, rows size.CellCountInt

	// dirty marks cells changed since the last Paint.
	dirty *utils.BitSet

	tabstops *tabstops.Tabstops

	// dropped counts writes that found no cell.
	dropped int

	// pairs resolves the color pair handle of the cursor attribute.
	pairs *color.Registry
}

// NewBuffer allocates a cols x rows buffer. Either dimension may be zero,
// in which case every write is dropped.
func NewBuffer(cols, rows size.CellCountInt, pairs *color.Registry) *Buffer {
	cols, rows = max(cols, 0), max(rows, 0)
	return &Buffer{
		Cursor:   &Cursor{},
		cells:    make([]Cell, cols*rows),
		dirty:    newDirty(int(cols * rows)),
		cols:     cols,
		rows:     rows,
		tabstops: tabstops.NewTabstops(cols, tabstops.DefaultInterval),
		pairs:    pairs,
	}
}

// AssertIntegrity asserts that the cursor addresses a cell of the grid.
func (b *Buffer) AssertIntegrity() {
	utils.Assert(b.Cursor != nil)
	if b.cols == 0 || b.rows == 0 {
		return
	}
	utils.Assertf(
		b.Cursor.X >= 0 && b.Cursor.X < b.cols && b.Cursor.Y >= 0 && b.Cursor.Y < b.rows,
		"cursor (%d, %d) outside %dx%d buffer", b.Cursor.X, b.Cursor.Y, b.cols, b.rows,
	)
}

// Size returns the dimension of the buffer in columns and rows.
func (b *Buffer) Size() (cols, rows size.CellCountInt) {
	return b.cols, b.rows
}

// Cell returns the cell at (x, y). Out of range coordinates yield an empty
// cell.
func (b *Buffer) Cell(x, y size.CellCountInt) Cell {
	if !b.contains(x, y) {
		return Cell{}
	}
	return b.cells[b.offset(x, y)]
}

// SetTabInterval resets the tabstops to one every interval columns.
func (b *Buffer) SetTabInterval(interval uint8) {
	b.tabstops.Reset(interval)
}

// Remaining is the number of cells from the cursor to the bottom-right
// corner, the cursor cell included.
func (b *Buffer) Remaining() size.CellCountInt {
	if b.cols == 0 || b.rows == 0 || b.Cursor.PendingWrap {
		return 0
	}
	return (b.cols - b.Cursor.X) + (b.rows-1-b.Cursor.Y)*b.cols
}

// Dropped is the number of characters and line feeds that were discarded
// because the buffer was full. Callers compare it around a write to learn
// whether the write fit.
func (b *Buffer) Dropped() int {
	return b.dropped
}

// Full reports whether the next printed character would be dropped.
func (b *Buffer) Full() bool {
	return b.Remaining() == 0
}

// Print writes one rune at the cursor with the cursor attribute and
// advances the cursor. Line feed, carriage return, tab and backspace move
// the cursor; other control characters are written in caret notation.
func (b *Buffer) Print(r rune) {
	defer b.AssertIntegrity()

	switch r {
	case rune(ansi.C0.LF):
		b.Newline()
		return
	case rune(ansi.C0.CR):
		b.CarriageReturn()
		return
	case rune(ansi.C0.HT):
		b.Tab()
		return
	case rune(ansi.C0.BS):
		b.Backspace()
		return
	}

	if ansi.IsControl(r) {
		for _, c := range ansi.Caret(r) {
			b.printCell(c)
		}
		return
	}
	b.printCell(r)
}

// PrintString prints every rune of s.
func (b *Buffer) PrintString(s string) {
	for _, r := range s {
		b.Print(r)
	}
}

// PrintGlyph writes r exactly once at the cursor, bypassing control
// character handling. Used for line-drawing glyphs.
func (b *Buffer) PrintGlyph(r rune) {
	defer b.AssertIntegrity()
	b.printCell(r)
}

func (b *Buffer) printCell(r rune) {
	if b.cols == 0 || b.rows == 0 || b.Cursor.PendingWrap {
		b.dropped++
		return
	}

	// Determine the width of this character so we can handle
	// non-single-width characters properly. We have a fast-path for byte-sized
	// characters since they're so common.
	width := size.CellCountInt(RuneWidth(r))
	// Zero-width characters would need grapheme clustering, which the cell
	// model does not support.
	if width == 0 {
		return
	}

	st := b.Cursor.Attr.Resolve(b.pairs)
	if width == 2 && b.cols < 2 {
		// A wide character can never fit. This is pretty broken, but
		// printing it narrow is the least surprising thing to do.
		width = 1
	}

	if width == 2 && b.Cursor.X == b.cols-1 {
		// No room for the spacer: pad the last column and wrap first.
		b.setCell(b.Cursor.X, b.Cursor.Y, Cell{Rune: ' ', Style: st})
		if !b.advance(1) {
			b.dropped++
			return
		}
	}

	x, y := b.Cursor.X, b.Cursor.Y
	if width == 2 {
		b.setCell(x, y, Cell{Rune: r, Wide: WideWide, Style: st})
		b.setCell(x+1, y, Cell{Wide: WideSpacerTail, Style: st})
	} else {
		b.setCell(x, y, Cell{Rune: r, Style: st})
	}
	b.advance(width)
}

// setCell writes c at (x, y), breaking up any wide character it overlaps.
func (b *Buffer) setCell(x, y size.CellCountInt, c Cell) {
	old := b.cells[b.offset(x, y)]
	switch old.Wide {
	case WideWide:
		if x+1 < b.cols && c.Wide != WideWide {
			b.cells[b.offset(x+1, y)] = Cell{}
			b.dirty.Set(b.offset(x+1, y))
		}
	case WideSpacerTail:
		if x > 0 {
			b.cells[b.offset(x-1, y)] = Cell{}
			b.dirty.Set(b.offset(x-1, y))
		}
	}
	b.cells[b.offset(x, y)] = c
	b.dirty.Set(b.offset(x, y))
}

// advance moves the cursor n columns right, wrapping to the next row. On the
// bottom-right cell the cursor stays put with PendingWrap set. It returns
// false when the buffer is full.
func (b *Buffer) advance(n size.CellCountInt) bool {
	b.Cursor.X += n
	if b.Cursor.X < b.cols {
		return true
	}
	if b.Cursor.Y < b.rows-1 {
		b.Cursor.X = 0
		b.Cursor.Y++
		return true
	}
	b.Cursor.X = b.cols - 1
	b.Cursor.PendingWrap = true
	return false
}

// Newline clears the rest of the current row and moves to the start of the
// next one. On the last row there is no next row: the cursor stays and the
// buffer is marked full.
func (b *Buffer) Newline() {
	if b.cols == 0 || b.rows == 0 || b.Cursor.PendingWrap {
		b.dropped++
		return
	}
	b.ClearToEOL()
	if b.Cursor.Y < b.rows-1 {
		b.Cursor.X = 0
		b.Cursor.Y++
		return
	}
	b.Cursor.PendingWrap = true
}

// CarriageReturn moves cursor to first column of current line
func (b *Buffer) CarriageReturn() {
	b.Cursor.PendingWrap = false
	b.Cursor.X = 0
}

// Tab writes blanks up to the next tabstop.
func (b *Buffer) Tab() {
	if b.cols == 0 {
		return
	}
	n := max(b.tabstops.Next(b.Cursor.X)-b.Cursor.X, 1)
	for range n {
		b.printCell(' ')
	}
}

// Backspace moves the cursor back a column (but not less than 0).
func (b *Buffer) Backspace() {
	b.Cursor.PendingWrap = false
	if b.Cursor.X > 0 {
		b.Cursor.X--
	}
}

// Move places the cursor at (x, y). It reports false, leaving the cursor
// unchanged, when the target is outside the grid.
func (b *Buffer) Move(x, y size.CellCountInt) bool {
	if !b.contains(x, y) {
		return false
	}
	b.Cursor.X, b.Cursor.Y = x, y
	b.Cursor.PendingWrap = false
	return true
}

// ClearToEOL empties the cells from the cursor to the end of its row.
func (b *Buffer) ClearToEOL() {
	if !b.contains(b.Cursor.X, b.Cursor.Y) {
		return
	}
	b.clearCells(b.Cursor.X, b.cols, b.Cursor.Y)
}

// ClearLine empties row y. The cursor does not move.
func (b *Buffer) ClearLine(y size.CellCountInt) {
	if y < 0 || y >= b.rows {
		return
	}
	b.clearCells(0, b.cols, y)
}

// Clear empties every cell and homes the cursor.
func (b *Buffer) Clear() {
	clear(b.cells)
	b.Touch()
	b.Cursor.X, b.Cursor.Y = 0, 0
	b.Cursor.PendingWrap = false
}

func (b *Buffer) clearCells(fromX, toX, y size.CellCountInt) {
	// Don't leave half of a wide character behind.
	if fromX > 0 && b.cells[b.offset(fromX, y)].Wide == WideSpacerTail {
		fromX--
	}
	from, to := b.offset(fromX, y), b.offset(toX, y)
	clear(b.cells[from:to])
	b.dirty.SetRange(from, to)
}

// Resize changes the grid dimension. Cells inside both the old and the new
// grid are kept and the cursor is clamped into the new grid.
func (b *Buffer) Resize(cols, rows size.CellCountInt) {
	cols, rows = max(cols, 0), max(rows, 0)
	cells := make([]Cell, cols*rows)
	for y := range min(rows, b.rows) {
		for x := range min(cols, b.cols) {
			cells[int(y*cols+x)] = b.cells[b.offset(x, y)]
		}
		// A wide character cut in half at the new right edge is dropped.
		if cols > 0 && cols < b.cols && cells[int(y*cols+cols-1)].Wide == WideWide {
			cells[int(y*cols+cols-1)] = Cell{}
		}
	}
	b.cells, b.cols, b.rows = cells, cols, rows
	b.dirty = newDirty(len(cells))
	b.tabstops.Resize(cols)
	b.Cursor.X = size.Clamp(b.Cursor.X, 0, max(cols-1, 0))
	b.Cursor.Y = size.Clamp(b.Cursor.Y, 0, max(rows-1, 0))
	b.Cursor.PendingWrap = false
}

// Rows returns the plain text of every row, trailing blanks trimmed.
func (b *Buffer) Rows() []string {
	rows := make([]string, 0, b.rows)
	for y := range b.rows {
		var sb strings.Builder
		for x := range b.cols {
			c := b.cells[b.offset(x, y)]
			switch {
			case c.Wide == WideSpacerTail:
			case c.IsEmpty():
				sb.WriteByte(' ')
			default:
				sb.WriteRune(c.Rune)
			}
		}
		rows = append(rows, strings.TrimRight(sb.String(), " "))
	}
	return rows
}

// PlainString dumps the buffer content, rows separated by line feeds and
// trailing empty rows dropped.
func (b *Buffer) PlainString() string {
	rows := b.Rows()
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return strings.Join(rows, "\n")
}

// Touch marks every cell as changed, so the next Paint draws the whole
// buffer.
func (b *Buffer) Touch() {
	b.dirty.Fill()
}

// Paint draws the cells changed since the last Paint onto the terminal
// layer, with the buffer's top-left corner at (originX, originY). Cells
// another buffer painted over in the meantime are left alone.
func (b *Buffer) Paint(scr tcell.Screen, originX, originY int) {
	for y := range b.rows {
		for x := range b.cols {
			i := b.offset(x, y)
			if !b.dirty.IsSet(i) {
				continue
			}
			b.dirty.Unset(i)
			c := b.cells[i]
			switch {
			case c.Wide == WideSpacerTail:
				continue
			case c.IsEmpty():
				scr.SetContent(originX+int(x), originY+int(y), ' ', nil, c.Style)
			default:
				scr.SetContent(originX+int(x), originY+int(y), c.Rune, nil, c.Style)
			}
		}
	}
}

// newDirty returns a dirty set with every cell marked, a new grid has never
// been painted.
func newDirty(n int) *utils.BitSet {
	dirty := utils.NewBitSet(n)
	dirty.Fill()
	return dirty
}

func (b *Buffer) contains(x, y size.CellCountInt) bool {
	return x >= 0 && y >= 0 && x < b.cols && y < b.rows
}

func (b *Buffer) offset(x, y size.CellCountInt) int {
	return int(y*b.cols + x)
}
