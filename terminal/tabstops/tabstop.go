package tabstops

import (
	"github.com/hnimtadd/termwin/terminal/size"
)

// Unit is the type we use per tabstop unit .
type Unit = uint8

const (
	unitBits size.CellCountInt = 8 // bits in Unit (uint8)

	// DefaultInterval matches the curses/vt100 default of a stop every
	// eight columns.
	DefaultInterval = 8
)

// Tabstops tracks tabstop locations of one buffer row width.
type Tabstops struct {
	cols  size.CellCountInt
	units []Unit
	// interval of the default stops, 0 for none.
	interval uint8
}

// Helper: bit mask for each bit in a Unit
var masks = func() [unitBits]Unit {
	var m [unitBits]Unit
	for i := range unitBits {
		m[i] = 1 << i
	}
	return m
}()

func entry(col size.CellCountInt) int { return int(col / unitBits) }
func index(col size.CellCountInt) int { return int(col % unitBits) }

// NewTabstops creates a new Tabstops for the given number of columns and interval.
func NewTabstops(cols size.CellCountInt, interval uint8) *Tabstops {
	t := &Tabstops{}
	t.Resize(cols)
	t.Reset(interval)
	return t
}

// Set sets the tabstop at a certain column (0-indexed).
func (t *Tabstops) Set(col size.CellCountInt) {
	if col < 0 || col >= t.cols {
		return
	}
	t.units[entry(col)] |= masks[index(col)]
}

// Unset unsets the tabstop at a certain column (0-indexed).
func (t *Tabstops) Unset(col size.CellCountInt) {
	if col < 0 || col >= t.cols {
		return
	}
	t.units[entry(col)] &^= masks[index(col)]
}

// Get returns true if a tabstop is set at the given column.
func (t *Tabstops) Get(col size.CellCountInt) bool {
	if col < 0 || col >= t.cols {
		return false
	}
	mask := masks[index(col)]
	return t.units[entry(col)]&mask == mask
}

// Next returns the column of the first tabstop right of col, or the last
// column when there is none.
func (t *Tabstops) Next(col size.CellCountInt) size.CellCountInt {
	for c := col + 1; c < t.cols; c++ {
		if t.Get(c) {
			return c
		}
	}
	return max(t.cols-1, 0)
}

// Resize changes the number of tracked columns. Existing stops inside the
// new width are kept, columns gained get the default stops.
func (t *Tabstops) Resize(cols size.CellCountInt) {
	old := t.cols
	t.cols = max(cols, 0)
	needed := int((t.cols + unitBits - 1) / unitBits)
	if needed > len(t.units) {
		grown := make([]Unit, needed)
		copy(grown, t.units)
		t.units = grown
	}
	for c := t.cols; c < old; c++ {
		t.units[entry(c)] &^= masks[index(c)]
	}
	if t.interval == 0 {
		return
	}
	interval := size.CellCountInt(t.interval)
	for c := max(old-1, interval); c < t.cols-1; c++ {
		if c%interval == 0 {
			t.Set(c)
		}
	}
}

// Capacity returns the maximum number of columns this can support currently.
func (t *Tabstops) Capacity() int {
	return len(t.units) * int(unitBits)
}

// Reset unsets all tabstops and then sets initial tabstops at the given interval.
func (t *Tabstops) Reset(interval uint8) {
	t.interval = interval
	clear(t.units)
	if interval > 0 {
		for i := size.CellCountInt(interval); i < t.cols-1; i += size.CellCountInt(interval) {
			t.Set(i)
		}
	}
}
