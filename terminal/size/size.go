package size

// CellCountInt is the type used for any count of cells: columns, rows,
// cursor coordinates inside a buffer.
type CellCountInt int

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi CellCountInt) CellCountInt {
	return max(lo, min(v, hi))
}
