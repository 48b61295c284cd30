package game

import "tictactoe-go/x/mathx"

// Layout places the grid on the display, in pixels.
type Layout struct {
	GridX, GridY int
	GridSize     int
}

// CellSize is GridSize/3, truncated.
func (l Layout) CellSize() int { return l.GridSize / Size }

// Contains reports whether (x, y) lies in the grid box. Bounds are inclusive.
func (l Layout) Contains(x, y int) bool {
	return mathx.Between(x, l.GridX, l.GridX+l.GridSize) &&
		mathx.Between(y, l.GridY, l.GridY+l.GridSize)
}

// MapTouch converts a display coordinate to a cell. ok is false outside the
// grid box. Points on a grid line go to the lower index. Because CellSize is
// truncated, the last few pixels of the far edge would divide to 3; those
// are clamped to 2.
func (l Layout) MapTouch(x, y int) (c Cell, ok bool) {
	cs := l.CellSize()
	if cs <= 0 || !l.Contains(x, y) {
		return Cell{}, false
	}
	c.Row = mathx.Clamp(mathx.FloorDiv(y-l.GridY, cs), 0, Size-1)
	c.Col = mathx.Clamp(mathx.FloorDiv(x-l.GridX, cs), 0, Size-1)
	return c, true
}

// CellOrigin returns the top-left pixel of c.
func (l Layout) CellOrigin(c Cell) (x, y int) {
	cs := l.CellSize()
	return l.GridX + c.Col*cs, l.GridY + c.Row*cs
}
