// Package game is the hardware-free tic-tac-toe engine: board, win
// detection, touch-to-cell mapping and the turn controller. It returns
// intents instead of touching the display or LEDs.
package game

import "tictactoe-go/errcode"

// Size is the board edge length. It is fixed.
const Size = 3

// Mark is the value held by a cell.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

func (m Mark) String() string {
	switch m {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Other returns the opposing player. Empty maps to Empty.
func (m Mark) Other() Mark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

// IsPlayer reports whether m is X or O.
func (m Mark) IsPlayer() bool { return m == PlayerX || m == PlayerO }

// Cell addresses a board position.
type Cell struct {
	Row, Col int
}

func (c Cell) Valid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// Board is a 3×3 grid. The zero value is an empty board.
type Board [Size][Size]Mark

// At returns the mark at c. c must be valid.
func (b Board) At(c Cell) Mark { return b[c.Row][c.Col] }

// PlaceMove sets cell c to player. The caller checks legality first; a
// violated precondition is a programming error and panics.
func (b *Board) PlaceMove(c Cell, player Mark) {
	if !c.Valid() || !player.IsPlayer() {
		panic(errcode.InvalidParams)
	}
	if b[c.Row][c.Col] != Empty {
		panic(errcode.IllegalMove)
	}
	b[c.Row][c.Col] = player
}

// Reset empties every cell.
func (b *Board) Reset() { *b = Board{} }

// Full reports whether no cell is empty.
func (b Board) Full() bool {
	return b.Count() == Size*Size
}

// Count returns the number of occupied cells.
func (b Board) Count() int {
	n := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] != Empty {
				n++
			}
		}
	}
	return n
}

// Cells returns the marks in row-major order as "X", "O" or "".
func (b Board) Cells() [Size * Size]string {
	var out [Size * Size]string
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			out[r*Size+c] = b[r][c].String()
		}
	}
	return out
}
