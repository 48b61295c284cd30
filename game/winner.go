package game

// Line is one of the eight winning triples.
type Line [Size]Cell

// Lines lists rows, then columns, then the two diagonals.
var Lines = [8]Line{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// CheckWinner returns the mark of the first unanimous non-empty line, or
// Empty when there is none.
func CheckWinner(b Board) Mark {
	_, m := winningLine(b)
	return m
}

// WinningLine reports the line that won, if any.
func WinningLine(b Board) (Line, bool) {
	i, m := winningLine(b)
	if m == Empty {
		return Line{}, false
	}
	return Lines[i], true
}

func winningLine(b Board) (int, Mark) {
	for i, l := range Lines {
		m := b.At(l[0])
		if m != Empty && m == b.At(l[1]) && m == b.At(l[2]) {
			return i, m
		}
	}
	return -1, Empty
}
