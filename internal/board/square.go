// Package board implements the board state and move generation of a
// click-to-move chess board.
package board

import "fmt"

// Size is the number of squares along each side of the board.
const Size = 8

// Square is a board coordinate. X is the column (0 = a file), Y is the row
// counted from the top of the screen (0 = Black's back rank, 7 = White's).
type Square struct {
	X, Y int
}

// NoSquare marks an absent square, e.g. no selection.
var NoSquare = Square{X: -1, Y: -1}

// Sq is shorthand for Square{X: x, Y: y}.
func Sq(x, y int) Square {
	return Square{X: x, Y: y}
}

// SquareFromIndex converts a linear index (x + y*8) to a Square.
// Out-of-range indexes map to NoSquare.
func SquareFromIndex(i int) Square {
	if i < 0 || i >= Size*Size {
		return NoSquare
	}
	return Square{X: i % Size, Y: i / Size}
}

// IsValid returns true if the square lies on the board.
func (sq Square) IsValid() bool {
	return sq.X >= 0 && sq.X < Size && sq.Y >= 0 && sq.Y < Size
}

// Index returns the linear index x + y*8, or -1 if the square is off the board.
func (sq Square) Index() int {
	if !sq.IsValid() {
		return -1
	}
	return sq.X + sq.Y*Size
}

// Offset returns the square shifted by (dx, dy). The result may be off the board.
func (sq Square) Offset(dx, dy int) Square {
	return Square{X: sq.X + dx, Y: sq.Y + dy}
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.X, '8'-sq.Y)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}

	sq := Square{X: int(s[0]) - 'a', Y: '8' - int(s[1])}
	if !sq.IsValid() {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}
	return sq, nil
}

// Clamp returns the nearest on-board square.
func (sq Square) Clamp() Square {
	return Square{X: clamp(sq.X, 0, Size-1), Y: clamp(sq.Y, 0, Size-1)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
