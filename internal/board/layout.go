package board

import (
	"errors"
	"fmt"
	"strings"
)

// StartPlacement is the placement string of the starting position.
const StartPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w"

// ErrInvalidEncoding is returned when packed board data holds a value that
// is not a piece.
var ErrInvalidEncoding = errors.New("invalid board encoding")

// ParsePlacement parses a FEN-style placement string: eight rows separated
// by '/', top row first, digits for runs of empty squares, uppercase for
// White and lowercase for Black, optionally followed by the side to move
// ("w" or "b", default White).
func ParsePlacement(s string) (*Board, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 || len(parts) > 2 {
		return nil, fmt.Errorf("invalid placement: need 1 or 2 fields, got %d", len(parts))
	}

	b := NewEmpty()

	rows := strings.Split(parts[0], "/")
	if len(rows) != Size {
		return nil, fmt.Errorf("invalid placement: need 8 rows, got %d", len(rows))
	}

	for y, row := range rows {
		x := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				x += int(c - '0')
				continue
			}
			p := PieceFromChar(c)
			if p.IsEmpty() {
				return nil, fmt.Errorf("invalid piece character: %c", c)
			}
			if x >= Size {
				return nil, fmt.Errorf("row %d overflows", y+1)
			}
			b.Put(Sq(x, y), p)
			x++
		}
		if x != Size {
			return nil, fmt.Errorf("row %d has %d squares", y+1, x)
		}
	}

	if len(parts) == 2 {
		switch parts[1] {
		case "w":
			b.turn = White
		case "b":
			b.turn = Black
		default:
			return nil, fmt.Errorf("invalid side to move: %s", parts[1])
		}
	}

	return b, nil
}

// MustParsePlacement is like ParsePlacement but panics on error.
func MustParsePlacement(s string) *Board {
	b, err := ParsePlacement(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Placement returns the placement string of the board, including the side
// to move.
func (b *Board) Placement() string {
	var sb strings.Builder
	for y := 0; y < Size; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < Size; x++ {
			p := b.Get(Sq(x, y))
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	if b.turn == Black {
		sb.WriteString(" b")
	} else {
		sb.WriteString(" w")
	}
	return sb.String()
}

// Encode packs the 64 cells into one byte each, row-major, using Piece.Byte.
func (b *Board) Encode() []byte {
	out := make([]byte, Size*Size)
	for i, p := range b.cells {
		out[i] = p.Byte()
	}
	return out
}

// Decode rebuilds a board from Encode output and the side to move. The
// result has no selection and no highlights.
func Decode(cells []byte, turn Team) (*Board, error) {
	if len(cells) != Size*Size {
		return nil, fmt.Errorf("%w: need %d cells, got %d", ErrInvalidEncoding, Size*Size, len(cells))
	}
	if turn != White && turn != Black {
		return nil, fmt.Errorf("%w: side to move %d", ErrInvalidEncoding, turn)
	}

	b := NewEmpty()
	b.turn = turn
	for i, v := range cells {
		p, ok := PieceFromByte(v)
		if !ok {
			return nil, fmt.Errorf("%w: 0x%02x at %s", ErrInvalidEncoding, v, SquareFromIndex(i))
		}
		b.cells[i] = p
	}
	return b, nil
}
