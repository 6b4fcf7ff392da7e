package board

import "strings"

// backRank is the piece order of both back ranks, from the a file to the h file.
var backRank = [Size]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Board holds the occupancy grid together with the transient interaction
// state: the legal-destination mask of the selected piece, whose turn it is,
// the selected square and the square under the pointer.
//
// Every accessor is total: squares off the board read as empty and
// unhighlighted, and writes to them are ignored.
type Board struct {
	cells      [Size * Size]Piece
	highlights [Size * Size]bool

	turn     Team
	selected Square
	hover    Square
}

// NewEmpty creates a board with no pieces, White to move and nothing selected.
func NewEmpty() *Board {
	return &Board{
		turn:     White,
		selected: NoSquare,
		hover:    Square{},
	}
}

// New creates a board in the standard starting position. Black occupies rows
// 0 and 1, White rows 6 and 7.
func New() *Board {
	b := NewEmpty()
	for x := 0; x < Size; x++ {
		b.Set(Sq(x, 0), Black, backRank[x])
		b.Set(Sq(x, 1), Black, Pawn)
		b.Set(Sq(x, 6), White, Pawn)
		b.Set(Sq(x, 7), White, backRank[x])
	}
	return b
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// Get returns the piece at the given square, or NoPiece if the square is
// empty or off the board.
func (b *Board) Get(sq Square) Piece {
	i := sq.Index()
	if i < 0 {
		return NoPiece
	}
	return b.cells[i]
}

// IsEmpty returns true if the square holds no piece. Off-board squares are empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// Set overwrites the square with a piece of the given team and type.
// Passing NoTeam or NoType empties the square.
func (b *Board) Set(sq Square, t Team, pt PieceType) {
	b.Put(sq, NewPiece(t, pt))
}

// Put overwrites the square with p.
func (b *Board) Put(sq Square, p Piece) {
	i := sq.Index()
	if i < 0 {
		return
	}
	b.cells[i] = NewPiece(p.Team, p.Type)
}

// Clear empties the square.
func (b *Board) Clear(sq Square) {
	b.Put(sq, NoPiece)
}

// ClearHighlights unmarks every square.
func (b *Board) ClearHighlights() {
	b.highlights = [Size * Size]bool{}
}

// SetHighlight marks or unmarks the square as a legal destination.
func (b *Board) SetHighlight(sq Square, on bool) {
	i := sq.Index()
	if i < 0 {
		return
	}
	b.highlights[i] = on
}

// Highlight reports whether the square is a legal destination of the
// selected piece.
func (b *Board) Highlight(sq Square) bool {
	i := sq.Index()
	if i < 0 {
		return false
	}
	return b.highlights[i]
}

// Highlights returns the marked squares in row-major order.
func (b *Board) Highlights() []Square {
	var out []Square
	for i, on := range b.highlights {
		if on {
			out = append(out, SquareFromIndex(i))
		}
	}
	return out
}

// Turn returns the team to move.
func (b *Board) Turn() Team {
	return b.turn
}

// SetTurn sets the team to move. Anything other than White or Black is ignored.
func (b *Board) SetTurn(t Team) {
	if t == White || t == Black {
		b.turn = t
	}
}

// PassTurn hands the move to the other team.
func (b *Board) PassTurn() {
	b.turn = b.turn.Other()
}

// Selected returns the selected square, or NoSquare.
func (b *Board) Selected() Square {
	return b.selected
}

// HasSelection reports whether a square is selected.
func (b *Board) HasSelection() bool {
	return b.selected != NoSquare
}

// Select marks sq as the square whose piece is being moved. Off-board
// squares clear the selection.
func (b *Board) Select(sq Square) {
	if !sq.IsValid() {
		b.Deselect()
		return
	}
	b.selected = sq
}

// Deselect drops the selection together with its highlights.
func (b *Board) Deselect() {
	b.selected = NoSquare
	b.ClearHighlights()
}

// Hover returns the square under the pointer. It is always on the board.
func (b *Board) Hover() Square {
	return b.hover
}

// SetHover moves the hover square, clamping it onto the board.
func (b *Board) SetHover(sq Square) {
	b.hover = sq.Clamp()
}

// Move copies the piece on from onto to and empties from. It returns the
// piece that previously stood on to. Off-board squares make it a no-op.
func (b *Board) Move(from, to Square) Piece {
	if !from.IsValid() || !to.IsValid() {
		return NoPiece
	}
	captured := b.Get(to)
	b.Put(to, b.Get(from))
	b.Clear(from)
	return captured
}

// Count returns the number of pieces of the given team on the board.
func (b *Board) Count(t Team) int {
	n := 0
	for _, p := range b.cells {
		if !p.IsEmpty() && p.Team == t {
			n++
		}
	}
	return n
}

// String returns a visual representation of the board, top row first.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("  +-----------------+\n")
	for y := 0; y < Size; y++ {
		sb.WriteByte(byte('8' - y))
		sb.WriteString(" | ")
		for x := 0; x < Size; x++ {
			sq := Sq(x, y)
			c := b.Get(sq).Char()
			if c == '.' && b.Highlight(sq) {
				c = '*'
			}
			sb.WriteByte(c)
			sb.WriteByte(' ')
		}
		sb.WriteString("|\n")
	}
	sb.WriteString("  +-----------------+\n")
	sb.WriteString("    a b c d e f g h\n")
	sb.WriteString("  ")
	sb.WriteString(b.turn.String())
	sb.WriteString(" to move\n")
	return sb.String()
}
