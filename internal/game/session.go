// Package game drives a board from pointer and click events.
package game

import (
	"math"

	"github.com/hailam/tinyboard/internal/board"
)

// State is the selection state of a session.
type State int

const (
	// Idle: nothing is selected.
	Idle State = iota
	// Selecting: a piece is selected and its destinations are highlighted.
	Selecting
)

// String returns the state name.
func (s State) String() string {
	if s == Selecting {
		return "Selecting"
	}
	return "Idle"
}

// Outcome tells the caller what a click did.
type Outcome int

const (
	// Ignored: the click changed nothing.
	Ignored Outcome = iota
	// Selected: a piece of the side to move was (re)selected.
	Selected
	// Moved: the selected piece moved and the turn passed.
	Moved
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Selected:
		return "Selected"
	case Moved:
		return "Moved"
	default:
		return "Ignored"
	}
}

// Result describes a click. The board remains the source of truth; Result
// only lets the renderer give feedback.
type Result struct {
	Outcome  Outcome
	From     board.Square // selected square (Selected) or origin (Moved)
	To       board.Square // destination (Moved), NoSquare otherwise
	Piece    board.Piece  // piece selected or moved
	Captured board.Piece  // piece removed from To, NoPiece if none

	// KingInReach is set when the selected piece can reach the opposing
	// king. It is informational: moves are not filtered by it.
	KingInReach bool
}

// Session owns a board and applies the click-to-move rules to it.
type Session struct {
	board       *board.Board
	kingInReach bool
	moves       int
}

// NewSession creates a session over b. A nil board starts a new game.
func NewSession(b *board.Board) *Session {
	if b == nil {
		b = board.New()
	}
	return &Session{board: b}
}

// ResumeSession continues a game on b that already has moves completed moves.
func ResumeSession(b *board.Board, moves int) *Session {
	s := NewSession(b)
	if moves > 0 {
		s.moves = moves
	}
	return s
}

// Board returns the board for read access.
func (s *Session) Board() *board.Board {
	return s.board
}

// State returns Selecting while a square is selected, Idle otherwise.
func (s *Session) State() State {
	if s.board.HasSelection() {
		return Selecting
	}
	return Idle
}

// KingInReach reports whether the current selection can reach the opposing king.
func (s *Session) KingInReach() bool {
	return s.kingInReach
}

// Moves returns the number of moves completed in this game.
func (s *Session) Moves() int {
	return s.moves
}

// OnPointerMove maps raw pointer coordinates onto the hover square using the
// size of one cell. The result is clamped onto the board. Non-positive cell
// sizes leave the hover square unchanged. Selection and highlights are
// never touched.
func (s *Session) OnPointerMove(rawX, rawY int, cellW, cellH float64) {
	if cellW <= 0 || cellH <= 0 {
		return
	}
	x := int(math.Floor(float64(rawX) / cellW))
	y := int(math.Floor(float64(rawY) / cellH))
	s.board.SetHover(board.Sq(x, y))
}

// OnClick applies a click at the hover square.
//
// Clicking a piece of the side to move selects it and highlights its
// destinations, even if it was already selected. Any other click moves the
// selected piece when the square is highlighted, and does nothing
// otherwise.
func (s *Session) OnClick() Result {
	b := s.board
	sq := b.Hover()
	cell := b.Get(sq)

	if cell.IsEmpty() || cell.Team != b.Turn() {
		if !b.HasSelection() || !b.Highlight(sq) {
			return Result{Outcome: Ignored, From: b.Selected(), To: board.NoSquare}
		}
		return s.move(b.Selected(), sq)
	}

	b.Select(sq)
	s.kingInReach = b.GenerateMoves(sq)
	return Result{
		Outcome:     Selected,
		From:        sq,
		To:          board.NoSquare,
		Piece:       cell,
		KingInReach: s.kingInReach,
	}
}

// ClickAt moves the hover square onto sq and clicks it. Off-board squares
// are ignored and leave the hover square where it was.
func (s *Session) ClickAt(sq board.Square) Result {
	if !sq.IsValid() {
		return Result{Outcome: Ignored, From: s.board.Selected(), To: board.NoSquare}
	}
	s.board.SetHover(sq)
	return s.OnClick()
}

func (s *Session) move(from, to board.Square) Result {
	b := s.board
	piece := b.Get(from)
	captured := b.Move(from, to)

	b.Deselect()
	b.PassTurn()
	s.kingInReach = false
	s.moves++

	return Result{
		Outcome:  Moved,
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: captured,
	}
}
