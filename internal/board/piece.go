package board

// Team represents the side a piece belongs to.
type Team uint8

const (
	NoTeam Team = iota
	White
	Black
)

// Other returns the opposing team. NoTeam has no opponent.
func (t Team) Other() Team {
	switch t {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoTeam
	}
}

// String returns the team name.
func (t Team) String() string {
	switch t {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return "None"
	}
}

// Name returns the lowercase team name used for asset lookup.
func (t Team) Name() string {
	switch t {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return ""
	}
}

// PieceType represents the kind of a chess piece.
type PieceType uint8

const (
	NoType PieceType = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Rook:
		return "Rook"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Name returns the lowercase type name used for asset lookup.
func (pt PieceType) Name() string {
	if pt == NoType || pt > King {
		return ""
	}
	return [...]string{"", "pawn", "rook", "knight", "bishop", "queen", "king"}[pt]
}

// Char returns the placement character for the piece type (lowercase).
func (pt PieceType) Char() byte {
	if pt > King {
		return ' '
	}
	return " prnbqk"[pt]
}

// Piece is the occupant of a square. The zero value is the empty piece.
type Piece struct {
	Team Team
	Type PieceType
}

// NoPiece is the empty square occupant.
var NoPiece = Piece{}

// NewPiece creates a Piece. Any combination that is not a real piece
// collapses to NoPiece.
func NewPiece(t Team, pt PieceType) Piece {
	if t != White && t != Black {
		return NoPiece
	}
	if pt == NoType || pt > King {
		return NoPiece
	}
	return Piece{Team: t, Type: pt}
}

// IsEmpty reports whether the piece is the empty occupant.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// AssetName returns the (team, type) pair the renderer uses to pick a sprite,
// e.g. ("white", "pawn"). Both are empty for NoPiece.
func (p Piece) AssetName() (team, kind string) {
	if p.IsEmpty() {
		return "", ""
	}
	return p.Team.Name(), p.Type.Name()
}

// Char returns the placement character for the piece.
// Uppercase for white, lowercase for black.
func (p Piece) Char() byte {
	if p.IsEmpty() {
		return '.'
	}
	c := p.Type.Char()
	if p.Team == White {
		c -= 'a' - 'A'
	}
	return c
}

// String returns a readable name, e.g. "White Knight".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Team.String() + " " + p.Type.String()
}

// PieceFromChar converts a placement character to a Piece.
func PieceFromChar(c byte) Piece {
	team := White
	if c >= 'a' && c <= 'z' {
		team = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return NewPiece(team, Pawn)
	case 'R':
		return NewPiece(team, Rook)
	case 'N':
		return NewPiece(team, Knight)
	case 'B':
		return NewPiece(team, Bishop)
	case 'Q':
		return NewPiece(team, Queen)
	case 'K':
		return NewPiece(team, King)
	default:
		return NoPiece
	}
}

// Byte packs the piece as team<<4 | type. NoPiece packs to 0.
func (p Piece) Byte() byte {
	if p.IsEmpty() {
		return 0
	}
	return byte(p.Team)<<4 | byte(p.Type)
}

// PieceFromByte unpacks a value produced by Byte. The second result is false
// for any bit pattern Byte never produces.
func PieceFromByte(v byte) (Piece, bool) {
	if v == 0 {
		return NoPiece, true
	}
	p := NewPiece(Team(v>>4), PieceType(v&0x0f))
	if p.IsEmpty() {
		return NoPiece, false
	}
	return p, true
}
