package board

// MoveGenerator marks the legal destinations of the piece standing on from.
// It returns true when one of those destinations holds the opposing king.
//
// Destinations ignore king safety: a move that leaves the mover's own king
// attacked is still marked.
type MoveGenerator interface {
	Generate(b *Board, from Square) bool
}

// GeneratorFunc adapts a plain function to MoveGenerator.
type GeneratorFunc func(b *Board, from Square) bool

// Generate calls f(b, from).
func (f GeneratorFunc) Generate(b *Board, from Square) bool {
	return f(b, from)
}

// noMoves is used for piece types without move generation (Bishop, Queen,
// King): they never have a legal destination.
var noMoves = GeneratorFunc(func(*Board, Square) bool { return false })

var generators = map[PieceType]MoveGenerator{
	Pawn:   GeneratorFunc(generatePawnMoves),
	Rook:   GeneratorFunc(generateRookMoves),
	Knight: GeneratorFunc(generateKnightMoves),
}

// GeneratorFor returns the move generator for a piece type.
func GeneratorFor(pt PieceType) MoveGenerator {
	if g, ok := generators[pt]; ok {
		return g
	}
	return noMoves
}

// GenerateMoves rebuilds the highlight mask with the destinations of the
// piece on from. from is the piece's own square; the hover square plays no
// part. An empty or off-board from leaves the mask empty.
func (b *Board) GenerateMoves(from Square) bool {
	b.ClearHighlights()

	p := b.Get(from)
	if p.IsEmpty() {
		return false
	}
	return GeneratorFor(p.Type).Generate(b, from)
}

// land marks to as a destination for mover when it is empty or holds an
// opposing piece. occupied reports whether to held a piece; king reports
// whether that piece was the opposing king.
func land(b *Board, mover Piece, to Square) (occupied, king bool) {
	if !to.IsValid() {
		return false, false
	}
	target := b.Get(to)
	if target.IsEmpty() {
		b.SetHighlight(to, true)
		return false, false
	}
	class := Classify(mover, target)
	if class.CanLand() {
		b.SetHighlight(to, true)
	}
	return true, class == CaptureKing
}
