package board

// rookDirections lists the four axis steps: up, down, left, right.
var rookDirections = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

func generateRookMoves(b *Board, from Square) bool {
	rook := b.Get(from)

	kingInReach := false
	for _, d := range rookDirections {
		for to := from.Offset(d[0], d[1]); to.IsValid(); to = to.Offset(d[0], d[1]) {
			occupied, king := land(b, rook, to)
			if king {
				kingInReach = true
			}
			if occupied {
				break
			}
		}
	}
	return kingInReach
}
