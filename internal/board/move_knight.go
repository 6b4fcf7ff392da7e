package board

// knightOffsets are the eight L-shaped jumps.
var knightOffsets = [8][2]int{
	{-1, -2}, {1, -2},
	{-1, 2}, {1, 2},
	{-2, -1}, {-2, 1},
	{2, -1}, {2, 1},
}

func generateKnightMoves(b *Board, from Square) bool {
	knight := b.Get(from)

	kingInReach := false
	for _, o := range knightOffsets {
		if _, king := land(b, knight, from.Offset(o[0], o[1])); king {
			kingInReach = true
		}
	}
	return kingInReach
}
