package board

// pawnDirection returns the row step of a pawn: White moves up the screen.
func pawnDirection(t Team) int {
	if t == White {
		return -1
	}
	return 1
}

// pawnHomeRow returns the row a pawn of team t starts on.
func pawnHomeRow(t Team) int {
	if t == White {
		return 6
	}
	return 1
}

func generatePawnMoves(b *Board, from Square) bool {
	pawn := b.Get(from)
	dir := pawnDirection(pawn.Team)

	// Pushes only onto empty squares; the double step needs both squares free.
	one := from.Offset(0, dir)
	if one.IsValid() && b.IsEmpty(one) {
		b.SetHighlight(one, true)

		two := from.Offset(0, 2*dir)
		if from.Y == pawnHomeRow(pawn.Team) && two.IsValid() && b.IsEmpty(two) {
			b.SetHighlight(two, true)
		}
	}

	// Diagonals only onto opposing pieces. No en passant.
	kingInReach := false
	for _, dx := range [2]int{-1, 1} {
		to := from.Offset(dx, dir)
		target := b.Get(to)
		if target.IsEmpty() {
			continue
		}
		switch Classify(pawn, target) {
		case CaptureKing:
			kingInReach = true
			b.SetHighlight(to, true)
		case CaptureNormal:
			b.SetHighlight(to, true)
		}
	}
	return kingInReach
}
