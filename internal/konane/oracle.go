package konane

// directions are the four axis-aligned unit steps a jump can follow.
var directions = [4][2]int{
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
}

// canJump - reports whether any cell of the board has, in some direction, an opponent
// piece next to it and an empty cell right behind that. The start cell itself is not inspected.
func canJump(board Board, turn Turn) bool {
	return scanJumps(board, turn, func(Occupancy) bool { return true })
}

// canLegalJump is canJump restricted to start cells holding the mover's own piece,
// which is exactly when AttemptMove would accept a single jump.
func canLegalJump(board Board, turn Turn) bool {
	mover := turn.PieceType()

	return scanJumps(board, turn, func(start Occupancy) bool { return start == mover })
}

func scanJumps(board Board, turn Turn, startOK func(Occupancy) bool) bool {
	opponent := turn.Next().PieceType()

	for x0 := range Size {
		for y0 := range Size {
			if !startOK(board[x0][y0]) {
				continue
			}

			for _, dir := range directions {
				x1, y1 := x0+dir[0], y0+dir[1]
				x2, y2 := x1+dir[0], y1+dir[1]
				if !inRange(x2) || !inRange(y2) {
					continue
				}

				if board[x2][y2].IsEmpty() && board[x1][y1] == opponent {
					return true
				}
			}
		}
	}

	return false
}
