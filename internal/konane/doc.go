// Package konane implements the rules of Kōnane on a 10×10 papamu.
//
// Pieces capture by jumping orthogonally over an adjacent opposing piece into
// the empty cell beyond it; a ply may chain several such jumps by the same piece.
// Game is the handle callers hold:
//
//	game := konane.NewBlack()
//	_ = game.RemoveOpeningPieces(konane.MustPosition(4, 4), konane.MustPosition(5, 4))
//
//	err := game.AttemptMove(konane.MustPosition(4, 2), konane.MustPosition(4, 4))
//	if errors.Is(err, apperror.ErrIllegalJump) {
//		// the game is unchanged
//	}
//
//	if !game.HasLegalJump() {
//		fmt.Println(game.Winner(), "wins")
//	}
//
// A ply is validated against a private copy of the board and committed only
// when every jump in the chain is legal, so a rejected ply never leaves a
// partial capture behind. The package holds no global state and does no
// locking; a Game must not be shared between goroutines without synchronization.
package konane
