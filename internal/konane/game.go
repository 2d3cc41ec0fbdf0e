package konane

import (
	"fmt"

	"github.com/rocketscienceinc/konane/internal/apperror"
)

// Game is one playable position: a board and the side to move.
// It is a value; copying a Game copies the whole board.
type Game struct {
	board Board
	turn  Turn
}

// New - creates a game over the default layout with first to move.
func New(first Turn) Game {
	return Game{
		board: DefaultBoard(),
		turn:  first,
	}
}

func NewWhite() Game { return New(WhiteToMove) }

func NewBlack() Game { return New(BlackToMove) }

// CurrentPlayer - returns the piece color whose turn it is.
func (that *Game) CurrentPlayer() Occupancy {
	return that.turn.PieceType()
}

func (that *Game) Turn() Turn {
	return that.turn
}

func (that *Game) OccupancyAt(pos Position) Occupancy {
	return that.board.At(pos)
}

// Board returns a copy of the current board.
func (that *Game) Board() Board {
	return that.board
}

// AttemptMove - plays one ply: the piece at source jumps through every target in order.
// On success the board is replaced and the turn flips. On failure the game is left
// exactly as it was and the returned error is a *MoveError.
func (that *Game) AttemptMove(source Position, targets ...Position) error {
	next, err := applyPly(that.board, that.turn, source, targets)
	if err != nil {
		return err
	}

	that.board = next
	that.turn = that.turn.Next()

	return nil
}

// HasAnyMove - reports whether the board has an opponent piece, seen from the player
// to move, with an empty cell behind it. This is a coarse scan: the cell in front of
// the opponent piece may be empty or hold anything; use HasLegalJump for a jump
// AttemptMove would accept.
func (that *Game) HasAnyMove() bool {
	return canJump(that.board, that.turn)
}

// HasLegalJump - reports whether a piece of the player to move can make a single jump.
// A false result means the game is over and the other player has won.
func (that *Game) HasLegalJump() bool {
	return canLegalJump(that.board, that.turn)
}

// Winner returns the color that won, or Empty while the player to move can still jump.
func (that *Game) Winner() Occupancy {
	if that.HasLegalJump() {
		return Empty
	}
	return that.turn.Next().PieceType()
}

// OpeningPending reports whether the two starting pieces are still on the board.
func (that *Game) OpeningPending() bool {
	return that.board.Count(Empty) == 0
}

// RemoveOpeningPieces - clears the two adjacent cells that open play.
// It is only allowed while the board is still full and does not change the turn.
func (that *Game) RemoveOpeningPieces(first, second Position) error {
	if !that.OpeningPending() {
		return apperror.ErrOpeningDone
	}

	if !first.Adjacent(second) {
		return fmt.Errorf("%w: %s and %s", apperror.ErrOpeningNotAdjacent, first, second)
	}

	that.board.Set(first, Empty)
	that.board.Set(second, Empty)

	return nil
}
