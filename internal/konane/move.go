package konane

import (
	"fmt"

	"github.com/rocketscienceinc/konane/internal/apperror"
)

// MoveError describes why a ply was rejected. Kind is one of the apperror sentinels,
// so callers match it with errors.Is.
type MoveError struct {
	Kind error

	// From is the cell the offending hop starts at; for a chain this is the
	// landing cell of the previous hop, not the ply's source.
	From   Position
	Mid    Position
	Target Position

	Piece    Occupancy // occupancy of From
	MidPiece Occupancy
	Turn     Turn
}

func (that *MoveError) Error() string {
	switch that.Kind {
	case apperror.ErrNoTargets:
		return fmt.Sprintf("no target positions were given for the %s piece at %s", that.Piece, that.From)
	case apperror.ErrEmptySource:
		return fmt.Sprintf("source %s is empty", that.From)
	case apperror.ErrWrongColor:
		return fmt.Sprintf("cannot move %s piece at %s during %s turn", that.Piece, that.From, that.Turn)
	case apperror.ErrOccupiedTarget:
		return fmt.Sprintf("target %s is not empty", that.Target)
	case apperror.ErrIllegalTarget:
		return fmt.Sprintf("cannot move %s piece at %s to target %s", that.Piece, that.From, that.Target)
	case apperror.ErrIllegalJump:
		return fmt.Sprintf("cannot jump %s piece at %s over the currently-%s %s to %s",
			that.Piece, that.From, that.MidPiece, that.Mid, that.Target)
	default:
		return fmt.Sprintf("illegal move from %s: %v", that.From, that.Kind)
	}
}

func (that *MoveError) Unwrap() error {
	return that.Kind
}

// applyPly - validates a whole ply for turn and returns the resulting board.
// board is received by value and serves as the working copy, so the caller's
// board is never touched; on error the returned board must be ignored.
func applyPly(board Board, turn Turn, source Position, targets []Position) (Board, error) {
	mover := turn.PieceType()
	piece := board.At(source)

	if len(targets) == 0 {
		return board, &MoveError{Kind: apperror.ErrNoTargets, From: source, Piece: piece, Turn: turn}
	}

	if piece.IsEmpty() {
		return board, &MoveError{Kind: apperror.ErrEmptySource, From: source, Piece: piece, Turn: turn}
	}

	if piece != mover {
		return board, &MoveError{Kind: apperror.ErrWrongColor, From: source, Piece: piece, Turn: turn}
	}

	current := source
	for _, target := range targets {
		if err := jump(&board, turn, current, target); err != nil {
			return board, err
		}
		current = target
	}

	return board, nil
}

// jump performs a single capture from current to target on board.
func jump(board *Board, turn Turn, current, target Position) error {
	if board.At(target).IsOccupied() {
		return &MoveError{
			Kind:   apperror.ErrOccupiedTarget,
			From:   current,
			Target: target,
			Piece:  board.At(current),
			Turn:   turn,
		}
	}

	mid, ok := current.Midpoint(target)
	if !ok {
		return &MoveError{
			Kind:   apperror.ErrIllegalTarget,
			From:   current,
			Target: target,
			Piece:  board.At(current),
			Turn:   turn,
		}
	}

	if board.At(mid) != turn.Next().PieceType() {
		return &MoveError{
			Kind:     apperror.ErrIllegalJump,
			From:     current,
			Mid:      mid,
			Target:   target,
			Piece:    board.At(current),
			MidPiece: board.At(mid),
			Turn:     turn,
		}
	}

	board.Set(current, Empty)
	board.Set(mid, Empty)
	board.Set(target, turn.PieceType())

	return nil
}
