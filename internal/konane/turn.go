package konane

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/konane/internal/apperror"
)

// Turn marks whose ply it is.
type Turn uint8

const (
	WhiteToMove Turn = iota
	BlackToMove
)

// Next - returns the opposite turn.
func (that Turn) Next() Turn {
	if that == WhiteToMove {
		return BlackToMove
	}
	return WhiteToMove
}

// PieceType - returns the color that may move during this turn.
func (that Turn) PieceType() Occupancy {
	if that == WhiteToMove {
		return White
	}
	return Black
}

func (that Turn) String() string {
	return that.PieceType().String()
}

// TurnFor - returns the turn in which occ moves.
func TurnFor(occ Occupancy) (Turn, error) {
	switch occ {
	case White:
		return WhiteToMove, nil
	case Black:
		return BlackToMove, nil
	default:
		return WhiteToMove, fmt.Errorf("%w: %s", apperror.ErrUnknownColor, occ)
	}
}

// ParseTurn - accepts "white" or "black" in any case.
func ParseTurn(s string) (Turn, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return WhiteToMove, nil
	case "black", "b":
		return BlackToMove, nil
	default:
		return WhiteToMove, fmt.Errorf("%w: %q", apperror.ErrUnknownColor, s)
	}
}
