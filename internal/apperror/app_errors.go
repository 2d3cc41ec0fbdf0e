package apperror

import "errors"

// rule violations reported by the move engine
var (
	ErrOutOfRange     = errors.New("coordinate is out of range")
	ErrEmptySource    = errors.New("source position is empty")
	ErrWrongColor     = errors.New("cannot move this piece during this turn")
	ErrOccupiedTarget = errors.New("target position is not empty")
	ErrIllegalTarget  = errors.New("cannot legally move piece to target position")
	ErrIllegalJump    = errors.New("cannot perform the indicated jump")
	ErrNoTargets      = errors.New("no target positions were given")
)

var (
	ErrBadNotation        = errors.New("malformed position notation")
	ErrOpeningDone        = errors.New("opening pieces were already removed")
	ErrOpeningNotAdjacent = errors.New("opening pieces must be orthogonally adjacent")
	ErrUnknownColor       = errors.New("unknown player color")
	ErrUnknownHandle      = errors.New("unknown game handle")
)
