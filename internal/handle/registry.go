// Package handle exposes games to foreign callers as opaque integer handles.
//
// Every operation reports failure as a boolean or a zero value instead of an
// error, the way a C caller expects; the last engine error of each game is kept
// so it can still be inspected with LastError.
package handle

import (
	"fmt"
	"sync"

	"github.com/rocketscienceinc/konane/internal/apperror"
	"github.com/rocketscienceinc/konane/internal/konane"
)

// Game identifies a game owned by a Registry. Zero is never issued.
type Game uint64

type entry struct {
	game    konane.Game
	lastErr error
}

// Registry owns the games behind the handles it issues. It is safe for concurrent use.
type Registry struct {
	mu    sync.Mutex
	next  Game
	games map[Game]*entry
}

func NewRegistry() *Registry {
	return &Registry{
		games: make(map[Game]*entry),
	}
}

func (that *Registry) CreateWhite() Game { return that.create(konane.NewWhite()) }

func (that *Registry) CreateBlack() Game { return that.create(konane.NewBlack()) }

func (that *Registry) create(game konane.Game) Game {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.next++
	that.games[that.next] = &entry{game: game}

	return that.next
}

// Destroy - releases the game; the handle is invalid afterwards.
func (that *Registry) Destroy(h Game) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[h]; !ok {
		return false
	}
	delete(that.games, h)

	return true
}

// AttemptMove - reports whether the ply was played.
func (that *Registry) AttemptMove(h Game, source konane.Position, targets []konane.Position) bool {
	return that.mutate(h, func(game *konane.Game) error {
		return game.AttemptMove(source, targets...)
	})
}

// RemoveOpeningPieces - reports whether the two opening pieces were removed.
func (that *Registry) RemoveOpeningPieces(h Game, first, second konane.Position) bool {
	return that.mutate(h, func(game *konane.Game) error {
		return game.RemoveOpeningPieces(first, second)
	})
}

func (that *Registry) mutate(h Game, fn func(game *konane.Game) error) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	e, ok := that.games[h]
	if !ok {
		return false
	}

	e.lastErr = fn(&e.game)

	return e.lastErr == nil
}

// Occupancy returns the content of pos, or false for an unknown handle.
func (that *Registry) Occupancy(h Game, pos konane.Position) (konane.Occupancy, bool) {
	var occ konane.Occupancy

	ok := that.read(h, func(e *entry) {
		occ = e.game.OccupancyAt(pos)
	})

	return occ, ok
}

func (that *Registry) CurrentPlayer(h Game) (konane.Occupancy, bool) {
	var occ konane.Occupancy

	ok := that.read(h, func(e *entry) {
		occ = e.game.CurrentPlayer()
	})

	return occ, ok
}

// HasAnyMove is konane.Game.HasAnyMove, false for an unknown handle.
func (that *Registry) HasAnyMove(h Game) bool {
	var can bool

	ok := that.read(h, func(e *entry) {
		can = e.game.HasAnyMove()
	})

	return ok && can
}

// HasLegalJump is false both when the player to move is stuck and for an unknown handle.
func (that *Registry) HasLegalJump(h Game) bool {
	var can bool

	ok := that.read(h, func(e *entry) {
		can = e.game.HasLegalJump()
	})

	return ok && can
}

// LastError returns the error of the most recent failed mutation, nil after a success.
func (that *Registry) LastError(h Game) error {
	var err error

	ok := that.read(h, func(e *entry) {
		err = e.lastErr
	})
	if !ok {
		return fmt.Errorf("%w: %d", apperror.ErrUnknownHandle, h)
	}

	return err
}

// Len returns the number of live handles.
func (that *Registry) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.games)
}

func (that *Registry) read(h Game, fn func(e *entry)) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	e, ok := that.games[h]
	if !ok {
		return false
	}
	fn(e)

	return true
}

// NewPosition is konane.NewPosition with a boolean result.
func NewPosition(x, y int) (konane.Position, bool) {
	pos, err := konane.NewPosition(x, y)
	return pos, err == nil
}

// SetX - returns the previous x and true, or false with pos unchanged.
func SetX(pos *konane.Position, x int) (int, bool) {
	old, err := pos.SetX(x)
	return old, err == nil
}

// SetY - returns the previous y and true, or false with pos unchanged.
func SetY(pos *konane.Position, y int) (int, bool) {
	old, err := pos.SetY(y)
	return old, err == nil
}
