package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/konane/internal/konane"
)

const maxWaitDuration = 5 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Game *konane.Game
}

// New - returns a context bounded by maxWaitDuration and a suite holding a fresh
// black-first game.
func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	game := konane.NewBlack()

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Game:   &game,
	}
}

// Opened is like New but with the centre pair E4 and F4 already removed.
func Opened(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, st := New(t)
	if err := st.Game.RemoveOpeningPieces(konane.MustPosition(4, 4), konane.MustPosition(5, 4)); err != nil {
		t.Fatalf("could not open game: %v", err)
	}

	return ctx, st
}
