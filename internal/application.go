package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/konane/internal/config"
	"github.com/rocketscienceinc/konane/internal/konane"
	"github.com/rocketscienceinc/konane/internal/session"
)

// centre pair removed when the opening is automatic
var openingPair = [2]konane.Position{
	konane.MustPosition(4, 4),
	konane.MustPosition(5, 4),
}

// RunApp - runs the application until the game ends or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, in, out)
}

// Run - sets up a game from conf and plays it over in and out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	first, err := conf.FirstTurn(coinFlip)
	if err != nil {
		return fmt.Errorf("could not pick the first player: %w", err)
	}

	game := konane.New(first)
	if conf.AutoOpening {
		if err = game.RemoveOpeningPieces(openingPair[0], openingPair[1]); err != nil {
			return fmt.Errorf("could not open the game: %w", err)
		}
	}

	log.Info("Starting game", "first", first.String(), "auto-opening", conf.AutoOpening)

	if err = session.New(logger, &game, in, out).Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		return fmt.Errorf("session failed: %w", err)
	}

	if !game.OpeningPending() && !game.HasLegalJump() {
		log.Info("Game finished", "winner", game.Winner().String())
	}

	return nil
}

func coinFlip() bool {
	return rand.Intn(2) == 0 //nolint: gosec // it's ok
}
