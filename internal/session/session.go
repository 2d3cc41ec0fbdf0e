package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/konane/internal/konane"
)

const usage = `commands:
  <from> <to> [<to>...]   jump the piece at <from> through each <to>, e.g. E2 E4 E6
  remove <a> <b>          remove the two adjacent opening pieces
  help                    show this text
  quit                    leave the game
`

type gameplay interface {
	Board() konane.Board
	CurrentPlayer() konane.Occupancy
	AttemptMove(source konane.Position, targets ...konane.Position) error
	HasLegalJump() bool
	OpeningPending() bool
	RemoveOpeningPieces(first, second konane.Position) error
}

// Session is a hot-seat game played over a line-oriented terminal.
type Session struct {
	logger *slog.Logger
	game   gameplay

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, game gameplay, in io.Reader, out io.Writer) *Session {
	return &Session{
		logger: logger.With("component", "session"),
		game:   game,
		in:     in,
		out:    out,
	}
}

// Run - plays until a side has no jump left, the input ends, the player quits or ctx is done.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	lines := that.readLines(ctx)

	for {
		if !that.game.OpeningPending() && !that.game.HasLegalJump() {
			that.render()

			loser := that.game.CurrentPlayer()
			that.printf("%s has no legal jump; %s wins\n", loser, loser.Opponent())
			log.Info("game over", "winner", loser.Opponent().String())

			return nil
		}

		that.prompt()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				log.Debug("input closed")
				return nil
			}

			if quit := that.handle(strings.TrimSpace(line)); quit {
				return nil
			}
		}
	}
}

// handle processes one input line and reports whether the player asked to quit.
func (that *Session) handle(line string) bool {
	log := that.logger.With("method", "handle")

	switch strings.ToLower(line) {
	case "":
		return false
	case "quit", "exit":
		return true
	case "help", "?":
		that.printf("%s", usage)
		return false
	}

	if that.game.OpeningPending() {
		first, second, err := parseOpening(line)
		if err == nil {
			err = that.game.RemoveOpeningPieces(first, second)
		}

		if err != nil {
			log.Info("opening rejected", "input", line, "error", err)
			that.printf("cannot remove: %v\n", err)
			return false
		}

		log.Debug("opening pieces removed", "first", first.String(), "second", second.String())
		return false
	}

	source, targets, err := parseMove(line)
	if err == nil {
		err = that.game.AttemptMove(source, targets...)
	}

	if err != nil {
		log.Info("move rejected", "input", line, "error", err)
		that.printf("illegal move: %v\n", err)
		return false
	}

	log.Debug("move played", "source", source.String(), "jumps", len(targets))
	return false
}

func (that *Session) prompt() {
	that.render()

	if that.game.OpeningPending() {
		that.printf("remove two adjacent pieces to open, e.g. remove E4 F4\n> ")
		return
	}

	that.printf("%s to move\n> ", that.game.CurrentPlayer())
}

func (that *Session) render() {
	that.printf("\n%s", that.game.Board())
}

func (that *Session) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}

// readLines - feeds input lines to the returned channel and closes it at EOF.
// Once ctx is done the goroutine drops the next line and exits; until that line
// arrives it stays blocked in Scan, since an io.Reader cannot be interrupted.
func (that *Session) readLines(ctx context.Context) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			if ctx.Err() != nil {
				return
			}

			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			that.logger.Error("failed to read input", "error", err)
		}
	}()

	return lines
}
