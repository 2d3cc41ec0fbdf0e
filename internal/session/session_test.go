package session

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/konane/internal/apperror"
	"github.com/rocketscienceinc/konane/internal/konane"
	"github.com/rocketscienceinc/konane/testing/suite"
)

var errBoom = errors.New("boom")

type mockGame struct {
	mock.Mock
}

func (that *mockGame) Board() konane.Board {
	return that.Called().Get(0).(konane.Board)
}

func (that *mockGame) CurrentPlayer() konane.Occupancy {
	return that.Called().Get(0).(konane.Occupancy)
}

func (that *mockGame) AttemptMove(source konane.Position, targets ...konane.Position) error {
	return that.Called(source, targets).Error(0)
}

func (that *mockGame) HasLegalJump() bool {
	return that.Called().Bool(0)
}

func (that *mockGame) OpeningPending() bool {
	return that.Called().Bool(0)
}

func (that *mockGame) RemoveOpeningPieces(first, second konane.Position) error {
	return that.Called(first, second).Error(0)
}

func newMockGame(t *testing.T, hasMove bool) *mockGame {
	t.Helper()

	game := &mockGame{}
	game.On("Board").Return(konane.DefaultBoard()).Maybe()
	game.On("CurrentPlayer").Return(konane.White).Maybe()
	game.On("OpeningPending").Return(false).Maybe()
	game.On("HasLegalJump").Return(hasMove).Maybe()

	t.Cleanup(func() { game.AssertExpectations(t) })

	return game
}

func TestSession_Run(t *testing.T) {
	t.Run("Plays the opening and a jump", func(t *testing.T) {
		// Given: a fresh black-first game and a scripted player
		ctx, st := suite.New(t)
		var out bytes.Buffer
		session := New(st.Logger, st.Game, strings.NewReader("remove E4 F4\nE2 E4\nquit\n"), &out)

		// When: running the session
		err := session.Run(ctx)

		// Then: the opening is applied, the jump captured E3 and white is to move
		require.NoError(t, err)
		assert.Equal(t, konane.Empty, st.Game.OccupancyAt(konane.MustPosition(4, 2)))
		assert.Equal(t, konane.Empty, st.Game.OccupancyAt(konane.MustPosition(4, 3)))
		assert.Equal(t, konane.Black, st.Game.OccupancyAt(konane.MustPosition(4, 4)))
		assert.Equal(t, konane.White, st.Game.CurrentPlayer())
		assert.Contains(t, out.String(), "remove two adjacent pieces")
		assert.Contains(t, out.String(), "black to move")
		assert.Contains(t, out.String(), "white to move")
	})

	t.Run("Rejected move leaves the game unchanged", func(t *testing.T) {
		// Given: an opened game
		ctx, st := suite.Opened(t)
		before := *st.Game
		var out bytes.Buffer
		session := New(st.Logger, st.Game, strings.NewReader("E2 E6\nquit\n"), &out)

		// When: the player jumps onto an occupied cell
		err := session.Run(ctx)

		// Then: the error is shown and the game is untouched
		require.NoError(t, err)
		assert.Contains(t, out.String(), "illegal move: target E6 is not empty")
		assert.Equal(t, before, *st.Game)
	})

	t.Run("Malformed input is reported", func(t *testing.T) {
		ctx, st := suite.Opened(t)
		var out bytes.Buffer
		session := New(st.Logger, st.Game, strings.NewReader("E2\nZZ E4\nhelp\n"), &out)

		err := session.Run(ctx)

		require.NoError(t, err)
		assert.Contains(t, out.String(), ErrShortMove.Error())
		assert.Contains(t, out.String(), ErrUnknownInput.Error())
		assert.Contains(t, out.String(), "commands:")
		assert.Equal(t, konane.Black, st.Game.CurrentPlayer())
	})

	t.Run("Opening errors are reported", func(t *testing.T) {
		ctx, st := suite.New(t)
		var out bytes.Buffer
		session := New(st.Logger, st.Game, strings.NewReader("remove A0 B1\nremove A0\n"), &out)

		err := session.Run(ctx)

		require.NoError(t, err)
		assert.Contains(t, out.String(), apperror.ErrOpeningNotAdjacent.Error())
		assert.Contains(t, out.String(), ErrBadOpening.Error())
		assert.True(t, st.Game.OpeningPending())
	})

	t.Run("Engine errors are forwarded", func(t *testing.T) {
		// Given: a game that rejects the move
		game := newMockGame(t, true)
		game.On("AttemptMove", konane.MustPosition(2, 2), []konane.Position{konane.MustPosition(2, 4)}).
			Return(errBoom).
			Once()

		ctx, st := suite.New(t)
		var out bytes.Buffer
		session := New(st.Logger, game, strings.NewReader("c2-c4\nquit\n"), &out)

		// When: the player submits it
		err := session.Run(ctx)

		// Then: the engine's error is printed
		require.NoError(t, err)
		assert.Contains(t, out.String(), "illegal move: boom")
	})

	t.Run("Chained targets are passed in order", func(t *testing.T) {
		game := newMockGame(t, true)
		game.On("AttemptMove", konane.MustPosition(2, 2), []konane.Position{
			konane.MustPosition(2, 4),
			konane.MustPosition(4, 4),
		}).Return(nil).Once()

		ctx, st := suite.New(t)
		session := New(st.Logger, game, strings.NewReader("C2 C4 E4\nexit\n"), io.Discard)

		require.NoError(t, session.Run(ctx))
	})

	t.Run("Ends when the player to move has no jump", func(t *testing.T) {
		// Given: a game where white cannot move
		game := newMockGame(t, false)

		ctx, st := suite.New(t)
		var out bytes.Buffer
		session := New(st.Logger, game, strings.NewReader("C2 C4\n"), &out)

		// When: running the session
		err := session.Run(ctx)

		// Then: black is announced as the winner and no move is attempted
		require.NoError(t, err)
		assert.Contains(t, out.String(), "white has no legal jump; black wins")
		game.AssertNotCalled(t, "AttemptMove", mock.Anything, mock.Anything)
	})

	t.Run("Stops when the context is done", func(t *testing.T) {
		// Given: input that never arrives and a cancelled context
		reader, writer := io.Pipe()
		defer writer.Close()

		_, st := suite.Opened(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		session := New(st.Logger, st.Game, reader, io.Discard)

		// When: running the session
		err := session.Run(ctx)

		// Then: the cancellation is returned
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSession_readLines(t *testing.T) {
	t.Run("Drops input that arrives after cancellation", func(t *testing.T) {
		// Given: a cancelled context and a line written only afterwards
		_, st := suite.Opened(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		reader, writer := io.Pipe()
		defer writer.Close()

		written := make(chan error, 1)
		go func() {
			_, err := io.WriteString(writer, "E2 E4\n")
			written <- err
		}()

		session := New(st.Logger, st.Game, reader, io.Discard)

		// When: the reader wakes up with that line
		line, ok := <-session.readLines(ctx)

		// Then: the line is consumed but not delivered and the channel is closed
		assert.False(t, ok)
		assert.Empty(t, line)
		require.NoError(t, <-written)
		assert.Equal(t, konane.Black, st.Game.OccupancyAt(konane.MustPosition(4, 2)))
	})

	t.Run("Delivers lines until EOF", func(t *testing.T) {
		_, st := suite.New(t)
		session := New(st.Logger, st.Game, strings.NewReader("a\nb\n"), io.Discard)

		var got []string
		for line := range session.readLines(context.Background()) {
			got = append(got, line)
		}

		assert.Equal(t, []string{"a", "b"}, got)
	})
}

func TestParseMove(t *testing.T) {
	t.Run("Source and chained targets", func(t *testing.T) {
		source, targets, err := parseMove("c2,c4, e4")

		require.NoError(t, err)
		assert.Equal(t, konane.MustPosition(2, 2), source)
		assert.Equal(t, []konane.Position{konane.MustPosition(2, 4), konane.MustPosition(4, 4)}, targets)
	})

	t.Run("Needs a target", func(t *testing.T) {
		_, _, err := parseMove("C2")

		assert.ErrorIs(t, err, ErrShortMove)
	})

	t.Run("Out of range cell", func(t *testing.T) {
		_, _, err := parseMove("K2 K4")

		assert.ErrorIs(t, err, ErrUnknownInput)
		assert.ErrorIs(t, err, apperror.ErrOutOfRange)
	})
}

func TestParseOpening(t *testing.T) {
	first, second, err := parseOpening("REMOVE e4 f4")
	require.NoError(t, err)
	assert.Equal(t, konane.MustPosition(4, 4), first)
	assert.Equal(t, konane.MustPosition(5, 4), second)

	first, second, err = parseOpening("A0 A1")
	require.NoError(t, err)
	assert.Equal(t, konane.MustPosition(0, 0), first)
	assert.Equal(t, konane.MustPosition(0, 1), second)

	_, _, err = parseOpening("remove A0 A1 A2")
	assert.ErrorIs(t, err, ErrBadOpening)
}
