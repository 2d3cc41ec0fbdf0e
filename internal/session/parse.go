package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/konane/internal/konane"
)

var (
	ErrShortMove    = errors.New("a move needs a source and at least one target")
	ErrBadOpening   = errors.New("the opening removes exactly two pieces")
	ErrUnknownInput = errors.New("unrecognized input")
)

// fields splits a command line on whitespace, commas and dashes, so "C2 C4",
// "C2-C4" and "c2,c4" read the same.
func fields(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == '-'
	})
}

// parsePositions - parses every field as a cell in letter-column notation.
func parsePositions(parts []string) ([]konane.Position, error) {
	positions := make([]konane.Position, 0, len(parts))

	for _, part := range parts {
		pos, err := konane.ParsePosition(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnknownInput, err)
		}
		positions = append(positions, pos)
	}

	return positions, nil
}

// parseMove - reads "<source> <target> [<target>...]".
func parseMove(line string) (konane.Position, []konane.Position, error) {
	positions, err := parsePositions(fields(line))
	if err != nil {
		return konane.Position{}, nil, err
	}

	if len(positions) < 2 {
		return konane.Position{}, nil, ErrShortMove
	}

	return positions[0], positions[1:], nil
}

// parseOpening - reads "[remove] <first> <second>".
func parseOpening(line string) (konane.Position, konane.Position, error) {
	parts := fields(line)
	if len(parts) > 0 && strings.EqualFold(parts[0], "remove") {
		parts = parts[1:]
	}

	if len(parts) != 2 {
		return konane.Position{}, konane.Position{}, ErrBadOpening
	}

	positions, err := parsePositions(parts)
	if err != nil {
		return konane.Position{}, konane.Position{}, err
	}

	return positions[0], positions[1], nil
}
