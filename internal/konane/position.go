package konane

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/konane/internal/apperror"
)

// Size is the length of a papamu side.
const Size = 10

// Position is a board coordinate with both axes in [0, Size-1].
// The zero value is the corner A0.
type Position struct {
	x uint8
	y uint8
}

// NewPosition - validates the coordinates and builds a Position.
func NewPosition(x, y int) (Position, error) {
	if !inRange(x) || !inRange(y) {
		return Position{}, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfRange, x, y)
	}

	return Position{x: uint8(x), y: uint8(y)}, nil
}

// MustPosition is like NewPosition but panics on out-of-range coordinates.
func MustPosition(x, y int) Position {
	pos, err := NewPosition(x, y)
	if err != nil {
		panic(err)
	}

	return pos
}

// ParsePosition - parses the letter-column notation produced by String, e.g. "C4".
func ParsePosition(s string) (Position, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) != 2 || s[0] < 'A' || s[0] > 'Z' || s[1] < '0' || s[1] > '9' {
		return Position{}, fmt.Errorf("%w: %q", apperror.ErrBadNotation, s)
	}

	return NewPosition(int(s[0]-'A'), int(s[1]-'0'))
}

func (that Position) X() int { return int(that.x) }

func (that Position) Y() int { return int(that.y) }

func (that Position) XY() (int, int) { return int(that.x), int(that.y) }

// SetX - replaces the x coordinate and returns the previous one.
// An out-of-range value leaves the position unchanged.
func (that *Position) SetX(x int) (int, error) {
	if !inRange(x) {
		return 0, fmt.Errorf("%w: x %d", apperror.ErrOutOfRange, x)
	}

	old := int(that.x)
	that.x = uint8(x)

	return old, nil
}

// SetY - replaces the y coordinate and returns the previous one.
// An out-of-range value leaves the position unchanged.
func (that *Position) SetY(y int) (int, error) {
	if !inRange(y) {
		return 0, fmt.Errorf("%w: y %d", apperror.ErrOutOfRange, y)
	}

	old := int(that.y)
	that.y = uint8(y)

	return old, nil
}

// Midpoint - returns the cell hopped over by a jump from that to other.
// The second result is false unless both lie on one row or column exactly two cells apart.
func (that Position) Midpoint(other Position) (Position, bool) {
	if (that.y == other.y && twoApart(that.x, other.x)) || (that.x == other.x && twoApart(that.y, other.y)) {
		return Position{x: (that.x + other.x) / 2, y: (that.y + other.y) / 2}, true
	}

	return Position{}, false
}

// Adjacent reports whether other is one step away along a single axis.
func (that Position) Adjacent(other Position) bool {
	return (that.y == other.y && distance(that.x, other.x) == 1) ||
		(that.x == other.x && distance(that.y, other.y) == 1)
}

func (that Position) String() string {
	return fmt.Sprintf("%c%d", 'A'+that.x, that.y)
}

func inRange(v int) bool {
	return v >= 0 && v < Size
}

func twoApart(a, b uint8) bool {
	return distance(a, b) == 2
}

func distance(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
