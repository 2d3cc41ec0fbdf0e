package konane

import "strings"

// Board is the papamu, indexed [x][y]. It is a plain array so assignment copies every cell.
type Board [Size][Size]Occupancy

// DefaultBoard - returns the starting checkerboard: Black where x+y is even, White elsewhere.
func DefaultBoard() Board {
	var board Board

	for x := range Size {
		for y := range Size {
			board[x][y] = White
			if (x+y)%2 == 0 {
				board[x][y] = Black
			}
		}
	}

	return board
}

func (that Board) At(pos Position) Occupancy {
	return that[pos.x][pos.y]
}

func (that *Board) Set(pos Position, occ Occupancy) {
	that[pos.x][pos.y] = occ
}

// Count returns how many cells hold occ.
func (that Board) Count(occ Occupancy) int {
	n := 0
	for x := range Size {
		for y := range Size {
			if that[x][y] == occ {
				n++
			}
		}
	}

	return n
}

// String renders rows top to bottom with y increasing, columns lettered A-J by x.
func (that Board) String() string {
	var sb strings.Builder

	sb.WriteString("  ")
	for x := range Size {
		sb.WriteByte(' ')
		sb.WriteByte(byte('A' + x))
	}
	sb.WriteByte('\n')

	for y := range Size {
		sb.WriteByte(byte('0' + y))
		sb.WriteByte(' ')
		for x := range Size {
			sb.WriteByte(' ')
			sb.WriteByte(that[x][y].symbol())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
