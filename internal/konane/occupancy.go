package konane

// Occupancy is the content of a single board cell.
type Occupancy uint8

const (
	Empty Occupancy = iota
	White
	Black
)

func (that Occupancy) String() string {
	switch that {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "empty"
	}
}

func (that Occupancy) IsEmpty() bool { return that == Empty }

func (that Occupancy) IsOccupied() bool { return that != Empty }

func (that Occupancy) IsWhite() bool { return that == White }

func (that Occupancy) IsBlack() bool { return that == Black }

// Opponent - returns the other piece color; Empty has no opponent and stays Empty.
func (that Occupancy) Opponent() Occupancy {
	switch that {
	case White:
		return Black
	case Black:
		return White
	default:
		return Empty
	}
}

// symbol is the single-character form used when rendering a board.
func (that Occupancy) symbol() byte {
	switch that {
	case White:
		return 'W'
	case Black:
		return 'B'
	default:
		return '.'
	}
}
