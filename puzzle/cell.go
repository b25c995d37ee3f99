package puzzle

// Cell is the state of one grid square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellFilled
	CellCrossed
)

// Glyph returns the wire character for the cell, as used in host board
// updates and outbound cell-change messages.
func (c Cell) Glyph() byte {
	switch c {
	case CellFilled:
		return '1'
	case CellCrossed:
		return 'X'
	default:
		return '0'
	}
}

// CellFromGlyph maps a wire character back to a cell state.
func CellFromGlyph(b byte) (Cell, bool) {
	switch b {
	case '0':
		return CellEmpty, true
	case '1':
		return CellFilled, true
	case 'X':
		return CellCrossed, true
	default:
		return CellEmpty, false
	}
}

func (c Cell) String() string {
	switch c {
	case CellFilled:
		return "filled"
	case CellCrossed:
		return "crossed"
	default:
		return "empty"
	}
}
