package entity

import "strings"

// BoardSize is the number of rows and columns of the grid.
const BoardSize = 3

// Cell is a single mark on the board.
type Cell uint8

const (
	EmptyCell Cell = iota
	MarkA
	MarkB
)

func (that Cell) String() string {
	switch that {
	case MarkA:
		return "X"
	case MarkB:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the mark of the other side. EmptyCell has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case MarkA:
		return MarkB
	case MarkB:
		return MarkA
	default:
		return EmptyCell
	}
}

// Board is a 3x3 grid addressed as Board[row][col].
type Board [BoardSize][BoardSize]Cell

// InRange reports whether row and col address a cell of the board.
func InRange(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Count returns how many cells hold the given mark.
func (that *Board) Count(mark Cell) int {
	n := 0
	for _, line := range that {
		for _, cell := range line {
			if cell == mark {
				n++
			}
		}
	}

	return n
}

// HasEmptyCell reports whether at least one cell is still free.
func (that *Board) HasEmptyCell() bool {
	return that.Count(EmptyCell) > 0
}

func (that Board) String() string {
	var sb strings.Builder
	for i, line := range that {
		if i > 0 {
			sb.WriteByte('/')
		}
		for _, cell := range line {
			sb.WriteString(cell.String())
		}
	}

	return sb.String()
}
