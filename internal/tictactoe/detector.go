package tictactoe

import "github.com/rocketscienceinc/tictactoe-solver/internal/entity"

type position struct {
	row, col int
}

// WinLines lists every line of three cells: both diagonals, then columns, then rows.
var WinLines = [8][3]position{
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
}

// Evaluate classifies the board. A completed line wins even when empty cells remain;
// a full board without one is a draw.
func Evaluate(board *entity.Board) entity.Outcome {
	for _, line := range WinLines {
		a := board[line[0].row][line[0].col]
		b := board[line[1].row][line[1].col]
		c := board[line[2].row][line[2].col]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.WinOutcome(a)
		}
	}

	if board.HasEmptyCell() {
		return entity.OutcomeOngoing
	}

	return entity.OutcomeDraw
}
