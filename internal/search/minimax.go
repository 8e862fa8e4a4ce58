package search

import (
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// MaxSearch evaluates the board with B to move by exhaustive search.
// Ties keep the first move in row-major order. The board is restored before returning.
func MaxSearch(board *entity.Board) Result {
	if outcome := tictactoe.Evaluate(board); outcome.IsTerminal() {
		return terminalResult(outcome)
	}

	best := Result{Value: MinBound, Row: NoMove, Col: NoMove, Nodes: 1}
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if board[row][col] != entity.EmptyCell {
				continue
			}

			board[row][col] = entity.MarkB
			reply := MinSearch(board)
			board[row][col] = entity.EmptyCell

			best.Nodes += reply.Nodes
			if reply.Value > best.Value {
				best.Value, best.Row, best.Col = reply.Value, row, col
			}
		}
	}

	return best
}

// MinSearch is the mirror of MaxSearch with A to move.
func MinSearch(board *entity.Board) Result {
	if outcome := tictactoe.Evaluate(board); outcome.IsTerminal() {
		return terminalResult(outcome)
	}

	best := Result{Value: MaxBound, Row: NoMove, Col: NoMove, Nodes: 1}
	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			if board[row][col] != entity.EmptyCell {
				continue
			}

			board[row][col] = entity.MarkA
			reply := MaxSearch(board)
			board[row][col] = entity.EmptyCell

			best.Nodes += reply.Nodes
			if reply.Value < best.Value {
				best.Value, best.Row, best.Col = reply.Value, row, col
			}
		}
	}

	return best
}
