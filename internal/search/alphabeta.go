package search

import (
	"github.com/rocketscienceinc/tictactoe-solver/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solver/internal/tictactoe"
)

// MaxSearchAB returns the same value as MaxSearch while skipping branches the opponent
// would never allow. Call it with (MinBound, MaxBound) at the root.
func MaxSearchAB(board *entity.Board, alpha, beta int) Result {
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
			reply := MinSearchAB(board, alpha, beta)
			board[row][col] = entity.EmptyCell

			best.Nodes += reply.Nodes
			if reply.Value > best.Value {
				best.Value, best.Row, best.Col = reply.Value, row, col
			}

			// beta cutoff
			if best.Value >= beta {
				return best
			}

			alpha = max(alpha, best.Value)
		}
	}

	return best
}

// MinSearchAB is the mirror of MaxSearchAB with A to move.
func MinSearchAB(board *entity.Board, alpha, beta int) Result {
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
			reply := MaxSearchAB(board, alpha, beta)
			board[row][col] = entity.EmptyCell

			best.Nodes += reply.Nodes
			if reply.Value < best.Value {
				best.Value, best.Row, best.Col = reply.Value, row, col
			}

			// alpha cutoff
			if best.Value <= alpha {
				return best
			}

			beta = min(beta, best.Value)
		}
	}

	return best
}
